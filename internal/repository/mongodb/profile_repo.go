package mongodb

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/vedran77/devconnect/internal/domain"
)

type ProfileRepo struct {
	coll *mongo.Collection
}

func NewProfileRepo(db *mongo.Database) *ProfileRepo {
	return &ProfileRepo{coll: db.Collection("profiles")}
}

func (r *ProfileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	res, err := r.coll.InsertOne(ctx, profile)
	if err != nil {
		return err
	}
	if id, ok := res.InsertedID.(primitive.ObjectID); ok {
		profile.ID = id
	}
	return nil
}

func (r *ProfileRepo) GetByUser(ctx context.Context, userID primitive.ObjectID) (*domain.Profile, error) {
	var p domain.Profile
	err := r.coll.FindOne(ctx, bson.M{"user": userID}).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *ProfileRepo) GetAll(ctx context.Context) ([]domain.Profile, error) {
	cur, err := r.coll.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	profiles := []domain.Profile{}
	if err := cur.All(ctx, &profiles); err != nil {
		return nil, err
	}
	return profiles, nil
}

// Update merges the non-nil patch fields into the stored document via
// $set and returns the updated profile, or nil when none exists.
func (r *ProfileRepo) Update(ctx context.Context, userID primitive.ObjectID, patch domain.ProfilePatch) (*domain.Profile, error) {
	set := bson.M{}
	if patch.Company != nil {
		set["company"] = *patch.Company
	}
	if patch.Website != nil {
		set["website"] = *patch.Website
	}
	if patch.Location != nil {
		set["location"] = *patch.Location
	}
	if patch.Bio != nil {
		set["bio"] = *patch.Bio
	}
	if patch.Status != nil {
		set["status"] = *patch.Status
	}
	if patch.Skills != nil {
		set["skills"] = patch.Skills
	}
	if patch.Social != nil {
		set["social"] = *patch.Social
	}

	return r.findOneAndUpdate(ctx, bson.M{"user": userID}, bson.M{"$set": set})
}

func (r *ProfileRepo) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	_, err := r.coll.DeleteOne(ctx, bson.M{"user": userID})
	return err
}

func (r *ProfileRepo) AddExperience(ctx context.Context, userID primitive.ObjectID, exp domain.Experience) (*domain.Profile, error) {
	update := bson.M{"$push": bson.M{
		"experience": bson.M{"$each": bson.A{exp}, "$position": 0},
	}}
	return r.findOneAndUpdate(ctx, bson.M{"user": userID}, update)
}

func (r *ProfileRepo) RemoveExperience(ctx context.Context, userID, expID primitive.ObjectID) (*domain.Profile, error) {
	update := bson.M{"$pull": bson.M{"experience": bson.M{"_id": expID}}}
	return r.findOneAndUpdate(ctx, bson.M{"user": userID}, update)
}

func (r *ProfileRepo) AddEducation(ctx context.Context, userID primitive.ObjectID, edu domain.Education) (*domain.Profile, error) {
	update := bson.M{"$push": bson.M{
		"education": bson.M{"$each": bson.A{edu}, "$position": 0},
	}}
	return r.findOneAndUpdate(ctx, bson.M{"user": userID}, update)
}

func (r *ProfileRepo) RemoveEducation(ctx context.Context, userID, eduID primitive.ObjectID) (*domain.Profile, error) {
	update := bson.M{"$pull": bson.M{"education": bson.M{"_id": eduID}}}
	return r.findOneAndUpdate(ctx, bson.M{"user": userID}, update)
}

func (r *ProfileRepo) findOneAndUpdate(ctx context.Context, filter, update bson.M) (*domain.Profile, error) {
	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var p domain.Profile
	err := r.coll.FindOneAndUpdate(ctx, filter, update, opts).Decode(&p)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &p, nil
}
