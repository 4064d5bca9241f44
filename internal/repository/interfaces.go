package repository

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vedran77/devconnect/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

type ProfileRepository interface {
	Create(ctx context.Context, profile *domain.Profile) error
	GetByUser(ctx context.Context, userID primitive.ObjectID) (*domain.Profile, error)
	GetAll(ctx context.Context) ([]domain.Profile, error)
	Update(ctx context.Context, userID primitive.ObjectID, patch domain.ProfilePatch) (*domain.Profile, error)
	DeleteByUser(ctx context.Context, userID primitive.ObjectID) error
	AddExperience(ctx context.Context, userID primitive.ObjectID, exp domain.Experience) (*domain.Profile, error)
	RemoveExperience(ctx context.Context, userID, expID primitive.ObjectID) (*domain.Profile, error)
	AddEducation(ctx context.Context, userID primitive.ObjectID, edu domain.Education) (*domain.Profile, error)
	RemoveEducation(ctx context.Context, userID, eduID primitive.ObjectID) (*domain.Profile, error)
}
