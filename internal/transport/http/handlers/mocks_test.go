package handlers

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vedran77/devconnect/internal/domain"
)

type mockUserRepo struct {
	createFn     func(ctx context.Context, user *domain.User) error
	getByIDFn    func(ctx context.Context, id primitive.ObjectID) (*domain.User, error)
	getByEmailFn func(ctx context.Context, email string) (*domain.User, error)
	deleteFn     func(ctx context.Context, id primitive.ObjectID) error
}

func (m *mockUserRepo) Create(ctx context.Context, user *domain.User) error {
	if m.createFn != nil {
		return m.createFn(ctx, user)
	}
	return nil
}

func (m *mockUserRepo) GetByID(ctx context.Context, id primitive.ObjectID) (*domain.User, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	if m.getByEmailFn != nil {
		return m.getByEmailFn(ctx, email)
	}
	return nil, nil
}

func (m *mockUserRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

type mockProfileRepo struct {
	createFn           func(ctx context.Context, profile *domain.Profile) error
	getByUserFn        func(ctx context.Context, userID primitive.ObjectID) (*domain.Profile, error)
	getAllFn           func(ctx context.Context) ([]domain.Profile, error)
	updateFn           func(ctx context.Context, userID primitive.ObjectID, patch domain.ProfilePatch) (*domain.Profile, error)
	deleteByUserFn     func(ctx context.Context, userID primitive.ObjectID) error
	addExperienceFn    func(ctx context.Context, userID primitive.ObjectID, exp domain.Experience) (*domain.Profile, error)
	removeExperienceFn func(ctx context.Context, userID, expID primitive.ObjectID) (*domain.Profile, error)
	addEducationFn     func(ctx context.Context, userID primitive.ObjectID, edu domain.Education) (*domain.Profile, error)
	removeEducationFn  func(ctx context.Context, userID, eduID primitive.ObjectID) (*domain.Profile, error)
}

func (m *mockProfileRepo) Create(ctx context.Context, profile *domain.Profile) error {
	if m.createFn != nil {
		return m.createFn(ctx, profile)
	}
	return nil
}

func (m *mockProfileRepo) GetByUser(ctx context.Context, userID primitive.ObjectID) (*domain.Profile, error) {
	if m.getByUserFn != nil {
		return m.getByUserFn(ctx, userID)
	}
	return nil, nil
}

func (m *mockProfileRepo) GetAll(ctx context.Context) ([]domain.Profile, error) {
	if m.getAllFn != nil {
		return m.getAllFn(ctx)
	}
	return nil, nil
}

func (m *mockProfileRepo) Update(ctx context.Context, userID primitive.ObjectID, patch domain.ProfilePatch) (*domain.Profile, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, userID, patch)
	}
	return nil, nil
}

func (m *mockProfileRepo) DeleteByUser(ctx context.Context, userID primitive.ObjectID) error {
	if m.deleteByUserFn != nil {
		return m.deleteByUserFn(ctx, userID)
	}
	return nil
}

func (m *mockProfileRepo) AddExperience(ctx context.Context, userID primitive.ObjectID, exp domain.Experience) (*domain.Profile, error) {
	if m.addExperienceFn != nil {
		return m.addExperienceFn(ctx, userID, exp)
	}
	return nil, nil
}

func (m *mockProfileRepo) RemoveExperience(ctx context.Context, userID, expID primitive.ObjectID) (*domain.Profile, error) {
	if m.removeExperienceFn != nil {
		return m.removeExperienceFn(ctx, userID, expID)
	}
	return nil, nil
}

func (m *mockProfileRepo) AddEducation(ctx context.Context, userID primitive.ObjectID, edu domain.Education) (*domain.Profile, error) {
	if m.addEducationFn != nil {
		return m.addEducationFn(ctx, userID, edu)
	}
	return nil, nil
}

func (m *mockProfileRepo) RemoveEducation(ctx context.Context, userID, eduID primitive.ObjectID) (*domain.Profile, error) {
	if m.removeEducationFn != nil {
		return m.removeEducationFn(ctx, userID, eduID)
	}
	return nil, nil
}
