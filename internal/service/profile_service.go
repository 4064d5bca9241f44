package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/vedran77/devconnect/internal/domain"
	"github.com/vedran77/devconnect/internal/repository"
)

var ErrProfileNotFound = errors.New("profile not found")

type ProfileService struct {
	profileRepo repository.ProfileRepository
	userRepo    repository.UserRepository
}

func NewProfileService(profileRepo repository.ProfileRepository, userRepo repository.UserRepository) *ProfileService {
	return &ProfileService{
		profileRepo: profileRepo,
		userRepo:    userRepo,
	}
}

type ProfileInput struct {
	Company        string `json:"company"`
	Website        string `json:"website"`
	Location       string `json:"location"`
	Bio            string `json:"bio"`
	Status         string `json:"status"`
	GithubUsername string `json:"githubusername"`
	Skills         string `json:"skills"`
	Youtube        string `json:"youtube"`
	Twitter        string `json:"twitter"`
	Facebook       string `json:"facebook"`
	Linkedin       string `json:"linkedin"`
	Instagram      string `json:"instagram"`
}

type ExperienceInput struct {
	Title       string `json:"title"`
	Company     string `json:"company"`
	Location    string `json:"location"`
	From        string `json:"from"`
	To          string `json:"to"`
	Current     bool   `json:"current"`
	Description string `json:"description"`
}

type EducationInput struct {
	School       string `json:"school"`
	Degree       string `json:"degree"`
	FieldOfStudy string `json:"fieldofstudy"`
	From         string `json:"from"`
	To           string `json:"to"`
	Current      bool   `json:"current"`
	Description  string `json:"description"`
}

// GetMine returns the authenticated user's profile with the owner's
// name and avatar embedded.
func (s *ProfileService) GetMine(ctx context.Context, userID primitive.ObjectID) (*domain.Profile, error) {
	profile, err := s.profileRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return s.withOwner(ctx, profile)
}

// CreateOrUpdate merges the supplied fields into an existing profile,
// or creates one from exactly those fields when none exists. Omitted
// fields keep their stored values; skills and social always replace
// the stored value wholesale.
func (s *ProfileService) CreateOrUpdate(ctx context.Context, userID primitive.ObjectID, input ProfileInput) (*domain.Profile, error) {
	patch := buildPatch(input)

	existing, err := s.profileRepo.GetByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if existing != nil {
		updated, err := s.profileRepo.Update(ctx, userID, patch)
		if err != nil {
			return nil, fmt.Errorf("updating profile: %w", err)
		}
		if updated == nil {
			// profile vanished between the existence check and the update
			return nil, ErrProfileNotFound
		}
		return s.withOwner(ctx, updated)
	}

	profile := &domain.Profile{
		ID:         primitive.NewObjectID(),
		UserID:     userID,
		Company:    deref(patch.Company),
		Website:    deref(patch.Website),
		Location:   deref(patch.Location),
		Bio:        deref(patch.Bio),
		Status:     deref(patch.Status),
		Skills:     patch.Skills,
		Social:     *patch.Social,
		Experience: []domain.Experience{},
		Education:  []domain.Education{},
		CreatedAt:  time.Now(),
	}

	if err := s.profileRepo.Create(ctx, profile); err != nil {
		return nil, fmt.Errorf("creating profile: %w", err)
	}
	return s.withOwner(ctx, profile)
}

func (s *ProfileService) List(ctx context.Context) ([]domain.Profile, error) {
	profiles, err := s.profileRepo.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	for i := range profiles {
		if _, err := s.withOwner(ctx, &profiles[i]); err != nil {
			return nil, err
		}
	}
	return profiles, nil
}

// GetByUserID looks up a profile by its owner's id. A malformed id is
// reported the same way as a missing profile.
func (s *ProfileService) GetByUserID(ctx context.Context, userID string) (*domain.Profile, error) {
	oid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, ErrProfileNotFound
	}

	profile, err := s.profileRepo.GetByUser(ctx, oid)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return s.withOwner(ctx, profile)
}

// DeleteAccount removes the user's profile and the user record itself.
func (s *ProfileService) DeleteAccount(ctx context.Context, userID primitive.ObjectID) error {
	if err := s.profileRepo.DeleteByUser(ctx, userID); err != nil {
		return fmt.Errorf("deleting profile: %w", err)
	}
	if err := s.userRepo.Delete(ctx, userID); err != nil {
		return fmt.Errorf("deleting user: %w", err)
	}
	return nil
}

// AddExperience prepends a new entry, keeping the sequence most recent
// first. Identical payloads produce distinct entries.
func (s *ProfileService) AddExperience(ctx context.Context, userID primitive.ObjectID, input ExperienceInput) (*domain.Profile, error) {
	exp := domain.Experience{
		ID:          primitive.NewObjectID(),
		Title:       input.Title,
		Company:     input.Company,
		Location:    input.Location,
		From:        input.From,
		To:          input.To,
		Current:     input.Current,
		Description: input.Description,
	}

	profile, err := s.profileRepo.AddExperience(ctx, userID, exp)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return s.withOwner(ctx, profile)
}

// RemoveExperience deletes the entry with the given id. An unknown or
// malformed id is a no-op returning the unchanged profile.
func (s *ProfileService) RemoveExperience(ctx context.Context, userID primitive.ObjectID, expID string) (*domain.Profile, error) {
	oid, err := primitive.ObjectIDFromHex(expID)
	if err != nil {
		return s.GetMine(ctx, userID)
	}

	profile, err := s.profileRepo.RemoveExperience(ctx, userID, oid)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return s.withOwner(ctx, profile)
}

func (s *ProfileService) AddEducation(ctx context.Context, userID primitive.ObjectID, input EducationInput) (*domain.Profile, error) {
	edu := domain.Education{
		ID:           primitive.NewObjectID(),
		School:       input.School,
		Degree:       input.Degree,
		FieldOfStudy: input.FieldOfStudy,
		From:         input.From,
		To:           input.To,
		Current:      input.Current,
		Description:  input.Description,
	}

	profile, err := s.profileRepo.AddEducation(ctx, userID, edu)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return s.withOwner(ctx, profile)
}

func (s *ProfileService) RemoveEducation(ctx context.Context, userID primitive.ObjectID, eduID string) (*domain.Profile, error) {
	oid, err := primitive.ObjectIDFromHex(eduID)
	if err != nil {
		return s.GetMine(ctx, userID)
	}

	profile, err := s.profileRepo.RemoveEducation(ctx, userID, oid)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, ErrProfileNotFound
	}
	return s.withOwner(ctx, profile)
}

// withOwner embeds the owning user's name and avatar into the profile.
func (s *ProfileService) withOwner(ctx context.Context, profile *domain.Profile) (*domain.Profile, error) {
	user, err := s.userRepo.GetByID(ctx, profile.UserID)
	if err != nil {
		return nil, err
	}
	if user != nil {
		profile.User = &domain.Owner{
			ID:     user.ID,
			Name:   user.Name,
			Avatar: user.Avatar,
		}
	}
	return profile, nil
}

// buildPatch collects only the fields present in the request. Skills is
// split on commas with each element trimmed. The social sub-record is
// rebuilt from scratch on every call. githubusername is accepted but
// not persisted.
func buildPatch(input ProfileInput) domain.ProfilePatch {
	patch := domain.ProfilePatch{}

	if input.Company != "" {
		patch.Company = &input.Company
	}
	if input.Website != "" {
		patch.Website = &input.Website
	}
	if input.Location != "" {
		patch.Location = &input.Location
	}
	if input.Bio != "" {
		patch.Bio = &input.Bio
	}
	if input.Status != "" {
		patch.Status = &input.Status
	}

	if input.Skills != "" {
		parts := strings.Split(input.Skills, ",")
		skills := make([]string, 0, len(parts))
		for _, skill := range parts {
			skills = append(skills, strings.TrimSpace(skill))
		}
		patch.Skills = skills
	}

	patch.Social = &domain.SocialLinks{
		Youtube:   input.Youtube,
		Twitter:   input.Twitter,
		Facebook:  input.Facebook,
		Linkedin:  input.Linkedin,
		Instagram: input.Instagram,
	}

	return patch
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
