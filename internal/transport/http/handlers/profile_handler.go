package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/vedran77/devconnect/internal/service"
	"github.com/vedran77/devconnect/internal/transport/http/middleware"
	"github.com/vedran77/devconnect/pkg/validator"
)

type ProfileHandler struct {
	profileService *service.ProfileService
	githubService  *service.GithubService
}

func NewProfileHandler(profileService *service.ProfileService, githubService *service.GithubService) *ProfileHandler {
	return &ProfileHandler{
		profileService: profileService,
		githubService:  githubService,
	}
}

// GetMine returns the authenticated user's profile.
func (h *ProfileHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	profile, err := h.profileService.GetMine(r.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			writeMsg(w, http.StatusBadRequest, "There is no profile for this user")
			return
		}
		log.Printf("ERROR get my profile: %v", err)
		writeServerError(w)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// CreateOrUpdate creates the user's profile or merges the supplied
// fields into the existing one.
func (h *ProfileHandler) CreateOrUpdate(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var input service.ProfileInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrors(w, validator.ValidationErrors{{Msg: "Invalid request body"}})
		return
	}

	if errs := validator.ValidateProfile(input.Status, input.Skills); errs.HasErrors() {
		writeErrors(w, errs)
		return
	}

	profile, err := h.profileService.CreateOrUpdate(r.Context(), userID, input)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			writeMsg(w, http.StatusBadRequest, "There is no profile for this user")
			return
		}
		log.Printf("ERROR create/update profile: %v", err)
		writeServerError(w)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// List returns all profiles, each joined with its owner.
func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profileService.List(r.Context())
	if err != nil {
		log.Printf("ERROR list profiles: %v", err)
		writeServerError(w)
		return
	}

	writeJSON(w, http.StatusOK, profiles)
}

// GetByUserID returns one profile by its owner's id. Malformed and
// unknown ids both answer 400 with the same message.
func (h *ProfileHandler) GetByUserID(w http.ResponseWriter, r *http.Request) {
	profile, err := h.profileService.GetByUserID(r.Context(), r.PathValue("user_id"))
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			writeMsg(w, http.StatusBadRequest, "Profile not found")
			return
		}
		log.Printf("ERROR get profile by user: %v", err)
		writeServerError(w)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// DeleteAccount removes the authenticated user's profile and account.
func (h *ProfileHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	if err := h.profileService.DeleteAccount(r.Context(), userID); err != nil {
		log.Printf("ERROR delete account: %v", err)
		writeServerError(w)
		return
	}

	writeMsg(w, http.StatusOK, "User deleted")
}

// AddExperience prepends an experience entry and returns the updated
// profile.
func (h *ProfileHandler) AddExperience(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var input service.ExperienceInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrors(w, validator.ValidationErrors{{Msg: "Invalid request body"}})
		return
	}

	if errs := validator.ValidateExperience(input.Title, input.Company, input.From); errs.HasErrors() {
		writeErrors(w, errs)
		return
	}

	profile, err := h.profileService.AddExperience(r.Context(), userID, input)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			writeMsg(w, http.StatusBadRequest, "There is no profile for this user")
			return
		}
		log.Printf("ERROR add experience: %v", err)
		writeServerError(w)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// RemoveExperience deletes the entry matching the path id, if any.
func (h *ProfileHandler) RemoveExperience(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	profile, err := h.profileService.RemoveExperience(r.Context(), userID, r.PathValue("exp_id"))
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			writeMsg(w, http.StatusBadRequest, "There is no profile for this user")
			return
		}
		log.Printf("ERROR remove experience: %v", err)
		writeServerError(w)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) AddEducation(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	var input service.EducationInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrors(w, validator.ValidationErrors{{Msg: "Invalid request body"}})
		return
	}

	if errs := validator.ValidateEducation(input.School, input.Degree, input.FieldOfStudy, input.From); errs.HasErrors() {
		writeErrors(w, errs)
		return
	}

	profile, err := h.profileService.AddEducation(r.Context(), userID, input)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			writeMsg(w, http.StatusBadRequest, "There is no profile for this user")
			return
		}
		log.Printf("ERROR add education: %v", err)
		writeServerError(w)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) RemoveEducation(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	profile, err := h.profileService.RemoveEducation(r.Context(), userID, r.PathValue("edu_id"))
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			writeMsg(w, http.StatusBadRequest, "There is no profile for this user")
			return
		}
		log.Printf("ERROR remove education: %v", err)
		writeServerError(w)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// GithubRepos relays the user's latest public repos from the GitHub API.
func (h *ProfileHandler) GithubRepos(w http.ResponseWriter, r *http.Request) {
	repos, err := h.githubService.Repos(r.Context(), r.PathValue("username"))
	if err != nil {
		if errors.Is(err, service.ErrGithubNotFound) {
			writeMsg(w, http.StatusNotFound, "No Github profile found")
			return
		}
		log.Printf("ERROR github repos: %v", err)
		writeServerError(w)
		return
	}

	writeJSON(w, http.StatusOK, repos)
}
