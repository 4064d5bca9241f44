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

type AuthHandler struct {
	authService *service.AuthService
}

func NewAuthHandler(authService *service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates an account and responds with a signed token.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var input service.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrors(w, validator.ValidationErrors{{Msg: "Invalid request body"}})
		return
	}

	if errs := validator.ValidateRegister(input.Name, input.Email, input.Password); errs.HasErrors() {
		writeErrors(w, errs)
		return
	}

	token, err := h.authService.Register(r.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			writeErrors(w, validator.ValidationErrors{{Msg: "User already exists"}})
			return
		}
		log.Printf("ERROR register: %v", err)
		writeServerError(w)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Login exchanges valid credentials for a signed token.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var input service.LoginInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrors(w, validator.ValidationErrors{{Msg: "Invalid request body"}})
		return
	}

	if errs := validator.ValidateLogin(input.Email, input.Password); errs.HasErrors() {
		writeErrors(w, errs)
		return
	}

	token, err := h.authService.Login(r.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeErrors(w, validator.ValidationErrors{{Msg: "Invalid Credentials"}})
			return
		}
		log.Printf("ERROR login: %v", err)
		writeServerError(w)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"token": token})
}

// Me returns the authenticated user's record, password excluded.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID := middleware.GetUserID(r.Context())

	user, err := h.authService.CurrentUser(r.Context(), userID)
	if err != nil {
		log.Printf("ERROR current user: %v", err)
		writeServerError(w)
		return
	}
	if user == nil {
		// valid token for an account that has since been deleted
		writeMsg(w, http.StatusBadRequest, "User not found")
		return
	}

	writeJSON(w, http.StatusOK, user)
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func writeMsg(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"msg": msg})
}

func writeErrors(w http.ResponseWriter, errs validator.ValidationErrors) {
	writeJSON(w, http.StatusBadRequest, map[string]any{"errors": errs})
}

func writeServerError(w http.ResponseWriter) {
	http.Error(w, "Server Error", http.StatusInternalServerError)
}
