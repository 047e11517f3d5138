package http

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/MKhiriev/go-employee-keeper/internal/logger"
	"github.com/MKhiriev/go-employee-keeper/internal/service"
	"github.com/MKhiriev/go-employee-keeper/internal/utils"
	"github.com/MKhiriev/go-employee-keeper/models"
)

const (
	formFieldUsername = "username"
	formFieldPassword = "password"
)

func (h *Handler) signup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}

	registeredUser, err := h.services.AuthService.RegisterUser(ctx, user)
	if err != nil {
		writeError(w, r, err)
		return
	}

	log.Info().Str("username", registeredUser.Username).Msg("user registered")
	utils.WriteJSON(w, models.MessageResponse{Message: "User created successfully"}, http.StatusCreated)
}

// login accepts an OAuth2 password-grant style form body and returns a
// bearer access token.
func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	if err := r.ParseForm(); err != nil {
		writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidRequestBody, err))
		return
	}

	user := models.User{
		Username: r.PostForm.Get(formFieldUsername),
		Password: r.PostForm.Get(formFieldPassword),
	}

	foundUser, err := h.services.AuthService.Login(ctx, user)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			h.recordLogin(false)
		}
		writeError(w, r, err)
		return
	}

	token, err := h.services.AuthService.CreateToken(ctx, foundUser)
	if err != nil {
		writeError(w, r, err)
		return
	}
	h.recordLogin(true)

	log.Debug().Str("username", foundUser.Username).Msg("user successfully logged in")
	utils.WriteJSON(w, models.AccessToken{
		AccessToken: token.SignedString,
		TokenType:   models.TokenTypeBearer,
	}, http.StatusOK)
}

func (h *Handler) recordLogin(success bool) {
	if h.metrics != nil {
		h.metrics.RecordLogin(success)
	}
}
