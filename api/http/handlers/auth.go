package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/resumeai/api/http/presenter"
	"github.com/artem13815/resumeai/pkg/auth"
)

type AuthHandler struct {
	uc auth.AuthUseCase
}

func NewAuthHandler(uc auth.AuthUseCase) *AuthHandler {
	return &AuthHandler{uc: uc}
}

type credentialsRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type authResponse struct {
	Token string    `json:"token"`
	User  auth.User `json:"user"`
}

// Register creates an account. The first registered account becomes the
// installation admin.
func (h *AuthHandler) Register(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON body")
	}
	out, err := h.uc.Register(c.Context(), req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, auth.ErrUserAlreadyExists):
			return presenter.Error(c, http.StatusConflict, "user already exists")
		case errors.Is(err, auth.ErrInvalidCredentials):
			return presenter.Error(c, http.StatusBadRequest, "email and password are required")
		default:
			return presenter.Error(c, http.StatusInternalServerError, "failed to register")
		}
	}
	return presenter.JSON(c, http.StatusCreated, authResponse{Token: out.Token, User: out.User})
}

// Login verifies credentials and issues a JWT.
func (h *AuthHandler) Login(c *fiber.Ctx) error {
	var req credentialsRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON body")
	}
	out, err := h.uc.Login(c.Context(), req.Email, req.Password)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "invalid credentials")
	}
	return presenter.JSON(c, http.StatusOK, authResponse{Token: out.Token, User: out.User})
}
