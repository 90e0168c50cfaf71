package handler

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/artembaranov/accounts/internal/domain"
	"github.com/artembaranov/accounts/internal/metrics"
	"github.com/artembaranov/accounts/internal/usecase"
	"github.com/gin-gonic/gin"
)

// authUsecaser is the subset of AuthUsecase the handler needs.
// Defined here (point of use) so tests can inject a fake.
type authUsecaser interface {
	Register(ctx context.Context, in usecase.RegisterInput) (*usecase.AuthResult, error)
	Login(ctx context.Context, in usecase.LoginInput) (*usecase.AuthResult, error)
}

type AuthHandler struct {
	authUsecase authUsecaser
	logger      *slog.Logger
}

func NewAuthHandler(authUsecase authUsecaser, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		logger:      logger.With("component", "auth_handler"),
	}
}

// Field validation happens in the usecase (which owns the exact
// messages), so no binding tags here: absent fields stay empty strings.
type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type userResponse struct {
	ID       int64  `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name"`
}

type authResponse struct {
	Token string       `json:"token"`
	User  userResponse `json:"user"`
}

// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errBadRequest})
		return
	}

	res, err := h.authUsecase.Register(c.Request.Context(), usecase.RegisterInput{
		Email:    req.Email,
		Password: req.Password,
		FullName: req.FullName,
	})
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues("failure").Inc()
		h.respondError(c, err, errFieldsRequired)
		return
	}

	metrics.RegistrationsTotal.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, toAuthResponse(res))
}

// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": errBadRequest})
		return
	}

	res, err := h.authUsecase.Login(c.Request.Context(), usecase.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		h.respondError(c, err, errEmailPasswordRequired)
		return
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	c.JSON(http.StatusOK, toAuthResponse(res))
}

// respondError maps domain errors to the status/message contract.
// missingFieldsMsg differs between the two flows (the source wording
// for register and login is not the same).
func (h *AuthHandler) respondError(c *gin.Context, err error, missingFieldsMsg string) {
	switch {
	case errors.Is(err, domain.ErrFieldsRequired):
		c.JSON(http.StatusBadRequest, gin.H{"error": missingFieldsMsg})
	case errors.Is(err, domain.ErrEmailInvalid):
		c.JSON(http.StatusBadRequest, gin.H{"error": errEmailInvalid})
	case errors.Is(err, domain.ErrPasswordTooShort):
		c.JSON(http.StatusBadRequest, gin.H{"error": errPasswordTooShort})
	case errors.Is(err, domain.ErrEmailTaken):
		c.JSON(http.StatusBadRequest, gin.H{"error": errEmailTaken})
	case errors.Is(err, domain.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": errInvalidCredentials})
	default:
		h.logger.ErrorContext(c.Request.Context(), "auth flow failed", "error", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": errInternalServer})
	}
}

func toAuthResponse(res *usecase.AuthResult) authResponse {
	return authResponse{
		Token: res.Token,
		User: userResponse{
			ID:       res.User.ID,
			Email:    res.User.Email,
			FullName: res.User.FullName,
		},
	}
}
