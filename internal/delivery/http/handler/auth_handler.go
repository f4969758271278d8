package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/robocupido/robocupido-backend/internal/delivery/http/middleware"
	"github.com/robocupido/robocupido-backend/internal/domain"
	"github.com/robocupido/robocupido-backend/internal/repository"
	"github.com/robocupido/robocupido-backend/internal/usecase/auth"
)

type AuthHandler struct {
	authUseCase *auth.GoogleAuthUseCase
	userRepo    repository.UserRepository
}

func NewAuthHandler(authUseCase *auth.GoogleAuthUseCase, userRepo repository.UserRepository) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		userRepo:    userRepo,
	}
}

// GoogleAuthRequest carries the ID token obtained client-side from Google
type GoogleAuthRequest struct {
	IDToken string `json:"id_token" binding:"required"`
}

// GoogleAuth handles POST /auth/google
func (h *AuthHandler) GoogleAuth(c *gin.Context) {
	var req GoogleAuthRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{
			Error: "invalid request body",
		})
		return
	}

	deviceInfo := c.GetHeader("User-Agent")
	ipAddress := c.ClientIP()

	result, err := h.authUseCase.SignIn(c.Request.Context(), req.IDToken, deviceInfo, ipAddress)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrEmailDomainNotAllowed),
			errors.Is(err, domain.ErrEmailNotVerified):
			c.JSON(http.StatusForbidden, ErrorResponse{
				Error: "cuenta no permitida",
			})
		case errors.Is(err, domain.ErrUnauthenticated):
			c.JSON(http.StatusUnauthorized, ErrorResponse{
				Error: "token inválido",
			})
		default:
			c.JSON(http.StatusInternalServerError, ErrorResponse{
				Error: "authentication failed",
			})
		}
		return
	}

	c.JSON(http.StatusOK, result)
}

// Me handles GET /auth/me
func (h *AuthHandler) Me(c *gin.Context) {
	email := c.GetString(middleware.ContextUserEmail)
	if email == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	user, err := h.userRepo.GetByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "user not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get user"})
		return
	}

	c.JSON(http.StatusOK, user)
}

// Logout handles POST /auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if err := h.authUseCase.Logout(c.Request.Context(), strings.TrimSpace(token)); err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to logout"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
