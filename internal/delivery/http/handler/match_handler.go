package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/robocupido/robocupido-backend/internal/delivery/http/middleware"
	"github.com/robocupido/robocupido-backend/internal/domain"
	"github.com/robocupido/robocupido-backend/internal/usecase/matches"
)

type MatchHandler struct {
	matchUseCase *matches.UseCase
}

func NewMatchHandler(matchUseCase *matches.UseCase) *MatchHandler {
	return &MatchHandler{matchUseCase: matchUseCase}
}

// GetMyMatches handles GET /matches/me. Empty categories mean the matching
// job has not run yet; that still renders as 200 with three empty lists.
func (h *MatchHandler) GetMyMatches(c *gin.Context) {
	email := c.GetString(middleware.ContextUserEmail)
	if email == "" {
		c.JSON(http.StatusUnauthorized, ErrorResponse{Error: "unauthorized"})
		return
	}

	list, err := h.matchUseCase.GetMatchesForEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, domain.ErrProfileNotFound) {
			c.JSON(http.StatusNotFound, ErrorResponse{Error: "profile not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "failed to get matches"})
		return
	}

	c.JSON(http.StatusOK, list)
}
