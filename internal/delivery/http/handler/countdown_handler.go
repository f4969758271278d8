package handler

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/robocupido/robocupido-backend/internal/config"
)

type CountdownHandler struct {
	revealHour int
	location   *time.Location
}

func NewCountdownHandler(cfg *config.RevealConfig) (*CountdownHandler, error) {
	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid reveal timezone %q: %w", cfg.Timezone, err)
	}
	return &CountdownHandler{revealHour: cfg.Hour, location: loc}, nil
}

// GetCountdown handles GET /countdown
func (h *CountdownHandler) GetCountdown(c *gin.Context) {
	target := nextReveal(time.Now().In(h.location), h.revealHour)
	c.JSON(http.StatusOK, gin.H{
		"endTime": target.UnixMilli(),
	})
}

// nextReveal returns the next occurrence of revealHour o'clock: today if
// still ahead, otherwise tomorrow.
func nextReveal(now time.Time, revealHour int) time.Time {
	target := time.Date(now.Year(), now.Month(), now.Day(), revealHour, 0, 0, 0, now.Location())
	if !now.Before(target) {
		target = target.AddDate(0, 0, 1)
	}
	return target
}
