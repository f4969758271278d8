package http

import (
	"github.com/gin-gonic/gin"
	"github.com/robocupido/robocupido-backend/internal/delivery/http/handler"
	"github.com/robocupido/robocupido-backend/internal/delivery/http/middleware"
)

type Router struct {
	authHandler         *handler.AuthHandler
	registrationHandler *handler.RegistrationHandler
	matchHandler        *handler.MatchHandler
	countdownHandler    *handler.CountdownHandler
	authMiddleware      *middleware.AuthMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	registrationHandler *handler.RegistrationHandler,
	matchHandler *handler.MatchHandler,
	countdownHandler *handler.CountdownHandler,
	authMiddleware *middleware.AuthMiddleware,
) *Router {
	return &Router{
		authHandler:         authHandler,
		registrationHandler: registrationHandler,
		matchHandler:        matchHandler,
		countdownHandler:    countdownHandler,
		authMiddleware:      authMiddleware,
	}
}

func (r *Router) Setup() *gin.Engine {
	router := gin.Default()

	// Health check (supports both GET and HEAD)
	healthHandler := func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status": "ok",
		})
	}
	router.GET("/health", healthHandler)
	router.HEAD("/health", healthHandler)

	// API v1
	v1 := router.Group("/api/v1")
	{
		// Auth routes (public)
		auth := v1.Group("/auth")
		{
			auth.POST("/google", r.authHandler.GoogleAuth)
			auth.POST("/logout", r.authMiddleware.RequireAuth(), r.authHandler.Logout)
			auth.GET("/me", r.authMiddleware.RequireAuth(), r.authHandler.Me)
		}

		// Countdown to match reveal (public)
		v1.GET("/countdown", r.countdownHandler.GetCountdown)

		// Protected routes
		protected := v1.Group("")
		protected.Use(r.authMiddleware.RequireAuth())
		{
			protected.POST("/register", r.registrationHandler.Register)
			protected.GET("/profile/check", r.registrationHandler.CheckSubmission)
			protected.GET("/matches/me", r.matchHandler.GetMyMatches)
		}
	}

	return router
}
