package container

import (
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
	"github.com/robocupido/robocupido-backend/internal/cache"
	"github.com/robocupido/robocupido-backend/internal/config"
	"github.com/robocupido/robocupido-backend/internal/delivery/http"
	"github.com/robocupido/robocupido-backend/internal/delivery/http/handler"
	"github.com/robocupido/robocupido-backend/internal/delivery/http/middleware"
	"github.com/robocupido/robocupido-backend/internal/infrastructure/database"
	"github.com/robocupido/robocupido-backend/internal/infrastructure/gemini"
	"github.com/robocupido/robocupido-backend/internal/infrastructure/googleauth"
	"github.com/robocupido/robocupido-backend/internal/infrastructure/server"
	"github.com/robocupido/robocupido-backend/internal/repository/postgres"
	"github.com/robocupido/robocupido-backend/internal/usecase/auth"
	"github.com/robocupido/robocupido-backend/internal/usecase/matches"
	"github.com/robocupido/robocupido-backend/internal/usecase/registration"
	"go.uber.org/zap"
)

// Container holds all application dependencies
type Container struct {
	Config *config.Config
	Logger *zap.Logger
	DB     *sqlx.DB
	Redis  *redis.Client
	Gemini *gemini.Client
	Server *server.Server
}

// NewContainer creates a new dependency injection container
func NewContainer(cfg *config.Config, logger *zap.Logger) (*Container, error) {
	// Initialize database
	db, err := database.NewPostgresDB(&cfg.Database)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	// Initialize Redis. The status cache is an optimization; registration
	// works without it.
	var statusCache registration.StatusCache
	redisClient, err := database.NewRedisClient(&cfg.Redis)
	if err != nil {
		logger.Warn("failed to initialize redis, continuing without status cache", zap.Error(err))
		redisClient = nil
	} else {
		statusCache = cache.NewStatusCache(redisClient, logger)
	}

	// Initialize Gemini client. Enrichment is best-effort; without a client
	// embeddings simply stay null.
	var embedder registration.Embedder
	geminiClient, err := gemini.NewClient(cfg.Gemini.APIKey, cfg.Gemini.EmbeddingModel)
	if err != nil {
		logger.Warn("failed to initialize gemini client, continuing without enrichment", zap.Error(err))
		geminiClient = nil
	} else {
		embedder = geminiClient
	}

	// Initialize repositories
	userRepo := postgres.NewUserRepository(db)
	sessionRepo := postgres.NewSessionRepository(db)
	profileRepo := postgres.NewProfileRepository(db)
	matchRepo := postgres.NewMatchRepository(db)

	// Initialize use cases
	authUseCase := auth.NewGoogleAuthUseCase(
		userRepo,
		sessionRepo,
		googleauth.NewVerifier(cfg.Google.ClientID),
		cfg.JWT.Secret,
		cfg.Google.AllowedDomain,
		time.Duration(cfg.JWT.ExpiryHours)*time.Hour,
		logger,
	)

	registrationUseCase := registration.NewUseCase(
		profileRepo,
		embedder,
		statusCache,
		cfg.Gemini.Timeout,
		logger,
	)

	matchUseCase := matches.NewUseCase(
		matchRepo,
		profileRepo,
		logger,
	)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUseCase, userRepo)
	registrationHandler := handler.NewRegistrationHandler(registrationUseCase)
	matchHandler := handler.NewMatchHandler(matchUseCase)
	countdownHandler, err := handler.NewCountdownHandler(&cfg.Reveal)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize countdown handler: %w", err)
	}

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(authUseCase)

	// Initialize router
	router := http.NewRouter(
		authHandler,
		registrationHandler,
		matchHandler,
		countdownHandler,
		authMiddleware,
	)

	// Setup routes
	ginRouter := router.Setup()

	// Initialize server
	srv := server.NewServer(&cfg.Server, ginRouter, logger)

	return &Container{
		Config: cfg,
		Logger: logger,
		DB:     db,
		Redis:  redisClient,
		Gemini: geminiClient,
		Server: srv,
	}, nil
}

// Close closes all connections
func (c *Container) Close() error {
	if c.Gemini != nil {
		c.Gemini.Close()
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Warn("error closing redis", zap.Error(err))
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
