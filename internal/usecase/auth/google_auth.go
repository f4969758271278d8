package auth

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/robocupido/robocupido-backend/internal/domain"
	"github.com/robocupido/robocupido-backend/internal/infrastructure/googleauth"
	"github.com/robocupido/robocupido-backend/internal/repository"
	"go.uber.org/zap"
)

// TokenVerifier validates a Google ID token and returns its claims.
type TokenVerifier interface {
	Verify(ctx context.Context, idToken string) (*googleauth.Claims, error)
}

type GoogleAuthUseCase struct {
	userRepo      repository.UserRepository
	sessionRepo   repository.SessionRepository
	verifier      TokenVerifier
	jwtSecret     string
	allowedDomain string
	tokenTTL      time.Duration
	logger        *zap.Logger
}

func NewGoogleAuthUseCase(
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	verifier TokenVerifier,
	jwtSecret string,
	allowedDomain string,
	tokenTTL time.Duration,
	logger *zap.Logger,
) *GoogleAuthUseCase {
	return &GoogleAuthUseCase{
		userRepo:      userRepo,
		sessionRepo:   sessionRepo,
		verifier:      verifier,
		jwtSecret:     jwtSecret,
		allowedDomain: allowedDomain,
		tokenTTL:      tokenTTL,
		logger:        logger,
	}
}

// AuthResponse represents the authentication response
type AuthResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      *domain.User `json:"user"`
}

// Identity is the authenticated caller attached to the request context.
type Identity struct {
	UserID uuid.UUID
	Email  string
}

// SignIn verifies a Google ID token and establishes a session. The
// email-domain allow-list and the email_verified claim are enforced here, at
// the callback stage; rejected accounts never reach application state.
func (uc *GoogleAuthUseCase) SignIn(ctx context.Context, idToken, deviceInfo, ipAddress string) (*AuthResponse, error) {
	claims, err := uc.verifier.Verify(ctx, idToken)
	if err != nil {
		uc.logger.Debug("id token verification failed", zap.Error(err))
		return nil, domain.ErrUnauthenticated
	}

	if !strings.HasSuffix(claims.Email, "@"+uc.allowedDomain) {
		return nil, domain.ErrEmailDomainNotAllowed
	}
	if !claims.EmailVerified {
		return nil, domain.ErrEmailNotVerified
	}

	user := &domain.User{
		ID:          uuid.New(),
		GoogleSub:   claims.Subject,
		Email:       claims.Email,
		DisplayName: claims.Name,
	}
	if err := uc.userRepo.Upsert(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to upsert user: %w", err)
	}

	token, expiresAt, err := uc.issueToken(user)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}

	session := &domain.Session{
		ID:         uuid.New(),
		UserID:     user.ID,
		TokenHash:  hashToken(token),
		DeviceInfo: optional(deviceInfo),
		IPAddress:  optional(ipAddress),
		ExpiresAt:  expiresAt,
	}
	if err := uc.sessionRepo.Create(ctx, session); err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	uc.logger.Info("user signed in", zap.String("user_id", user.ID.String()))
	return &AuthResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      user,
	}, nil
}

// Authenticate resolves a bearer token to an Identity. Every failure mode
// collapses to ErrUnauthenticated for the caller.
func (uc *GoogleAuthUseCase) Authenticate(ctx context.Context, token string) (*Identity, error) {
	parsed, err := jwt.Parse(token, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(uc.jwtSecret), nil
	})
	if err != nil || !parsed.Valid {
		return nil, domain.ErrUnauthenticated
	}

	mapClaims, ok := parsed.Claims.(jwt.MapClaims)
	if !ok {
		return nil, domain.ErrUnauthenticated
	}
	sub, _ := mapClaims["sub"].(string)
	email, _ := mapClaims["email"].(string)
	userID, err := uuid.Parse(sub)
	if err != nil || email == "" {
		return nil, domain.ErrUnauthenticated
	}

	session, err := uc.sessionRepo.GetByTokenHash(ctx, hashToken(token))
	if err != nil {
		return nil, domain.ErrUnauthenticated
	}
	if session.Expired(time.Now()) {
		return nil, domain.ErrUnauthenticated
	}

	return &Identity{UserID: userID, Email: email}, nil
}

// Logout tears down the session behind the token.
func (uc *GoogleAuthUseCase) Logout(ctx context.Context, token string) error {
	if err := uc.sessionRepo.DeleteByTokenHash(ctx, hashToken(token)); err != nil {
		if err == domain.ErrSessionNotFound {
			return nil
		}
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

func (uc *GoogleAuthUseCase) issueToken(user *domain.User) (string, time.Time, error) {
	expiresAt := time.Now().Add(uc.tokenTTL)
	claims := jwt.MapClaims{
		"sub":   user.ID.String(),
		"email": user.Email,
		"iat":   time.Now().Unix(),
		"exp":   expiresAt.Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(uc.jwtSecret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

func hashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}

func optional(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
