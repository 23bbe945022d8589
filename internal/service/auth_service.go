package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/campuspulse/campus-api/internal/dto"
	"github.com/campuspulse/campus-api/internal/models"
	appErrors "github.com/campuspulse/campus-api/pkg/errors"
)

type userUpserter interface {
	GetOrCreate(ctx context.Context, username, major string) (models.User, error)
}

type sessionRegistry interface {
	Save(ctx context.Context, sessionID, userID string, ttl time.Duration) error
	Validate(ctx context.Context, sessionID string) (bool, error)
	Delete(ctx context.Context, sessionID string) error
}

// AuthConfig defines configuration for session issuance.
type AuthConfig struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

// AuthService signs users in by identification only: username plus major
// resolve to an account, no credentials involved. Each login issues a JWT
// carrying a session id registered for later revocation.
type AuthService struct {
	users     userUpserter
	sessions  sessionRegistry
	validator *validator.Validate
	metrics   *MetricsService
	logger    *zap.Logger
	config    AuthConfig
	now       func() time.Time
}

// AuthServiceParams groups constructor dependencies.
type AuthServiceParams struct {
	Users     userUpserter
	Sessions  sessionRegistry
	Validator *validator.Validate
	Metrics   *MetricsService
	Logger    *zap.Logger
	Config    AuthConfig
}

// NewAuthService constructs an AuthService.
func NewAuthService(params AuthServiceParams) *AuthService {
	logger := params.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	validate := params.Validator
	if validate == nil {
		validate = validator.New()
	}
	cfg := params.Config
	if cfg.TTL <= 0 {
		cfg.TTL = 24 * time.Hour
	}
	return &AuthService{
		users:     params.Users,
		sessions:  params.Sessions,
		validator: validate,
		metrics:   params.Metrics,
		logger:    logger,
		config:    cfg,
		now:       time.Now,
	}
}

// Login resolves the user (creating on first sight) and issues a session
// token.
func (s *AuthService) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error) {
	req.Username = strings.TrimSpace(req.Username)
	req.Major = strings.TrimSpace(req.Major)
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid login payload")
	}

	user, err := s.users.GetOrCreate(ctx, req.Username, req.Major)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to resolve user")
	}

	token, sessionID, err := s.generateToken(user)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to create session token")
	}

	if err := s.sessions.Save(ctx, sessionID, user.ID, s.config.TTL); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to register session")
	}

	s.metrics.RecordLogin()
	s.logger.Info("user logged in",
		zap.String("user_id", user.ID),
		zap.String("username", user.Username),
	)

	return &dto.LoginResponse{
		Token:     token,
		ExpiresIn: int64(s.config.TTL.Seconds()),
		User:      user,
	}, nil
}

// Logout revokes the caller's session. Tokens already expired still log out
// cleanly.
func (s *AuthService) Logout(ctx context.Context, claims *models.SessionClaims) error {
	if claims == nil {
		return appErrors.Clone(appErrors.ErrUnauthorized, "no session")
	}
	if err := s.sessions.Delete(ctx, claims.SessionID); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to revoke session")
	}
	s.logger.Info("user logged out", zap.String("user_id", claims.UserID))
	return nil
}

// ValidateToken parses and verifies a session token, returning its claims.
func (s *AuthService) ValidateToken(tokenString string) (*models.SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &models.SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if token.Method != jwt.SigningMethodHS256 {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(s.config.Secret), nil
	})
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrUnauthorized.Code, appErrors.ErrUnauthorized.Status, "invalid token")
	}

	claims, ok := token.Claims.(*models.SessionClaims)
	if !ok || !token.Valid {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "invalid token claims")
	}

	return claims, nil
}

// Authenticate verifies a token and requires its session to still be
// registered, so logged-out tokens stop working before expiry.
func (s *AuthService) Authenticate(ctx context.Context, tokenString string) (*models.SessionClaims, error) {
	claims, err := s.ValidateToken(tokenString)
	if err != nil {
		return nil, err
	}

	ok, err := s.sessions.Validate(ctx, claims.SessionID)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to check session")
	}
	if !ok {
		return nil, appErrors.Clone(appErrors.ErrUnauthorized, "session revoked")
	}

	return claims, nil
}

func (s *AuthService) generateToken(user models.User) (string, string, error) {
	issuedAt := s.now().UTC()
	expiresAt := issuedAt.Add(s.config.TTL)
	sessionID := uuid.NewString()
	claims := &models.SessionClaims{
		UserID:    user.ID,
		Username:  user.Username,
		Major:     user.Major,
		SessionID: sessionID,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.config.Issuer,
			Subject:   user.ID,
			ID:        sessionID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			NotBefore: jwt.NewNumericDate(issuedAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(s.config.Secret))
	if err != nil {
		return "", "", err
	}
	return signed, sessionID, nil
}
