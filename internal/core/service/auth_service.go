package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/cinewatch/movienight/internal/core/domain"
	"github.com/cinewatch/movienight/internal/core/ports"
)

const minPasswordLength = 8

// AuthService implements registration and login. It is stateless per
// request; the credential store's unique email constraint is the only
// serialization point for concurrent registrations.
type AuthService struct {
	store   ports.CredentialStore
	issuer  ports.TokenIssuer
	limiter ports.LoginLimiter
	logger  zerolog.Logger
}

// NewAuthService wires the credential store, the token issuer, and an
// optional login limiter (nil disables throttling).
func NewAuthService(store ports.CredentialStore, issuer ports.TokenIssuer, limiter ports.LoginLimiter, logger zerolog.Logger) *AuthService {
	return &AuthService{store: store, issuer: issuer, limiter: limiter, logger: logger}
}

// Register creates a new account and returns a fresh session token for it.
func (s *AuthService) Register(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidInput
	}
	if len(password) < minPasswordLength {
		return "", nil, domain.ErrWeakPassword
	}

	if _, err := s.store.FindByEmail(ctx, email); err == nil {
		return "", nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return "", nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", nil, err
	}

	user := &domain.User{
		ID:           uuid.NewString(),
		Email:        email,
		PasswordHash: string(hash),
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.store.Create(ctx, user)
	if err != nil {
		return "", nil, err
	}

	token, err := s.issuer.Issue(domain.Session{UserID: created.ID, Email: created.Email})
	if err != nil {
		return "", nil, err
	}

	s.logger.Info().Str("user_id", created.ID).Msg("user registered")
	return token, created, nil
}

// Login checks the password against the stored hash and returns a session
// token. A missing user and a wrong password are indistinguishable to the
// caller: both surface as ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *domain.User, error) {
	if email == "" || password == "" {
		return "", nil, domain.ErrInvalidInput
	}

	if s.limiter != nil {
		allowed, retryAfter, err := s.limiter.Allow(ctx, email)
		if err != nil {
			// A broken limiter must not lock every account out.
			s.logger.Warn().Err(err).Msg("login limiter check failed, allowing attempt")
		} else if !allowed {
			return "", nil, &domain.ThrottledError{RetryAfter: retryAfter}
		}
	}

	user, err := s.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrUserNotFound) {
			s.recordFailure(ctx, email)
			return "", nil, domain.ErrInvalidCredentials
		}
		return "", nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		s.recordFailure(ctx, email)
		return "", nil, domain.ErrInvalidCredentials
	}

	token, err := s.issuer.Issue(domain.Session{UserID: user.ID, Email: user.Email})
	if err != nil {
		return "", nil, err
	}

	if s.limiter != nil {
		if err := s.limiter.Reset(ctx, email); err != nil {
			s.logger.Warn().Err(err).Msg("login limiter reset failed")
		}
	}

	return token, user, nil
}

func (s *AuthService) recordFailure(ctx context.Context, email string) {
	if s.limiter == nil {
		return
	}
	if err := s.limiter.RecordFailure(ctx, email); err != nil {
		s.logger.Warn().Err(err).Msg("login limiter record failed")
	}
}
