package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"
	"go.opentelemetry.io/otel"
	"golang.org/x/crypto/bcrypt"

	"github.com/yamori/recipebook/internal/domain"
	"github.com/yamori/recipebook/internal/usecase"
)

var tracer = otel.Tracer("auth")

// AuthService issues and resolves opaque bearer tokens. Resolution goes
// through an in-process cache before hitting the token repository.
type AuthService struct {
	users  usecase.UserRepository
	tokens usecase.TokenRepository
	cache  *cache.Cache
}

func NewAuthService(
	users usecase.UserRepository,
	tokens usecase.TokenRepository,
) *AuthService {
	return &AuthService{
		users:  users,
		tokens: tokens,
		cache:  cache.New(10*time.Minute, 15*time.Minute),
	}
}

// IssueToken verifies the credentials and returns a fresh bearer token.
func (s *AuthService) IssueToken(ctx context.Context, email, password string) (string, error) {
	ctx, span := tracer.Start(ctx, "Auth.Service.IssueToken")
	defer span.End()

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		span.RecordError(err)
		return "", domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		span.RecordError(err)
		return "", domain.ErrInvalidCredentials
	}

	token := uuid.NewString()
	if err := s.tokens.Store(ctx, token, user.ID); err != nil {
		return "", errors.Wrap(err, "AuthService.IssueToken: store failed")
	}

	s.cache.Set(token, user.ID, cache.DefaultExpiration)
	return token, nil
}

// Authenticate resolves a bearer token to the owning user ID.
func (s *AuthService) Authenticate(ctx context.Context, token string) (int64, error) {
	ctx, span := tracer.Start(ctx, "Auth.Service.Authenticate")
	defer span.End()

	if cached, found := s.cache.Get(token); found {
		return cached.(int64), nil
	}

	userID, err := s.tokens.Resolve(ctx, token)
	if err != nil {
		span.RecordError(errors.Wrap(err, "AuthService.Authenticate: resolve failed"))
		return 0, domain.ErrInvalidCredentials
	}

	s.cache.Set(token, userID, cache.DefaultExpiration)
	return userID, nil
}
