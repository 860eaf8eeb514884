package service

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/yamori/recipebook/internal/domain"
)

type mockUserRepo struct {
	user domain.User
}

func (m *mockUserRepo) Create(ctx context.Context, user domain.User) (domain.User, error) {
	return user, nil
}

func (m *mockUserRepo) Get(ctx context.Context, id int64) (domain.User, error) {
	return m.user, nil
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	if email != m.user.Email {
		return domain.User{}, domain.NotFoundError{Resource: "user"}
	}
	return m.user, nil
}

func (m *mockUserRepo) Update(ctx context.Context, user domain.User) (domain.User, error) {
	return user, nil
}

type mockTokenRepo struct {
	tokens   map[string]int64
	resolves int
}

func newMockTokenRepo() *mockTokenRepo {
	return &mockTokenRepo{tokens: map[string]int64{}}
}

func (m *mockTokenRepo) Store(ctx context.Context, token string, userID int64) error {
	m.tokens[token] = userID
	return nil
}

func (m *mockTokenRepo) Resolve(ctx context.Context, token string) (int64, error) {
	m.resolves++
	userID, ok := m.tokens[token]
	if !ok {
		return 0, domain.ErrInvalidCredentials
	}
	return userID, nil
}

func testUser(t *testing.T) domain.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte("secret123"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	return domain.User{ID: 7, Email: "cook@example.com", PasswordHash: string(hash)}
}

func TestIssueTokenAndAuthenticate(t *testing.T) {
	tokens := newMockTokenRepo()
	svc := NewAuthService(&mockUserRepo{user: testUser(t)}, tokens)

	token, err := svc.IssueToken(context.Background(), "cook@example.com", "secret123")
	if err != nil {
		t.Fatalf("issue failed: %v", err)
	}
	if token == "" {
		t.Fatalf("expected a token")
	}

	userID, err := svc.Authenticate(context.Background(), token)
	if err != nil {
		t.Fatalf("authenticate failed: %v", err)
	}
	if userID != 7 {
		t.Fatalf("expected user 7, got %d", userID)
	}
}

func TestIssueTokenWrongPassword(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{user: testUser(t)}, newMockTokenRepo())

	_, err := svc.IssueToken(context.Background(), "cook@example.com", "wrong")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestIssueTokenUnknownUser(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{user: testUser(t)}, newMockTokenRepo())

	_, err := svc.IssueToken(context.Background(), "nobody@example.com", "secret123")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}

func TestAuthenticateUsesCache(t *testing.T) {
	tokens := newMockTokenRepo()
	tokens.tokens["tok"] = 7
	svc := NewAuthService(&mockUserRepo{user: testUser(t)}, tokens)

	for i := 0; i < 3; i++ {
		userID, err := svc.Authenticate(context.Background(), "tok")
		if err != nil {
			t.Fatalf("authenticate failed: %v", err)
		}
		if userID != 7 {
			t.Fatalf("expected user 7, got %d", userID)
		}
	}

	if tokens.resolves != 1 {
		t.Fatalf("expected a single repository resolve, got %d", tokens.resolves)
	}
}

func TestAuthenticateUnknownToken(t *testing.T) {
	svc := NewAuthService(&mockUserRepo{user: testUser(t)}, newMockTokenRepo())

	_, err := svc.Authenticate(context.Background(), "bogus")
	if !errors.Is(err, domain.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
}
