package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	pkgAuth "github.com/arimendoza/coffeehaus-backend/pkg/auth"
	"github.com/arimendoza/coffeehaus-backend/pkg/auth/session"
	"github.com/arimendoza/coffeehaus-backend/pkg/config"
	"github.com/arimendoza/coffeehaus-backend/pkg/db/models"
	pkgerrors "github.com/arimendoza/coffeehaus-backend/pkg/errors"
	"github.com/arimendoza/coffeehaus-backend/pkg/security"
)

var testJWTConfig = config.JWTConfig{
	Secret:            "secret",
	Issuer:            "coffeehaus",
	ExpirationMinutes: 15,
}

type stubUserRepo struct {
	user        *models.User
	lastLoginAt *time.Time
}

func (s *stubUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if s.user == nil || s.user.Email != email {
		return nil, gorm.ErrRecordNotFound
	}
	return s.user, nil
}

func (s *stubUserRepo) UpdateLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	s.lastLoginAt = &at
	return nil
}

type stubSessionManager struct {
	generated map[string]string
	revoked   []string
}

func newStubSessionManager() *stubSessionManager {
	return &stubSessionManager{generated: map[string]string{}}
}

func (s *stubSessionManager) Generate(ctx context.Context, accessID string) (string, error) {
	token := "refresh-" + accessID
	s.generated[accessID] = token
	return token, nil
}

func (s *stubSessionManager) Rotate(ctx context.Context, oldAccessID, provided string) (string, string, error) {
	stored, ok := s.generated[oldAccessID]
	if !ok || stored != provided {
		return "", "", session.ErrInvalidRefreshToken
	}
	delete(s.generated, oldAccessID)
	newID := session.NewAccessID()
	token := "refresh-" + newID
	s.generated[newID] = token
	return newID, token, nil
}

func (s *stubSessionManager) Revoke(ctx context.Context, accessID string) error {
	s.revoked = append(s.revoked, accessID)
	delete(s.generated, accessID)
	return nil
}

func testUser(t *testing.T, password string) *models.User {
	t.Helper()
	hash, err := security.HashPassword(password, config.PasswordConfig{})
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return &models.User{
		ID:           uuid.New(),
		Email:        "ari@example.com",
		PasswordHash: hash,
		Name:         "Ari",
	}
}

func newAuthService(t *testing.T, repo userRepository, sessions sessionManager) Service {
	t.Helper()
	svc, err := NewService(ServiceParams{
		UserRepo:       repo,
		SessionManager: sessions,
		JWTConfig:      testJWTConfig,
	})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestServiceLoginSuccess(t *testing.T) {
	t.Parallel()

	repo := &stubUserRepo{user: testUser(t, "correct horse")}
	sessions := newStubSessionManager()
	svc := newAuthService(t, repo, sessions)

	resp, err := svc.Login(context.Background(), LoginRequest{
		Email:    "Ari@Example.com",
		Password: "correct horse",
	})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Fatal("expected token pair")
	}
	if resp.User == nil || resp.User.Email != "ari@example.com" {
		t.Fatalf("unexpected user payload: %+v", resp.User)
	}
	if repo.lastLoginAt == nil {
		t.Fatal("expected last login to be recorded")
	}

	claims, err := pkgAuth.ParseAccessToken(testJWTConfig, resp.AccessToken)
	if err != nil {
		t.Fatalf("parse minted token: %v", err)
	}
	if claims.Email != "ari@example.com" {
		t.Fatalf("unexpected claims email %s", claims.Email)
	}
	if _, ok := sessions.generated[claims.ID]; !ok {
		t.Fatal("expected refresh session stored under jti")
	}
}

func TestServiceLoginRejectsBadCredentials(t *testing.T) {
	t.Parallel()

	repo := &stubUserRepo{user: testUser(t, "correct horse")}
	svc := newAuthService(t, repo, newStubSessionManager())
	ctx := context.Background()

	cases := []LoginRequest{
		{Email: "ari@example.com", Password: "wrong"},
		{Email: "other@example.com", Password: "correct horse"},
		{Email: "   ", Password: "correct horse"},
	}
	for _, req := range cases {
		_, err := svc.Login(ctx, req)
		if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
			t.Fatalf("expected unauthorized for %+v, got %v", req, err)
		}
	}
}

func TestServiceRefreshRotatesSession(t *testing.T) {
	t.Parallel()

	repo := &stubUserRepo{user: testUser(t, "correct horse")}
	sessions := newStubSessionManager()
	svc := newAuthService(t, repo, sessions)
	ctx := context.Background()

	login, err := svc.Login(ctx, LoginRequest{Email: "ari@example.com", Password: "correct horse"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}

	refreshed, err := svc.Refresh(ctx, RefreshRequest{
		AccessToken:  login.AccessToken,
		RefreshToken: login.RefreshToken,
	})
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if refreshed.AccessToken == login.AccessToken {
		t.Fatal("expected a new access token")
	}
	if refreshed.RefreshToken == login.RefreshToken {
		t.Fatal("expected a new refresh token")
	}

	// The old pair is burned after rotation.
	_, err = svc.Refresh(ctx, RefreshRequest{
		AccessToken:  login.AccessToken,
		RefreshToken: login.RefreshToken,
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("expected unauthorized for reused pair, got %v", err)
	}
}

func TestServiceLogoutRevokesSession(t *testing.T) {
	t.Parallel()

	repo := &stubUserRepo{user: testUser(t, "correct horse")}
	sessions := newStubSessionManager()
	svc := newAuthService(t, repo, sessions)
	ctx := context.Background()

	login, err := svc.Login(ctx, LoginRequest{Email: "ari@example.com", Password: "correct horse"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if err := svc.Logout(ctx, login.AccessToken); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if len(sessions.revoked) != 1 {
		t.Fatalf("expected one revoked session, got %d", len(sessions.revoked))
	}
	if len(sessions.generated) != 0 {
		t.Fatal("expected session store emptied after logout")
	}
}
