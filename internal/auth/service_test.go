package auth

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	redislib "github.com/redis/go-redis/v9"
	"gorm.io/gorm"

	"github.com/ayurnest/ayurnest-backend/internal/users"
	pkgAuth "github.com/ayurnest/ayurnest-backend/pkg/auth"
	"github.com/ayurnest/ayurnest-backend/pkg/auth/session"
	"github.com/ayurnest/ayurnest-backend/pkg/config"
	"github.com/ayurnest/ayurnest-backend/pkg/db/models"
	pkgerrors "github.com/ayurnest/ayurnest-backend/pkg/errors"
)

type fakeUserRepo struct {
	byEmail map[string]*models.User
	byID    map[uuid.UUID]*models.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{
		byEmail: map[string]*models.User{},
		byID:    map[uuid.UUID]*models.User{},
	}
}

func (f *fakeUserRepo) WithTx(tx *gorm.DB) users.Repository { return f }

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	user.ID = uuid.New()
	f.byEmail[user.Email] = user
	f.byID[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	if user, ok := f.byID[id]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	if user, ok := f.byEmail[strings.ToLower(strings.TrimSpace(email))]; ok {
		return user, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	_, ok := f.byEmail[email]
	return ok, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *models.User) error { return nil }

func (f *fakeUserRepo) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	user, ok := f.byID[id]
	if !ok {
		return gorm.ErrRecordNotFound
	}
	user.PasswordHash = hash
	return nil
}

func (f *fakeUserRepo) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return nil
}

type fakeSessionManager struct {
	sessions map[string]string
	revoked  []string
	rotated  int
}

func newFakeSessionManager() *fakeSessionManager {
	return &fakeSessionManager{sessions: map[string]string{}}
}

func (f *fakeSessionManager) Generate(ctx context.Context, accessID string) (string, error) {
	refresh := "refresh-" + accessID
	f.sessions[accessID] = refresh
	return refresh, nil
}

func (f *fakeSessionManager) Rotate(ctx context.Context, oldAccessID, provided string) (string, string, error) {
	stored, ok := f.sessions[oldAccessID]
	if !ok || stored != provided {
		return "", "", session.ErrInvalidRefreshToken
	}
	delete(f.sessions, oldAccessID)
	f.rotated++
	newID := uuid.NewString()
	refresh := "refresh-" + newID
	f.sessions[newID] = refresh
	return newID, refresh, nil
}

func (f *fakeSessionManager) Revoke(ctx context.Context, accessID string) error {
	delete(f.sessions, accessID)
	f.revoked = append(f.revoked, accessID)
	return nil
}

type fakeResetStore struct {
	values map[string]string
}

func newFakeResetStore() *fakeResetStore {
	return &fakeResetStore{values: map[string]string{}}
}

func (f *fakeResetStore) Set(ctx context.Context, key string, value any, ttl time.Duration) error {
	f.values[key] = fmt.Sprint(value)
	return nil
}

func (f *fakeResetStore) Get(ctx context.Context, key string) (string, error) {
	if v, ok := f.values[key]; ok {
		return v, nil
	}
	return "", redislib.Nil
}

func (f *fakeResetStore) Del(ctx context.Context, keys ...string) error {
	for _, key := range keys {
		delete(f.values, key)
	}
	return nil
}

func (f *fakeResetStore) PasswordResetKey(token string) string {
	return "pwreset:" + token
}

type fakeTxRunner struct{}

func (fakeTxRunner) WithTx(ctx context.Context, fn func(tx *gorm.DB) error) error {
	return fn(nil)
}

func testJWTConfig() config.JWTConfig {
	return config.JWTConfig{
		Secret:            "test-secret",
		Issuer:            "ayurnest-test",
		ExpirationMinutes: 15,
	}
}

func testPasswordConfig() config.PasswordConfig {
	// Weak argon parameters keep the hash fast in tests.
	return config.PasswordConfig{
		ArgonMemoryKB:    8,
		ArgonTime:        1,
		ArgonParallelism: 1,
		ArgonSaltLen:     8,
		ArgonKeyLen:      16,
		ResetTokenTTL:    30 * time.Minute,
	}
}

type authFixture struct {
	svc      Service
	users    *fakeUserRepo
	sessions *fakeSessionManager
	resets   *fakeResetStore
}

func newAuthFixture(t *testing.T) *authFixture {
	t.Helper()
	userRepo := newFakeUserRepo()
	sessions := newFakeSessionManager()
	resets := newFakeResetStore()
	svc, err := NewService(ServiceParams{
		UserRepo:       userRepo,
		TxRunner:       fakeTxRunner{},
		SessionManager: sessions,
		ResetStore:     resets,
		JWTConfig:      testJWTConfig(),
		PasswordConfig: testPasswordConfig(),
	})
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return &authFixture{svc: svc, users: userRepo, sessions: sessions, resets: resets}
}

func (f *authFixture) register(t *testing.T, email, password string) *LoginResponse {
	t.Helper()
	resp, err := f.svc.Register(context.Background(), RegisterRequest{
		Email:       email,
		Password:    password,
		DisplayName: "Test User",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	return resp
}

func TestRegisterIssuesTokens(t *testing.T) {
	t.Parallel()

	f := newAuthFixture(t)
	resp := f.register(t, "Asha@Example.com", "correct-horse")

	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Fatal("expected token pair")
	}
	if resp.User.Email != "asha@example.com" {
		t.Fatalf("email not normalized: %q", resp.User.Email)
	}

	claims, err := pkgAuth.ParseAccessToken(testJWTConfig(), resp.AccessToken)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}
	if claims.UserID != resp.User.ID {
		t.Fatalf("claims user id = %s, want %s", claims.UserID, resp.User.ID)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	t.Parallel()

	f := newAuthFixture(t)
	f.register(t, "asha@example.com", "correct-horse")

	_, err := f.svc.Register(context.Background(), RegisterRequest{
		Email: "asha@example.com", Password: "other-pass", DisplayName: "Dup",
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeConflict {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLoginWrongPasswordUniformMessage(t *testing.T) {
	t.Parallel()

	f := newAuthFixture(t)
	f.register(t, "asha@example.com", "correct-horse")

	for _, req := range []LoginRequest{
		{Email: "asha@example.com", Password: "wrong"},
		{Email: "nobody@example.com", Password: "whatever"},
	} {
		_, err := f.svc.Login(context.Background(), req)
		typed := pkgerrors.As(err)
		if typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
			t.Fatalf("unexpected error for %s: %v", req.Email, err)
		}
		// The message must not reveal whether the account exists.
		if typed.Message() != invalidCredentialsMessage {
			t.Fatalf("message leaks account state: %q", typed.Message())
		}
	}
}

func TestLoginInactiveAccount(t *testing.T) {
	t.Parallel()

	f := newAuthFixture(t)
	resp := f.register(t, "asha@example.com", "correct-horse")
	f.users.byID[resp.User.ID].IsActive = false

	_, err := f.svc.Login(context.Background(), LoginRequest{
		Email: "asha@example.com", Password: "correct-horse",
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestRefreshRotatesSession(t *testing.T) {
	t.Parallel()

	f := newAuthFixture(t)
	resp := f.register(t, "asha@example.com", "correct-horse")

	rotated, err := f.svc.Refresh(context.Background(), RefreshRequest{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	})
	if err != nil {
		t.Fatalf("Refresh: %v", err)
	}
	if rotated.RefreshToken == resp.RefreshToken {
		t.Fatal("refresh token was not rotated")
	}
	if f.sessions.rotated != 1 {
		t.Fatalf("rotated %d times, want 1", f.sessions.rotated)
	}

	// The old pair is dead after rotation.
	_, err = f.svc.Refresh(context.Background(), RefreshRequest{
		AccessToken:  resp.AccessToken,
		RefreshToken: resp.RefreshToken,
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	t.Parallel()

	f := newAuthFixture(t)
	resp := f.register(t, "asha@example.com", "correct-horse")

	claims, err := pkgAuth.ParseAccessToken(testJWTConfig(), resp.AccessToken)
	if err != nil {
		t.Fatalf("parse access token: %v", err)
	}
	if err := f.svc.Logout(context.Background(), claims.ID); err != nil {
		t.Fatalf("Logout: %v", err)
	}
	if len(f.sessions.revoked) != 1 || f.sessions.revoked[0] != claims.ID {
		t.Fatalf("session not revoked: %v", f.sessions.revoked)
	}
}

func TestForgotPasswordUnknownEmail(t *testing.T) {
	t.Parallel()

	f := newAuthFixture(t)

	token, err := f.svc.ForgotPassword(context.Background(), ForgotPasswordRequest{Email: "nobody@example.com"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token != "" {
		t.Fatal("unknown email must not yield a token")
	}
}

func TestResetPasswordIsSingleUse(t *testing.T) {
	t.Parallel()

	f := newAuthFixture(t)
	f.register(t, "asha@example.com", "correct-horse")

	token, err := f.svc.ForgotPassword(context.Background(), ForgotPasswordRequest{Email: "asha@example.com"})
	if err != nil {
		t.Fatalf("ForgotPassword: %v", err)
	}
	if token == "" {
		t.Fatal("expected reset token")
	}

	err = f.svc.ResetPassword(context.Background(), ResetPasswordRequest{Token: token, NewPassword: "brand-new-pass"})
	if err != nil {
		t.Fatalf("ResetPassword: %v", err)
	}

	if _, err := f.svc.Login(context.Background(), LoginRequest{
		Email: "asha@example.com", Password: "brand-new-pass",
	}); err != nil {
		t.Fatalf("login with new password: %v", err)
	}

	err = f.svc.ResetPassword(context.Background(), ResetPasswordRequest{Token: token, NewPassword: "again"})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("token should be single use: %v", err)
	}
}

func TestChangePasswordChecksOldCredential(t *testing.T) {
	t.Parallel()

	f := newAuthFixture(t)
	resp := f.register(t, "asha@example.com", "correct-horse")

	err := f.svc.ChangePassword(context.Background(), resp.User.ID, ChangePasswordRequest{
		OldPassword: "wrong", NewPassword: "new-password-1",
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("unexpected error: %v", err)
	}

	err = f.svc.ChangePassword(context.Background(), resp.User.ID, ChangePasswordRequest{
		OldPassword: "correct-horse", NewPassword: "new-password-1",
	})
	if err != nil {
		t.Fatalf("ChangePassword: %v", err)
	}

	if _, err := f.svc.Login(context.Background(), LoginRequest{
		Email: "asha@example.com", Password: "new-password-1",
	}); err != nil {
		t.Fatalf("login with changed password: %v", err)
	}
}
