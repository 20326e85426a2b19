package users

import (
	"context"
	"testing"
	"time"

	"github.com/ayurnest/ayurnest-backend/pkg/db/models"
	"github.com/ayurnest/ayurnest-backend/pkg/enums"
	pkgerrors "github.com/ayurnest/ayurnest-backend/pkg/errors"
	"github.com/ayurnest/ayurnest-backend/pkg/types"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type fakeUserRepo struct {
	byID map[uuid.UUID]*models.User

	updated *models.User
}

func (f *fakeUserRepo) WithTx(tx *gorm.DB) Repository { return f }
func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	f.byID[user.ID] = user
	return nil
}
func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*models.User, error) {
	user, ok := f.byID[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	copied := *user
	return &copied, nil
}
func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	return nil, gorm.ErrRecordNotFound
}
func (f *fakeUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	return false, nil
}
func (f *fakeUserRepo) Update(ctx context.Context, user *models.User) error {
	f.updated = user
	f.byID[user.ID] = user
	return nil
}
func (f *fakeUserRepo) UpdatePasswordHash(ctx context.Context, id uuid.UUID, hash string) error {
	return nil
}
func (f *fakeUserRepo) TouchLastLogin(ctx context.Context, id uuid.UUID, at time.Time) error {
	return nil
}

func strPtr(s string) *string { return &s }

func profileFixture(t *testing.T) (Service, *fakeUserRepo, uuid.UUID) {
	t.Helper()

	id := uuid.New()
	repo := &fakeUserRepo{byID: map[uuid.UUID]*models.User{
		id: {
			ID:          id,
			Email:       "asha@example.com",
			DisplayName: "Asha",
			Phone:       strPtr("+91-900000001"),
			CreatedAt:   time.Now().Add(-time.Hour),
		},
	}}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc, repo, id
}

func TestGetProfileRequiresAuth(t *testing.T) {
	t.Parallel()

	svc, _, _ := profileFixture(t)

	_, err := svc.GetProfile(context.Background(), uuid.Nil)
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeUnauthorized {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetProfileNotFound(t *testing.T) {
	t.Parallel()

	svc, _, _ := profileFixture(t)

	_, err := svc.GetProfile(context.Background(), uuid.New())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestGetProfileFillsPreferenceDefaults(t *testing.T) {
	t.Parallel()

	svc, _, id := profileFixture(t)

	profile, err := svc.GetProfile(context.Background(), id)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	prefs := profile.Preferences
	if prefs.DarkTheme == nil || *prefs.DarkTheme {
		t.Fatalf("dark theme should default off: %+v", prefs)
	}
	if prefs.OrderUpdates == nil || !*prefs.OrderUpdates {
		t.Fatalf("order updates should default on: %+v", prefs)
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	t.Parallel()

	svc, repo, id := profileFixture(t)

	profile, err := svc.UpdateProfile(context.Background(), id, UpdateProfileRequest{
		DisplayName: strPtr("  Asha Rao  "),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.DisplayName != "Asha Rao" {
		t.Fatalf("display name not trimmed: %q", profile.DisplayName)
	}
	if profile.Phone == nil || *profile.Phone != "+91-900000001" {
		t.Fatalf("untouched field changed: %+v", profile.Phone)
	}
	if repo.updated == nil {
		t.Fatal("expected repository update")
	}
}

func TestUpdateProfileRejectsEmptyDisplayName(t *testing.T) {
	t.Parallel()

	svc, repo, id := profileFixture(t)

	_, err := svc.UpdateProfile(context.Background(), id, UpdateProfileRequest{
		DisplayName: strPtr("   "),
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.updated != nil {
		t.Fatal("rejected update must not hit the repository")
	}
}

func TestUpdateProfileClearsPhoneAndAddress(t *testing.T) {
	t.Parallel()

	svc, _, id := profileFixture(t)

	profile, err := svc.UpdateProfile(context.Background(), id, UpdateProfileRequest{
		Phone:   strPtr(""),
		Address: &types.Address{},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Phone != nil {
		t.Fatalf("phone should be cleared: %+v", profile.Phone)
	}
	if profile.Address != nil {
		t.Fatalf("empty address should clear the field: %+v", profile.Address)
	}
}

func TestUpdateProfileValidatesAvatar(t *testing.T) {
	t.Parallel()

	svc, _, id := profileFixture(t)

	_, err := svc.UpdateProfile(context.Background(), id, UpdateProfileRequest{
		AvatarDataURI: strPtr("https://cdn.example.com/avatar.png"),
	})
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unexpected error: %v", err)
	}

	profile, err := svc.UpdateProfile(context.Background(), id, UpdateProfileRequest{
		AvatarDataURI: strPtr("data:image/png;base64,aGk="),
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.AvatarDataURI == nil {
		t.Fatal("avatar should be stored")
	}
}

func TestUpdateProfileMergesPreferences(t *testing.T) {
	t.Parallel()

	svc, repo, id := profileFixture(t)
	dark := true
	repo.byID[id].Preferences = types.Preferences{WellnessTips: boolPtrTest(false)}

	profile, err := svc.UpdateProfile(context.Background(), id, UpdateProfileRequest{
		Preferences: &types.Preferences{DarkTheme: &dark},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Preferences.DarkTheme == nil || !*profile.Preferences.DarkTheme {
		t.Fatal("patched preference lost")
	}
	if profile.Preferences.WellnessTips == nil || *profile.Preferences.WellnessTips {
		t.Fatal("existing preference should survive the merge")
	}
}

func TestSaveConstitution(t *testing.T) {
	t.Parallel()

	svc, _, id := profileFixture(t)

	_, err := svc.SaveConstitution(context.Background(), id, enums.Constitution("metal"))
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("unexpected error: %v", err)
	}

	profile, err := svc.SaveConstitution(context.Background(), id, enums.ConstitutionVata)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Constitution == nil || *profile.Constitution != enums.ConstitutionVata {
		t.Fatalf("constitution not saved: %+v", profile.Constitution)
	}
}

func boolPtrTest(v bool) *bool { return &v }
