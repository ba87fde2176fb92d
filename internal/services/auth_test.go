package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/launchbase/launchbase-backend/internal/repos"
	"github.com/launchbase/launchbase-backend/internal/requestdata"
	"github.com/launchbase/launchbase-backend/internal/types"
)

func newAuthFixture(t *testing.T) (AuthService, *gorm.DB) {
	t.Helper()
	db := testDB(t)
	log := testLogger(t)
	svc := NewAuthService(db, log, repos.NewUserRepo(db, log), repos.NewUserTokenRepo(db, log), "test-secret", time.Hour, 24*time.Hour)
	return svc, db
}

func registerTestUser(t *testing.T, svc AuthService) *types.User {
	t.Helper()
	user := &types.User{
		Email:     "Founder@Example.com",
		Password:  "hunter2hunter2",
		FirstName: "Pat",
		LastName:  "Founder",
	}
	if err := svc.RegisterUser(context.Background(), user); err != nil {
		t.Fatalf("RegisterUser: %v", err)
	}
	return user
}

func TestRegisterNormalizesAndHashes(t *testing.T) {
	svc, db := newAuthFixture(t)
	registerTestUser(t, svc)

	var stored types.User
	if err := db.First(&stored, "email = ?", "founder@example.com").Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if stored.Password == "hunter2hunter2" {
		t.Error("password stored in plaintext")
	}
	if stored.FirstName != "Pat" {
		t.Errorf("first name=%q", stored.FirstName)
	}
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)
	registerTestUser(t, svc)

	dup := &types.User{
		Email:     "founder@example.com",
		Password:  "anotherpassword",
		FirstName: "Other",
		LastName:  "Person",
	}
	if err := svc.RegisterUser(context.Background(), dup); err == nil {
		t.Fatal("expected duplicate email rejection")
	}
}

func TestLoginReturnsTokenPair(t *testing.T) {
	svc, db := newAuthFixture(t)
	registerTestUser(t, svc)

	access, refresh, err := svc.LoginUser(context.Background(), "founder@example.com", "hunter2hunter2")
	if err != nil {
		t.Fatalf("LoginUser: %v", err)
	}
	if access == "" || refresh == "" {
		t.Fatal("expected non-empty token pair")
	}

	var count int64
	if err := db.Model(&types.UserToken{}).Count(&count).Error; err != nil {
		t.Fatalf("count tokens: %v", err)
	}
	if count != 1 {
		t.Errorf("tokens=%d, want 1", count)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthFixture(t)
	registerTestUser(t, svc)

	if _, _, err := svc.LoginUser(context.Background(), "founder@example.com", "wrong-password"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err=%v, want ErrInvalidCredentials", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	svc, _ := newAuthFixture(t)
	if _, _, err := svc.LoginUser(context.Background(), "nobody@example.com", "hunter2hunter2"); !errors.Is(err, ErrInvalidCredentials) {
		t.Fatalf("err=%v, want ErrInvalidCredentials", err)
	}
}

func TestSetContextFromTokenLoadsIdentity(t *testing.T) {
	svc, db := newAuthFixture(t)
	registerTestUser(t, svc)
	access, refresh, err := svc.LoginUser(context.Background(), "founder@example.com", "hunter2hunter2")
	if err != nil {
		t.Fatalf("LoginUser: %v", err)
	}

	ctx, err := svc.SetContextFromToken(context.Background(), access)
	if err != nil {
		t.Fatalf("SetContextFromToken: %v", err)
	}
	rd := requestdata.GetRequestData(ctx)
	if rd == nil {
		t.Fatal("request data missing from context")
	}
	if rd.TokenString != access || rd.RefreshToken != refresh {
		t.Error("request data carries wrong tokens")
	}

	var stored types.User
	if err := db.First(&stored, "email = ?", "founder@example.com").Error; err != nil {
		t.Fatalf("load user: %v", err)
	}
	if rd.UserID != stored.ID {
		t.Errorf("user id=%s, want %s", rd.UserID, stored.ID)
	}
}

func TestSetContextFromTokenRejectsForgedToken(t *testing.T) {
	svc, _ := newAuthFixture(t)
	if _, err := svc.SetContextFromToken(context.Background(), "not-a-jwt"); err == nil {
		t.Fatal("expected parse failure")
	}
}

func TestRefreshRotatesTokens(t *testing.T) {
	svc, db := newAuthFixture(t)
	registerTestUser(t, svc)
	access, refresh, err := svc.LoginUser(context.Background(), "founder@example.com", "hunter2hunter2")
	if err != nil {
		t.Fatalf("LoginUser: %v", err)
	}

	ctx, err := svc.SetContextFromToken(context.Background(), access)
	if err != nil {
		t.Fatalf("SetContextFromToken: %v", err)
	}
	newAccess, newRefresh, err := svc.RefreshUser(ctx)
	if err != nil {
		t.Fatalf("RefreshUser: %v", err)
	}
	if newRefresh == refresh {
		t.Error("refresh token was not rotated")
	}
	if newAccess == "" {
		t.Error("empty rotated access token")
	}

	// the old pair is gone; only the rotated row remains
	var tokens []types.UserToken
	if err := db.Find(&tokens).Error; err != nil {
		t.Fatalf("load tokens: %v", err)
	}
	if len(tokens) != 1 {
		t.Fatalf("tokens=%d, want 1", len(tokens))
	}
	if tokens[0].RefreshToken != newRefresh {
		t.Error("stored token is not the rotated one")
	}
}

func TestRefreshWithUnknownToken(t *testing.T) {
	svc, _ := newAuthFixture(t)
	ctx := requestdata.WithRequestData(context.Background(), &requestdata.RequestData{RefreshToken: "missing"})
	if _, _, err := svc.RefreshUser(ctx); !errors.Is(err, ErrInvalidToken) {
		t.Fatalf("err=%v, want ErrInvalidToken", err)
	}
}

func TestLogoutDeletesToken(t *testing.T) {
	svc, db := newAuthFixture(t)
	registerTestUser(t, svc)
	access, _, err := svc.LoginUser(context.Background(), "founder@example.com", "hunter2hunter2")
	if err != nil {
		t.Fatalf("LoginUser: %v", err)
	}

	ctx, err := svc.SetContextFromToken(context.Background(), access)
	if err != nil {
		t.Fatalf("SetContextFromToken: %v", err)
	}
	if err := svc.LogoutUser(ctx); err != nil {
		t.Fatalf("LogoutUser: %v", err)
	}

	var count int64
	if err := db.Model(&types.UserToken{}).Count(&count).Error; err != nil {
		t.Fatalf("count: %v", err)
	}
	if count != 0 {
		t.Errorf("tokens=%d, want 0", count)
	}
}
