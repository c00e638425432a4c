package service

import (
	"context"
	"strings"
	"testing"

	"github.com/spec-kit/feedback-service/internal/config"
)

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		AdminEmail:      "admin@gmail.com",
		BcryptCost:      4,
		SocialDemoName:  "Demo User",
		SocialDemoEmail: "demo.user@gmail.com",
	}
}

func TestLoginAdminFlag(t *testing.T) {
	svc := NewAuthService(testAuthConfig())

	cases := map[string]bool{
		"admin@gmail.com": true,
		"ADMIN@GMAIL.COM": true,
		"Admin@Gmail.Com": true,
		"user@gmail.com":  false,
		"admin@example.com": false,
	}
	for email, wantAdmin := range cases {
		profile, err := svc.Login(context.Background(), email, "whatever")
		if err != nil {
			t.Fatalf("login %s: unexpected error: %v", email, err)
		}
		if profile.IsAdmin != wantAdmin {
			t.Fatalf("login %s: expected isAdmin=%v, got %v", email, wantAdmin, profile.IsAdmin)
		}
	}
}

func TestLoginProfileShape(t *testing.T) {
	svc := NewAuthService(testAuthConfig())

	profile, err := svc.Login(context.Background(), "jane.doe@example.com", "pw")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Name != "jane.doe" {
		t.Fatalf("expected display name from email local part, got %q", profile.Name)
	}
	if profile.Email != "jane.doe@example.com" {
		t.Fatalf("expected email preserved, got %q", profile.Email)
	}
	if !strings.HasPrefix(profile.UID, "sim-") {
		t.Fatalf("expected sim- uid, got %q", profile.UID)
	}
}

func TestLoginRequiresCredentials(t *testing.T) {
	svc := NewAuthService(testAuthConfig())

	if _, err := svc.Login(context.Background(), "", "pw"); err == nil {
		t.Fatalf("expected missing email to error")
	}
	if _, err := svc.Login(context.Background(), "a@b.c", ""); err == nil {
		t.Fatalf("expected missing password to error")
	}
}

func TestSignupPasswordMismatch(t *testing.T) {
	svc := NewAuthService(testAuthConfig())

	if _, err := svc.Signup(context.Background(), "Jane", "jane@example.com", "secret", "different"); err == nil {
		t.Fatalf("expected mismatch to error")
	}
}

func TestSignupSucceeds(t *testing.T) {
	svc := NewAuthService(testAuthConfig())

	profile, err := svc.Signup(context.Background(), "Jane", "jane@example.com", "secret", "secret")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Name != "Jane" || profile.IsAdmin {
		t.Fatalf("unexpected profile: %+v", profile)
	}

	admin, err := svc.Signup(context.Background(), "Root", "ADMIN@gmail.com", "s", "s")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !admin.IsAdmin {
		t.Fatalf("expected admin email signup to carry the admin flag")
	}
}

func TestSocialLoginDemoProfile(t *testing.T) {
	svc := NewAuthService(testAuthConfig())

	profile, err := svc.SocialLogin(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Name != "Demo User" || profile.Email != "demo.user@gmail.com" {
		t.Fatalf("unexpected demo profile: %+v", profile)
	}
	if profile.IsAdmin {
		t.Fatalf("expected demo profile to never be admin")
	}
	if !strings.HasPrefix(profile.UID, "sim-google-") {
		t.Fatalf("expected sim-google- uid, got %q", profile.UID)
	}
}

func TestLoginHonorsContextCancellation(t *testing.T) {
	cfg := testAuthConfig()
	cfg.LoginDelayMillis = 5000
	svc := NewAuthService(cfg)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := svc.Login(ctx, "a@b.c", "pw"); err == nil {
		t.Fatalf("expected cancelled context to error")
	}
}
