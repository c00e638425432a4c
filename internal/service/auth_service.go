package service

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/spec-kit/feedback-service/internal/auth"
	"github.com/spec-kit/feedback-service/internal/config"
	"github.com/spec-kit/feedback-service/internal/domain"
	apperrors "github.com/spec-kit/feedback-service/pkg/util"
)

// AuthService is the simulated authentication gateway. Every login succeeds
// after a fixed artificial delay; the admin flag derives solely from the
// reserved admin email address. This is demo behavior, not a security
// mechanism.
type AuthService struct {
	cfg config.AuthConfig

	mu       sync.Mutex
	accounts map[string]registration
}

// registration is the in-memory record a signup leaves behind. It is never
// consulted by login and evaporates with the process.
type registration struct {
	Name         string
	PasswordHash string
	CreatedAt    time.Time
}

// NewAuthService builds the service.
func NewAuthService(cfg config.AuthConfig) *AuthService {
	return &AuthService{
		cfg:      cfg,
		accounts: make(map[string]registration),
	}
}

// Login accepts any credentials after the configured delay.
func (s *AuthService) Login(ctx context.Context, email, password string) (domain.UserProfile, error) {
	if email == "" || password == "" {
		return domain.UserProfile{}, apperrors.NewValidationError("email and password required", nil)
	}
	if err := s.simulateLatency(ctx, s.cfg.LoginDelay()); err != nil {
		return domain.UserProfile{}, err
	}

	return domain.UserProfile{
		UID:     simUID("sim-"),
		Name:    displayNameFromEmail(email),
		Email:   email,
		IsAdmin: s.isAdminEmail(email),
	}, nil
}

// Signup fails locally when password and confirmation differ; otherwise it
// retains a hashed registration record and succeeds after the delay.
func (s *AuthService) Signup(ctx context.Context, name, email, password, confirm string) (domain.UserProfile, error) {
	if name == "" || email == "" || password == "" {
		return domain.UserProfile{}, apperrors.NewValidationError("name, email, password required", nil)
	}
	if password != confirm {
		return domain.UserProfile{}, apperrors.NewValidationError("Passwords do not match.", nil)
	}
	if err := s.simulateLatency(ctx, s.cfg.SignupDelay()); err != nil {
		return domain.UserProfile{}, err
	}

	hash, err := auth.HashPassword(password, s.cfg.BcryptCost)
	if err != nil {
		return domain.UserProfile{}, apperrors.NewInternalError(err)
	}
	s.mu.Lock()
	s.accounts[strings.ToLower(email)] = registration{
		Name:         name,
		PasswordHash: hash,
		CreatedAt:    time.Now(),
	}
	s.mu.Unlock()

	return domain.UserProfile{
		UID:     simUID("sim-"),
		Name:    name,
		Email:   email,
		IsAdmin: s.isAdminEmail(email),
	}, nil
}

// SocialLogin always succeeds with the fixed demo profile.
func (s *AuthService) SocialLogin(ctx context.Context) (domain.UserProfile, error) {
	if err := s.simulateLatency(ctx, s.cfg.SocialDelay()); err != nil {
		return domain.UserProfile{}, err
	}

	return domain.UserProfile{
		UID:     simUID("sim-google-"),
		Name:    s.cfg.SocialDemoName,
		Email:   s.cfg.SocialDemoEmail,
		IsAdmin: false,
	}, nil
}

func (s *AuthService) isAdminEmail(email string) bool {
	return strings.EqualFold(strings.TrimSpace(email), s.cfg.AdminEmail)
}

func (s *AuthService) simulateLatency(ctx context.Context, delay time.Duration) error {
	if delay <= 0 {
		return nil
	}
	timer := time.NewTimer(delay)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

func displayNameFromEmail(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}
	return email
}

func simUID(prefix string) string {
	return prefix + strings.ReplaceAll(uuid.NewString(), "-", "")[:9]
}
