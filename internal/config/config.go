package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the service.
type Config struct {
	App          AppConfig
	Logger       LoggerConfig
	Auth         AuthConfig
	Gemini       GeminiConfig
	Notification NotificationConfig
}

// AppConfig controls server level behavior.
type AppConfig struct {
	Name                  string
	Env                   string
	Host                  string
	Port                  string
	Version               string
	RequestTimeoutSeconds int
}

// LoggerConfig configures logging behavior.
type LoggerConfig struct {
	Level string
}

// AuthConfig defines parameters for the simulated authentication gateway.
type AuthConfig struct {
	JWTSecret            string
	SessionTokenTTLHours int
	AdminEmail           string
	LoginDelayMillis     int
	SignupDelayMillis    int
	SocialDelayMillis    int
	BcryptCost           int
	SocialDemoName       string
	SocialDemoEmail      string
}

// GeminiConfig holds settings for the response drafting collaborator.
type GeminiConfig struct {
	APIKey      string
	Model       string
	Temperature float32
}

// NotificationConfig holds stub notification endpoints.
type NotificationConfig struct {
	EmailFrom  string
	WebhookURL string
}

// Load reads configuration from environment variables, applying defaults where possible.
func Load() (*Config, error) {
	_ = godotenv.Load()

	temperature, err := strconv.ParseFloat(getEnv("GEMINI_TEMPERATURE", "0.7"), 32)
	if err != nil {
		return nil, fmt.Errorf("invalid GEMINI_TEMPERATURE: %w", err)
	}

	cfg := &Config{
		App: AppConfig{
			Name:                  getEnv("APP_NAME", "feedback-service"),
			Env:                   getEnv("APP_ENV", "development"),
			Host:                  getEnv("APP_HOST", "0.0.0.0"),
			Port:                  getEnv("APP_PORT", "8080"),
			Version:               getEnv("APP_VERSION", "dev"),
			RequestTimeoutSeconds: getEnvAsInt("HTTP_REQUEST_TIMEOUT_SECONDS", 30),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
		Auth: AuthConfig{
			JWTSecret:            getEnv("AUTH_JWT_SECRET", "dev-secret"),
			SessionTokenTTLHours: getEnvAsInt("AUTH_SESSION_TOKEN_TTL_HOURS", 12),
			AdminEmail:           getEnv("AUTH_ADMIN_EMAIL", "admin@gmail.com"),
			LoginDelayMillis:     getEnvAsInt("AUTH_LOGIN_DELAY_MILLIS", 1500),
			SignupDelayMillis:    getEnvAsInt("AUTH_SIGNUP_DELAY_MILLIS", 1500),
			SocialDelayMillis:    getEnvAsInt("AUTH_SOCIAL_DELAY_MILLIS", 1200),
			BcryptCost:           getEnvAsInt("AUTH_BCRYPT_COST", 12),
			SocialDemoName:       getEnv("AUTH_SOCIAL_DEMO_NAME", "Demo User"),
			SocialDemoEmail:      getEnv("AUTH_SOCIAL_DEMO_EMAIL", "demo.user@gmail.com"),
		},
		Gemini: GeminiConfig{
			APIKey:      os.Getenv("GEMINI_API_KEY"),
			Model:       getEnv("GEMINI_MODEL", "gemini-3-pro-preview"),
			Temperature: float32(temperature),
		},
		Notification: NotificationConfig{
			EmailFrom:  getEnv("NOTIFY_EMAIL_FROM", "noreply@example.com"),
			WebhookURL: getEnv("NOTIFY_WEBHOOK_URL", ""),
		},
	}

	return cfg, nil
}

// Addr returns the HTTP bind address.
func (a AppConfig) Addr() string {
	return fmt.Sprintf("%s:%s", a.Host, a.Port)
}

// RequestTimeout returns the configured request timeout duration.
func (a AppConfig) RequestTimeout() time.Duration {
	if a.RequestTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(a.RequestTimeoutSeconds) * time.Second
}

// LoginDelay returns the artificial latency applied to simulated logins.
func (a AuthConfig) LoginDelay() time.Duration {
	return time.Duration(a.LoginDelayMillis) * time.Millisecond
}

// SignupDelay returns the artificial latency applied to simulated signups.
func (a AuthConfig) SignupDelay() time.Duration {
	return time.Duration(a.SignupDelayMillis) * time.Millisecond
}

// SocialDelay returns the artificial latency applied to the provider flow.
func (a AuthConfig) SocialDelay() time.Duration {
	return time.Duration(a.SocialDelayMillis) * time.Millisecond
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	val := os.Getenv(key)
	if val == "" {
		return fallback
	}
	parsed, err := strconv.Atoi(val)
	if err != nil {
		return fallback
	}
	return parsed
}
