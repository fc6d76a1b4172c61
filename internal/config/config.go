package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	defaultPort              = "8080"
	defaultDatabaseURL       = "brrrrleads.db"
	defaultJWTSecret         = "change-me-jwt-secret"
	defaultSessionTTL        = "30m"
	defaultAdminTokenTTL     = "24h"
	defaultPricingWebhookURL = "https://n8n.axora.info/webhook/8204a19f-48ef-45f9-ab03-cf93a7590567"
	defaultContactWebhookURL = "https://n8n.axora.info/webhook/51fcc485-e65e-4a22-b044-237c6094be75"
	defaultChecklistURL      = "https://brrrr.com/assets/document-checklist.pdf"
)

type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string

	JWTSecret     string
	SessionTTL    time.Duration
	AdminTokenTTL time.Duration

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	PricingWebhookURL    string
	ContactWebhookURL    string
	ChecklistDownloadURL string

	AdminEmail        string
	AdminPasswordHash string
}

func Load() (*Config, error) {
	cfg := &Config{}

	appEnv := strings.TrimSpace(os.Getenv("APP_ENV"))
	if appEnv == "" {
		appEnv = strings.TrimSpace(os.Getenv("ENV"))
	}
	if appEnv == "" {
		appEnv = "dev"
	}
	cfg.AppEnv = strings.ToLower(appEnv)

	cfg.Port = strings.TrimSpace(getEnv("PORT", defaultPort))
	cfg.DatabaseURL = strings.TrimSpace(getEnv("DATABASE_URL", defaultDatabaseURL))
	cfg.JWTSecret = strings.TrimSpace(getEnv("JWT_SECRET", defaultJWTSecret))

	var err error
	cfg.SessionTTL, err = parseDurationEnv("SESSION_TTL", defaultSessionTTL)
	if err != nil {
		return nil, err
	}
	cfg.AdminTokenTTL, err = parseDurationEnv("ADMIN_TOKEN_TTL", defaultAdminTokenTTL)
	if err != nil {
		return nil, err
	}

	cfg.RedisAddr = strings.TrimSpace(os.Getenv("REDIS_ADDR"))
	cfg.RedisPassword = os.Getenv("REDIS_PASSWORD")
	cfg.RedisDB, err = parseIntEnv("REDIS_DB", 0)
	if err != nil {
		return nil, err
	}

	cfg.PricingWebhookURL = strings.TrimSpace(getEnv("PRICING_WEBHOOK_URL", defaultPricingWebhookURL))
	cfg.ContactWebhookURL = strings.TrimSpace(getEnv("CONTACT_WEBHOOK_URL", defaultContactWebhookURL))
	cfg.ChecklistDownloadURL = strings.TrimSpace(getEnv("CHECKLIST_DOWNLOAD_URL", defaultChecklistURL))

	cfg.AdminEmail = strings.TrimSpace(os.Getenv("ADMIN_EMAIL"))
	cfg.AdminPasswordHash = strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH"))

	if err := validateConfig(cfg); err != nil {
		return nil, err
	}

	if cfg.RedisAddr == "" {
		log.Printf("session store config: backend=memory ttl=%s", cfg.SessionTTL)
	} else {
		log.Printf("session store config: backend=redis addr=%s db=%d ttl=%s", cfg.RedisAddr, cfg.RedisDB, cfg.SessionTTL)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	if cfg.SessionTTL <= 0 {
		return fmt.Errorf("SESSION_TTL must be > 0")
	}
	if cfg.AdminTokenTTL <= 0 {
		return fmt.Errorf("ADMIN_TOKEN_TTL must be > 0")
	}
	if cfg.PricingWebhookURL == "" {
		return fmt.Errorf("PRICING_WEBHOOK_URL must not be empty")
	}
	if cfg.ContactWebhookURL == "" {
		return fmt.Errorf("CONTACT_WEBHOOK_URL must not be empty")
	}
	if cfg.ChecklistDownloadURL == "" {
		return fmt.Errorf("CHECKLIST_DOWNLOAD_URL must not be empty")
	}

	if isProdLike(cfg.AppEnv) {
		if isEmptyOrDefault(cfg.JWTSecret, defaultJWTSecret) {
			return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
		}
		if cfg.AdminEmail == "" || cfg.AdminPasswordHash == "" {
			return fmt.Errorf("in prod/release ADMIN_EMAIL and ADMIN_PASSWORD_HASH must be set")
		}
	}

	return nil
}

func isProdLike(env string) bool {
	env = strings.ToLower(strings.TrimSpace(env))
	return env == "prod" || env == "production" || env == "release"
}

func isEmptyOrDefault(v, def string) bool {
	trimmed := strings.TrimSpace(v)
	return trimmed == "" || trimmed == def
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func parseIntEnv(name string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(name))
	if value == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return n, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
