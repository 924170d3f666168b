package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"skc.dev/internal/content"
	"skc.dev/internal/models"
)

// Mail providers
const (
	ProviderEmailJS = "emailjs"
	ProviderSMTP    = "smtp"
)

// Config holds all application configuration
type Config struct {
	ServerAddr  string
	LogLevel    string
	Development bool
	ContentPath string
	Portfolio   *models.Portfolio
	Mail        MailConfig
	Contact     ContactConfig
	RateLimit   RateLimitConfig
	Redis       RedisConfig
}

// MailConfig holds outbound email settings
type MailConfig struct {
	Provider string
	Timeout  time.Duration // 0 disables the client-side deadline

	// EmailJS
	Endpoint   string
	PublicKey  string
	PrivateKey string
	ServiceID  string
	TemplateID string

	// SMTP
	SMTPHost     string
	SMTPPort     string
	SMTPUsername string
	SMTPPassword string
	SMTPFrom     string
	ContactTo    string
}

// ContactConfig holds contact form behavior settings
type ContactConfig struct {
	ResetDelay time.Duration
	SessionTTL time.Duration
	Location   *time.Location
}

// RateLimitConfig holds contact submission throttling settings
type RateLimitConfig struct {
	Requests   int
	Window     time.Duration
	FailClosed bool // reject when the shared store is unreachable
}

// RedisConfig holds the optional shared rate limit store
type RedisConfig struct {
	URL      string
	Password string
}

// Load reads .env (if present), the environment, and the portfolio content
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		ServerAddr:  getEnv("SERVER_ADDR", ":8080"),
		LogLevel:    getEnv("LOG_LEVEL", "info"),
		Development: getEnv("APP_ENV", "development") != "production",
		ContentPath: getEnv("CONTENT_PATH", ""),
		Mail: MailConfig{
			Provider:     strings.ToLower(getEnv("MAIL_PROVIDER", ProviderEmailJS)),
			Timeout:      getEnvDuration("MAIL_TIMEOUT", 0),
			Endpoint:     strings.TrimRight(getEnv("MAIL_ENDPOINT", "https://api.emailjs.com"), "/"),
			PublicKey:    getEnv("EMAILJS_PUBLIC_KEY", ""),
			PrivateKey:   getEnv("EMAILJS_PRIVATE_KEY", ""),
			ServiceID:    getEnv("EMAILJS_SERVICE_ID", ""),
			TemplateID:   getEnv("EMAILJS_TEMPLATE_ID", ""),
			SMTPHost:     getEnv("SMTP_HOST", ""),
			SMTPPort:     getEnv("SMTP_PORT", "587"),
			SMTPUsername: getEnv("SMTP_USERNAME", ""),
			SMTPPassword: getEnv("SMTP_PASSWORD", ""),
			SMTPFrom:     getEnv("SMTP_FROM", ""),
			ContactTo:    getEnv("CONTACT_EMAIL_TO", ""),
		},
		Contact: ContactConfig{
			ResetDelay: getEnvDuration("CONTACT_RESET_DELAY", 5*time.Second),
			SessionTTL: getEnvDuration("CONTACT_SESSION_TTL", 30*time.Minute),
		},
		RateLimit: RateLimitConfig{
			Requests:   getEnvInt("RATE_LIMIT_REQUESTS", 5),
			Window:     getEnvDuration("RATE_LIMIT_WINDOW", time.Minute),
			FailClosed: getEnvBool("RATE_LIMIT_FAIL_CLOSED", false),
		},
		Redis: RedisConfig{
			URL:      getEnv("REDIS_URL", ""),
			Password: getEnv("REDIS_PASSWORD", ""),
		},
	}

	if !strings.Contains(cfg.ServerAddr, ":") {
		cfg.ServerAddr = ":" + cfg.ServerAddr
	}

	loc, err := time.LoadLocation(getEnv("CONTACT_TIMEZONE", "Local"))
	if err != nil {
		return nil, fmt.Errorf("invalid CONTACT_TIMEZONE: %w", err)
	}
	cfg.Contact.Location = loc

	switch cfg.Mail.Provider {
	case ProviderEmailJS, ProviderSMTP:
	default:
		return nil, fmt.Errorf("unknown MAIL_PROVIDER %q", cfg.Mail.Provider)
	}

	portfolio, err := content.Load(cfg.ContentPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load content: %w", err)
	}
	cfg.Portfolio = portfolio

	return cfg, nil
}

// MailConfigured reports whether the selected provider has its credentials
func (c *Config) MailConfigured() bool {
	m := c.Mail
	switch m.Provider {
	case ProviderSMTP:
		return m.SMTPHost != "" && m.SMTPUsername != "" && m.SMTPPassword != "" && m.ContactTo != ""
	default:
		return m.PublicKey != "" && m.ServiceID != "" && m.TemplateID != ""
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return fallback
}

// getEnvInt returns an integer environment variable or fallback if not set/invalid
func getEnvInt(key string, fallback int) int {
	if value, exists := os.LookupEnv(key); exists {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return fallback
}

func getEnvBool(key string, fallback bool) bool {
	if value, exists := os.LookupEnv(key); exists {
		if b, err := strconv.ParseBool(value); err == nil {
			return b
		}
	}
	return fallback
}

// getEnvDuration accepts Go durations ("5s") or plain milliseconds ("5000")
func getEnvDuration(key string, fallback time.Duration) time.Duration {
	value, exists := os.LookupEnv(key)
	if !exists || value == "" {
		return fallback
	}
	if d, err := time.ParseDuration(value); err == nil {
		return d
	}
	if ms, err := strconv.Atoi(value); err == nil {
		return time.Duration(ms) * time.Millisecond
	}
	return fallback
}
