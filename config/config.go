package config

import (
	"errors"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const defaultSessionSecret = "fudr-dev-session-secret"

type Config struct {
	Web     WebConfig
	Session SessionConfig
	API     APIConfig
	Backend BackendConfig
	Log     LogConfig
}

type WebConfig struct {
	Port               string
	GinMode            string
	LoginRatePerMinute int
	TrustedProxies     []string
}

type SessionConfig struct {
	Secret       string
	CookieName   string
	TTL          time.Duration
	SecureCookie bool
}

// APIConfig menunjuk ke backend pemesanan.
type APIConfig struct {
	URL     string
	Timeout time.Duration
}

// BackendConfig configures the reference ordering API in cmd/devbackend.
type BackendConfig struct {
	Port          string
	DBDriver      string
	DBDSN         string
	JWTSecret     string
	TokenTTL      time.Duration
	AdminEmail    string
	AdminPassword string
}

type LogConfig struct {
	Level string
}

// Load reads .env (when present) and the process environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Web: WebConfig{
			Port:               getEnv("PORT", "8080"),
			GinMode:            getEnv("GIN_MODE", ""),
			LoginRatePerMinute: getEnvInt("LOGIN_RATE_PER_MINUTE", 5),
			TrustedProxies:     getEnvList("TRUSTED_PROXIES", []string{"127.0.0.1"}),
		},
		Session: SessionConfig{
			Secret:       getEnv("SESSION_SECRET", defaultSessionSecret),
			CookieName:   getEnv("SESSION_COOKIE", "accessToken"),
			TTL:          getEnvDuration("SESSION_TTL", 24*time.Hour),
			SecureCookie: getEnvBool("SESSION_SECURE", false),
		},
		API: APIConfig{
			URL:     strings.TrimRight(getEnv("API_URL", "http://localhost:8081"), "/"),
			Timeout: getEnvDuration("API_TIMEOUT", 30*time.Second),
		},
		Backend: BackendConfig{
			Port:          getEnv("DEVBACKEND_PORT", "8081"),
			DBDriver:      getEnv("DB_DRIVER", "sqlite"),
			DBDSN:         getEnv("DB_DSN", "fudr.db"),
			JWTSecret:     getEnv("JWT_SECRET", "fudr-dev-jwt-secret"),
			TokenTTL:      getEnvDuration("TOKEN_TTL", 24*time.Hour),
			AdminEmail:    getEnv("ADMIN_EMAIL", ""),
			AdminPassword: getEnv("ADMIN_PASSWORD", ""),
		},
		Log: LogConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.API.URL == "" {
		return errors.New("API_URL is not set")
	}
	if c.Session.Secret == "" {
		return errors.New("SESSION_SECRET is not set")
	}
	if c.Session.CookieName == "" {
		return errors.New("SESSION_COOKIE is not set")
	}
	if c.Session.TTL <= 0 {
		return errors.New("SESSION_TTL must be positive")
	}
	if c.Web.LoginRatePerMinute <= 0 {
		return errors.New("LOGIN_RATE_PER_MINUTE must be positive")
	}
	return nil
}

// UsesDefaultSessionSecret reports whether SESSION_SECRET was left unset.
func (c *Config) UsesDefaultSessionSecret() bool {
	return c.Session.Secret == defaultSessionSecret
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	v, err := strconv.Atoi(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func getEnvBool(key string, def bool) bool {
	v, err := strconv.ParseBool(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func getEnvDuration(key string, def time.Duration) time.Duration {
	v, err := time.ParseDuration(os.Getenv(key))
	if err != nil {
		return def
	}
	return v
}

func getEnvList(key string, def []string) []string {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
