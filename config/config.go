package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// DevJWTSecret is used when no secret is configured. Rejected in production.
const DevJWTSecret = "dev-insecure-secret-change-me"

// Config holds the storefront service configuration.
type Config struct {
	Env  string `yaml:"env"`
	Port string `yaml:"port"`

	DatabaseURL string `yaml:"database_url"`
	RedisURL    string `yaml:"redis_url"`

	// BaseURL is the scheme and host used to build absolute file URLs.
	BaseURL string `yaml:"base_url"`

	Files    FilesConfig    `yaml:"files"`
	Auth     AuthConfig     `yaml:"auth"`
	Logging  LoggingConfig  `yaml:"logging"`
	HTTP     HTTPConfig     `yaml:"http"`
	Firebase FirebaseConfig `yaml:"firebase"`
	Admin    AdminConfig    `yaml:"admin"`
}

// FilesConfig describes where uploads live on disk and how they are served.
type FilesConfig struct {
	Dir        string `yaml:"dir"`
	PublicPath string `yaml:"public_path"`
	MaxUpload  int64  `yaml:"max_upload_bytes"`
}

type AuthConfig struct {
	JWTSecret  string        `yaml:"jwt_secret"`
	AccessTTL  time.Duration `yaml:"access_ttl"`
	RefreshTTL time.Duration `yaml:"refresh_ttl"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type HTTPConfig struct {
	RateLimitRPS   int           `yaml:"rate_limit_rps"`
	RateLimitBurst int           `yaml:"rate_limit_burst"`
	CORSOrigins    []string      `yaml:"cors_origins"`
	RequestTimeout time.Duration `yaml:"request_timeout"`
}

// FirebaseConfig is optional. Without credentials the Firebase login route
// answers 503.
type FirebaseConfig struct {
	CredentialsFile string `yaml:"credentials_file"`
}

// AdminConfig seeds the first admin account on an empty install.
type AdminConfig struct {
	Name     string `yaml:"name"`
	Email    string `yaml:"email"`
	Password string `yaml:"password"`
}

// Default returns the configuration used when nothing else is provided.
func Default() *Config {
	return &Config{
		Env:     "development",
		Port:    "8080",
		BaseURL: "http://localhost:8080",
		Files: FilesConfig{
			Dir:        "files",
			PublicPath: "/sites/default/files",
			MaxUpload:  10 << 20,
		},
		Auth: AuthConfig{
			JWTSecret:  DevJWTSecret,
			AccessTTL:  15 * time.Minute,
			RefreshTTL: 30 * 24 * time.Hour,
		},
		Logging: LoggingConfig{Level: "info"},
		HTTP: HTTPConfig{
			RateLimitRPS:   20,
			RateLimitBurst: 40,
			CORSOrigins:    []string{"*"},
			RequestTimeout: 10 * time.Second,
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file and the
// environment, in that order. A .env file in the working directory is read
// first if present. An empty path skips the YAML step.
func Load(path string) (*Config, error) {
	_ = godotenv.Load()

	cfg := Default()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}
	if err := cfg.applyEnv(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	setString(&c.Env, "APP_ENV")
	setString(&c.Port, "PORT")
	setString(&c.DatabaseURL, "DATABASE_URL")
	setString(&c.RedisURL, "REDIS_URL")
	setString(&c.BaseURL, "BASE_URL")
	setString(&c.Files.Dir, "FILES_DIR")
	setString(&c.Files.PublicPath, "PUBLIC_FILES_PATH")
	setString(&c.Auth.JWTSecret, "JWT_SECRET")
	setString(&c.Logging.Level, "LOG_LEVEL")
	setString(&c.Firebase.CredentialsFile, "GOOGLE_APPLICATION_CREDENTIALS")
	setString(&c.Admin.Name, "ADMIN_NAME")
	setString(&c.Admin.Email, "ADMIN_EMAIL")
	setString(&c.Admin.Password, "ADMIN_PASSWORD")

	if err := setInt(&c.HTTP.RateLimitRPS, "RATE_LIMIT_RPS"); err != nil {
		return err
	}
	if err := setInt(&c.HTTP.RateLimitBurst, "RATE_LIMIT_BURST"); err != nil {
		return err
	}
	if v := os.Getenv("CORS_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		c.HTTP.CORSOrigins = origins
	}
	return nil
}

// IsProduction reports whether the service runs with production settings.
func (c *Config) IsProduction() bool { return c.Env == "production" }

// Validate checks the settings the service cannot start without.
func (c *Config) Validate() error {
	if c.DatabaseURL == "" {
		return errors.New("database_url is required")
	}
	if c.Port == "" {
		return errors.New("port is required")
	}
	if c.IsProduction() && (c.Auth.JWTSecret == "" || c.Auth.JWTSecret == DevJWTSecret) {
		return errors.New("jwt_secret must be set in production")
	}
	if c.Auth.AccessTTL <= 0 || c.Auth.RefreshTTL <= 0 {
		return errors.New("token ttls must be positive")
	}
	return nil
}

func setString(dst *string, key string) {
	if v := os.Getenv(key); v != "" {
		*dst = v
	}
}

func setInt(dst *int, key string) error {
	v := os.Getenv(key)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*dst = n
	return nil
}
