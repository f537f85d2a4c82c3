package config

import (
	"fmt"
	"os"
	"path"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v2"
)

type Config struct {
	Public  Public
	Private Private
}

type Public struct {
	Port           string        `yaml:"port" validate:"required"`
	// cors allowlist, an empty list would allow every origin
	AllowedOrigins []string      `yaml:"allowed_origins" validate:"required,min=1"`
	JwtTTL         time.Duration `yaml:"jwt_ttl" validate:"required"` // in hours
	SecureCookies  bool          `yaml:"secure_cookies"`              // enables HSTS header
	LogLevel       string        `yaml:"log_level"`
	LogJSON        bool          `yaml:"log_json"`
	StripMarkup    bool          `yaml:"strip_markup"`  // remove html from submitted fields
	MaxBodyBytes   int64         `yaml:"max_body_bytes"` // request body limit, 1MiB if zero
	BcryptCost     int           `yaml:"bcrypt_cost"`    // bcrypt.DefaultCost if zero
	MetricsAddr    string        `yaml:"metrics_addr"`   // internal listener for /metrics, disabled if empty

	LoginAttempts int           `yaml:"login_attempts" validate:"required"` // per login_window per ip
	LoginWindow   time.Duration `yaml:"login_window" validate:"required"`   // in minutes
}

type Private struct {
	JwtKey      string `yaml:"jwt_key" validate:"required"`
	DatabaseURL string `yaml:"database_url" validate:"required"`
}

func (c *Config) JwtKey() string {
	return c.Private.JwtKey
}

func (c *Config) JwtTTL() time.Duration {
	return c.Public.JwtTTL * time.Hour
}

func (c *Config) LoginWindow() time.Duration {
	return c.Public.LoginWindow * time.Minute
}

func (c *Config) MaxBodyBytes() int64 {
	if c.Public.MaxBodyBytes <= 0 {
		return 1 << 20
	}
	return c.Public.MaxBodyBytes
}

func mustLoadPath(configPath string, output interface{}) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		panic("config file does not exist: " + configPath)
	}
	configFile, err := os.ReadFile(configPath)
	if err != nil {
		panic("can't read config file: " + configPath)
	}

	if err := yaml.Unmarshal(configFile, output); err != nil {
		panic("can't unmarshal config file: " + configPath)
	}
}

// overlayEnv lets deployment secrets come from the environment (or a .env
// file) instead of private.yaml.
func overlayEnv(cfg *Config) {
	if v := os.Getenv("JWT_SECRET"); v != "" {
		cfg.Private.JwtKey = v
	}
	if v := os.Getenv("DATABASE_URL"); v != "" {
		cfg.Private.DatabaseURL = v
	}
	if v := os.Getenv("PORT"); v != "" {
		cfg.Public.Port = v
	}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		var origins []string
		for _, o := range strings.Split(v, ",") {
			if o = strings.TrimSpace(o); o != "" {
				origins = append(origins, o)
			}
		}
		cfg.Public.AllowedOrigins = origins
	}
}

func validate(cfg *Config) error {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.Struct(cfg); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// MustLoad reads public.yaml and private.yaml from configFolder, applies
// environment overrides and panics if a required value is missing. A missing
// jwt key is fatal here so it never surfaces per request.
func MustLoad(configFolder string) *Config {
	// .env is optional
	_ = godotenv.Load()

	var public Public
	mustLoadPath(path.Join(configFolder, "public.yaml"), &public)

	var private Private
	privatePath := path.Join(configFolder, "private.yaml")
	if _, err := os.Stat(privatePath); err == nil {
		mustLoadPath(privatePath, &private)
	}

	cfg := &Config{Public: public, Private: private}
	overlayEnv(cfg)

	if err := validate(cfg); err != nil {
		panic(err.Error())
	}
	return cfg
}
