// internal/config/config.go
//
// Runtime configuration for sylver-viz.
// Responsibilities:
//   - Load `.env` (development convenience, missing file is fine).
//   - Merge defaults, an optional YAML config file, environment variables and
//     command-line flags (bound by the cmd package) through viper.
//   - Validate the merged result.
//
// Environment variables:
//   SYLVER_SERVICE_URL   computation service base URL (default http://localhost:5000)
//   SYLVER_ADDR          listen address for `serve` (default :5175; PORT also honoured)
//   SYLVER_LENGTH        initial board length (default 100, minimum 100)
//   SYLVER_INPUT         initial generators (default "9,11")
//   SYLVER_TIMEOUT       per-lookup timeout (default 10s)
//   SYLVER_RATE_LIMIT    lookups per second, 0 = unlimited
//   SYLVER_BURST         lookup burst when rate limited
//   JWT_SECRET           session cookie signing secret
//   CLIENT_ORIGIN        CORS origin for the browser front end
//   LOG_LEVEL            zerolog level (default info)
//   SYLVER_LOG_FILE      log destination for the terminal UI

package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	envPrefix   = "SYLVER"
	defaultAddr = ":5175"
)

// Config is the merged, validated configuration.
type Config struct {
	ServiceURL   string        `mapstructure:"service_url" validate:"required,url"`
	Addr         string        `mapstructure:"addr" validate:"required"`
	Length       int           `mapstructure:"length" validate:"gte=100"`
	Input        string        `mapstructure:"input"`
	Timeout      time.Duration `mapstructure:"timeout" validate:"gt=0"`
	RateLimit    float64       `mapstructure:"rate_limit" validate:"gte=0"`
	Burst        int           `mapstructure:"burst" validate:"gte=0"`
	JWTSecret    string        `mapstructure:"jwt_secret" validate:"required"`
	ClientOrigin string        `mapstructure:"client_origin"`
	SessionTTL   time.Duration `mapstructure:"session_ttl" validate:"gt=0"`
	LogLevel     string        `mapstructure:"log_level" validate:"oneof=trace debug info warn error fatal panic disabled"`
	LogFile      string        `mapstructure:"log_file"`
}

var validate = validator.New()

// SetDefaults installs default values and env bindings on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("service_url", "http://localhost:5000")
	v.SetDefault("addr", defaultAddr)
	v.SetDefault("length", 100)
	v.SetDefault("input", "9,11")
	v.SetDefault("timeout", 10*time.Second)
	v.SetDefault("rate_limit", 0)
	v.SetDefault("burst", 4)
	v.SetDefault("jwt_secret", "dev_secret_change_me")
	v.SetDefault("client_origin", "http://localhost:5173")
	v.SetDefault("session_ttl", 12*time.Hour)
	v.SetDefault("log_level", "info")
	v.SetDefault("log_file", "")

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	// Unprefixed names kept for existing deployments.
	_ = v.BindEnv("jwt_secret", envPrefix+"_JWT_SECRET", "JWT_SECRET")
	_ = v.BindEnv("client_origin", envPrefix+"_CLIENT_ORIGIN", "CLIENT_ORIGIN")
	_ = v.BindEnv("log_level", envPrefix+"_LOG_LEVEL", "LOG_LEVEL")
}

// Load reads .env, the optional config file, and returns the validated config.
func Load(v *viper.Viper, file string) (*Config, error) {
	_ = godotenv.Load()

	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", file, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("decode config: %w", err)
	}
	if port := os.Getenv("PORT"); port != "" && c.Addr == defaultAddr {
		c.Addr = ":" + port
	}
	c.LogLevel = strings.ToLower(c.LogLevel)

	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// Validate checks struct constraints and reports the first failing field.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return fmt.Errorf("config: %s fails %q (value %v)", fe.Field(), fe.Tag(), fe.Value())
	}
	return fmt.Errorf("config: %w", err)
}
