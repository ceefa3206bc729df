package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config holds all service configuration.
type Config struct {
	Environment EnvironmentConfig

	HTTPServer HTTPServerConfig
	Logger     LoggerConfig

	Redis  RedisConfig
	Google GoogleConfig
	Auth   AuthConfig

	RateLimit RateLimitConfig
}

type EnvironmentConfig struct {
	Name string
}

type HTTPServerConfig struct {
	Port int
	Mode string
}

type LoggerConfig struct {
	Level        string
	Mode         string
	Encoding     string
	ColorEnabled bool
}

// RedisConfig points at the durable config/token store. An empty Addr means
// the service runs on in-memory storage only.
type RedisConfig struct {
	Addr     string
	Password string
	DB       int
}

// GoogleConfig holds the OAuth client used to refresh the owner's calendar
// tokens.
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
}

type AuthConfig struct {
	// Secret derives the AES key that seals stored owner tokens.
	Secret string

	// AdminAPIKey is the bearer key for the admin endpoints.
	AdminAPIKey string

	// EncryptedOwnerRefreshToken is an optional pre-sealed refresh token,
	// used when no durable store is configured.
	EncryptedOwnerRefreshToken string
}

type RateLimitConfig struct {
	RequestsPerSecond float64
	Burst             int
}

// Load loads configuration using Viper.
// Config file name: config.yaml — searched in ./config, ., /etc/app/
func Load() (*Config, error) {
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("./config")
	viper.AddConfigPath(".")
	viper.AddConfigPath("/etc/app/")

	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("error reading config file: %w", err)
		}
	}

	cfg := &Config{}

	cfg.Environment.Name = viper.GetString("environment.name")
	cfg.HTTPServer.Port = viper.GetInt("http_server.port")
	cfg.HTTPServer.Mode = viper.GetString("http_server.mode")
	cfg.Logger.Level = viper.GetString("logger.level")
	cfg.Logger.Mode = viper.GetString("logger.mode")
	cfg.Logger.Encoding = viper.GetString("logger.encoding")
	cfg.Logger.ColorEnabled = viper.GetBool("logger.color_enabled")

	cfg.Redis.Addr = viper.GetString("redis.addr")
	cfg.Redis.Password = viper.GetString("redis.password")
	cfg.Redis.DB = viper.GetInt("redis.db")
	if redisURL := viper.GetString("redis_url"); redisURL != "" {
		cfg.Redis.Addr = redisURL
	}

	cfg.Google.ClientID = viper.GetString("google.client_id")
	cfg.Google.ClientSecret = viper.GetString("google.client_secret")
	if clientID := viper.GetString("google_client_id"); clientID != "" {
		cfg.Google.ClientID = clientID
	}
	if clientSecret := viper.GetString("google_client_secret"); clientSecret != "" {
		cfg.Google.ClientSecret = clientSecret
	}

	cfg.Auth.Secret = viper.GetString("auth.secret")
	cfg.Auth.AdminAPIKey = viper.GetString("auth.admin_api_key")
	cfg.Auth.EncryptedOwnerRefreshToken = viper.GetString("auth.encrypted_owner_refresh_token")
	if secret := viper.GetString("auth_secret"); secret != "" {
		cfg.Auth.Secret = secret
	}
	if key := viper.GetString("admin_api_key"); key != "" {
		cfg.Auth.AdminAPIKey = key
	}
	if sealed := viper.GetString("encrypted_owner_refresh_token"); sealed != "" {
		cfg.Auth.EncryptedOwnerRefreshToken = sealed
	}

	cfg.RateLimit.RequestsPerSecond = viper.GetFloat64("rate_limit.requests_per_second")
	cfg.RateLimit.Burst = viper.GetInt("rate_limit.burst")

	if cfg.Auth.Secret == "" {
		return nil, fmt.Errorf("auth.secret is required - it seals the stored owner tokens")
	}
	if cfg.Auth.AdminAPIKey == "" {
		return nil, fmt.Errorf("auth.admin_api_key is required")
	}

	return cfg, nil
}

func setDefaults() {
	viper.SetDefault("environment.name", "development")
	viper.SetDefault("http_server.port", 8080)
	viper.SetDefault("http_server.mode", "debug")
	viper.SetDefault("logger.level", "debug")
	viper.SetDefault("logger.mode", "debug")
	viper.SetDefault("logger.encoding", "console")
	viper.SetDefault("logger.color_enabled", true)
	viper.SetDefault("redis.db", 0)
	viper.SetDefault("rate_limit.requests_per_second", 10)
	viper.SetDefault("rate_limit.burst", 20)
}
