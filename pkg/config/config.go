package config

import (
	"errors"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	EnvDevelopment = "development"
	EnvProduction  = "production"
)

type Config struct {
	Env       string
	Port      int
	APIPrefix string

	Redis   RedisConfig
	Session SessionConfig
	CORS    CORSConfig
	Log     LogConfig
	Seed    SeedConfig
	Import  ImportConfig
}

// RedisConfig describes the optional session registry backend.
type RedisConfig struct {
	Enabled  bool
	Host     string
	Port     int
	Password string
	DB       int
}

// SessionConfig governs bearer token issuance.
type SessionConfig struct {
	Secret string
	TTL    time.Duration
	Issuer string
}

type CORSConfig struct {
	AllowedOrigins []string
}

type LogConfig struct {
	Level  string
	Format string
}

// SeedConfig controls demo fixture loading at startup.
type SeedConfig struct {
	DemoData    bool
	FixturePath string
}

// ImportConfig bounds calendar uploads.
type ImportConfig struct {
	MaxFileSizeBytes int64
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigFile(".env")
	v.SetConfigType("env")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, err
		}
	}

	cfg := &Config{}

	cfg.Env = v.GetString("ENV")
	cfg.Port = v.GetInt("PORT")
	cfg.APIPrefix = v.GetString("API_PREFIX")

	cfg.Redis = RedisConfig{
		Enabled:  v.GetBool("ENABLE_SESSION_STORE"),
		Host:     v.GetString("REDIS_HOST"),
		Port:     v.GetInt("REDIS_PORT"),
		Password: v.GetString("REDIS_PASSWORD"),
		DB:       v.GetInt("REDIS_DB"),
	}

	cfg.Session = SessionConfig{
		Secret: v.GetString("SESSION_SECRET"),
		TTL:    parseDuration(v.GetString("SESSION_TTL"), 24*time.Hour),
		Issuer: v.GetString("SESSION_ISSUER"),
	}

	cfg.CORS = CORSConfig{AllowedOrigins: splitAndTrim(v.GetString("ALLOWED_ORIGINS"))}

	cfg.Log = LogConfig{
		Level:  v.GetString("LOG_LEVEL"),
		Format: v.GetString("LOG_FORMAT"),
	}

	cfg.Seed = SeedConfig{
		DemoData:    v.GetBool("SEED_DEMO_DATA"),
		FixturePath: v.GetString("SEED_FIXTURE_PATH"),
	}

	maxUpload := v.GetInt64("IMPORT_MAX_FILE_SIZE")
	if maxUpload <= 0 {
		maxUpload = 5 * 1024 * 1024
	}
	cfg.Import = ImportConfig{MaxFileSizeBytes: maxUpload}

	return cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("ENV", EnvDevelopment)
	v.SetDefault("PORT", 8080)
	v.SetDefault("API_PREFIX", "/api/v1")

	v.SetDefault("ENABLE_SESSION_STORE", false)
	v.SetDefault("REDIS_HOST", "localhost")
	v.SetDefault("REDIS_PORT", 6379)
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_DB", 0)

	v.SetDefault("SESSION_SECRET", "dev_secret")
	v.SetDefault("SESSION_TTL", "24h")
	v.SetDefault("SESSION_ISSUER", "campus-api")

	v.SetDefault("ALLOWED_ORIGINS", "")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "json")

	v.SetDefault("SEED_DEMO_DATA", false)
	v.SetDefault("SEED_FIXTURE_PATH", "")
	v.SetDefault("IMPORT_MAX_FILE_SIZE", 5*1024*1024)
}

func parseDuration(raw string, fallback time.Duration) time.Duration {
	if raw == "" {
		return fallback
	}

	d, err := time.ParseDuration(raw)
	if err != nil {
		return fallback
	}

	return d
}

func splitAndTrim(raw string) []string {
	if raw == "" {
		return nil
	}

	parts := strings.Split(raw, ",")
	result := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}
