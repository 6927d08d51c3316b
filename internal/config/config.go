package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/spf13/viper"
)

type Config struct {
	Env          string        `validate:"required,oneof=dev test prod"`
	LogLevel     string        `validate:"required,oneof=debug info warn error"`
	HTTPPort     string        `validate:"required,numeric"`
	DatabaseURL  string        `validate:"required_if=Store postgres"`
	DBMaxConns   int32         `validate:"gt=0"`
	Migrate      bool
	Store        string        `validate:"required,oneof=postgres memory"`
	JWTSecret    string        `validate:"required"`
	JWTIssuer    string        `validate:"required"`
	TokenTTL     time.Duration `validate:"gt=0"`
	RateRPS      int           `validate:"gte=0"`
	Workers      int           `validate:"gt=0"`
	KafkaBrokers []string
	KafkaTopic   string `validate:"required_with=KafkaBrokers"`
}

// Load reads configuration from the environment (and CONFIG_FILE when set).
// A missing JWT_SECRET is an error: the service never signs with an empty key.
func Load() (Config, error) {
	v := viper.New()
	v.SetDefault("app_env", "dev")
	v.SetDefault("http_port", "3000")
	v.SetDefault("db_host", "localhost")
	v.SetDefault("db_port", "5432")
	v.SetDefault("db_user", "postgres")
	v.SetDefault("db_password", "postgres")
	v.SetDefault("db_name", "fitgroups")
	v.SetDefault("db_max_conns", 10)
	v.SetDefault("app_migrate", false)
	v.SetDefault("app_store", "postgres")
	v.SetDefault("jwt_issuer", "fitgroups-api")
	v.SetDefault("jwt_ttl", time.Hour)
	v.SetDefault("rate_rps", 100)
	v.SetDefault("workers", 4)
	v.SetDefault("kafka_topic", "fitgroups.events")
	v.AutomaticEnv()

	if file := v.GetString("config_file"); file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config file %s: %w", file, err)
		}
	}

	cfg := Config{
		Env:          v.GetString("app_env"),
		LogLevel:     v.GetString("log_level"),
		HTTPPort:     v.GetString("http_port"),
		DatabaseURL:  v.GetString("database_url"),
		DBMaxConns:   v.GetInt32("db_max_conns"),
		Migrate:      v.GetBool("app_migrate"),
		Store:        v.GetString("app_store"),
		JWTSecret:    v.GetString("jwt_secret"),
		JWTIssuer:    v.GetString("jwt_issuer"),
		TokenTTL:     v.GetDuration("jwt_ttl"),
		RateRPS:      v.GetInt("rate_rps"),
		Workers:      v.GetInt("workers"),
		KafkaBrokers: splitAndTrim(v.GetString("kafka_brokers")),
		KafkaTopic:   v.GetString("kafka_topic"),
	}
	if cfg.LogLevel == "" {
		cfg.LogLevel = "debug"
		if cfg.Env == "prod" {
			cfg.LogLevel = "info"
		}
	}
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = buildDatabaseURL(
			v.GetString("db_user"), v.GetString("db_password"),
			v.GetString("db_host"), v.GetString("db_port"), v.GetString("db_name"),
		)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid configuration: %w", err)
	}
	return cfg, nil
}

func buildDatabaseURL(user, password, host, port, name string) string {
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(user, password),
		Host:     host + ":" + port,
		Path:     "/" + name,
		RawQuery: "sslmode=disable",
	}
	return u.String()
}

func splitAndTrim(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	parts := strings.Split(value, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
