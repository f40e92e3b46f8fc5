package config

import (
	"fmt"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/viper"
	"go.uber.org/zap"
)

type AppConfig struct {
	API      *APIConfig      `mapstructure:"api"`
	Admin    *AdminConfig    `mapstructure:"admin"`
	Gin      *GinConfig      `mapstructure:"gin"`
	Postgres *PostgresConfig `mapstructure:"postgres"`
	Stripe   *StripeConfig   `mapstructure:"stripe"`
}

type APIConfig struct {
	Environment        string   `mapstructure:"environment"`
	Port               string   `mapstructure:"port"`
	BaseURL            string   `mapstructure:"base_url"`
	SessionSigningKey  string   `mapstructure:"session_signing_key"`
	SessionTTLHours    int      `mapstructure:"session_ttl_hours"`
	AllowedCORSDomains []string `mapstructure:"allowed_cors_domains"`
}

type AdminConfig struct {
	Email    string `mapstructure:"email"`
	Password string `mapstructure:"password"`
}

type GinConfig struct {
	Mode string `mapstructure:"mode"`
}

type PostgresConfig struct {
	Host     string `mapstructure:"host"`
	Port     string `mapstructure:"port"`
	User     string `mapstructure:"user"`
	Password string `mapstructure:"password"`
	DBName   string `mapstructure:"db_name"`
	SSLMode  string `mapstructure:"ssl_mode"`
}

type StripeConfig struct {
	SecretKey string `mapstructure:"secret_key"`
}

// Load reads the YAML config at path and applies environment overrides.
// The file is watched so that an edit is caught and validated early;
// the running configuration is immutable and a restart applies changes.
func Load(path string) (*AppConfig, error) {
	viper.SetConfigFile(path)

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("viper.ReadInConfig -> %w", err)
	}

	viper.AutomaticEnv()
	bindEnvs()

	var conf AppConfig
	if err := viper.Unmarshal(&conf); err != nil {
		return nil, fmt.Errorf("viper.Unmarshal -> %w", err)
	}

	viper.OnConfigChange(func(e fsnotify.Event) {
		// Unmarshal into a throwaway struct: the config served to the
		// running server is never mutated, so a concurrent file edit
		// cannot race request handlers reading it.
		var next AppConfig
		if err := viper.Unmarshal(&next); err != nil {
			zap.L().Error("config change is invalid", zap.String("file", e.Name), zap.Error(err))
			return
		}
		zap.L().Info("config change detected, restart to apply", zap.String("file", e.Name))
	})
	viper.WatchConfig()

	return &conf, nil
}

func bindEnvs() {
	// Environment variables win over file values.
	_ = viper.BindEnv("api.port", "PORT")
	_ = viper.BindEnv("api.base_url", "BASE_URL")
	_ = viper.BindEnv("api.session_signing_key", "SESSION_SIGNING_KEY")
	_ = viper.BindEnv("admin.email", "ADMIN_EMAIL")
	_ = viper.BindEnv("admin.password", "ADMIN_PASSWORD")
	_ = viper.BindEnv("stripe.secret_key", "STRIPE_SECRET_KEY")
	_ = viper.BindEnv("postgres.host", "POSTGRES_HOST")
	_ = viper.BindEnv("postgres.port", "POSTGRES_PORT")
	_ = viper.BindEnv("postgres.user", "POSTGRES_USER")
	_ = viper.BindEnv("postgres.password", "POSTGRES_PASSWORD")
	_ = viper.BindEnv("postgres.db_name", "POSTGRES_DB")
}
