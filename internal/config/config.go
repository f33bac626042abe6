package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	AppPort            int           `mapstructure:"APP_PORT"`
	DatabasePath       string        `mapstructure:"DATABASE_PATH"`
	LogLevel           string        `mapstructure:"LOG_LEVEL"`
	AssetBaseURL       string        `mapstructure:"ASSET_BASE_URL"`
	CORSAllowedOrigins string        `mapstructure:"CORS_ALLOWED_ORIGINS"`
	RedisAddr          string        `mapstructure:"REDIS_ADDR"`
	RedisPassword      string        `mapstructure:"REDIS_PASSWORD"`
	RedisChannel       string        `mapstructure:"REDIS_CHANNEL"`
	RabbitURL          string        `mapstructure:"RABBIT_URL"`
	RabbitQueue        string        `mapstructure:"RABBIT_QUEUE"`
	ShutdownTimeout    time.Duration `mapstructure:"SHUTDOWN_TIMEOUT"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_PORT", 8000)
	v.SetDefault("DATABASE_PATH", "./data/okaigpt.db")
	v.SetDefault("LOG_LEVEL", "INFO")
	v.SetDefault("ASSET_BASE_URL", "https://assets.okaigpt.local")
	v.SetDefault("CORS_ALLOWED_ORIGINS", "*")
	v.SetDefault("REDIS_ADDR", "")
	v.SetDefault("REDIS_PASSWORD", "")
	v.SetDefault("REDIS_CHANNEL", "video-status")
	v.SetDefault("RABBIT_URL", "")
	v.SetDefault("RABBIT_QUEUE", "video-jobs")
	v.SetDefault("SHUTDOWN_TIMEOUT", 10*time.Second)
}

// LoadConfig reads the configuration from an optional .env file and the
// environment, falling back to defaults.
func LoadConfig() (*Config, error) {
	return load(viper.GetViper())
}

func load(v *viper.Viper) (*Config, error) {
	setDefaults(v)

	v.SetConfigName(".env")
	v.SetConfigType("env")
	v.AddConfigPath(".")
	v.AddConfigPath("./backend")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

// Validate checks that the required settings are present.
func (c *Config) Validate() error {
	if c.AppPort <= 0 || c.AppPort > 65535 {
		return fmt.Errorf("APP_PORT must be between 1 and 65535, got %d", c.AppPort)
	}
	if c.DatabasePath == "" {
		return fmt.Errorf("DATABASE_PATH cannot be empty")
	}
	if c.RedisAddr != "" && c.RedisChannel == "" {
		return fmt.Errorf("REDIS_CHANNEL cannot be empty when REDIS_ADDR is set")
	}
	if c.RabbitURL != "" && c.RabbitQueue == "" {
		return fmt.Errorf("RABBIT_QUEUE cannot be empty when RABBIT_URL is set")
	}
	return nil
}

// AllowedOrigins splits CORS_ALLOWED_ORIGINS on commas.
func (c *Config) AllowedOrigins() []string {
	var origins []string
	for _, o := range strings.Split(c.CORSAllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}
