package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const (
	SeedSample   = "sample"
	SeedPostgres = "postgres"
)

// Config stores all configuration of the application.
// Values are read from app.yaml and can be overridden by environment variables.
type Config struct {
	ServerAddress   string        `mapstructure:"server_address"`
	DBSource        string        `mapstructure:"db_source"`
	SeedSource      string        `mapstructure:"seed_source"`
	WalkingSpeed    float64       `mapstructure:"walking_speed"`
	LogLevel        string        `mapstructure:"log_level"`
	CORSOrigins     []string      `mapstructure:"cors_origins"`
	ShutdownTimeout time.Duration `mapstructure:"shutdown_timeout"`
}

// LoadConfig reads app.yaml from path, if present, then applies environment overrides
func LoadConfig(path string) (Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("app")
	v.SetConfigType("yaml")

	v.SetDefault("server_address", ":8080")
	v.SetDefault("db_source", "")
	v.SetDefault("seed_source", SeedSample)
	v.SetDefault("walking_speed", 5.0)
	v.SetDefault("log_level", "info")
	v.SetDefault("cors_origins", []string{"*"})
	v.SetDefault("shutdown_timeout", 10*time.Second)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return config, fmt.Errorf("config: failed to read config: %w", err)
		}
	}

	if err := v.Unmarshal(&config); err != nil {
		return config, fmt.Errorf("config: failed to decode config: %w", err)
	}

	if err := config.Validate(); err != nil {
		return config, err
	}
	return config, nil
}

// Validate checks the values that have no usable fallback
func (c Config) Validate() error {
	if !(c.WalkingSpeed > 0) {
		return fmt.Errorf("config: walking_speed must be positive, got %v", c.WalkingSpeed)
	}
	switch c.SeedSource {
	case SeedSample:
	case SeedPostgres:
		if c.DBSource == "" {
			return errors.New("config: db_source is required when seed_source is postgres")
		}
	default:
		return fmt.Errorf("config: unknown seed_source %q", c.SeedSource)
	}
	return nil
}
