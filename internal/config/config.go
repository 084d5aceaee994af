package config

import (
	"fmt"
	"log"
	"math"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Logger  LoggerConfig  `mapstructure:"logger"`
	Metrics MetricsConfig `mapstructure:"metrics"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Batch   BatchConfig   `mapstructure:"batch"`

	// Source is the config file that was read, empty when none was found.
	Source string `mapstructure:"-"`
}

type ServerConfig struct {
	Port         int             `mapstructure:"port"`
	ReadTimeout  time.Duration   `mapstructure:"readTimeout"`
	WriteTimeout time.Duration   `mapstructure:"writeTimeout"`
	IdleTimeout  time.Duration   `mapstructure:"idleTimeout"`
	RateLimit    RateLimitConfig `mapstructure:"rateLimit"`
}

type RateLimitConfig struct {
	Enabled bool    `mapstructure:"enabled"`
	RPS     float64 `mapstructure:"rps"`
	Burst   int     `mapstructure:"burst"`
}

type LoggerConfig struct {
	Level    string `mapstructure:"level"`
	Encoding string `mapstructure:"encoding"`
}

type MetricsConfig struct {
	Path string `mapstructure:"path"`
}

// CatalogConfig controls how the reference dataset is seeded at startup.
type CatalogConfig struct {
	Size           int   `mapstructure:"size"`
	FirstReference int32 `mapstructure:"firstReference"`
}

// Validate rejects catalogs whose last id would not fit in an int32.
func (c CatalogConfig) Validate() error {
	if c.Size < 0 {
		return fmt.Errorf("catalog.size must not be negative, got %d", c.Size)
	}
	if c.Size > 0 && int64(c.FirstReference)+int64(c.Size)-1 > math.MaxInt32 {
		return fmt.Errorf("catalog ids overflow int32: firstReference %d with size %d", c.FirstReference, c.Size)
	}
	return nil
}

type BatchConfig struct {
	IntegrityCheckSchedule string        `mapstructure:"integrityCheckSchedule"`
	IntegrityCheckTimeout  time.Duration `mapstructure:"integrityCheckTimeout"`
}

func LoadConfig(path string) (*Config, error) {
	v := viper.New()
	v.AddConfigPath(path)
	v.SetConfigName("config")
	v.SetConfigType("yml")

	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.readTimeout", 15*time.Second)
	v.SetDefault("server.writeTimeout", 15*time.Second)
	v.SetDefault("server.idleTimeout", 60*time.Second)
	v.SetDefault("server.rateLimit.enabled", true)
	v.SetDefault("server.rateLimit.rps", 50)
	v.SetDefault("server.rateLimit.burst", 100)
	v.SetDefault("logger.level", "info")
	v.SetDefault("logger.encoding", "json")
	v.SetDefault("metrics.path", "/metrics")
	v.SetDefault("catalog.size", 1001)
	v.SetDefault("catalog.firstReference", 1000000)
	v.SetDefault("batch.integrityCheckSchedule", "@every 5m")
	v.SetDefault("batch.integrityCheckTimeout", 30*time.Second)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			log.Println("Config file not found, using defaults and environment variables.")
		} else {
			return nil, err
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, err
	}
	cfg.Source = v.ConfigFileUsed()

	if err := cfg.Catalog.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}
