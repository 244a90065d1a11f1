package config

import (
	"fmt"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type Config struct {
	App   AppConfig
	HTTP  HTTPConfig
	Mongo MongoConfig
}

type AppConfig struct {
	Version  string `env:"APP_VERSION" env-default:"0.1.0" yaml:"version" toml:"version"`
	LogLevel string `env:"LOG_LEVEL" env-default:"info" yaml:"log-level" toml:"log-level"`
}

type HTTPConfig struct {
	Port              string        `env:"PORT" env-default:"8080" yaml:"port" toml:"port"`
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"read-header-timeout" toml:"read-header-timeout"`
	IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"60s" yaml:"idle-timeout" toml:"idle-timeout"`
	ShutdownTimeout   time.Duration `env:"SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"shutdown-timeout" toml:"shutdown-timeout"`
}

type MongoConfig struct {
	URL            string        `env:"MONGODB_URL" env-default:"mongodb://localhost:27017" yaml:"url" toml:"url"`
	Database       string        `env:"DATABASE_NAME" env-default:"financial_kanban" yaml:"database" toml:"database"`
	ConnectTimeout time.Duration `env:"MONGODB_CONNECT_TIMEOUT" env-default:"10s" yaml:"connect-timeout" toml:"connect-timeout"`
}

// Load reads configuration from the environment. A .env file in the working
// directory is loaded first if it exists, and when CONFIG_FILE names a file
// it is read before environment overrides are applied.
func Load() (Config, error) {
	// Load .env file if it exists (useful for local dev)
	_ = godotenv.Load()

	var cfg Config
	var err error
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		err = cleanenv.ReadConfig(path, &cfg)
	} else {
		err = cleanenv.ReadEnv(&cfg)
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	if cfg.Mongo.URL == "" {
		return Config{}, fmt.Errorf("MONGODB_URL must not be empty")
	}
	if cfg.Mongo.Database == "" {
		return Config{}, fmt.Errorf("DATABASE_NAME must not be empty")
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server.
func (c HTTPConfig) Addr() string {
	return "0.0.0.0:" + c.Port
}
