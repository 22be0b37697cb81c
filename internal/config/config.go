package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
)

// Config holds the development server configuration.
type Config struct {
	Server ServerConfig
	Log    LogConfig
}

// ServerConfig holds HTTP settings.
type ServerConfig struct {
	Addr  string
	// Dist is the directory holding main.wasm and wasm_exec.js.
	Dist  string
	// Watch enables bundle change detection.
	Watch bool
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string
	Format string
}

// Load reads configuration from an optional .env file, an optional TOML file
// and the environment. Env var overrides use prefix PAGEBUILDER_, e.g.
// PAGEBUILDER_SERVER_ADDR. A missing .env or default config file is not an
// error; a config file named by PAGEBUILDER_CONFIG must exist.
func Load(dotenv ...string) (Config, error) {
	if len(dotenv) == 0 {
		dotenv = []string{".env"}
	}
	if err := godotenv.Load(dotenv...); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("load env file: %w", err)
	}

	v := viper.New()

	// default values
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.dist", "web")
	v.SetDefault("server.watch", true)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("PAGEBUILDER_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("pagebuilder")
	}

	v.SetEnvPrefix("PAGEBUILDER")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgPath != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Logger builds a logrus logger for the configured level and format.
func (c LogConfig) Logger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(c.Level)
	if err != nil {
		return nil, fmt.Errorf("log level: %w", err)
	}

	logger := logrus.New()
	logger.SetLevel(level)

	switch strings.ToLower(c.Format) {
	case "", "text":
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	case "json":
		logger.SetFormatter(&logrus.JSONFormatter{})
	default:
		return nil, fmt.Errorf("log format %q: want text or json", c.Format)
	}
	return logger, nil
}
