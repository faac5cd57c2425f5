package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
	dc "github.com/ncobase/microservicio/data/config"
	lc "github.com/ncobase/microservicio/logging/logger/config"
	"github.com/spf13/viper"
)

// Config represents the configuration implementation.
type Config struct {
	AppName    string
	AppVersion string
	Debug      bool
	Server     *Server
	Logger     *lc.Config
	Data       *dc.Config
	Sentry     *Sentry
	Viper      *viper.Viper

	path string
	mu   sync.Mutex
}

// LoadConfig loads the configuration.
// The file is optional; environment variables always take precedence.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()
	setDefaults(v)
	if err := bindEnv(v); err != nil {
		return nil, err
	}

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	} else {
		v.SetConfigName("config")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/microservicio")
		if ex, err := os.Executable(); err == nil {
			v.AddConfigPath(filepath.Dir(ex))
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config file: %w", err)
			}
		}
	}

	cfg := FromViper(v)
	cfg.path = v.ConfigFileUsed()
	return cfg, nil
}

// FromViper builds a Config from an already populated viper instance.
func FromViper(v *viper.Viper) *Config {
	return &Config{
		AppName:    v.GetString("app_name"),
		AppVersion: v.GetString("app_version"),
		Debug:      v.GetBool("debug"),
		Server:     getServerConfig(v),
		Logger:     lc.GetConfig(v),
		Data:       dc.GetConfig(v),
		Sentry:     getSentryConfig(v),
		Viper:      v,
	}
}

// Path returns the config file in use, empty when running from env only.
func (c *Config) Path() string {
	return c.path
}

// Watch watches the configuration file and calls callback with the
// reloaded configuration. It is a no-op without a config file.
func (c *Config) Watch(callback func(*Config)) {
	if c.path == "" {
		return
	}
	c.Viper.OnConfigChange(func(e fsnotify.Event) {
		if !e.Has(fsnotify.Write) && !e.Has(fsnotify.Create) {
			return
		}
		c.mu.Lock()
		defer c.mu.Unlock()
		next := FromViper(c.Viper)
		next.path = c.path
		callback(next)
	})
	c.Viper.WatchConfig()
}
