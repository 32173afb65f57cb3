// Package config loads process configuration from the environment.
package config

import (
	"context"
	"fmt"

	"github.com/sethvargo/go-envconfig"

	"github.com/cachekit/tagcache/pkg/tagcache"
)

type Config struct {
	Redis  RedisConfig
	Cache  CacheConfig
	Server ServerConfig
	Log    LogConfig
}

// RedisConfig specifies the shared store connection. One client is
// constructed at startup and reused for the life of the process.
type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	DB       int    `env:"REDIS_DB, default=0"`
	Password string `env:"REDIS_PASSWORD"`
}

// CacheConfig specifies key resolution: the template expanded for every
// physical key and the bin names for the page and tag namespaces.
type CacheConfig struct {
	KeyTemplate string `env:"CACHE_KEY_TEMPLATE, default=cache:{bin}:{cid}"`
	PageBin     string `env:"CACHE_PAGE_BIN, default=page"`
	TagBin      string `env:"CACHE_TAG_BIN, default=tags"`
}

type ServerConfig struct {
	Port int `env:"SERVER_PORT, default=8080"`
}

type LogConfig struct {
	Level  string `env:"LOG_LEVEL, default=info"`
	Pretty bool   `env:"LOG_PRETTY, default=false"`
}

// Load reads configuration from the process environment.
func Load(ctx context.Context) (Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return Config{}, fmt.Errorf("process environment: %w", err)
	}
	return cfg, nil
}

// ReaderConfig converts the cache settings into the reader's form.
func (c CacheConfig) ReaderConfig() tagcache.Config {
	return tagcache.Config{
		KeyTemplate: c.KeyTemplate,
		PageBin:     c.PageBin,
		TagBin:      c.TagBin,
	}
}
