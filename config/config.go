package config

import (
	"encoding/json"
	"fmt"
	"log"
	"sync"
	"time"

	"library-admin/pkg/logger"

	"github.com/kelseyhightower/envconfig"
	"go.uber.org/zap/zapcore"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"ADMIN_HTTP_HOST" default:"0.0.0.0"`
	Port         string        `yaml:"port" envconfig:"ADMIN_HTTP_PORT" default:"8080"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ" default:"30s"`
	WriteTimeout time.Duration
}

// CatalogAPI locates the remote catalog service all screens talk to.
type CatalogAPI struct {
	BaseURL string        `yaml:"baseURL" envconfig:"CATALOG_API_BASE_URL" default:"http://localhost:8000/api/v1"`
	Timeout time.Duration `yaml:"timeout" envconfig:"CATALOG_API_TIMEOUT" default:"1m"`
}

type Config struct {
	Server     HTTPServer `yaml:"server"`
	CatalogAPI CatalogAPI `yaml:"catalogAPI"`
	Log        logger.Log `yaml:"log"`
}

var (
	once sync.Once
	cfg  Config
)

// NewConfig reads config from environment.
func NewConfig(ops ...Option) Config {
	once.Do(func() {
		var config Config
		for _, op := range ops {
			op(&config)
		}
		err := envconfig.Process("", &config)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = config
		printConfig(cfg)
	})

	return cfg
}

func printConfig(cfg Config) {
	jscfg, _ := json.MarshalIndent(cfg, "", "	") //nolint:errcheck
	fmt.Println(string(jscfg))
}

type Option func(*Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

func WithWriteTimeout(timeout time.Duration) Option {
	return func(c *Config) {
		c.Server.WriteTimeout = timeout
	}
}
