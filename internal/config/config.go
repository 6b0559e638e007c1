package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config represents the application configuration structure.
type Config struct {
	// Environment is either "development" or "production" and selects the logger setup.
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`
	// LogLevel overrides the level implied by Environment when set.
	LogLevel string `env:"LOG_LEVEL" yaml:"logLevel"`

	// Auditor configures notebook discovery and URL probing.
	Auditor struct {
		// Root is the directory holding the notebooks.
		Root string `env:"AUDITOR_ROOT" env-default:"docs/gallery/interactive" yaml:"root"`
		// Pattern selects notebook files by base name.
		Pattern string `env:"AUDITOR_PATTERN" env-default:"*.ipynb" yaml:"pattern"`
		// Recursive makes discovery descend into subdirectories of Root.
		Recursive bool `env:"AUDITOR_RECURSIVE" env-default:"false" yaml:"recursive"`
		// ProbeTimeout bounds a single HEAD request.
		ProbeTimeout time.Duration `env:"AUDITOR_PROBE_TIMEOUT" env-default:"5s" yaml:"probeTimeout"`
		// UserAgent is sent with every probe.
		UserAgent string `env:"AUDITOR_USER_AGENT" env-default:"linkaudit/1.0" yaml:"userAgent"`
		// FollowRedirects makes a probe judge the end of a redirect chain instead of the 3xx itself.
		FollowRedirects bool `env:"AUDITOR_FOLLOW_REDIRECTS" env-default:"false" yaml:"followRedirects"`
	} `yaml:"auditor"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout bounds the handling of a single request. Starting a run
		// discovers notebooks synchronously, so keep it above the discovery time.
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Database contains all database connection related configurations
	Database struct {
		Username string `env:"DATABASE_USERNAME" env-default:"linkaudit" yaml:"username"`
		Password string `env:"DATABASE_PASSWORD" env-default:"linkaudit" yaml:"password"`
		Host     string `env:"DATABASE_HOST" env-default:"localhost" yaml:"host"`
		Port     int    `env:"DATABASE_PORT" env-default:"5432" yaml:"port"`
		SslMode  string `env:"DATABASE_SSL_MODE" env-default:"disable" yaml:"sslMode"`
		// DatabaseName is the name of the database to connect to
		DatabaseName string `env:"DATABASE_NAME" env-default:"linkaudit" yaml:"name"`
		// MaxOpenConnections limits the size of the pgx pool
		MaxOpenConnections int `env:"DATABASE_MAX_OPEN_CONNECTIONS" env-default:"10" yaml:"maxOpenConnections"`
		// MaxIdleConnections is the number of connections the pool keeps open
		MaxIdleConnections int           `env:"DATABASE_MAX_IDLE_CONNECTIONS" env-default:"2" yaml:"maxIdleConnections"`
		ConnMaxLifetime    time.Duration `env:"DATABASE_CONNECTION_MAX_LIFETIME" env-default:"3m" yaml:"connMaxLifetime"`
		ConnMaxIdleTime    time.Duration `env:"DATABASE_CONNECTION_MAX_IDLE_TIME" env-default:"3m" yaml:"connMaxIdleTime"`
	} `yaml:"database"`

	// Worker configures the background audit jobs.
	Worker struct {
		// MaxWorkers bounds how many notebooks are audited concurrently.
		MaxWorkers int `env:"WORKER_MAX_WORKERS" env-default:"10" yaml:"maxWorkers"`
		// MaxAttempts is how many times a notebook that could not be read is tried.
		MaxAttempts int `env:"WORKER_MAX_ATTEMPTS" env-default:"1" yaml:"maxAttempts"`
	} `yaml:"worker"`

	// JWT holds the PEM encoded RSA keys of the API bearer tokens.
	JWT struct {
		// PublicKey verifies tokens. It is required by the serve command.
		PublicKey string `env:"JWT_PUBLIC_KEY" yaml:"publicKey"`
		// PrivateKey signs tokens. It is only needed by the jwt command.
		PrivateKey string `env:"JWT_PRIVATE_KEY" yaml:"privateKey"`
	} `yaml:"jwt"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load reads the yaml config file at configPath with environment overrides.
// When the file does not exist only the environment and defaults are used.
func Load(configPath string) (*Config, error) {
	var cfg Config

	_, err := os.Stat(configPath)
	switch {
	case err == nil:
		err = cleanenv.ReadConfig(configPath, &cfg)
	case errors.Is(err, fs.ErrNotExist):
		err = cleanenv.ReadEnv(&cfg)
	default:
		return nil, fmt.Errorf("could not stat config file: %w", err)
	}
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
