package cmd

import (
	"errors"
	"fmt"
	"io/fs"
	"net/url"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const (
	// MinPort is the minimum valid port number
	MinPort = 1
	// MaxPort is the maximum valid port number
	MaxPort = 65535
)

const (
	StorageMemory   = "memory"
	StoragePostgres = "postgres"

	ZipSourceEmbedded = "embedded"
	ZipSourceFile     = "file"
	ZipSourcePostgres = "postgres"
)

// Config represents the complete application configuration
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Storage  StorageConfig  `yaml:"storage"`
	Geo      GeoConfig      `yaml:"geo"`
	RabbitMQ RabbitMQConfig `yaml:"rabbitmq"`
	Logging  LoggingConfig  `yaml:"logging"`
	Claim    ClaimConfig    `yaml:"claim"`
}

// ServerConfig holds HTTP server configuration
type ServerConfig struct {
	Port             int           `yaml:"port"`
	RequestTimeout   time.Duration `yaml:"request_timeout"`
	ReadTimeout      time.Duration `yaml:"read_timeout"`
	WriteTimeout     time.Duration `yaml:"write_timeout"`
	ShutdownTimeout  time.Duration `yaml:"shutdown_timeout"`
	ValidateRequests bool          `yaml:"validate_requests"`
	Swagger          bool          `yaml:"swagger"`
}

// DatabaseConfig holds PostgreSQL connection configuration
type DatabaseConfig struct {
	Host            string        `yaml:"host"`
	Port            int           `yaml:"port"`
	User            string        `yaml:"user"`
	Password        string        `yaml:"password"`
	Name            string        `yaml:"name"`
	SSLMode         string        `yaml:"sslmode"`
	MaxOpenConns    int           `yaml:"max_open_conns"`
	MaxIdleConns    int           `yaml:"max_idle_conns"`
	ConnMaxLifetime time.Duration `yaml:"conn_max_lifetime"`
}

// DSN renders the connection as a postgres URL, accepted by both pgx and lib/pq.
func (c DatabaseConfig) DSN() string {
	u := url.URL{
		Scheme: "postgres",
		User:   url.UserPassword(c.User, c.Password),
		Host:   fmt.Sprintf("%s:%d", c.Host, c.Port),
		Path:   "/" + c.Name,
	}
	if c.SSLMode != "" {
		u.RawQuery = url.Values{"sslmode": []string{c.SSLMode}}.Encode()
	}
	return u.String()
}

// StorageConfig selects where jobs and employees live
type StorageConfig struct {
	Driver      string `yaml:"driver"`
	AutoMigrate bool   `yaml:"auto_migrate"`
}

// GeoConfig selects the ZIP reference table and its refresh schedule
type GeoConfig struct {
	Source           string        `yaml:"source"`
	File             string        `yaml:"file"`
	SeedFromEmbedded bool          `yaml:"seed_from_embedded"`
	RefreshEnabled   bool          `yaml:"refresh_enabled"`
	RefreshSchedule  string        `yaml:"refresh_schedule"`
	RefreshTimeout   time.Duration `yaml:"refresh_timeout"`
}

// RabbitMQConfig holds the job event publisher configuration
type RabbitMQConfig struct {
	Enabled        bool          `yaml:"enabled"`
	URL            string        `yaml:"url"`
	Exchange       string        `yaml:"exchange"`
	Heartbeat      time.Duration `yaml:"heartbeat"`
	PublishTimeout time.Duration `yaml:"publish_timeout"`
	PublishRetries uint64        `yaml:"publish_retries"`
	RetryInterval  time.Duration `yaml:"retry_interval"`
}

// LoggingConfig holds logging configuration
type LoggingConfig struct {
	Level        string `yaml:"level"`
	Format       string `yaml:"format"`
	Output       string `yaml:"output"`
	EnableSource bool   `yaml:"enable_source"`
}

// ClaimConfig bounds retries of store failures while claiming
type ClaimConfig struct {
	MaxRetries      uint64        `yaml:"max_retries"`
	InitialInterval time.Duration `yaml:"initial_interval"`
	MaxInterval     time.Duration `yaml:"max_interval"`
}

// DefaultConfig runs everything in process: memory storage, embedded ZIP data, events to the log.
func DefaultConfig() Config {
	return Config{
		Server: ServerConfig{
			Port:             8080,
			RequestTimeout:   10 * time.Second,
			ReadTimeout:      15 * time.Second,
			WriteTimeout:     15 * time.Second,
			ShutdownTimeout:  10 * time.Second,
			ValidateRequests: true,
			Swagger:          true,
		},
		Database: DatabaseConfig{
			Host:            "localhost",
			Port:            5432,
			SSLMode:         "disable",
			MaxOpenConns:    20,
			MaxIdleConns:    5,
			ConnMaxLifetime: 30 * time.Minute,
		},
		Storage: StorageConfig{
			Driver:      StorageMemory,
			AutoMigrate: true,
		},
		Geo: GeoConfig{
			Source:          ZipSourceEmbedded,
			RefreshSchedule: "0 0 3 * * *",
			RefreshTimeout:  time.Minute,
		},
		RabbitMQ: RabbitMQConfig{
			Exchange:       "yardwork.jobs",
			Heartbeat:      10 * time.Second,
			PublishTimeout: 5 * time.Second,
			PublishRetries: 3,
			RetryInterval:  100 * time.Millisecond,
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
			Output: "stdout",
		},
		Claim: ClaimConfig{
			MaxRetries:      3,
			InitialInterval: 50 * time.Millisecond,
			MaxInterval:     time.Second,
		},
	}
}

// LoadEnvFiles loads .env style files into the process environment. Missing files are
// skipped and variables already set win.
func LoadEnvFiles(files ...string) error {
	for _, file := range files {
		if err := godotenv.Load(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("failed to load %s: %w", file, err)
		}
	}
	return nil
}

// Load reads the YAML file at path over the defaults and then applies environment overrides.
// An empty path skips the file.
func Load(path string) (Config, error) {
	config := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config file: %w", err)
		}
		if err = yaml.Unmarshal(data, &config); err != nil {
			return Config{}, fmt.Errorf("failed to parse config file: %w", err)
		}
	}

	if err := config.ApplyEnv(os.LookupEnv); err != nil {
		return Config{}, err
	}
	return config, nil
}

// ApplyEnv overrides fields from flat environment variables (HTTP_PORT, DB_HOST and so on).
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	var problems []error

	str := func(key string, dst *string) {
		if v, ok := lookup(key); ok {
			*dst = v
		}
	}
	integer := func(key string, dst *int) {
		if v, ok := lookup(key); ok {
			n, err := strconv.Atoi(strings.TrimSpace(v))
			if err != nil {
				problems = append(problems, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = n
		}
	}
	boolean := func(key string, dst *bool) {
		if v, ok := lookup(key); ok {
			b, err := strconv.ParseBool(strings.TrimSpace(v))
			if err != nil {
				problems = append(problems, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = b
		}
	}
	duration := func(key string, dst *time.Duration) {
		if v, ok := lookup(key); ok {
			d, err := time.ParseDuration(strings.TrimSpace(v))
			if err != nil {
				problems = append(problems, fmt.Errorf("%s: %w", key, err))
				return
			}
			*dst = d
		}
	}

	integer("HTTP_PORT", &c.Server.Port)
	duration("HTTP_REQUEST_TIMEOUT", &c.Server.RequestTimeout)

	str("DB_HOST", &c.Database.Host)
	integer("DB_PORT", &c.Database.Port)
	str("DB_USER", &c.Database.User)
	str("DB_PASSWORD", &c.Database.Password)
	str("DB_NAME", &c.Database.Name)
	str("DB_SSLMODE", &c.Database.SSLMode)

	str("STORAGE_DRIVER", &c.Storage.Driver)
	boolean("STORAGE_AUTO_MIGRATE", &c.Storage.AutoMigrate)

	str("ZIP_SOURCE", &c.Geo.Source)
	str("ZIP_FILE", &c.Geo.File)
	boolean("ZIP_REFRESH_ENABLED", &c.Geo.RefreshEnabled)
	str("ZIP_REFRESH_SCHEDULE", &c.Geo.RefreshSchedule)

	boolean("RABBITMQ_ENABLED", &c.RabbitMQ.Enabled)
	str("RABBITMQ_URL", &c.RabbitMQ.URL)
	str("RABBITMQ_EXCHANGE", &c.RabbitMQ.Exchange)

	str("LOG_LEVEL", &c.Logging.Level)
	str("LOG_FORMAT", &c.Logging.Format)

	return errors.Join(problems...)
}

// Validate checks if the configuration is valid
func (c Config) Validate() error {
	var problems []error

	if c.Server.Port < MinPort || c.Server.Port > MaxPort {
		problems = append(problems,
			fmt.Errorf("invalid server port: %d (must be between %d and %d)", c.Server.Port, MinPort, MaxPort))
	}
	if c.Server.ShutdownTimeout <= 0 {
		problems = append(problems, errors.New("server shutdown_timeout must be greater than 0"))
	}
	if c.Server.RequestTimeout < 0 {
		problems = append(problems, errors.New("server request_timeout must not be negative"))
	}

	switch c.Storage.Driver {
	case StorageMemory, StoragePostgres:
	default:
		problems = append(problems, fmt.Errorf("unknown storage driver %q", c.Storage.Driver))
	}

	switch c.Geo.Source {
	case ZipSourceEmbedded, ZipSourcePostgres:
	case ZipSourceFile:
		if c.Geo.File == "" {
			problems = append(problems, errors.New("geo file is required for the file zip source"))
		}
	default:
		problems = append(problems, fmt.Errorf("unknown zip source %q", c.Geo.Source))
	}

	if c.usesDatabase() {
		if c.Database.Host == "" {
			problems = append(problems, errors.New("database host is required"))
		}
		if c.Database.Port < MinPort || c.Database.Port > MaxPort {
			problems = append(problems,
				fmt.Errorf("invalid database port: %d (must be between %d and %d)", c.Database.Port, MinPort, MaxPort))
		}
		if c.Database.Name == "" {
			problems = append(problems, errors.New("database name is required"))
		}
	}

	if c.RabbitMQ.Enabled {
		if c.RabbitMQ.URL == "" {
			problems = append(problems, errors.New("rabbitmq url is required"))
		}
		if c.RabbitMQ.Exchange == "" {
			problems = append(problems, errors.New("rabbitmq exchange is required"))
		}
	}

	switch strings.ToLower(c.Logging.Format) {
	case "", "console", "json":
	default:
		problems = append(problems, fmt.Errorf("unknown log format %q", c.Logging.Format))
	}

	return errors.Join(problems...)
}

func (c Config) usesDatabase() bool {
	return c.Storage.Driver == StoragePostgres || c.Geo.Source == ZipSourcePostgres
}
