package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
)

// Storage backends
const (
	BackendFile     = "file"
	BackendPostgres = "postgres"
)

// Config конфигурация сервиса, загружается из TOML-файла.
// Секреты (пароль БД, админ-токен) можно переопределить через окружение.
type Config struct {
	Server    ServerConfig    `toml:"server"`
	Logs      LogsConfig      `toml:"logs"`
	Metrics   MetricsConfig   `toml:"metrics"`
	Storage   StorageConfig   `toml:"storage"`
	Admin     AdminConfig     `toml:"admin"`
	RateLimit RateLimitConfig `toml:"ratelimit"`
	Cache     CacheConfig     `toml:"cache"`
}

type ServerConfig struct {
	HTTPPort        int `toml:"http_port"`
	ReadTimeout     int `toml:"read_timeout"`
	WriteTimeout    int `toml:"write_timeout"`
	IdleTimeout     int `toml:"idle_timeout"`
	ShutdownTimeout int `toml:"shutdown_timeout"`
}

type LogsConfig struct {
	File  string `toml:"file"`
	Level string `toml:"level"`
}

type MetricsConfig struct {
	Enabled     bool   `toml:"enabled"`
	Path        string `toml:"path"`
	ServiceName string `toml:"service_name"`
}

type StorageConfig struct {
	Backend  string         `toml:"backend"`
	File     FileConfig     `toml:"file"`
	Postgres PostgresConfig `toml:"postgres"`
}

type FileConfig struct {
	Path string `toml:"path"`
}

type PostgresConfig struct {
	Host            string `toml:"host"`
	Port            int    `toml:"port"`
	User            string `toml:"user"`
	Password        string `toml:"password"`
	DBName          string `toml:"dbname"`
	SSLMode         string `toml:"sslmode"`
	MaxOpenConns    int    `toml:"max_open_conns"`
	MaxIdleConns    int    `toml:"max_idle_conns"`
	ConnMaxLifetime int    `toml:"conn_max_lifetime"`
}

type AdminConfig struct {
	Token string `toml:"token"`
}

type RateLimitConfig struct {
	Enabled bool    `toml:"enabled"`
	RPS     float64 `toml:"rps"`
	Burst   int     `toml:"burst"`
}

type CacheConfig struct {
	Enabled    bool `toml:"enabled"`
	TTLSeconds int  `toml:"ttl_seconds"`
}

// Load читает конфигурацию из TOML-файла и накладывает переменные окружения.
// .env подхватывается, если существует (локальная разработка).
func Load(path string) (*Config, error) {
	// Ошибку игнорируем: в проде .env обычно отсутствует.
	_ = godotenv.Load(".env")

	var cfg Config
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return nil, fmt.Errorf("config: decode %s: %w", path, err)
	}

	cfg.applyDefaults()
	cfg.applyEnv()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.HTTPPort == 0 {
		c.Server.HTTPPort = 8080
	}
	if c.Server.ReadTimeout == 0 {
		c.Server.ReadTimeout = 10
	}
	if c.Server.WriteTimeout == 0 {
		c.Server.WriteTimeout = 10
	}
	if c.Server.IdleTimeout == 0 {
		c.Server.IdleTimeout = 60
	}
	if c.Server.ShutdownTimeout == 0 {
		c.Server.ShutdownTimeout = 10
	}
	if c.Logs.Level == "" {
		c.Logs.Level = "info"
	}
	if c.Metrics.Path == "" {
		c.Metrics.Path = "/metrics"
	}
	if c.Metrics.ServiceName == "" {
		c.Metrics.ServiceName = "smc-laundry-service"
	}
	if c.Storage.Backend == "" {
		c.Storage.Backend = BackendFile
	}
	if c.Storage.File.Path == "" {
		c.Storage.File.Path = "reservations.csv"
	}
	if c.Storage.Postgres.Port == 0 {
		c.Storage.Postgres.Port = 5432
	}
	if c.Storage.Postgres.SSLMode == "" {
		c.Storage.Postgres.SSLMode = "disable"
	}
	if c.Storage.Postgres.MaxOpenConns == 0 {
		c.Storage.Postgres.MaxOpenConns = 10
	}
	if c.Storage.Postgres.MaxIdleConns == 0 {
		c.Storage.Postgres.MaxIdleConns = 5
	}
	if c.Storage.Postgres.ConnMaxLifetime == 0 {
		c.Storage.Postgres.ConnMaxLifetime = 300
	}
	if c.RateLimit.RPS == 0 {
		c.RateLimit.RPS = 5
	}
	if c.RateLimit.Burst == 0 {
		c.RateLimit.Burst = 10
	}
	if c.Cache.TTLSeconds == 0 {
		c.Cache.TTLSeconds = 5
	}
}

func (c *Config) applyEnv() {
	if v := os.Getenv("LAUNDRY_DB_PASSWORD"); v != "" {
		c.Storage.Postgres.Password = v
	}
	if v := os.Getenv("LAUNDRY_ADMIN_TOKEN"); v != "" {
		c.Admin.Token = v
	}
}

func (c *Config) validate() error {
	switch c.Storage.Backend {
	case BackendFile, BackendPostgres:
	default:
		return fmt.Errorf("config: unknown storage backend %q", c.Storage.Backend)
	}

	if c.Storage.Backend == BackendPostgres {
		if c.Storage.Postgres.Host == "" {
			return fmt.Errorf("config: storage.postgres.host is required")
		}
		if c.Storage.Postgres.User == "" {
			return fmt.Errorf("config: storage.postgres.user is required")
		}
		if c.Storage.Postgres.DBName == "" {
			return fmt.Errorf("config: storage.postgres.dbname is required")
		}
	}

	if c.Admin.Token == "" {
		return fmt.Errorf("config: admin.token is required (or set LAUNDRY_ADMIN_TOKEN)")
	}

	return nil
}

// DSN собирает строку подключения к PostgreSQL
func (p PostgresConfig) DSN() string {
	return fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		p.Host, p.Port, p.User, p.Password, p.DBName, p.SSLMode)
}
