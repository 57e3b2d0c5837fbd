package config

import (
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Storage drivers.
const (
	DriverMongo  = "mongo"
	DriverSQLite = "sqlite"
)

// ErrMissingSecret is returned when no session/token secret is configured.
var ErrMissingSecret = errors.New("secret_key is required")

// Config holds everything main needs to wire the application.
type Config struct {
	HTTP struct {
		Host string
		Port int
	}
	DB struct {
		Driver string
	}
	Mongo struct {
		URI    string
		DBName string
	}
	SQLite struct {
		Path string
	}
	SecretKey     string
	SessionMaxAge int
	TokenTTL      time.Duration
	LogLevel      string
	LogEncoding   string
}

// Addr returns the host:port pair the HTTP server listens on.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.HTTP.Host, strconv.Itoa(c.HTTP.Port))
}

var defaults = map[string]any{
	"http.host":       "",
	"http.port":       5000,
	"db.driver":       DriverMongo,
	"mongo.uri":       "mongodb://localhost:27017",
	"mongo.dbname":    "task_manager",
	"sqlite.path":     "task_manager.db",
	"session.max_age": 86400,
	"auth.token_ttl":  time.Hour,
	"log.level":       "info",
	"log.encoding":    "console",
}

var envNames = map[string]string{
	"http.host":       "IP",
	"http.port":       "PORT",
	"db.driver":       "DB_DRIVER",
	"mongo.uri":       "MONGO_URI",
	"mongo.dbname":    "MONGO_DBNAME",
	"sqlite.path":     "SQLITE_PATH",
	"secret_key":      "SECRET_KEY",
	"session.max_age": "SESSION_MAX_AGE",
	"auth.token_ttl":  "TOKEN_TTL",
	"log.level":       "LOG_LEVEL",
	"log.encoding":    "LOG_ENCODING",
}

// Load reads .env (if any), then configs/<name>.yml (if any), then the
// process environment. Later sources win.
func Load(dir, name string) (*Config, error) {
	// .env is optional
	_ = godotenv.Load()

	v := viper.New()
	v.AddConfigPath(dir)
	v.SetConfigName(name)
	v.SetConfigType("yml")

	for key, val := range defaults {
		v.SetDefault(key, val)
	}
	for key, env := range envNames {
		if err := v.BindEnv(key, env); err != nil {
			return nil, fmt.Errorf("bind env %s: %w", env, err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	cfg := &Config{}
	cfg.HTTP.Host = v.GetString("http.host")
	cfg.HTTP.Port = v.GetInt("http.port")
	cfg.DB.Driver = v.GetString("db.driver")
	cfg.Mongo.URI = v.GetString("mongo.uri")
	cfg.Mongo.DBName = v.GetString("mongo.dbname")
	cfg.SQLite.Path = v.GetString("sqlite.path")
	cfg.SecretKey = v.GetString("secret_key")
	cfg.SessionMaxAge = v.GetInt("session.max_age")
	cfg.TokenTTL = v.GetDuration("auth.token_ttl")
	cfg.LogLevel = v.GetString("log.level")
	cfg.LogEncoding = v.GetString("log.encoding")

	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) validate() error {
	if c.SecretKey == "" {
		return ErrMissingSecret
	}
	switch c.DB.Driver {
	case DriverMongo, DriverSQLite:
	default:
		return fmt.Errorf("unknown db.driver %q", c.DB.Driver)
	}
	if c.HTTP.Port <= 0 || c.HTTP.Port > 65535 {
		return fmt.Errorf("invalid http.port %d", c.HTTP.Port)
	}
	return nil
}
