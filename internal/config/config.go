package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Log      LogConfig
	Menu     MenuConfig
	Order    OrderConfig
	Session  SessionConfig
}

type ServerConfig struct {
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	IdleTimeout  time.Duration
}

type DatabaseConfig struct {
	Host            string
	Port            int
	User            string
	Password        string
	Name            string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
}

type LogConfig struct {
	Level  string
	Format string
}

// MenuConfig selects where the menu is read from at startup: "static",
// "yaml", "xlsx" or "mysql". Path is used by the file sources.
type MenuConfig struct {
	Source         string
	Path           string
	Title          string
	CurrencySymbol string
}

type OrderConfig struct {
	PanelPolicy string
}

// SessionConfig bounds the in-memory page sessions. MaxSessions caps how
// many are held at once; the least recently used one goes first.
type SessionConfig struct {
	TTL           time.Duration
	SweepInterval time.Duration
	MaxSessions   int
}

// Load reads the optional YAML file at path and applies environment
// overrides on top, e.g. SERVER_PORT or MENU_SOURCE.
func Load(path string) (*Config, error) {
	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.read_timeout", "10s")
	v.SetDefault("server.write_timeout", "10s")
	v.SetDefault("server.idle_timeout", "30s")
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 3306)
	v.SetDefault("db.user", "restaurant")
	v.SetDefault("db.password", "secret")
	v.SetDefault("db.name", "restaurant")
	v.SetDefault("db.max_open_conns", 10)
	v.SetDefault("db.max_idle_conns", 2)
	v.SetDefault("db.conn_max_lifetime", "5m")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")
	v.SetDefault("menu.source", "static")
	v.SetDefault("menu.path", "")
	v.SetDefault("menu.title", "Jimmy's Diner")
	v.SetDefault("menu.currency_symbol", "$")
	v.SetDefault("order.panel_policy", "legacy")
	v.SetDefault("session.ttl", "30m")
	v.SetDefault("session.sweep_interval", "1m")
	v.SetDefault("session.max_sessions", 10000)

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			if !errors.Is(err, os.ErrNotExist) {
				return nil, fmt.Errorf("reading config file: %w", err)
			}
		}
	}

	cfg := &Config{
		Server: ServerConfig{
			Port:         v.GetInt("server.port"),
			ReadTimeout:  v.GetDuration("server.read_timeout"),
			WriteTimeout: v.GetDuration("server.write_timeout"),
			IdleTimeout:  v.GetDuration("server.idle_timeout"),
		},
		Database: DatabaseConfig{
			Host:            v.GetString("db.host"),
			Port:            v.GetInt("db.port"),
			User:            v.GetString("db.user"),
			Password:        v.GetString("db.password"),
			Name:            v.GetString("db.name"),
			MaxOpenConns:    v.GetInt("db.max_open_conns"),
			MaxIdleConns:    v.GetInt("db.max_idle_conns"),
			ConnMaxLifetime: v.GetDuration("db.conn_max_lifetime"),
		},
		Log: LogConfig{
			Level:  v.GetString("log.level"),
			Format: v.GetString("log.format"),
		},
		Menu: MenuConfig{
			Source:         strings.ToLower(v.GetString("menu.source")),
			Path:           v.GetString("menu.path"),
			Title:          v.GetString("menu.title"),
			CurrencySymbol: v.GetString("menu.currency_symbol"),
		},
		Order: OrderConfig{
			PanelPolicy: v.GetString("order.panel_policy"),
		},
		Session: SessionConfig{
			TTL:           v.GetDuration("session.ttl"),
			SweepInterval: v.GetDuration("session.sweep_interval"),
			MaxSessions:   v.GetInt("session.max_sessions"),
		},
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) validate() error {
	switch c.Menu.Source {
	case "static", "mysql":
	case "yaml", "xlsx":
		if c.Menu.Path == "" {
			return fmt.Errorf("menu.path is required for menu source %q", c.Menu.Source)
		}
	default:
		return fmt.Errorf("unknown menu source %q", c.Menu.Source)
	}

	if c.Session.TTL <= 0 {
		return fmt.Errorf("session.ttl must be positive, got %s", c.Session.TTL)
	}
	if c.Session.SweepInterval <= 0 {
		return fmt.Errorf("session.sweep_interval must be positive, got %s", c.Session.SweepInterval)
	}
	if c.Session.MaxSessions <= 0 {
		return fmt.Errorf("session.max_sessions must be positive, got %d", c.Session.MaxSessions)
	}

	return nil
}
