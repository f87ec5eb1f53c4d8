package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"
)

type Config struct {
	Database Database
	Log      Log
	Addr     string
}

type Database struct {
	Driver   string
	URL      string
	Host     string
	Port     int
	User     string
	Password string
	Name     string
	SSLMode  string
}

type Log struct {
	Level string
	File  string
}

// Options controls where Load looks for settings.
type Options struct {
	// ConfigFile overrides the search paths when set.
	ConfigFile string
	// Flags are bound on top of file and environment values.
	Flags *pflag.FlagSet
}

var searchPaths = []string{"$HOME/.config/emptrack", "."}

// flagKeys maps command-line flags to configuration keys.
var flagKeys = map[string]string{
	"driver":    "database.driver",
	"db-url":    "database.url",
	"log-level": "log.level",
	"log-file":  "log.file",
	"addr":      "serve.addr",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("database.driver", DriverPostgres)
	v.SetDefault("database.host", "localhost")
	v.SetDefault("database.port", 5432)
	v.SetDefault("database.user", "postgres")
	v.SetDefault("database.password", "")
	v.SetDefault("database.name", "cms_db")
	v.SetDefault("database.sslmode", "disable")
	v.SetDefault("log.level", "info")
	v.SetDefault("serve.addr", ":8080")
}

func Load(opts Options) (Config, error) {
	v := viper.New()
	setDefaults(v)

	if opts.ConfigFile != "" {
		v.SetConfigFile(os.ExpandEnv(opts.ConfigFile))
	} else {
		v.SetConfigName("emptrack")
		v.SetConfigType("yaml")
		for _, p := range searchPaths {
			v.AddConfigPath(os.ExpandEnv(p))
		}
	}

	v.SetEnvPrefix("EMPTRACK")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config file: %w", err)
		}
	}

	if opts.Flags != nil {
		for name, key := range flagKeys {
			if f := opts.Flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return Config{}, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	cfg := Config{
		Database: Database{
			Driver:   strings.ToLower(strings.TrimSpace(v.GetString("database.driver"))),
			URL:      v.GetString("database.url"),
			Host:     v.GetString("database.host"),
			Port:     v.GetInt("database.port"),
			User:     v.GetString("database.user"),
			Password: v.GetString("database.password"),
			Name:     v.GetString("database.name"),
			SSLMode:  v.GetString("database.sslmode"),
		},
		Log: Log{
			Level: v.GetString("log.level"),
			File:  v.GetString("log.file"),
		},
		Addr: v.GetString("serve.addr"),
	}

	if cfg.Database.URL == "" && cfg.Database.Driver == DriverPostgres {
		cfg.Database.URL = os.Getenv("DATABASE_URL")
	}

	switch cfg.Database.Driver {
	case DriverPostgres, DriverSQLite:
	default:
		return Config{}, fmt.Errorf("unsupported database driver %q", cfg.Database.Driver)
	}

	return cfg, nil
}

// DSN returns the connection string for the configured driver.
func (d Database) DSN() string {
	if d.Driver == DriverSQLite {
		path := d.URL
		if path == "" {
			path = d.Name + ".db"
		}
		if strings.Contains(path, "_foreign_keys") {
			return path
		}
		sep := "?"
		if strings.Contains(path, "?") {
			sep = "&"
		}
		return path + sep + "_foreign_keys=on"
	}

	if d.URL != "" {
		return d.URL
	}

	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(d.User, d.Password),
		Host:     fmt.Sprintf("%s:%d", d.Host, d.Port),
		Path:     d.Name,
		RawQuery: url.Values{"sslmode": []string{d.SSLMode}}.Encode(),
	}
	return u.String()
}
