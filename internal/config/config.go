package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/viper"
)

const DefaultFavoritesKey = "bolt_favorites"

type Config struct {
	App  string
	HTTP struct {
		Addr string
	}
	DB struct {
		Driver string // sqlite3 | postgres | mysql; vacío = in-memory
		DSN    string
	}
	Log struct {
		Level  string
		Format string
	}
	Favorites struct {
		Key     string
		Timeout time.Duration // 0 = sin timeout; espera lo que tarde el storage
	}
	Catalog struct {
		File  string // vacío = seed embebido
		Watch bool
	}
}

// Load lee config desde env (prefijo PETS_) y un pet-adoption.yaml opcional.
// PORT se respeta por compatibilidad con el despliegue anterior.
func Load() (*Config, error) {
	v := viper.New()
	v.SetEnvPrefix("PETS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	v.SetConfigName("pet-adoption")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	_ = v.ReadInConfig() // opcional

	v.SetDefault("app.name", "pet-adoption")
	v.SetDefault("http.addr", ":8080")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "text")
	v.SetDefault("favorites.key", DefaultFavoritesKey)
	v.SetDefault("favorites.timeout", "0s")
	v.SetDefault("catalog.watch", false)

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{}
	cfg.App = v.GetString("app.name")
	cfg.HTTP.Addr = v.GetString("http.addr")
	if p := strings.TrimSpace(os.Getenv("PORT")); p != "" {
		cfg.HTTP.Addr = ":" + p
	}
	cfg.DB.Driver = strings.TrimSpace(v.GetString("db.driver"))
	cfg.DB.DSN = strings.TrimSpace(v.GetString("db.dsn"))
	cfg.Log.Level = v.GetString("log.level")
	cfg.Log.Format = v.GetString("log.format")
	cfg.Favorites.Key = strings.TrimSpace(v.GetString("favorites.key"))
	cfg.Catalog.File = strings.TrimSpace(v.GetString("catalog.file"))
	cfg.Catalog.Watch = v.GetBool("catalog.watch")

	timeout, err := time.ParseDuration(v.GetString("favorites.timeout"))
	if err != nil {
		return nil, fmt.Errorf("invalid PETS_FAVORITES_TIMEOUT: %w", err)
	}
	if timeout < 0 {
		return nil, fmt.Errorf("invalid PETS_FAVORITES_TIMEOUT: must not be negative")
	}
	cfg.Favorites.Timeout = timeout

	if cfg.Favorites.Key == "" {
		return nil, fmt.Errorf("PETS_FAVORITES_KEY must not be empty")
	}
	if cfg.DB.DSN != "" && cfg.DB.Driver == "" {
		return nil, fmt.Errorf("PETS_DB_DRIVER is required when PETS_DB_DSN is set (sqlite3, mysql, postgres)")
	}
	if cfg.DB.Driver != "" && cfg.DB.DSN == "" {
		return nil, fmt.Errorf("PETS_DB_DSN is required when PETS_DB_DRIVER is set")
	}
	if cfg.Catalog.Watch && cfg.Catalog.File == "" {
		return nil, fmt.Errorf("PETS_CATALOG_WATCH requires PETS_CATALOG_FILE")
	}

	return cfg, nil
}

// HasDB indica si hay que usar storage SQL en vez de in-memory.
func (c *Config) HasDB() bool {
	return c.DB.Driver != "" && c.DB.DSN != ""
}
