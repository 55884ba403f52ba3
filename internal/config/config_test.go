package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Chdir(t.TempDir())

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, DefaultFavoritesKey, cfg.Favorites.Key)
	assert.Equal(t, time.Duration(0), cfg.Favorites.Timeout)
	assert.False(t, cfg.HasDB())
	assert.Equal(t, "pet-adoption", cfg.App)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "")
	t.Setenv("PETS_HTTP_ADDR", ":9090")
	t.Setenv("PETS_DB_DRIVER", "sqlite3")
	t.Setenv("PETS_DB_DSN", "file:pets.db")
	t.Setenv("PETS_FAVORITES_KEY", "my_favs")
	t.Setenv("PETS_FAVORITES_TIMEOUT", "2s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.HTTP.Addr)
	assert.True(t, cfg.HasDB())
	assert.Equal(t, "my_favs", cfg.Favorites.Key)
	assert.Equal(t, 2*time.Second, cfg.Favorites.Timeout)
}

func TestLoad_PortWins(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("PORT", "3000")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, ":3000", cfg.HTTP.Addr)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"dsn without driver": {"PETS_DB_DSN": "file:x.db"},
		"driver without dsn": {"PETS_DB_DRIVER": "sqlite3"},
		"bad timeout":        {"PETS_FAVORITES_TIMEOUT": "soon"},
		"watch without file": {"PETS_CATALOG_WATCH": "true"},
	}

	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			t.Chdir(t.TempDir())
			t.Setenv("PORT", "")
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}
