package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("DB_PASSWORD", "secret")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DEFAULT_ADMIN_ID", "7517807386")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "123:abc", cfg.BotToken)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, int64(7517807386), cfg.Admin.DefaultAdminID)

	// Defaults
	assert.Equal(t, "https://api-seller.uzum.uz/api/seller-openapi", cfg.Marketplace.BaseURL)
	assert.Equal(t, "5432", cfg.Database.Port)
	assert.Equal(t, ":8000", cfg.Server.Addr)
	assert.Equal(t, "Tolov_admini_btu", cfg.Admin.ContactHandle)
}

func TestLoad_MissingToken(t *testing.T) {
	// t.Setenv registers the restore; unsetting after leaves the
	// variable absent for the duration of the test.
	t.Setenv("BOT_TOKEN", "x")
	os.Unsetenv("BOT_TOKEN")
	t.Setenv("DB_PASSWORD", "secret")

	_, err := Load()
	assert.Error(t, err)
}

func TestDSN(t *testing.T) {
	cfg := &Config{}
	cfg.Database.Host = "localhost"
	cfg.Database.Port = "5432"
	cfg.Database.User = "marketbot"
	cfg.Database.Password = "secret"
	cfg.Database.Name = "marketbot"

	assert.Equal(t,
		"host=localhost port=5432 user=marketbot password=secret dbname=marketbot sslmode=disable",
		cfg.DSN())
}
