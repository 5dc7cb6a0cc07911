package config

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SERVER_PORT", "")
	t.Setenv("DB_NAME", "")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "3000", cfg.Server.Port)
	assert.Equal(t, "travel_db", cfg.Database.Name)
	assert.Equal(t, int64(8<<20), cfg.Server.MaxMultipartMemory)
	assert.Equal(t, "/public/", cfg.Upload.PublicPath)
	assert.Equal(t, "public/images", cfg.ImageDir())
	assert.True(t, cfg.Database.AutoMigrate)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8081")
	t.Setenv("DB_HOST", "db.internal")
	t.Setenv("DB_USER", "travel")
	t.Setenv("DB_PASSWORD", "s3cret")
	t.Setenv("DB_NAME", "catalog")
	t.Setenv("DB_QUERY_TIMEOUT", "2s")
	t.Setenv("CORS_ALLOWED_ORIGINS", "http://a.test, http://b.test")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "8081", cfg.Server.Port)
	assert.Equal(t, "db.internal", cfg.Database.Host)
	assert.Equal(t, 2*time.Second, cfg.Database.QueryTimeout)
	assert.Equal(t, []string{"http://a.test", "http://b.test"}, cfg.CORS.AllowedOrigins)
}

func TestLoad_PortFallsBackToServerPort(t *testing.T) {
	t.Setenv("PORT", "")
	t.Setenv("SERVER_PORT", "9090")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9090", cfg.Server.Port)
}

func TestLoad_InvalidConfig(t *testing.T) {
	t.Setenv("PORT", "not-a-port")

	_, err := Load()
	assert.ErrorContains(t, err, "configuration validation failed")
}

func TestValidate_PublicPathNeedsSlashes(t *testing.T) {
	t.Setenv("PORT", "")
	cfg, err := Load()
	require.NoError(t, err)

	cfg.Upload.PublicPath = "public"
	assert.Error(t, cfg.Validate())
}

func TestValidate_MinConnsAboveMax(t *testing.T) {
	t.Setenv("PORT", "")
	cfg, err := Load()
	require.NoError(t, err)

	cfg.Database.MinConns = cfg.Database.MaxConns + 1
	assert.Error(t, cfg.Validate())
}

func TestGetDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host:        "localhost",
		Port:        "5432",
		User:        "postgres",
		Password:    "p@ss/word",
		Name:        "travel_db",
		SSLMode:     "disable",
		ConnTimeout: 10 * time.Second,
	}}

	u, err := url.Parse(cfg.GetDSN())
	require.NoError(t, err)
	assert.Equal(t, "postgres", u.Scheme)
	assert.Equal(t, "localhost:5432", u.Host)
	assert.Equal(t, "/travel_db", u.Path)
	pw, _ := u.User.Password()
	assert.Equal(t, "p@ss/word", pw)
	assert.Equal(t, "disable", u.Query().Get("sslmode"))
	assert.Equal(t, "10", u.Query().Get("connect_timeout"))
}
