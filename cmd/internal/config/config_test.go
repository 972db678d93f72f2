package config_test

import (
	"testing"

	"blogapi/cmd/internal/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "DB_PATH", "JWT_SECRET", "JWKS_URL", "SNOWFLAKE_NODE", "BODY_LIMIT"} {
		t.Setenv(key, "")
	}

	cfg, err := config.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, config.DefaultPort, cfg.Port)
	assert.Equal(t, config.DefaultDBPath, cfg.DBPath)
	assert.Equal(t, int64(config.DefaultSnowflakeNode), cfg.SnowflakeNode)
	assert.Equal(t, config.DefaultBodyLimit, cfg.BodyLimit)
	assert.ErrorIs(t, cfg.RequireTokenKey(), config.ErrNoTokenKey)
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("PORT", "8080")
	t.Setenv("DB_PATH", "/tmp/blog.db")
	t.Setenv("JWT_SECRET", "secret")
	t.Setenv("JWKS_URL", "")
	t.Setenv("SNOWFLAKE_NODE", "7")
	t.Setenv("BODY_LIMIT", "2M")

	cfg, err := config.FromEnv()
	require.NoError(t, err)
	assert.Equal(t, &config.Config{
		Port:          "8080",
		DBPath:        "/tmp/blog.db",
		JWTSecret:     "secret",
		SnowflakeNode: 7,
		BodyLimit:     "2M",
	}, cfg)
	assert.NoError(t, cfg.RequireTokenKey())
}

func TestFromEnv_InvalidNode(t *testing.T) {
	for _, raw := range []string{"abc", "-1", "1024"} {
		t.Setenv("SNOWFLAKE_NODE", raw)

		_, err := config.FromEnv()
		assert.Error(t, err, raw)
	}
}
