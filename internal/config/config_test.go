package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	t.Setenv("PORT", "")

	cfg := Load()
	assert.Equal(t, "8080", cfg.Port)
	assert.Contains(t, cfg.DatabaseURL, "postgres://")
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("DATABASE_URL", "postgres://app:secret@db:5432/accounts")
	t.Setenv("PORT", "9090")

	cfg := Load()
	assert.Equal(t, "postgres://app:secret@db:5432/accounts", cfg.DatabaseURL)
	assert.Equal(t, "9090", cfg.Port)
}
