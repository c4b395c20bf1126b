package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	// viper ignora variables vacías, aplica defaults

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr())
	assert.True(t, cfg.IsDev())
	assert.False(t, cfg.UsesPostgres())
	assert.Equal(t, "https://api.fda.gov", cfg.DrugInfoBaseURL)
	assert.Equal(t, 10*time.Second, cfg.DrugInfoTimeout)
}

func TestLoad_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("ENV", "Production")
	t.Setenv("DB_DSN", " postgres://u:p@localhost:5432/med ")
	t.Setenv("DRUGINFO_TIMEOUT", "3s")
	t.Setenv("READ_TIMEOUT", "1s")
	t.Setenv("WRITE_TIMEOUT", "2s")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, "production", cfg.Env)
	assert.False(t, cfg.IsDev())
	assert.True(t, cfg.UsesPostgres())
	assert.Equal(t, "postgres://u:p@localhost:5432/med", cfg.DBDSN)
	assert.Equal(t, 3*time.Second, cfg.DrugInfoTimeout)
}

func TestValidate(t *testing.T) {
	ok := Config{Port: "8080", DrugInfoTimeout: time.Second, ReadTimeout: time.Second, WriteTimeout: time.Second}
	require.NoError(t, ok.Validate())

	cases := map[string]func(c *Config){
		"puerto no numérico": func(c *Config) { c.Port = "abc" },
		"puerto fuera rango": func(c *Config) { c.Port = "70000" },
		"timeout druginfo":   func(c *Config) { c.DrugInfoTimeout = 0 },
		"timeout lectura":    func(c *Config) { c.ReadTimeout = -1 },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := ok
			mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
