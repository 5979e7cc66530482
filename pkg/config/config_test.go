package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/adega-api/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("STOCK_LOW_THRESHOLD", "")
	t.Setenv("HTTP_PORT", "")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Stock.LowThreshold, "umbral de stock bajo por defecto")
	assert.Equal(t, 5000, cfg.HTTP.Port)
	assert.Equal(t, "0.0.0.0:5000", cfg.HTTP.Addr())
}

func TestLoad_LeeVariablesDeEntorno(t *testing.T) {
	t.Setenv("STOCK_LOW_THRESHOLD", "25")
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_MIGRATE", "false")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 25, cfg.Stock.LowThreshold)
	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.False(t, cfg.DB.Migrate)
}

func TestLoad_UmbralMenorQueUno_RetornaError(t *testing.T) {
	for _, v := range []string{"-1", "0"} {
		t.Setenv("STOCK_LOW_THRESHOLD", v)

		_, err := config.Load()
		assert.Error(t, err, "STOCK_LOW_THRESHOLD=%s", v)
	}
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "adega", Password: "p@ss:word", DBName: "adega", SSLMode: "disable"}
	assert.Equal(t, "postgres://adega:p%40ss%3Aword@db:5432/adega?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
