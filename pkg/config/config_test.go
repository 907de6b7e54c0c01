package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/inventario-alertas/pkg/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "inventario-alertas", cfg.App.Name)
	assert.Equal(t, 8080, cfg.HTTP.Port)
	assert.Equal(t, 30, cfg.Alerts.RecentSalesDays)
	assert.Equal(t, 30*24*time.Hour, cfg.Alerts.RecentSalesWindow())
	assert.Equal(t, 120, cfg.RateLimit.PerMinute)
	assert.False(t, cfg.Redis.Enabled())
	assert.True(t, cfg.HTTP.DocsEnabled)
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("REDIS_ADDR", "127.0.0.1:6379")
	t.Setenv("ALERTS_RECENT_SALES_DAYS", "7")
	t.Setenv("RATE_LIMIT_PER_MINUTE", "0")
	t.Setenv("HTTP_DOCS_ENABLED", "false")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
	assert.True(t, cfg.Redis.Enabled())
	assert.Equal(t, 7, cfg.Alerts.RecentSalesDays)
	assert.Equal(t, 0, cfg.RateLimit.PerMinute)
	assert.False(t, cfg.HTTP.DocsEnabled)
}

func TestLoad_NumeroInvalidoUsaDefault(t *testing.T) {
	t.Setenv("DB_PORT", "no-es-numero")

	cfg, err := config.Load()
	require.NoError(t, err)
	assert.Equal(t, 5432, cfg.DB.Port)
}

func TestLoad_RechazaValoresFueraDeRango(t *testing.T) {
	t.Setenv("RATE_LIMIT_PER_MINUTE", "-1")
	t.Setenv("ALERTS_RECENT_SALES_DAYS", "0")

	_, err := config.Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "RATE_LIMIT_PER_MINUTE")
	assert.Contains(t, err.Error(), "ALERTS_RECENT_SALES_DAYS")
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:w", DBName: "inventory", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aw@db:5432/inventory?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}
