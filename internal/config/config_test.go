package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	viper.Reset()
	t.Setenv("DATABASE_USER", "financeiro")
	t.Setenv("DATABASE_PASSWORD", "segredo")
	t.Setenv("DATABASE_URL", "db:5432/lojas")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.com,https://b.com")
	t.Setenv("DASHBOARD_FETCH_TIMEOUT", "3s")
	t.Setenv("RANKING_SNAPSHOT_ENABLED", "true")
	t.Setenv("DATABASE_MAX_OPEN_CONNS", "8")

	cfg, err := NewConfig()
	require.NoError(t, err)

	assert.Equal(t, "postgres://financeiro:segredo@db:5432/lojas", cfg.Database.DSN)
	assert.Equal(t, []string{"https://a.com", "https://b.com"}, cfg.Cors.AllowedOrigins)
	assert.Equal(t, 3*time.Second, cfg.Dashboard.FetchTimeout)
	assert.Equal(t, 8, cfg.Database.MaxOpenConns)
	assert.Equal(t, 5, cfg.Database.MaxIdleConns)
	assert.Equal(t, 30*time.Minute, cfg.Database.ConnMaxLifetime)
	assert.Equal(t, 7, cfg.Dashboard.HistoryDays)
	assert.True(t, cfg.RankingSnapshot.Enabled)
	assert.False(t, cfg.OverdueSweep.Enabled)
	assert.Equal(t, "0 1 * * *", cfg.OverdueSweep.CronSchedule)
}
