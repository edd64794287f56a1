package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("TELEGRAM_API_TOKEN", "token")
	t.Setenv("QUIZ_URL", "https://quiz.example.org/daily")
}

func TestLoadDefaults(t *testing.T) {
	t.Chdir(t.TempDir())
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "token", cfg.TelegramAPIToken)
	assert.Equal(t, "https://quiz.example.org/daily", cfg.Quiz.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Quiz.Timeout)
	assert.Equal(t, 24*time.Hour, cfg.Quiz.SessionTTL)
	assert.Equal(t, "UTC", cfg.Quiz.Timezone)
	assert.Equal(t, "reset", cfg.Streak.GapPolicy)
	assert.Equal(t, DriverMemory, cfg.Storage.Driver)
	assert.Equal(t, ":8080", cfg.HTTP.Addr)
	assert.Equal(t, "0 9 * * *", cfg.Scheduler.Announce)
	assert.False(t, cfg.UsesRedis())
}

func TestLoadMissingRequired(t *testing.T) {
	t.Chdir(t.TempDir())
	t.Setenv("TELEGRAM_API_TOKEN", "")
	t.Setenv("QUIZ_URL", "")

	_, err := Load()
	require.ErrorIs(t, err, ErrMissingEnvironmentVariables)
	assert.Contains(t, err.Error(), "TELEGRAM_API_TOKEN")
	assert.Contains(t, err.Error(), "QUIZ_URL")
}

func TestLoadPostgresNeedsDatabaseURL(t *testing.T) {
	t.Chdir(t.TempDir())
	setRequiredEnv(t)
	t.Setenv("STORAGE_DRIVER", DriverPostgres)
	t.Setenv("DATABASE_URL", "")

	_, err := Load()
	require.ErrorIs(t, err, ErrMissingEnvironmentVariables)
	assert.Contains(t, err.Error(), "DATABASE_URL")

	t.Setenv("DATABASE_URL", "postgres://localhost/quiz")
	cfg, err := Load()
	require.NoError(t, err)

	dsn, err := cfg.DB.DSN()
	require.NoError(t, err)
	assert.Equal(t, "postgres://localhost/quiz", dsn)
}

func TestLoadRedisCache(t *testing.T) {
	t.Chdir(t.TempDir())
	setRequiredEnv(t)
	t.Setenv("QUIZ_CACHE", "redis")
	t.Setenv("REDIS_ADDR", "")

	_, err := Load()
	require.ErrorIs(t, err, ErrMissingEnvironmentVariables)

	t.Setenv("REDIS_ADDR", "localhost:6379")
	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.UsesRedis())
	assert.Equal(t, "localhost:6379", cfg.Redis.Addr)
}

func TestLoadUnknownDriver(t *testing.T) {
	t.Chdir(t.TempDir())
	setRequiredEnv(t)
	t.Setenv("STORAGE_DRIVER", "sqlite")

	_, err := Load()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMissingEnvironmentVariables)
}
