package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	os.Unsetenv("DB_NAME")
	os.Unsetenv("SERVER_PORT")

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "supplement_advisor", cfg.Database.Database)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "supplement-advisor", cfg.OTEL.ServiceName)
}

func TestLoad_EnvOverrides(t *testing.T) {
	os.Setenv("DB_NAME", "advisor_test")
	os.Setenv("REDIS_PORT", "6380")
	defer func() {
		os.Unsetenv("DB_NAME")
		os.Unsetenv("REDIS_PORT")
	}()

	cfg, err := Load()
	assert.NoError(t, err)

	assert.Equal(t, "advisor_test", cfg.Database.Database)
	assert.Equal(t, "localhost:6380", cfg.Redis.RedisAddr())
}

func TestDefaultEngineConfig_WeightsSumToOne(t *testing.T) {
	cfg := DefaultEngineConfig()
	assert.InDelta(t, 1.0, cfg.Scoring.Sum(), 1e-9)
	assert.NoError(t, cfg.Validate())
}

func TestEngineConfig_Validate(t *testing.T) {
	t.Run("rejects weights not summing to one", func(t *testing.T) {
		cfg := DefaultEngineConfig()
		cfg.Scoring.GoalAlignment = 0.5
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects inverted clamp bounds", func(t *testing.T) {
		cfg := DefaultEngineConfig()
		cfg.DoseMultiplierMin = 2.0
		assert.Error(t, cfg.Validate())
	})

	t.Run("rejects non-positive tier capacity", func(t *testing.T) {
		cfg := DefaultEngineConfig()
		cfg.TierCapacities["ESSENTIAL"] = 0
		assert.Error(t, cfg.Validate())
	})
}
