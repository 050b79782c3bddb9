package config

import (
	"fmt"
	"math"
	"os"
	"strconv"
)

// Config holds all application configuration
type Config struct {
	Server   ServerConfig
	Database DatabaseConfig
	Redis    RedisConfig
	OTEL     OTELConfig
	Engine   EngineConfig
}

// ServerConfig holds server configuration
type ServerConfig struct {
	Host string
	Port int
}

// DatabaseConfig holds database configuration
type DatabaseConfig struct {
	Host     string
	Port     int
	User     string
	Password string
	Database string
	SSLMode  string
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	Host     string
	Port     int
	Password string
	DB       int
}

// OTELConfig holds OpenTelemetry configuration
type OTELConfig struct {
	ServiceName    string
	ServiceVersion string
	Endpoint       string
	Enabled        bool
}

// ScoringWeights holds the six priority-score factor weights.
// The weights must sum to 1.0; Validate enforces this.
type ScoringWeights struct {
	GoalAlignment  float64
	DemographicFit float64
	Evidence       float64
	BasePriority   float64
	TrainingFit    float64
	AgeFit         float64
}

// Sum returns the total of all six weights.
func (w ScoringWeights) Sum() float64 {
	return w.GoalAlignment + w.DemographicFit + w.Evidence + w.BasePriority + w.TrainingFit + w.AgeFit
}

// EngineConfig holds the prescription engine tunables. It is passed to the
// orchestrator explicitly so deployments and tests can override values
// without touching shared state.
type EngineConfig struct {
	Scoring ScoringWeights

	// TierCapacities bounds the stack size per budget tier key.
	TierCapacities map[string]int

	// TierDoseMultipliers scales doses per budget tier key.
	TierDoseMultipliers map[string]float64

	// DoseMultiplierMin / DoseMultiplierMax clamp the composite dose multiplier.
	DoseMultiplierMin float64
	DoseMultiplierMax float64

	// MorningOverflowCap limits how many timing-agnostic supplements are
	// drained into the morning stack before spilling into the afternoon.
	MorningOverflowCap int

	// ShoppingSupplyDays is the supply horizon for shopping-list estimates.
	ShoppingSupplyDays int
}

// DefaultEngineConfig returns the default engine tunables.
func DefaultEngineConfig() EngineConfig {
	return EngineConfig{
		Scoring: ScoringWeights{
			GoalAlignment:  0.30,
			DemographicFit: 0.25,
			Evidence:       0.20,
			BasePriority:   0.10,
			TrainingFit:    0.10,
			AgeFit:         0.05,
		},
		TierCapacities: map[string]int{
			"ESSENTIAL":     5,
			"COMPREHENSIVE": 8,
			"PREMIUM":       12,
		},
		TierDoseMultipliers: map[string]float64{
			"ESSENTIAL":     0.8,
			"COMPREHENSIVE": 1.0,
			"PREMIUM":       1.1,
		},
		DoseMultiplierMin:  0.7,
		DoseMultiplierMax:  1.5,
		MorningOverflowCap: 5,
		ShoppingSupplyDays: 30,
	}
}

// Validate checks engine tunables for internal consistency.
func (c EngineConfig) Validate() error {
	if math.Abs(c.Scoring.Sum()-1.0) > 1e-9 {
		return fmt.Errorf("scoring weights must sum to 1.0, got %v", c.Scoring.Sum())
	}
	if c.DoseMultiplierMin <= 0 || c.DoseMultiplierMax < c.DoseMultiplierMin {
		return fmt.Errorf("invalid dose multiplier bounds [%v, %v]", c.DoseMultiplierMin, c.DoseMultiplierMax)
	}
	if len(c.TierCapacities) == 0 {
		return fmt.Errorf("tier capacities must not be empty")
	}
	for tier, capacity := range c.TierCapacities {
		if capacity <= 0 {
			return fmt.Errorf("tier %s has non-positive capacity %d", tier, capacity)
		}
	}
	if c.MorningOverflowCap <= 0 {
		return fmt.Errorf("morning overflow cap must be positive")
	}
	if c.ShoppingSupplyDays <= 0 {
		return fmt.Errorf("shopping supply days must be positive")
	}
	return nil
}

// Load loads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{
		Server: ServerConfig{
			Host: getEnv("SERVER_HOST", "0.0.0.0"),
			Port: getEnvAsInt("SERVER_PORT", 8080),
		},
		Database: DatabaseConfig{
			Host:     getEnv("DB_HOST", "localhost"),
			Port:     getEnvAsInt("DB_PORT", 5432),
			User:     getEnv("DB_USER", "postgres"),
			Password: getEnv("DB_PASSWORD", ""),
			Database: getEnv("DB_NAME", "supplement_advisor"),
			SSLMode:  getEnv("DB_SSLMODE", "disable"),
		},
		Redis: RedisConfig{
			Host:     getEnv("REDIS_HOST", "localhost"),
			Port:     getEnvAsInt("REDIS_PORT", 6379),
			Password: getEnv("REDIS_PASSWORD", ""),
			DB:       getEnvAsInt("REDIS_DB", 0),
		},
		OTEL: OTELConfig{
			ServiceName:    getEnv("OTEL_SERVICE_NAME", "supplement-advisor"),
			ServiceVersion: getEnv("OTEL_SERVICE_VERSION", "1.0.0"),
			Endpoint:       getEnv("OTEL_ENDPOINT", ""),
			Enabled:        getEnvAsBool("OTEL_ENABLED", false),
		},
		Engine: DefaultEngineConfig(),
	}

	if err := cfg.Engine.Validate(); err != nil {
		return nil, fmt.Errorf("invalid engine configuration: %w", err)
	}

	return cfg, nil
}

// DatabaseDSN returns the PostgreSQL connection string
func (c *DatabaseConfig) DatabaseDSN() string {
	return fmt.Sprintf(
		"host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		c.Host, c.Port, c.User, c.Password, c.Database, c.SSLMode,
	)
}

// RedisAddr returns the Redis address
func (c *RedisConfig) RedisAddr() string {
	return fmt.Sprintf("%s:%d", c.Host, c.Port)
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intVal, err := strconv.Atoi(value); err == nil {
			return intVal
		}
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	if value := os.Getenv(key); value != "" {
		if boolVal, err := strconv.ParseBool(value); err == nil {
			return boolVal
		}
	}
	return defaultValue
}
