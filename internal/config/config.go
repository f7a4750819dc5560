package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BruksfildServices01/restaurant-loyalty/internal/models"
)

type Config struct {
	ServerPort string
	JWTSecret  string

	AdminEmail    string
	AdminPassword string

	Timezone string

	// Política de ventana: "sliding" o "calendar".
	StrategyKind string
	UniquePerDay bool

	DefaultRules models.RuleSet
}

func Load() *Config {
	windowDays := getEnvInt("LOYALTY_WINDOW_DAYS", 365)

	return &Config{
		ServerPort: getEnv("SERVER_PORT", "8080"),
		JWTSecret:  getEnv("JWT_SECRET", "changeme"),

		AdminEmail:    strings.ToLower(getEnv("ADMIN_EMAIL", "admin@restaurant.local")),
		AdminPassword: getEnv("ADMIN_PASSWORD", "changeme"),

		Timezone: getEnv("RESTAURANT_TIMEZONE", "America/Lima"),

		StrategyKind: getEnv("LOYALTY_STRATEGY", "sliding"),
		UniquePerDay: getEnvBool("LOYALTY_UNIQUE_PER_DAY", true),

		DefaultRules: models.RuleSet{
			Regular: models.TierRule{
				Level:      models.TierRegular,
				MinVisits:  getEnvInt("REGULAR_MIN_VISITS", 1),
				WindowDays: windowDays,
			},
			VIP: models.TierRule{
				Level:      models.TierVIP,
				MinVisits:  getEnvInt("VIP_MIN_VISITS", 3),
				WindowDays: windowDays,
			},
			SuperVIP: models.TierRule{
				Level:      models.TierSuperVIP,
				MinVisits:  getEnvInt("SUPER_VIP_MIN_VISITS", 6),
				WindowDays: windowDays,
			},
		},
	}
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getEnvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}

func getEnvBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		return strings.EqualFold(v, "true") || v == "1"
	}
	return def
}

func (c *Config) Addr() string {
	return fmt.Sprintf(":%s", c.ServerPort)
}
