package config

import (
	"log"
	"time"

	"github.com/spf13/viper"
)

// Config holds all configuration values.
type Config struct {
	AppPort           string `mapstructure:"APP_PORT"`
	DatabaseURL       string `mapstructure:"DATABASE_URL"`
	DatabaseName      string `mapstructure:"DATABASE_NAME"`
	Env               string `mapstructure:"ENV"`
	LogLevel          string `mapstructure:"LOG_LEVEL"`
	MaxRequestsPerMin int    `mapstructure:"MAX_REQUESTS_PER_MIN"`

	// Redis configuration.
	RedisAddr      string `mapstructure:"REDIS_ADDR"`
	RedisPassword  string `mapstructure:"REDIS_PASSWORD"`
	RedisCacheDB   int    `mapstructure:"REDIS_CACHE_DB"`
	RedisPrewarmDB int    `mapstructure:"REDIS_PREWARM_QUEUE_DB"`

	// Availability engine tuning.
	OverrideLookupTimeoutMS     int  `mapstructure:"OVERRIDE_LOOKUP_TIMEOUT_MS"`
	AvailabilityCacheTTLSeconds int  `mapstructure:"AVAILABILITY_CACHE_TTL_SECONDS"`
	PrewarmEnabled              bool `mapstructure:"PREWARM_ENABLED"`
	PrewarmIntervalMinutes      int  `mapstructure:"PREWARM_INTERVAL_MINUTES"`
	PrewarmHorizonDays          int  `mapstructure:"PREWARM_HORIZON_DAYS"`
}

var AppConfig Config

func LoadConfig() {
	// Look for a config file named "config.yaml" in the current and "config" directory.
	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")
	viper.AddConfigPath("./config")
	// Automatically use environment variables where available.
	viper.AutomaticEnv()

	// Set default values.
	viper.SetDefault("APP_PORT", "8080")
	viper.SetDefault("ENV", "development")
	viper.SetDefault("LOG_LEVEL", "info")
	viper.SetDefault("MAX_REQUESTS_PER_MIN", 100)
	viper.SetDefault("REDIS_ADDR", "localhost:6379")
	viper.SetDefault("REDIS_PASSWORD", "")
	viper.SetDefault("REDIS_CACHE_DB", 0)
	viper.SetDefault("REDIS_PREWARM_QUEUE_DB", 1)
	viper.SetDefault("DATABASE_URL", "mongodb://localhost:27017")
	viper.SetDefault("DATABASE_NAME", "slotify")
	viper.SetDefault("OVERRIDE_LOOKUP_TIMEOUT_MS", 300)
	viper.SetDefault("AVAILABILITY_CACHE_TTL_SECONDS", 60)
	viper.SetDefault("PREWARM_ENABLED", false)
	viper.SetDefault("PREWARM_INTERVAL_MINUTES", 60)
	viper.SetDefault("PREWARM_HORIZON_DAYS", 7)

	if err := viper.ReadInConfig(); err != nil {
		log.Println("No config file found, using environment variables only")
	}

	if err := viper.Unmarshal(&AppConfig); err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
}

func GetEnv() string {
	return AppConfig.Env
}

func IsProduction() bool {
	return GetEnv() == "production"
}

// OverrideLookupTimeout returns the deadline used for the best-effort override
// fetch during availability resolution.
func OverrideLookupTimeout() time.Duration {
	ms := AppConfig.OverrideLookupTimeoutMS
	if ms <= 0 {
		ms = 300
	}
	return time.Duration(ms) * time.Millisecond
}

// AvailabilityCacheTTL returns how long cached availability responses stay
// valid.
func AvailabilityCacheTTL() time.Duration {
	secs := AppConfig.AvailabilityCacheTTLSeconds
	if secs <= 0 {
		secs = 60
	}
	return time.Duration(secs) * time.Second
}
