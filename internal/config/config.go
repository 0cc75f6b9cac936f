package config

import (
	"fmt"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

const (
	keyPort             = "PORT"
	keyRemoteAPIURL     = "REMOTE_API_URL"
	keyRemoteAPITimeout = "REMOTE_API_TIMEOUT"
	keyJWTSecret        = "JWT_SECRET"
	keyPostgresURL      = "POSTGRES_URL"
	keyRedisAddr        = "REDIS_ADDR"
	keyRedisPassword    = "REDIS_PASSWORD"
	keyRedisDB          = "REDIS_DB"
	keyCatalogCacheTTL  = "CATALOG_CACHE_TTL"
	keyLogLevel         = "LOG_LEVEL"
	keyGinMode          = "GIN_MODE"
	keyWriteRate        = "WRITE_RATE_PER_MINUTE"
	keyWriteBurst       = "WRITE_RATE_BURST"
)

type Config struct {
	Port             string
	RemoteAPIURL     string
	RemoteAPITimeout time.Duration
	JWTSecret        []byte
	PostgresURL      string
	RedisAddr        string
	RedisPassword    string
	RedisDB          int
	CatalogCacheTTL  time.Duration
	LogLevel         string
	GinMode          string

	// Limits for requests that write to the trip API.
	WriteRatePerMinute float64
	WriteRateBurst     int
}

// Load reads envFiles (missing ones are skipped) and then the process
// environment, which takes precedence.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		// godotenv never overwrites variables that are already set.
		_ = godotenv.Load(f)
	}

	v := viper.New()
	v.AutomaticEnv()
	// The trip API listens on 8080 by default, so this service does not.
	v.SetDefault(keyPort, "8081")
	v.SetDefault(keyRemoteAPIURL, "http://localhost:8080")
	v.SetDefault(keyRemoteAPITimeout, "10s")
	v.SetDefault(keyRedisDB, 0)
	v.SetDefault(keyCatalogCacheTTL, "10m")
	v.SetDefault(keyLogLevel, "info")
	v.SetDefault(keyGinMode, "release")
	v.SetDefault(keyWriteRate, 10)
	v.SetDefault(keyWriteBurst, 3)

	return fromViper(v)
}

func fromViper(v *viper.Viper) (*Config, error) {
	cfg := &Config{
		Port:             v.GetString(keyPort),
		RemoteAPIURL:     v.GetString(keyRemoteAPIURL),
		RemoteAPITimeout: v.GetDuration(keyRemoteAPITimeout),
		JWTSecret:        []byte(v.GetString(keyJWTSecret)),
		PostgresURL:      v.GetString(keyPostgresURL),
		RedisAddr:        v.GetString(keyRedisAddr),
		RedisPassword:    v.GetString(keyRedisPassword),
		RedisDB:          v.GetInt(keyRedisDB),
		CatalogCacheTTL:  v.GetDuration(keyCatalogCacheTTL),
		LogLevel:         v.GetString(keyLogLevel),
		GinMode:          v.GetString(keyGinMode),

		WriteRatePerMinute: v.GetFloat64(keyWriteRate),
		WriteRateBurst:     v.GetInt(keyWriteBurst),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	if c.RemoteAPIURL == "" {
		return fmt.Errorf("%s is required", keyRemoteAPIURL)
	}
	if c.RemoteAPITimeout <= 0 {
		return fmt.Errorf("%s must be a positive duration", keyRemoteAPITimeout)
	}
	if len(c.JWTSecret) == 0 {
		return fmt.Errorf("%s is required", keyJWTSecret)
	}
	if c.WriteRatePerMinute <= 0 || c.WriteRateBurst <= 0 {
		return fmt.Errorf("%s and %s must be positive", keyWriteRate, keyWriteBurst)
	}
	if c.CatalogCacheTTL < 0 {
		return fmt.Errorf("%s must not be negative", keyCatalogCacheTTL)
	}
	return nil
}

func (c *Config) Addr() string {
	return ":" + c.Port
}
