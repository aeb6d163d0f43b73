package config

import (
	"time"
)

type Config struct {
	Host string
	Port string

	// SheetEndpoint - URL web app Apps Script (GET siswa, POST siswa/absensi)
	SheetEndpoint    string
	SheetHTTPTimeout time.Duration

	Timezone       string
	SessionIdleTTL time.Duration

	BasicAuthUser string
	BasicAuthPass string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	DBDSN string
}

func Load() (*Config, error) {
	cfg := &Config{
		Host:          GetEnv("APP_HOST", ""),
		Port:          GetEnv("APP_PORT", "3000"),
		Timezone:      GetEnv("APP_TIMEZONE", "Asia/Jakarta"),
		BasicAuthUser: GetEnv("BASIC_AUTH_USER", ""),
		BasicAuthPass: GetEnv("BASIC_AUTH_PASS", ""),
		RedisAddr:     GetEnv("REDIS_ADDR", ""),
		RedisPassword: GetEnv("REDIS_PASSWORD", ""),
		DBDSN:         GetEnv("DB_DSN", ""),
	}

	var err error
	if cfg.SheetEndpoint, err = getRequiredEnv("SHEET_ENDPOINT_URL"); err != nil {
		return nil, err
	}
	// 0 = tanpa timeout, ikut default transport
	if cfg.SheetHTTPTimeout, err = getEnvDuration("SHEET_HTTP_TIMEOUT", 0); err != nil {
		return nil, err
	}
	if cfg.SessionIdleTTL, err = getEnvDuration("SESSION_IDLE_TTL", 12*time.Hour); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}

	return cfg, nil
}

func (c *Config) Addr() string {
	return c.Host + ":" + c.Port
}
