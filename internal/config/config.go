// internal/config/config.go
package config

import (
	"os"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	Server struct {
		Port         string        `json:"port"`
		ReadTimeout  time.Duration `json:"read_timeout"`
		WriteTimeout time.Duration `json:"write_timeout"`
	} `json:"server"`
	Translate struct {
		// MaxSourceBytes caps the size of a submitted C++ source text.
		MaxSourceBytes int `json:"max_source_bytes"`
	} `json:"translate"`
	CORS struct {
		AllowedOrigins []string `json:"allowed_origins"`
	} `json:"cors"`
}

func Load() *Config {
	cfg := &Config{}

	// Server configuration
	cfg.Server.Port = getEnv("SERVER_PORT", "8080")
	cfg.Server.ReadTimeout = time.Second * 15
	cfg.Server.WriteTimeout = time.Second * 15

	// Translation limits
	cfg.Translate.MaxSourceBytes = getEnvInt("TRANSLATE_MAX_SOURCE_BYTES", 1<<20)

	// CORS configuration
	cfg.CORS.AllowedOrigins = strings.Split(getEnv("CORS_ALLOWED_ORIGINS", "https://*,http://*"), ",")

	return cfg
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value, exists := os.LookupEnv(key); exists {
		if n, err := strconv.Atoi(value); err == nil {
			return n
		}
	}
	return defaultValue
}
