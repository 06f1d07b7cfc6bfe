package config

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	AppPort        string
	DbHost         string
	DbPort         string
	DbUser         string
	DbPassword     string
	DbName         string
	DbParams       string
	TrustedProxies []string

	// JwtSecret signs bearer tokens; process-wide, no rotation.
	JwtSecret string
	// DefaultTokenTTL applies when a caller requests a token without
	// an explicit lifetime; LoginTokenTTL is the longer lifetime
	// granted at login.
	DefaultTokenTTL time.Duration
	LoginTokenTTL   time.Duration

	// DefaultAvatarPath points at the profile image attached to every
	// newly registered user.
	DefaultAvatarPath string
}

func LoadConfig() *Config {
	_ = godotenv.Load(".env")

	return &Config{
		AppPort:           getEnv("APP_PORT", "8080"),
		DbHost:            getEnv("MYSQL_HOST", "db"),
		DbPort:            getEnv("MYSQL_PORT", "3306"),
		DbUser:            getEnv("MYSQL_USER", "productivity"),
		DbPassword:        getEnv("MYSQL_PASSWORD", "productivity"),
		DbName:            getEnv("MYSQL_DATABASE", "productivity"),
		DbParams:          getEnv("MYSQL_PARAMS", "parseTime=true&multiStatements=true"),
		TrustedProxies:    parseTrustedProxies(os.Getenv("TRUSTED_PROXIES")),
		JwtSecret:         getEnv("JWT_SECRET", "Praktika2024"),
		DefaultTokenTTL:   getEnvMinutes("TOKEN_TTL_MINUTES", 15),
		LoginTokenTTL:     getEnvMinutes("LOGIN_TOKEN_TTL_MINUTES", 30),
		DefaultAvatarPath: getEnv("DEFAULT_AVATAR_PATH", "images/profile.jpg"),
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvMinutes(key string, fallback int) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if minutes, err := strconv.Atoi(value); err == nil && minutes > 0 {
			return time.Duration(minutes) * time.Minute
		}
	}
	return time.Duration(fallback) * time.Minute
}

func parseTrustedProxies(value string) []string {
	if strings.TrimSpace(value) == "" {
		return nil
	}

	parts := strings.Split(value, ",")
	proxies := make([]string, 0, len(parts))
	for _, part := range parts {
		proxy := strings.TrimSpace(part)
		if proxy == "" {
			continue
		}
		proxies = append(proxies, proxy)
	}

	if len(proxies) == 0 {
		return nil
	}

	return proxies
}
