package config

import (
	"crypto/rand"
	"encoding/base64"
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds the application's configuration values.
type Config struct {
	HostIP            string // Host IP for the server
	RESTPort          int    // Port for the REST API
	GinMode           string // Mode for the Gin framework (e.g., release, debug, test)
	JWTSecret         string // Secret key for session token signing
	JWTIssuer         string // Issuer claim for session tokens
	GridRows          int    // Row count of every session grid
	GridCols          int    // Column count of every session grid
	MaxSessions       int    // Upper bound on concurrently open sessions
	SessionTTLMinutes int    // Lifetime of a session token in minutes
	PresetsPath       string // Path to the YAML preset layouts, empty to disable
}

// Envs holds the application's configuration loaded from environment variables.
var Envs = initConfig()

// initConfig initializes and returns the application configuration.
// It loads environment variables from a .env file.
func initConfig() Config {
	// Load .env file if available
	if err := godotenv.Load(); err != nil {
		log.Printf("[APP] [INFO] .env file not found or could not be loaded: %v", err)
	}

	return Config{
		HostIP:            getEnvWithDefault("HOST_IP", "0.0.0.0"),
		RESTPort:          getEnvAsIntWithDefault("REST_PORT", 8080),
		GinMode:           getEnvWithDefault("GIN_MODE", "release"),
		JWTSecret:         getEnvWithDefault("JWT_SECRET", ""),
		JWTIssuer:         getEnvWithDefault("JWT_ISSUER", "vinom-pathfinder"),
		GridRows:          getEnvAsIntWithDefault("GRID_ROWS", 15),
		GridCols:          getEnvAsIntWithDefault("GRID_COLS", 15),
		MaxSessions:       getEnvAsIntWithDefault("MAX_SESSIONS", 1024),
		SessionTTLMinutes: getEnvAsIntWithDefault("SESSION_TTL_MINUTES", 120),
		PresetsPath:       getEnvWithDefault("PRESETS_PATH", "presets.yaml"),
	}
}

// SigningSecret returns the configured JWT secret, or a random one when none
// is set. Tokens signed with a random secret do not survive a restart.
func (c Config) SigningSecret() (string, error) {
	if c.JWTSecret != "" {
		return c.JWTSecret, nil
	}

	bytes := make([]byte, 32)
	if _, err := rand.Read(bytes); err != nil {
		return "", err
	}
	return base64.URLEncoding.EncodeToString(bytes), nil
}

// getEnvAsIntWithDefault retrieves the value of an environment variable as an integer,
// returning defaultValue if it is not set. It logs a fatal error if the value cannot be parsed.
func getEnvAsIntWithDefault(key string, defaultValue int) int {
	valueStr, exists := os.LookupEnv(key)
	if !exists {
		return defaultValue
	}

	value, err := strconv.Atoi(valueStr)
	if err != nil {
		log.Fatalf("[APP] [FATAL] Environment variable %s must be an integer: %v", key, err)
	}
	return value
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}
