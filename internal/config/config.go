package config // package config loads application configuration from environment variables

import (
	"strconv" // strconv converts strings to other types
)

// Config holds all runtime configuration values.  Each field corresponds to
// an environment variable.  Every value has a documented default so the
// portal can boot on a bare developer machine with nothing but a local
// MySQL instance; secrets default to obviously-dev placeholders.
type Config struct {
	Env             string // application environment (e.g. "dev", "prod")
	Port            string // HTTP port to listen on
	DBUser          string // database username
	DBPass          string // database password (optional)
	DBHost          string // database host address
	DBPort          string // database port number
	DBName          string // database name
	SessionSecret   string // secret used to sign session cookies
	SessionTTLHours int    // session cookie time-to-live in hours
	BcryptCost      int    // bcrypt cost for password hashing
	GeminiAPIKey    string // Gemini API key; empty disables the provider
	GeminiModel     string // Gemini model name used by the chat proxy
}

// Load reads configuration values from environment variables and returns a
// Config.  Every variable falls back to a development default when unset,
// mirroring how the original deployment ran with `process.env.X || default`.
func Load() Config {
	return Config{
		Env:             getenv("APP_ENV", "dev"),               // environment (dev/test/prod)
		Port:            getenv("APP_PORT", "3000"),             // port to bind the HTTP server
		DBUser:          getenv("DB_USER", "root"),              // database user
		DBPass:          getenv("DB_PASS", ""),                  // database password (empty allowed)
		DBHost:          getenv("DB_HOST", "localhost"),         // database host
		DBPort:          getenv("DB_PORT", "3306"),              // database port
		DBName:          getenv("DB_NAME", "alumni"),            // database name
		SessionSecret:   getenv("SESSION_SECRET", "dev-secret"), // secret for signing session tokens
		SessionTTLHours: atoiDef("SESSION_TTL_HOURS", 8),        // cookie lifetime in hours
		BcryptCost:      atoiDef("BCRYPT_COST", 10),             // bcrypt cost factor
		GeminiAPIKey:    getenv("GEMINI_API_KEY", ""),           // empty -> canned fallback replies only
		GeminiModel:     getenv("GEMINI_MODEL", "gemini-1.5-pro"), // provider model name
	}
}

// atoiDef reads an integer environment variable, falling back to def when
// the value is missing or not a positive integer.  Configuration mistakes
// should degrade to defaults, not crash the process.
func atoiDef(key string, def int) int {
	n, err := strconv.Atoi(getenv(key, ""))
	if err != nil || n <= 0 {
		return def
	}
	return n
}
