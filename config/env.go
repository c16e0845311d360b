package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Load environment variables and handle errors

func LoadEnv() {
	err := godotenv.Load()

	if err != nil {
		Logger.Warn("Error loading .env file, will use environment variables instead:", err)
		// Don't call Fatal here - continue execution
	}
}

// Settings holds the process-level options read once at startup.
// API keys are deliberately absent: they are looked up per request.
type Settings struct {
	Port           string
	LogLevel       string
	Provider       string
	AllowedOrigin  string
	RateLimitRPS   float64
	RateLimitBurst int
	SupabaseURL    string
	SupabaseKey    string
}

// Load reads Settings from the environment, applying defaults.
func Load() Settings {
	return Settings{
		Port:           getEnv("PORT", "8080"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		Provider:       getEnv("LLM_PROVIDER", "gemini"),
		AllowedOrigin:  getEnv("ALLOWED_ORIGIN", "*"),
		RateLimitRPS:   getEnvFloat("RATE_LIMIT_RPS", 0),
		RateLimitBurst: getEnvInt("RATE_LIMIT_BURST", 5),
		SupabaseURL:    os.Getenv("SUPABASE_URL"),
		SupabaseKey:    os.Getenv("SUPABASE_KEY"),
	}
}

// AnalyticsEnabled reports whether both Supabase settings are present.
func (s Settings) AnalyticsEnabled() bool {
	return s.SupabaseURL != "" && s.SupabaseKey != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		Logger.Warnf("Invalid %s=%q, using %d", key, v, fallback)
		return fallback
	}
	return n
}

func getEnvFloat(key string, fallback float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		Logger.Warnf("Invalid %s=%q, using %g", key, v, fallback)
		return fallback
	}
	return f
}
