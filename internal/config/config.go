package config

import "os"

// Config carries all runtime settings. Everything comes from the
// environment with sensible defaults; a .env file is honored when present.
type Config struct {
	Port         string
	DataDir      string
	ChromePath   string
	GeminiAPIKey string
	GeminiModel  string
}

func Load() Config {
	return Config{
		Port:         getEnv("PORT", "3000"),
		DataDir:      getEnv("DATA_DIR", "resume-data"),
		ChromePath:   getEnv("CHROME_PATH", ""),
		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		GeminiModel:  getEnv("GEMINI_MODEL", "gemini-2.5-flash"),
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
