package config

import "os"

type Config struct {
	Port           string
	Env            string
	PostgresURL    string
	JWTSecret      string
	OpenCageAPIKey string
	GeocodeBaseURL string
	MediaRoot      string
	MediaBaseURL   string
	LogLevel       string
	LogFormat      string
}

func Load() *Config {
	return &Config{
		Port:           getEnv("PORT", "8080"),
		Env:            getEnv("ENV", "development"),
		PostgresURL:    getEnv("POSTGRES_CONN_STR", ""),
		JWTSecret:      getEnv("JWT_SECRET", "supersecretjwtkey"),
		OpenCageAPIKey: getEnv("OPENCAGE_API_KEY", ""),
		GeocodeBaseURL: getEnv("GEOCODE_BASE_URL", ""),
		MediaRoot:      getEnv("MEDIA_ROOT", "./media"),
		MediaBaseURL:   getEnv("MEDIA_BASE_URL", "/media"),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		LogFormat:      getEnv("LOG_FORMAT", "text"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
