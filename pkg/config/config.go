// Fichier: config/config.go
package config

import (
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"
)

type ServerConfig struct {
	Port string
}

type BackendConfig struct {
	BaseURL     string
	WsURL       string
	HTTPTimeout time.Duration
}

type JWTConfig struct {
	SecretKey string
}

type Config struct {
	Server  ServerConfig
	Backend BackendConfig
	JWT     JWTConfig
}

func New() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Avertissement: fichier .env introuvable ou illisible.")
	}

	return &Config{
		Server: ServerConfig{
			Port: getEnv("SERVER_PORT", "8090"),
		},
		Backend: BackendConfig{
			BaseURL:     getEnv("BACKEND_BASE_URL", "http://localhost:3000/api"),
			WsURL:       getEnv("BACKEND_WS_URL", "ws://localhost:3000/ws"),
			HTTPTimeout: getDuration("BACKEND_HTTP_TIMEOUT", 15*time.Second),
		},
		JWT: JWTConfig{
			SecretKey: getEnv("JWT_SECRET_KEY", "9A4D2AD385B2BAA8DC78F558B548F"),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getDuration(key string, fallback time.Duration) time.Duration {
	if value, exists := os.LookupEnv(key); exists {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}
