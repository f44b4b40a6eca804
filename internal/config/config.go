package config

import (
	"log"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Config holds all configuration for the application
type Config struct {
	App      AppConfig
	Mail     MailConfig
	Firebase FirebaseConfig
	Link     LinkConfig
	CORS     CORSConfig
}

type AppConfig struct {
	Env  string
	Port string
}

type MailConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	FromName string
}

// Addr returns the SMTP relay address
func (m MailConfig) Addr() string {
	return m.Host + ":" + m.Port
}

type FirebaseConfig struct {
	// ServiceAccount is the full service-account credential JSON blob.
	ServiceAccount string
}

type LinkConfig struct {
	// VerifyURL is the base URL of the guest verification page.
	VerifyURL string
}

type CORSConfig struct {
	Origins []string
}

// Load reads configuration from .env file and environment variables
func Load() *Config {
	// Load .env file (ignore error if not exists - e.g. in Docker)
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  No .env file found, reading from environment variables")
	}

	return &Config{
		App: AppConfig{
			Env:  getEnv("APP_ENV", "development"),
			Port: getEnv("PORT", "3000"),
		},
		Mail: MailConfig{
			Host:     getEnv("SMTP_HOST", "smtp.gmail.com"),
			Port:     getEnv("SMTP_PORT", "587"),
			User:     getEnv("EMAIL_USER", ""),
			Password: getEnv("EMAIL_PASS", ""),
			FromName: getEnv("SMTP_FROM_NAME", "Ocean View Hotels"),
		},
		Firebase: FirebaseConfig{
			ServiceAccount: getEnv("FIREBASE_SERVICE_ACCOUNT", ""),
		},
		Link: LinkConfig{
			VerifyURL: getEnv("VERIFY_URL", "https://hotelguestmodule-62806.web.app/verify.html"),
		},
		CORS: CORSConfig{
			Origins: strings.Split(getEnv("CORS_ORIGINS", "*"), ","),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}
