package config

import (
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"
)

type OAuthConfig struct {
	ClientID     string
	ClientSecret string
}

// IsConfigured returns true if all required OAuth configuration is present
func (c OAuthConfig) IsConfigured() bool {
	return c.ClientID != "" && c.ClientSecret != ""
}

type AppConfig struct {
	// Core configuration (always required)
	BotToken string
	OwnerID  string

	// Optional with defaults
	Port               string
	BaseURL            string
	SessionSecret      string
	CORSAllowedOrigins string

	// Discord OAuth configuration for the dashboard login flow
	OAuthConfig OAuthConfig
}

func LoadConfig() (*AppConfig, error) {
	if err := godotenv.Load(); err != nil {
		fmt.Println("⚠️ Could not load .env file, continuing with system env vars")
	}

	// Core required configuration
	botToken, err := getEnvRequired("DISCORD_BOT_TOKEN")
	if err != nil {
		return nil, err
	}

	ownerID, err := getEnvRequired("OWNER_DISCORD_ID")
	if err != nil {
		return nil, err
	}

	port := getEnvWithDefault("PORT", "3000")

	config := &AppConfig{
		BotToken: botToken,
		OwnerID:  ownerID,

		Port:               port,
		BaseURL:            getEnvWithDefault("BASE_URL", "http://localhost:"+port),
		SessionSecret:      getEnvWithDefault("SESSION_SECRET", ""),
		CORSAllowedOrigins: getEnvWithDefault("CORS_ALLOWED_ORIGINS", "*"),

		OAuthConfig: OAuthConfig{
			ClientID:     os.Getenv("DISCORD_CLIENT_ID"),
			ClientSecret: os.Getenv("DISCORD_CLIENT_SECRET"),
		},
	}

	if config.SessionSecret == "" {
		return nil, fmt.Errorf("SESSION_SECRET is not set")
	}

	if config.OAuthConfig.IsConfigured() {
		log.Printf("✅ Discord OAuth configured")
	} else {
		return nil, fmt.Errorf("discord OAuth is not fully configured (DISCORD_CLIENT_ID/DISCORD_CLIENT_SECRET)")
	}

	return config, nil
}

func getEnvRequired(key string) (string, error) {
	value := os.Getenv(key)
	if value == "" {
		return "", fmt.Errorf("%s is not set", key)
	}
	return value, nil
}

func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
