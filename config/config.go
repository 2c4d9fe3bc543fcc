package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds environment-driven settings for the AquaSense REST API.
type Config struct {
	Port        int
	TableName   string
	Region      string
	EndpointURL string
	Debug       bool
}

// Load reads configuration from environment variables (optionally .env).
func Load() (Config, error) {
	_ = godotenv.Load() // ignore missing file

	cfg := Config{
		Port:      8080,
		TableName: "proy-MarMenorData",
		Region:    "us-east-1",
	}

	if portStr := os.Getenv("PORT"); portStr != "" {
		if port, err := strconv.Atoi(portStr); err == nil && port > 0 {
			cfg.Port = port
		} else {
			return cfg, fmt.Errorf("invalid PORT: %s", portStr)
		}
	}

	if table := os.Getenv("DYNAMODB_TABLE"); table != "" {
		cfg.TableName = table
	}

	if region := os.Getenv("AWS_REGION"); region != "" {
		cfg.Region = region
	}

	cfg.EndpointURL = os.Getenv("AWS_ENDPOINT_URL")

	if debugStr := os.Getenv("DEBUG"); debugStr != "" {
		if debug, err := strconv.ParseBool(debugStr); err == nil {
			cfg.Debug = debug
		} else {
			return cfg, fmt.Errorf("invalid DEBUG: %s", debugStr)
		}
	}

	return cfg, nil
}

// ListenAddr returns the host:port string for the HTTP server.
func (c Config) ListenAddr() string {
	return fmt.Sprintf(":%d", c.Port)
}
