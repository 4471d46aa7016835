package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config holds all configuration for the application. It is built once per
// process and passed into the container; handlers never read the environment
// themselves.
type Config struct {
	Environment string
	Port        string
	Store       StoreConfig
}

// StoreConfig holds item store configuration
type StoreConfig struct {
	// Backend selects the repository implementation: "dynamodb" or "sqlite"
	Backend string

	// TableName is the DynamoDB table holding todo records
	TableName string

	// Region is the AWS region for the DynamoDB backend
	Region string

	// Endpoint, when non-empty, redirects DynamoDB traffic to an alternate
	// host such as a LocalStack instance
	Endpoint string

	// SQLitePath is the database file used by the sqlite backend
	SQLitePath string
}

// Load loads configuration from environment variables and an optional .env file
func Load() (*Config, error) {
	// Load .env file if it exists
	_ = godotenv.Load()

	viper.AutomaticEnv()
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("ENVIRONMENT", "development")
	viper.SetDefault("STORE_BACKEND", "dynamodb")
	viper.SetDefault("DYNAMODB_TABLE", "todos")
	viper.SetDefault("AWS_REGION", "us-east-1")
	viper.SetDefault("SQLITE_PATH", "./data/todos.db")

	config := &Config{
		Environment: viper.GetString("ENVIRONMENT"),
		Port:        viper.GetString("PORT"),
		Store: StoreConfig{
			Backend:    viper.GetString("STORE_BACKEND"),
			TableName:  viper.GetString("DYNAMODB_TABLE"),
			Region:     viper.GetString("AWS_REGION"),
			Endpoint:   resolveStoreEndpoint(),
			SQLitePath: viper.GetString("SQLITE_PATH"),
		},
	}

	return config, nil
}

// resolveStoreEndpoint returns the alternate store endpoint, if any. An
// explicit DYNAMODB_ENDPOINT wins; otherwise LOCALSTACK_HOSTNAME selects the
// conventional LocalStack edge port.
func resolveStoreEndpoint() string {
	if endpoint := os.Getenv("DYNAMODB_ENDPOINT"); endpoint != "" {
		return endpoint
	}
	if host := os.Getenv("LOCALSTACK_HOSTNAME"); host != "" {
		return fmt.Sprintf("http://%s:4566", host)
	}
	return ""
}

// GetEnv gets an environment variable with a fallback value
func GetEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
