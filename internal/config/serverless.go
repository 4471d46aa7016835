package config

import (
	"os"
)

// IsServerlessMode returns true if the process is running inside AWS Lambda
func IsServerlessMode() bool {
	return os.Getenv("AWS_LAMBDA_FUNCTION_NAME") != ""
}

// GetDeploymentMode returns the current deployment mode
func GetDeploymentMode() string {
	if IsServerlessMode() {
		return "serverless"
	}
	return "server"
}

// AdaptConfigForServerless modifies configuration for serverless deployment.
// Lambda has no writable local disk for a sqlite file, so the store backend
// is pinned to DynamoDB.
func AdaptConfigForServerless(config *Config) *Config {
	if !IsServerlessMode() {
		return config
	}

	config.Store.Backend = "dynamodb"
	return config
}

// GetOptimizedConfig returns configuration adapted for the current deployment mode
func GetOptimizedConfig() (*Config, error) {
	config, err := Load()
	if err != nil {
		return nil, err
	}

	return AdaptConfigForServerless(config), nil
}
