package config

import (
	"log"
	"os"

	"github.com/joho/godotenv"
)

// Environment is the deployment environment the process runs in.
type Environment string

const (
	Development Environment = "development"
	Test        Environment = "test"
	CI          Environment = "ci"
	Production  Environment = "production"
)

// GetEnvironment resolves the current environment from ENV, defaulting to
// development. In development a local .env file is loaded first so the
// process can run outside Docker.
func GetEnvironment() Environment {
	env := os.Getenv("ENV")
	switch env {
	case "production":
		return Production
	case "ci":
		return CI
	case "test":
		return Test
	case "", "development":
		if err := godotenv.Load(); err == nil {
			log.Println("Loaded configuration from .env")
		}
		return Development
	default:
		log.Printf("Unknown ENV %q, falling back to development", env)
		return Development
	}
}
