package config

import (
	"fmt"
	"os"
	"strings"
)

// RequiredEnvVars lists the variables every deployment must set.
var RequiredEnvVars = []string{
	"API_KEY",
}

// BackendEnvVars lists the variables a store backend needs on top of RequiredEnvVars.
var BackendEnvVars = map[string][]string{
	StoreMemory:   {},
	StorePostgres: {"DB_USER", "DB_PASSWORD", "DB_HOST", "DB_PORT", "DB_NAME"},
	StoreRedis:    {"REDIS_ADDR"},
}

// ValidateEnv checks that all required environment variables are set for the
// selected store backend.
func ValidateEnv() error {
	backend := strings.ToLower(getEnv("STORE_BACKEND", StoreMemory))
	perBackend, ok := BackendEnvVars[backend]
	if !ok {
		return fmt.Errorf("unknown STORE_BACKEND %q", backend)
	}

	required := append(append([]string{}, RequiredEnvVars...), perBackend...)

	var missing []string
	for _, envVar := range required {
		if os.Getenv(envVar) != "" {
			continue
		}
		// DATABASE_URL replaces the individual DB_* settings
		if strings.HasPrefix(envVar, "DB_") && os.Getenv("DATABASE_URL") != "" {
			continue
		}
		missing = append(missing, envVar)
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required environment variables: %s", strings.Join(missing, ", "))
	}

	return nil
}

// ValidateEnvWithWarnings checks environment variables and returns warnings
// for non-critical issues (like using default values)
func ValidateEnvWithWarnings() ([]string, error) {
	if err := ValidateEnv(); err != nil {
		return nil, err
	}

	var warnings []string

	if os.Getenv("DB_PASSWORD") == "change_this_secure_password" {
		warnings = append(warnings, "DB_PASSWORD appears to be using the example value - please use a secure password")
	}

	if os.Getenv("API_KEY") == "generate_with_openssl_rand_hex_32" {
		warnings = append(warnings, "API_KEY appears to be using the example value - generate a secure key with: openssl rand -hex 32")
	}

	if strings.ToLower(getEnv("STORE_BACKEND", StoreMemory)) == StoreMemory {
		warnings = append(warnings, "STORE_BACKEND is memory - accounts are lost on restart")
	}

	return warnings, nil
}
