package bootstrap

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

const (
	BackendFile = "file"
	BackendGCS  = "gcs"

	DefaultPort      = "3000"
	DefaultDataFile  = "./data/workouts.json"
	DefaultProjectID = "fitglue-workouts"
	DefaultTopic     = "workout-events"
)

// Config holds the process configuration. It is read once at startup and
// passed explicitly to every component that needs it.
type Config struct {
	Port string

	// Raw JSON, parsed by auth.LoadCredentials
	APIKeys    string
	AdminUsers string

	StoreBackend string
	DataFile     string
	GCSBucket    string
	GCSObject    string

	EnablePublish bool
	ProjectID     string
	EventsTopic   string

	SentryDSN   string
	Environment string
	Release     string
	LogLevel    string

	CORSAllowedOrigins []string
}

// LoadConfig reads configuration from environment variables
func LoadConfig() *Config {
	projectID := os.Getenv("GOOGLE_CLOUD_PROJECT")
	if projectID == "" {
		projectID = DefaultProjectID
	}

	return &Config{
		Port:               envOr("PORT", DefaultPort),
		APIKeys:            envOr("API_KEYS", "{}"),
		AdminUsers:         envOr("ADMIN_USERS", "[]"),
		StoreBackend:       strings.ToLower(envOr("STORE_BACKEND", BackendFile)),
		DataFile:           envOr("DATA_FILE", DefaultDataFile),
		GCSBucket:          os.Getenv("GCS_BUCKET"),
		GCSObject:          envOr("GCS_OBJECT", filepath.Base(DefaultDataFile)),
		EnablePublish:      os.Getenv("ENABLE_PUBLISH") == "true",
		ProjectID:          projectID,
		EventsTopic:        envOr("WORKOUT_EVENTS_TOPIC", DefaultTopic),
		SentryDSN:          os.Getenv("SENTRY_DSN"),
		Environment:        envOr("ENVIRONMENT", "development"),
		Release:            envOr("RELEASE", "dev"),
		LogLevel:           os.Getenv("LOG_LEVEL"),
		CORSAllowedOrigins: splitList(envOr("CORS_ALLOWED_ORIGINS", "*")),
	}
}

// Validate checks the settings that would otherwise fail later at runtime.
// Credential parse errors are deliberately not checked here.
func (c *Config) Validate() error {
	p, err := strconv.Atoi(c.Port)
	if err != nil || p < 1 || p > 65535 {
		return fmt.Errorf("invalid PORT %q", c.Port)
	}

	switch c.StoreBackend {
	case BackendFile:
		if c.DataFile == "" {
			return fmt.Errorf("DATA_FILE must be set for the %s backend", BackendFile)
		}
	case BackendGCS:
		if c.GCSBucket == "" {
			return fmt.Errorf("GCS_BUCKET must be set for the %s backend", BackendGCS)
		}
	default:
		return fmt.Errorf("invalid STORE_BACKEND %q (want %s or %s)", c.StoreBackend, BackendFile, BackendGCS)
	}

	if c.EnablePublish && c.EventsTopic == "" {
		return fmt.Errorf("WORKOUT_EVENTS_TOPIC must be set when ENABLE_PUBLISH=true")
	}
	return nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
