package bootstrap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig_Defaults(t *testing.T) {
	for _, key := range []string{"PORT", "API_KEYS", "ADMIN_USERS", "DATA_FILE", "STORE_BACKEND", "ENABLE_PUBLISH", "CORS_ALLOWED_ORIGINS", "GOOGLE_CLOUD_PROJECT"} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()
	assert.Equal(t, "3000", cfg.Port)
	assert.Equal(t, "{}", cfg.APIKeys)
	assert.Equal(t, "[]", cfg.AdminUsers)
	assert.Equal(t, BackendFile, cfg.StoreBackend)
	assert.Equal(t, DefaultDataFile, cfg.DataFile)
	assert.Equal(t, "workouts.json", cfg.GCSObject)
	assert.Equal(t, DefaultProjectID, cfg.ProjectID)
	assert.False(t, cfg.EnablePublish)
	assert.Equal(t, []string{"*"}, cfg.CORSAllowedOrigins)
	assert.NoError(t, cfg.Validate())
}

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "8088")
	t.Setenv("API_KEYS", `{"alice":"k"}`)
	t.Setenv("ADMIN_USERS", `["alice"]`)
	t.Setenv("STORE_BACKEND", "GCS")
	t.Setenv("GCS_BUCKET", "bucket")
	t.Setenv("ENABLE_PUBLISH", "true")
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, https://b.example")

	cfg := LoadConfig()
	assert.Equal(t, "8088", cfg.Port)
	assert.Equal(t, `{"alice":"k"}`, cfg.APIKeys)
	assert.Equal(t, `["alice"]`, cfg.AdminUsers)
	assert.Equal(t, BackendGCS, cfg.StoreBackend)
	assert.True(t, cfg.EnablePublish)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.CORSAllowedOrigins)
	assert.NoError(t, cfg.Validate())
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{Port: "3000", StoreBackend: BackendFile, DataFile: "data/w.json", EventsTopic: DefaultTopic}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "valid", mutate: func(c *Config) {}},
		{name: "bad port", mutate: func(c *Config) { c.Port = "http" }, wantErr: "invalid PORT"},
		{name: "port out of range", mutate: func(c *Config) { c.Port = "70000" }, wantErr: "invalid PORT"},
		{name: "unknown backend", mutate: func(c *Config) { c.StoreBackend = "s3" }, wantErr: "invalid STORE_BACKEND"},
		{name: "gcs without bucket", mutate: func(c *Config) { c.StoreBackend = BackendGCS }, wantErr: "GCS_BUCKET"},
		{name: "publish without topic", mutate: func(c *Config) { c.EnablePublish = true; c.EventsTopic = "" }, wantErr: "WORKOUT_EVENTS_TOPIC"},
		// Credentials are checked per request, not at startup
		{name: "malformed keys accepted", mutate: func(c *Config) { c.APIKeys = "{oops" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)
			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
