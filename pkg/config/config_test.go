package config

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	os.Setenv("SERVER_PORT", "9090")
	os.Setenv("DB_NAME", "edupress_test")
	os.Setenv("JWT_SECRET", "test-secret")
	os.Setenv("SENDER_EMAIL", "platform@example.com")
	defer func() {
		os.Unsetenv("SERVER_PORT")
		os.Unsetenv("DB_NAME")
		os.Unsetenv("JWT_SECRET")
		os.Unsetenv("SENDER_EMAIL")
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	assert.NotNil(t, cfg)
	assert.Equal(t, "9090", cfg.ServerPort)
	assert.Equal(t, "edupress_test", cfg.DBName)
	assert.Equal(t, "test-secret", cfg.JWTSecret)
	assert.Equal(t, "platform@example.com", cfg.SenderEmail)
}

func TestLoadConfig_Defaults(t *testing.T) {
	os.Unsetenv("SERVER_PORT")
	os.Unsetenv("DB_HOST")
	os.Unsetenv("REDIS_DB")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	assert.NotNil(t, cfg)
	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, "localhost", cfg.DBHost)
	assert.Equal(t, 0, cfg.RedisDB)
}

func TestLoadConfig_RedisDBParsing(t *testing.T) {
	os.Setenv("REDIS_DB", "3")
	defer os.Unsetenv("REDIS_DB")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, 3, cfg.RedisDB)
}

func TestLoadConfig_CORSOrigins(t *testing.T) {
	os.Setenv("CORS_ORIGINS", "https://app.example.com, https://admin.example.com")
	defer os.Unsetenv("CORS_ORIGINS")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, []string{"https://app.example.com", "https://admin.example.com"}, cfg.CORSOrigins)
}

func TestLoadConfig_CORSOriginsDefault(t *testing.T) {
	os.Unsetenv("CORS_ORIGINS")

	cfg, err := Load()
	assert.NoError(t, err)
	assert.Equal(t, []string{"http://localhost:3000", "http://127.0.0.1:3000"}, cfg.CORSOrigins)
}
