package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyDefaults_FillsMissingSections(t *testing.T) {
	cfg := &Config{}
	applyDefaults(cfg)

	assert.Equal(t, defaultMaxRequestBodySize, cfg.HTTP.MaxRequestBodySize)
	assert.Equal(t, defaultMaxUploadBodySize, cfg.HTTP.MaxUploadBodySize)
	assert.Equal(t, defaultRequestTimeout, cfg.HTTP.Timeouts.RequestTimeout)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, 3, cfg.Auth.MaxValidationAttempts)
	assert.Equal(t, 24*time.Hour, cfg.Auth.AccessTokenTTL)
	assert.Equal(t, defaultBucketURL, cfg.Storage.BucketURL)
	assert.Equal(t, defaultQRCodeSize, cfg.QRCode.Size)
	assert.Equal(t, defaultWorkerPort, cfg.Worker.Port)
	assert.NotNil(t, cfg.SMTP)
	assert.NotNil(t, cfg.PubSub)
	assert.NotNil(t, cfg.PDF)
}

func TestApplyDefaults_KeepsExplicitValues(t *testing.T) {
	cfg := &Config{
		Auth:     &AuthConfig{MaxValidationAttempts: 5, ResetTokenTTL: time.Minute},
		Database: &DatabaseConfig{Driver: "mysql"},
	}
	applyDefaults(cfg)

	assert.Equal(t, 5, cfg.Auth.MaxValidationAttempts)
	assert.Equal(t, time.Minute, cfg.Auth.ResetTokenTTL)
	assert.Equal(t, "mysql", cfg.Database.Driver)
}

func TestLoadWithEnv_EnvOverridesYAML(t *testing.T) {
	dir := t.TempDir()
	yaml := []byte(`http:
  port: 8080
  timeouts:
    requestTimeout: 3s
auth:
  maxValidationAttempts: 4
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "test.yaml"), yaml, 0o600))
	t.Chdir(dir)
	t.Setenv("HTTP_PORT", "9090")

	cfg, err := LoadWithEnv[Config]("test")
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.HTTP.Port)
	assert.Equal(t, 3*time.Second, cfg.HTTP.Timeouts.RequestTimeout)
	require.NotNil(t, cfg.Auth)
	assert.Equal(t, 4, cfg.Auth.MaxValidationAttempts)
}

func TestLoadWithEnv_MissingFile(t *testing.T) {
	t.Chdir(t.TempDir())

	_, err := LoadWithEnv[Config]("absent")
	assert.Error(t, err)
}
