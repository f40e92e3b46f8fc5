package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testConfig = `api:
  environment: "development"
  port: "8080"
  base_url: "localhost:8080"
  session_signing_key: "test-key"
  session_ttl_hours: 12

admin:
  email: "admin@example.com"
  password: "secret"

gin:
  mode: "test"

postgres:
  host: "localhost"
  port: "5432"
  user: "postgres"
  password: "postgres"
  db_name: "eventdesk"
  ssl_mode: "disable"

stripe:
  secret_key: ""
`

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "config.yml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, t.TempDir(), testConfig)

	conf, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "8080", conf.API.Port)
	assert.Equal(t, "test-key", conf.API.SessionSigningKey)
	assert.Equal(t, 12, conf.API.SessionTTLHours)
	assert.Equal(t, "admin@example.com", conf.Admin.Email)
	assert.Equal(t, "eventdesk", conf.Postgres.DBName)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.yml"))
	assert.Error(t, err)
}

func TestLoadedConfigImmutableAfterFileEdit(t *testing.T) {
	dir := t.TempDir()
	path := writeConfig(t, dir, testConfig)

	conf, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, "8080", conf.API.Port)

	// Rewrite the watched file; the already-loaded config must keep
	// serving the values it started with.
	require.NoError(t, os.WriteFile(path, []byte(`api:
  environment: "development"
  port: "9999"
  base_url: "localhost:9999"
  session_signing_key: "rotated"
  session_ttl_hours: 1
`), 0o644))

	time.Sleep(300 * time.Millisecond)

	assert.Equal(t, "8080", conf.API.Port)
	assert.Equal(t, "test-key", conf.API.SessionSigningKey)
	assert.Equal(t, 12, conf.API.SessionTTLHours)
}
