package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "config.yaml"), []byte(body), 0o600))
	return dir
}

func TestReadConfig_Defaults(t *testing.T) {
	dir := writeConfig(t, `
database:
  dbname: yomogi
salon:
  phone: 03-0000-0000
`)
	cfg, err := ReadConfig(dir)
	require.NoError(t, err)

	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.Equal(t, "yomogi", cfg.Database.DBName)
	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "JP", cfg.Salon.DefaultRegion)
	assert.Equal(t, "03-0000-0000", cfg.Salon.Phone)
	assert.Equal(t, 2, cfg.Diagnosis.NearTieMargin)
	assert.Equal(t, 64, cfg.Notification.QueueSize)
	assert.Empty(t, cfg.Redis.Addr)
}

func TestReadConfig_EnvOverrides(t *testing.T) {
	dir := writeConfig(t, "server:\n  port: 9000\n")
	t.Setenv("YOMOGI_SERVER_PORT", "9100")

	cfg, err := ReadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, 9100, cfg.Server.Port)
}

func TestReadConfig_DotEnv(t *testing.T) {
	dir := writeConfig(t, "server:\n  port: 9000\n")
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("YOMOGI_SERVER_PORT=9200\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("YOMOGI_SERVER_PORT") })

	cfg, err := ReadConfig(dir)
	require.NoError(t, err)
	assert.Equal(t, 9200, cfg.Server.Port)
}

func TestReadConfig_MissingFile(t *testing.T) {
	_, err := ReadConfig(t.TempDir())
	require.Error(t, err)

	t.Setenv("YOMOGI_DATABASE_HOST", "db")
	cfg, err := ReadConfig(t.TempDir())
	require.NoError(t, err)
	assert.Equal(t, "db", cfg.Database.Host)
}

func TestValidate(t *testing.T) {
	cfg := Config{Server: ServerConfig{Port: 8080}}
	require.NoError(t, cfg.Validate())

	cfg.Email.Enabled = true
	cfg.SMS.Enabled = true
	err := cfg.Validate()
	require.Error(t, err)
	for _, want := range []string{"email.smtp.host", "email.from", "email.admin_address", "sms.smsir.api_key"} {
		assert.Contains(t, err.Error(), want)
	}

	cfg = Config{}
	assert.ErrorContains(t, cfg.Validate(), "server.port")
}
