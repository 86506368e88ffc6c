package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	sharedConfig "github.com/tcworld/magadmin/internal/shared/config"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))
	return path
}

func TestLoad_FileDefaultsAndEnv(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	path := writeConfig(t, `
database:
  driver: sqlite
  sqlite_path: test.db
report:
  default_char_limit: 30
`)
	t.Setenv("MAGADMIN_SERVER_PORT", "9001")

	cfg, err := Load("production", path)
	require.NoError(t, err)

	assert.Equal(t, sharedConfig.DriverSQLite, cfg.Database.Driver)
	assert.Equal(t, "test.db", cfg.Database.GetDSN())
	assert.Equal(t, 30, cfg.Report.DefaultCharLimit)
	assert.Equal(t, 9001, cfg.Server.Port)
	assert.Equal(t, "production", cfg.Server.Mode)
	assert.Equal(t, "subscriber_labels.pdf", cfg.Report.FileName)
	assert.Equal(t, 10, cfg.Auth.LoginAttemptsPerMinute)
	assert.Same(t, cfg, Get())
}

func TestLoad_RejectsInvalidValues(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"unknown driver", "database:\n  driver: postgres\n"},
		{"char limit below one", "report:\n  default_char_limit: 0\n"},
		{"token expiry below one minute", "auth:\n  jwt:\n    access_exp_minutes: 0\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			viper.Reset()
			t.Cleanup(viper.Reset)

			_, err := Load("", writeConfig(t, tt.body))
			assert.Error(t, err)
		})
	}
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	viper.Reset()
	t.Cleanup(viper.Reset)

	_, err := Load("", filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
