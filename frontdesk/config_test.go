package frontdesk

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigMissingFile(t *testing.T) {
	chdir(t, t.TempDir())
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "missing.yml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

func TestLoadConfigFile(t *testing.T) {
	chdir(t, t.TempDir())
	path := filepath.Join(t.TempDir(), "frontdesk.yml")
	data := []byte(`port: 8080
cookie_name: desk
db_path: /var/lib/frontdesk/desk.db
session_ttl: 12h
seed_demo_data: false
`)
	require.NoError(t, os.WriteFile(path, data, 0o600))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, uint16(8080), cfg.Port)
	assert.Equal(t, "desk", cfg.CookieName)
	assert.Equal(t, "/var/lib/frontdesk/desk.db", cfg.DBPath)
	assert.Equal(t, 12*time.Hour, cfg.SessionTTL)
	assert.False(t, cfg.SeedDemoData)
	// untouched keys keep their defaults
	assert.Equal(t, "./assets", cfg.AssetsDir)
	assert.Equal(t, 100, cfg.QueueLength)
}

func TestLoadConfigInvalidFile(t *testing.T) {
	chdir(t, t.TempDir())
	path := filepath.Join(t.TempDir(), "frontdesk.yml")
	require.NoError(t, os.WriteFile(path, []byte("port: [1, 2\n"), 0o600))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestLoadConfigEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(EnvPort, "9090")
	t.Setenv(EnvGINServer, "https://gin.example.org")
	t.Setenv(EnvSessionTTL, "30m")

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, uint16(9090), cfg.Port)
	assert.Equal(t, "https://gin.example.org", cfg.GINServer)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
}

func TestLoadConfigDotEnv(t *testing.T) {
	dir := t.TempDir()
	chdir(t, dir)
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte("FRONTDESK_COOKIE=fromdotenv\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv(EnvCookieName) })

	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "fromdotenv", cfg.CookieName)
}

func TestLoadConfigBadEnv(t *testing.T) {
	chdir(t, t.TempDir())
	t.Setenv(EnvPort, "70000")
	_, err := LoadConfig("")
	assert.Error(t, err)

	t.Setenv(EnvPort, "")
	t.Setenv(EnvSessionTTL, "soon")
	_, err = LoadConfig("")
	assert.Error(t, err)
}

// chdir changes the working directory for the duration of the test and
// restores it on cleanup (equivalent of testing.T.Chdir, which needs Go 1.24).
func chdir(t *testing.T, dir string) {
	t.Helper()
	old, err := os.Getwd()
	require.NoError(t, err)
	require.NoError(t, os.Chdir(dir))
	t.Cleanup(func() { _ = os.Chdir(old) })
}
