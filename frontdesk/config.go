package frontdesk

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
)

// Config containing all the configuration values for a service.
type Config struct {
	// Port the web server listens on.
	Port uint16 `yaml:"port"`
	// CookieName names the session cookie.  The flash cookie uses it as a
	// prefix.
	CookieName string `yaml:"cookie_name"`
	// DBPath is the sqlite database file.
	DBPath string `yaml:"db_path"`
	// AssetsDir is served under /assets/.  It holds loginguard.wasm and
	// wasm_exec.js.
	AssetsDir string `yaml:"assets_dir"`
	// GINServer, if set, authenticates users against a GIN (Gogs) server
	// instead of the local account table.
	GINServer string `yaml:"gin_server"`
	// SessionTTL is the lifetime of a session.  Zero never expires.
	SessionTTL time.Duration `yaml:"session_ttl"`
	// SecureCookie marks the session cookie Secure (HTTPS only).
	SecureCookie bool `yaml:"secure_cookie"`
	// QueueLength of the sign-in audit worker.
	QueueLength int `yaml:"queue_length"`
	// SeedDemoData fills an empty database with the demo roles, accounts
	// and hotels.
	SeedDemoData bool `yaml:"seed_demo_data"`
}

// DefaultConfig returns the configuration used when no file is given.
func DefaultConfig() Config {
	return Config{
		Port:         3000,
		CookieName:   "frontdesk",
		DBPath:       "./frontdesk.db",
		AssetsDir:    "./assets",
		SessionTTL:   7 * 24 * time.Hour,
		QueueLength:  100,
		SeedDemoData: true,
	}
}

// Environment variables overriding file values.
const (
	EnvPort       = "FRONTDESK_PORT"
	EnvDBPath     = "FRONTDESK_DB"
	EnvCookieName = "FRONTDESK_COOKIE"
	EnvAssetsDir  = "FRONTDESK_ASSETS"
	EnvGINServer  = "FRONTDESK_GIN_SERVER"
	EnvSessionTTL = "FRONTDESK_SESSION_TTL"
)

// LoadConfig reads the YAML file at path on top of DefaultConfig.  A missing
// file is not an error.  Variables from a .env file in the working
// directory, if present, and from the environment override the file.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	if path != "" {
		data, err := os.ReadFile(path)
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return cfg, err
		default:
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("parsing %s: %w", path, err)
			}
		}
	}

	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return cfg, fmt.Errorf("loading .env: %w", err)
	}
	if err := applyEnvOverrides(&cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := os.Getenv(EnvPort); v != "" {
		port, err := strconv.ParseUint(v, 10, 16)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvPort, v, err)
		}
		cfg.Port = uint16(port)
	}
	if v := os.Getenv(EnvDBPath); v != "" {
		cfg.DBPath = v
	}
	if v := os.Getenv(EnvCookieName); v != "" {
		cfg.CookieName = v
	}
	if v := os.Getenv(EnvAssetsDir); v != "" {
		cfg.AssetsDir = v
	}
	if v := os.Getenv(EnvGINServer); v != "" {
		cfg.GINServer = v
	}
	if v := os.Getenv(EnvSessionTTL); v != "" {
		ttl, err := time.ParseDuration(v)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvSessionTTL, v, err)
		}
		cfg.SessionTTL = ttl
	}
	return nil
}

// withDefaults fills zero values that would leave the service unusable.
func (cfg Config) withDefaults() Config {
	def := DefaultConfig()
	if cfg.Port == 0 {
		cfg.Port = def.Port
	}
	if cfg.CookieName == "" {
		cfg.CookieName = def.CookieName
	}
	if cfg.DBPath == "" {
		cfg.DBPath = def.DBPath
	}
	if cfg.AssetsDir == "" {
		cfg.AssetsDir = def.AssetsDir
	}
	return cfg
}
