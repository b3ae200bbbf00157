package config

import (
	"log/slog"
	"os"
	"sync"

	"github.com/joho/godotenv"
	"github.com/spf13/afero"
)

// Environment variables consulted by FromEnv.
const (
	EnvAPIKey       = "OPENAI_API_KEY"
	EnvOrganization = "OPENAI_ORGANIZATION"
)

// Configuration holds the credentials sent with every request.
type Configuration struct {
	APIKey       string
	Organization string
}

// IsZero reports whether neither field is set.
func (c Configuration) IsZero() bool {
	return c.APIKey == "" && c.Organization == ""
}

// merge fills the empty fields of c from other.
func (c Configuration) merge(other Configuration) Configuration {
	if c.APIKey == "" {
		c.APIKey = other.APIKey
	}
	if c.Organization == "" {
		c.Organization = other.Organization
	}
	return c
}

// FromEnv reads the credentials from the environment. A .env file in the
// working directory is loaded first; variables already set win over it.
func FromEnv() Configuration {
	_ = godotenv.Load()
	return Configuration{
		APIKey:       os.Getenv(EnvAPIKey),
		Organization: os.Getenv(EnvOrganization),
	}
}

var (
	defaultMu     sync.Mutex
	defaultCfg    Configuration
	defaultLoaded bool
)

// Default returns the process-wide configuration, resolving it on first use
// from the environment and then from the credential file. A missing file
// yields empty credentials.
func Default() Configuration {
	defaultMu.Lock()
	defer defaultMu.Unlock()

	if !defaultLoaded {
		defaultCfg = Resolve(afero.NewOsFs(), DefaultCredentialPath())
		defaultLoaded = true
	}
	return defaultCfg
}

// SetDefault replaces the process-wide configuration.
func SetDefault(cfg Configuration) {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultCfg = cfg
	defaultLoaded = true
}

// Resolve reads the environment and fills what it leaves empty from the
// credential file at path on fs. An unreadable file is logged and ignored.
func Resolve(fs afero.Fs, path string) Configuration {
	cfg := FromEnv()
	if cfg.APIKey != "" && cfg.Organization != "" {
		return cfg
	}
	if path == "" {
		return cfg
	}
	stored, err := NewCredentialStore(fs, path).Load()
	if err != nil {
		slog.Warn("ignoring unreadable credential file", "path", path, "error", err.Error())
		return cfg
	}
	return cfg.merge(stored)
}
