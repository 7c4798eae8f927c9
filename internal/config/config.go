// Package config resolves runtime configuration from flags, environment
// variables, and an optional config file through Viper.
package config

import (
	"os"
	"strings"

	"github.com/spf13/viper"

	"github.com/paperfold/formsync/pkg/errors"
)

// Configuration keys.
const (
	KeyAPIKey  = "api_key"
	KeyBaseURL = "base_url"
	KeyCatalog = "catalog"
)

// Defaults.
const (
	DefaultBaseURL = "https://api.docuseal.com"
	DefaultCatalog = "templates.json"
	EnvPrefix      = "FORMSYNC"
)

// Init wires Viper's environment fallthrough: every key resolves from
// FORMSYNC_<KEY> when not set by flag or config file.
func Init() {
	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	viper.AutomaticEnv()

	viper.SetDefault(KeyBaseURL, DefaultBaseURL)
	viper.SetDefault(KeyCatalog, DefaultCatalog)
}

// GetString reads a key from Viper, falling back to the raw OS environment
// variable with the FORMSYNC prefix.
func GetString(key string) string {
	if v := viper.GetString(key); v != "" {
		return v
	}
	env := EnvPrefix + "_" + strings.ToUpper(strings.NewReplacer(".", "_", "-", "_").Replace(key))
	return os.Getenv(env)
}

// APIKey returns the configured remote service API key, or an error when it
// is missing.
func APIKey() (string, error) {
	key := GetString(KeyAPIKey)
	if key == "" {
		return "", errors.ErrAPIKeyRequired
	}
	return key, nil
}

// BaseURL returns the remote service base URL.
func BaseURL() string {
	if v := GetString(KeyBaseURL); v != "" {
		return v
	}
	return DefaultBaseURL
}

// CatalogPath returns the local catalog file path.
func CatalogPath() string {
	if v := GetString(KeyCatalog); v != "" {
		return v
	}
	return DefaultCatalog
}
