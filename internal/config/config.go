// Package config resolves the DeepL credential, the API base URL and the log
// level from flags, the environment and the user config file.
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

const (
	// APIKeyEnv holds the DeepL authentication key.
	APIKeyEnv = "DEEPL_API_KEY"

	// BaseURLEnv overrides DefaultBaseURL.
	BaseURLEnv = "DEEPL_API_BASE"

	// LogLevelEnv selects the slog level: debug, info, warn or error.
	LogLevelEnv = "TREIN_LOG_LEVEL"

	// DefaultBaseURL is the DeepL Free API host.
	DefaultBaseURL = "https://api-free.deepl.com"

	appDir     = "trein"
	configFile = "config.toml"
)

// ErrNoAPIKey is returned when no credential source yields a value.
var ErrNoAPIKey = errors.New("no DeepL API key configured")

// LookupEnv has the signature of os.LookupEnv.
type LookupEnv func(key string) (string, bool)

// Env reads configuration from a lookup function, so tests never have to
// touch the process environment.
type Env struct {
	Lookup   LookupEnv
	ReadFile func(name string) ([]byte, error)
}

// FromOS returns an Env backed by the process environment and filesystem.
func FromOS() Env {
	return Env{Lookup: os.LookupEnv, ReadFile: os.ReadFile}
}

func (e Env) get(key string) string {
	if e.Lookup == nil {
		return ""
	}
	v, _ := e.Lookup(key)
	return v
}

// ResolveAPIKey returns the DeepL key, trying in order: the flag value, the
// DEEPL_API_KEY variable, then the config file candidates.
func (e Env) ResolveAPIKey(flagValue string) (string, error) {
	if k := strings.TrimSpace(flagValue); k != "" {
		return k, nil
	}

	if k := strings.TrimSpace(e.get(APIKeyEnv)); k != "" {
		return k, nil
	}

	for _, path := range e.ConfigPaths() {
		k, err := e.readKeyFile(path)
		if err != nil {
			slog.Debug("config file not usable", "path", path, "error", err)
			continue
		}
		if k != "" {
			slog.Debug("API key loaded from config file", "path", path)
			return k, nil
		}
	}

	return "", fmt.Errorf("%w: pass --deepl-api-key, set $%s, or create $XDG_CONFIG_HOME/%s/%s (or $HOME/.config/%s/%s) with a single line %s=...",
		ErrNoAPIKey, APIKeyEnv, appDir, configFile, appDir, configFile, APIKeyEnv)
}

// ConfigPaths lists the config file candidates in lookup order.
func (e Env) ConfigPaths() []string {
	var paths []string
	if xdg := e.get("XDG_CONFIG_HOME"); xdg != "" {
		paths = append(paths, filepath.Join(xdg, appDir, configFile))
	}
	if home := e.get("HOME"); home != "" {
		paths = append(paths, filepath.Join(home, ".config", appDir, configFile))
	}
	return paths
}

func (e Env) readKeyFile(path string) (string, error) {
	read := e.ReadFile
	if read == nil {
		read = os.ReadFile
	}
	data, err := read(path)
	if err != nil {
		return "", err
	}
	return ParseKeyLine(string(data)), nil
}

// ParseKeyLine extracts the key from config file content holding either
// "DEEPL_API_KEY=value" or a bare value.
func ParseKeyLine(content string) string {
	line := strings.TrimSpace(content)
	if rest, ok := strings.CutPrefix(line, APIKeyEnv+"="); ok {
		return strings.TrimSpace(rest)
	}
	return line
}

// BaseURL returns the DeepL API base URL without a trailing slash.
func (e Env) BaseURL() string {
	base := strings.TrimSpace(e.get(BaseURLEnv))
	if base == "" {
		base = DefaultBaseURL
	}
	return strings.TrimRight(base, "/")
}

// LogLevel maps TREIN_LOG_LEVEL to a slog level. Unset or unknown values
// give slog.LevelWarn so a normal run prints only the result.
func (e Env) LogLevel() slog.Level {
	switch strings.ToLower(strings.TrimSpace(e.get(LogLevelEnv))) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
