// Package buildinfo resolves the version metadata reported by the service.
//
// Values come from APP_VERSION and GIT_SHA. They are read through an
// Environment rather than os.Getenv directly so callers decide where the
// values live: the real process environment in production, a fixed map in tests.
package buildinfo

import (
	"os"
	"strings"
)

// Title is the human-readable service name shown in startup metadata.
const Title = "Cloud Native Infra Simulation API"

const (
	VersionKey = "APP_VERSION"
	CommitKey  = "GIT_SHA"

	DefaultVersion = "0.1.0"
	DefaultCommit  = "dev"
)

// VersionInfo is the payload served by GET /version.
type VersionInfo struct {
	Version string `json:"version"`
	Commit  string `json:"commit"`
}

// Default returns the VersionInfo used when nothing is configured.
func Default() VersionInfo {
	return VersionInfo{Version: DefaultVersion, Commit: DefaultCommit}
}

// Environment supplies the key/value pairs VersionInfo is parsed from.
type Environment interface {
	Environ() map[string]string
}

// OSEnvironment reads the live process environment on every call.
type OSEnvironment struct{}

func (OSEnvironment) Environ() map[string]string {
	vars := os.Environ()
	m := make(map[string]string, len(vars))
	for _, kv := range vars {
		if k, v, ok := strings.Cut(kv, "="); ok {
			m[k] = v
		}
	}
	return m
}

// StaticEnvironment is a fixed set of values.
type StaticEnvironment map[string]string

func (s StaticEnvironment) Environ() map[string]string {
	if s == nil {
		return map[string]string{}
	}
	return s
}

// Read builds a fresh VersionInfo from e. Defaults apply only to keys that
// are absent; a key set to the empty string reports the empty string.
func Read(e Environment) VersionInfo {
	vars := e.Environ()
	return VersionInfo{
		Version: lookup(vars, VersionKey, DefaultVersion),
		Commit:  lookup(vars, CommitKey, DefaultCommit),
	}
}

func lookup(vars map[string]string, key, def string) string {
	if v, ok := vars[key]; ok {
		return v
	}
	return def
}

var (
	_ Environment = OSEnvironment{}
	_ Environment = StaticEnvironment(nil)
)
