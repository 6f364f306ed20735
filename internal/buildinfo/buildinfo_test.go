package buildinfo_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ricirt/infra-simulation-api/internal/buildinfo"
)

func TestRead_Defaults(t *testing.T) {
	v := buildinfo.Read(buildinfo.StaticEnvironment{})
	assert.Equal(t, buildinfo.VersionInfo{Version: "0.1.0", Commit: "dev"}, v)
	assert.Equal(t, buildinfo.Default(), v)
}

func TestRead_NilEnvironment(t *testing.T) {
	assert.Equal(t, buildinfo.Default(), buildinfo.Read(buildinfo.StaticEnvironment(nil)))
}

func TestRead_Overrides(t *testing.T) {
	v := buildinfo.Read(buildinfo.StaticEnvironment{
		"APP_VERSION": "1.2.3",
		"GIT_SHA":     "abc123",
	})
	assert.Equal(t, "1.2.3", v.Version)
	assert.Equal(t, "abc123", v.Commit)
}

func TestRead_PartialOverride(t *testing.T) {
	v := buildinfo.Read(buildinfo.StaticEnvironment{"GIT_SHA": "deadbeef"})
	assert.Equal(t, "0.1.0", v.Version)
	assert.Equal(t, "deadbeef", v.Commit)
}

func TestRead_SetButEmptyIsNotDefaulted(t *testing.T) {
	v := buildinfo.Read(buildinfo.StaticEnvironment{
		"APP_VERSION": "",
		"GIT_SHA":     "",
	})
	assert.Equal(t, buildinfo.VersionInfo{Version: "", Commit: ""}, v)
}

func TestRead_OSEnvironment(t *testing.T) {
	t.Setenv("APP_VERSION", "9.9.9")
	t.Setenv("GIT_SHA", "cafef00d")

	v := buildinfo.Read(buildinfo.OSEnvironment{})
	assert.Equal(t, buildinfo.VersionInfo{Version: "9.9.9", Commit: "cafef00d"}, v)
}

func TestRead_OSEnvironmentSetButEmpty(t *testing.T) {
	t.Setenv("APP_VERSION", "")
	t.Setenv("GIT_SHA", "")

	v := buildinfo.Read(buildinfo.OSEnvironment{})
	assert.Equal(t, buildinfo.VersionInfo{Version: "", Commit: ""}, v)
}
