package buildinfo

import (
	"runtime/debug"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stamp sets the ldflags variables and a fake embedded build info for one test.
func stamp(t *testing.T, version, commit, date string, bi *debug.BuildInfo) {
	t.Helper()
	oldV, oldC, oldD, oldRead := Version, Commit, Date, readBuildInfo
	t.Cleanup(func() { Version, Commit, Date, readBuildInfo = oldV, oldC, oldD, oldRead })

	Version, Commit, Date = version, commit, date
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, bi != nil }
}

func TestGet_LdflagsWin(t *testing.T) {
	stamp(t, "v1.2.3", "abc123", "2026-01-02", &debug.BuildInfo{
		Main:     debug.Module{Version: "v9.9.9"},
		Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "ffff"}},
	})

	assert.Equal(t, Info{Version: "v1.2.3", Commit: "abc123", Date: "2026-01-02"}, Get())
	assert.Equal(t, "version: v1.2.3\ncommit: abc123\nbuilt: 2026-01-02", String())
	assert.Equal(t, "{{.Name}} v1.2.3 (abc123, 2026-01-02)\n", Template())
}

func TestGet_EmbeddedFallback(t *testing.T) {
	stamp(t, devVersion, noCommit, noDate, &debug.BuildInfo{
		Main: debug.Module{Version: "v0.4.0"},
		Settings: []debug.BuildSetting{
			{Key: "vcs.revision", Value: "0123456789abcdef0123"},
			{Key: "vcs.time", Value: "2026-10-01T12:00:00Z"},
		},
	})

	info := Get()
	assert.Equal(t, "v0.4.0", info.Version)
	assert.Equal(t, "0123456789ab", info.ShortCommit())
	assert.Equal(t, "2026-10-01T12:00:00Z", info.Date)
}

func TestGet_DevelBuild(t *testing.T) {
	stamp(t, devVersion, noCommit, noDate, &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}})
	assert.Equal(t, Info{Version: "dev", Commit: "none", Date: "unknown"}, Get())

	stamp(t, devVersion, noCommit, noDate, nil)
	assert.Equal(t, "dev", Get().Version)
}
