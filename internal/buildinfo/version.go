// Package buildinfo reports which flowgrid binary is running.
//
// Release builds stamp the variables below with ldflags:
//
//	go build -ldflags "-X github.com/katalvlaran/flowgrid/internal/buildinfo.Version=v0.3.0 \
//	    -X github.com/katalvlaran/flowgrid/internal/buildinfo.Commit=$(git rev-parse HEAD) \
//	    -X github.com/katalvlaran/flowgrid/internal/buildinfo.Date=$(date -u +%Y-%m-%dT%H:%M:%SZ)"
//
// A plain `go install` leaves them unset; Get then falls back to the module
// version and VCS stamps the toolchain embeds in the binary.
package buildinfo

import (
	"fmt"
	"runtime/debug"
)

// Unset values, also the defaults for a development build.
const (
	devVersion = "dev"
	noCommit   = "none"
	noDate     = "unknown"
)

var (
	Version = devVersion
	Commit  = noCommit
	Date    = noDate
)

// Info is the resolved build information.
type Info struct {
	Version string
	Commit  string
	Date    string
}

// readBuildInfo is swapped in tests.
var readBuildInfo = debug.ReadBuildInfo

// Get merges the ldflags values with the embedded build info. Explicit
// ldflags always win.
func Get() Info {
	info := Info{Version: Version, Commit: Commit, Date: Date}
	bi, ok := readBuildInfo()
	if !ok {
		return info
	}
	if info.Version == devVersion && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		info.Version = bi.Main.Version
	}
	for _, s := range bi.Settings {
		switch {
		case s.Key == "vcs.revision" && info.Commit == noCommit:
			info.Commit = s.Value
		case s.Key == "vcs.time" && info.Date == noDate:
			info.Date = s.Value
		}
	}
	return info
}

// ShortCommit trims the commit hash to 12 characters.
func (i Info) ShortCommit() string {
	if len(i.Commit) > 12 {
		return i.Commit[:12]
	}
	return i.Commit
}

func (i Info) String() string {
	return fmt.Sprintf("version: %s\ncommit: %s\nbuilt: %s", i.Version, i.ShortCommit(), i.Date)
}

// String describes the running binary.
func String() string {
	return Get().String()
}

// Template is the cobra version template.
func Template() string {
	i := Get()
	return fmt.Sprintf("{{.Name}} %s (%s, %s)\n", i.Version, i.ShortCommit(), i.Date)
}
