// Package version reports the build version stamped into the binary, for the
// CLI --version flag and the client User-Agent header.
package version

import (
	"runtime/debug"
	"sync"
)

const versionDevel = "devel"

// version is overridden with -ldflags at release time. A `go install` build
// has no ldflags, so Get falls back to the module version recorded in the
// build info.
var version = versionDevel

var once sync.Once

func Get() string {
	once.Do(func() {
		if version != versionDevel {
			return
		}
		info, ok := debug.ReadBuildInfo()
		if !ok {
			return
		}
		if v := info.Main.Version; v != "" && v != "("+versionDevel+")" {
			version = v
		}
	})
	return version
}
