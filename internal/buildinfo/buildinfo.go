package buildinfo

import (
	"runtime/debug"
	"strings"
)

// Set at build time via -ldflags -X. Defaults keep local builds usable.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// DisplayVersion returns a user-facing version string. Unset or "dev"
// versions fall back to the module version embedded by `go install`.
func DisplayVersion() string {
	v := strings.TrimSpace(Version)
	if v == "" || v == "dev" {
		if bi, ok := debug.ReadBuildInfo(); ok {
			mv := strings.TrimSpace(bi.Main.Version)
			if mv != "" && mv != "(devel)" {
				v = mv
			}
		}
	}
	if v == "" || v == "dev" || v == "(devel)" {
		return "dev"
	}
	if v[0] >= '0' && v[0] <= '9' {
		return "v" + v
	}
	return v
}
