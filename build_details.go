package xsdmodel

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// Set via ldflags at release time.
var (
	version   = "dev"
	commit    = "unknown"
	buildTime = "unknown"
)

// readBuildInfo is replaced in tests.
var readBuildInfo = debug.ReadBuildInfo

// Version returns the release version. Binaries built with go install carry
// their module version instead; anything else reports "dev".
func Version() string {
	if version != "dev" {
		return version
	}
	if bi, ok := readBuildInfo(); ok && bi.Main.Version != "" && bi.Main.Version != "(devel)" {
		return bi.Main.Version
	}
	return version
}

// Commit returns the git commit the binary was built from, or "unknown".
// Falls back to the vcs.revision build setting, shortened to 7 characters.
func Commit() string {
	if commit != "unknown" {
		return commit
	}
	if rev := buildSetting("vcs.revision"); rev != "" {
		return rev[:min(7, len(rev))]
	}
	return commit
}

// BuildTime returns the RFC3339 build timestamp, or "unknown".
func BuildTime() string {
	if buildTime != "unknown" {
		return buildTime
	}
	if t := buildSetting("vcs.time"); t != "" {
		return t
	}
	return buildTime
}

func buildSetting(key string) string {
	bi, ok := readBuildInfo()
	if !ok {
		return ""
	}
	for _, s := range bi.Settings {
		if s.Key == key {
			return s.Value
		}
	}
	return ""
}

// GoVersion returns the Go runtime version.
func GoVersion() string {
	return runtime.Version()
}

// UserAgent returns the User-Agent header sent when fetching remote schemas.
func UserAgent() string {
	return "xsdmodel/" + Version()
}

// BuildInfo returns all build metadata, one "Label: value" pair per line.
func BuildInfo() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Version: %s\n", Version())
	fmt.Fprintf(&b, "Commit: %s\n", Commit())
	fmt.Fprintf(&b, "Build Time: %s\n", BuildTime())
	fmt.Fprintf(&b, "Go Version: %s", GoVersion())
	return b.String()
}
