package xsdmodel

import (
	"runtime"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

// stubBuildInfo swaps the build metadata source for the duration of a test.
func stubBuildInfo(t *testing.T, bi *debug.BuildInfo) {
	t.Helper()
	orig := readBuildInfo
	readBuildInfo = func() (*debug.BuildInfo, bool) { return bi, bi != nil }
	t.Cleanup(func() { readBuildInfo = orig })
}

func TestVersion(t *testing.T) {
	tests := []struct {
		name string
		bi   *debug.BuildInfo
		want string
	}{
		{"no build info", nil, "dev"},
		{"devel module", &debug.BuildInfo{Main: debug.Module{Version: "(devel)"}}, "dev"},
		{"installed module", &debug.BuildInfo{Main: debug.Module{Version: "v0.4.1"}}, "v0.4.1"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stubBuildInfo(t, tt.bi)
			assert.Equal(t, tt.want, Version())
			assert.Equal(t, "xsdmodel/"+tt.want, UserAgent())
		})
	}
}

func TestVCSSettings(t *testing.T) {
	stubBuildInfo(t, &debug.BuildInfo{Settings: []debug.BuildSetting{
		{Key: "vcs.revision", Value: "3f9a1c2d8e7b6a5f4e3d2c1b0a9f8e7d6c5b4a39"},
		{Key: "vcs.time", Value: "2026-03-01T12:00:00Z"},
	}})
	assert.Equal(t, "3f9a1c2", Commit())
	assert.Equal(t, "2026-03-01T12:00:00Z", BuildTime())

	stubBuildInfo(t, &debug.BuildInfo{Settings: []debug.BuildSetting{{Key: "vcs.revision", Value: "abc"}}})
	assert.Equal(t, "abc", Commit())
	assert.Equal(t, "unknown", BuildTime())

	stubBuildInfo(t, nil)
	assert.Equal(t, "unknown", Commit())
}

func TestUserAgentIsHeaderSafe(t *testing.T) {
	ua := UserAgent()
	assert.True(t, strings.HasPrefix(ua, "xsdmodel/"), ua)
	assert.NotContains(t, ua, " ")
	assert.NotContains(t, ua, "\n")
	assert.NotContains(t, ua, "\r")
}

func TestBuildInfo(t *testing.T) {
	stubBuildInfo(t, nil)
	lines := strings.Split(BuildInfo(), "\n")
	assert.Equal(t, []string{
		"Version: dev",
		"Commit: unknown",
		"Build Time: unknown",
		"Go Version: " + runtime.Version(),
	}, lines)
	assert.Equal(t, runtime.Version(), GoVersion())
}
