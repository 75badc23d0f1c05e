package mcpserver

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

// clearXSDMODELEnv clears all XSDMODEL_* env vars to isolate tests from the ambient environment.
func clearXSDMODELEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"XSDMODEL_CACHE_ENABLED", "XSDMODEL_CACHE_MAX_SIZE",
		"XSDMODEL_CACHE_FILE_TTL", "XSDMODEL_CACHE_URL_TTL",
		"XSDMODEL_CACHE_CONTENT_TTL",
		"XSDMODEL_INSPECT_LIMIT", "XSDMODEL_INSPECT_DETAIL_LIMIT",
		"XSDMODEL_MAX_LIMIT", "XSDMODEL_MAX_INLINE_SIZE",
		"XSDMODEL_ALLOW_PRIVATE_IPS", "XSDMODEL_LANGUAGE",
		"XSDMODEL_SAMPLE_SEED", "XSDMODEL_SAMPLE_DEPTH",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearXSDMODELEnv(t)

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 5*time.Minute, c.CacheURLTTL)
	assert.Equal(t, 15*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 100, c.InspectLimit)
	assert.Equal(t, 25, c.InspectDetailLimit)
	assert.Equal(t, 1000, c.MaxLimit)
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
	assert.False(t, c.AllowPrivateIPs)
	assert.Equal(t, "ts", c.Language)
	assert.Equal(t, int64(1), c.SampleSeed)
	assert.Equal(t, 4, c.SampleDepth)
}

func TestLoadConfig_EnvOverrides(t *testing.T) {
	clearXSDMODELEnv(t)
	t.Setenv("XSDMODEL_CACHE_ENABLED", "false")
	t.Setenv("XSDMODEL_CACHE_MAX_SIZE", "50")
	t.Setenv("XSDMODEL_CACHE_FILE_TTL", "30m")
	t.Setenv("XSDMODEL_CACHE_URL_TTL", "2m")
	t.Setenv("XSDMODEL_CACHE_CONTENT_TTL", "10m")
	t.Setenv("XSDMODEL_INSPECT_LIMIT", "200")
	t.Setenv("XSDMODEL_INSPECT_DETAIL_LIMIT", "50")
	t.Setenv("XSDMODEL_MAX_LIMIT", "500")
	t.Setenv("XSDMODEL_MAX_INLINE_SIZE", "5242880")
	t.Setenv("XSDMODEL_ALLOW_PRIVATE_IPS", "true")
	t.Setenv("XSDMODEL_LANGUAGE", "go")
	t.Setenv("XSDMODEL_SAMPLE_SEED", "42")
	t.Setenv("XSDMODEL_SAMPLE_DEPTH", "2")

	c := loadConfig()

	assert.False(t, c.CacheEnabled)
	assert.Equal(t, 50, c.CacheMaxSize)
	assert.Equal(t, 30*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 2*time.Minute, c.CacheURLTTL)
	assert.Equal(t, 10*time.Minute, c.CacheContentTTL)
	assert.Equal(t, 200, c.InspectLimit)
	assert.Equal(t, 50, c.InspectDetailLimit)
	assert.Equal(t, 500, c.MaxLimit)
	assert.Equal(t, int64(5242880), c.MaxInlineSize)
	assert.True(t, c.AllowPrivateIPs)
	assert.Equal(t, "go", c.Language)
	assert.Equal(t, int64(42), c.SampleSeed)
	assert.Equal(t, 2, c.SampleDepth)
}

func TestLoadConfig_InvalidValues_UseDefaults(t *testing.T) {
	clearXSDMODELEnv(t)
	t.Setenv("XSDMODEL_CACHE_MAX_SIZE", "banana")
	t.Setenv("XSDMODEL_CACHE_FILE_TTL", "not-a-duration")
	t.Setenv("XSDMODEL_CACHE_ENABLED", "maybe")
	t.Setenv("XSDMODEL_INSPECT_LIMIT", "-5")
	t.Setenv("XSDMODEL_LANGUAGE", "java")
	t.Setenv("XSDMODEL_MAX_INLINE_SIZE", "abc")
	t.Setenv("XSDMODEL_MAX_LIMIT", "0")
	t.Setenv("XSDMODEL_SAMPLE_DEPTH", "-1")

	c := loadConfig()

	assert.True(t, c.CacheEnabled)
	assert.Equal(t, 10, c.CacheMaxSize)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.Equal(t, 100, c.InspectLimit)
	assert.Equal(t, "ts", c.Language, "invalid language should fall back to ts")
	assert.Equal(t, int64(10*1024*1024), c.MaxInlineSize)
	assert.Equal(t, 1000, c.MaxLimit)
	assert.Equal(t, 4, c.SampleDepth)
}

func TestLoadConfig_PartialOverrides(t *testing.T) {
	clearXSDMODELEnv(t)
	t.Setenv("XSDMODEL_INSPECT_LIMIT", "42")
	t.Setenv("XSDMODEL_CACHE_URL_TTL", "10m")

	c := loadConfig()

	assert.Equal(t, 42, c.InspectLimit)
	assert.Equal(t, 10*time.Minute, c.CacheURLTTL)
	assert.Equal(t, 25, c.InspectDetailLimit)
	assert.Equal(t, 15*time.Minute, c.CacheFileTTL)
	assert.True(t, c.CacheEnabled)
}
