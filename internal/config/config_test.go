package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	s, rest, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, 0.5, s.MinConfidence)
	assert.Empty(t, s.OutDir)
	assert.False(t, s.Debug)
	assert.Empty(t, rest)
}

func TestLoadFlags(t *testing.T) {
	s, rest, err := Load([]string{"-min-confidence", "0.8", "-out", "dist", "-debug", "app.js", "lib.js"})
	require.NoError(t, err)

	assert.Equal(t, 0.8, s.MinConfidence)
	assert.Equal(t, "dist", s.OutDir)
	assert.True(t, s.Debug)
	assert.Equal(t, []string{"app.js", "lib.js"}, rest)
}

func TestLoadEnvironmentOverrides(t *testing.T) {
	t.Setenv("JS2TS_MIN_CONFIDENCE", "0.25")
	t.Setenv("JS2TS_OUT_DIR", "build")
	t.Setenv("JS2TS_DEBUG", "true")

	s, _, err := Load(nil)
	require.NoError(t, err)

	assert.Equal(t, 0.25, s.MinConfidence)
	assert.Equal(t, "build", s.OutDir)
	assert.True(t, s.Debug)
}

func TestLoadFlagBeatsEnvironment(t *testing.T) {
	t.Setenv("JS2TS_MIN_CONFIDENCE", "0.25")

	s, _, err := Load([]string{"-min-confidence", "0.9"})
	require.NoError(t, err)

	assert.Equal(t, 0.9, s.MinConfidence)
}

func TestLoadRejectsOutOfRangeConfidence(t *testing.T) {
	_, _, err := Load([]string{"-min-confidence", "1.5"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "min-confidence")
}

func TestLoadRejectsMalformedEnvironment(t *testing.T) {
	t.Setenv("JS2TS_MIN_CONFIDENCE", "very sure")

	_, _, err := Load(nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "JS2TS_MIN_CONFIDENCE")
}
