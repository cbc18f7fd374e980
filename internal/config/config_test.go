package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lumamap.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.False(t, cfg.CCMode)
	assert.Equal(t, "31 EDO", cfg.Tuning)

	cfg, err = Load(filepath.Join(t.TempDir(), "missing.json"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `{"cc_mode": true, "tuning": "31-esque regression", "verbose": true}`)

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.True(t, cfg.CCMode)
	assert.True(t, cfg.Verbose)

	sys, err := cfg.TuningSystem()
	require.NoError(t, err)
	assert.Equal(t, "31-esque Regression", sys.Name)
}

func TestLoadEmptyTuningFallsBack(t *testing.T) {
	cfg, err := Load(writeConfig(t, `{"tuning": ""}`))
	require.NoError(t, err)
	assert.Equal(t, "31 EDO", cfg.Tuning)
}

func TestLoadErrors(t *testing.T) {
	tests := map[string]string{
		"malformed":      `{"cc_mode": `,
		"unknown tuning": `{"tuning": "12 EDO"}`,
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, content))
			assert.Error(t, err)
		})
	}
}
