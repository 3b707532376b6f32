// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package config

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestConfig sets XMLCMP_CFG_FILE to point to a test config file.
// Returns cleanup function that should be deferred.
func setupTestConfig(t *testing.T, testdataFile string) (cleanup func()) {
	t.Helper()

	configPath := filepath.Join("testdata", testdataFile)
	absPath, err := filepath.Abs(configPath)
	require.NoError(t, err, "failed to get absolute path for test config")

	t.Setenv("XMLCMP_CFG_FILE", absPath)

	// Reset the global Config to force reload
	Config = Type{}

	return func() {
		Config = Type{}
	}
}

func TestLoad(t *testing.T) {
	cleanup := setupTestConfig(t, "basic.yaml")
	defer cleanup()

	cfg, err := Load()
	require.NoError(t, err)
	assert.NotEmpty(t, cfg.Source)
	assert.NotEmpty(t, cfg.Data)
}

func TestLoadMissingFile(t *testing.T) {
	cleanup := setupTestConfig(t, "does-not-exist.yaml")
	defer cleanup()

	_, err := Load()
	assert.Error(t, err)
}

func TestGetString(t *testing.T) {
	cleanup := setupTestConfig(t, "basic.yaml")
	defer cleanup()
	_, _ = Load()

	tests := []struct {
		name     string
		key      string
		def      []string
		expected string
		wantErr  bool
	}{
		{
			name:     "nested key",
			key:      "colors.diff",
			expected: "#ffcccc",
		},
		{
			name:     "another nested key",
			key:      "colors.title",
			expected: "#b08800",
		},
		{
			name:    "missing key no default",
			key:     "colors.nope",
			wantErr: true,
		},
		{
			name:     "missing key with default",
			key:      "colors.nope",
			def:      []string{"#000000"},
			expected: "#000000",
		},
		{
			name:    "value is not a string",
			key:     "panel.width",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := GetString(tt.key, tt.def...)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestGetInt(t *testing.T) {
	cleanup := setupTestConfig(t, "basic.yaml")
	defer cleanup()
	_, _ = Load()

	got, err := GetInt("panel.width")
	assert.NoError(t, err)
	assert.Equal(t, 60, got)

	got, err = GetInt("panel.height", 10)
	assert.NoError(t, err)
	assert.Equal(t, 10, got)

	_, err = GetInt("colors.diff")
	assert.Error(t, err)
}

func TestNamespacedLookup(t *testing.T) {
	cleanup := setupTestConfig(t, "basic.yaml")
	defer cleanup()
	_, _ = Load()

	Config.Namespace = "compare"
	defer func() { Config.Namespace = "" }()

	// The namespaced key wins over the bare one.
	got, err := GetString("colors.diff")
	assert.NoError(t, err)
	assert.Equal(t, "#ccffcc", got)
}
