// Copyright Amazon.com, Inc. or its affiliates. All Rights Reserved.
// SPDX-License-Identifier: Apache-2.0

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, "text", cfg.Defaults.Format)
	assert.False(t, cfg.Defaults.NoColor)
	assert.False(t, cfg.Defaults.Recursive)
}

func TestLoadConfig_EmptyPathUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig("")
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Defaults.Format)
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	content := `defaults:
  format: json
  no_color: true
  verbose: true
  recursive: true
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "json", cfg.Defaults.Format)
	assert.True(t, cfg.Defaults.NoColor)
	assert.True(t, cfg.Defaults.Verbose)
	assert.False(t, cfg.Defaults.Quiet)
	assert.True(t, cfg.Defaults.Recursive)
}

func TestLoadConfig_MissingFormatFallsBack(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("defaults:\n  verbose: true\n"), 0644))

	cfg, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "text", cfg.Defaults.Format)
}

func TestLoadConfig_MissingFile(t *testing.T) {
	cfg, err := LoadConfig(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
	require.NotNil(t, cfg)
	assert.Equal(t, "text", cfg.Defaults.Format, "defaults survive a load failure")
}

func TestLoadConfig_Malformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("defaults: [not a map"), 0644))

	_, err := LoadConfig(path)
	assert.Error(t, err)
}

func TestFindConfigFile_Home(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	assert.Equal(t, "", FindConfigFile())

	path := filepath.Join(home, ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte("defaults:\n  format: yaml\n"), 0644))
	assert.Equal(t, path, FindConfigFile())
}
