package commands

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultPaths_HonorXDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	t.Setenv("XDG_DATA_HOME", "/xdg/data")
	t.Setenv("XDG_STATE_HOME", "/xdg/state")

	assert.Equal(t, filepath.Join("/xdg/config", "mindflow", "config.yaml"), DefaultConfigPath())
	assert.Equal(t, filepath.Join("/xdg/data", "mindflow"), DefaultDataDir())
	assert.Equal(t, filepath.Join("/xdg/state", "mindflow", "mindflow.log"), DefaultLogFile())
}

func TestDefaultPaths_HomeFallback(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_DATA_HOME", "")

	assert.Equal(t, filepath.Join(home, ".config", "mindflow", "config.yaml"), DefaultConfigPath())
	assert.Equal(t, filepath.Join(home, ".local", "share", "mindflow"), DefaultDataDir())
}
