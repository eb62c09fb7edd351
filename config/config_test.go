package config

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewDefaults(t *testing.T) {
	t.Setenv("CONFIG_DIR", t.TempDir())
	cfg, err := New()
	require.NoError(t, err)
	require.Equal(t, "nprofile", cfg.AppName)
	require.Equal(t, "info", cfg.LogLevel)
	require.Equal(t, 3335, cfg.Port)
	require.Equal(t, "/api", cfg.APIPath)
	require.False(t, cfg.URI)
	require.Empty(t, cfg.Relays)
}

func TestNewEnvFile(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("CONFIG_DIR", dir)
	t.Setenv("LOG_LEVEL", "trace")
	data := "PORT=4000\nLOG_LEVEL=debug\nRELAYS=wss://a.example.com,wss://b.example.com\nURI=true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(data), 0600))
	cfg, err := New()
	require.NoError(t, err)
	require.Equal(t, 4000, cfg.Port)
	// the environment wins over the file.
	require.Equal(t, "trace", cfg.LogLevel)
	require.True(t, cfg.URI)
	require.Equal(t, []string{"wss://a.example.com", "wss://b.example.com"}, cfg.Relays)
	require.Equal(t, dir, cfg.ConfigDir)
}

func TestPrintEnvAndHelp(t *testing.T) {
	t.Setenv("CONFIG_DIR", t.TempDir())
	cfg, err := New()
	require.NoError(t, err)
	var buf bytes.Buffer
	PrintEnv(cfg, &buf)
	require.Contains(t, buf.String(), "PORT=3335\n")
	require.Contains(t, buf.String(), "APP_NAME=nprofile\n")
	buf.Reset()
	PrintHelp(cfg, &buf)
	require.True(t, strings.Contains(buf.String(), "LOG_LEVEL"))
}

func TestNewBadPort(t *testing.T) {
	t.Setenv("CONFIG_DIR", t.TempDir())
	t.Setenv("PORT", "70000")
	_, err := New()
	require.Error(t, err)
}
