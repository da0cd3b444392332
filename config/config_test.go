package config

import (
	"image/color"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ndplot/types"
)

func TestLoadMissing(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "none.yaml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)

	cfg, err = Load("")
	require.NoError(t, err)
	assert.Equal(t, DefaultConfig(), cfg)
}

// TestLoadPartial 只覆盖文件中出现的字段
func TestLoadPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "ndplot.yaml")
	require.NoError(t, os.WriteFile(path, []byte("mode: dcc\npoint_select:\n  step: 0.01\nlog_level: debug\n"), 0644))
	cfg, err := Load(path)
	require.NoError(t, err)
	m, err := cfg.PlotMode()
	require.NoError(t, err)
	assert.Equal(t, types.ModeDCC, m)
	assert.Equal(t, 0.01, cfg.PointSelect.Step)
	assert.Equal(t, -4.0, cfg.PointSelect.StartExponent)
	assert.Equal(t, slog.LevelDebug, cfg.SlogLevel())
	assert.Equal(t, 1.2, cfg.ZoomFactor)
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	bad := filepath.Join(dir, "bad.yaml")
	require.NoError(t, os.WriteFile(bad, []byte("mode: polar\n"), 0644))
	_, err := Load(bad)
	assert.ErrorIs(t, err, ErrUnknownMode)

	colorPath := filepath.Join(dir, "color.yaml")
	require.NoError(t, os.WriteFile(colorPath, []byte("background: '#zz'\n"), 0644))
	_, err = Load(colorPath)
	assert.ErrorIs(t, err, ErrBadColor)

	broken := filepath.Join(dir, "broken.yaml")
	require.NoError(t, os.WriteFile(broken, []byte("mode: [\n"), 0644))
	_, err = Load(broken)
	assert.Error(t, err)
}

func TestWriteRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "sub", "ndplot.yaml")
	cfg := DefaultConfig()
	cfg.Mode = "PC"
	cfg.Watch = true
	require.NoError(t, cfg.Write(path))
	got, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, cfg, got)
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#efefef")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0xef, G: 0xef, B: 0xef, A: 255}, c)
	c, err = ParseHex("10203040")
	require.NoError(t, err)
	assert.Equal(t, color.NRGBA{R: 0x10, G: 0x20, B: 0x30, A: 0x40}, c)
	_, err = ParseHex("#123")
	assert.ErrorIs(t, err, ErrBadColor)
}

func TestStyle(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Axes = "#ff0000"
	cfg.HighlightOverlaps = false
	s := cfg.Style()
	assert.Equal(t, color.NRGBA{R: 255, A: 255}, s.Axes)
	assert.False(t, s.HighlightOverlaps)
	assert.Equal(t, 11, s.CurveSegments)
}
