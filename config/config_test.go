package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"testing"
	"time"

	"github.com/lixenwraith/invaders/constant"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "invaders.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("Failed to write config: %v", err)
	}
	return path
}

func TestDefaultIsValid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("Expected default config to validate, got %v", err)
	}
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.FrameSleep != constant.FrameSleep {
		t.Errorf("Expected default frame sleep, got %v", cfg.FrameSleep)
	}
}

// TestLoadFile verifies file values override defaults and unset values survive
func TestLoadFile(t *testing.T) {
	path := writeConfig(t, `
sound_dir   = "/opt/invaders/sounds"
frame_sleep = "5ms"
volume      = 0.5

[keys]
shoot = ["w", "space"]

[glyphs]
player  = "^"
invader = ["M", "W"]
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if cfg.SoundDir != "/opt/invaders/sounds" {
		t.Errorf("Expected sound dir from file, got %q", cfg.SoundDir)
	}
	if cfg.FrameSleep != 5*time.Millisecond {
		t.Errorf("Expected 5ms frame sleep, got %v", cfg.FrameSleep)
	}
	if cfg.Volume != 0.5 {
		t.Errorf("Expected volume 0.5, got %v", cfg.Volume)
	}
	if want := []string{"w", "space"}; !reflect.DeepEqual(cfg.Keys["shoot"], want) {
		t.Errorf("Expected shoot keys %v, got %v", want, cfg.Keys["shoot"])
	}

	player, shot, _, invader := cfg.Glyphs.Runes()
	if player != '^' || invader != [2]rune{'M', 'W'} {
		t.Errorf("Expected glyph overrides, got player=%q invader=%q", player, invader)
	}
	if shot != constant.GlyphShot {
		t.Errorf("Expected default shot glyph, got %q", shot)
	}
}

func TestLoadRejectsUnknownKeys(t *testing.T) {
	path := writeConfig(t, `lives = 3`)

	if _, err := Load(path); !errors.Is(err, ErrInvalid) {
		t.Errorf("Expected ErrInvalid for unknown key, got %v", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.toml")); err == nil {
		t.Error("Expected an error for a missing file")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := writeConfig(t, `volume = [`)
	if _, err := Load(path); err == nil {
		t.Error("Expected a parse error")
	}
}

// TestEnvOverrides verifies environment variables beat file values
func TestEnvOverrides(t *testing.T) {
	path := writeConfig(t, `sound_dir = "from-file"`)
	t.Setenv("INVADERS_SOUND_DIR", "from-env")
	t.Setenv("INVADERS_VOLUME", "25")
	t.Setenv("INVADERS_DEBUG", "true")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.SoundDir != "from-env" {
		t.Errorf("Expected env sound dir, got %q", cfg.SoundDir)
	}
	if cfg.Volume != 0.25 {
		t.Errorf("Expected volume 0.25, got %v", cfg.Volume)
	}
	if !cfg.Debug {
		t.Error("Expected debug enabled from env")
	}
}

func TestEnvVolumeClamped(t *testing.T) {
	t.Setenv("INVADERS_VOLUME", "250")

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.Volume != 1 {
		t.Errorf("Expected volume clamped to 1, got %v", cfg.Volume)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Config)
	}{
		{"empty sound dir", func(c *Config) { c.SoundDir = "" }},
		{"negative sleep", func(c *Config) { c.FrameSleep = -time.Millisecond }},
		{"volume too high", func(c *Config) { c.Volume = 1.5 }},
		{"volume negative", func(c *Config) { c.Volume = -0.1 }},
		{"multi-rune glyph", func(c *Config) { c.Glyphs.Player = "AB" }},
		{"empty glyph", func(c *Config) { c.Glyphs.Shot = "" }},
		{"wide glyph", func(c *Config) { c.Glyphs.Explosion = "爆" }},
		{"one invader frame", func(c *Config) { c.Glyphs.Invader = []string{"x"} }},
		{"bad invader frame", func(c *Config) { c.Glyphs.Invader = []string{"x", "xx"} }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Default()
			tt.modify(cfg)
			if err := cfg.Validate(); !errors.Is(err, ErrInvalid) {
				t.Errorf("Expected ErrInvalid, got %v", err)
			}
		})
	}
}
