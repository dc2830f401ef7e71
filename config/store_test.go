// Copyright © 2025 Texelation contributors
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/framegrace/texeldrift/overscroll"
)

func TestDefaultsParse(t *testing.T) {
	cfg, err := Defaults()
	if err != nil {
		t.Fatalf("Defaults: %v", err)
	}
	if cfg.Overscroll.Direction != "multi" || cfg.Overscroll.OOBEasing != "easeOutElastic" {
		t.Errorf("unexpected defaults %+v", cfg.Overscroll)
	}
	if cfg.Overscroll.ThumbThickness != 1 || cfg.Overscroll.WheelDelta != 3 {
		t.Errorf("expected terminal-scale defaults, got %+v", cfg.Overscroll)
	}
	if cfg.View.Style == "" || !cfg.View.StatusLine {
		t.Errorf("unexpected view defaults %+v", cfg.View)
	}
}

func TestDefaultPathUsesConfigHome(t *testing.T) {
	home := t.TempDir()
	t.Setenv("XDG_CONFIG_HOME", home)

	path, err := DefaultPath()
	if err != nil {
		t.Fatalf("DefaultPath: %v", err)
	}
	if want := filepath.Join(home, "texeldrift", "driftview.toml"); path != want {
		t.Errorf("expected %s, got %s", want, path)
	}
}

func TestLoadMissingFileReturnsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def, _ := Defaults()
	if cfg != def {
		t.Errorf("expected defaults, got %+v", cfg)
	}
}

func TestLoadOverridesOnlyPresentKeys(t *testing.T) {
	path := filepath.Join(t.TempDir(), "driftview.toml")
	data := "[overscroll]\nwheel_delta = 7\noob = false\nscroll_duration_ms = 1200\nmystery = 1\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Overscroll.WheelDelta != 7 || cfg.Overscroll.OOB {
		t.Errorf("expected overrides applied, got %+v", cfg.Overscroll)
	}
	if cfg.Overscroll.Direction != "multi" || cfg.Overscroll.ThumbOpacity != 0.7 {
		t.Errorf("expected untouched keys to keep defaults, got %+v", cfg.Overscroll)
	}

	opts := cfg.Overscroll.Options()
	if opts.ScrollDuration != 1200*time.Millisecond {
		t.Errorf("expected 1.2s drift, got %v", opts.ScrollDuration)
	}
	if opts.Direction != overscroll.DirectionMulti || opts.FrameInterval != 16*time.Millisecond {
		t.Errorf("unexpected options %+v", opts)
	}
}

func TestLoadParseErrorIsWrapped(t *testing.T) {
	path := filepath.Join(t.TempDir(), "driftview.toml")
	if err := os.WriteFile(path, []byte("[overscroll\nwheel_delta = "), 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(path)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), path) {
		t.Errorf("expected error to name the file, got %v", err)
	}
	var decodeErr *toml.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Errorf("expected wrapped toml.DecodeError, got %T", err)
	}
	if def, _ := Defaults(); cfg != def {
		t.Error("expected defaults alongside the error")
	}
}

func TestEnsureDefaultWritesOnce(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	path, err := DefaultPath()
	if err != nil {
		t.Fatal(err)
	}

	wrote, err := EnsureDefault(path)
	if err != nil || !wrote {
		t.Fatalf("expected default written, got %v (wrote=%v)", err, wrote)
	}
	if err := os.WriteFile(path, []byte("[view]\nstatus_line = false\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	wrote, err = EnsureDefault(path)
	if err != nil || wrote {
		t.Fatalf("expected existing file kept, got %v (wrote=%v)", err, wrote)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.View.StatusLine {
		t.Error("expected user edit to survive")
	}
}

func TestEncodeRoundTripsThroughLoad(t *testing.T) {
	cfg, _ := Defaults()
	cfg.View.Style = "monokai"
	data, err := Encode(cfg)
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	path := filepath.Join(t.TempDir(), "out.toml")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != cfg {
		t.Errorf("expected %+v, got %+v", cfg, got)
	}
}
