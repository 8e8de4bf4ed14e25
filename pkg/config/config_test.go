package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseScalarAndSequence(t *testing.T) {
	cfg, err := Parse([]byte("carousel_styles: \"Hero, dark mode\"\ngallery_styles:\n  - Grid\n  - Masonry\nlog_level: debug\n"))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	want := Config{
		CarouselStyles: StyleList{"Hero", "dark mode"},
		GalleryStyles:  StyleList{"Grid", "Masonry"},
		LogLevel:       "debug",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"hero", "dark mode"}, cfg.StyleChoices().Values()); diff != "" {
		t.Fatalf("style values mismatch (-want +got):\n%s", diff)
	}
}

func TestParseRejectsBadInput(t *testing.T) {
	if _, err := Parse([]byte("carousel_styles:\n  key: value\n")); err == nil {
		t.Fatalf("expected error for mapping styles")
	}
	if _, err := Parse([]byte("log_level: loud\n")); err == nil {
		t.Fatalf("expected error for unknown log level")
	}
}

func TestStyleChoicesFallsBackToGallery(t *testing.T) {
	cfg := Config{GalleryStyles: StyleList{"Grid"}}
	if diff := cmp.Diff([]string{"grid"}, cfg.StyleChoices().Values()); diff != "" {
		t.Fatalf("fallback mismatch (-want +got):\n%s", diff)
	}

	// Configured but empty carousel styles do not fall back.
	cfg.CarouselStyles = StyleList{}
	if got := cfg.StyleChoices(); len(got) != 0 {
		t.Fatalf("expected no styles, got %v", got.Values())
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "bootstrap3.yaml")
	if err := os.WriteFile(path, []byte("carousel_styles: [Wide]\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.LogLevel != "info" || len(cfg.CarouselStyles) != 1 {
		t.Fatalf("unexpected config %+v", cfg)
	}
	if _, err := Load(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Fatalf("expected error for missing file")
	}
}

func TestLoadEnvFilesAndProcessOverride(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "base.env")
	second := filepath.Join(dir, "local.env")
	if err := os.WriteFile(first, []byte("GALLERY_STYLES=Grid\nBOOTSTRAP3_LOG_LEVEL=warn\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := os.WriteFile(second, []byte("BOOTSTRAP3_LOG_LEVEL=error\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	t.Setenv(EnvCarouselStyles, "Hero,Feature")

	cfg, err := LoadEnv(first, second)
	if err != nil {
		t.Fatalf("load env: %v", err)
	}
	want := Config{
		CarouselStyles: StyleList{"Hero", "Feature"},
		GalleryStyles:  StyleList{"Grid"},
		LogLevel:       "error",
	}
	if diff := cmp.Diff(want, cfg); diff != "" {
		t.Fatalf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestReadEnvMissingFiles(t *testing.T) {
	// The package directory carries no .env file.
	if _, err := ReadEnv(); err != nil {
		t.Fatalf("missing default env file must be ignored: %v", err)
	}
	if _, err := ReadEnv("nope.env"); err == nil {
		t.Fatalf("explicit missing env file must fail")
	}
}
