package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBind != defaultAPIBind {
		t.Fatalf("APIBind = %q, want %q", cfg.APIBind, defaultAPIBind)
	}
	if cfg.Theme != defaultTheme {
		t.Fatalf("Theme = %q, want %q", cfg.Theme, defaultTheme)
	}
	if cfg.FPS != defaultFPS {
		t.Fatalf("FPS = %d, want %d", cfg.FPS, defaultFPS)
	}
}

func TestLoad_ReadsExistingFile(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfgDir := filepath.Join(home, ".config", "marquee")
	if err := os.MkdirAll(cfgDir, 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	content := "api_bind = \"10.0.0.2:9000\"\ntheme = \"neon\"\nfps = 60\n"
	if err := os.WriteFile(filepath.Join(cfgDir, "config.toml"), []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.APIBind != "10.0.0.2:9000" {
		t.Fatalf("APIBind = %q, want 10.0.0.2:9000", cfg.APIBind)
	}
	if cfg.Theme != "neon" {
		t.Fatalf("Theme = %q, want neon", cfg.Theme)
	}
	if cfg.FPS != 60 {
		t.Fatalf("FPS = %d, want 60", cfg.FPS)
	}
}

func TestLoad_ExplicitPath(t *testing.T) {
	tmp := t.TempDir()
	cfgFile := filepath.Join(tmp, "custom.toml")
	if err := os.WriteFile(cfgFile, []byte("log_file = \"/tmp/marquee.log\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(cfgFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.LogFile != "/tmp/marquee.log" {
		t.Fatalf("LogFile = %q, want /tmp/marquee.log", cfg.LogFile)
	}
	if cfg.APIBind != defaultAPIBind {
		t.Fatalf("APIBind = %q, want default %q", cfg.APIBind, defaultAPIBind)
	}
}

func TestLoad_AutoplayOverride(t *testing.T) {
	tmp := t.TempDir()
	cfgFile := filepath.Join(tmp, "autoplay.toml")
	if err := os.WriteFile(cfgFile, []byte("autoplay = false\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(cfgFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Autoplay == nil || *cfg.Autoplay {
		t.Fatalf("Autoplay = %v, want explicit false", cfg.Autoplay)
	}
}

func TestLoad_AutoplayAbsentIsNil(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)

	cfg, err := Load("")
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Autoplay != nil {
		t.Fatalf("Autoplay = %v, want nil when unset", cfg.Autoplay)
	}
}

func TestLoad_MalformedFile(t *testing.T) {
	tmp := t.TempDir()
	cfgFile := filepath.Join(tmp, "bad.toml")
	if err := os.WriteFile(cfgFile, []byte("api_bind = [broken\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	if _, err := Load(cfgFile); err == nil {
		t.Fatalf("Load error = nil for malformed file, want parse error")
	}
}

func TestLoad_PartialFileKeepsOtherDefaults(t *testing.T) {
	tmp := t.TempDir()
	cfgFile := filepath.Join(tmp, "partial.toml")
	if err := os.WriteFile(cfgFile, []byte("theme = \"light\"\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(cfgFile)
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if cfg.Theme != "light" {
		t.Fatalf("Theme = %q, want light", cfg.Theme)
	}
	if cfg.FPS != defaultFPS {
		t.Fatalf("FPS = %d, want default %d", cfg.FPS, defaultFPS)
	}
}
