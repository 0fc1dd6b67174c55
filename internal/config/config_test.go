package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_ValidConfig(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")

	configYAML := `
trivia: true
allow_nested_typedefs: true
output_format: text
`
	if err := os.WriteFile(configFile, []byte(configYAML), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(configFile)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if !cfg.Trivia || !cfg.AllowNestedTypedefs || cfg.OutputFormat != "text" {
		t.Errorf("unexpected config: %+v", cfg)
	}
}

func TestLoad_DefaultsOutputFormat(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configFile, []byte("trivia: true\n"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	cfg, err := Load(configFile)
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.OutputFormat != "json" {
		t.Errorf("OutputFormat = %q, want json default", cfg.OutputFormat)
	}
}

func TestLoad_RejectsUnknownOutputFormat(t *testing.T) {
	tmpDir := t.TempDir()
	configFile := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(configFile, []byte("output_format: xml\n"), 0644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}

	if _, err := Load(configFile); err == nil {
		t.Fatal("expected an error for an invalid output_format")
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatal("expected an error for a missing config file")
	}
}

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.OutputFormat != "json" {
		t.Errorf("Default().OutputFormat = %q, want json", cfg.OutputFormat)
	}
}
