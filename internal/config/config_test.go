package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "plank.yml"))
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg != Default() {
		t.Errorf("Load() = %+v, want defaults %+v", cfg, Default())
	}
}

func TestLoad_FullFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plank.yml")
	content := "storage_dir: /data/plank\nout_dir: /data/exports\n"
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.StorageDir != "/data/plank" {
		t.Errorf("StorageDir = %q, want /data/plank", cfg.StorageDir)
	}
	if cfg.OutDir != "/data/exports" {
		t.Errorf("OutDir = %q, want /data/exports", cfg.OutDir)
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plank.yml")
	if err := os.WriteFile(path, []byte("storage_dir: /data/plank\n"), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.StorageDir != "/data/plank" {
		t.Errorf("StorageDir = %q, want /data/plank", cfg.StorageDir)
	}
	if cfg.OutDir != Default().OutDir {
		t.Errorf("OutDir = %q, want default %q", cfg.OutDir, Default().OutDir)
	}
}

func TestLoad_BadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plank.yml")
	if err := os.WriteFile(path, []byte("storage_dir: [unclosed"), 0644); err != nil {
		t.Fatalf("WriteFile() failed: %v", err)
	}

	if _, err := Load(path); err == nil {
		t.Fatal("Load() succeeded on malformed YAML, want error")
	}
}
