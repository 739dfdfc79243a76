package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOverwriteDefault(t *testing.T) {
	t.Parallel()

	yes := true
	no := false
	tests := []struct {
		name      string
		flagSet   bool
		flagValue bool
		cfg       Config
		want      bool
	}{
		{"flag wins over config", true, true, Config{Overwrite: &no}, true},
		{"explicit flag false wins", true, false, Config{Overwrite: &yes}, false},
		{"config used when flag unset", false, false, Config{Overwrite: &yes}, true},
		{"default is false", false, false, Config{}, false},
	}
	for _, tc := range tests {
		if got := overwriteDefault(tc.flagSet, tc.flagValue, tc.cfg); got != tc.want {
			t.Errorf("%s: got %v want %v", tc.name, got, tc.want)
		}
	}
}

func TestMakeOutDir(t *testing.T) {
	t.Parallel()

	base := t.TempDir()

	dir := filepath.Join(base, "out")
	if err := makeOutDir(dir, false); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := makeOutDir(dir, false); err != nil {
		t.Fatalf("existing directory should be tolerated: %v", err)
	}

	nested := filepath.Join(base, "a", "b", "c")
	if err := makeOutDir(nested, false); err == nil {
		t.Fatalf("nested create without -p should fail")
	}
	if err := makeOutDir(nested, true); err != nil {
		t.Fatalf("nested create with -p: %v", err)
	}

	file := filepath.Join(base, "file")
	if err := os.WriteFile(file, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if err := makeOutDir(file, false); err == nil {
		t.Fatalf("regular file accepted as output directory")
	}
}
