package app

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/atomicstack/cascade-menu/internal/catalog"
)

func TestLoadDefinitionDefaultsToDemo(t *testing.T) {
	def, err := loadDefinition("")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if def.Depth() != catalog.Default().Depth() {
		t.Fatalf("expected default definition, got %+v", def)
	}
}

func TestLoadDefinitionWrapsInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "menu.yaml")
	if err := os.WriteFile(path, []byte("items:\n  - disabled: true\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, err := loadDefinition(path)
	if err == nil {
		t.Fatalf("expected error for an item without a label")
	}
	if !errors.Is(err, catalog.ErrInvalid) {
		t.Fatalf("expected ErrInvalid in chain, got %v", err)
	}
}

func TestRunContextRejectsMissingFile(t *testing.T) {
	err := Run(Config{MenuFile: filepath.Join(t.TempDir(), "missing.yaml")})
	if err == nil {
		t.Fatalf("expected error for missing menu file")
	}
}
