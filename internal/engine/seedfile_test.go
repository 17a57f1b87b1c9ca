package engine

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSeedFile(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "seed.json")

	bytes, err := json.Marshal(SeedCustomers()[:3])
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if err := os.WriteFile(path, bytes, 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	customers, err := LoadSeedFile(path)
	if err != nil {
		t.Fatalf("LoadSeedFile failed: %v", err)
	}
	if len(customers) != 3 {
		t.Errorf("expected 3 records, got %d", len(customers))
	}
	if customers[1].FirstName != "Sarah" {
		t.Errorf("seed data mismatch: %+v", customers[1])
	}
}

func TestLoadSeedFile_Errors(t *testing.T) {
	tmpDir := t.TempDir()

	if _, err := LoadSeedFile(filepath.Join(tmpDir, "missing.json")); err == nil {
		t.Error("expected error for missing file")
	}

	bad := filepath.Join(tmpDir, "bad.json")
	os.WriteFile(bad, []byte("{not json"), 0644)
	if _, err := LoadSeedFile(bad); err == nil {
		t.Error("expected error for malformed json")
	}

	dup := filepath.Join(tmpDir, "dup.json")
	os.WriteFile(dup, []byte(`[{"id":1,"email":"a@x"},{"id":1,"email":"b@x"}]`), 0644)
	if _, err := LoadSeedFile(dup); err == nil {
		t.Error("expected error for duplicate ids")
	}
}
