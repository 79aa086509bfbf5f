package history

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenCreatesDatabase(t *testing.T) {
	tmpDir := t.TempDir()

	s, err := Open(tmpDir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(filepath.Join(tmpDir, dbFileName)); err != nil {
		t.Errorf("expected %s to exist: %v", dbFileName, err)
	}
}

func TestOpenCreatesMissingDataDir(t *testing.T) {
	tmpDir := filepath.Join(t.TempDir(), "nested", "data")

	s, err := Open(tmpDir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	if _, err := os.Stat(tmpDir); err != nil {
		t.Errorf("expected data dir to be created: %v", err)
	}
}

func TestAppendAndList(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	first, err := s.Append(1, "V", "mV", 1000)
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if first.ConversionID == "" {
		t.Error("Append returned empty conversion ID")
	}
	second, err := s.Append(2, "s", "Hz", 0.5)
	if err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	records, err := s.List(0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("List returned %d records, want 2", len(records))
	}
	// Newest first.
	if records[0].ConversionID != second.ConversionID {
		t.Errorf("List[0] = %s, want newest record %s", records[0].ConversionID, second.ConversionID)
	}
	if records[1].FromUnit != "V" || records[1].ToUnit != "mV" || records[1].Result != 1000 {
		t.Errorf("List[1] = %+v, want the V->mV record", records[1])
	}
}

func TestListLimit(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	for i := 0; i < 5; i++ {
		if _, err := s.Append(float64(i), "m", "km", float64(i)/1000); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}

	records, err := s.List(3)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 3 {
		t.Errorf("List(3) returned %d records, want 3", len(records))
	}
}

func TestClear(t *testing.T) {
	s, err := Open(t.TempDir())
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer s.Close()

	if _, err := s.Append(1, "V", "mV", 1000); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := s.Clear(); err != nil {
		t.Fatalf("Clear failed: %v", err)
	}

	records, err := s.List(0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("List after Clear returned %d records, want 0", len(records))
	}
}

func TestLogSurvivesReopen(t *testing.T) {
	tmpDir := t.TempDir()

	s, err := Open(tmpDir)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	if _, err := s.Append(1, "V", "mV", 1000); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := s.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	s, err = Open(tmpDir)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer s.Close()

	records, err := s.List(0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(records) != 1 {
		t.Errorf("List after reopen returned %d records, want 1", len(records))
	}
}
