package data

import (
	"os"
	"path/filepath"
	"testing"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "observations.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("failed to write temp csv: %v", err)
	}
	return path
}

func TestLoadFrame(t *testing.T) {
	path := writeTempCSV(t, "as_of_date,total_prisoner_cases\n1,10.5\n2, 20\n")

	f, err := NewCSVReader(path).LoadFrame()
	if err != nil {
		t.Fatalf("LoadFrame failed: %v", err)
	}

	if f.NumRows() != 2 {
		t.Fatalf("expected 2 rows, got %d", f.NumRows())
	}
	if v, _ := f.Value(0, "total_prisoner_cases"); v != 10.5 {
		t.Errorf("expected 10.5, got %f", v)
	}
	// Whitespace around cells is tolerated.
	if v, _ := f.Value(1, "total_prisoner_cases"); v != 20 {
		t.Errorf("expected 20, got %f", v)
	}
}

func TestLoadFrameNonNumericCell(t *testing.T) {
	path := writeTempCSV(t, "as_of_date,x\n1,oops\n")

	_, err := NewCSVReader(path).LoadFrame()
	if err == nil {
		t.Fatal("expected error for non-numeric cell")
	}
}

func TestLoadFrameHeaderOnly(t *testing.T) {
	path := writeTempCSV(t, "as_of_date,x\n")

	_, err := NewCSVReader(path).LoadFrame()
	if err == nil {
		t.Fatal("expected error for file with no data rows")
	}
}

func TestLoadFrameMissingFile(t *testing.T) {
	_, err := NewCSVReader("nonexistent.csv").LoadFrame()
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
