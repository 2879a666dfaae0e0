package xlsxguard

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

// writeWorkbook saves a small two-sheet workbook to dir/name, protected
// with password when it is non-empty, and returns its path.
func writeWorkbook(t *testing.T, dir, name, password string) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	if _, err := f.NewSheet("Data"); err != nil {
		t.Fatalf("Failed to add sheet: %v", err)
	}
	f.SetCellValue("Sheet1", "A1", "Header1")
	f.SetCellValue("Sheet1", "B1", "Header2")
	f.SetCellValue("Sheet1", "A2", 100)
	f.SetCellValue("Sheet1", "B2", 200.5)
	f.SetCellValue("Data", "C3", "Text")

	path := filepath.Join(dir, name)
	var opts []excelize.Options
	if password != "" {
		opts = append(opts, excelize.Options{Password: password})
	}
	if err := f.SaveAs(path, opts...); err != nil {
		t.Fatalf("Failed to save test file: %v", err)
	}
	return path
}

func readFile(t *testing.T, path string) []byte {
	t.Helper()
	b, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Failed to read %s: %v", path, err)
	}
	return b
}
