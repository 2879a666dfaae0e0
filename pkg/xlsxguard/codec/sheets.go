package codec

import (
	"crypto/sha256"
	"encoding/hex"
	"strconv"

	"github.com/xuri/excelize/v2"
)

// SheetNames returns the sheet (tab) names of the document stored in b,
// in workbook order.
func SheetNames(b []byte, password string) ([]string, error) {
	f, err := Open(b, password)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return f.GetSheetList(), nil
}

// CellFingerprints returns a digest of every sheet's non-empty cell values,
// keyed by sheet name.
func CellFingerprints(b []byte, password string) (map[string]string, error) {
	f, err := Open(b, password)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	result := make(map[string]string)
	for _, sheetName := range f.GetSheetList() {
		fp, err := sheetFingerprint(f, sheetName)
		if err != nil {
			return nil, err
		}
		result[sheetName] = fp
	}
	return result, nil
}

// sheetFingerprint hashes the (row, column, value) triples of non-empty
// cells, so trailing empty cells do not affect the result.
func sheetFingerprint(f *excelize.File, sheetName string) (string, error) {
	rows, err := f.GetRows(sheetName)
	if err != nil {
		return "", err
	}

	h := sha256.New()
	for rowIdx, row := range rows {
		for colIdx, cellValue := range row {
			if cellValue == "" {
				continue
			}
			// 1-based coordinates, NUL separated
			h.Write([]byte(strconv.Itoa(rowIdx + 1)))
			h.Write([]byte{0})
			h.Write([]byte(strconv.Itoa(colIdx + 1)))
			h.Write([]byte{0})
			h.Write([]byte(cellValue))
			h.Write([]byte{0})
		}
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

// EqualFingerprints reports whether both maps hold the same sheets with the
// same cell digests.
func EqualFingerprints(a, b map[string]string) bool {
	if len(a) != len(b) {
		return false
	}
	for name, fp := range a {
		if other, ok := b[name]; !ok || other != fp {
			return false
		}
	}
	return true
}
