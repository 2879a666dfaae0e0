// Package codec wraps the spreadsheet codec used to load and re-serialize
// xlsx documents, with or without a password.
package codec

import (
	"bytes"
	"crypto/sha256"
	"encoding/hex"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Open loads a document from raw bytes. An empty password opens the
// document as unprotected.
func Open(b []byte, password string) (*excelize.File, error) {
	return excelize.OpenReader(bytes.NewReader(b), excelize.Options{Password: password})
}

// Serialize writes the document to a new buffer. When password is non-empty
// the output is an encrypted package; otherwise it is a plain xlsx archive.
func Serialize(f *excelize.File, password string) ([]byte, error) {
	var buf bytes.Buffer
	if err := f.Write(&buf, excelize.Options{Password: password}); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Rewrite opens b with the from password and serializes it with the to
// password. Rewrite(b, "", "") is the passthrough rewrite.
func Rewrite(b []byte, from, to string) ([]byte, error) {
	f, err := Open(b, from)
	if err != nil {
		return nil, fmt.Errorf("open: %w", err)
	}
	defer f.Close()

	out, err := Serialize(f, to)
	if err != nil {
		return nil, fmt.Errorf("serialize: %w", err)
	}
	return out, nil
}

// Digest returns the hex-encoded SHA-256 digest of b.
func Digest(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:])
}
