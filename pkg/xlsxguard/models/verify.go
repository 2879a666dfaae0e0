package models

// Buffer describes one serialized form of a document.
type Buffer struct {
	// Size is the length in bytes.
	Size int `json:"size"`
	// SHA256 is the hex digest (omitted for the encrypted form, whose bytes
	// change on every run).
	SHA256 string `json:"sha256,omitempty"`
}

// VerifyReport is the outcome of an encrypt/decrypt round-trip check.
type VerifyReport struct {
	Original    Buffer `json:"original"`
	Encrypted   Buffer `json:"encrypted"`
	Decrypted   Buffer `json:"decrypted"`
	Passthrough Buffer `json:"passthrough"`

	// EncryptedContainer is the detected outer format of the encrypted form.
	EncryptedContainer string `json:"encrypted_container"`
	// EncryptedStreams lists the compound file streams of the encrypted form.
	EncryptedStreams []string `json:"encrypted_streams,omitempty"`

	// HashMatch is the verdict: passthrough and decrypted digests are equal.
	HashMatch bool `json:"hash_match"`

	SizeDelta        int     `json:"size_delta"`
	SizeDeltaPercent float64 `json:"size_delta_percent"`

	OriginalSheets  []string `json:"original_sheets"`
	DecryptedSheets []string `json:"decrypted_sheets"`
	SheetsMatch     bool     `json:"sheets_match"`
	// CellsMatch reports whether every sheet's cell values survived.
	CellsMatch bool `json:"cells_match"`
}
