// Package models defines the results reported by xlsxguard operations.
package models

// Outcome values for FileResult.
const (
	OutcomeEncrypted = "encrypted"
	OutcomeDecrypted = "decrypted"
	OutcomeSkipped   = "skipped"
	OutcomeMatch     = "match"
	OutcomeMismatch  = "mismatch"
	OutcomeFailed    = "failed"
)

// FileResult is the result of one operation on one file.
type FileResult struct {
	// File is the file's base name.
	File string `json:"file"`
	// Command is the operation that ran (encrypt, decrypt, verify).
	Command string `json:"command"`
	// Outcome is one of the Outcome constants.
	Outcome string `json:"outcome"`
	// Reason explains a skipped outcome.
	Reason string `json:"reason,omitempty"`
	// Error is the failure message when Outcome is "failed".
	Error string `json:"error,omitempty"`
	// Verify holds the round-trip report for verify runs.
	Verify *VerifyReport `json:"verify,omitempty"`
}
