package xlsxguard

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ukaji3/xlsxguard-go/pkg/xlsxguard/codec"
	"github.com/ukaji3/xlsxguard-go/pkg/xlsxguard/models"
)

// Encrypt protects the file at path with opts.Password, overwriting it in
// place. A file that is already protected is skipped.
func Encrypt(path string, opts Options) (models.FileResult, error) {
	name := filepath.Base(path)
	result := models.FileResult{File: name, Command: string(CommandEncrypt)}

	b, state, err := readAndProbe(path, opts.Password)
	if err != nil {
		return result, err
	}
	if state == StateProtected {
		printSkip(opts.out(), "%s: already encrypted, skipped", name)
		result.Outcome = models.OutcomeSkipped
		result.Reason = "already encrypted"
		return result, nil
	}

	if err := rewriteInPlace(path, b, "", opts.Password); err != nil {
		return result, err
	}
	printOK(opts.out(), "encrypted %s", name)
	result.Outcome = models.OutcomeEncrypted
	return result, nil
}

// Decrypt removes protection from the file at path using opts.Password,
// overwriting it in place. A file that is not protected is skipped.
func Decrypt(path string, opts Options) (models.FileResult, error) {
	name := filepath.Base(path)
	result := models.FileResult{File: name, Command: string(CommandDecrypt)}

	b, state, err := readAndProbe(path, opts.Password)
	if err != nil {
		return result, err
	}
	if state == StateUnprotected {
		printSkip(opts.out(), "%s: not encrypted, skipped", name)
		result.Outcome = models.OutcomeSkipped
		result.Reason = "not encrypted"
		return result, nil
	}

	if err := rewriteInPlace(path, b, opts.Password, ""); err != nil {
		return result, err
	}
	printOK(opts.out(), "decrypted %s", name)
	result.Outcome = models.OutcomeDecrypted
	return result, nil
}

// readAndProbe reads path once and probes the bytes. StateUnopenable is
// returned as ErrUnopenable.
func readAndProbe(path, password string) ([]byte, State, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, StateUnopenable, err
	}
	state := ProbeBytes(b, password)
	if state == StateUnopenable {
		return nil, state, ErrUnopenable
	}
	return b, state, nil
}

// rewriteInPlace re-serializes b from one password to another and replaces
// the file at path, keeping its permission bits.
func rewriteInPlace(path string, b []byte, from, to string) error {
	info, err := os.Stat(path)
	if err != nil {
		return err
	}
	out, err := codec.Rewrite(b, from, to)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, out, info.Mode().Perm()); err != nil {
		return fmt.Errorf("write %s: %w", filepath.Base(path), err)
	}
	return nil
}
