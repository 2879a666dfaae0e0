package xlsxguard

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/ukaji3/xlsxguard-go/pkg/xlsxguard/codec"
	"github.com/ukaji3/xlsxguard-go/pkg/xlsxguard/models"
)

const verifySteps = 7

// Verify checks that encrypting and then decrypting the file at path with
// opts.Password reproduces what a plain load-and-save produces. Nothing is
// written to disk. A mismatch is reported in the result, not as an error.
func Verify(path string, opts Options) (models.FileResult, error) {
	name := filepath.Base(path)
	result := models.FileResult{File: name, Command: string(CommandVerify)}

	b, err := os.ReadFile(path)
	if err != nil {
		return result, err
	}
	report, err := VerifyBytes(b, opts.Password, opts.out())
	if err != nil {
		return result, err
	}

	result.Verify = report
	if report.HashMatch {
		result.Outcome = models.OutcomeMatch
	} else {
		result.Outcome = models.OutcomeMismatch
	}
	return result, nil
}

// VerifyBytes runs the round-trip check on an unprotected document held in
// memory, writing one progress line per step to w.
func VerifyBytes(original []byte, password string, w io.Writer) (*models.VerifyReport, error) {
	report := &models.VerifyReport{}

	// 1: original
	report.Original = models.Buffer{Size: len(original), SHA256: codec.Digest(original)}
	step(w, 1, "original: %s, sha256 %s", codec.FormatBytes(len(original)), short(report.Original.SHA256))

	// 2: encrypt
	encrypted, err := codec.Rewrite(original, "", password)
	if err != nil {
		return nil, fmt.Errorf("encrypt: %w", err)
	}
	report.Encrypted = models.Buffer{Size: len(encrypted)}
	report.EncryptedContainer = string(codec.DetectContainer(encrypted))
	if report.EncryptedContainer == string(codec.ContainerCFB) {
		// diagnostic only
		report.EncryptedStreams, _ = codec.Streams(encrypted)
	}
	step(w, 2, "encrypted: %s (%s container, encrypted package: %s)",
		codec.FormatBytes(len(encrypted)), report.EncryptedContainer, yesNo(codec.IsEncryptedPackage(encrypted)))

	// 3: decrypt
	decrypted, err := codec.Rewrite(encrypted, password, "")
	if err != nil {
		return nil, fmt.Errorf("decrypt: %w", err)
	}
	report.Decrypted = models.Buffer{Size: len(decrypted), SHA256: codec.Digest(decrypted)}
	step(w, 3, "decrypted: %s, sha256 %s", codec.FormatBytes(len(decrypted)), short(report.Decrypted.SHA256))

	// 4: passthrough baseline
	passthrough, err := codec.Rewrite(original, "", "")
	if err != nil {
		return nil, fmt.Errorf("passthrough: %w", err)
	}
	report.Passthrough = models.Buffer{Size: len(passthrough), SHA256: codec.Digest(passthrough)}
	step(w, 4, "passthrough: %s, sha256 %s", codec.FormatBytes(len(passthrough)), short(report.Passthrough.SHA256))

	// 5: compare
	report.HashMatch = report.Passthrough.SHA256 == report.Decrypted.SHA256
	report.SizeDelta, report.SizeDeltaPercent = codec.SizeDelta(len(original), len(decrypted))
	step(w, 5, "passthrough vs decrypted hash match: %s; size vs original: %+d bytes (%+.2f%%)",
		yesNo(report.HashMatch), report.SizeDelta, report.SizeDeltaPercent)

	// 6: sheet structure
	if report.OriginalSheets, err = codec.SheetNames(original, ""); err != nil {
		return nil, fmt.Errorf("reload original: %w", err)
	}
	if report.DecryptedSheets, err = codec.SheetNames(decrypted, ""); err != nil {
		return nil, fmt.Errorf("reload decrypted: %w", err)
	}
	report.SheetsMatch = slices.Equal(report.OriginalSheets, report.DecryptedSheets)

	origCells, err := codec.CellFingerprints(original, "")
	if err != nil {
		return nil, fmt.Errorf("read original cells: %w", err)
	}
	decCells, err := codec.CellFingerprints(decrypted, "")
	if err != nil {
		return nil, fmt.Errorf("read decrypted cells: %w", err)
	}
	report.CellsMatch = codec.EqualFingerprints(origCells, decCells)
	step(w, 6, "sheets: original [%s], decrypted [%s]; names match: %s; cells match: %s",
		strings.Join(report.OriginalSheets, ", "), strings.Join(report.DecryptedSheets, ", "),
		yesNo(report.SheetsMatch), yesNo(report.CellsMatch))

	// 7: verdict
	fmt.Fprintf(w, "[%d/%d] verdict: ", verifySteps, verifySteps)
	switch {
	case report.HashMatch && report.SheetsMatch && report.CellsMatch:
		printOK(w, "round trip is lossless")
	case report.HashMatch:
		printOK(w, "round trip is lossless (sheet diagnostics differ from original)")
	default:
		printFail(w, "round trip changed the document")
	}
	return report, nil
}

func step(w io.Writer, n int, format string, a ...any) {
	fmt.Fprintf(w, "[%d/%d] %s\n", n, verifySteps, fmt.Sprintf(format, a...))
}

// short abbreviates a hex digest for display.
func short(digest string) string {
	if len(digest) > 16 {
		return digest[:16]
	}
	return digest
}
