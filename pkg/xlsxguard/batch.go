package xlsxguard

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
	"github.com/ukaji3/xlsxguard-go/pkg/xlsxguard/models"
)

const (
	// Extension is the suffix of files selected in directory mode (case-sensitive).
	Extension = ".xlsx"
	// LockFilePrefix marks the lock files spreadsheet editors leave next to
	// open documents.
	LockFilePrefix = "~$"
)

// Target is a resolved path to process.
type Target struct {
	// Path is absolute.
	Path  string
	IsDir bool
}

// Operation processes a single file.
type Operation func(path string, opts Options) (models.FileResult, error)

// ResolveTarget makes raw absolute and checks that it exists.
func ResolveTarget(raw string) (Target, error) {
	abs, err := filepath.Abs(raw)
	if err != nil {
		return Target{}, err
	}
	info, err := os.Stat(abs)
	if errors.Is(err, fs.ErrNotExist) {
		return Target{}, fmt.Errorf("%w: %s", ErrTargetNotFound, abs)
	}
	if err != nil {
		return Target{}, err
	}
	return Target{Path: abs, IsDir: info.IsDir()}, nil
}

// IsCandidate reports whether a file name is selected in directory mode.
func IsCandidate(name string) bool {
	return strings.HasSuffix(name, Extension) && !strings.HasPrefix(name, LockFilePrefix)
}

// CollectCandidates returns the absolute paths of the immediate children of
// dir selected by IsCandidate, in directory listing order.
func CollectCandidates(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() || !IsCandidate(entry.Name()) {
			continue
		}
		paths = append(paths, filepath.Join(dir, entry.Name()))
	}
	return paths, nil
}

// OperationFor returns the handler for cmd.
func OperationFor(cmd Command) (Operation, error) {
	switch cmd {
	case CommandEncrypt:
		return Encrypt, nil
	case CommandDecrypt:
		return Decrypt, nil
	case CommandVerify:
		return Verify, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownCommand, cmd)
	}
}

// Run applies cmd to target. For a single file, a failure is returned as a
// *FileError. For a directory, failures are reported per file, counted in
// the summary, and do not stop the run.
func Run(cmd Command, target Target, opts Options) (*models.Summary, error) {
	op, err := OperationFor(cmd)
	if err != nil {
		return nil, err
	}
	if opts.Password == "" {
		return nil, ErrEmptyPassword
	}

	summary := &models.Summary{Target: target.Path, Command: string(cmd)}
	if !target.IsDir {
		result, err := op(target.Path, opts)
		if err != nil {
			return nil, NewFileError(filepath.Base(target.Path), cmd, err)
		}
		summary.Add(result)
		return summary, nil
	}

	paths, err := CollectCandidates(target.Path)
	if err != nil {
		return nil, err
	}
	w := opts.out()
	if len(paths) == 0 {
		fmt.Fprintln(w, "no target files found")
		return summary, nil
	}

	var bar *progressbar.ProgressBar
	if opts.Progress != nil {
		bar = progressbar.NewOptions(len(paths),
			progressbar.OptionSetWriter(opts.Progress),
			progressbar.OptionSetDescription(string(cmd)),
			progressbar.OptionSetRenderBlankState(true),
			progressbar.OptionClearOnFinish(),
		)
	}

	for _, path := range paths {
		name := filepath.Base(path)
		result, err := op(path, opts)
		if err != nil {
			printFail(w, "%s: %v", name, err)
			result = models.FileResult{
				File:    name,
				Command: string(cmd),
				Outcome: models.OutcomeFailed,
				Error:   err.Error(),
			}
		}
		summary.Add(result)
		if bar != nil {
			bar.Add(1)
		}
	}
	if bar != nil {
		bar.Finish()
	}

	fmt.Fprintf(w, "done: %d succeeded, %d failed\n", summary.Succeeded, summary.Failed)
	return summary, nil
}
