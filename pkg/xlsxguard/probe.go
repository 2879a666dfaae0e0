package xlsxguard

import (
	"os"

	"github.com/ukaji3/xlsxguard-go/pkg/xlsxguard/codec"
)

// State is the protection state of a document.
type State int

const (
	// StateUnprotected means the document opens without a password.
	StateUnprotected State = iota
	// StateProtected means the document needs the supplied password.
	StateProtected
	// StateUnopenable means neither attempt succeeded: the password is wrong
	// or the document is damaged.
	StateUnopenable
)

func (s State) String() string {
	switch s {
	case StateUnprotected:
		return "unprotected"
	case StateProtected:
		return "protected"
	default:
		return "unopenable"
	}
}

// ProbeBytes determines the protection state of the document in b by
// attempting to open it, first without a password, then with password.
func ProbeBytes(b []byte, password string) State {
	if f, err := codec.Open(b, ""); err == nil {
		f.Close()
		return StateUnprotected
	}
	if f, err := codec.Open(b, password); err == nil {
		f.Close()
		return StateProtected
	}
	return StateUnopenable
}

// Probe reads the file at path and returns its protection state. The error
// is reserved for read failures; a wrong password yields StateUnopenable.
func Probe(path, password string) (State, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return StateUnopenable, err
	}
	return ProbeBytes(b, password), nil
}
