// Package xlsxguard applies, removes and verifies password protection on
// xlsx documents.
package xlsxguard

import (
	"fmt"
	"io"
)

// Command represents one of the supported operations.
type Command string

const (
	// CommandEncrypt protects unprotected files with the password.
	CommandEncrypt Command = "encrypt"
	// CommandDecrypt removes protection from files opened with the password.
	CommandDecrypt Command = "decrypt"
	// CommandVerify checks that an encrypt/decrypt round trip is lossless.
	CommandVerify Command = "verify"
)

// Commands lists the accepted command names.
var Commands = []Command{CommandEncrypt, CommandDecrypt, CommandVerify}

// ParseCommand validates a command name.
func ParseCommand(s string) (Command, error) {
	for _, c := range Commands {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("%w: %q (must be encrypt, decrypt, or verify)", ErrUnknownCommand, s)
}

// Options configures a run.
type Options struct {
	// Password is the protection credential.
	Password string
	// Out receives human-readable progress lines. Nil discards them.
	Out io.Writer
	// Progress, if set, receives a progress bar while a directory is processed.
	Progress io.Writer
}

func (o Options) out() io.Writer {
	if o.Out == nil {
		return io.Discard
	}
	return o.Out
}
