package xlsxguard

import (
	"fmt"
	"io"

	"github.com/fatih/color"
)

// Marks are rendered per call so that color.NoColor set after start-up
// (--no-color) still applies.
var (
	okMark   = color.New(color.FgGreen)
	failMark = color.New(color.FgRed)
	skipMark = color.New(color.FgYellow)
)

func printOK(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, "%s %s\n", okMark.Sprint("✓"), fmt.Sprintf(format, a...))
}

func printFail(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, "%s %s\n", failMark.Sprint("✗"), fmt.Sprintf(format, a...))
}

func printSkip(w io.Writer, format string, a ...any) {
	fmt.Fprintf(w, "%s %s\n", skipMark.Sprint("-"), fmt.Sprintf(format, a...))
}

// yesNo colors a boolean diagnostic.
func yesNo(ok bool) string {
	if ok {
		return color.GreenString("yes")
	}
	return color.RedString("no")
}
