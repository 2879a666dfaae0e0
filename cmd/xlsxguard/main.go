// Package main provides the CLI entry point for xlsxguard.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"github.com/ukaji3/xlsxguard-go/pkg/xlsxguard"
	"github.com/ukaji3/xlsxguard-go/pkg/xlsxguard/output"
	"golang.org/x/term"
)

// Version is set at build time via -ldflags.
var Version = "dev"

// promptPassword is the password argument that requests a terminal prompt.
const promptPassword = "-"

type cliOptions struct {
	jsonOutput bool
	progress   bool
	noColor    bool
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	var cli cliOptions

	rootCmd := &cobra.Command{
		Use:   "xlsxguard <encrypt|decrypt|verify> <password> <target>",
		Short: "Add, remove, or verify password protection on xlsx files",
		Long: `xlsxguard encrypts or decrypts an .xlsx file, or every .xlsx file directly
inside a directory, overwriting each file in place. verify checks that an
encrypt/decrypt round trip is lossless without writing anything.

Pass "-" as the password to type it at a prompt instead.`,
		Example: `  xlsxguard encrypt 1234 demo.xlsx
  xlsxguard decrypt 1234 ./reports
  xlsxguard verify - demo.xlsx`,
		Version:       Version,
		Args:          cobra.ExactArgs(3),
		ValidArgs:     []string{"encrypt", "decrypt", "verify"},
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return run(cli, args, stdout, stderr)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	rootCmd.Flags().BoolVar(&cli.jsonOutput, "json", false, "Print results as JSON instead of progress lines")
	rootCmd.Flags().BoolVar(&cli.progress, "progress", false, "Show a progress bar on stderr when processing a directory")
	rootCmd.Flags().BoolVar(&cli.noColor, "no-color", false, "Disable colored output")

	return rootCmd
}

func run(cli cliOptions, args []string, stdout, stderr io.Writer) error {
	if cli.noColor {
		color.NoColor = true
	}

	command, err := xlsxguard.ParseCommand(args[0])
	if err != nil {
		return err
	}

	password := args[1]
	if password == promptPassword {
		if password, err = readPassword(os.Stdin, stderr); err != nil {
			return err
		}
	}

	target, err := xlsxguard.ResolveTarget(args[2])
	if err != nil {
		return err
	}

	opts := xlsxguard.Options{
		Password: password,
		Out:      stdout,
	}
	if cli.jsonOutput {
		opts.Out = io.Discard
	}
	if cli.progress && target.IsDir {
		opts.Progress = stderr
	}

	summary, err := xlsxguard.Run(command, target, opts)
	if err != nil {
		return err
	}

	if cli.jsonOutput {
		if err := output.WriteJSON(stdout, summary); err != nil {
			return fmt.Errorf("failed to write output: %w", err)
		}
	}
	return nil
}

// readPassword reads a password from the terminal without echoing it.
func readPassword(in *os.File, prompt io.Writer) (string, error) {
	if !term.IsTerminal(int(in.Fd())) {
		return "", errors.New("stdin is not a terminal; cannot prompt for password")
	}
	fmt.Fprint(prompt, "Password: ")
	pw, err := term.ReadPassword(int(in.Fd()))
	fmt.Fprintln(prompt)
	if err != nil {
		return "", fmt.Errorf("failed to read password: %w", err)
	}
	return string(pw), nil
}
