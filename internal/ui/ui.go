// Package ui renders console output: stage progress, the run summary and
// interactive prompts.
package ui

import (
	"fmt"
	"io"
	"os"
)

// UI writes user-facing output. Logs are separate and go to stderr.
type UI struct {
	out     io.Writer
	Verbose bool
	Quiet   bool
	spinner *Spinner
}

// NewUI creates a UI writing to stdout
func NewUI(verbose, quiet bool) *UI {
	return NewUIWithWriter(os.Stdout, verbose, quiet)
}

// NewUIWithWriter creates a UI writing to w
func NewUIWithWriter(w io.Writer, verbose, quiet bool) *UI {
	return &UI{out: w, Verbose: verbose, Quiet: quiet}
}

// Writer returns the underlying output writer
func (u *UI) Writer() io.Writer {
	return u.out
}

// Printf prints formatted output if not in quiet mode
func (u *UI) Printf(format string, args ...interface{}) {
	if !u.Quiet {
		fmt.Fprintf(u.out, format, args...)
	}
}

// Println prints a line if not in quiet mode
func (u *UI) Println(args ...interface{}) {
	if !u.Quiet {
		fmt.Fprintln(u.out, args...)
	}
}

// VerbosePrintf prints formatted output only in verbose mode
func (u *UI) VerbosePrintf(format string, args ...interface{}) {
	if u.Verbose && !u.Quiet {
		fmt.Fprintf(u.out, format, args...)
	}
}

// StageStarted prints the "N/M Generating X..." progress line
func (u *UI) StageStarted(index, total int, label string) {
	u.Printf("%s Generating %s...\n", ColorProgress(fmt.Sprintf("%d/%d", index, total)), label)
}

// StartProgress starts a spinner on terminals and prints a plain line elsewhere
func (u *UI) StartProgress(message string) {
	if u.Quiet {
		return
	}
	if !supportsColor {
		fmt.Fprintln(u.out, message)
		return
	}
	u.spinner = NewSpinner(u.out, message)
	u.spinner.Start()
}

// StopProgress stops the spinner, if any, with a final status line
func (u *UI) StopProgress(success bool, message string) {
	if u.spinner == nil {
		return
	}
	u.spinner.Stop(success, message)
	u.spinner = nil
}

// Success prints a success message
func (u *UI) Success(message string) {
	u.Printf("%s %s\n", ColorSuccess("SUCCESS:"), message)
}

// Warning prints a warning message
func (u *UI) Warning(message string) {
	u.Printf("%s %s\n", ColorWarning("WARNING:"), ColorWarning(message))
}

// Info prints an information message
func (u *UI) Info(message string) {
	u.Printf("%s %s\n", ColorInfo("INFO:"), message)
}

// Error prints err even in quiet mode
func (u *UI) Error(err error) {
	ShowError(u.out, err)
}

// PrintKeyValue prints a key-value pair in a formatted way
func (u *UI) PrintKeyValue(key, value string) {
	u.Printf("  %-20s %s\n", ColorDim(key+":"), value)
}
