package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/mgutz/ansi"
)

var (
	// Check if output supports colors
	supportsColor = isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())

	// Color functions
	ColorSuccess  = colorFunc(ansi.Green)
	ColorError    = colorFunc(ansi.Red)
	ColorWarning  = colorFunc(ansi.Yellow)
	ColorInfo     = colorFunc(ansi.Cyan)
	ColorProgress = colorFunc(ansi.Blue)
	ColorBold     = colorFunc("default+b")
	ColorDim      = colorFunc("default+h")
)

// colorFunc returns a function that colors text if supported
func colorFunc(color string) func(string) string {
	return func(text string) string {
		if supportsColor {
			return ansi.Color(text, color)
		}
		return text
	}
}

// SupportsColor reports whether stdout is a terminal
func SupportsColor() bool {
	return supportsColor
}

// ShowHeader writes a framed header
func ShowHeader(w io.Writer, title string) {
	width := 60
	fmt.Fprintln(w, strings.Repeat("=", width))
	fmt.Fprintln(w, ColorBold(title))
	fmt.Fprintln(w, strings.Repeat("=", width))
}

// ShowError writes an error. The first line is highlighted and any cause or
// suggestion lines follow dimmed.
func ShowError(w io.Writer, err error) {
	lines := strings.Split(err.Error(), "\n")
	fmt.Fprintf(w, "%s %s\n", ColorError("ERROR:"), lines[0])
	for _, line := range lines[1:] {
		fmt.Fprintf(w, "  %s\n", ColorDim(line))
	}

	if suggestion := getSuggestion(err.Error()); suggestion != "" {
		fmt.Fprintf(w, "\n  %s %s\n", ColorInfo("TIP:"), ColorInfo(suggestion))
	}
}

// getSuggestion returns a hint for common failures that carry no suggestion of their own
func getSuggestion(message string) string {
	if strings.Contains(message, "Suggestions:") {
		return ""
	}
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "permission denied"):
		return "Check that the output location is writable"
	case strings.Contains(lower, "no space left"):
		return "Free disk space or choose another output path"
	case strings.Contains(lower, "connection refused"):
		return "Verify the warehouse host and port and that the server is running"
	default:
		return ""
	}
}

// FormatCount formats n with thousands separators
func FormatCount(n int) string {
	if n < 0 {
		return "-" + FormatCount(-n)
	}
	s := fmt.Sprintf("%d", n)
	if len(s) <= 3 {
		return s
	}

	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}
