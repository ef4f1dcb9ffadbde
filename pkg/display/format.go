package display

import (
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"
	"github.com/pterm/pterm"
)

// isTerminal reports whether stdout is an interactive terminal
func isTerminal() bool {
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}

// colorCapable reports whether the terminal supports color at all
func colorCapable() bool {
	return termenv.ColorProfile() != termenv.Ascii
}

// Bold returns the string formatted as bold using pterm. Formatting is
// only applied on a color-capable terminal.
func Bold(s string) string {
	if !isTerminal() || !colorCapable() {
		return s
	}
	return pterm.Bold.Sprint(s)
}

// BoldUpper returns the string in uppercase and bold
func BoldUpper(s string) string {
	return Bold(strings.ToUpper(s))
}
