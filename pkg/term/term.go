package term

import (
	"fmt"
	"runtime"
)

var escape string

const (
	FgBlack = iota + 30
	FgRed
	FgGreen
	FgYellow
	FgBlue
	FgMagenta
	FgCyan
	FgWhite
)

const (
	Reset = iota
	Bold
	Faint
)

func init() {
	switch runtime.GOOS {
	case "windows":
		escape = ""
	default:
		escape = "\x1b"
	}
}

// Blue returns s but colored blue
func Blue(s string) string { return color(FgCyan, s) }

// Green returns s but colored green
func Green(s string) string { return color(FgGreen, s) }

// Red returns s but colored red
func Red(s string) string { return color(FgRed, s) }

// Yellow returns s but colored yellow
func Yellow(s string) string { return color(FgYellow, s) }

// BoldRed returns s in bold red.
func BoldRed(s string) string { return colorMod(FgRed, Bold, s) }

// Dim returns s in faint text.
func Dim(s string) string { return colorMod(Reset, Faint, s) }

func color(color int, s string) string {
	if escape == "" {
		return s
	}
	return fmt.Sprintf("%[1]s[%dm%s%[1]s[0m", escape, color, s)
}

func colorMod(color, mod int, s string) string {
	if escape == "" {
		return s
	}
	return fmt.Sprintf("%[1]s[%d;%dm%s%[1]s[0m", escape, color, mod, s)
}
