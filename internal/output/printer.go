// Package output formats CLI command output.
package output

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
)

// Printer writes formatted messages to the terminal. Colors are
// disabled automatically when NO_COLOR is set or the terminal is dumb.
type Printer struct {
	out       io.Writer
	errW      io.Writer
	useColors bool
}

func NewPrinter() *Printer {
	return &Printer{
		out:       os.Stdout,
		errW:      os.Stderr,
		useColors: colorsEnabled(),
	}
}

// NewPrinterTo writes to the given writers with colors off. Used in tests.
func NewPrinterTo(out, errW io.Writer) *Printer {
	return &Printer{out: out, errW: errW}
}

func colorsEnabled() bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	if os.Getenv("TERM") == "dumb" {
		return false
	}
	return true
}

func (p *Printer) Print(format string, args ...interface{}) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

func (p *Printer) Success(format string, args ...interface{}) {
	if p.useColors {
		color.New(color.FgGreen).Fprintf(p.out, "✓ "+format+"\n", args...)
	} else {
		fmt.Fprintf(p.out, "[OK] "+format+"\n", args...)
	}
}

func (p *Printer) Warning(format string, args ...interface{}) {
	if p.useColors {
		color.New(color.FgYellow).Fprintf(p.errW, "⚠ "+format+"\n", args...)
	} else {
		fmt.Fprintf(p.errW, "[WARN] "+format+"\n", args...)
	}
}

func (p *Printer) Error(format string, args ...interface{}) {
	if p.useColors {
		color.New(color.FgRed).Fprintf(p.errW, "✗ "+format+"\n", args...)
	} else {
		fmt.Fprintf(p.errW, "[ERROR] "+format+"\n", args...)
	}
}

// Header prints a section title with an underline.
func (p *Printer) Header(title string) {
	if p.useColors {
		color.New(color.FgWhite, color.Bold).Fprintf(p.out, "\n%s\n", title)
		color.New(color.FgWhite).Fprintf(p.out, "%s\n", strings.Repeat("─", len([]rune(title))))
	} else {
		fmt.Fprintf(p.out, "\n%s\n%s\n", title, strings.Repeat("-", len([]rune(title))))
	}
}

func (p *Printer) Dim(text string) string {
	if p.useColors {
		return color.New(color.Faint).Sprint(text)
	}
	return text
}
