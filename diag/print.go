package diag

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/term"

	"github.com/npillmayer/nibble"
)

// Options control the output of Fprint.
type Options struct {
	Color   bool // highlight kinds and excerpts with ANSI colors
	Excerpt int  // number of input bytes to show at each position; 0 for default
}

const defaultExcerpt = 20

// UseColor reports whether f is a terminal, i.e. whether colored output
// makes sense.
func UseColor(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

type palette struct {
	kind, custom, pos, text *color.Color
}

func makePalette(enabled bool) palette {
	p := palette{
		kind:   color.New(color.FgRed, color.Bold),
		custom: color.New(color.FgBlue, color.Bold),
		pos:    color.New(color.FgYellow),
		text:   color.New(color.FgCyan),
	}
	for _, c := range []*color.Color{p.kind, p.custom, p.pos, p.text} {
		if enabled {
			c.EnableColor()
		} else {
			c.DisableColor()
		}
	}
	return p
}

// Fprint writes the cause chain of err to w, one line per error, indented
// by depth. Errors with position show the byte offset and an excerpt of the
// input at that offset:
//
//	custom(1) @0 "Host example.com\r\n"
//	  delimiter-not-found @0 "Host example.com\r\n"
func Fprint(w io.Writer, input []byte, err *nibble.ParseError, opts Options) error {
	if err == nil {
		return nil
	}
	n := opts.Excerpt
	if n <= 0 {
		n = defaultExcerpt
	}
	pal := makePalette(opts.Color)
	var b strings.Builder
	for _, f := range Frames(input, err) {
		b.WriteString(strings.Repeat("  ", f.Depth))
		if f.Kind.IsCustom() {
			b.WriteString(pal.custom.Sprint(f.Kind.String()))
		} else {
			b.WriteString(pal.kind.Sprint(f.Kind.String()))
		}
		if f.HasPosition() {
			b.WriteString(" ")
			b.WriteString(pal.pos.Sprintf("@%d", f.Offset))
			b.WriteString(" ")
			b.WriteString(pal.text.Sprint(excerpt(input[f.Offset:], n)))
		}
		b.WriteString("\n")
	}
	_, e := io.WriteString(w, b.String())
	return e
}

func excerpt(at []byte, max int) string {
	if len(at) > max {
		return fmt.Sprintf("%q…", at[:max])
	}
	return fmt.Sprintf("%q", at)
}
