// Package bundle writes compiled modules as named AMD blocks.
package bundle

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"
	"sync"

	"go.trai.ch/jsxload/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.ModuleWriter = (*Writer)(nil)

// Writer emits compiled modules in AMD transport form. A module that
// already calls define anonymously gets its name inserted into that call;
// a module without a define call is wrapped as
//
//	define("name", ["require", "exports", "module"], function (require, exports, module) {
//	...
//	});
type Writer struct {
	mu sync.Mutex
	w  *bufio.Writer
}

// defineCall matches a define call at the start of a line, up to its
// opening parenthesis.
var defineCall = regexp.MustCompile(`(?m)^[ \t]*define[ \t]*\(`)

// NewWriter creates a Writer emitting into w.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// NewFactory returns a ports.ModuleWriterFactory creating Writers.
func NewFactory() ports.ModuleWriterFactory {
	return func(w io.Writer) ports.ModuleWriter {
		return NewWriter(w)
	}
}

// AsModule writes text as the module called name.
func (b *Writer) AsModule(name, text string) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	var sb strings.Builder
	if !writeTransport(&sb, name, text) {
		sb.WriteString("define(")
		sb.WriteString(strconv.Quote(name))
		sb.WriteString(`, ["require", "exports", "module"], function (require, exports, module) {`)
		sb.WriteByte('\n')
		sb.WriteString(text)
		if !strings.HasSuffix(text, "\n") {
			sb.WriteByte('\n')
		}
		sb.WriteString("});\n")
	}

	if _, err := b.w.WriteString(sb.String()); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write module"), "module", name)
	}
	if err := b.w.Flush(); err != nil {
		return zerr.With(zerr.Wrap(err, "failed to write module"), "module", name)
	}
	return nil
}

// writeTransport names the first define call of an AMD module. It reports
// false when text has no define call to name.
func writeTransport(sb *strings.Builder, name, text string) bool {
	loc := defineCall.FindStringIndex(text)
	if loc == nil {
		return false
	}

	rest := strings.TrimLeft(text[loc[1]:], " \t\r\n")
	if strings.HasPrefix(rest, `"`) || strings.HasPrefix(rest, "'") {
		// Already named.
		sb.WriteString(text)
	} else {
		sb.WriteString(text[:loc[1]])
		sb.WriteString(strconv.Quote(name))
		sb.WriteString(", ")
		sb.WriteString(text[loc[1]:])
	}
	if !strings.HasSuffix(text, "\n") {
		sb.WriteByte('\n')
	}
	return true
}
