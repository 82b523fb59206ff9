// Package diag renders rustlite diagnostics to the exact wire format
// the CLI contract requires, and wraps the file-IO errors the driver
// encounters before any lexing or parsing happens.
package diag

import (
	"fmt"
	"io"

	"github.com/juju/errors"

	"github.com/rustlite-lang/rustlitec/internal/parser"
)

// FormatParseError renders a single parser diagnostic as
// "Parse error [line <n>]: <message>", the literal format the CLI
// contract mandates.
func FormatParseError(err parser.ParseError) string {
	return fmt.Sprintf("Parse error [line %d]: %s", err.Line, err.Message)
}

// WriteParseErrors writes every error in errs to w, one per line, in
// the order given (insertion order, monotonic in source position).
func WriteParseErrors(w io.Writer, errs []parser.ParseError) {
	for _, err := range errs {
		fmt.Fprintln(w, FormatParseError(err))
	}
}

// WrapFileError annotates a file-system error encountered by the
// driver (not by the lexer or parser, which never fail fatally) with
// the operation and path that caused it, using juju/errors the way
// this corpus's template-engine repo annotates its own I/O errors.
func WrapFileError(op, path string, err error) error {
	if err == nil {
		return nil
	}

	return errors.Annotatef(err, "%s %q", op, path)
}
