// Command rustlitec is the rustlite front-end driver: it reads source
// files and prints their token stream, their parsed AST, or a parse
// summary. It is the external collaborator spec.md places outside the
// core lexer/parser pipeline — no design decision here feeds back
// into the core.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
