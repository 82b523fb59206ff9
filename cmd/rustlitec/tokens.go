package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustlite-lang/rustlitec/internal/diag"
	"github.com/rustlite-lang/rustlitec/internal/lexer"
	"github.com/rustlite-lang/rustlitec/internal/token"
)

func newTokensCmd(flags *driverFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "tokens <file>",
		Short: "Print the token stream for a rustlite source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTokens(args[0])
		},
	}
}

func runTokens(path string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return diag.WrapFileError("open", path, err)
	}

	l := lexer.New(string(source))
	for {
		tok := l.NextToken()
		if tok.Kind == token.EOF {
			return nil
		}

		fmt.Printf("%s %s\n", tok.Kind, tok.Lexeme)
	}
}
