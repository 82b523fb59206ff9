package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rustlite-lang/rustlitec/internal/diag"
	"github.com/rustlite-lang/rustlitec/internal/parser"
	"github.com/rustlite-lang/rustlitec/internal/render"
)

func newASTCmd(flags *driverFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "ast <file>",
		Short: "Print the parsed AST of a rustlite source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := flags.resolveConfig(cmd)
			if err != nil {
				return err
			}

			return runAST(args[0], cfg.Format)
		},
	}
}

func runAST(path, format string) error {
	source, err := os.ReadFile(path)
	if err != nil {
		return diag.WrapFileError("open", path, err)
	}

	p := parser.New(string(source))
	program := p.ParseProgram()

	if p.HasErrors() {
		diag.WriteParseErrors(os.Stderr, p.Errors())
		os.Exit(1)
	}

	switch format {
	case "json":
		out, err := render.JSON(program)
		if err != nil {
			return err
		}

		fmt.Println(string(out))
	default:
		fmt.Println(render.SExpr(program))
	}

	return nil
}
