package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/rustlite-lang/rustlitec/internal/ast"
	"github.com/rustlite-lang/rustlitec/internal/diag"
	"github.com/rustlite-lang/rustlitec/internal/parser"
)

func newParseCmd(flags *driverFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>...",
		Short: "Parse one or more rustlite source files and report diagnostics",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runParse(args)
		},
	}
}

// parseResult is what one file's parse produces, in file order.
type parseResult struct {
	path    string
	program *ast.Program
	errs    []parser.ParseError
}

// runParse parses every file independently. Independent Parser
// instances over independent sources have no shared state (spec.md
// §5), so the fan-out below is bounded only by GOMAXPROCS, not by any
// ordering requirement between files.
func runParse(paths []string) error {
	results := make([]parseResult, len(paths))

	group := new(errgroup.Group)
	group.SetLimit(runtime.GOMAXPROCS(0))

	for i, path := range paths {
		i, path := i, path

		group.Go(func() error {
			source, err := os.ReadFile(path)
			if err != nil {
				return diag.WrapFileError("open", path, err)
			}

			p := parser.New(string(source))
			program := p.ParseProgram()

			results[i] = parseResult{path: path, program: program, errs: p.Errors()}

			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return err
	}

	anyErrors := false

	for _, res := range results {
		if len(res.errs) > 0 {
			anyErrors = true

			if len(paths) > 1 {
				fmt.Fprintf(os.Stderr, "%s:\n", res.path)
			}

			diag.WriteParseErrors(os.Stderr, res.errs)

			continue
		}

		if len(paths) > 1 {
			fmt.Printf("%s: parsed successfully: %d top-level statement(s).\n", res.path, len(res.program.Statements))
		} else {
			fmt.Printf("Parsed successfully: %d top-level statement(s).\n", len(res.program.Statements))
		}
	}

	if anyErrors {
		os.Exit(1)
	}

	return nil
}
