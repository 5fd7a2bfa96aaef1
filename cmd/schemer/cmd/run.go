package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gophersource/schemer/internal/introspect"
	"github.com/gophersource/schemer/internal/printer"
	"github.com/gophersource/schemer/pkg/schemer"
)

var (
	evalExpr    string
	dumpAST     bool
	dumpASTJSON bool
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Scheme file or expression",
	Long: `Read and evaluate every top-level datum in a file or inline
expression. Each result is printed only when --verbose is set.

Examples:
  # Run a script file
  schemer run script.scm

  # Evaluate an inline expression
  schemer run -e "(+ 1 2)"

  # Dump the parsed datum tree, then evaluate it
  schemer run --dump-ast script.scm
  schemer run --dump-ast-json script.scm`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScript,
}

func init() {
	rootCmd.AddCommand(runCmd)

	runCmd.Flags().StringVarP(&evalExpr, "eval", "e", "", "evaluate inline code instead of reading from file")
	runCmd.Flags().BoolVar(&dumpAST, "dump-ast", false, "print the parsed datum tree using the printer")
	runCmd.Flags().BoolVar(&dumpASTJSON, "dump-ast-json", false, "print the parsed datum tree as JSON")
}

func runScript(_ *cobra.Command, args []string) error {
	var input, filename string
	switch {
	case evalExpr != "":
		input, filename = evalExpr, "<eval>"
	case len(args) == 1:
		filename = args[0]
		content, err := os.ReadFile(filename)
		if err != nil {
			return fmt.Errorf("failed to read file %s: %w", filename, err)
		}
		input = string(content)
	default:
		return fmt.Errorf("either provide a file path or use -e flag for inline code")
	}

	heap := schemer.NewHeap()
	datums, err := schemer.Read(input, filename, heap)
	if err != nil {
		return err
	}

	if dumpAST || dumpASTJSON {
		for _, d := range datums {
			if dumpAST {
				fmt.Println(printer.Write(d))
			}
			if dumpASTJSON {
				j, err := introspect.DatumToJSON(d)
				if err != nil {
					return err
				}
				fmt.Println(j)
			}
		}
	}

	env := heap.NewEnvironment(nil)
	schemer.LoadPrimitives(env)

	for _, d := range datums {
		result, err := schemer.Eval(d, env)
		if err != nil {
			return err
		}
		if verbose {
			fmt.Println(printer.Write(result))
		}
	}
	return nil
}
