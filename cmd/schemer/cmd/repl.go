package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/gophersource/schemer/internal/config"
	"github.com/gophersource/schemer/internal/printer"
	"github.com/gophersource/schemer/internal/schemerr"
	"github.com/gophersource/schemer/pkg/schemer"
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Start an interactive read-eval-print loop",
	Long: `Start an interactive prompt that reads one datum at a time, evaluates
it against a fresh top-level environment, and prints the result.

An optional .schemerc.yaml in the working directory or $HOME configures
the prompt, scripts to preload, and whether to suppress color in error
output. Its history-file key is read but unused: the REPL keeps no input
history. A runtime error discards the in-flight form and
the loop continues.

Ctrl-D exits.`,
	RunE: runRepl,
}

func init() {
	rootCmd.AddCommand(replCmd)
}

func runRepl(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: failed to load .schemerc.yaml: %v\n", err)
		cfg = config.Default()
	}

	env := schemer.MakeTopLevelEnv()

	for _, path := range cfg.Preload {
		if err := evalFile(path, env); err != nil {
			fmt.Fprintf(os.Stderr, "error preloading %s: %v\n", path, err)
		}
	}

	return repl(os.Stdin, os.Stdout, cfg, env)
}

func evalFile(path string, env *schemer.Environment) error {
	content, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	datums, err := schemer.Read(string(content), path, env.Heap())
	if err != nil {
		return err
	}
	for _, d := range datums {
		if _, err := schemer.Eval(d, env); err != nil {
			return err
		}
	}
	return nil
}

func repl(in io.Reader, out io.Writer, cfg config.Config, env *schemer.Environment) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, cfg.Prompt)
		if !scanner.Scan() {
			fmt.Fprintln(out)
			return scanner.Err()
		}
		line := scanner.Text()
		if line == "" {
			continue
		}
		datums, err := schemer.Read(line, "<repl>", env.Heap())
		if err != nil {
			printReplError(out, cfg, err)
			continue
		}
		for _, d := range datums {
			result, err := schemer.Eval(d, env)
			if err != nil {
				printReplError(out, cfg, err)
				continue
			}
			fmt.Fprintln(out, printer.Write(result))
		}
	}
}

func printReplError(out io.Writer, cfg config.Config, err error) {
	if cfg.NoColor {
		fmt.Fprintf(out, "error: %v\n", err)
	} else {
		fmt.Fprintf(out, "\x1b[31merror: %v\x1b[0m\n", err)
	}
	if se, ok := schemerr.As(err); ok && len(se.Stack) > 0 {
		fmt.Fprintln(out, se.Stack.String())
	}
}
