// Package cmd implements the schemer CLI's command tree, mirroring the
// teacher's cmd/dwscript/cmd layout: one file per subcommand, each
// registering itself on rootCmd from its own init.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var verbose bool

var rootCmd = &cobra.Command{
	Use:   "schemer",
	Short: "An embeddable R5RS-flavored Scheme interpreter",
	Long: `schemer is a Go implementation of a small R5RS-flavored Scheme.

It reads one datum at a time from a file or the interactive prompt,
evaluates it against the standard primitive library, and prints the
result using the language's own write syntax.`,
	Version: Version,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func exitWithError(msg string, args ...any) {
	fmt.Fprintf(os.Stderr, "Error: "+msg+"\n", args...)
	os.Exit(1)
}
