package cmd

import (
	"os"

	"mylib/internal/cli/output"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "mylib",
	Short: "Console prompts and filesystem helpers",
	Long: `mylib bundles small helpers for interactive scripts: console prompts
that re-ask until the answer is valid, and filesystem operations that avoid
clobbering existing files.

Common workflows:
  mylib fix-path 'report 12:00.txt'      Make a name legal on every platform
  mylib free-name notes.txt             Print the first unused "notes (n).txt"
  mylib stage ./out a.txt b.txt         Copy files into ./out without clashes
  mylib ask choose "Env?" dev prd       Ask the user to pick from a menu`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		output.PrintError(err.Error())
		os.Exit(1)
	}
}
