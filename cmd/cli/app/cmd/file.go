package cmd

import (
	"mylib/cmd/cli/app"

	"github.com/spf13/cobra"
)

var (
	mkdirEmptyExistOK bool
	copyMeta          bool
)

func init() {
	mkdirEmptyCmd.Flags().BoolVar(&mkdirEmptyExistOK, "exist-ok", false, "replace an existing path instead of failing")
	copyCmd.Flags().BoolVar(&copyMeta, "meta", false, "also copy permission bits and modification time")
	stageCmd.Flags().BoolVar(&fixPathNoLeadingPeriod, "no-leading-period", false, "replace a leading period in staged names")
	stageCmd.Flags().StringVar(&fixPathReplacement, "replacement", "_", "single character substituted for illegal ones")

	rootCmd.AddCommand(mkdirEmptyCmd)
	rootCmd.AddCommand(moveCmd)
	rootCmd.AddCommand(copyCmd)
	rootCmd.AddCommand(stageCmd)
}

var mkdirEmptyCmd = &cobra.Command{
	Use:   "mkdir-empty <path>",
	Short: "Create an empty directory",
	Long: `Create path and its parents. If path already exists the command fails,
unless --exist-ok is given, in which case its contents are deleted.`,
	Example: `  # Start a fresh build directory
  mylib mkdir-empty --exist-ok ./build`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectFileCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleMkdirEmpty(args[0], mkdirEmptyExistOK)
	},
}

var moveCmd = &cobra.Command{
	Use:   "move <src> <dst>",
	Short: "Move a file or directory",
	Long: `Move src to dst. If dst is an existing directory src is moved inside it.
Moves across filesystems fall back to copy and delete.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectFileCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleMove(args[0], args[1])
	},
}

var copyCmd = &cobra.Command{
	Use:   "copy <src> <dst>",
	Short: "Copy a file or directory",
	Long:  `Copy src to dst. If dst is an existing directory src is copied inside it.`,
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectFileCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleCopy(args[0], args[1], copyMeta)
	},
}

var stageCmd = &cobra.Command{
	Use:   "stage <dest> <src>...",
	Short: "Copy files into a directory under safe, unique names",
	Long: `Copy every src into dest. Names are made legal for this platform and
clashing names get a " (n)" suffix. Files are collected in a temporary
directory first, so dest only changes when every copy succeeded.`,
	Example: `  # Collect reports from several runs
  mylib stage ./collected run1/report.txt run2/report.txt`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		opts, err := fixOptionsFromFlags()
		if err != nil {
			return err
		}

		handler, err := app.InjectFileCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleStage(args[0], args[1:], opts)
	},
}
