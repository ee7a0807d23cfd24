package cmd

import (
	"fmt"
	"unicode/utf8"

	"mylib/cmd/cli/app"
	"mylib/internal/core/domain"
	"mylib/internal/core/handler"

	"github.com/spf13/cobra"
)

var (
	fixPathFlavor          string
	fixPathNoLeadingPeriod bool
	fixPathReplacement     string
	fixPathOutput          string
	freeNameDir            bool
	tempPathExt            string
)

func init() {
	fixPathCmd.Flags().StringVar(&fixPathFlavor, "flavor", domain.CurrentFlavor().String(), "path syntax to fix for (posix or windows)")
	fixPathCmd.Flags().BoolVar(&fixPathNoLeadingPeriod, "no-leading-period", false, "replace a leading period in every component")
	fixPathCmd.Flags().StringVar(&fixPathReplacement, "replacement", "_", "single character substituted for illegal ones")
	fixPathCmd.Flags().StringVarP(&fixPathOutput, "output", "o", handler.FormatText, "output format (text or yaml)")
	freeNameCmd.Flags().BoolVar(&freeNameDir, "dir", false, "treat the path as a directory")
	tempPathCmd.Flags().StringVar(&tempPathExt, "ext", "", "extension appended to the generated name, including the dot")

	rootCmd.AddCommand(fixPathCmd)
	rootCmd.AddCommand(freeNameCmd)
	rootCmd.AddCommand(tempPathCmd)
}

var fixPathCmd = &cobra.Command{
	Use:   "fix-path <path>...",
	Short: "Rewrite paths so they are legal file names",
	Long: `Replace characters and names that the target platform refuses.

On posix every ':' is replaced. On windows the characters : * ? " < > | and
control characters are replaced, a trailing period is replaced, and device
names like CON or LPT1 are escaped. Drive and root anchors are kept as is.`,
	Example: `  # Fix a name for the current platform
  mylib fix-path 'meeting 12:00.txt'

  # Check what windows would need, as yaml
  mylib fix-path --flavor windows -o yaml 'C:\logs\aux.txt' 'what?.md'`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		flavor, err := domain.ParseFlavor(fixPathFlavor)
		if err != nil {
			return err
		}
		opts, err := fixOptionsFromFlags()
		if err != nil {
			return err
		}

		handler, err := app.InjectPathCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleFixPath(args, flavor, opts, fixPathOutput)
	},
}

var freeNameCmd = &cobra.Command{
	Use:   "free-name <path>",
	Short: "Print the first name that does not exist yet",
	Long: `Print path if nothing exists there, otherwise the first free variant
with " (n)" appended to the file stem (or to the whole name with --dir).`,
	Example: `  # report.txt exists, prints "report (1).txt"
  mylib free-name report.txt`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectPathCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleFreeName(args[0], freeNameDir)
	},
}

var tempPathCmd = &cobra.Command{
	Use:   "temp-path",
	Short: "Print an unused path in the temporary directory",
	Long:  `Print a path in the system temporary directory where nothing exists yet. Nothing is created.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectPathCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleTempPath(tempPathExt)
	},
}

func fixOptionsFromFlags() (domain.FixOptions, error) {
	if utf8.RuneCountInString(fixPathReplacement) != 1 {
		return domain.FixOptions{}, fmt.Errorf("replacement must be a single character, got '%s'", fixPathReplacement)
	}
	replacement, _ := utf8.DecodeRuneInString(fixPathReplacement)
	return domain.FixOptions{
		AllowLeadingPeriod: !fixPathNoLeadingPeriod,
		Replacement:        replacement,
	}, nil
}
