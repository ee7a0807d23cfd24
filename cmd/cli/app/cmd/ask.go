package cmd

import (
	"fmt"

	"mylib/cmd/cli/app"
	"mylib/internal/core"
	"mylib/internal/core/handler"

	"github.com/spf13/cobra"
)

var (
	askRecord    string
	askEncoding  string
	askNumberMin int
	askNumberMax int
	askChoosePre string
	askChooseSuf string
	askFileExt   string
)

func init() {
	askCmd.PersistentFlags().StringVar(&askRecord, "record", "", "file the question and answer are written to")
	askCmd.PersistentFlags().StringVar(&askEncoding, "encoding", core.DefaultEncoding, "text encoding of the record file")
	askNumberCmd.Flags().IntVar(&askNumberMin, "min", 0, "smallest accepted number")
	askNumberCmd.Flags().IntVar(&askNumberMax, "max", 9, "largest accepted number")
	askChooseCmd.Flags().StringVar(&askChoosePre, "prefix", "", "text shown before every option")
	askChooseCmd.Flags().StringVar(&askChooseSuf, "suffix", "", "text shown after every option")
	askFileCmd.Flags().StringVar(&askFileExt, "ext", "", "required file extension, including the dot")

	askCmd.AddCommand(askConfirmCmd)
	askCmd.AddCommand(askNumberCmd)
	askCmd.AddCommand(askChooseCmd)
	askCmd.AddCommand(askTextCmd)
	askCmd.AddCommand(askFileCmd)
	askCmd.AddCommand(askPasswordCmd)
	rootCmd.AddCommand(askCmd)
}

var askCmd = &cobra.Command{
	Use:   "ask",
	Short: "Ask the user a question on the console",
	Long: `Ask a question and print the answer to stdout. Invalid answers are asked
again. With --record the question and answer are also written to a file.`,
}

var askConfirmCmd = &cobra.Command{
	Use:   "confirm <question>",
	Short: "Ask a yes/no question",
	Example: `  # Prints "yes" or "no"
  mylib ask confirm "Delete old backups?"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectAskCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleConfirm(args[0], askOptions())
	},
}

var askNumberCmd = &cobra.Command{
	Use:   "number <question>",
	Short: "Ask for a number between --min and --max",
	Example: `  # Accepts 1, 2, 3, 4 or 5
  mylib ask number --min 1 --max 5 "How many workers?"`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if askNumberMax < askNumberMin {
			return fmt.Errorf("--max (%d) must not be smaller than --min (%d)", askNumberMax, askNumberMin)
		}

		handler, err := app.InjectAskCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleNumber(args[0], askNumberMin, askNumberMax+1, askOptions())
	},
}

var askChooseCmd = &cobra.Command{
	Use:   "choose <question> <option>...",
	Short: "Ask the user to pick one option from a menu",
	Long: `Show a numbered menu and print the chosen option. When every option has
the form key=label only the labels are shown and the key is printed.`,
	Example: `  # Prints the chosen color
  mylib ask choose "Color?" red green blue

  # Shows the labels, prints "dev" or "prd"
  mylib ask choose "Environment?" dev=Development prd=Production`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectAskCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleChoose(args[0], args[1:], askChoosePre, askChooseSuf, askOptions())
	},
}

var askTextCmd = &cobra.Command{
	Use:   "text <prompt>",
	Short: "Ask for a non-blank line of text",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectAskCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleText(args[0], askOptions())
	},
}

var askFileCmd = &cobra.Command{
	Use:   "file <prompt>",
	Short: "Ask for the path of an existing file",
	Long:  `Ask for a path until it names an existing file. Quotes from drag and drop are removed.`,
	Example: `  # Re-asks until an existing .csv file is given
  mylib ask file --ext .csv "Input file: "`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectAskCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandleFile(args[0], askFileExt, askOptions())
	},
}

var askPasswordCmd = &cobra.Command{
	Use:   "password <prompt>",
	Short: "Ask for a secret without echoing it",
	Long:  `Ask for a non-empty secret. Requires a terminal. A recorded answer is written as <hidden>.`,
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		handler, err := app.InjectAskCommandHandler()
		if err != nil {
			return err
		}

		return handler.HandlePassword(args[0], askOptions())
	},
}

func askOptions() handler.AskOptions {
	return handler.AskOptions{
		RecordPath: askRecord,
		Encoding:   askEncoding,
	}
}
