package handler

import (
	"fmt"
	"io"
	"strings"

	"mylib/internal/core"
	"mylib/internal/core/domain"
	"mylib/internal/ports"
)

// AskOptions controls where answers are recorded. An empty RecordPath
// disables recording.
type AskOptions struct {
	RecordPath string
	Encoding   string
}

type AskCommandHandler struct {
	prompter   *core.Prompter
	fileSystem ports.FileSystem
	out        io.Writer
}

func ProvideAskCommandHandler(prompter *core.Prompter, fileSystem ports.FileSystem, out io.Writer) AskCommandHandler {
	return AskCommandHandler{
		prompter:   prompter,
		fileSystem: fileSystem,
		out:        out,
	}
}

func (h *AskCommandHandler) HandleConfirm(message string, opts AskOptions) error {
	yes, err := h.prompter.YesNo(message)
	if err != nil {
		return err
	}
	answer := "no"
	if yes {
		answer = "yes"
	}
	return h.answer(message, answer, answer, opts)
}

func (h *AskCommandHandler) HandleNumber(message string, start, stop int, opts AskOptions) error {
	number, err := h.prompter.BoundedNumber(message, start, stop)
	if err != nil {
		return err
	}
	answer := fmt.Sprint(number)
	return h.answer(message, answer, answer, opts)
}

// HandleChoose offers args as a menu. When every arg has the form
// key=label the labels are shown and the key is answered.
func (h *AskCommandHandler) HandleChoose(question string, args []string, prefix, suffix string, opts AskOptions) error {
	var (
		answer string
		err    error
	)
	if entries, ok := parseKeyedOptions(args); ok {
		answer, err = core.Choose[string](h.prompter, question, domain.NewOptionMap(entries...), prefix, suffix)
	} else {
		answer, err = core.Choose[string](h.prompter, question, domain.NewOptionList(args...), prefix, suffix)
	}
	if err != nil {
		return err
	}
	return h.answer(question, answer, answer, opts)
}

func (h *AskCommandHandler) HandleText(message string, opts AskOptions) error {
	text, err := h.prompter.RequiredText(message)
	if err != nil {
		return err
	}
	return h.answer(message, text, text, opts)
}

func (h *AskCommandHandler) HandleFile(message, ext string, opts AskOptions) error {
	path, err := h.prompter.ExistingFilePath(message, ext)
	if err != nil {
		return err
	}
	return h.answer(message, path, path, opts)
}

func (h *AskCommandHandler) HandlePassword(message string, opts AskOptions) error {
	password, err := h.prompter.Password(message)
	if err != nil {
		return err
	}
	return h.answer(message, password, "<hidden>", opts)
}

// answer prints the answer and, if requested, records the question with the
// recorded form of the answer.
func (h *AskCommandHandler) answer(question, answer, recorded string, opts AskOptions) error {
	fmt.Fprintln(h.out, answer)
	if opts.RecordPath == "" {
		return nil
	}

	outputter, err := core.NewOutputter(h.fileSystem, opts.RecordPath, opts.Encoding)
	if err != nil {
		return err
	}
	return outputter.Output(fmt.Sprintf("%s\t%s\n", strings.TrimSpace(question), recorded))
}

func parseKeyedOptions(args []string) ([]domain.OptionEntry[string, string], bool) {
	if len(args) == 0 {
		return nil, false
	}
	entries := make([]domain.OptionEntry[string, string], 0, len(args))
	for _, arg := range args {
		key, label, found := strings.Cut(arg, "=")
		if !found || key == "" {
			return nil, false
		}
		entries = append(entries, domain.OptionEntry[string, string]{Key: key, Value: label})
	}
	return entries, true
}
