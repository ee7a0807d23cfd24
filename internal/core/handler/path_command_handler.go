package handler

import (
	"fmt"
	"io"

	"mylib/internal/core"
	"mylib/internal/core/domain"

	"gopkg.in/yaml.v3"
)

const (
	FormatText = "text"
	FormatYaml = "yaml"
)

type FixPathResult struct {
	Original string `yaml:"original"`
	Fixed    string `yaml:"fixed"`
	Changed  bool   `yaml:"changed"`
}

type FixPathReport struct {
	Flavor string          `yaml:"flavor"`
	Paths  []FixPathResult `yaml:"paths"`
}

type PathCommandHandler struct {
	fileOperations *core.FileOperations
	out            io.Writer
}

func ProvidePathCommandHandler(fileOperations *core.FileOperations, out io.Writer) PathCommandHandler {
	return PathCommandHandler{
		fileOperations: fileOperations,
		out:            out,
	}
}

func (h *PathCommandHandler) HandleFixPath(paths []string, flavor domain.Flavor, opts domain.FixOptions, format string) error {
	report := FixPathReport{Flavor: flavor.String()}
	for _, path := range paths {
		fixed, err := domain.FixPath(path, flavor, opts)
		if err != nil {
			return err
		}
		report.Paths = append(report.Paths, FixPathResult{Original: path, Fixed: fixed, Changed: fixed != path})
	}

	switch format {
	case FormatText, "":
		for _, result := range report.Paths {
			fmt.Fprintln(h.out, result.Fixed)
		}
		return nil
	case FormatYaml:
		data, err := yaml.Marshal(report)
		if err != nil {
			return fmt.Errorf("failed to marshal report: %w", err)
		}
		_, err = h.out.Write(data)
		return err
	default:
		return fmt.Errorf("unknown output format '%s' (expected %s or %s)", format, FormatText, FormatYaml)
	}
}

func (h *PathCommandHandler) HandleFreeName(path string, isDir bool) error {
	free, err := h.fileOperations.AvoidOverwrite(path, isDir)
	if err != nil {
		return err
	}
	fmt.Fprintln(h.out, free)
	return nil
}

func (h *PathCommandHandler) HandleTempPath(ext string) error {
	path, err := h.fileOperations.CreateTempPath(ext)
	if err != nil {
		return err
	}
	fmt.Fprintln(h.out, path)
	return nil
}
