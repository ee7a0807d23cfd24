package core

import (
	"errors"
	"fmt"

	"mylib/internal/ports"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/htmlindex"
)

var ErrUnknownEncoding = errors.New("unknown encoding")

const DefaultEncoding = "utf-8"

// Outputter appends text to a file that it truncates when created, so the
// file always holds exactly what was written through it.
type Outputter struct {
	fileSystem   ports.FileSystem
	path         string
	encodingName string
	encoding     encoding.Encoding
}

// NewOutputter creates or truncates path. encodingName is any WHATWG
// encoding label such as "utf-8" or "shift_jis"; empty means UTF-8.
func NewOutputter(fileSystem ports.FileSystem, path, encodingName string) (*Outputter, error) {
	if encodingName == "" {
		encodingName = DefaultEncoding
	}
	enc, err := htmlindex.Get(encodingName)
	if err != nil {
		return nil, fmt.Errorf("%w '%s'", ErrUnknownEncoding, encodingName)
	}
	canonical, err := htmlindex.Name(enc)
	if err != nil {
		canonical = encodingName
	}

	file, err := fileSystem.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}
	if err := file.Close(); err != nil {
		return nil, fmt.Errorf("failed to create output file: %w", err)
	}

	return &Outputter{
		fileSystem:   fileSystem,
		path:         path,
		encodingName: canonical,
		encoding:     enc,
	}, nil
}

func (o *Outputter) Path() string {
	return o.path
}

func (o *Outputter) Encoding() string {
	return o.encodingName
}

// Output appends text in the outputter's encoding.
func (o *Outputter) Output(text string) error {
	encoded, err := o.encoding.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return fmt.Errorf("failed to encode output as %s: %w", o.encodingName, err)
	}

	file, err := o.fileSystem.Append(o.path)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}
	if _, err := file.Write(encoded); err != nil {
		file.Close()
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return file.Close()
}
