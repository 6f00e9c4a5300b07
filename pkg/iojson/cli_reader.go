package iojson

import (
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// PayloadReader reads a JSON document from the file named by its flag, or
// from stdin when the flag is unset.
type PayloadReader struct {
	fileFlagValue string

	// Stdin overrides os.Stdin. When set it is never treated as a terminal.
	Stdin io.Reader
}

// Flag returns the --file flag bound to the reader.
func (pr *PayloadReader) Flag() *cli.StringFlag {
	return &cli.StringFlag{
		Name:        "file",
		Aliases:     []string{"f"},
		Usage:       "path to JSON file (reads from stdin if not provided)",
		Destination: &pr.fileFlagValue,
	}
}

// Source names where Read takes its input from, for messages.
func (pr *PayloadReader) Source() string {
	if pr.fileFlagValue != "" {
		return pr.fileFlagValue
	}
	return "stdin"
}

// Read returns the raw payload without decoding it.
func (pr *PayloadReader) Read() ([]byte, error) {
	if pr.fileFlagValue != "" {
		data, err := os.ReadFile(pr.fileFlagValue)
		if err != nil {
			return nil, fmt.Errorf("open file: %w", err)
		}
		return data, nil
	}

	reader := pr.Stdin
	if reader == nil {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			return nil, fmt.Errorf("no input provided (stdin is a terminal); use -f flag or pipe JSON input")
		}
		reader = os.Stdin
	}

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("read stdin: %w", err)
	}
	return data, nil
}
