// Package commands provides CLI command handlers for iranges.
package commands

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/sonali8434/IRanges/internal/cliutil"
)

// Output format constants
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatYAML = "yaml"
)

// StdinFilePath is the special file path used to indicate reading from stdin.
const StdinFilePath = "-"

// Writef writes formatted output to the writer.
func Writef(w io.Writer, format string, args ...any) {
	cliutil.Writef(w, format, args...)
}

// ValidateOutputFormat validates an output format and returns an error if invalid.
func ValidateOutputFormat(format string) error {
	if format != FormatText && format != FormatJSON && format != FormatYAML {
		return fmt.Errorf("invalid format '%s'. Valid formats: %s, %s, %s", format, FormatText, FormatJSON, FormatYAML)
	}
	return nil
}

// ParseSeparator validates that s is a single character and returns it.
func ParseSeparator(s string) (byte, error) {
	if len(s) != 1 {
		return 0, fmt.Errorf("separator must be a single character, got %q", s)
	}
	return s[0], nil
}

// MarshalStructured marshals data in the specified format (json or yaml).
func MarshalStructured(data any, format string) ([]byte, error) {
	var bytes []byte
	var err error

	switch format {
	case FormatJSON:
		bytes, err = json.MarshalIndent(data, "", "  ")
	case FormatYAML:
		bytes, err = yaml.Marshal(data)
	default:
		return nil, fmt.Errorf("invalid format for structured output: %s", format)
	}

	if err != nil {
		return nil, fmt.Errorf("marshaling to %s: %w", format, err)
	}
	return bytes, nil
}

// EmitStructured renders data in the given format to outputPath, or to
// stdout when outputPath is empty.
func EmitStructured(data any, format, outputPath string) error {
	bytes, err := MarshalStructured(data, format)
	if err != nil {
		return err
	}
	if outputPath == "" {
		fmt.Println(string(bytes))
		return nil
	}
	return cliutil.WriteOutputFile(outputPath, append(bytes, '\n'))
}

// EmitText writes pre-rendered text output to outputPath, or to stdout when
// outputPath is empty.
func EmitText(text, outputPath string) error {
	if outputPath == "" {
		Writef(os.Stdout, "%s", text)
		return nil
	}
	return cliutil.WriteOutputFile(outputPath, []byte(text))
}
