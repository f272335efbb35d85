package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

var stdout io.Writer = os.Stdout

// structured reports whether results are printed as json or yaml.
func structured() bool {
	return outputFormat == outputJSON || outputFormat == outputYAML
}

// emit prints v in the selected structured format, or the text rendering.
func emit(v any, text func() string) error {
	return writeOutput(stdout, outputFormat, v, text)
}

func writeOutput(w io.Writer, format string, v any, text func() string) error {
	switch format {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode json: %w", err)
		}
		return nil
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return fmt.Errorf("encode yaml: %w", err)
		}
		return enc.Close()
	default:
		_, err := fmt.Fprintln(w, text())
		return err
	}
}
