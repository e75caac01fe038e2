package report

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/cybertec-postgresql/oraql/pkg/types"
)

// JSONReporter formats a Metadata record as JSON.
type JSONReporter struct{}

// NewJSONReporter creates a new JSON reporter.
func NewJSONReporter() *JSONReporter {
	return &JSONReporter{}
}

// Format writes md as indented JSON to writer. src is accepted to satisfy
// the Formatter interface but unused: the JSON form carries byte offsets,
// not highlighted source.
func (r *JSONReporter) Format(md types.Metadata, _ string, writer io.Writer) error {
	data, err := json.MarshalIndent(md, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	if _, err := writer.Write(data); err != nil {
		return fmt.Errorf("failed to write JSON output: %w", err)
	}
	_, err = writer.Write([]byte("\n"))
	return err
}

// FormatString returns md as a JSON string.
func (r *JSONReporter) FormatString(md types.Metadata) (string, error) {
	data, err := json.MarshalIndent(md, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal metadata to JSON: %w", err)
	}
	return string(data), nil
}

// Name returns the name of this reporter.
func (r *JSONReporter) Name() string {
	return "json"
}
