/*
Package report formats an Analyze result for human consumption: a JSON
dump of the full Metadata record, and an HTML page that renders the
analyzed source with every rule hit highlighted inline. Both formatters
are pure functions of a Metadata plus the source text that produced it —
neither touches a filesystem or a network; both write to whatever
io.Writer the caller supplies.
*/
package report

import (
	"fmt"
	"io"

	"github.com/cybertec-postgresql/oraql/pkg/types"
)

// Formatter renders an analysis result to writer.
type Formatter interface {
	Format(md types.Metadata, src string, writer io.Writer) error
	Name() string
}

// FormatType names a supported report format.
type FormatType string

const (
	FormatJSON FormatType = "json"
	FormatHTML FormatType = "html"
)

// GetFormatter returns a formatter for the given format type.
func GetFormatter(format FormatType) (Formatter, error) {
	switch format {
	case FormatJSON:
		return NewJSONReporter(), nil
	case FormatHTML:
		return NewHTMLReporter(), nil
	default:
		return nil, fmt.Errorf("unsupported format: %s (supported: %v)", format, SupportedFormats())
	}
}

// ValidFormat reports whether format names a supported FormatType.
func ValidFormat(format string) bool {
	switch FormatType(format) {
	case FormatJSON, FormatHTML:
		return true
	default:
		return false
	}
}

// SupportedFormats returns every supported format name.
func SupportedFormats() []string {
	return []string{string(FormatJSON), string(FormatHTML)}
}
