package report

import (
	"fmt"
	"html"
	"io"
	"sort"
	"strings"

	"github.com/cybertec-postgresql/oraql/pkg/types"
)

// HTMLReporter formats a Metadata record and its source as an HTML page
// with every rule hit highlighted inline.
type HTMLReporter struct{}

// NewHTMLReporter creates a new HTML reporter.
func NewHTMLReporter() *HTMLReporter {
	return &HTMLReporter{}
}

type span struct {
	start, end int
	rule       string
	desc       string
}

// Format writes an HTML page highlighting every rule hit in src.
func (r *HTMLReporter) Format(md types.Metadata, src string, writer io.Writer) error {
	spans := collectSpans(md)
	if err := r.writeHeader(md, writer); err != nil {
		return err
	}
	if err := r.writeSummary(md, writer); err != nil {
		return err
	}
	if err := r.writeSource(src, spans, writer); err != nil {
		return err
	}
	return r.writeFooter(writer)
}

// collectSpans flattens every rule's hit locations into one sorted,
// non-overlapping list: a span already covered by an earlier (lower
// source-order) rule is dropped rather than nested, since CYAR rules never
// need to highlight the same bytes twice in practice.
func collectSpans(md types.Metadata) []span {
	var spans []span
	for _, hit := range md.Rules {
		for _, loc := range hit.Locations {
			spans = append(spans, span{start: loc.Offset.Start, end: loc.Offset.End, rule: hit.Name, desc: hit.ShortDesc})
		}
	}
	sort.Slice(spans, func(i, j int) bool { return spans[i].start < spans[j].start })

	var out []span
	end := -1
	for _, s := range spans {
		if s.start < end {
			continue
		}
		out = append(out, s)
		end = s.end
	}
	return out
}

func objectName(md types.Metadata) string {
	for _, om := range []*types.ObjectMetadata{md.Function, md.Procedure, md.Trigger} {
		if om != nil {
			return om.Name
		}
	}
	if md.View != nil {
		return md.View.Name
	}
	return "(query)"
}

func (r *HTMLReporter) writeHeader(md types.Metadata, writer io.Writer) error {
	_, err := fmt.Fprintf(writer, `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>oraql analysis: %s</title>
    <style>
        * { margin: 0; padding: 0; box-sizing: border-box; }
        body { font-family: -apple-system, BlinkMacSystemFont, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif; background: #f5f5f5; color: #333; }
        .container { max-width: 1200px; margin: 0 auto; padding: 20px; }
        header { background: #2c3e50; color: white; padding: 30px 0; margin-bottom: 30px; }
        header h1 { font-size: 2em; margin-bottom: 10px; }
        .summary { background: white; border-radius: 8px; padding: 25px; margin-bottom: 30px; box-shadow: 0 2px 4px rgba(0,0,0,0.1); }
        .summary h2 { margin-bottom: 15px; color: #2c3e50; }
        .rule-item { padding: 8px 0; border-bottom: 1px solid #ecf0f1; }
        .rule-name { font-family: 'Courier New', monospace; font-weight: bold; color: #3498db; }
        .source { background: #282c34; color: #abb2bf; font-family: 'Courier New', monospace; font-size: 0.9em; line-height: 1.6; border-radius: 6px; padding: 20px; overflow-x: auto; white-space: pre-wrap; }
        mark.hit { background: rgba(231, 76, 60, 0.35); color: inherit; border-bottom: 2px solid #e74c3c; }
        footer { text-align: center; padding: 30px 0; color: #7f8c8d; font-size: 0.9em; }
    </style>
</head>
<body>
    <header>
        <div class="container">
            <h1>oraql analysis: %s</h1>
        </div>
    </header>
    <div class="container">
`, html.EscapeString(objectName(md)), html.EscapeString(objectName(md)))
	return err
}

func (r *HTMLReporter) writeSummary(md types.Metadata, writer io.Writer) error {
	if len(md.Rules) == 0 {
		_, err := io.WriteString(writer, "        <section class=\"summary\"><h2>No rule hits</h2></section>\n")
		return err
	}
	var b strings.Builder
	b.WriteString("        <section class=\"summary\">\n            <h2>Rule hits</h2>\n")
	for _, hit := range md.Rules {
		fmt.Fprintf(&b, "            <div class=\"rule-item\"><span class=\"rule-name\">%s</span> — %s (%d match(es))</div>\n",
			html.EscapeString(hit.Name), html.EscapeString(hit.ShortDesc), len(hit.Locations))
	}
	b.WriteString("        </section>\n")
	_, err := io.WriteString(writer, b.String())
	return err
}

func (r *HTMLReporter) writeSource(src string, spans []span, writer io.Writer) error {
	var b strings.Builder
	b.WriteString("        <section class=\"source\">")
	pos := 0
	for _, s := range spans {
		if s.start > pos {
			b.WriteString(html.EscapeString(src[pos:s.start]))
		}
		fmt.Fprintf(&b, `<mark class="hit" title="%s: %s">%s</mark>`,
			html.EscapeString(s.rule), html.EscapeString(s.desc), html.EscapeString(src[s.start:s.end]))
		pos = s.end
	}
	if pos < len(src) {
		b.WriteString(html.EscapeString(src[pos:]))
	}
	b.WriteString("</section>\n")
	_, err := io.WriteString(writer, b.String())
	return err
}

func (r *HTMLReporter) writeFooter(writer io.Writer) error {
	_, err := io.WriteString(writer, `        <footer>Generated by oraql</footer>
    </div>
</body>
</html>
`)
	return err
}

// FormatString returns md and src rendered as an HTML string.
func (r *HTMLReporter) FormatString(md types.Metadata, src string) (string, error) {
	var buf strings.Builder
	if err := r.Format(md, src, &buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// Name returns the name of this reporter.
func (r *HTMLReporter) Name() string {
	return "html"
}
