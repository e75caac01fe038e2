package cli

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/cybertec-postgresql/oraql/internal/logger"
	"github.com/cybertec-postgresql/oraql/internal/report"
	"github.com/cybertec-postgresql/oraql/internal/rules"
	"github.com/cybertec-postgresql/oraql/pkg/types"
	oraql "github.com/cybertec-postgresql/oraql"
)

// openOutput opens path for writing, or stdout when path is "-" or empty.
func openOutput(path string) (*os.File, func(), error) {
	if path == "-" || path == "" {
		return os.Stdout, func() {}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, func() { f.Close() }, nil
}

// Analyze reads file, analyzes it as kind against the context loaded from
// ctxPath (if any), and writes the formatted result to output.
func Analyze(kind, file, ctxPath, format, output string, verbose bool) error {
	logger.SetVerbose(verbose)

	src, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", file, err)
	}
	ctx, err := LoadContext(ctxPath)
	if err != nil {
		return err
	}

	logger.Debug("analyzing %s as %s", file, kind)
	md, err := oraql.Analyze(kind, string(src), ctx)
	if err != nil {
		return fmt.Errorf("analyze failed: %w", err)
	}

	if !report.ValidFormat(format) {
		return fmt.Errorf("unsupported format: %s (supported: %v)", format, report.SupportedFormats())
	}
	formatter, err := report.GetFormatter(report.FormatType(format))
	if err != nil {
		return err
	}

	writer, closeFn, err := openOutput(output)
	if err != nil {
		return err
	}
	defer closeFn()

	if err := formatter.Format(md, string(src), writer); err != nil {
		return fmt.Errorf("failed to format analysis: %w", err)
	}
	if output != "-" && output != "" {
		fmt.Fprintf(os.Stderr, "Report written to %s\n", output)
	}
	return nil
}

// Transpile reads file, applies ruleName once at loc (the rule's first
// reported match when loc is empty), and writes the edited text to output. When
// validate is set, the edited text is additionally parsed with PostgreSQL's
// real grammar before being written, and any syntax error aborts the write.
func Transpile(kind, file, ruleName, loc, ctxPath, output string, validate bool) error {
	src, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", file, err)
	}
	ctx, err := LoadContext(ctxPath)
	if err != nil {
		return err
	}

	var locPtr *types.TextRange
	if loc != "" {
		start, end, err := parseLocationFlag(loc)
		if err != nil {
			return err
		}
		tr := types.NewTextRange(string(src), start, end)
		locPtr = &tr
	}

	result, err := oraql.ApplyRule(kind, string(src), ruleName, locPtr, ctx)
	if err != nil {
		return fmt.Errorf("apply %s failed: %w", ruleName, err)
	}

	if validate {
		if errs := oraql.ValidatePostgres(result.EditedText); len(errs) > 0 {
			return fmt.Errorf("edited text failed PostgreSQL validation: %w", errors.Join(errs...))
		}
	}

	writer, closeFn, err := openOutput(output)
	if err != nil {
		return err
	}
	defer closeFn()

	if _, err := writer.WriteString(result.EditedText); err != nil {
		return fmt.Errorf("failed to write edited text: %w", err)
	}
	if output != "-" && output != "" {
		fmt.Fprintf(os.Stderr, "Edited text written to %s\n", output)
	}
	return nil
}

// parseLocationFlag parses a "start:end" byte-offset pair.
func parseLocationFlag(loc string) (start, end int, err error) {
	if _, err := fmt.Sscanf(loc, "%d:%d", &start, &end); err != nil {
		return 0, 0, fmt.Errorf("invalid --location %q, expected start:end byte offsets", loc)
	}
	return start, end, nil
}

// RulesList prints every registered rule's name, applicable kinds, and
// description, one per line.
func RulesList() {
	for _, r := range rules.Registry {
		var kinds []string
		for k, applies := range r.AppliesTo {
			if applies {
				kinds = append(kinds, k.String())
			}
		}
		sort.Strings(kinds)
		fmt.Printf("%s\t%v\t%s\n", r.Name, kinds, r.ShortDesc)
	}
}
