package main

import (
	"context"
	"fmt"
	"os"

	"github.com/cybertec-postgresql/oraql/internal/cli"
	urfavecli "github.com/urfave/cli/v3"
)

const version = "1.0.0"

func main() {
	app := &urfavecli.Command{
		Name:    "oraql",
		Usage:   "Oracle PL/SQL to PostgreSQL migration analyzer and transpiler",
		Version: version,
		Commands: []*urfavecli.Command{
			{
				Name:      "analyze",
				Usage:     "Analyze an Oracle PL/SQL object and report metadata and migration-rule hits",
				ArgsUsage: "<file>",
				Action:    analyzeCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.StringFlag{
						Name:     "kind",
						Aliases:  []string{"k"},
						Usage:    "object kind: function, procedure, trigger, view, or query",
						Required: true,
					},
					&urfavecli.StringFlag{
						Name:  "context",
						Usage: "path to a JSON file describing table/column types for %TYPE/%ROWTYPE resolution",
					},
					&urfavecli.StringFlag{
						Name:  "format",
						Usage: "output format (json or html)",
						Value: "json",
					},
					&urfavecli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "output file path (use - for stdout)",
						Value:   "-",
					},
					&urfavecli.BoolFlag{
						Name:  "verbose",
						Usage: "enable debug output",
					},
				},
			},
			{
				Name:   "rules",
				Usage:  "List every registered migration rule",
				Action: rulesCommand,
			},
			{
				Name:      "transpile",
				Usage:     "Apply one migration rule to an Oracle PL/SQL object and emit the rewritten text",
				ArgsUsage: "<file>",
				Action:    transpileCommand,
				Flags: []urfavecli.Flag{
					&urfavecli.StringFlag{
						Name:     "kind",
						Aliases:  []string{"k"},
						Usage:    "object kind: function, procedure, trigger, view, or query",
						Required: true,
					},
					&urfavecli.StringFlag{
						Name:     "rule",
						Aliases:  []string{"r"},
						Usage:    "rule name to apply, e.g. CYAR-0002",
						Required: true,
					},
					&urfavecli.StringFlag{
						Name:  "location",
						Usage: "byte-offset span start:end to apply at (default: the rule's first reported match)",
					},
					&urfavecli.StringFlag{
						Name:  "context",
						Usage: "path to a JSON file describing table/column types for %TYPE/%ROWTYPE resolution",
					},
					&urfavecli.StringFlag{
						Name:    "output",
						Aliases: []string{"o"},
						Usage:   "output file path (use - for stdout)",
						Value:   "-",
					},
					&urfavecli.BoolFlag{
						Name:  "validate",
						Usage: "after applying the rule, parse the result with PostgreSQL's grammar and report syntax errors",
					},
				},
			},
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func analyzeCommand(ctx context.Context, cmd *urfavecli.Command) error {
	file := cmd.Args().First()
	if file == "" {
		return fmt.Errorf("missing required argument <file>")
	}
	return cli.Analyze(cmd.String("kind"), file, cmd.String("context"), cmd.String("format"), cmd.String("output"), cmd.Bool("verbose"))
}

func rulesCommand(ctx context.Context, cmd *urfavecli.Command) error {
	cli.RulesList()
	return nil
}

func transpileCommand(ctx context.Context, cmd *urfavecli.Command) error {
	file := cmd.Args().First()
	if file == "" {
		return fmt.Errorf("missing required argument <file>")
	}
	return cli.Transpile(cmd.String("kind"), file, cmd.String("rule"), cmd.String("location"), cmd.String("context"), cmd.String("output"), cmd.Bool("validate"))
}
