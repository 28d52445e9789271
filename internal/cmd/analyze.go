package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/mohammedkshemsu/firewall-log-analyzer/internal/aggregator"
	"github.com/mohammedkshemsu/firewall-log-analyzer/internal/model"
	"github.com/mohammedkshemsu/firewall-log-analyzer/internal/output"
	"github.com/mohammedkshemsu/firewall-log-analyzer/internal/parser"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var analyzeCmd = &cobra.Command{
	Use:   "analyze [paths...]",
	Short: "Parse firewall logs and print the tabular view",
	Long: `Parse one or more firewall log files (or glob patterns) and print the
extracted records as a table, followed by the blocked-traffic subset.

With no arguments the configured default log file is analyzed.

Examples:
  firewall-log-analyzer analyze
  firewall-log-analyzer analyze /var/log/firewall.log
  firewall-log-analyzer analyze "/var/log/**/*.log" --output json`,
	Args: cobra.ArbitraryArgs,
	RunE: runAnalyze,
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	paths, err := resolvePaths(args)
	if err != nil {
		return err
	}

	records, ok := aggregatePaths(paths)
	if !ok {
		return nil // missing source already reported, informational
	}
	if len(records) == 0 {
		fmt.Println("No valid log data found.")
		return nil
	}

	renderer := newRenderer()

	fmt.Println("\n--- Parsed Firewall Logs ---")
	if err := renderer.Render(records); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	blocked := records.FilterByField("action", "BLOCKED")
	fmt.Println("\n--- Blocked Traffic ---")
	if err := renderer.Render(blocked); err != nil {
		return fmt.Errorf("render failed: %w", err)
	}

	return nil
}

// resolvePaths expands glob arguments to file paths, falling back to the
// configured default log file when no arguments were given.
func resolvePaths(args []string) ([]string, error) {
	if len(args) == 0 {
		return []string{viper.GetString("log_file")}, nil
	}

	var paths []string
	for _, arg := range args {
		matches, err := doublestar.FilepathGlob(arg, doublestar.WithFilesOnly())
		if err != nil {
			return nil, fmt.Errorf("invalid pattern %q: %w", arg, err)
		}
		if len(matches) == 0 {
			// Not a pattern match; treat as a literal path so a missing
			// file gets the usual informational message.
			paths = append(paths, arg)
			continue
		}
		paths = append(paths, matches...)
	}
	return paths, nil
}

// aggregatePaths parses every path into one ordered collection.
// A missing source prints an informational message and returns ok=false.
func aggregatePaths(paths []string) (model.Collection, bool) {
	agg := aggregator.New(newParser())

	var records model.Collection
	for _, path := range paths {
		fmt.Printf("Analyzing logs from %s...\n", path)

		recs, err := agg.AggregateFile(path)
		if err != nil {
			if errors.Is(err, aggregator.ErrSourceUnavailable) {
				fmt.Printf("Error: log file not found: %s\n", path)
				return nil, false
			}
			fmt.Printf("Error: could not read %s: %v\n", path, err)
			return nil, false
		}
		records = append(records, recs...)
	}
	return records, true
}

// newParser builds the firewall parser, wiring the stderr trace hook when
// verbose mode is on.
func newParser() parser.Parser {
	p := parser.NewFirewallParser()
	if verbose {
		p.Trace = func(line string, matched bool) {
			if matched {
				fmt.Fprintf(os.Stderr, "matched: %s\n", line)
			} else {
				fmt.Fprintf(os.Stderr, "skipped: %s\n", line)
			}
		}
	}
	return p
}

// newRenderer picks the output renderer from the --output flag.
func newRenderer() output.Renderer {
	switch strings.ToLower(outputFmt) {
	case "json":
		return output.NewJSONRenderer()
	default:
		return output.NewTableRenderer()
	}
}
