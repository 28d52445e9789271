package aggregator

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/mohammedkshemsu/firewall-log-analyzer/internal/model"
	"github.com/mohammedkshemsu/firewall-log-analyzer/internal/parser"
)

// ErrSourceUnavailable indicates the log source could not be opened.
// It is the only condition that halts aggregation; callers match it with
// errors.Is.
var ErrSourceUnavailable = errors.New("log source unavailable")

// Aggregator reads a line source, parses each line, and collects successful
// extractions into an ordered Collection. Malformed lines are skipped.
type Aggregator struct {
	parser parser.Parser
}

// New creates an Aggregator that parses lines with the given parser.
func New(p parser.Parser) *Aggregator {
	return &Aggregator{parser: p}
}

// Aggregate reads lines from r in a single pass. Each matching line yields
// one record, appended in the order encountered; non-matching lines are
// skipped silently. The result may be empty, which is not an error.
func (a *Aggregator) Aggregate(r io.Reader) (model.Collection, error) {
	var records model.Collection

	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if rec, ok := a.parser.Parse(scanner.Text()); ok {
			records = append(records, rec)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading log source: %w", err)
	}

	return records, nil
}

// AggregateFile opens the file at path and aggregates its lines.
// A file that cannot be opened yields an error wrapping ErrSourceUnavailable.
func (a *Aggregator) AggregateFile(path string) (model.Collection, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrSourceUnavailable, path)
	}
	defer f.Close()

	return a.Aggregate(f)
}

// Stats holds summary counts over an aggregated collection.
type Stats struct {
	TotalRecords   int            `json:"total_records"`
	ActionCounts   map[string]int `json:"action_counts"`
	ProtocolCounts map[string]int `json:"protocol_counts"`
}

// Summarize computes per-action and per-protocol counts for a collection.
func Summarize(c model.Collection) Stats {
	s := Stats{
		TotalRecords:   len(c),
		ActionCounts:   make(map[string]int),
		ProtocolCounts: make(map[string]int),
	}
	for _, r := range c {
		s.ActionCounts[r.Action]++
		s.ProtocolCounts[r.Protocol]++
	}
	return s
}
