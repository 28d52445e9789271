package parser

import (
	"regexp"
	"strings"

	"github.com/mohammedkshemsu/firewall-log-analyzer/internal/model"
)

// Parser attempts to extract a structured record from a raw log line.
// The boolean result distinguishes match from no-match; no-match is an
// expected outcome, not an error.
type Parser interface {
	Parse(line string) (model.LogRecord, bool)
}

// TraceFunc observes the match decision for each line. It is a diagnostic
// side channel only and never influences the parse result.
type TraceFunc func(line string, matched bool)

// firewallPattern recognizes the six key=value tokens of a kernel-style
// firewall log line, in fixed order, single-space separated. Addresses,
// protocol and action are any non-whitespace run; ports must be digits all
// the way to the next space, so a stray non-digit fails the whole line.
// The pattern is searched anywhere in the line, not anchored.
const firewallPattern = `SRC=(?P<src_ip>\S+) ` +
	`DST=(?P<dst_ip>\S+) ` +
	`PROTO=(?P<protocol>\S+) ` +
	`SPT=(?P<src_port>\d+) ` +
	`DPT=(?P<dst_port>\d+) ` +
	`ACTION=(?P<action>\S+)`

// FirewallParser extracts connection-event records from firewall log lines.
type FirewallParser struct {
	re *regexp.Regexp

	// Trace, if set, is called once per Parse with the trimmed line and
	// the match decision.
	Trace TraceFunc
}

// NewFirewallParser returns a parser for the fixed firewall log shape.
func NewFirewallParser() *FirewallParser {
	return &FirewallParser{
		re: regexp.MustCompile(firewallPattern),
	}
}

func (p *FirewallParser) Parse(line string) (model.LogRecord, bool) {
	trimmed := strings.TrimSpace(line)

	matches := p.re.FindStringSubmatch(trimmed)
	if matches == nil {
		p.trace(trimmed, false)
		return model.LogRecord{}, false
	}

	var rec model.LogRecord
	for i, name := range p.re.SubexpNames() {
		if i == 0 || name == "" {
			continue
		}
		switch name {
		case "src_ip":
			rec.SrcIP = matches[i]
		case "dst_ip":
			rec.DstIP = matches[i]
		case "protocol":
			rec.Protocol = matches[i]
		case "src_port":
			rec.SrcPort = matches[i]
		case "dst_port":
			rec.DstPort = matches[i]
		case "action":
			rec.Action = matches[i]
		}
	}

	p.trace(trimmed, true)
	return rec, true
}

func (p *FirewallParser) trace(line string, matched bool) {
	if p.Trace != nil {
		p.Trace(line, matched)
	}
}
