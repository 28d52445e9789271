package parser

import (
	"fmt"
	"testing"
)

// BenchmarkFirewallParser measures matching throughput on a well-formed line.
func BenchmarkFirewallParser(b *testing.B) {
	p := NewFirewallParser()
	line := "Jan 1 00:00:00 kernel: SRC=192.168.1.5 DST=10.0.0.1 PROTO=TCP SPT=443 DPT=51515 ACTION=BLOCKED"

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p.Parse(line)
	}
}

// BenchmarkFirewallParserNoMatch measures rejection throughput.
func BenchmarkFirewallParserNoMatch(b *testing.B) {
	p := NewFirewallParser()
	line := "Jan 1 00:00:00 kernel: martian source from lo, dropping"

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p.Parse(line)
	}
}

// BenchmarkFirewallParserMixed measures sustained throughput over a batch of
// matching and non-matching lines.
func BenchmarkFirewallParserMixed(b *testing.B) {
	p := NewFirewallParser()

	lines := make([]string, 1000)
	for i := range lines {
		switch i % 3 {
		case 0:
			lines[i] = fmt.Sprintf("SRC=10.0.0.%d DST=10.0.1.%d PROTO=TCP SPT=%d DPT=443 ACTION=ALLOWED", i%255, i%255, 1024+i)
		case 1:
			lines[i] = fmt.Sprintf("kernel: SRC=172.16.0.%d DST=8.8.8.8 PROTO=UDP SPT=%d DPT=53 ACTION=BLOCKED", i%255, 1024+i)
		case 2:
			lines[i] = fmt.Sprintf("audit: event %d without connection fields", i)
		}
	}

	b.ResetTimer()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		p.Parse(lines[i%1000])
	}
}
