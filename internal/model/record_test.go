package model

import "testing"

func sample() Collection {
	return Collection{
		{SrcIP: "10.0.0.1", DstIP: "10.0.0.2", Protocol: "TCP", SrcPort: "1000", DstPort: "80", Action: "ALLOWED"},
		{SrcIP: "10.0.0.3", DstIP: "10.0.0.2", Protocol: "UDP", SrcPort: "53", DstPort: "53", Action: "BLOCKED"},
		{SrcIP: "10.0.0.1", DstIP: "10.0.0.4", Protocol: "TCP", SrcPort: "1001", DstPort: "443", Action: "BLOCKED"},
		{SrcIP: "10.0.0.3", DstIP: "10.0.0.2", Protocol: "UDP", SrcPort: "53", DstPort: "53", Action: "BLOCKED"}, // duplicate allowed
	}
}

func TestField(t *testing.T) {
	rec := LogRecord{SrcIP: "1.2.3.4", DstIP: "5.6.7.8", Protocol: "TCP", SrcPort: "80", DstPort: "8080", Action: "ALLOWED"}

	for _, name := range FieldNames {
		if _, ok := rec.Field(name); !ok {
			t.Errorf("expected field %q to resolve", name)
		}
	}
	if v, _ := rec.Field("dst_port"); v != "8080" {
		t.Errorf("expected dst_port 8080, got %q", v)
	}
	if _, ok := rec.Field("nonexistent"); ok {
		t.Error("expected unknown field to report false")
	}
}

func TestFilterByField(t *testing.T) {
	c := sample()

	blocked := c.FilterByField("action", "BLOCKED")
	if len(blocked) != 3 {
		t.Fatalf("expected 3 blocked records, got %d", len(blocked))
	}
	for _, r := range blocked {
		if r.Action != "BLOCKED" {
			t.Errorf("filter leaked record with action %q", r.Action)
		}
	}

	// Order is preserved relative to the source collection.
	if blocked[0].SrcIP != "10.0.0.3" || blocked[1].SrcIP != "10.0.0.1" {
		t.Errorf("filter reordered records: %+v", blocked)
	}

	// The source collection is unaffected.
	if len(c) != 4 {
		t.Errorf("source collection mutated, len %d", len(c))
	}
}

func TestFilterByFieldCaseSensitive(t *testing.T) {
	c := sample()

	if got := c.FilterByField("action", "blocked"); len(got) != 0 {
		t.Errorf("expected case-sensitive match, got %d records", len(got))
	}
}

func TestFilterByFieldUnknownField(t *testing.T) {
	c := sample()

	if got := c.FilterByField("severity", "high"); len(got) != 0 {
		t.Errorf("expected empty result for unknown field, got %d records", len(got))
	}
}

func TestFilterByFieldEmptyCollection(t *testing.T) {
	var c Collection

	if got := c.FilterByField("action", "BLOCKED"); len(got) != 0 {
		t.Errorf("expected empty result over empty collection, got %d records", len(got))
	}
}

func TestFilterByFieldIdempotent(t *testing.T) {
	c := sample()

	once := c.FilterByField("action", "BLOCKED")
	twice := once.FilterByField("action", "BLOCKED")

	if len(once) != len(twice) {
		t.Fatalf("expected idempotent filter, got %d then %d", len(once), len(twice))
	}
	for i := range once {
		if once[i] != twice[i] {
			t.Errorf("record %d changed on re-filter: %+v vs %+v", i, once[i], twice[i])
		}
	}
}
