package model

// FieldNames lists the LogRecord fields in canonical column order.
var FieldNames = []string{"src_ip", "dst_ip", "protocol", "src_port", "dst_port", "action"}

// LogRecord represents a single parsed firewall event.
// All fields are stored verbatim as extracted from the log line.
type LogRecord struct {
	SrcIP    string `json:"src_ip"`    // source address token
	DstIP    string `json:"dst_ip"`    // destination address token
	Protocol string `json:"protocol"`  // e.g. TCP, UDP
	SrcPort  string `json:"src_port"`  // digits only, not range-checked
	DstPort  string `json:"dst_port"`  // digits only, not range-checked
	Action   string `json:"action"`    // e.g. ALLOWED, BLOCKED
}

// Field returns the value of the named field. The second return value is
// false for field names outside FieldNames.
func (r LogRecord) Field(name string) (string, bool) {
	switch name {
	case "src_ip":
		return r.SrcIP, true
	case "dst_ip":
		return r.DstIP, true
	case "protocol":
		return r.Protocol, true
	case "src_port":
		return r.SrcPort, true
	case "dst_port":
		return r.DstPort, true
	case "action":
		return r.Action, true
	default:
		return "", false
	}
}

// Collection is an ordered sequence of records in source-line order.
// Duplicates are permitted.
type Collection []LogRecord

// Filter returns the records satisfying pred, preserving order.
// The receiver is never modified.
func (c Collection) Filter(pred func(LogRecord) bool) Collection {
	out := make(Collection, 0, len(c))
	for _, r := range c {
		if pred(r) {
			out = append(out, r)
		}
	}
	return out
}

// FilterByField returns the records whose named field equals value exactly
// (case-sensitive). An unknown field name matches nothing.
func (c Collection) FilterByField(field, value string) Collection {
	return c.Filter(func(r LogRecord) bool {
		v, ok := r.Field(field)
		return ok && v == value
	})
}
