// Package staticdata holds the immutable reference tables (courts, charges,
// solicitors, conditions) that form schemas reference by name. Tables are
// populated once at startup and never mutated, so a Registry is safe to share
// across concurrent readers without synchronization.
package staticdata

// Entry is a single normalized table row. Simple tables (courts, contact
// methods) carry only Value; richer tables expose alternate keys so field
// definitions can pick which attribute becomes the option value or label via
// optionKey/labelKey.
type Entry struct {
	ID    string
	Value string
	Label string
	// Keys holds alternate lookup attributes, e.g. "code" and "name" for
	// solicitors or "section" and "act" for charges.
	Keys map[string]string
	// Mandatory marks entries that are always selected and cannot be
	// toggled, such as the mandatory ADVO order.
	Mandatory bool
}

// Key returns the named alternate attribute, falling back to Value when the
// key is absent or empty.
func (e Entry) Key(name string) string {
	if name == "" {
		return e.Value
	}
	if v, ok := e.Keys[name]; ok && v != "" {
		return v
	}
	return e.Value
}

// Text returns the display label, falling back to Value.
func (e Entry) Text() string {
	if e.Label != "" {
		return e.Label
	}
	return e.Value
}

// Charge is one chargeable offence with its canonical description text.
type Charge struct {
	ID      string
	Value   string
	Section string
	Act     string
}

// ChargeCategory groups charges under a named offence category. Categories
// keep their declaration order so rendered forms are deterministic.
type ChargeCategory struct {
	Name    string
	Label   string
	Charges []Charge
}

// OrganizationTemplate pre-fills subpoena recipient details for well-known
// organizations.
type OrganizationTemplate struct {
	Name    string
	Address string
}

func valuesToEntries(values []string) []Entry {
	out := make([]Entry, 0, len(values))
	for _, v := range values {
		out = append(out, Entry{Value: v})
	}
	return out
}
