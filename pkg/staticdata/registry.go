package staticdata

import (
	"fmt"
	"sort"
)

// ErrUnknownTable is wrapped by Table lookups that miss. A miss indicates a
// schema referencing a table that was never registered, which is a
// configuration error and must fail fast.
var ErrUnknownTable = fmt.Errorf("staticdata: unknown table")

// Registry is the read-only lookup surface for reference tables. Construct it
// once with Default or Load; it exposes no mutation API afterwards.
type Registry struct {
	tables           map[string][]Entry
	chargeCategories []ChargeCategory
	organizations    map[string]OrganizationTemplate
}

// Table returns the named table. Unknown names fail with ErrUnknownTable.
func (r *Registry) Table(name string) ([]Entry, error) {
	entries, ok := r.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTable, name)
	}
	return entries, nil
}

// Has reports whether a table is registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.tables[name]
	return ok
}

// Tables returns the sorted list of registered table names.
func (r *Registry) Tables() []string {
	names := make([]string, 0, len(r.tables))
	for name := range r.tables {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ChargeCategories returns the offence categories in declaration order.
func (r *Registry) ChargeCategories() []ChargeCategory {
	return r.chargeCategories
}

// Organization returns the pre-fill template for a known organization name.
func (r *Registry) Organization(name string) (OrganizationTemplate, bool) {
	tpl, ok := r.organizations[name]
	return tpl, ok
}
