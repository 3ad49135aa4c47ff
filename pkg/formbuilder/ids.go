package formbuilder

import "strings"

// normalizeID lowercases a value and collapses whitespace runs into
// underscores, matching the identifier scheme generated options have always
// used ("Yes - Conditional Bail" -> "yes_-_conditional_bail").
func normalizeID(value string) string {
	return strings.ToLower(strings.Join(strings.Fields(value), "_"))
}

// groupID derives the identifier of the conditional group a trigger value
// reveals.
func groupID(triggerID, value string) string {
	return triggerID + "_" + normalizeID(value)
}

// optionID derives a per-option identifier from a prefix and option value when
// the option carries no explicit id.
func optionID(prefix, value string) string {
	return prefix + normalizeID(value)
}
