package prompt

import (
	"fmt"
	"strings"
	"time"
)

// Derived fields. Fixed-shape documents compute some tokens from the raw
// field values before substitution; these helpers own those rules.

// ChargesText joins the charges carried on the client record, the selected
// charge checkboxes, and the free-text additional charge into a single
// comma-separated line. A counts value above one appends a counts suffix.
func ChargesText(clientCharges string, selected []string, additional string, counts int) string {
	parts := make([]string, 0, len(selected)+2)
	if clientCharges != "" {
		parts = append(parts, clientCharges)
	}
	for _, s := range selected {
		if s != "" {
			parts = append(parts, s)
		}
	}
	if additional != "" {
		parts = append(parts, additional)
	}
	text := strings.Join(parts, ", ")
	if counts > 1 && text != "" {
		text += fmt.Sprintf(" (%d counts)", counts)
	}
	if text == "" {
		return "No charges specified"
	}
	return text
}

// LegalAidDetails formats the legal aid lines of a client care letter.
// Approved matters carry the contribution; private matters carry the fee
// estimate and any deposit already paid.
func LegalAidDetails(status, contribution, estimate, depositPaid, depositAmount string) string {
	if status == "Yes" {
		section := "Legal Aid: YES"
		if contribution != "" {
			section += "\nContribution: " + contribution
		}
		return section
	}
	section := "Legal Aid: NO"
	if estimate != "" {
		section += "\nEstimate: " + estimate
	}
	if depositPaid == "Yes" && depositAmount != "" {
		section += "\nDeposit: " + depositAmount + " (PAID)"
	}
	return section
}

// AllocatedTo joins the checked allocation solicitor codes for a court
// diary request.
func AllocatedTo(selected []string) string {
	codes := make([]string, 0, len(selected))
	for _, s := range selected {
		if s != "" {
			codes = append(codes, s)
		}
	}
	if len(codes) == 0 {
		return "Not specified"
	}
	return strings.Join(codes, ", ")
}

// FileNoteDetails builds the type-specific detail lines of a file note.
// Only the fields belonging to the note type are consulted; absent fields
// contribute no line.
func FileNoteDetails(noteType string, bag DataBag) string {
	var lines []string
	add := func(label, key string) {
		if v := bag.String(key); v != "" {
			lines = append(lines, label+": "+v)
		}
	}
	switch noteType {
	case "Phone Call":
		add("Direction", "phoneDirection")
		add("Phone", "phoneNumber")
	case "Meeting":
		add("Location", "meetingLocation")
		add("Attendees", "attendees")
	case "Court Appearance":
		add("Court", "courtName")
		add("Magistrate", "magistrate")
	case "Correspondence":
		add("Type", "correspondenceType")
		add("Direction", "correspondenceDirection")
	}
	return strings.Join(lines, "\n")
}

// ActionSection wraps a recorded action in its file note heading, or renders
// nothing when no action was taken.
func ActionSection(action string) string {
	if action == "" {
		return ""
	}
	return "ACTION TAKEN:\n" + action
}

// FollowUpSection wraps a follow-up note in its file note heading.
func FollowUpSection(followUp string) string {
	if followUp == "" {
		return ""
	}
	return "FOLLOW-UP:\n" + followUp
}

// ProceedingsNumberLine renders the optional proceedings number line of a
// subpoena.
func ProceedingsNumberLine(number string) string {
	if number == "" {
		return ""
	}
	return "Proceedings Number: " + number
}

// PartyDescription maps the matter style to the subpoena signature block
// party. Crown matters name the client as the accused.
func PartyDescription(partyType string) string {
	if partyType == "R v" {
		return "Accused"
	}
	return "Defendant"
}

// FormatLongDate renders an ISO date as the long Australian form used in
// formal documents, e.g. "22 October 2025". Unparseable input renders empty.
func FormatLongDate(iso string) string {
	if iso == "" {
		return ""
	}
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return ""
	}
	return t.Format("2 January 2006")
}
