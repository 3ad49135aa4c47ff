package prompt

import "strings"

func renderBlock(name string, bag DataBag) string {
	switch name {
	case "conditionalSections":
		return conditionalSections(bag)
	default:
		return ""
	}
}

// conditionalSections synthesizes the letter-template block: an ADVO fragment
// when an ADVO was applied for, then a bail fragment when bail conditions
// exist. Each fragment interpolates its nested fields only when they are
// non-empty. "No" counts as absent for both gates.
func conditionalSections(bag DataBag) string {
	var out strings.Builder

	if applies(bag, "advoApplied") {
		out.WriteString("\nADVO: " + bag.String("advoApplied"))
		if bag.Has("protectedPerson") {
			out.WriteString("\nProtected Person: " + bag.String("protectedPerson"))
		}
		if bag.Has("advoFacts") {
			out.WriteString("\nADVO Facts: " + bag.String("advoFacts"))
		}
		if bag.Has("advoConditions") {
			out.WriteString("\nConditions: " + bag.String("advoConditions"))
		}
	}

	if applies(bag, "bailConditions") {
		out.WriteString("\nBAIL: " + bag.String("bailConditions"))
		if bag.Has("bailDetails") {
			out.WriteString("\nDetails: " + bag.String("bailDetails"))
		}
		if bag.Has("bailStandardConditions") {
			out.WriteString("\nConditions: " + bag.String("bailStandardConditions"))
		}
	}

	if bag.Has("sentenceMaterials") {
		out.WriteString("\n\nSentence Materials Required: " + bag.String("sentenceMaterials"))
	}

	return out.String()
}

func applies(bag DataBag, key string) bool {
	value := bag.String(key)
	return value != "" && value != "No"
}
