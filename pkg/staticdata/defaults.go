package staticdata

import "strconv"

// Default returns the registry preloaded with the production reference data.
// Call Load on top of it to overlay office-specific tables.
func Default() *Registry {
	tables := map[string][]Entry{
		"courts": valuesToEntries([]string{
			"Balmain Local Court",
			"Bankstown Local Court",
			"Blacktown Local Court",
			"Burwood Local Court",
			"Campbelltown District Court",
			"Campbelltown Local Court",
			"Downing Centre District Court",
			"Downing Centre Local Court",
			"Fairfield Local Court",
			"Hornsby Local Court",
			"Liverpool Local Court",
			"Manly Local Court",
			"Newtown Local Court",
			"Parramatta District Court",
			"Parramatta Local Court",
			"Penrith District Court",
			"Penrith Local Court",
			"Sutherland Local Court",
			"Sydney District Court",
			"Waverley Local Court",
		}),
		"contactMethods": valuesToEntries([]string{
			"Office attendance",
			"Phone call (incoming)",
			"Phone call (outgoing)",
			"Email",
			"Police station attendance",
			"Court appearance",
			"Conference",
			"Video conference",
		}),
		"matterTypes": valuesToEntries([]string{
			"Criminal - Summary",
			"Criminal - Indictable",
			"AVO",
			"Bail Application",
			"Appeal - District Court",
			"Appeal - Supreme Court",
			"Section 14 Application",
			"Committal Hearing",
			"Trial",
			"Sentence",
			"Mention",
		}),
		"listedForOptions": valuesToEntries([]string{
			"Mention",
			"Mention (Brief Reply)",
			"Brief Status",
			"Charge Certification",
			"Committal Hearing",
			"Case Conference Mention",
			"Hearing",
			"Sentence",
			"Plea of Guilty",
			"Representations",
			"Trial",
			"Section 14 Application",
			"Arraignment",
			"Return of Subpoena",
			"Compliance Mention",
		}),
		"sentenceMaterials": valuesToEntries([]string{
			"Character references",
			"Medical reports",
			"Psychological reports",
			"Traffic Offender Program certificate",
			"Anger Management certificate",
			"Drug & Alcohol counselling certificate",
			"Community service records",
		}),
		"outcomes": valuesToEntries([]string{
			"Not Guilty",
			"Guilty",
			"Adjourned",
			"Withdrawn",
			"Dismissed under s10",
			"Conditional Release Order",
			"Fine",
			"Community Service Order",
			"Intensive Correction Order",
			"Full-time imprisonment",
		}),
		"penalties": valuesToEntries([]string{
			"Section 10(1)(a) - Dismissal",
			"Section 10(1)(b) - Conditional Release Order without conviction",
			"Fine only",
			"Conditional Release Order with conviction",
			"Community Service Order",
			"Intensive Correction Order",
			"Full-time imprisonment",
		}),
		"prefixes": valuesToEntries([]string{"Mr", "Mrs", "Ms", "Miss", "Dr", "Prof"}),
		"fileNoteTypes": {
			{ID: "phoneCall", Value: "Phone Call", Label: "Phone Call"},
			{ID: "meeting", Value: "Meeting", Label: "Meeting"},
			{ID: "courtAppearance", Value: "Court Appearance", Label: "Court Appearance"},
			{ID: "correspondence", Value: "Correspondence", Label: "Correspondence"},
		},
		"correspondenceTypes":      valuesToEntries([]string{"Email", "Letter", "Fax", "Text Message"}),
		"correspondenceDirections": valuesToEntries([]string{"Sent", "Received", "Exchange"}),
		"phoneDirections":          valuesToEntries([]string{"Incoming", "Outgoing"}),
		"courtLevels":              valuesToEntries([]string{"Local Court", "District Court", "Supreme Court"}),
		"solicitors":               solicitorEntries(),
		"advoConditions":           advoConditionEntries(),
		"bailConditions": valuesToEntries([]string{
			"Reside at specified address",
			"Report to police station daily between 6am-6pm",
			"Report to police station Monday, Wednesday, Friday between 6am-6pm",
			"Report to police station weekly between 6am-6pm",
			"Not to contact specified person",
			"Not to contact prosecution witnesses",
			"Not to go within 100 metres of specified person",
			"Not to enter specified suburb/locality",
			"Not to leave New South Wales without written permission",
			"Surrender passport to police",
			"Curfew between 8pm-6am daily",
			"Not to consume alcohol",
			"Not to consume illicit drugs",
			"Not to enter licensed premises",
			"Not to drive a motor vehicle",
			"Not to apply for or obtain a passport",
			"Forfeit surety amount if breach conditions",
		}),
	}

	return &Registry{
		tables:           tables,
		chargeCategories: defaultChargeCategories(),
		organizations: map[string]OrganizationTemplate{
			"NSW Police": {
				Name:    "Commissioner of NSW Police",
				Address: "NSW Police Force\n1 Charles Street\nParramatta NSW 2150",
			},
		},
	}
}

func solicitorEntries() []Entry {
	solicitors := []struct{ code, name string }{
		{"AAG", "Alexander Georgieff"},
		{"RHH", "Rylie Hahn-Hamilton"},
		{"BJB", "Benjamin Brown"},
		{"SRS", "Sophia Seton"},
		{"NKM", "Natalie McDonald"},
	}
	out := make([]Entry, 0, len(solicitors))
	for _, s := range solicitors {
		out = append(out, Entry{
			Value: s.name,
			Keys:  map[string]string{"code": s.code, "name": s.name},
		})
	}
	return out
}

func advoConditionEntries() []Entry {
	conditions := []struct {
		num       int
		text      string
		mandatory bool
	}{
		{1, "Mandatory orders (prohibiting violence, threats, stalking, intimidation, harassment and destruction of property)", true},
		{2, "The defendant must not contact the protected person in any way, except through the defendant's legal representative", false},
		{3, "The defendant must not approach, contact or remain within 12 hours of any school, pre-school or childcare facility attended by any protected person under the age of 16 years", false},
		{4, "The defendant must not approach or contact the protected person while under the influence of alcohol or illicit drugs", false},
		{5, "The defendant must not locate or attempt to locate the protected person", false},
		{6, "The defendant may only contact the protected person through the defendant's legal representative for the purpose of conducting legal proceedings", false},
		{7, "The defendant must not reside at the same address as the protected person", false},
		{8, "The defendant must not enter or remain in the residence or place of employment of the protected person", false},
		{9, "The defendant must not approach within 100 metres of any protected person", false},
		{10, "The defendant must not possess a firearm or weapon", false},
		{11, "Other conditions as specified by the Court", false},
	}
	out := make([]Entry, 0, len(conditions))
	for _, c := range conditions {
		num := strconv.Itoa(c.num)
		out = append(out, Entry{
			ID:        "advo_" + num,
			Value:     num,
			Label:     c.text,
			Mandatory: c.mandatory,
		})
	}
	return out
}

func defaultChargeCategories() []ChargeCategory {
	return []ChargeCategory{
		{Name: "violence", Label: "Violence Offences", Charges: []Charge{
			{ID: "affray", Value: "Affray - s93C Crimes Act", Section: "s93C", Act: "Crimes Act"},
			{ID: "assault", Value: "Common Assault - s61 Crimes Act", Section: "s61", Act: "Crimes Act"},
			{ID: "abh", Value: "Assault occasioning ABH - s59 Crimes Act", Section: "s59", Act: "Crimes Act"},
			{ID: "assault_police", Value: "Assault Police - s60 Crimes Act", Section: "s60", Act: "Crimes Act"},
			{ID: "resist", Value: "Resist Officer - s58 Crimes Act", Section: "s58", Act: "Crimes Act"},
			{ID: "hinder", Value: "Hinder Officer - s546C Crimes Act", Section: "s546C", Act: "Crimes Act"},
		}},
		{Name: "domestic", Label: "Domestic Offences", Charges: []Charge{
			{ID: "breach_avo", Value: "Breach AVO - s14 CDPV Act", Section: "s14", Act: "CDPV Act"},
			{ID: "stalk", Value: "Stalk/Intimidate - s13 CDPV Act", Section: "s13", Act: "CDPV Act"},
			{ID: "destroy", Value: "Destroy/Damage Property - s195 Crimes Act", Section: "s195", Act: "Crimes Act"},
			{ID: "threaten", Value: "Use Carriage Service to Menace/Harass - s474.17 Criminal Code", Section: "s474.17", Act: "Criminal Code"},
		}},
		{Name: "traffic", Label: "Traffic Offences", Charges: []Charge{
			{ID: "low_pca", Value: "Low Range PCA - s110(3) Road Transport Act", Section: "s110(3)", Act: "Road Transport Act"},
			{ID: "mid_pca", Value: "Mid Range PCA - s110(4) Road Transport Act", Section: "s110(4)", Act: "Road Transport Act"},
			{ID: "high_pca", Value: "High Range PCA - s110(5) Road Transport Act", Section: "s110(5)", Act: "Road Transport Act"},
			{ID: "disqualified", Value: "Drive whilst disqualified - s54(1) Road Transport Act", Section: "s54(1)", Act: "Road Transport Act"},
			{ID: "suspended", Value: "Drive whilst suspended - s54(1) Road Transport Act", Section: "s54(1)", Act: "Road Transport Act"},
			{ID: "unlicensed", Value: "Drive unlicensed - s53 Road Transport Act", Section: "s53", Act: "Road Transport Act"},
			{ID: "exceed_speed", Value: "Exceed Speed Limit - s20 Road Transport Act", Section: "s20", Act: "Road Transport Act"},
			{ID: "negligent", Value: "Negligent Driving - s117 Road Transport Act", Section: "s117", Act: "Road Transport Act"},
		}},
		{Name: "drug", Label: "Drug Offences", Charges: []Charge{
			{ID: "possess", Value: "Possess Prohibited Drug - s10 DMTA", Section: "s10", Act: "DMTA"},
			{ID: "supply", Value: "Supply Prohibited Drug - s25 DMTA", Section: "s25", Act: "DMTA"},
			{ID: "use", Value: "Use Prohibited Drug - s11 DMTA", Section: "s11", Act: "DMTA"},
			{ID: "implements", Value: "Possess Drug Implements - s11A DMTA", Section: "s11A", Act: "DMTA"},
		}},
		{Name: "property", Label: "Property Offences", Charges: []Charge{
			{ID: "larceny", Value: "Larceny - s117 Crimes Act", Section: "s117", Act: "Crimes Act"},
			{ID: "goods", Value: "Goods in Custody - s527C Crimes Act", Section: "s527C", Act: "Crimes Act"},
			{ID: "break_enter", Value: "Break Enter & Steal - s112 Crimes Act", Section: "s112", Act: "Crimes Act"},
			{ID: "fraud", Value: "Fraud - s192E Crimes Act", Section: "s192E", Act: "Crimes Act"},
		}},
		{Name: "public_order", Label: "Public order Offences", Charges: []Charge{
			{ID: "behave_offensive", Value: "Behave in offensive manner - s4 SOA", Section: "s4", Act: "SOA"},
			{ID: "language", Value: "Use offensive language - s4A SOA", Section: "s4A", Act: "SOA"},
			{ID: "fail_move", Value: "Fail to move on - s197 LEPR", Section: "s197", Act: "LEPR"},
			{ID: "custody", Value: "Custody of knife - s11C SOA", Section: "s11C", Act: "SOA"},
		}},
	}
}
