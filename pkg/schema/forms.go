package schema

func ref(table string) Options { return Options{Ref: table} }

func literals(values ...string) Options {
	opts := make([]OptionValue, 0, len(values))
	for _, v := range values {
		opts = append(opts, OptionValue{Value: v})
	}
	return Options{Values: opts}
}

// Default returns a registry preloaded with the production document types:
// CCL, Mention, Final, FeeReestimate, CDR, FileNote and Subpoena, plus the
// shared ADVO and bail special sections.
func Default() *Registry {
	r := NewRegistry()
	for _, def := range builtinForms() {
		if err := r.Register(def); err != nil {
			panic(err)
		}
	}
	if err := r.RegisterSpecial("advo-details", advoDetailsFields()); err != nil {
		panic(err)
	}
	if err := r.RegisterSpecial("bail-conditions", bailConditionFields()); err != nil {
		panic(err)
	}
	return r
}

func advoDetailsFields() []FieldDefinition {
	return []FieldDefinition{
		{Kind: KindDate, ID: "advoDate", Label: "ADVO Date"},
		{Kind: KindText, ID: "protectedPerson", Label: "Protected Person(s)"},
		{Kind: KindTextarea, ID: "advoFacts", Label: "ADVO Facts", Rows: 3},
		{Kind: KindCheckboxGroup, ID: "advoConditionGroup", Label: "ADVO Conditions", Options: ref("advoConditions"), Prefix: "advo_", DisplayFull: true},
	}
}

func bailConditionFields() []FieldDefinition {
	return []FieldDefinition{
		{Kind: KindTextarea, ID: "bailDetails", Label: "Bail Conditions Details", Rows: 4},
		{Kind: KindCheckboxGroup, ID: "bailConditionGroup", Label: "Standard Bail Conditions", Options: ref("bailConditions"), Prefix: "bail_"},
	}
}

func builtinForms() []FormDefinition {
	return []FormDefinition{cclForm(), mentionForm(), finalForm(), feeReestimateForm(), cdrForm(), fileNoteForm(), subpoenaForm()}
}

func cclForm() FormDefinition {
	return FormDefinition{
		Name: "CCL",
		Sections: []SectionDefinition{
			{
				Title: "Contact Details",
				Fields: []FieldDefinition{
					{Kind: KindSelect, ID: "contactMethod", Label: "Contact Method", Required: true, Options: ref("contactMethods")},
					{Kind: KindDate, ID: "contactDate", Label: "Contact Date", Required: true, Default: DefaultToday},
				},
			},
			{
				Title:                "Charges",
				Kind:                 SectionCharges,
				IncludeClientCharges: true,
				AdditionalFields: []FieldDefinition{
					{Kind: KindTextarea, ID: "additionalCharges", Label: "Additional Charges", Placeholder: "Enter any additional charges not listed above"},
					{Kind: KindNumber, ID: "counts", Label: "Number of Counts", Min: "1", Default: "1"},
				},
			},
			{
				Title: "Legal Aid & Fees",
				Fields: []FieldDefinition{
					{
						Kind: KindSelect, ID: "legalAidStatus", Label: "Legal Aid?", Required: true,
						Options: literals("Yes", "No"),
						Conditional: map[string][]FieldDefinition{
							"Yes": {
								{Kind: KindNumber, ID: "contribution", Label: "Contribution Amount ($)", Step: "0.01"},
							},
							"No": {
								{Kind: KindNumber, ID: "estimate", Label: "Estimate Amount ($)", Required: true, Step: "0.01"},
								{
									Kind: KindSelect, ID: "depositPaid", Label: "Deposit Paid?",
									Options: literals("Yes", "No"),
									Conditional: map[string][]FieldDefinition{
										"Yes": {
											{Kind: KindNumber, ID: "depositAmount", Label: "Deposit Amount ($)", Step: "0.01"},
										},
									},
								},
							},
						},
					},
				},
			},
			{
				Title: "Instructions",
				Fields: []FieldDefinition{
					{Kind: KindSelect, ID: "plea", Label: "Plea", Required: true, Options: literals("Not Guilty", "Guilty", "No plea entered", "Undecided")},
					{Kind: KindTextarea, ID: "facts", Label: "Brief facts as related by client", Rows: 4},
					{Kind: KindTextarea, ID: "instructions", Label: "Instructions", Rows: 3},
					{Kind: KindSelect, ID: "listedFor", Label: "Next Court Date Listed For", Options: ref("listedForOptions")},
					{
						Kind: KindCheckboxConditional, ID: "requiresSentenceMaterials", Label: "Requires sentence materials?",
						ConditionalID: "sentenceMaterials", ConditionalOptions: ref("sentenceMaterials"),
					},
				},
			},
			{
				Title: "ADVO Details",
				Kind:  SectionConditional,
				Trigger: &FieldDefinition{
					Kind: KindSelect, ID: "advoApplied", Label: "ADVO Applied For?",
					Options: literals("No", "Interim", "Final"),
				},
				Content: map[string]string{
					"Interim": "advo-details",
					"Final":   "advo-details",
				},
			},
			{
				Title: "Bail Conditions",
				Kind:  SectionConditional,
				Trigger: &FieldDefinition{
					Kind: KindSelect, ID: "bailConditions", Label: "Bail Conditions?",
					Options: literals("No", "Yes - Conditional Bail", "Yes - Unconditional Bail"),
				},
				Content: map[string]string{
					"Yes - Conditional Bail": "bail-conditions",
				},
			},
		},
	}
}

func mentionForm() FormDefinition {
	return FormDefinition{
		Name: "Mention",
		Sections: []SectionDefinition{
			{
				Title: "Appearance Details",
				Fields: []FieldDefinition{
					{Kind: KindDate, ID: "courtDate", Label: "Court Date", Required: true},
					{Kind: KindTime, ID: "courtTime", Label: "Court Time", Default: "09:30", Required: true},
					{Kind: KindTextarea, ID: "outcome", Label: "Court Outcome", Required: true, Rows: 4},
				},
			},
			{
				Title: "Next Court Date",
				Fields: []FieldDefinition{
					{Kind: KindDate, ID: "nextCourtDate", Label: "Next Court Date", Required: true},
					{Kind: KindTime, ID: "nextCourtTime", Label: "Next Court Time", Default: "09:30"},
					{Kind: KindSelect, ID: "nextListedFor", Label: "Listed For", Options: ref("listedForOptions"), Required: true},
				},
			},
			{
				Title: "Billing",
				Fields: []FieldDefinition{
					{Kind: KindNumber, ID: "timeSpent", Label: "Time Spent (hours)", Step: "0.1", Required: true},
					{Kind: KindNumber, ID: "travelTime", Label: "Travel Time (hours)", Step: "0.1", Default: "0"},
				},
			},
		},
	}
}

func finalForm() FormDefinition {
	return FormDefinition{
		Name: "Final",
		Sections: []SectionDefinition{
			{
				Title: "Final Court Appearance",
				Fields: []FieldDefinition{
					{Kind: KindDate, ID: "finalCourtDate", Label: "Final Court Date", Required: true},
					{Kind: KindTime, ID: "finalCourtTime", Label: "Court Time", Default: "09:30"},
					{Kind: KindTextarea, ID: "finalFacts", Label: "Brief Facts", Rows: 4},
					{Kind: KindTextarea, ID: "submissions", Label: "Submissions Made", Rows: 4},
				},
			},
			{
				Title: "Outcome",
				Fields: []FieldDefinition{
					{Kind: KindSelect, ID: "verdict", Label: "Verdict", Options: ref("outcomes"), Required: true},
					{Kind: KindSelect, ID: "penalty", Label: "Penalty", Options: ref("penalties"), Required: true},
					{Kind: KindTextarea, ID: "conditions", Label: "Conditions (if applicable)", Rows: 3},
					{Kind: KindTextarea, ID: "finalOutcome", Label: "Final Outcome Summary", Rows: 4, Required: true},
					{Kind: KindTextarea, ID: "costs", Label: "Costs Order", Rows: 2},
				},
			},
			{
				Title: "Final ADVO",
				Kind:  SectionConditional,
				Trigger: &FieldDefinition{
					Kind: KindSelect, ID: "finalADVO", Label: "Final ADVO Outcome",
					Options: literals("No ADVO", "ADVO Made", "ADVO Dismissed", "ADVO Withdrawn"),
				},
			},
			{
				Title: "Appeal Information",
				Fields: []FieldDefinition{
					{Kind: KindTextarea, ID: "appealAdvice", Label: "Appeal advice given to client", Rows: 3},
				},
			},
		},
	}
}

func feeReestimateForm() FormDefinition {
	return FormDefinition{
		Name: "FeeReestimate",
		Sections: []SectionDefinition{
			{
				Title: "Conference Details",
				Fields: []FieldDefinition{
					{Kind: KindDate, ID: "conferenceDate", Label: "Conference Date", Required: true},
					{Kind: KindTextarea, ID: "conferenceOutcome", Label: "Conference Outcome", Rows: 4, Required: true},
				},
			},
			{
				Title: "Fee Information",
				Fields: []FieldDefinition{
					{Kind: KindNumber, ID: "originalEstimate", Label: "Original Estimate ($)", Step: "0.01", Required: true},
					{Kind: KindNumber, ID: "revisedEstimate", Label: "Revised Estimate ($)", Step: "0.01", Required: true},
					{Kind: KindTextarea, ID: "reasonForIncrease", Label: "Reason for Increase", Rows: 3, Required: true},
					{Kind: KindNumber, ID: "additionalDeposit", Label: "Additional Deposit Required ($)", Step: "0.01"},
				},
			},
			{
				Title: "Matter Update",
				Fields: []FieldDefinition{
					{Kind: KindTextarea, ID: "matterUpdate", Label: "Matter Update", Rows: 4, Required: true},
					{Kind: KindDate, ID: "nextAction", Label: "Next Action Date"},
					{Kind: KindTextarea, ID: "nextSteps", Label: "Next Steps", Rows: 3},
				},
			},
		},
	}
}

func cdrForm() FormDefinition {
	return FormDefinition{
		Name: "CDR",
		Sections: []SectionDefinition{
			{
				Title: "Client Information",
				Fields: []FieldDefinition{
					{Kind: KindText, ID: "cdrClientName", Label: "Client Name", Required: true},
					{Kind: KindText, ID: "cdrMatterNumber", Label: "Matter Number", Required: true},
					{Kind: KindText, ID: "cdrCourt", Label: "Court", Required: true},
					{Kind: KindTextarea, ID: "cdrCharges", Label: "Charges", Rows: 2},
					{Kind: KindSelect, ID: "cdrLegalAid", Label: "Legal Aid", Options: literals("No", "Yes")},
					{Kind: KindText, ID: "cdrPlea", Label: "Plea Entered"},
				},
			},
			{
				Title: "Court Outcome",
				Fields: []FieldDefinition{
					{
						Kind: KindRadioGroup, Name: "courtOutcome", ID: "courtOutcome", Label: "Outcome",
						Options: Options{Values: []OptionValue{
							{Value: "Adjourned", Label: "Adjourned", ID: "outcomeAdjourned"},
							{Value: "Mention", Label: "Mention", ID: "outcomeMention"},
							{Value: "Resolved", Label: "Resolved", ID: "outcomeResolved"},
							{Value: "Sentence", Label: "Sentence", ID: "outcomeSentence"},
						}},
					},
					{Kind: KindText, ID: "cdrOutcomeCourt", Label: "Court"},
					{Kind: KindDate, ID: "cdrOutcomeDate", Label: "Date"},
					{Kind: KindTime, ID: "cdrStartTime", Label: "Start Time", Default: "09:30"},
					{Kind: KindTime, ID: "cdrFinishTime", Label: "Finish Time", Default: "10:00"},
				},
			},
			{
				Title: "Court Diary Request",
				Fields: []FieldDefinition{
					{Kind: KindDate, ID: "cdrCourtDate", Label: "Court Date"},
					{Kind: KindSelect, ID: "cdrSolicitor", Label: "Solicitor", Options: ref("solicitors"), OptionKey: "code"},
					{Kind: KindSelect, ID: "cdrReason", Label: "Reason", Options: ref("listedForOptions")},
					{Kind: KindTime, ID: "cdrCourtTime", Label: "Court Time", Default: "09:30"},
					{Kind: KindCheckboxGroup, ID: "allocateGroup", Label: "Allocate To", Options: ref("solicitors"), Prefix: "allocate_", OptionKey: "code"},
					{Kind: KindCheckbox, ID: "cdrClientExcused", Label: "Client Excused"},
					{Kind: KindText, ID: "cdrFeeReminder", Label: "Fee Reminder"},
				},
			},
		},
	}
}

func fileNoteForm() FormDefinition {
	return FormDefinition{
		Name: "FileNote",
		Sections: []SectionDefinition{
			{
				Title: "Note Type",
				Fields: []FieldDefinition{
					{
						Kind: KindRadioGroup, Name: "fileNoteType", ID: "fileNoteType", Label: "File Note Type",
						Options: ref("fileNoteTypes"), OptionKey: "value", LabelKey: "label",
						Conditional: map[string][]FieldDefinition{
							"Phone Call": {
								{Kind: KindSelect, ID: "phoneDirection", Label: "Direction", Options: ref("phoneDirections")},
								{Kind: KindTel, ID: "phoneNumber", Label: "Phone Number"},
							},
							"Meeting": {
								{Kind: KindText, ID: "meetingLocation", Label: "Location"},
								{Kind: KindText, ID: "attendees", Label: "Attendees"},
							},
							"Court Appearance": {
								{Kind: KindSelect, ID: "courtName", Label: "Court", Options: ref("courts")},
								{Kind: KindText, ID: "magistrate", Label: "Magistrate"},
							},
							"Correspondence": {
								{Kind: KindSelect, ID: "correspondenceType", Label: "Type", Options: ref("correspondenceTypes")},
								{Kind: KindSelect, ID: "correspondenceDirection", Label: "Direction", Options: ref("correspondenceDirections")},
							},
						},
					},
				},
			},
			{
				Title: "Basic Information",
				Fields: []FieldDefinition{
					{Kind: KindText, ID: "fileNoteClientName", Label: "Client Name", Required: true},
					{Kind: KindText, ID: "fileNoteMatterNumber", Label: "Matter Number", Required: true},
					{Kind: KindDate, ID: "fileNoteDate", Label: "Date", Required: true, Default: DefaultToday},
					{Kind: KindTime, ID: "fileNoteTime", Label: "Time", Required: true, Default: DefaultNow},
					{Kind: KindTextarea, ID: "fileNoteContent", Label: "Content", Required: true, Rows: 4},
					{Kind: KindTextarea, ID: "fileNoteAction", Label: "Action Taken", Rows: 2},
					{Kind: KindTextarea, ID: "fileNoteFollowUp", Label: "Follow-up Required", Rows: 2},
				},
			},
		},
	}
}

func subpoenaForm() FormDefinition {
	return FormDefinition{
		Name: "Subpoena",
		Sections: []SectionDefinition{
			{
				Title: "Recipient Details",
				Fields: []FieldDefinition{
					{Kind: KindSelect, ID: "organizationType", Label: "Organization Type", Options: literals("", "NSW Police")},
					{Kind: KindText, ID: "recipientName", Label: "Name of Person/Organization", Required: true},
					{Kind: KindTextarea, ID: "recipientAddress", Label: "Full Address", Required: true, Rows: 3},
				},
			},
			{
				Title: "Court Information",
				Fields: []FieldDefinition{
					{Kind: KindSelect, ID: "courtLevel", Label: "Court Level", Options: ref("courtLevels"), Required: true},
					{Kind: KindText, ID: "courtLocation", Label: "Court Location", Required: true},
					{Kind: KindDate, ID: "returnDate", Label: "Return Date", Required: true},
					{Kind: KindDate, ID: "complianceDate", Label: "Compliance Date", Required: true},
				},
			},
			{
				Title: "Case Details",
				Fields: []FieldDefinition{
					{Kind: KindSelect, ID: "partyType", Label: "Party Type", Options: literals("R v", "Police v"), Required: true},
					{Kind: KindText, ID: "clientName", Label: "Client Name", Required: true},
					{Kind: KindText, ID: "proceedingsNumber", Label: "Proceedings Number"},
					{Kind: KindTextarea, ID: "chargeOffence", Label: "Charge/Offence", Required: true, Rows: 2},
				},
			},
			{
				Title: "Documents Sought",
				Fields: []FieldDefinition{
					{Kind: KindTextarea, ID: "documentsRequested", Label: "Documents Requested", Required: true, Rows: 3},
					{Kind: KindTextarea, ID: "relevanceStatement", Label: "Relevance Statement", Required: true, Rows: 3},
				},
			},
			{
				Title: "Contact Information",
				Fields: []FieldDefinition{
					{Kind: KindSelect, ID: "solicitorName", Label: "Solicitor Name", Options: ref("solicitors"), OptionKey: "name", Required: true},
					{Kind: KindText, ID: "lawFirmName", Label: "Law Firm Name", Required: true},
					{Kind: KindTextarea, ID: "firmAddress", Label: "Firm Address", Required: true, Rows: 3},
					{Kind: KindTel, ID: "contactPhone", Label: "Contact Phone", Required: true},
					{Kind: KindEmail, ID: "contactEmail", Label: "Contact Email", Required: true},
				},
			},
		},
	}
}
