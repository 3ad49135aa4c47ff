package prompt

// Built-in prompt templates. The texts are load-bearing: downstream document
// automation keys off the exact headings and line layout, so edit with care.

const cclTemplate = `Using the CCL template, draft a client care letter with this information:

CLIENT: {clientName}
ADDRESS: {address}
MATTER REF: {matterNumber}
CONTACT METHOD: {contactMethod}
CONTACT DATE: {contactDate}

CHARGES:
{charges}

LEGAL AID: {legalAidStatus}
{legalAidDetails}

PLEA: {plea}
FACTS: {facts}
INSTRUCTIONS: {instructions}
LISTED FOR: {listedFor}

{conditionalSections}

Please draft a comprehensive client care letter following the standard format.`

const mentionTemplate = `Using the Mention template, draft a mention letter with this information:

CLIENT: {clientName}
MATTER REF: {matterNumber}
COURT DATE: {courtDate}
COURT TIME: {courtTime}

OUTCOME: {outcome}

NEXT COURT DATE: {nextCourtDate}
NEXT COURT TIME: {nextCourtTime}
LISTED FOR: {nextListedFor}

BILLING:
Time spent: {timeSpent} hours
Travel time: {travelTime} hours

Please draft a mention letter following the standard format.`

const finalTemplate = `Using the Final template, draft a final letter with this information:

CLIENT: {clientName}
MATTER REF: {matterNumber}
FINAL COURT DATE: {finalCourtDate}
COURT TIME: {finalCourtTime}

BRIEF FACTS: {finalFacts}
SUBMISSIONS: {submissions}

VERDICT: {verdict}
PENALTY: {penalty}
{conditionalFields}

FINAL OUTCOME: {finalOutcome}
COSTS: {costs}

APPEAL ADVICE: {appealAdvice}

Please draft a final letter following the standard format.`

const feeReestimateTemplate = `Using the Fee Re-estimate template, draft a fee re-estimate letter with this information:

CLIENT: {clientName}
MATTER REF: {matterNumber}
CONFERENCE DATE: {conferenceDate}

CONFERENCE OUTCOME: {conferenceOutcome}

ORIGINAL ESTIMATE: {originalEstimate}
REVISED ESTIMATE: {revisedEstimate}
REASON FOR INCREASE: {reasonForIncrease}
ADDITIONAL DEPOSIT: {additionalDeposit}

MATTER UPDATE: {matterUpdate}
NEXT ACTION DATE: {nextAction}
NEXT STEPS: {nextSteps}

Please draft a fee re-estimate letter following the standard format.`

const cdrTemplate = `** ** ** ** **COURT OUTCOME** ** ** **
COURT: {cdrOutcomeCourt}
DATE: {cdrOutcomeDate}
CORAM:
CROWN:
START: {cdrStartTime}
FINISH: {cdrFinishTime}

**COURT DIARY REQUEST**
COURT DATE: {cdrCourtDate}
SOLICITOR: {cdrSolicitor}
CLIENT: {cdrClientName}
FILE NUMBER: {cdrMatterNumber}
REASON: {cdrReason}
COURT: {cdrCourt}
COURT TIME: {cdrCourtTime}
ALLOCATE TO: {allocatedTo}
CLIENT EXCUSED: {cdrClientExcused}
FEE REMINDER: {cdrFeeReminder}`

const fileNoteTemplate = `FILE NOTE

Date: {fileNoteDate}
Time: {fileNoteTime}
Client: {fileNoteClientName}
Matter: {fileNoteMatterNumber}
Type: {fileNoteType}

{typeSpecificDetails}

CONTENT:
{fileNoteContent}

{actionSection}

{followUpSection}

---
File note created: {createdDate} at {createdTime}`

const subpoenaTemplate = `SUBPOENA TO PRODUCE DOCUMENTS

{courtLevel} of New South Wales
At {courtLocation}

{partyType} {clientName}
{proceedingsNumberLine}

TO: {recipientName}
    {recipientAddress}

YOU ARE COMMANDED to attend at {courtLevel} at {courtLocation} on {formattedReturnDate} at 9:00 AM and to bring with you and produce at that time and place the documents and things specified in the Schedule below.

YOU ARE FURTHER COMMANDED to produce the documents and things specified in the Schedule below to the solicitor named below by {formattedComplianceDate}.

FAILURE TO COMPLY WITH THIS SUBPOENA may constitute contempt of court and may result in the issue of a warrant for your arrest.

SCHEDULE OF DOCUMENTS

{documentsRequested}

RELEVANCE

{relevanceStatement}

DATED: {todayDate}

ISSUED BY:
{solicitorName}
Solicitor for the {partyDescription}
{lawFirmName}
{firmAddress}

Phone: {contactPhone}
Email: {contactEmail}

---
This subpoena was generated on {todayDate} using the Legal Letter Generation System.`

// Default returns a registry preloaded with the production document types.
func Default() *Registry {
	r := NewRegistry()
	builtins := []struct {
		docType  string
		title    string
		text     string
		template string
	}{
		{"CCL", "Client Care Letter (CCL)", cclTemplate, "CCL_Template.docx"},
		{"Mention", "Mention Letter", mentionTemplate, "Mention_Template.docx"},
		{"Final", "Final Letter", finalTemplate, "Final_Template.docx"},
		{"FeeReestimate", "Fee Re-estimate Letter", feeReestimateTemplate, "FeeReestimate_Template.docx"},
		{"CDR", "Court Disposition Record (CDR)", cdrTemplate, ""},
		{"FileNote", "File Note", fileNoteTemplate, ""},
		{"Subpoena", "Subpoena to Produce Documents", subpoenaTemplate, ""},
	}
	for _, b := range builtins {
		if err := r.Register(Definition{
			Type:     b.docType,
			Title:    b.title,
			Template: Parse(b.text),
			Webhook:  Webhook{Type: b.docType, Template: b.template},
		}); err != nil {
			panic(err)
		}
	}
	return r
}
