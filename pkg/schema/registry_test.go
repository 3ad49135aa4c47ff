package schema

import (
	"errors"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
)

func TestDefaultRegistry(t *testing.T) {
	reg := Default()

	want := []string{"CCL", "CDR", "FeeReestimate", "FileNote", "Final", "Mention", "Subpoena"}
	if diff := cmp.Diff(want, reg.Forms()); diff != "" {
		t.Fatalf("form list mismatch (-want +got):\n%s", diff)
	}

	ccl, err := reg.Form("CCL")
	if err != nil {
		t.Fatalf("CCL form: %v", err)
	}
	if len(ccl.Sections) != 6 {
		t.Fatalf("expected 6 CCL sections, got %d", len(ccl.Sections))
	}
	if ccl.Sections[1].Kind != SectionCharges || !ccl.Sections[1].IncludeClientCharges {
		t.Fatalf("expected charges selector with client charges, got %+v", ccl.Sections[1])
	}

	advo := ccl.Sections[4]
	if advo.Kind != SectionConditional || advo.Trigger == nil {
		t.Fatalf("expected ADVO conditional section, got %+v", advo)
	}
	if advo.Content["Interim"] != "advo-details" || advo.Content["Final"] != "advo-details" {
		t.Fatalf("unexpected ADVO content mapping: %v", advo.Content)
	}

	if _, ok := reg.Special("advo-details"); !ok {
		t.Fatal("expected advo-details special section")
	}
	if _, ok := reg.Special("bail-conditions"); !ok {
		t.Fatal("expected bail-conditions special section")
	}
}

func TestFormUnknown(t *testing.T) {
	reg := Default()
	if _, err := reg.Form("Affidavit"); !errors.Is(err, ErrUnknownForm) {
		t.Fatalf("expected ErrUnknownForm, got %v", err)
	}
}

func TestNestedConditionalDefinitions(t *testing.T) {
	reg := Default()
	ccl, err := reg.Form("CCL")
	if err != nil {
		t.Fatalf("CCL form: %v", err)
	}

	legalAid := ccl.Sections[2].Fields[0]
	if legalAid.ID != "legalAidStatus" {
		t.Fatalf("unexpected trigger field %q", legalAid.ID)
	}
	noBranch := legalAid.Conditional["No"]
	if len(noBranch) != 2 {
		t.Fatalf("expected 2 fields in No branch, got %d", len(noBranch))
	}
	deposit := noBranch[1]
	if deposit.ID != "depositPaid" || len(deposit.Conditional["Yes"]) != 1 {
		t.Fatalf("expected nested depositPaid conditional, got %+v", deposit)
	}
}

func TestLoadFSRegistersForm(t *testing.T) {
	reg := Default()
	fsys := fstest.MapFS{
		"forms.yaml": &fstest.MapFile{Data: []byte(`
forms:
  Adjournment:
    sections:
      - title: Details
        fields:
          - {type: date, id: adjournDate, label: Adjourn Date, required: true, default: today}
          - type: select
            id: adjournReason
            label: Reason
            options: listedForOptions
          - type: select
            id: consent
            label: Consent?
            options: ["Yes", "No"]
            conditional:
              "No":
                - {type: textarea, id: opposition, label: Opposition grounds, rows: 3}
`)},
	}

	if err := reg.LoadFS(fsys); err != nil {
		t.Fatalf("load fs: %v", err)
	}

	form, err := reg.Form("Adjournment")
	if err != nil {
		t.Fatalf("loaded form: %v", err)
	}
	fields := form.Sections[0].Fields
	if len(fields) != 3 {
		t.Fatalf("expected 3 fields, got %d", len(fields))
	}
	if fields[0].Default != DefaultToday {
		t.Fatalf("expected today default, got %q", fields[0].Default)
	}
	if fields[1].Options.Ref != "listedForOptions" {
		t.Fatalf("expected table reference, got %+v", fields[1].Options)
	}
	if len(fields[2].Conditional["No"]) != 1 {
		t.Fatalf("expected conditional branch, got %+v", fields[2].Conditional)
	}
}

func TestLoadFSRejectsConditionalOnFreeText(t *testing.T) {
	reg := NewRegistry()
	fsys := fstest.MapFS{
		"bad.yaml": &fstest.MapFile{Data: []byte(`
forms:
  Bad:
    sections:
      - title: Details
        fields:
          - type: text
            id: notes
            label: Notes
            conditional:
              "X":
                - {type: text, id: other, label: Other}
`)},
	}

	if err := reg.LoadFS(fsys); err == nil {
		t.Fatal("expected error for conditional on free-text field")
	}
}
