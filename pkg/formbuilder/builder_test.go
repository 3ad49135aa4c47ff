package formbuilder

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-lettergen/internal/clock"
	"github.com/goliatone/go-lettergen/pkg/schema"
)

// tickingClock returns a different date on every call so tests can prove
// defaults resolve exactly once at build time.
type tickingClock struct{ calls int }

func (c *tickingClock) Today() string {
	c.calls++
	return fmt.Sprintf("2025-03-%02d", 13+c.calls)
}

func (c *tickingClock) Now() string { return "10:15" }

func TestBuildUnknownFormType(t *testing.T) {
	b := New()
	if _, err := b.Build("Affidavit"); !errors.Is(err, schema.ErrUnknownForm) {
		t.Fatalf("expected ErrUnknownForm, got %v", err)
	}
}

func TestBuildResolvesDefaultsOnce(t *testing.T) {
	tick := &tickingClock{}
	b := New(WithClock(tick))

	form, err := b.Build("CCL")
	if err != nil {
		t.Fatalf("build CCL: %v", err)
	}

	contactDate, ok := form.Field("contactDate")
	if !ok {
		t.Fatal("expected contactDate field")
	}
	if contactDate.Value != "2025-03-14" {
		t.Fatalf("expected first clock reading 2025-03-14, got %q", contactDate.Value)
	}

	// Later clock movement must not affect the built instance.
	tick.Today()
	if again, _ := form.Field("contactDate"); again.Value != "2025-03-14" {
		t.Fatalf("default re-evaluated after build: %q", again.Value)
	}
}

func TestBuildLiteralAndNowDefaults(t *testing.T) {
	b := New(WithClock(clock.Fixed("2025-03-14", "09:41")))

	form, err := b.Build("FileNote")
	if err != nil {
		t.Fatalf("build FileNote: %v", err)
	}
	if f, _ := form.Field("fileNoteDate"); f.Value != "2025-03-14" {
		t.Fatalf("expected today default, got %q", f.Value)
	}
	if f, _ := form.Field("fileNoteTime"); f.Value != "09:41" {
		t.Fatalf("expected now default, got %q", f.Value)
	}

	mention, err := b.Build("Mention")
	if err != nil {
		t.Fatalf("build Mention: %v", err)
	}
	if f, _ := mention.Field("courtTime"); f.Value != "09:30" {
		t.Fatalf("expected literal default 09:30, got %q", f.Value)
	}
}

func TestBuildChargesSelector(t *testing.T) {
	b := New()

	form, err := b.Build("CCL", WithClientCharges("Common Assault - s61 Crimes Act"))
	if err != nil {
		t.Fatalf("build CCL: %v", err)
	}

	charges := form.Sections[1]
	if charges.ClientCharges != "Common Assault - s61 Crimes Act" {
		t.Fatalf("expected client charges display, got %q", charges.ClientCharges)
	}

	// Six category groups followed by the two additional fields.
	if len(charges.Fields) != 8 {
		t.Fatalf("expected 8 charge section fields, got %d", len(charges.Fields))
	}
	var groupIDs []string
	for _, f := range charges.Fields[:6] {
		if f.Kind != schema.KindCheckboxGroup {
			t.Fatalf("expected checkbox group, got %q", f.Kind)
		}
		groupIDs = append(groupIDs, f.ID)
	}
	want := []string{"charges_violence", "charges_domestic", "charges_traffic", "charges_drug", "charges_property", "charges_public_order"}
	if diff := cmp.Diff(want, groupIDs); diff != "" {
		t.Fatalf("category order mismatch (-want +got):\n%s", diff)
	}

	property := charges.Fields[4]
	if property.Options[0].ID != "charge_larceny" || property.Options[0].Value != "Larceny - s117 Crimes Act" {
		t.Fatalf("unexpected first property charge: %+v", property.Options[0])
	}

	if charges.Fields[6].ID != "additionalCharges" || charges.Fields[7].ID != "counts" {
		t.Fatalf("expected trailing additional fields, got %q and %q", charges.Fields[6].ID, charges.Fields[7].ID)
	}
	if charges.Fields[7].Value != "1" {
		t.Fatalf("expected counts default 1, got %q", charges.Fields[7].Value)
	}
}

func TestBuildNestedConditionals(t *testing.T) {
	b := New()

	form, err := b.Build("CCL")
	if err != nil {
		t.Fatalf("build CCL: %v", err)
	}

	estimate, ok := form.Field("estimate")
	if !ok || estimate.Group != "legalAidStatus_no" {
		t.Fatalf("expected estimate inside legalAidStatus_no group, got %+v", estimate)
	}
	deposit, ok := form.Field("depositAmount")
	if !ok || deposit.Group != "depositPaid_yes" {
		t.Fatalf("expected depositAmount inside depositPaid_yes group, got %+v", deposit)
	}

	if !form.Rules.Has("legalAidStatus") || !form.Rules.Has("depositPaid") {
		t.Fatalf("expected nested trigger rules, got %v", form.Rules.Triggers())
	}
}

func TestBuildConditionalSectionSharesContentGroup(t *testing.T) {
	b := New()

	form, err := b.Build("CCL")
	if err != nil {
		t.Fatalf("build CCL: %v", err)
	}

	advoDate, ok := form.Field("advoDate")
	if !ok {
		t.Fatal("expected advoDate field from advo-details special section")
	}
	if advoDate.Group != "advoApplied_advo-details" {
		t.Fatalf("unexpected ADVO group %q", advoDate.Group)
	}

	// Interim and Final share the single materialized group, so ids stay
	// unique while both values reveal the same fields.
	conditions, ok := form.Field("advoConditionGroup")
	if !ok {
		t.Fatal("expected ADVO condition group")
	}
	if !conditions.Options[0].Checked || !conditions.Options[0].Disabled {
		t.Fatalf("expected mandatory first condition, got %+v", conditions.Options[0])
	}
	if conditions.Options[1].ID != "advo_2" {
		t.Fatalf("expected advo_2 option id, got %q", conditions.Options[1].ID)
	}
}

func TestBuildCheckboxConditional(t *testing.T) {
	b := New()

	form, err := b.Build("CCL")
	if err != nil {
		t.Fatalf("build CCL: %v", err)
	}

	materials, ok := form.Field("sentenceMaterials")
	if !ok {
		t.Fatal("expected sentenceMaterials group field")
	}
	if materials.Group != "sentenceMaterials" || materials.Prefix != "sentenceMaterials_" {
		t.Fatalf("unexpected sentence materials field: %+v", materials)
	}
	if materials.Options[0].ID != "sentenceMaterials_character_references" {
		t.Fatalf("unexpected option id %q", materials.Options[0].ID)
	}
}

func TestBuildResolvesOptionKeys(t *testing.T) {
	b := New()

	form, err := b.Build("CDR")
	if err != nil {
		t.Fatalf("build CDR: %v", err)
	}

	solicitor, _ := form.Field("cdrSolicitor")
	if solicitor.Options[0].Value != "AAG" {
		t.Fatalf("expected solicitor code value, got %+v", solicitor.Options[0])
	}

	allocate, _ := form.Field("allocateGroup")
	if allocate.Options[0].ID != "allocate_aag" {
		t.Fatalf("expected allocate_aag option id, got %q", allocate.Options[0].ID)
	}

	outcome, _ := form.Field("courtOutcome")
	if outcome.Options[0].ID != "outcomeAdjourned" || outcome.Options[0].Value != "Adjourned" {
		t.Fatalf("unexpected outcome option: %+v", outcome.Options[0])
	}
}

func TestBuildRejectsDuplicateIDs(t *testing.T) {
	reg := schema.NewRegistry()
	err := reg.Register(schema.FormDefinition{
		Name: "Broken",
		Sections: []schema.SectionDefinition{{
			Title: "Dup",
			Fields: []schema.FieldDefinition{
				{Kind: schema.KindText, ID: "same", Label: "A"},
				{Kind: schema.KindText, ID: "same", Label: "B"},
			},
		}},
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	b := New(WithSchemas(reg))
	if _, err := b.Build("Broken"); err == nil {
		t.Fatal("expected duplicate id error")
	}
}
