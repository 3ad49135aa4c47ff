package visibility

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func legalAidRules() *RuleSet {
	rs := NewRuleSet()
	rs.Add(Trigger{
		ID: "legalAidStatus",
		Groups: map[string]string{
			"Yes": "legalAidStatus_yes",
			"No":  "legalAidStatus_no",
		},
	})
	rs.Add(Trigger{
		ID:    "depositPaid",
		Owner: "legalAidStatus_no",
		Groups: map[string]string{
			"Yes": "depositPaid_yes",
		},
	})
	return rs
}

func TestMutualExclusivity(t *testing.T) {
	engine := NewEngine(legalAidRules())

	state := engine.Apply(State{}, "legalAidStatus", "Yes")
	state = engine.Apply(state, "legalAidStatus", "No")

	visible := engine.Visible(state)
	if visible["legalAidStatus_yes"] {
		t.Fatal("Yes branch should be hidden after switching to No")
	}
	if !visible["legalAidStatus_no"] {
		t.Fatal("No branch should be visible")
	}
}

func TestNoMatchingKeyRevealsNothing(t *testing.T) {
	engine := NewEngine(legalAidRules())

	state := engine.Apply(State{}, "legalAidStatus", "")
	if got := engine.Visible(state); len(got) != 0 {
		t.Fatalf("expected no visible groups for empty selection, got %v", got)
	}
}

func TestNestedTriggerOnlyActsInsideVisibleOwner(t *testing.T) {
	engine := NewEngine(legalAidRules())

	state := engine.Apply(State{}, "depositPaid", "Yes")
	if engine.IsVisible(state, "depositPaid_yes") {
		t.Fatal("nested group must stay hidden while its owner is hidden")
	}

	state = engine.Apply(state, "legalAidStatus", "No")
	if !engine.IsVisible(state, "depositPaid_yes") {
		t.Fatal("nested group should appear once the owning branch is revealed")
	}

	// Switching the parent away hides the nested group without the nested
	// trigger losing its value.
	state = engine.Apply(state, "legalAidStatus", "Yes")
	if engine.IsVisible(state, "depositPaid_yes") {
		t.Fatal("nested group should hide with its owner")
	}
	if state.Value("depositPaid") != "Yes" {
		t.Fatal("hidden trigger value should be preserved")
	}
}

func TestApplyIdempotent(t *testing.T) {
	engine := NewEngine(legalAidRules())

	state := engine.Apply(State{}, "legalAidStatus", "No")
	once := engine.Visible(state)
	state = engine.Apply(state, "legalAidStatus", "No")
	twice := engine.Visible(state)

	if diff := cmp.Diff(once, twice); diff != "" {
		t.Fatalf("re-applying the same value changed visibility (-once +twice):\n%s", diff)
	}
}

func TestUnknownTriggerIsNoOp(t *testing.T) {
	engine := NewEngine(legalAidRules())

	state := engine.Apply(State{}, "legalAidStatus", "No")
	next := engine.Apply(state, "ghostTrigger", "whatever")

	if diff := cmp.Diff(engine.Visible(state), engine.Visible(next)); diff != "" {
		t.Fatalf("unknown trigger changed visibility:\n%s", diff)
	}
	if next.Value("ghostTrigger") != "" {
		t.Fatal("unknown trigger should not be recorded")
	}
}

func TestCheckboxTrigger(t *testing.T) {
	rs := NewRuleSet()
	rs.Add(Trigger{
		ID:       "requiresSentenceMaterials",
		Checkbox: true,
		Groups:   map[string]string{CheckedKey: "sentenceMaterials"},
	})
	engine := NewEngine(rs)

	state := engine.Apply(State{}, "requiresSentenceMaterials", "true")
	if !engine.IsVisible(state, "sentenceMaterials") {
		t.Fatal("checked checkbox should reveal its group")
	}

	state = engine.Apply(state, "requiresSentenceMaterials", "false")
	if engine.IsVisible(state, "sentenceMaterials") {
		t.Fatal("unchecked checkbox should hide its group")
	}
}
