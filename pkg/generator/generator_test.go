package generator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-lettergen/internal/clock"
	"github.com/goliatone/go-lettergen/pkg/client"
	"github.com/goliatone/go-lettergen/pkg/prompt"
)

type captureSink struct {
	payloads []map[string]any
	fail     bool
}

func (s *captureSink) Deliver(_ context.Context, payload map[string]any) error {
	if s.fail {
		return errors.New("sink down")
	}
	s.payloads = append(s.payloads, payload)
	return nil
}

func TestGenerateCCLEndToEnd(t *testing.T) {
	gen := New(WithClock(clock.Fixed("2025-03-14", "10:30")))

	result, err := gen.Generate(context.Background(), Request{
		DocType: "CCL",
		Values: prompt.DataBag{
			"clientName":     "John Smith",
			"matterNumber":   "M-001",
			"contactMethod":  "Email",
			"contactDate":    "2025-01-10",
			"charges":        "Common Assault - s61 Crimes Act",
			"legalAidStatus": "No",
			"estimate":       "3500",
			"plea":           "Not Guilty",
		},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}

	for _, sub := range []string{"CLIENT: John Smith", "MATTER REF: M-001", "Estimate: 3500"} {
		if !strings.Contains(result.Prompt, sub) {
			t.Fatalf("prompt missing %q:\n%s", sub, result.Prompt)
		}
	}
	if strings.Contains(result.Prompt, "Contribution:") {
		t.Fatalf("prompt should not mention a contribution:\n%s", result.Prompt)
	}

	if result.Payload["type"] != "CCL" {
		t.Errorf("payload type = %v", result.Payload["type"])
	}
	if result.Payload["template"] != "CCL_Template.docx" {
		t.Errorf("payload template = %v", result.Payload["template"])
	}
	if result.Payload["generatedDate"] != "2025-03-14" {
		t.Errorf("payload generatedDate = %v", result.Payload["generatedDate"])
	}
	if result.Payload["prompt"] != result.Prompt {
		t.Error("payload prompt does not match result prompt")
	}
}

func TestGenerateUnknownDocType(t *testing.T) {
	gen := New()
	if _, err := gen.Generate(context.Background(), Request{DocType: "Affidavit"}); !errors.Is(err, prompt.ErrUnknownTemplate) {
		t.Fatalf("Generate error = %v, want ErrUnknownTemplate", err)
	}
}

func TestGenerateChargesAggregation(t *testing.T) {
	gen := New()

	result, err := gen.Generate(context.Background(), Request{
		DocType: "CCL",
		Values: prompt.DataBag{
			"charge_larceny":    true,
			"charge_fraud":      true,
			"additionalCharges": "Custom charge",
			"counts":            "3",
		},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	want := "Larceny - s117 Crimes Act, Fraud - s192E Crimes Act, Custom charge (3 counts)"
	if got := result.Bag.String("charges"); got != want {
		t.Fatalf("charges = %q, want %q", got, want)
	}
}

func TestGenerateSeedsFromClientRecord(t *testing.T) {
	ctx := context.Background()
	store := client.NewMemoryStore()
	rec, err := store.Put(ctx, client.Record{
		Name:         "John Smith",
		Address:      "1 Example St",
		MatterNumber: "M-001",
		Court:        "Hornsby",
		Charges:      "Common Assault - s61 Crimes Act",
	})
	if err != nil {
		t.Fatalf("Put: %v", err)
	}

	gen := New(WithStore(store), WithClock(clock.Fixed("2025-03-14", "10:30")))
	result, err := gen.Generate(ctx, Request{
		DocType:  "CCL",
		ClientID: rec.ID,
		Values:   prompt.DataBag{"legalAidStatus": "No", "estimate": "3500"},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	if !strings.Contains(result.Prompt, "CLIENT: John Smith") {
		t.Fatalf("prompt missing seeded client name:\n%s", result.Prompt)
	}
	if !strings.Contains(result.Prompt, "Common Assault - s61 Crimes Act") {
		t.Fatalf("prompt missing seeded charges:\n%s", result.Prompt)
	}

	got, err := store.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	want := []client.Letter{{Type: "CCL", Date: "2025-03-14"}}
	if diff := cmp.Diff(want, got.Letters); diff != "" {
		t.Fatalf("letter history mismatch (-want +got):\n%s", diff)
	}
}

func TestGenerateUnknownClient(t *testing.T) {
	gen := New(WithStore(client.NewMemoryStore()))
	_, err := gen.Generate(context.Background(), Request{DocType: "CCL", ClientID: "nope"})
	if !errors.Is(err, client.ErrNotFound) {
		t.Fatalf("Generate error = %v, want ErrNotFound", err)
	}
}

func TestGenerateADVOSection(t *testing.T) {
	gen := New()

	result, err := gen.Generate(context.Background(), Request{
		DocType: "CCL",
		Values: prompt.DataBag{
			"advoApplied":     "Interim",
			"protectedPerson": "Jane Doe",
			"advo_2":          true,
			"advo_9":          true,
		},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, sub := range []string{"ADVO: Interim", "Protected Person: Jane Doe", "Conditions: 2, 9"} {
		if !strings.Contains(result.Prompt, sub) {
			t.Fatalf("prompt missing %q:\n%s", sub, result.Prompt)
		}
	}
	if strings.Contains(result.Prompt, "BAIL") {
		t.Fatalf("prompt should not contain a bail fragment:\n%s", result.Prompt)
	}
}

func TestGenerateSubpoenaDerivedDates(t *testing.T) {
	gen := New(WithClock(clock.Fixed("2025-03-14", "10:30")))

	result, err := gen.Generate(context.Background(), Request{
		DocType: "Subpoena",
		Values: prompt.DataBag{
			"clientName":        "John Smith",
			"partyType":         "R v",
			"proceedingsNumber": "2025/00012345",
			"returnDate":        "2025-10-22",
			"complianceDate":    "2025-10-08",
		},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, sub := range []string{
		"on 22 October 2025 at 9:00 AM",
		"by 8 October 2025",
		"DATED: 14 March 2025",
		"Proceedings Number: 2025/00012345",
		"Solicitor for the Accused",
	} {
		if !strings.Contains(result.Prompt, sub) {
			t.Fatalf("prompt missing %q:\n%s", sub, result.Prompt)
		}
	}
}

func TestGenerateFileNoteStamps(t *testing.T) {
	gen := New(WithClock(clock.Fixed("2025-03-14", "10:30")))

	result, err := gen.Generate(context.Background(), Request{
		DocType: "FileNote",
		Values: prompt.DataBag{
			"fileNoteType":     "Phone Call",
			"phoneDirection":   "Incoming",
			"fileNoteContent":  "Client called about hearing",
			"fileNoteAction":   "Diarised",
			"fileNoteFollowUp": "",
		},
	})
	if err != nil {
		t.Fatalf("Generate: %v", err)
	}
	for _, sub := range []string{
		"Direction: Incoming",
		"ACTION TAKEN:\nDiarised",
		"File note created: 14 March 2025 at 10:30",
	} {
		if !strings.Contains(result.Prompt, sub) {
			t.Fatalf("prompt missing %q:\n%s", sub, result.Prompt)
		}
	}
	if strings.Contains(result.Prompt, "FOLLOW-UP") {
		t.Fatalf("prompt should not contain a follow-up section:\n%s", result.Prompt)
	}
}

func TestSendDeliversPayloadAndMarksSent(t *testing.T) {
	ctx := context.Background()
	store := client.NewMemoryStore()
	rec, err := store.Put(ctx, client.Record{Name: "John Smith"})
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	sink := &captureSink{}
	gen := New(WithStore(store), WithSink(sink), WithClock(clock.Fixed("2025-03-14", "10:30")))

	if _, err := gen.Send(ctx, Request{DocType: "CCL", ClientID: rec.ID, Values: prompt.DataBag{}}); err != nil {
		t.Fatalf("Send: %v", err)
	}
	if len(sink.payloads) != 1 {
		t.Fatalf("sink received %d payloads, want 1", len(sink.payloads))
	}

	got, err := store.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got.Letters) != 1 || !got.Letters[0].Sent {
		t.Fatalf("letter history = %+v, want one sent CCL", got.Letters)
	}
}

func TestSendFailureLeavesLetterUnsent(t *testing.T) {
	ctx := context.Background()
	store := client.NewMemoryStore()
	rec, err := store.Put(ctx, client.Record{Name: "John Smith"})
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	gen := New(WithStore(store), WithSink(&captureSink{fail: true}))

	if _, err := gen.Send(ctx, Request{DocType: "CCL", ClientID: rec.ID}); err == nil {
		t.Fatal("Send should surface the sink failure")
	}
	got, err := store.Get(ctx, rec.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if len(got.Letters) != 1 || got.Letters[0].Sent {
		t.Fatalf("letter history = %+v, want one unsent CCL", got.Letters)
	}
}

func TestValidateReportsMissingRequiredFields(t *testing.T) {
	gen := New()

	missing, err := gen.Validate("CCL", prompt.DataBag{"clientName": "John Smith"})
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}
	if len(missing) == 0 {
		t.Fatal("Validate should report missing required fields")
	}
	for _, id := range missing {
		if id == "clientName" {
			t.Fatal("Validate reported a supplied field as missing")
		}
	}
}
