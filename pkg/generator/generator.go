// Package generator orchestrates document generation: it seeds a DataBag
// from the client record, computes the derived tokens each document type
// needs, renders the prompt template and records the letter against the
// client's history.
package generator

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/goliatone/go-lettergen/internal/clock"
	"github.com/goliatone/go-lettergen/pkg/client"
	"github.com/goliatone/go-lettergen/pkg/delivery"
	"github.com/goliatone/go-lettergen/pkg/formbuilder"
	"github.com/goliatone/go-lettergen/pkg/prompt"
	"github.com/goliatone/go-lettergen/pkg/schema"
	"github.com/goliatone/go-lettergen/pkg/staticdata"
)

// Generator produces document prompts and delivery payloads.
type Generator struct {
	schemas   *schema.Registry
	tables    *staticdata.Registry
	templates *prompt.Registry
	store     client.Store
	sink      delivery.Sink
	clk       clock.Clock
	logger    *zap.Logger
}

// Option configures a Generator.
type Option func(*Generator)

// WithSchemas overrides the form schema registry.
func WithSchemas(reg *schema.Registry) Option {
	return func(g *Generator) {
		if reg != nil {
			g.schemas = reg
		}
	}
}

// WithStaticData overrides the static data registry.
func WithStaticData(reg *staticdata.Registry) Option {
	return func(g *Generator) {
		if reg != nil {
			g.tables = reg
		}
	}
}

// WithTemplates overrides the prompt template registry.
func WithTemplates(reg *prompt.Registry) Option {
	return func(g *Generator) {
		if reg != nil {
			g.templates = reg
		}
	}
}

// WithStore attaches a client record store. Without one, generation skips
// record seeding and letter history.
func WithStore(store client.Store) Option {
	return func(g *Generator) { g.store = store }
}

// WithSink attaches a delivery sink used by Send.
func WithSink(sink delivery.Sink) Option {
	return func(g *Generator) { g.sink = sink }
}

// WithClock overrides the clock used for generation timestamps.
func WithClock(c clock.Clock) Option {
	return func(g *Generator) {
		if c != nil {
			g.clk = c
		}
	}
}

// WithLogger attaches a logger.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Generator) {
		if logger != nil {
			g.logger = logger
		}
	}
}

// New builds a Generator over the default registries unless overridden.
func New(opts ...Option) *Generator {
	g := &Generator{
		schemas:   schema.Default(),
		tables:    staticdata.Default(),
		templates: prompt.Default(),
		clk:       clock.System(),
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

// Request names a document to generate. Values holds the collected form
// field values; ClientID is optional and seeds the bag from the record
// store when set.
type Request struct {
	DocType  string
	ClientID string
	Values   prompt.DataBag
}

// Result is a generated document: the rendered prompt, the final bag it was
// rendered from and the payload shaped for the delivery sink.
type Result struct {
	DocType string
	Prompt  string
	Bag     prompt.DataBag
	Payload map[string]any
}

// Generate renders the prompt for a request and appends the letter to the
// client's history when a store and client id are present.
func (g *Generator) Generate(ctx context.Context, req Request) (Result, error) {
	def, err := g.templates.Template(req.DocType)
	if err != nil {
		return Result{}, err
	}

	bag := prompt.DataBag{}
	if req.ClientID != "" && g.store != nil {
		rec, err := g.store.Get(ctx, req.ClientID)
		if err != nil {
			return Result{}, fmt.Errorf("generator: load client: %w", err)
		}
		seedFromRecord(bag, rec)
	}
	bag.Merge(req.Values)

	if err := g.derive(req.DocType, bag); err != nil {
		return Result{}, err
	}

	rendered := def.Template.Render(bag)

	payload := make(map[string]any, len(bag)+4)
	for k, v := range bag {
		payload[k] = v
	}
	payload["type"] = def.Webhook.Type
	if def.Webhook.Template != "" {
		payload["template"] = def.Webhook.Template
	}
	payload["prompt"] = rendered
	payload["generatedDate"] = g.clk.Today()

	if req.ClientID != "" && g.store != nil {
		letter := client.Letter{Type: req.DocType, Date: g.clk.Today()}
		if err := g.store.AppendLetter(ctx, req.ClientID, letter); err != nil {
			return Result{}, fmt.Errorf("generator: record letter: %w", err)
		}
	}

	g.logger.Info("document generated",
		zap.String("type", req.DocType),
		zap.String("client_id", req.ClientID))

	return Result{DocType: req.DocType, Prompt: rendered, Bag: bag, Payload: payload}, nil
}

// Send generates a document, delivers its payload and marks the letter sent.
func (g *Generator) Send(ctx context.Context, req Request) (Result, error) {
	if g.sink == nil {
		return Result{}, fmt.Errorf("generator: no delivery sink configured")
	}
	result, err := g.Generate(ctx, req)
	if err != nil {
		return Result{}, err
	}
	if err := g.sink.Deliver(ctx, result.Payload); err != nil {
		return Result{}, err
	}
	if req.ClientID != "" && g.store != nil {
		if err := g.store.MarkLetterSent(ctx, req.ClientID, req.DocType); err != nil {
			return Result{}, fmt.Errorf("generator: mark letter sent: %w", err)
		}
	}
	return result, nil
}

// Validate reports the required form fields missing from the values,
// in form display order. An empty slice means the form is complete.
func (g *Generator) Validate(formType string, values prompt.DataBag) ([]string, error) {
	form, err := g.builder().Build(formType)
	if err != nil {
		return nil, err
	}
	var missing []string
	for _, id := range form.RequiredFields() {
		if !values.Has(id) {
			missing = append(missing, id)
		}
	}
	return missing, nil
}

// Form builds the interactive form model for a document type.
func (g *Generator) Form(formType string, opts ...formbuilder.BuildOption) (*formbuilder.FormInstance, error) {
	return g.builder().Build(formType, opts...)
}

func (g *Generator) builder() *formbuilder.Builder {
	return formbuilder.New(
		formbuilder.WithSchemas(g.schemas),
		formbuilder.WithStaticData(g.tables),
		formbuilder.WithClock(g.clk),
	)
}

func seedFromRecord(bag prompt.DataBag, rec client.Record) {
	bag["clientName"] = rec.Name
	bag["address"] = rec.Address
	bag["matterNumber"] = rec.MatterNumber
	bag["court"] = rec.Court
	bag["matterType"] = rec.MatterType
	bag["charges"] = rec.Charges
	bag["legalAid"] = rec.LegalAid
	bag["nextCourt"] = rec.NextCourt
	if rec.Contribution != "" {
		bag["contribution"] = rec.Contribution
	}
}

// derive fills the computed tokens for a document type. Explicitly supplied
// values win over derivation.
func (g *Generator) derive(docType string, bag prompt.DataBag) error {
	switch docType {
	case "CCL", "Mention", "Final", "FeeReestimate":
		g.deriveLetter(docType, bag)
	case "CDR":
		setIfAbsent(bag, "allocatedTo", prompt.AllocatedTo(g.groupValues(docType, "allocate_", bag)))
		setIfAbsent(bag, "cdrFeeReminder", "No")
		if _, ok := bag["cdrClientExcused"]; !ok {
			bag["cdrClientExcused"] = false
		}
	case "FileNote":
		setIfAbsent(bag, "typeSpecificDetails", prompt.FileNoteDetails(bag.String("fileNoteType"), bag))
		setIfAbsent(bag, "actionSection", prompt.ActionSection(bag.String("fileNoteAction")))
		setIfAbsent(bag, "followUpSection", prompt.FollowUpSection(bag.String("fileNoteFollowUp")))
		setIfAbsent(bag, "createdDate", prompt.FormatLongDate(g.clk.Today()))
		setIfAbsent(bag, "createdTime", g.clk.Now())
	case "Subpoena":
		setIfAbsent(bag, "proceedingsNumberLine", prompt.ProceedingsNumberLine(bag.String("proceedingsNumber")))
		setIfAbsent(bag, "partyDescription", prompt.PartyDescription(bag.String("partyType")))
		setIfAbsent(bag, "formattedReturnDate", prompt.FormatLongDate(bag.String("returnDate")))
		setIfAbsent(bag, "formattedComplianceDate", prompt.FormatLongDate(bag.String("complianceDate")))
		setIfAbsent(bag, "todayDate", prompt.FormatLongDate(g.clk.Today()))
	}
	return nil
}

func (g *Generator) deriveLetter(docType string, bag prompt.DataBag) {
	if docType == "CCL" {
		counts, _ := strconv.Atoi(bag.String("counts"))
		bag["charges"] = prompt.ChargesText(
			bag.String("charges"),
			g.groupValues(docType, "charge_", bag),
			bag.String("additionalCharges"),
			counts,
		)
		setIfAbsent(bag, "legalAidDetails", prompt.LegalAidDetails(
			bag.String("legalAidStatus"),
			bag.String("contribution"),
			bag.String("estimate"),
			bag.String("depositPaid"),
			bag.String("depositAmount"),
		))
	}
	setIfAbsent(bag, "advoConditions", joined(g.groupValues(docType, "advo_", bag)))
	setIfAbsent(bag, "bailStandardConditions", joined(g.groupValues(docType, "bail_", bag)))
	setIfAbsent(bag, "sentenceMaterials", joined(g.groupValues(docType, "sentenceMaterials_", bag)))
}

// groupValues collects the values of the checked members of a checkbox
// group, in form display order. The form model supplies the order; the bag
// supplies the checked state keyed by option id.
func (g *Generator) groupValues(formType, idPrefix string, bag prompt.DataBag) []string {
	form, err := g.builder().Build(formType)
	if err != nil {
		return nil
	}
	var out []string
	for _, field := range form.Fields() {
		if field.Prefix != idPrefix {
			continue
		}
		for _, opt := range field.Options {
			if bag.Bool(opt.ID) {
				out = append(out, opt.Value)
			}
		}
	}
	return out
}

func joined(values []string) string {
	return strings.Join(values, ", ")
}

func setIfAbsent(bag prompt.DataBag, key, value string) {
	if bag.Has(key) {
		return
	}
	bag[key] = value
}
