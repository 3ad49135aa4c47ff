package server

import (
	"github.com/goliatone/go-lettergen/pkg/client"
	"github.com/goliatone/go-lettergen/pkg/formbuilder"
)

type clientPayload struct {
	ID           string          `json:"id,omitempty"`
	Name         string          `json:"name"`
	Address      string          `json:"address,omitempty"`
	Phone        string          `json:"phone,omitempty"`
	Email        string          `json:"email,omitempty"`
	MatterNumber string          `json:"matterNumber,omitempty"`
	Court        string          `json:"court,omitempty"`
	MatterType   string          `json:"matterType,omitempty"`
	Charges      string          `json:"charges,omitempty"`
	LegalAid     bool            `json:"legalAid"`
	Contribution string          `json:"contribution,omitempty"`
	NextCourt    string          `json:"nextCourt,omitempty"`
	Letters      []letterPayload `json:"letters,omitempty"`
}

type letterPayload struct {
	Type  string `json:"type"`
	Date  string `json:"date"`
	Notes string `json:"notes,omitempty"`
	Sent  bool   `json:"sent"`
}

func toClientPayload(rec client.Record) clientPayload {
	p := clientPayload{
		ID:           rec.ID,
		Name:         rec.Name,
		Address:      rec.Address,
		Phone:        rec.Phone,
		Email:        rec.Email,
		MatterNumber: rec.MatterNumber,
		Court:        rec.Court,
		MatterType:   rec.MatterType,
		Charges:      rec.Charges,
		LegalAid:     rec.LegalAid,
		Contribution: rec.Contribution,
		NextCourt:    rec.NextCourt,
	}
	for _, l := range rec.Letters {
		p.Letters = append(p.Letters, letterPayload{
			Type:  l.Type,
			Date:  l.Date,
			Notes: l.Notes,
			Sent:  l.Sent,
		})
	}
	return p
}

func (p clientPayload) toRecord() client.Record {
	rec := client.Record{
		ID:           p.ID,
		Name:         p.Name,
		Address:      p.Address,
		Phone:        p.Phone,
		Email:        p.Email,
		MatterNumber: p.MatterNumber,
		Court:        p.Court,
		MatterType:   p.MatterType,
		Charges:      p.Charges,
		LegalAid:     p.LegalAid,
		Contribution: p.Contribution,
		NextCourt:    p.NextCourt,
	}
	for _, l := range p.Letters {
		rec.Letters = append(rec.Letters, client.Letter{
			Type:  l.Type,
			Date:  l.Date,
			Notes: l.Notes,
			Sent:  l.Sent,
		})
	}
	return rec
}

type optionPayload struct {
	ID       string `json:"id"`
	Value    string `json:"value"`
	Label    string `json:"label"`
	Checked  bool   `json:"checked,omitempty"`
	Disabled bool   `json:"disabled,omitempty"`
}

type fieldPayload struct {
	ID          string          `json:"id"`
	Kind        string          `json:"kind"`
	Label       string          `json:"label,omitempty"`
	Required    bool            `json:"required,omitempty"`
	Placeholder string          `json:"placeholder,omitempty"`
	Rows        int             `json:"rows,omitempty"`
	Min         string          `json:"min,omitempty"`
	Step        string          `json:"step,omitempty"`
	Name        string          `json:"name,omitempty"`
	Value       string          `json:"value,omitempty"`
	Options     []optionPayload `json:"options,omitempty"`
	Prefix      string          `json:"prefix,omitempty"`
	Group       string          `json:"group,omitempty"`
}

type sectionPayload struct {
	Title         string         `json:"title"`
	ClientCharges string         `json:"clientCharges,omitempty"`
	Fields        []fieldPayload `json:"fields"`
}

// formPayload flattens a built form into its JSON wire shape. Visibility
// rules stay server side; clients get the group markers on each field.
func formPayload(form *formbuilder.FormInstance) map[string]any {
	sections := make([]sectionPayload, 0, len(form.Sections))
	for _, sec := range form.Sections {
		sp := sectionPayload{
			Title:         sec.Title,
			ClientCharges: sec.ClientCharges,
			Fields:        make([]fieldPayload, 0, len(sec.Fields)),
		}
		for _, f := range sec.Fields {
			fp := fieldPayload{
				ID:          f.ID,
				Kind:        string(f.Kind),
				Label:       f.Label,
				Required:    f.Required,
				Placeholder: f.Placeholder,
				Rows:        f.Rows,
				Min:         f.Min,
				Step:        f.Step,
				Name:        f.Name,
				Value:       f.Value,
				Prefix:      f.Prefix,
				Group:       f.Group,
			}
			for _, opt := range f.Options {
				fp.Options = append(fp.Options, optionPayload{
					ID:       opt.ID,
					Value:    opt.Value,
					Label:    opt.Label,
					Checked:  opt.Checked,
					Disabled: opt.Disabled,
				})
			}
			sp.Fields = append(sp.Fields, fp)
		}
		sections = append(sections, sp)
	}

	return map[string]any{
		"type":     form.Type,
		"sections": sections,
	}
}
