// Package normalize implements spec.md §4.6: walking the indentation tree
// produced by package structure and folding it into a normalized record,
// using fuzzy label matching to absorb registrar-specific wording. It is
// the Go counterpart of async43/parser/engine.py.
package normalize

import (
	"strings"

	"github.com/devl00p/async43/src/model"
	"github.com/devl00p/async43/src/structure"
)

// Engine walks a parsed tree and accumulates a Context, per WhoisEngine.
type Engine struct {
	mapper *Mapper
	ctx    *Context
}

// NewEngine returns an Engine over the default schema mapping.
func NewEngine() *Engine {
	return &Engine{mapper: DefaultMapper, ctx: NewContext()}
}

// Walk recursively visits nodes, resolving each label/value pair and
// recursing into its children, per WhoisEngine.walk.
func (e *Engine) Walk(nodes []structure.Child) {
	for _, child := range nodes {
		node, ok := child.(*structure.Node)
		if !ok {
			continue
		}

		label := strings.TrimSpace(node.Label)
		if label == structure.SectionBreak {
			e.ctx.CurrentSection = ""
			continue
		}

		target := e.mapper.Resolve(label, node.Value, e.ctx.CurrentSection)

		if target.Section != "" {
			e.ctx.CurrentSection = target.Section
		}

		switch {
		case target.Path != "":
			if !strings.HasPrefix(target.Path, "contacts") && !strings.HasPrefix(target.Path, "registrar") {
				e.ctx.CurrentSection = ""
			}
			if node.Value != "" {
				e.ctx.UpdateValue(target.Path, node.Value)
			}
		case target.Section == "" && node.Value != "":
			e.ctx.SetOther(label, node.Value)
		}

		e.Walk(node.Children)
	}
}

// Record converts the accumulated Context into a model.Record, stitching
// in rawText verbatim per spec §4.6's contract that RawText always
// survives even when every other field is empty.
func (e *Engine) Record(domainHint, rawText string) *model.Record {
	c := e.ctx
	rec := &model.Record{
		Domain:          firstNonEmpty(c.Other["domain"], domainHint),
		RegistrarIANAID: c.Other["registrar_iana_id"],
		DNSSEC:          c.Other["dnssec"],
		Nameservers:     c.Nameservers,
		Status:          c.Status,
		RawText:         rawText,
		Dates: model.Dates{
			CreatedRaw: c.Dates["created"],
			UpdatedRaw: c.Dates["updated"],
			ExpiresRaw: c.Dates["expires"],
		},
		Registrar: contactFrom(c.Registrar),
		Contacts: model.Contacts{
			Registrant:     contactFrom(c.Contacts["registrant"]),
			Administrative: contactFrom(c.Contacts["administrative"]),
			Technical:      contactFrom(c.Contacts["technical"]),
			Abuse:          contactFrom(c.Contacts["abuse"]),
			Billing:        contactFrom(c.Contacts["billing"]),
		},
		Other: make(map[string]string),
	}

	// "domain", "registrar_iana_id" and "dnssec" land in Other because
	// they have no nested struct home in normalize's flat field map; pull
	// them out of Other once consumed above so Other only carries truly
	// unmapped labels.
	for k, v := range c.Other {
		switch k {
		case "domain", "registrar_iana_id", "dnssec":
			continue
		}
		rec.Other[k] = v
	}

	if rec.Domain == "" {
		rec.Domain = domainHint
	}

	return rec
}

func contactFrom(fields map[string]string) model.Contact {
	return model.Contact{
		Name:         fields["name"],
		Organization: fields["organization"],
		Street:       fields["street"],
		City:         fields["city"],
		State:        fields["state"],
		PostalCode:   fields["postal_code"],
		Country:      fields["country"],
		Phone:        fields["phone"],
		Fax:          fields["fax"],
		Email:        fields["email"],
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// Normalize is the package-level entrypoint: parse rawText's structure
// tree and fold it into a model.Record, seeding Domain with domainHint
// when the reply never echoes its own domain label.
func Normalize(domainHint, rawText string) *model.Record {
	tree := structure.Parse(rawText)
	engine := NewEngine()
	engine.Walk(tree)
	return engine.Record(domainHint, rawText)
}
