package normalize

import (
	"strings"

	"github.com/devl00p/async43/src/fuzzy"
)

// sectionFromKeyword falls back to substring matching on the cleaned
// label when it is neither an exact SECTION_* alias nor one of the fixed
// registrar/registrant labels, per detect_section_from_label's keyword
// loop.
var sectionFromKeyword = []struct {
	keyword string
	section string
}{
	{"admin", "administrative"},
	{"tech", "technical"},
	{"registrant", "registrant"},
	{"billing", "billing"},
}

// sectionFromContactValue handles the "Contact: administrative" shape,
// where the section name is the VALUE rather than the label.
var sectionFromContactValue = map[string]string{
	"administrative": "administrative",
	"technical":      "technical",
	"registrant":     "registrant",
	"billing":        "billing",
	"abuse":          "abuse",
}

// Target is a resolved destination: a section transition, a schema path
// to write to, or both (a section header line that also carries a name,
// e.g. "Registrar: Example Registrar LLC").
type Target struct {
	Section string
	Path    string
}

// Mapper resolves a (label, value) pair against SchemaMapping, mirroring
// async43/parser/engine.SchemaMapper.
type Mapper struct {
	mapping         map[string][]string
	flatChoices     []string
	sectionTriggers map[string]string
}

// NewMapper builds a Mapper over the given alias table, flattening it once
// for fuzzy lookup and indexing the SECTION_* entries by lowercased alias.
func NewMapper(mapping map[string][]string) *Mapper {
	m := &Mapper{
		mapping:         mapping,
		sectionTriggers: make(map[string]string),
	}
	for path, aliases := range mapping {
		if strings.HasPrefix(path, "SECTION_") {
			section := strings.ToLower(strings.TrimPrefix(path, "SECTION_"))
			for _, alias := range aliases {
				m.sectionTriggers[strings.ToLower(alias)] = section
			}
			continue
		}
		m.flatChoices = append(m.flatChoices, aliases...)
	}
	return m
}

// DefaultMapper is a Mapper over SchemaMapping, ready to use.
var DefaultMapper = NewMapper(SchemaMapping)

func cleanLabelKey(label string) string {
	return strings.TrimSpace(strings.ReplaceAll(strings.ToLower(label), ":", ""))
}

func (m *Mapper) detectSectionFromValue(label, value string) string {
	if value == "" {
		return ""
	}
	clean := cleanLabelKey(label)
	if clean != "contact" && clean != "contacts" {
		return ""
	}
	return sectionFromContactValue[strings.ToLower(strings.TrimSpace(value))]
}

func (m *Mapper) detectSectionFromLabel(label string) string {
	clean := cleanLabelKey(label)

	if section, ok := m.sectionTriggers[clean]; ok {
		return section
	}
	if clean == "registrar" || clean == "authorised registrar" {
		return "registrar"
	}
	if clean == "domain registrant" {
		return "registrant"
	}
	for _, kw := range sectionFromKeyword {
		if strings.Contains(clean, kw.keyword) {
			return kw.section
		}
	}
	return ""
}

func (m *Mapper) lookupPath(term string) (string, bool) {
	for path, aliases := range m.mapping {
		if strings.HasPrefix(path, "SECTION_") {
			continue
		}
		for _, a := range aliases {
			if strings.EqualFold(a, term) {
				return path, true
			}
		}
	}
	return "", false
}

func (m *Mapper) fuzzyLookupPath(term string) (string, bool) {
	match, ok := fuzzy.ExtractOne(term, m.flatChoices)
	if !ok || match.Score <= 90 {
		return "", false
	}
	for path, aliases := range m.mapping {
		if strings.HasPrefix(path, "SECTION_") {
			continue
		}
		for _, a := range aliases {
			if a == match.Choice {
				return path, true
			}
		}
	}
	return "", false
}

// Resolve maps a label/value pair into a section transition and/or a
// schema path, given the current section, per SchemaMapper.resolve.
func (m *Mapper) Resolve(label, value, currentSection string) Target {
	clean := cleanLabelKey(label)
	if clean == "" {
		return Target{}
	}

	if section := m.detectSectionFromValue(label, value); section != "" {
		return Target{Section: section}
	}

	var target Target
	sectionFromLabel := m.detectSectionFromLabel(label)
	if sectionFromLabel != "" {
		target.Section = sectionFromLabel

		if (clean == "registrar" || clean == "domain registrant" || clean == "authorised registrar") && value != "" {
			if sectionFromLabel == "registrar" {
				target.Path = "registrar.name"
			} else {
				target.Path = "contacts." + sectionFromLabel + ".name"
			}
			return target
		}
	}

	effectiveSection := sectionFromLabel
	if effectiveSection == "" {
		effectiveSection = currentSection
	}

	var searchTerms []string
	if effectiveSection != "" && strings.HasPrefix(clean, effectiveSection) {
		if suffix := strings.TrimSpace(clean[len(effectiveSection):]); suffix != "" {
			searchTerms = append(searchTerms, effectiveSection+" "+suffix)
		}
	}
	if effectiveSection != "" {
		searchTerms = append(searchTerms, effectiveSection+" "+clean)
	}
	searchTerms = append(searchTerms, clean)

	for _, term := range searchTerms {
		if path, ok := m.lookupPath(term); ok {
			target.Path = path
			return target
		}
	}
	for _, term := range searchTerms {
		if path, ok := m.fuzzyLookupPath(term); ok {
			target.Path = path
			return target
		}
	}

	return target
}
