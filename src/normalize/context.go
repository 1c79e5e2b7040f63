package normalize

import "strings"

// discardedValues are written nowhere: they are placeholders a registry
// emits in place of real data, per async43/parser/engine.WhoisContext.update_value.
var discardedValues = map[string]struct{}{
	"none":                     {},
	"no name servers provided": {},
}

// Context accumulates normalized fields while a tree is walked, mirroring
// async43/parser/engine.WhoisContext. CurrentSection gates date writes:
// a date label seen while inside a contact section is noise (e.g. a
// registrar echoing "Updated Date" under a nested admin block) and is
// dropped rather than overwriting the top-level date.
type Context struct {
	CurrentSection string
	Dates          map[string]string
	Registrar      map[string]string
	Nameservers    []string
	Status         []string
	Contacts       map[string]map[string]string
	Other          map[string]string
}

// NewContext returns an empty Context with all schema buckets initialized,
// matching WhoisContext._init_structure.
func NewContext() *Context {
	contacts := make(map[string]map[string]string, 5)
	for _, section := range []string{"registrant", "administrative", "technical", "abuse", "billing"} {
		contacts[section] = make(map[string]string)
	}
	return &Context{
		Dates:     make(map[string]string),
		Registrar: make(map[string]string),
		Contacts:  contacts,
		Other:     make(map[string]string),
	}
}

// UpdateValue writes value at the schema path, applying the same
// dedup/append/suppress write policy as update_value:
//   - blank or sentinel values are dropped
//   - a "dates.*" write while inside a contact section is dropped
//   - nameservers/status are deduplicated, order-preserving lists
//   - contacts.*/registrar.* fields already set are appended with ", "
//     unless the new value is already present
//   - a scalar "dates.*" field, or a path with no bucket of its own
//     (domain, dnssec, registrar_iana_id, and anything else landing in
//     Other), is write-once: a second write to the same key is silently
//     dropped rather than overwriting the first
func (c *Context) UpdateValue(path, value string) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return
	}
	if _, discard := discardedValues[strings.ToLower(trimmed)]; discard {
		return
	}

	keys := strings.Split(path, ".")
	if keys[0] == "dates" && c.CurrentSection != "" {
		return
	}

	last := keys[len(keys)-1]

	switch keys[0] {
	case "dates":
		if _, exists := c.Dates[last]; exists {
			return
		}
		c.Dates[last] = trimmed
	case "registrar":
		c.setAppendOnce(c.Registrar, last, trimmed, true)
	case "nameservers":
		c.Nameservers = appendUnique(c.Nameservers, trimmed)
	case "status":
		c.Status = appendUnique(c.Status, trimmed)
	case "contacts":
		section := keys[1]
		field := keys[2]
		bucket := c.Contacts[section]
		if bucket == nil {
			bucket = make(map[string]string)
			c.Contacts[section] = bucket
		}
		c.setAppendOnce(bucket, field, trimmed, true)
	default:
		if _, exists := c.Other[path]; exists {
			return
		}
		c.Other[path] = trimmed
	}
}

func (c *Context) setAppendOnce(bucket map[string]string, key, value string, appendable bool) {
	existing, ok := bucket[key]
	if !ok || existing == "" {
		bucket[key] = value
		return
	}
	if !appendable {
		return
	}
	if existing == value || strings.Contains(existing, value) {
		return
	}
	bucket[key] = existing + ", " + value
}

func appendUnique(list []string, value string) []string {
	for _, v := range list {
		if v == value {
			return list
		}
	}
	return append(list, value)
}

// SetOther records a label/value pair that resolved to no schema path,
// namespaced by the enclosing section (or "global"), per WhoisEngine.walk's
// else branch.
func (c *Context) SetOther(label, value string) {
	prefix := c.CurrentSection
	if prefix == "" {
		prefix = "global"
	}
	c.Other[prefix+"."+label] = strings.TrimSpace(value)
}
