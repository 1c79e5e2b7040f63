// Package structure implements spec.md §4.5: turning a raw WHOIS reply
// into an ordered tree of (label, value, children) nodes, based on
// indentation and "label: value" / "[label] value" conventions. It is a
// direct translation of async43/parser/structure.py's parse_whois into
// Go, keeping the same indentation-stack algorithm.
package structure

import "strings"

// TabWidth is fixed per spec §4.5; indentation is measured after
// expanding tabs to this width.
const TabWidth = 4

// SectionBreak is the sentinel label emitted at top level on a blank
// line, coalesced so two never appear consecutively.
const SectionBreak = "SECTION_BREAK"

// Child is either a *Node or a bare continuation string. Go has no sum
// type, so the element type is interface{} and callers type-switch on
// *Node versus string to keep continuation strings distinct from
// labeled children (spec.md §9).
type Child interface{}

// Node is one entry in the parse tree.
type Node struct {
	Label    string
	Value    string
	HasValue bool
	Indent   int
	Children []Child
}

// DefaultLegalMentions is the boilerplate phrase list consulted by
// Parse to drop legal disclaimer lines, grounded on
// async43/parser/constants.py's LEGAL_MENTIONS.
var DefaultLegalMentions = []string{
	"The compilation, repackaging, dissemination",
	"The data in Nameshield Whois database",
	"TERMS OF USE:",
	"NOTICE:",
	"By submitting a Whois query",
	"commercial advertising or solicitations via e-mail",
	"Nameshield reserves the right to restrict",
	"order to protect the privacy of Registrants",
	"URL of the ICANN Whois Inaccuracy Complaint Form",
	"You have no right to access our WHOIS database via high capacity",
	"You agree that you may use this Data only for lawful purposes",
	"circumstances will you",
}

func isComment(line string) bool {
	trimmed := strings.TrimLeft(line, " \t")
	return strings.HasPrefix(trimmed, "%") || strings.HasPrefix(trimmed, ">")
}

func isLegalBoilerplate(line string, mentions []string) bool {
	lower := strings.ToLower(line)
	for _, m := range mentions {
		if strings.Contains(lower, strings.ToLower(m)) {
			return true
		}
	}
	return false
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}

func cleanLabel(label string) string {
	return strings.TrimRight(strings.TrimSpace(label), ". \t")
}

// normalizeIndent expands tabs to TabWidth and returns the count of
// leading spaces plus the stripped, right-trimmed remainder.
func normalizeIndent(line string) (int, string) {
	expanded := expandTabs(line, TabWidth)
	stripped := strings.TrimLeft(expanded, " ")
	indent := len(expanded) - len(stripped)
	return indent, strings.TrimRight(stripped, "\r\n")
}

func expandTabs(s string, width int) string {
	if !strings.Contains(s, "\t") {
		return s
	}
	var b strings.Builder
	col := 0
	for _, r := range s {
		if r == '\t' {
			spaces := width - (col % width)
			for i := 0; i < spaces; i++ {
				b.WriteByte(' ')
			}
			col += spaces
			continue
		}
		b.WriteRune(r)
		col++
	}
	return b.String()
}

// splitLabelValue implements spec §4.5's content split: bracketed
// labels win first, then a "label:value" split that rejects times and
// URLs by requiring the label be non-empty and the remainder be empty
// or begin with a space.
func splitLabelValue(content string) (label string, value string, hasValue bool, ok bool) {
	if strings.HasPrefix(content, "[") {
		if end := strings.Index(content, "]"); end >= 0 {
			label = strings.TrimSpace(content[1:end])
			rest := strings.TrimSpace(content[end+1:])
			return label, rest, rest != "", true
		}
	}

	idx := strings.Index(content, ":")
	if idx < 0 {
		return "", "", false, false
	}

	rawLabel, rest := content[:idx], content[idx+1:]
	if strings.TrimSpace(rawLabel) == "" {
		return "", "", false, false
	}

	if rest == "" || strings.HasPrefix(rest, " ") {
		label = cleanLabel(rawLabel)
		value = strings.TrimSpace(rest)
		return label, value, value != "", true
	}

	return "", "", false, false
}

// Parse converts raw WHOIS reply text into an ordered top-level list of
// nodes, per spec §4.5.
func Parse(text string) []Child {
	return ParseWithLegalMentions(text, DefaultLegalMentions)
}

// ParseWithLegalMentions is Parse with a caller-supplied boilerplate
// phrase list, letting tests exercise the filter without the default set.
func ParseWithLegalMentions(text string, legalMentions []string) []Child {
	// A final newline terminates the last line; it is not a blank line.
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")
	var root []Child
	var stack []*Node

	appendChild := func(c Child) {
		if len(stack) > 0 {
			top := stack[len(stack)-1]
			top.Children = append(top.Children, c)
		} else {
			root = append(root, c)
		}
	}

	for _, raw := range lines {
		if isComment(raw) || isLegalBoilerplate(raw, legalMentions) {
			continue
		}

		indent, content := normalizeIndent(raw)

		if isBlank(content) {
			stack = nil
			if n := len(root); n == 0 || !isSectionBreak(root[n-1]) {
				root = append(root, &Node{Label: SectionBreak, Indent: 0})
			}
			continue
		}

		label, value, hasValue, ok := splitLabelValue(content)
		if ok {
			node := &Node{Label: label, Value: value, HasValue: hasValue, Indent: indent}

			for len(stack) > 0 && indent <= stack[len(stack)-1].Indent {
				stack = stack[:len(stack)-1]
			}
			appendChild(node)
			stack = append(stack, node)
			continue
		}

		for len(stack) > 0 && indent < stack[len(stack)-1].Indent {
			stack = stack[:len(stack)-1]
		}
		if len(stack) > 0 {
			appendChild(content)
		} else {
			root = append(root, &Node{Label: content, Indent: indent})
		}
	}

	return root
}

func isSectionBreak(c Child) bool {
	n, ok := c.(*Node)
	return ok && n.Label == SectionBreak
}
