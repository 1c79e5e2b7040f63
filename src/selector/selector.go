// Package selector implements spec.md §4.2: mapping a registrable
// domain to the WHOIS host that should be queried first, grounded on
// apimgr-search's instant.WHOISHandler TLD table and its
// getTLD/queryWHOIS split of concerns.
package selector

import (
	"bufio"
	"context"
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/net/idna"
)

// ianaPattern pulls the referral host out of an IANA TLD report, per
// spec §4.2's `whois:\s+(\S+)` rule.
var ianaPattern = regexp.MustCompile(`(?i)^\s*whois:\s+(\S+)`)

// Query opens a WHOIS connection and returns the raw reply; selector
// depends on this rather than the transport package directly so the
// IANA fallback can be exercised without a real socket in tests.
type Query func(ctx context.Context, host, query string) (string, error)

// Selector resolves a domain to an initial WHOIS host.
type Selector struct {
	query Query
}

// New returns a Selector that performs its IANA fallback queries with q.
func New(q Query) *Selector {
	return &Selector{query: q}
}

// Choose implements spec §4.2's rule order: IDNA encode, fixed
// suffixes, the static TLD table, the digit-first-TLD ARIN rule, and
// finally an IANA query.
func (s *Selector) Choose(ctx context.Context, domain string) (string, error) {
	ascii, err := idna.ToASCII(strings.ToLower(strings.TrimSpace(domain)))
	if err != nil {
		ascii = strings.ToLower(strings.TrimSpace(domain))
	}

	for _, rule := range fixedSuffixes {
		if strings.HasSuffix(ascii, rule.suffix) {
			return rule.host, nil
		}
	}

	tld := lastLabel(ascii)
	if tld == "" {
		return IANAHost, nil
	}

	if host, ok := tldServers[tld]; ok {
		return host, nil
	}

	if len(tld) > 0 && unicode.IsDigit(rune(tld[0])) {
		return ARINHost, nil
	}

	return s.queryIANA(ctx, tld)
}

func lastLabel(domain string) string {
	parts := strings.Split(domain, ".")
	if len(parts) == 0 {
		return ""
	}
	return parts[len(parts)-1]
}

// queryIANA sends the bare TLD to whois.iana.org and scans the reply
// for the first `whois: <host>` line.
func (s *Selector) queryIANA(ctx context.Context, tld string) (string, error) {
	if s.query == nil {
		return "none", nil
	}
	reply, err := s.query(ctx, IANAHost, tld)
	if err != nil {
		return "", err
	}

	scanner := bufio.NewScanner(strings.NewReader(reply))
	for scanner.Scan() {
		if m := ianaPattern.FindStringSubmatch(scanner.Text()); m != nil {
			return m[1], nil
		}
	}
	return "none", nil
}
