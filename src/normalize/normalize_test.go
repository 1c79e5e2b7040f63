package normalize

import "testing"

const sampleReply = `Domain Name: EXAMPLE.COM
Registrar: Example Registrar LLC
Registrar IANA ID: 1234
Creation Date: 1995-08-14T04:00:00Z
Registry Expiry Date: 2026-08-13T04:00:00Z
Name Server: NS1.EXAMPLE.COM
Name Server: NS1.EXAMPLE.COM
Name Server: NS2.EXAMPLE.COM
Domain Status: clientTransferProhibited
DNSSEC: unsigned

Registrant Contact:
    Name: Jane Doe
    Email: jane@example.com
    Street: 1 Infinite Loop
    City: Cupertino

Admin Contact:
    Name: John Admin
    Email: admin@example.com
`

func TestNormalizeBasicFields(t *testing.T) {
	rec := Normalize("example.com", sampleReply)

	if rec.Domain != "EXAMPLE.COM" {
		t.Errorf("Domain = %q", rec.Domain)
	}
	if rec.Registrar.Name != "Example Registrar LLC" {
		t.Errorf("Registrar.Name = %q", rec.Registrar.Name)
	}
	if rec.RegistrarIANAID != "1234" {
		t.Errorf("RegistrarIANAID = %q", rec.RegistrarIANAID)
	}
	if rec.Dates.CreatedRaw == "" || rec.Dates.ExpiresRaw == "" {
		t.Errorf("Dates = %+v", rec.Dates)
	}
	if len(rec.Nameservers) != 2 {
		t.Errorf("expected deduped nameservers, got %v", rec.Nameservers)
	}
	if len(rec.Status) != 1 || rec.Status[0] != "clientTransferProhibited" {
		t.Errorf("Status = %v", rec.Status)
	}
	if rec.DNSSEC != "unsigned" {
		t.Errorf("DNSSEC = %q", rec.DNSSEC)
	}
	if rec.Contacts.Registrant.Name != "Jane Doe" || rec.Contacts.Registrant.Email != "jane@example.com" {
		t.Errorf("Registrant = %+v", rec.Contacts.Registrant)
	}
	if rec.Contacts.Administrative.Name != "John Admin" {
		t.Errorf("Administrative = %+v", rec.Contacts.Administrative)
	}
	if rec.RawText != sampleReply {
		t.Error("RawText should be preserved verbatim")
	}
}

func TestContextUpdateValueSuppressesDatesInsideSection(t *testing.T) {
	c := NewContext()
	c.CurrentSection = "registrant"
	c.UpdateValue("dates.updated", "2020-01-01")
	if c.Dates["updated"] != "" {
		t.Errorf("expected date write suppressed while a contact section is active, got %q", c.Dates["updated"])
	}

	c.CurrentSection = ""
	c.UpdateValue("dates.updated", "2020-01-01")
	if c.Dates["updated"] != "2020-01-01" {
		t.Errorf("expected date write to succeed once the section clears, got %q", c.Dates["updated"])
	}
}

func TestNormalizeGlobalFieldClearsSection(t *testing.T) {
	// Registrant Contact: opens a section; the global "Updated Date"
	// match resets current_section before the write happens, so the
	// date is written (global fields always clear the section on match,
	// per spec.md's walk algorithm) rather than suppressed.
	text := "Registrant Contact:\n    Name: Jane Doe\n    Updated Date: 2020-01-01\n"
	rec := Normalize("example.com", text)
	if rec.Dates.UpdatedRaw != "2020-01-01" {
		t.Errorf("expected global date field to be written, got %q", rec.Dates.UpdatedRaw)
	}
}

func TestContextUpdateValueAppendsDistinctContactValues(t *testing.T) {
	c := NewContext()
	c.UpdateValue("contacts.administrative.organization", "Example Inc")
	c.UpdateValue("contacts.administrative.organization", "Example Holdings")
	got := c.Contacts["administrative"]["organization"]
	if got != "Example Inc, Example Holdings" {
		t.Errorf("expected joined values, got %q", got)
	}

	// A repeated identical value is not appended again.
	c.UpdateValue("contacts.administrative.organization", "Example Holdings")
	if c.Contacts["administrative"]["organization"] != "Example Inc, Example Holdings" {
		t.Errorf("expected duplicate write to be a no-op, got %q", c.Contacts["administrative"]["organization"])
	}
}

func TestContextUpdateValueDedupsNameservers(t *testing.T) {
	c := NewContext()
	c.UpdateValue("nameservers", "ns1.example.com")
	c.UpdateValue("nameservers", "ns1.example.com")
	c.UpdateValue("nameservers", "ns2.example.com")
	if len(c.Nameservers) != 2 {
		t.Errorf("expected deduped nameservers, got %v", c.Nameservers)
	}
}

func TestNormalizeUnmappedLabelGoesToOther(t *testing.T) {
	text := "Domain Name: example.com\nSome Weird Field: qux\n"
	rec := Normalize("example.com", text)
	if v, ok := rec.Other["global.Some Weird Field"]; !ok || v != "qux" {
		t.Errorf("expected unmapped field namespaced under global, got %+v", rec.Other)
	}
}

func TestContextUpdateValueScalarFieldsAreWriteOnce(t *testing.T) {
	c := NewContext()
	c.UpdateValue("dates.created", "1995-08-14")
	c.UpdateValue("dates.created", "1999-01-01")
	if c.Dates["created"] != "1995-08-14" {
		t.Errorf("expected first dates.created write to win, got %q", c.Dates["created"])
	}

	c.UpdateValue("domain", "example.com")
	c.UpdateValue("domain", "example.org")
	if c.Other["domain"] != "example.com" {
		t.Errorf("expected first domain write to win, got %q", c.Other["domain"])
	}
}

func TestNormalizeSentinelValueDropped(t *testing.T) {
	text := "Name Server: None\n"
	rec := Normalize("example.com", text)
	if len(rec.Nameservers) != 0 {
		t.Errorf("expected sentinel nameserver value dropped, got %v", rec.Nameservers)
	}
}
