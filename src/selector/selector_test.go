package selector

import (
	"context"
	"testing"
)

func TestChooseUsesStaticTable(t *testing.T) {
	s := New(nil)
	host, err := s.Choose(context.Background(), "example.com")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if host != "whois.verisign-grs.com" {
		t.Errorf("got %q", host)
	}
}

func TestChooseAppliesFixedSuffixRules(t *testing.T) {
	s := New(nil)
	host, err := s.Choose(context.Background(), "example.hr")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if host != "whois.dns.hr" {
		t.Errorf("got %q", host)
	}
}

func TestChooseDigitFirstTLDGoesToARIN(t *testing.T) {
	s := New(nil)
	host, err := s.Choose(context.Background(), "1.2.3.10.in-addr.4arpa")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if host != ARINHost {
		t.Errorf("got %q", host)
	}
}

func TestChooseFallsBackToIANA(t *testing.T) {
	var gotHost, gotQuery string
	s := New(func(ctx context.Context, host, query string) (string, error) {
		gotHost, gotQuery = host, query
		return "% IANA WHOIS server\nwhois: whois.nic.xn--zzz\n", nil
	})

	host, err := s.Choose(context.Background(), "example.xn--zzz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotHost != IANAHost {
		t.Errorf("expected IANA query to target %q, got %q", IANAHost, gotHost)
	}
	if gotQuery != "xn--zzz" {
		t.Errorf("expected bare TLD query, got %q", gotQuery)
	}
	if host != "whois.nic.xn--zzz" {
		t.Errorf("got %q", host)
	}
}

func TestChooseIANANoReferralReturnsNone(t *testing.T) {
	s := New(func(ctx context.Context, host, query string) (string, error) {
		return "% no referral here\n", nil
	})
	host, err := s.Choose(context.Background(), "example.zzz")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if host != "none" {
		t.Errorf("got %q", host)
	}
}
