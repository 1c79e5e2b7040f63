package resolve

import (
	"context"
	"errors"
	"testing"

	"github.com/devl00p/async43/src/werrors"
)

func TestTargetExtractsRegistrableDomain(t *testing.T) {
	r := New()
	domain, err := r.Target(context.Background(), "www.example.co.uk")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if domain != "example.co.uk" {
		t.Errorf("got %q", domain)
	}
}

func TestTargetRejectsNonRoutableIP(t *testing.T) {
	r := New()
	_, err := r.Target(context.Background(), "198.51.100.1")
	var werr *werrors.Error
	if !errors.As(err, &werr) || werr.Kind != werrors.KindNonRoutableIP {
		t.Fatalf("expected NonRoutableIP, got %v", err)
	}
}

func TestTargetRecursesThroughReverseDNS(t *testing.T) {
	r := NewWithLookup(func(ctx context.Context, ip string) ([]string, error) {
		if ip != "8.8.8.8" {
			t.Fatalf("unexpected lookup target %q", ip)
		}
		return []string{"dns.google."}, nil
	})

	domain, err := r.Target(context.Background(), "8.8.8.8")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if domain != "google.com" && domain != "dns.google" {
		t.Errorf("got %q", domain)
	}
}

func TestTargetFailsOnReverseDNSError(t *testing.T) {
	r := NewWithLookup(func(ctx context.Context, ip string) ([]string, error) {
		return nil, errors.New("no PTR record")
	})

	_, err := r.Target(context.Background(), "1.1.1.1")
	var werr *werrors.Error
	if !errors.As(err, &werr) || werr.Kind != werrors.KindNetwork {
		t.Fatalf("expected NetworkError, got %v", err)
	}
}
