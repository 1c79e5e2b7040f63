// Package resolve implements spec.md §4.1: turning an arbitrary
// user-supplied string into a registrable domain suitable as a WHOIS
// query term, grounded on apimgr-search's src/direct ResolveHandler
// and src/tls/dns.go reverse-lookup helpers.
package resolve

import (
	"context"
	"net"
	"strings"

	"github.com/miekg/dns"
	"golang.org/x/net/idna"
	"golang.org/x/net/publicsuffix"

	"github.com/devl00p/async43/src/werrors"
)

// Resolver turns a user string into a registrable domain, with its
// network operations (reverse-DNS) swappable for tests.
type Resolver struct {
	lookupAddr func(ctx context.Context, ip string) ([]string, error)
}

// New returns a Resolver that issues its own PTR queries with
// github.com/miekg/dns against the first nameserver in /etc/resolv.conf,
// rather than net.DefaultResolver, so the query itself is subject to
// the same per-call context deadline as every other suspension point.
func New() *Resolver {
	return &Resolver{lookupAddr: dnsLookupAddr}
}

// dnsLookupAddr issues a PTR query for ip against the first nameserver
// in the system resolver config.
func dnsLookupAddr(ctx context.Context, ip string) ([]string, error) {
	arpa, err := dns.ReverseAddr(ip)
	if err != nil {
		return nil, err
	}

	cfg, err := dns.ClientConfigFromFile("/etc/resolv.conf")
	if err != nil || len(cfg.Servers) == 0 {
		return nil, werrors.Network("no nameserver configured for reverse lookup", err)
	}

	msg := new(dns.Msg)
	msg.SetQuestion(arpa, dns.TypePTR)

	client := new(dns.Client)
	server := net.JoinHostPort(cfg.Servers[0], cfg.Port)
	reply, _, err := client.ExchangeContext(ctx, msg, server)
	if err != nil {
		return nil, err
	}

	var names []string
	for _, rr := range reply.Answer {
		if ptr, ok := rr.(*dns.PTR); ok {
			names = append(names, ptr.Ptr)
		}
	}
	return names, nil
}

// NewWithLookup returns a Resolver with a caller-supplied reverse-DNS
// function, letting tests avoid touching the network.
func NewWithLookup(lookupAddr func(ctx context.Context, ip string) ([]string, error)) *Resolver {
	return &Resolver{lookupAddr: lookupAddr}
}

// Target resolves input into a registrable domain (eTLD+1), per spec
// §4.1: an IP is classified and, if globally routable, reverse-resolved
// to a hostname before recursing; anything else is run through
// public-suffix extraction directly.
func (r *Resolver) Target(ctx context.Context, input string) (string, error) {
	trimmed := strings.TrimSpace(input)

	if ip := net.ParseIP(trimmed); ip != nil {
		if !ip.IsGlobalUnicast() || ip.IsPrivate() || ip.IsLoopback() || isReservedTestNet(ip) {
			return "", werrors.NonRoutableIP(trimmed + " is not globally routable")
		}

		names, err := r.lookupAddr(ctx, trimmed)
		if err != nil || len(names) == 0 {
			return "", werrors.Network("reverse DNS lookup failed for "+trimmed, err)
		}

		hostname := strings.TrimSuffix(names[0], ".")
		return r.Target(ctx, hostname)
	}

	ascii, err := idna.Lookup.ToASCII(trimmed)
	if err != nil {
		ascii = trimmed
	}

	domain, err := publicsuffix.EffectiveTLDPlusOne(ascii)
	if err != nil {
		return "", werrors.ParseFailed("could not extract a registrable domain from "+trimmed, err)
	}
	return domain, nil
}

// isReservedTestNet rejects the documentation/test ranges RFC 5737 and
// RFC 3849 carve out, which IsGlobalUnicast alone does not exclude.
func isReservedTestNet(ip net.IP) bool {
	reserved := []string{
		"192.0.2.0/24",    // TEST-NET-1
		"198.51.100.0/24", // TEST-NET-2
		"203.0.113.0/24",  // TEST-NET-3
		"2001:db8::/32",   // documentation range
	}
	for _, cidr := range reserved {
		_, block, err := net.ParseCIDR(cidr)
		if err == nil && block.Contains(ip) {
			return true
		}
	}
	return false
}
