// Package whois implements spec.md §4.4: the recursive lookup driver
// that ties together target resolution, server selection, the wire
// transport, structure parsing, normalization, and post-validation
// into the one public entry point of this module. Grounded on
// async43/whois.py's NICClient.whois/whois_lookup control flow.
package whois

import (
	"context"
	"net"
	"regexp"
	"strings"
	"time"

	"github.com/devl00p/async43/src/config"
	"github.com/devl00p/async43/src/model"
	"github.com/devl00p/async43/src/normalize"
	"github.com/devl00p/async43/src/resolve"
	"github.com/devl00p/async43/src/selector"
	"github.com/devl00p/async43/src/transport"
	"github.com/devl00p/async43/src/validate"
	"github.com/devl00p/async43/src/werrors"
	"github.com/devl00p/async43/src/wlog"
)

// Recursion flags, named after async43/whois.py's NICClient.WHOIS_RECURSE
// and WHOIS_QUICK bits.
const (
	whoisRecurse = 0x01
	whoisQuick   = 0x02
)

const qnichostTail = ".whois-servers.net"

// manyResultsRetryMarker is the text NICClient.whois watches for to
// retry a query once with the "=" prefix.
const manyResultsRetryMarker = `with "=xxx"`

type lookupConfig struct {
	host       string
	country    string
	preferIPv6 bool
	quick      bool
	timeout    time.Duration

	ignoreSocketErrors bool
	sources            transport.SourceCycle
	logger             *wlog.Logger

	dial         func(ctx context.Context, network, address string) (net.Conn, error)
	resolveAddrs func(ctx context.Context, host string) ([]net.IP, error)
	port         string
}

// Option configures one Lookup call.
type Option func(*lookupConfig)

// WithHost pins the initial query to an explicit WHOIS host, bypassing
// the server selector entirely, per async43/whois.py's "-h" flag.
func WithHost(host string) Option {
	return func(c *lookupConfig) { c.host = host }
}

// WithCountry routes the initial query to "<country>.whois-servers.net",
// per async43/whois.py's "-c" flag.
func WithCountry(country string) Option {
	return func(c *lookupConfig) { c.country = country }
}

// WithIPv6Preference sorts resolved addresses IPv6-first at the
// transport layer.
func WithIPv6Preference(prefer bool) Option {
	return func(c *lookupConfig) { c.preferIPv6 = prefer }
}

// WithIPv6SourceCycle supplies the lazy egress-address rotation
// described in spec §5's "Shared resources" paragraph.
func WithIPv6SourceCycle(cycle transport.SourceCycle) Option {
	return func(c *lookupConfig) { c.sources = cycle }
}

// WithQuick disables referral-following (WHOIS_QUICK).
func WithQuick() Option {
	return func(c *lookupConfig) { c.quick = true }
}

// WithTimeout overrides the per-hop connect+read deadline.
func WithTimeout(d time.Duration) Option {
	return func(c *lookupConfig) { c.timeout = d }
}

// WithIgnoreSocketErrors controls whether a transport failure becomes
// the sentinel string (default) or a returned NetworkError.
func WithIgnoreSocketErrors(ignore bool) Option {
	return func(c *lookupConfig) { c.ignoreSocketErrors = ignore }
}

// WithLogger attaches a trace logger; nil (the default) keeps the
// driver silent.
func WithLogger(l *wlog.Logger) Option {
	return func(c *lookupConfig) { c.logger = l }
}

// WithDial overrides the transport's raw dial function. Tests use this
// to avoid opening a real socket.
func WithDial(dial func(ctx context.Context, network, address string) (net.Conn, error)) Option {
	return func(c *lookupConfig) { c.dial = dial }
}

// WithResolveAddrs overrides hostname-to-address resolution at the
// transport layer.
func WithResolveAddrs(resolveAddrs func(ctx context.Context, host string) ([]net.IP, error)) Option {
	return func(c *lookupConfig) { c.resolveAddrs = resolveAddrs }
}

// WithPort overrides the transport's WHOIS port; tests point this at a
// loopback listener instead of the real port 43.
func WithPort(port string) Option {
	return func(c *lookupConfig) { c.port = port }
}

func defaultConfig() lookupConfig {
	s := config.Defaults()
	return lookupConfig{
		preferIPv6:         s.PreferIPv6,
		quick:              s.QuickByDefault,
		timeout:            s.DefaultTimeout,
		ignoreSocketErrors: s.IgnoreSocketErrors,
		logger:             wlog.Nop(),
	}
}

// Driver bundles the collaborators a Lookup call threads through, each
// swappable so tests never touch a real socket or DNS resolver.
type Driver struct {
	resolver  *resolve.Resolver
	selector  *selector.Selector
	transport *transport.Client
}

// New returns a Driver backed by the real network.
func New() *Driver {
	d := &Driver{resolver: resolve.New(), transport: transport.New()}
	d.selector = selector.New(d.queryForSelector)
	return d
}

// NewWithCollaborators lets tests inject fakes for every network-facing
// collaborator at once.
func NewWithCollaborators(r *resolve.Resolver, t *transport.Client) *Driver {
	d := &Driver{resolver: r, transport: t}
	d.selector = selector.New(d.queryForSelector)
	return d
}

func (d *Driver) queryForSelector(ctx context.Context, host, query string) (string, error) {
	return d.transport.Query(ctx, host, query, time.Now().Add(10*time.Second), transport.Options{})
}

// Lookup resolves query to a registrable domain, selects and queries a
// WHOIS server, follows at most one referral hop, and returns the
// normalized and validated record.
func (d *Driver) Lookup(ctx context.Context, query string, opts ...Option) (*model.Record, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	target, err := d.resolver.Target(ctx, query)
	if err != nil {
		return nil, err
	}

	host := cfg.host
	flags := 0
	if cfg.quick {
		flags |= whoisQuick
	}

	switch {
	case cfg.country != "":
		host = cfg.country + qnichostTail
	case cfg.host != "":
		// explicit host: mirror NICClient.whois_lookup, which never sets
		// WHOIS_RECURSE on this path.
	default:
		if flags&whoisQuick == 0 {
			flags |= whoisRecurse
		}
		chosen, err := d.selector.Choose(ctx, target)
		if err != nil {
			return nil, err
		}
		if chosen == "" || chosen == "none" {
			return nil, werrors.ServerNotFound("no whois server found for " + target)
		}
		host = chosen
	}

	raw, err := d.whois(ctx, target, host, flags, false, cfg)
	if err != nil {
		return nil, err
	}

	rec := normalize.Normalize(target, raw)
	validate.CoerceDates(rec)
	if err := validate.Validate(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// whois issues one query, applies the "=xxx" many-results retry, and
// follows at most one referral hop, per async43/whois.py's
// NICClient.whois.
func (d *Driver) whois(ctx context.Context, query, host string, flags int, manyResults bool, cfg lookupConfig) (string, error) {
	deadline := time.Now().Add(cfg.timeout)
	topts := transport.Options{
		PreferIPv6:         cfg.preferIPv6,
		ManyResults:        manyResults,
		IgnoreSocketErrors: cfg.ignoreSocketErrors,
		Sources:            cfg.sources,
		Dial:               cfg.dial,
		ResolveAddrs:       cfg.resolveAddrs,
		Port:               cfg.port,
	}

	reply, err := d.transport.Query(ctx, host, query, deadline, topts)
	if err != nil {
		return "", err
	}

	if !manyResults && strings.Contains(reply, manyResultsRetryMarker) {
		return d.whois(ctx, query, host, flags, true, cfg)
	}

	if flags&whoisRecurse != 0 {
		if referralHost := findReferral(reply, host, query); referralHost != "" {
			cfg.logger.Debugf("following referral", "from_host", host, "to_host", referralHost)
			nested, err := d.whois(ctx, query, referralHost, 0, false, cfg)
			if err != nil {
				// referral failures are non-fatal: the first reply is
				// kept and the inner error is dropped, per spec §7.
				cfg.logger.Warnf("referral hop failed, keeping partial data", "host", referralHost, "error", err)
				return reply, nil
			}
			reply += nested
		}
	}

	return reply, nil
}

// Lookup is a package-level convenience that runs a single call against
// a freshly-built Driver, for callers that don't need to reuse one
// across many lookups.
func Lookup(ctx context.Context, query string, opts ...Option) (*model.Record, error) {
	return New().Lookup(ctx, query, opts...)
}

// referralPattern matches the "Domain Name: <query> ... Whois Server:
// <host>" shape spec §4.4 describes; the query is interpolated so the
// match only fires for the domain actually being looked up.
func referralPattern(query string) *regexp.Regexp {
	return regexp.MustCompile(`(?is)Domain Name:\s*` + regexp.QuoteMeta(query) + `\s*.*?Whois Server:\s*(\S+)`)
}

// findReferral extracts the next hop's host from reply, or "" if none
// applies, per async43/whois.py's NICClient.findwhois_server.
func findReferral(reply, host, query string) string {
	if m := referralPattern(query).FindStringSubmatch(reply); m != nil {
		candidate := strings.TrimRight(m[1], ".")
		if !strings.Contains(candidate, "/") {
			return candidate
		}
		return ""
	}

	if host == selector.ARINHost {
		for _, candidate := range selector.ARINReferralHosts {
			if strings.Contains(reply, candidate) {
				return candidate
			}
		}
	}

	return ""
}
