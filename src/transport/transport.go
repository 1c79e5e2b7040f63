// Package transport implements spec.md §4.3: the raw WHOIS wire
// protocol over TCP/43, optionally via SOCKS5, with dual-stack address
// iteration and per-server query mutation. Grounded on
// apimgr-search's instant.queryWHOIS (dialer + deadline + read-to-EOF)
// generalized with golang.org/x/net/proxy for the SOCKS hop.
package transport

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"net"
	"os"
	"sort"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/net/proxy"

	"github.com/devl00p/async43/src/werrors"
)

// SourceCycle yields successive IPv6 source addresses to bind outgoing
// connections to, per spec §4.3's egress-rotation option. Next must be
// safe to call repeatedly; it returns ok=false when exhausted.
type SourceCycle interface {
	Next() (net.IP, bool)
}

// Options configures one Query call.
type Options struct {
	// PreferIPv6 sorts resolved addresses so IPv6 candidates are tried first.
	PreferIPv6 bool
	// ManyResults requests the "=" prefix mutation on *.whois-servers.net hosts.
	ManyResults bool
	// IgnoreSocketErrors turns connect/read failures into the sentinel
	// string described in spec §4.3 instead of a returned error.
	IgnoreSocketErrors bool
	// Sources optionally supplies IPv6 source addresses to rotate through.
	Sources SourceCycle
	// Dial overrides the raw dial function; tests inject a fake here to
	// avoid the network entirely.
	Dial func(ctx context.Context, network, address string) (net.Conn, error)
	// ResolveAddrs overrides hostname-to-address resolution.
	ResolveAddrs func(ctx context.Context, host string) ([]net.IP, error)
	// Port overrides the WHOIS port (default "43"); tests point this at
	// a loopback listener's ephemeral port.
	Port string
}

const socketErrorPrefix = "Socket not responding: "

// Client issues WHOIS queries against a single server per call.
type Client struct{}

// New returns a Client. It holds no state: every field that varies
// between calls lives on Options.
func New() *Client { return &Client{} }

// Query implements spec §4.3's query(host, queryString, deadline)
// operation: connect (optionally through SOCKS5), send the mutated
// query line, read to EOF, decode as UTF-8 with replacement.
func (c *Client) Query(ctx context.Context, host, queryString string, deadline time.Time, opts Options) (string, error) {
	reply, err := c.query(ctx, host, queryString, deadline, opts)
	if err != nil {
		if opts.IgnoreSocketErrors {
			return socketErrorPrefix + err.Error(), nil
		}
		return "", err
	}
	return reply, nil
}

func (c *Client) query(ctx context.Context, host, queryString string, deadline time.Time, opts Options) (string, error) {
	ctx, cancel := context.WithDeadline(ctx, deadline)
	defer cancel()

	conn, err := c.dial(ctx, host, opts)
	if err != nil {
		return "", werrors.Network("failed to connect to "+host, err)
	}
	defer conn.Close()

	conn.SetDeadline(deadline)

	line := mutateQuery(host, queryString, opts.ManyResults) + "\r\n"
	if _, err := conn.Write([]byte(line)); err != nil {
		return "", werrors.Network("failed to write query to "+host, err)
	}

	raw, err := io.ReadAll(bufio.NewReader(conn))
	if err != nil && len(raw) == 0 {
		return "", werrors.Network("failed to read reply from "+host, err)
	}

	return toValidUTF8(raw), nil
}

// dial picks the SOCKS5 path when the SOCKS environment variable is
// set (read fresh on every call, never cached, per spec §5), otherwise
// resolves host to every address family and tries each in turn.
func (c *Client) dial(ctx context.Context, host string, opts Options) (net.Conn, error) {
	if socksAddr := os.Getenv("SOCKS"); socksAddr != "" {
		return dialViaSOCKS(ctx, socksAddr, host)
	}

	dial := opts.Dial
	if dial == nil {
		dial = (&net.Dialer{}).DialContext
	}

	port := opts.Port
	if port == "" {
		port = "43"
	}

	addrs, err := c.resolveAddrs(ctx, host, opts)
	if err != nil {
		return nil, err
	}
	if len(addrs) == 0 {
		return nil, fmt.Errorf("no addresses found for %s", host)
	}

	if opts.PreferIPv6 {
		sortIPv6First(addrs)
	}

	var lastErr error
	for _, ip := range addrs {
		address := net.JoinHostPort(ip.String(), port)
		if ip.To4() == nil && opts.Sources != nil {
			if src, ok := opts.Sources.Next(); ok {
				conn, err := (&net.Dialer{LocalAddr: &net.TCPAddr{IP: src}}).DialContext(ctx, "tcp", address)
				if err == nil {
					return conn, nil
				}
				lastErr = err
				continue
			}
		}
		conn, err := dial(ctx, "tcp", address)
		if err == nil {
			return conn, nil
		}
		lastErr = err
	}
	return nil, lastErr
}

func (c *Client) resolveAddrs(ctx context.Context, host string, opts Options) ([]net.IP, error) {
	if opts.ResolveAddrs != nil {
		return opts.ResolveAddrs(ctx, host)
	}
	return net.DefaultResolver.LookupIP(ctx, "ip", host)
}

func sortIPv6First(addrs []net.IP) {
	sort.SliceStable(addrs, func(i, j int) bool {
		iv6 := addrs[i].To4() == nil
		jv6 := addrs[j].To4() == nil
		return iv6 && !jv6
	})
}

func dialViaSOCKS(ctx context.Context, socksAddr, host string) (net.Conn, error) {
	var auth *proxy.Auth
	addr := socksAddr
	if at := strings.LastIndex(socksAddr, "@"); at >= 0 {
		userinfo := socksAddr[:at]
		addr = socksAddr[at+1:]
		auth = &proxy.Auth{}
		if colon := strings.Index(userinfo, ":"); colon >= 0 {
			auth.User, auth.Password = userinfo[:colon], userinfo[colon+1:]
		} else {
			auth.User = userinfo
		}
	}

	dialer, err := proxy.SOCKS5("tcp", addr, auth, proxy.Direct)
	if err != nil {
		return nil, err
	}

	type contextDialer interface {
		DialContext(ctx context.Context, network, address string) (net.Conn, error)
	}
	if cd, ok := dialer.(contextDialer); ok {
		return cd.DialContext(ctx, "tcp", net.JoinHostPort(host, "43"))
	}
	return dialer.Dial("tcp", net.JoinHostPort(host, "43"))
}

// mutateQuery applies the per-server query rewrite rules from spec §4.3.
func mutateQuery(host, query string, manyResults bool) string {
	switch {
	case host == "whois.denic.de":
		return "-T dn,ace -C UTF-8 " + query
	case host == "whois.dk-hostmaster.dk":
		return " --show-handles " + query
	case strings.HasSuffix(host, ".jp"):
		return query + "/e"
	case manyResults && strings.HasSuffix(host, ".whois-servers.net"):
		return "=" + query
	default:
		return query
	}
}

func toValidUTF8(b []byte) string {
	if utf8.Valid(b) {
		return string(b)
	}
	return strings.ToValidUTF8(string(b), "�")
}
