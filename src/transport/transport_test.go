package transport

import (
	"context"
	"net"
	"strings"
	"testing"
	"time"
)

// fakeServer starts a TCP listener on loopback that echoes the query
// line back prefixed with "got: ", so tests can assert on the exact
// bytes the client sent.
func fakeServer(t *testing.T) (addr string, stop func()) {
	t.Helper()
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			go func(c net.Conn) {
				defer c.Close()
				buf := make([]byte, 4096)
				n, _ := c.Read(buf)
				c.Write([]byte("got: " + string(buf[:n])))
			}(conn)
		}
	}()
	return ln.Addr().String(), func() { ln.Close() }
}

func TestQuerySendsMutatedLineAndReadsReply(t *testing.T) {
	addr, stop := fakeServer(t)
	defer stop()

	host, port, _ := net.SplitHostPort(addr)

	client := New()
	opts := Options{
		ResolveAddrs: func(ctx context.Context, h string) ([]net.IP, error) {
			return []net.IP{net.ParseIP(host)}, nil
		},
		Dial: (&net.Dialer{}).DialContext,
		Port: port,
	}

	reply, err := client.query(context.Background(), host, "example.com", time.Now().Add(2*time.Second), opts)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(reply, "got: example.com\r\n") {
		t.Errorf("expected echoed query, got %q", reply)
	}
}

func TestMutateQueryAppliesPerServerRules(t *testing.T) {
	cases := []struct {
		host, query string
		many        bool
		want        string
	}{
		{"whois.denic.de", "example.de", false, "-T dn,ace -C UTF-8 example.de"},
		{"whois.dk-hostmaster.dk", "example.dk", false, " --show-handles example.dk"},
		{"whois.jprs.jp", "example.jp", false, "example.jp/e"},
		{"foo.whois-servers.net", "example.com", true, "=example.com"},
		{"foo.whois-servers.net", "example.com", false, "example.com"},
		{"whois.verisign-grs.com", "example.com", false, "example.com"},
	}
	for _, c := range cases {
		got := mutateQuery(c.host, c.query, c.many)
		if got != c.want {
			t.Errorf("mutateQuery(%q,%q,%v) = %q, want %q", c.host, c.query, c.many, got, c.want)
		}
	}
}

func TestQueryIgnoreSocketErrorsReturnsSentinel(t *testing.T) {
	client := New()
	opts := Options{
		IgnoreSocketErrors: true,
		ResolveAddrs: func(ctx context.Context, h string) ([]net.IP, error) {
			return nil, nil
		},
	}

	reply, err := client.Query(context.Background(), "unreachable.invalid", "example.com", time.Now().Add(time.Second), opts)
	if err != nil {
		t.Fatalf("expected sentinel string, not error: %v", err)
	}
	if !strings.HasPrefix(reply, socketErrorPrefix) {
		t.Errorf("expected sentinel prefix, got %q", reply)
	}
}

func TestQueryPropagatesErrorWhenNotIgnoring(t *testing.T) {
	client := New()
	opts := Options{
		ResolveAddrs: func(ctx context.Context, h string) ([]net.IP, error) {
			return nil, nil
		},
	}

	_, err := client.Query(context.Background(), "unreachable.invalid", "example.com", time.Now().Add(time.Second), opts)
	if err == nil {
		t.Fatal("expected an error")
	}
}

func TestSortIPv6First(t *testing.T) {
	addrs := []net.IP{net.ParseIP("1.2.3.4"), net.ParseIP("::1"), net.ParseIP("5.6.7.8")}
	sortIPv6First(addrs)
	if addrs[0].To4() != nil {
		t.Errorf("expected an IPv6 address first, got %v", addrs[0])
	}
}
