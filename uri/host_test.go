package uri_test

import (
	"net/netip"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/gouri/uri"
)

func TestDecodeHost(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name     string
		in       string
		want     uri.Host
		wantKind uri.HostKind
		wantErr  error
	}{
		{"empty", "", uri.RegName(""), uri.HostRegName, nil},
		{"ipv6", "[fe03::0001]", uri.IPLiteral("fe03::0001"), uri.HostIPLiteral, nil},
		{"ipv6 loopback", "[::1]", uri.IPLiteral("::1"), uri.HostIPLiteral, nil},
		{"ipv6 with embedded ipv4", "[::ffff:10.0.0.1]", uri.IPLiteral("::ffff:10.0.0.1"), uri.HostIPLiteral, nil},
		{"ipvfuture", "[v1.fe:80]", uri.IPLiteral("v1.fe:80"), uri.HostIPLiteral, nil},
		{"ipv6 with zone", "[fe80::1%25eth0]", uri.Host{}, uri.HostRegName, uri.ErrEncode},
		{"ipvfuture without payload", "[v1.]", uri.Host{}, uri.HostRegName, uri.ErrEncode},
		{"bad literal", "[www.example.com]", uri.Host{}, uri.HostRegName, uri.ErrEncode},
		{"unclosed literal", "[::1", uri.Host{}, uri.HostRegName, uri.ErrDecode},
		{"ipv4", "192.168.1.2", uri.IPv4(192, 168, 1, 2), uri.HostIPv4, nil},
		{"ipv4 out of range", "256.1.1.1", uri.RegName("256.1.1.1"), uri.HostRegName, nil},
		{"ipv4 too short", "1.2.3", uri.RegName("1.2.3"), uri.HostRegName, nil},
		{"reg-name", "www.baidu.com", uri.RegName("www.baidu.com"), uri.HostRegName, nil},
		{"escaped reg-name", "www.%E4%BB%A3.com", uri.RegName("www.代.com"), uri.HostRegName, nil},
		{"lowercase hex", "www.%e4%bb%a3.com", uri.Host{}, uri.HostRegName, uri.ErrDecode},
		{"raw colon", "a:b", uri.Host{}, uri.HostRegName, uri.ErrDecode},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := uri.DecodeHost(c.in)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("uri.DecodeHost(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("uri.DecodeHost(%q) = %v, want %v\ndiff (-got +want):\n%v", c.in, got, c.want, diff)
			}
			if got.Kind() != c.wantKind {
				t.Errorf("uri.DecodeHost(%q).Kind() = %v, want %v", c.in, got.Kind(), c.wantKind)
			}
		})
	}
}

func TestHost_Encode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      uri.Host
		want    string
		wantErr error
	}{
		{"zero", uri.Host{}, "", nil},
		{"ipv6", uri.IPLiteral("fe03::0001"), "[fe03::0001]", nil},
		{"ipv6 bracketed", uri.IPLiteral("[::1]"), "[::1]", nil},
		{"ipvfuture", uri.IPLiteral("v7.a!b"), "[v7.a!b]", nil},
		{"bad literal", uri.IPLiteral("example.com"), "", uri.ErrEncode},
		{"ipv4", uri.IPv4(192, 168, 1, 2), "192.168.1.2", nil},
		{"ipv4 mapped", uri.IPv4Addr(netip.MustParseAddr("::ffff:10.0.0.1")), "10.0.0.1", nil},
		{"ipv4 from ipv6", uri.IPv4Addr(netip.MustParseAddr("::1")), "", uri.ErrEncode},
		{"reg-name", uri.RegName("www.baidu.com"), "www.baidu.com", nil},
		{"unicode reg-name", uri.RegName("www.代.com"), "www.%E4%BB%A3.com", nil},
		{"reg-name with space", uri.RegName("my host"), "my%20host", nil},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := c.in.Encode()
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("host.Encode() error = %v, want %v\ndiff (-got +want):\n%v", err, c.wantErr, diff)
			}
			if got != c.want {
				t.Errorf("host.Encode() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestHost_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, in := range []string{
		"[fe03::0001]",
		"[v1.fe:80]",
		"192.168.1.2",
		"www.%E4%BB%A3.com",
		"a!$&'()*+,;=b",
		"",
	} {
		h, err := uri.DecodeHost(in)
		if err != nil {
			t.Fatalf("uri.DecodeHost(%q) error = %v, want nil", in, err)
		}
		got, err := h.Encode()
		if err != nil {
			t.Fatalf("uri.DecodeHost(%q).Encode() error = %v, want nil", in, err)
		}
		if got != in {
			t.Errorf("uri.DecodeHost(%q).Encode() = %q, want %q", in, got, in)
		}
	}
}

func TestHost_Addr(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in     uri.Host
		want   netip.Addr
		wantOK bool
	}{
		{uri.IPv4(10, 0, 0, 1), netip.MustParseAddr("10.0.0.1"), true},
		{uri.IPLiteral("fe03::0001"), netip.MustParseAddr("fe03::1"), true},
		{uri.IPLiteral("v1.fe:80"), netip.Addr{}, false},
		{uri.RegName("localhost"), netip.Addr{}, false},
	}

	for _, c := range cases {
		got, ok := c.in.Addr()
		if got != c.want || ok != c.wantOK {
			t.Errorf("uri.Host(%v).Addr() = (%v, %v), want (%v, %v)", c.in, got, ok, c.want, c.wantOK)
		}
	}
}

func TestHost_DomainName(t *testing.T) {
	t.Parallel()

	cases := []struct {
		in         uri.Host
		wantDomain bool
		wantLabels int
	}{
		{uri.RegName("www.example.com"), true, 3},
		{uri.RegName("localhost"), true, 1},
		{uri.RegName("a..b"), false, 0},
		{uri.RegName(""), false, 0},
		{uri.IPv4(127, 0, 0, 1), false, 0},
		{uri.IPLiteral("::1"), false, 0},
	}

	for _, c := range cases {
		if got := c.in.IsDomainName(); got != c.wantDomain {
			t.Errorf("uri.Host(%v).IsDomainName() = %v, want %v", c.in, got, c.wantDomain)
		}
		if c.wantDomain {
			if got := c.in.Labels(); got != c.wantLabels {
				t.Errorf("uri.Host(%v).Labels() = %d, want %d", c.in, got, c.wantLabels)
			}
		}
	}
}

func TestHost_Equal(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		h    uri.Host
		val  any
		want bool
	}{
		{"reg-name case", uri.RegName("Example.COM"), uri.RegName("example.com"), true},
		{"reg-name pointer", uri.RegName("a"), ptr(uri.RegName("a")), true},
		{"ipv4", uri.IPv4(1, 2, 3, 4), uri.IPv4Addr(netip.MustParseAddr("1.2.3.4")), true},
		{"kind mismatch", uri.RegName("1.2.3.4"), uri.IPv4(1, 2, 3, 4), false},
		{"literal", uri.IPLiteral("::1"), uri.IPLiteral("[::1]"), true},
		{"nil pointer", uri.RegName("a"), (*uri.Host)(nil), false},
		{"other type", uri.RegName("a"), "a", false},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			if got := c.h.Equal(c.val); got != c.want {
				t.Errorf("host.Equal(%v) = %v, want %v", c.val, got, c.want)
			}
		})
	}
}

func ptr[T any](v T) *T { return &v }
