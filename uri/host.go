package uri

import (
	"fmt"
	"net/netip"
	"strings"

	"braces.dev/errtrace"
	"github.com/miekg/dns"

	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/grammar"
)

// HostKind identifies the active variant of a [Host].
type HostKind uint8

const (
	// HostRegName is a (possibly empty) registered name, e.g. "www.example.com".
	HostRegName HostKind = iota
	// HostIPv4 is a dotted-quad IPv4 address.
	HostIPv4
	// HostIPLiteral is a bracketed IPv6 address or IPvFuture literal.
	HostIPLiteral
)

func (k HostKind) String() string {
	switch k {
	case HostRegName:
		return "reg-name"
	case HostIPv4:
		return "IPv4address"
	case HostIPLiteral:
		return "IP-literal"
	default:
		return fmt.Sprintf("HostKind(%d)", uint8(k))
	}
}

// Host is the host subcomponent of an authority.
// Exactly one of the variants described by [HostKind] is active.
// The zero value is an empty reg-name, which stands for an elided host.
type Host struct {
	kind HostKind
	text string     // reg-name or IP-literal text
	ip   netip.Addr // IPv4 address
}

// RegName returns a reg-name host. The name is stored decoded.
func RegName(name string) Host { return Host{kind: HostRegName, text: name} }

// IPLiteral returns an IP-literal host. Surrounding brackets are optional and stripped.
func IPLiteral(lit string) Host {
	if len(lit) >= 2 && lit[0] == '[' && lit[len(lit)-1] == ']' {
		lit = lit[1 : len(lit)-1]
	}
	return Host{kind: HostIPLiteral, text: lit}
}

// IPv4 returns an IPv4 address host built from four octets.
func IPv4(a, b, c, d byte) Host {
	return Host{kind: HostIPv4, ip: netip.AddrFrom4([4]byte{a, b, c, d})}
}

// IPv4Addr returns an IPv4 address host.
// IPv4-mapped IPv6 addresses are unmapped.
func IPv4Addr(addr netip.Addr) Host { return Host{kind: HostIPv4, ip: addr.Unmap()} }

// Kind returns the active variant.
func (h Host) Kind() HostKind { return h.kind }

// Name returns the decoded reg-name, the IP-literal text without brackets
// or the dotted-quad form of the IPv4 address.
func (h Host) Name() string {
	if h.kind == HostIPv4 {
		if !h.ip.IsValid() {
			return ""
		}
		return h.ip.String()
	}
	return h.text
}

// Addr returns the IP address of IPv4 hosts and of IP-literal hosts holding an IPv6 address.
func (h Host) Addr() (netip.Addr, bool) {
	switch h.kind {
	case HostIPv4:
		return h.ip, h.ip.Is4()
	case HostIPLiteral:
		if grammar.IsIPv6(h.text) {
			addr, err := netip.ParseAddr(h.text)
			return addr, err == nil
		}
	}
	return netip.Addr{}, false
}

// IsZero reports whether the host is an empty reg-name.
func (h Host) IsZero() bool { return h.kind == HostRegName && h.text == "" }

// IsDomainName reports whether the host is a reg-name that is also a syntactically valid DNS name.
// It is informational only, decoding never rejects a reg-name for not being a domain name.
func (h Host) IsDomainName() bool {
	if h.kind != HostRegName || h.text == "" {
		return false
	}
	_, ok := dns.IsDomainName(h.text)
	return ok
}

// Labels returns the number of DNS labels of a reg-name host, or 0 for other hosts.
func (h Host) Labels() int {
	if h.kind != HostRegName || h.text == "" {
		return 0
	}
	return dns.CountLabel(dns.Fqdn(h.text))
}

var (
	regNameDecoder = grammar.Decoder{Allowed: grammar.RegNameChars, AllowEmpty: true, DecodePct: true}
	regNameEncoder = grammar.Encoder{Allowed: grammar.RegNameChars, AllowEmpty: true, EncodePct: true}
)

// DecodeHost decodes a host from the given input src (string or []byte).
//
// The variant is chosen in order: a closed bracketed form must be an IPv6 address or an
// IPvFuture literal; a dotted quad is an IPv4 address; anything else is a percent-decoded reg-name.
func DecodeHost[T ~string | ~[]byte](src T) (Host, error) {
	s := string(src)
	if len(s) > 2 && s[0] == '[' && s[len(s)-1] == ']' {
		lit := s[1 : len(s)-1]
		if !grammar.IsIPLiteralText(lit) {
			return Host{}, errtrace.Wrap(errorutil.NewWrapperError(ErrEncode, "invalid IP-literal %q", s))
		}
		return Host{kind: HostIPLiteral, text: lit}, nil
	}
	if addr, ok := grammar.ParseIPv4(s); ok {
		return Host{kind: HostIPv4, ip: addr}, nil
	}
	name, err := regNameDecoder.Decode(s)
	if err != nil {
		return Host{}, errtrace.Wrap(errorutil.NewWrapperError(ErrEncode, fmt.Errorf("invalid reg-name %q: %w", s, err)))
	}
	return Host{kind: HostRegName, text: name}, nil
}

// Encode returns the escaped host. IP-literal hosts are re-validated and enclosed in brackets.
func (h Host) Encode() (string, error) {
	switch h.kind {
	case HostIPLiteral:
		if !grammar.IsIPLiteralText(h.text) {
			return "", errtrace.Wrap(errorutil.NewWrapperError(ErrEncode, "invalid IP-literal %q", h.text))
		}
		return "[" + h.text + "]", nil
	case HostIPv4:
		if !h.ip.Is4() {
			return "", errtrace.Wrap(errorutil.NewWrapperError(ErrEncode, "invalid IPv4 address %q", h.ip))
		}
		return h.ip.String(), nil
	case HostRegName:
		return errtrace.Wrap2(regNameEncoder.Encode(h.text))
	default:
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrEncode, "unexpected host kind %s", h.kind))
	}
}

// String returns a human readable form of the host: decoded reg-name,
// dotted-quad IPv4 address or bracketed IP-literal.
func (h Host) String() string {
	if h.kind == HostIPLiteral {
		return "[" + h.text + "]"
	}
	return h.Name()
}

// Equal compares the host with another for equality.
// Reg-names are compared case-insensitively.
func (h Host) Equal(val any) bool {
	var other Host
	switch v := val.(type) {
	case Host:
		other = v
	case *Host:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}

	if h.kind != other.kind {
		return false
	}
	switch h.kind {
	case HostIPv4:
		return h.ip == other.ip
	case HostRegName:
		return strings.EqualFold(h.text, other.text)
	default:
		return h.text == other.text
	}
}

// MarshalText implements [encoding.TextMarshaler].
func (h Host) MarshalText() ([]byte, error) {
	v, err := h.Encode()
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return []byte(v), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (h *Host) UnmarshalText(text []byte) error {
	v, err := DecodeHost(text)
	if err != nil {
		*h = Host{}
		return errtrace.Wrap(err)
	}
	*h = v
	return nil
}
