// Package grammar implements RFC 3986 character classes, the percent codec
// and ABNF rules shared by the URI components.
package grammar

//go:generate errtrace -w .

import (
	"net/netip"
	"strings"

	"github.com/ghettovoice/abnf"
)

func init() {
	abnf.EnableNodeCache(1024)
}

type Error string

func (e Error) Error() string { return string(e) }

func (Error) Grammar() bool { return true }

const (
	// ErrEncode reports a structural or policy violation found while encoding
	// or while validating input in either direction.
	ErrEncode Error = "encode error"
	// ErrDecode reports a structural violation found while decoding.
	ErrDecode Error = "decode error"
	// ErrPath reports a malformed query pair.
	ErrPath Error = "path error"
	// ErrInvalidUTF8 reports decoded bytes that are not valid UTF-8.
	ErrInvalidUTF8 Error = "invalid UTF-8"
	// ErrInvalidPort reports a port that is not a 16-bit unsigned decimal.
	ErrInvalidPort Error = "invalid port"
	// ErrUnknown is reserved.
	ErrUnknown Error = "unknown error"

	ErrEmptyInput Error = "empty input"
)

// IsScheme checks scheme rule: ALPHA *( ALPHA / DIGIT / "+" / "-" / "." ).
func IsScheme[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 || !IsAlphaChar(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		if !SchemeChars.Contains(s[i]) {
			return false
		}
	}
	return true
}

// IsIPv6 reports whether s is a textual IPv6 address without a zone.
func IsIPv6[T ~string | ~[]byte](s T) bool {
	// netip accepts "%zone" suffixes, RFC 3986 IP-literal does not.
	if len(s) == 0 || strings.IndexByte(string(s), '%') >= 0 {
		return false
	}
	addr, err := netip.ParseAddr(string(s))
	return err == nil && addr.Is6()
}

// IsIPv4 reports whether s is a dotted-quad IPv4 address.
func IsIPv4[T ~string | ~[]byte](s T) bool {
	_, ok := ParseIPv4(s)
	return ok
}

// ParseIPv4 parses a dotted-quad IPv4 address.
func ParseIPv4[T ~string | ~[]byte](s T) (netip.Addr, bool) {
	if len(s) == 0 {
		return netip.Addr{}, false
	}
	addr, err := netip.ParseAddr(string(s))
	if err != nil || !addr.Is4() {
		return netip.Addr{}, false
	}
	return addr, true
}

// IsIPvFuture checks IPvFuture rule: "v" 1*HEXDIG "." 1*( unreserved / sub-delims / ":" ).
func IsIPvFuture[T ~string | ~[]byte](s T) bool {
	if len(s) == 0 {
		return false
	}

	ns := abnf.NewNodes()
	defer ns.Free()

	if err := ipvFuture([]byte(s), 0, ns); err != nil {
		return false
	}
	return ns.Best().Len() == len(s)
}

// IsIPLiteralText reports whether s is valid inside IP-literal brackets.
func IsIPLiteralText[T ~string | ~[]byte](s T) bool {
	return IsIPv6(s) || IsIPvFuture(s)
}
