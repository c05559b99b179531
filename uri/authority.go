package uri

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/util"
)

// Authority is a container for optional user information, host and optional port.
type Authority struct {
	user    UserInfo
	host    Host
	port    Port
	hasPort bool
}

// NewAuthority returns an [Authority] containing the provided host, no user information and no port.
func NewAuthority(host Host) Authority { return Authority{host: host} }

// WithUserInfo returns a copy of the authority with the given user information.
// An empty value removes the user information.
func (a Authority) WithUserInfo(ui UserInfo) Authority {
	a.user = ui
	return a
}

// WithHost returns a copy of the authority with the given host.
func (a Authority) WithHost(host Host) Authority {
	a.host = host
	return a
}

// WithPort returns a copy of the authority with the given port.
func (a Authority) WithPort(port Port) Authority {
	a.port, a.hasPort = port, true
	return a
}

// WithoutPort returns a copy of the authority without a port.
func (a Authority) WithoutPort() Authority {
	a.port, a.hasPort = 0, false
	return a
}

// UserInfo returns the user information, in case it is set, and a bool flag indicating whether it is set.
func (a Authority) UserInfo() (UserInfo, bool) { return a.user, a.user != "" }

// Host returns the host. It is an empty reg-name unless set.
func (a Authority) Host() Host { return a.host }

// Port returns the port, in case it is set, and a bool flag indicating whether it is set.
func (a Authority) Port() (Port, bool) { return a.port, a.hasPort }

// IsZero reports whether the authority has no user information, an empty host and no port.
func (a Authority) IsZero() bool { return a.user == "" && a.host.IsZero() && !a.hasPort }

// DecodeAuthority decodes an authority from the given input src (string or []byte).
//
// The user information ends at the last "@". In the rest, the last ":" that is not
// inside an unclosed "[...]" separates the port from the host.
func DecodeAuthority[T ~string | ~[]byte](src T) (Authority, error) {
	var a Authority

	userinfo, hostport, hasUser := splitUserInfo(string(src))
	if hasUser {
		ui, err := DecodeUserInfo(userinfo)
		if err != nil {
			return Authority{}, errtrace.Wrap(err)
		}
		a.user = ui
	}

	host, port, hasPort := splitHostPort(hostport)
	h, err := DecodeHost(host)
	if err != nil {
		return Authority{}, errtrace.Wrap(err)
	}
	a.host = h

	if hasPort {
		p, err := DecodePort(port)
		if err != nil {
			return Authority{}, errtrace.Wrap(err)
		}
		a.port, a.hasPort = p, true
	}
	return a, nil
}

func splitUserInfo(s string) (userinfo, hostport string, ok bool) {
	i := strings.LastIndexByte(s, '@')
	if i < 0 {
		return "", s, false
	}
	return s[:i], s[i+1:], true
}

func splitHostPort(s string) (host, port string, ok bool) {
	i := strings.LastIndexByte(s, ':')
	if i < 0 {
		return s, "", false
	}
	// colons of an IPv6 literal belong to the host
	if open := strings.LastIndexByte(s[:i], '['); open >= 0 && strings.IndexByte(s[open:i], ']') < 0 {
		return s, "", false
	}
	return s[:i], s[i+1:], true
}

// Encode returns the escaped authority in form [userinfo "@"] host [":" port].
func (a Authority) Encode() (string, error) {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	if a.user != "" {
		ui, err := a.user.Encode()
		if err != nil {
			return "", errtrace.Wrap(err)
		}
		sb.WriteString(ui)
		sb.WriteByte('@')
	}

	h, err := a.host.Encode()
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	sb.WriteString(h)

	if a.hasPort {
		p, err := a.port.Encode()
		if err != nil {
			return "", errtrace.Wrap(err)
		}
		sb.WriteByte(':')
		sb.WriteString(p)
	}
	return sb.String(), nil
}

// Equal compares the authority with another for equality.
func (a Authority) Equal(val any) bool {
	var other Authority
	switch v := val.(type) {
	case Authority:
		other = v
	case *Authority:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return a.user == other.user &&
		a.host.Equal(other.host) &&
		a.port == other.port &&
		a.hasPort == other.hasPort
}

// MarshalText implements [encoding.TextMarshaler].
func (a Authority) MarshalText() ([]byte, error) {
	v, err := a.Encode()
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return []byte(v), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (a *Authority) UnmarshalText(text []byte) error {
	v, err := DecodeAuthority(text)
	if err != nil {
		*a = Authority{}
		return errtrace.Wrap(err)
	}
	*a = v
	return nil
}
