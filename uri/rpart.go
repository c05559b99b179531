package uri

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/errorutil"
)

// RPart is the part of a URI between the scheme and the query:
// an optional authority introduced by "//" followed by a path.
type RPart struct {
	auth    Authority
	hasAuth bool
	path    Path
}

// NewRPart returns an [RPart] containing the provided path and no authority.
func NewRPart(path Path) RPart { return RPart{path: path} }

// WithAuthority returns a copy of the rpart with the given authority.
func (r RPart) WithAuthority(auth Authority) RPart {
	r.auth, r.hasAuth = auth, true
	return r
}

// WithoutAuthority returns a copy of the rpart without an authority.
func (r RPart) WithoutAuthority() RPart {
	r.auth, r.hasAuth = Authority{}, false
	return r
}

// WithPath returns a copy of the rpart with the given path.
func (r RPart) WithPath(path Path) RPart {
	r.path = path
	return r
}

// Authority returns the authority, in case it is set, and a bool flag indicating whether it is set.
// An authority may be present and empty, as in "file:///etc/hosts".
func (r RPart) Authority() (Authority, bool) { return r.auth, r.hasAuth }

// Path returns the path.
func (r RPart) Path() Path { return r.path }

// IsZero reports whether the rpart has no authority and an empty path.
func (r RPart) IsZero() bool { return !r.hasAuth && r.path == "" }

// DecodeRPart decodes an rpart from the given input src (string or []byte).
// If the input starts with "//", everything up to the next "/" is the authority,
// the rest including that "/" is the path.
func DecodeRPart[T ~string | ~[]byte](src T) (RPart, error) {
	var r RPart

	s := string(src)
	if rest, ok := strings.CutPrefix(s, "//"); ok {
		auth := rest
		s = ""
		if i := strings.IndexByte(rest, '/'); i >= 0 {
			auth, s = rest[:i], rest[i:]
		}
		a, err := DecodeAuthority(auth)
		if err != nil {
			return RPart{}, errtrace.Wrap(err)
		}
		r.auth, r.hasAuth = a, true
	}

	p, err := DecodePath(s)
	if err != nil {
		return RPart{}, errtrace.Wrap(err)
	}
	r.path = p
	return r, nil
}

// Encode returns the escaped rpart.
// A path following an authority must be empty or start with "/".
func (r RPart) Encode() (string, error) {
	p, err := r.path.Encode()
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	if !r.hasAuth {
		return p, nil
	}
	if p != "" && p[0] != '/' {
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrEncode, "path %q after authority must start with \"/\"", r.path))
	}
	a, err := r.auth.Encode()
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return "//" + a + p, nil
}

// Equal compares the rpart with another for equality.
func (r RPart) Equal(val any) bool {
	var other RPart
	switch v := val.(type) {
	case RPart:
		other = v
	case *RPart:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return r.hasAuth == other.hasAuth && r.auth.Equal(other.auth) && r.path == other.path
}

// MarshalText implements [encoding.TextMarshaler].
func (r RPart) MarshalText() ([]byte, error) {
	v, err := r.Encode()
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return []byte(v), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (r *RPart) UnmarshalText(text []byte) error {
	v, err := DecodeRPart(text)
	if err != nil {
		*r = RPart{}
		return errtrace.Wrap(err)
	}
	*r = v
	return nil
}
