package uri

import (
	"io"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/ioutil"
	"github.com/ghettovoice/gouri/internal/util"
)

// URI is a decoded URI reference.
//
// All fields are optional: an empty [Scheme], a zero [RPart], an empty [Query]
// and an empty [Fragment] are absent and contribute nothing, not even their separator,
// to the encoded form.
type URI struct {
	Scheme   Scheme
	RPart    RPart
	Query    Query
	Fragment Fragment
}

// DecodeURI decodes a URI reference from the given input src (string or []byte).
//
//	u, err := uri.DecodeURI("https://example.com/a/b?x=1#top")
//
// The input is split into scheme, rpart, query and fragment in one left-to-right pass.
// Each segment is decoded as soon as it is closed, so the first error in input order is returned.
// An empty input decodes to the zero URI.
func DecodeURI[T ~string | ~[]byte](src T) (URI, error) {
	var u URI
	if err := splitURI(string(src), &u); err != nil {
		return URI{}, errtrace.Wrap(err)
	}
	return u, nil
}

// RenderTo writes the escaped URI to the provided writer.
// Nothing is written if any of the components can not be encoded.
func (u URI) RenderTo(w io.Writer) (num int, err error) {
	var scheme, rpart, query, frag string
	if u.Scheme != "" {
		if scheme, err = u.Scheme.Encode(); err != nil {
			return 0, errtrace.Wrap(err)
		}
	}
	if rpart, err = u.RPart.Encode(); err != nil {
		return 0, errtrace.Wrap(err)
	}
	if len(u.Query) > 0 {
		if query, err = u.Query.Encode(); err != nil {
			return 0, errtrace.Wrap(err)
		}
	}
	if u.Fragment != "" {
		if frag, err = u.Fragment.Encode(); err != nil {
			return 0, errtrace.Wrap(err)
		}
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	if scheme != "" {
		cw.WriteString(scheme)
		cw.WriteString(":")
	}
	cw.WriteString(rpart)
	if query != "" {
		cw.WriteString("?")
		cw.WriteString(query)
	}
	if frag != "" {
		cw.WriteString("#")
		cw.WriteString(frag)
	}
	return errtrace.Wrap2(cw.Result())
}

// Encode returns the escaped URI.
func (u URI) Encode() (string, error) {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	if _, err := u.RenderTo(sb); err != nil {
		return "", errtrace.Wrap(err)
	}
	return sb.String(), nil
}

// String returns the escaped URI or an empty string if it can not be encoded.
func (u URI) String() string {
	s, _ := u.Encode()
	return s
}

// IsZero reports whether all components of the URI are absent.
func (u URI) IsZero() bool {
	return u.Scheme == "" && u.RPart.IsZero() && len(u.Query) == 0 && u.Fragment == ""
}

// Equal compares the URI with another for equality.
// The scheme is compared case-insensitively.
func (u URI) Equal(val any) bool {
	var other URI
	switch v := val.(type) {
	case URI:
		other = v
	case *URI:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return u.Scheme.Equal(other.Scheme) &&
		u.RPart.Equal(other.RPart) &&
		(len(u.Query) == 0 && len(other.Query) == 0 || u.Query.Equal(other.Query)) &&
		u.Fragment == other.Fragment
}

// MarshalText implements [encoding.TextMarshaler].
func (u URI) MarshalText() ([]byte, error) {
	v, err := u.Encode()
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return []byte(v), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (u *URI) UnmarshalText(text []byte) error {
	v, err := DecodeURI(text)
	if err != nil {
		*u = URI{}
		return errtrace.Wrap(err)
	}
	*u = v
	return nil
}
