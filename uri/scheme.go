package uri

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/grammar"
)

// Scheme is a URI scheme, e.g. "https".
// A valid scheme starts with an ASCII letter followed by letters, digits, "+", "-" or ".".
// Schemes are never percent-escaped.
type Scheme string

var (
	schemeDecoder = grammar.Decoder{Allowed: grammar.SchemeChars}
	schemeEncoder = grammar.Encoder{Allowed: grammar.SchemeChars}
)

// DecodeScheme decodes a scheme from the given input src (string or []byte).
func DecodeScheme[T ~string | ~[]byte](src T) (Scheme, error) {
	s := string(src)
	if err := checkSchemeStart(s); err != nil {
		return "", errtrace.Wrap(err)
	}
	v, err := schemeDecoder.Decode(s)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return Scheme(v), nil
}

// Encode returns the scheme text after validating it.
func (s Scheme) Encode() (string, error) {
	if err := checkSchemeStart(string(s)); err != nil {
		return "", errtrace.Wrap(err)
	}
	return errtrace.Wrap2(schemeEncoder.Encode(string(s)))
}

func checkSchemeStart(s string) error {
	// empty input is reported by the codec
	if len(s) > 0 && !grammar.IsAlphaChar(s[0]) {
		return errorutil.NewWrapperError(ErrEncode, "scheme %q must start with a letter", s) //errtrace:skip
	}
	return nil
}

// IsValid reports whether the scheme is non-empty and syntactically valid.
func (s Scheme) IsValid() bool { return grammar.IsScheme(s) }

// Equal compares the scheme with another case-insensitively.
func (s Scheme) Equal(val any) bool {
	var other Scheme
	switch v := val.(type) {
	case Scheme:
		other = v
	case *Scheme:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return strings.EqualFold(string(s), string(other))
}

// MarshalText implements [encoding.TextMarshaler].
func (s Scheme) MarshalText() ([]byte, error) {
	v, err := s.Encode()
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return []byte(v), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (s *Scheme) UnmarshalText(text []byte) error {
	v, err := DecodeScheme(text)
	if err != nil {
		*s = ""
		return errtrace.Wrap(err)
	}
	*s = v
	return nil
}
