package uri

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/grammar"
)

// Fragment is the decoded fragment identifier of a URI, without the leading "#".
type Fragment string

var (
	fragmentDecoder = grammar.Decoder{Allowed: grammar.FragmentChars, DecodePct: true}
	fragmentEncoder = grammar.Encoder{Allowed: grammar.FragmentChars, EncodePct: true}
)

// DecodeFragment decodes a fragment from the given input src (string or []byte).
func DecodeFragment[T ~string | ~[]byte](src T) (Fragment, error) {
	v, err := fragmentDecoder.Decode(string(src))
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return Fragment(v), nil
}

// Encode returns the escaped fragment.
func (f Fragment) Encode() (string, error) {
	return errtrace.Wrap2(fragmentEncoder.Encode(string(f)))
}

// MarshalText implements [encoding.TextMarshaler].
func (f Fragment) MarshalText() ([]byte, error) {
	v, err := f.Encode()
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return []byte(v), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (f *Fragment) UnmarshalText(text []byte) error {
	v, err := DecodeFragment(text)
	if err != nil {
		*f = ""
		return errtrace.Wrap(err)
	}
	*f = v
	return nil
}
