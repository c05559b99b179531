package grammar

import (
	"unicode/utf8"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/util"
)

// Decoder converts percent-escaped component text into raw text.
//
// Bytes from Allowed are copied as is. When DecodePct is set, a "% HEXDIG HEXDIG" triplet
// (uppercase hex only) is replaced by the byte it encodes. Decoded bytes are accumulated
// in one buffer and validated as UTF-8 at the end, so a multi-byte character escaped
// one byte per triplet is reassembled correctly.
type Decoder struct {
	Allowed    CharSet
	AllowEmpty bool
	DecodePct  bool
}

// Decode decodes s.
func (d Decoder) Decode(s string) (string, error) {
	if len(s) == 0 {
		if !d.AllowEmpty {
			return "", errtrace.Wrap(newEmptyInputErr())
		}
		return "", nil
	}

	buf := util.GetBytesBuffer()
	defer util.FreeBytesBuffer(buf)
	buf.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case d.Allowed.Contains(c):
			buf.WriteByte(c)
		case c == '%' && d.DecodePct:
			b, err := unhexTriplet(s, i)
			if err != nil {
				return "", errtrace.Wrap(errorutil.NewWrapperError(ErrDecode, err))
			}
			buf.WriteByte(b)
			i += 2
		default:
			return "", errtrace.Wrap(errorutil.NewWrapperError(ErrDecode, "unexpected char %q at %d in %q", c, i, s))
		}
	}
	if !utf8.Valid(buf.Bytes()) {
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidUTF8, "decoded %q", s))
	}
	return buf.String(), nil
}

// Encoder converts raw component text into its percent-escaped form.
//
// Bytes from Allowed are copied as is. A '%' is treated as the start of an already
// escaped triplet and must be followed by two uppercase hex digits, which makes
// encoding idempotent. Any other byte is escaped as "%XX" when EncodePct is set,
// or rejected otherwise.
type Encoder struct {
	Allowed    CharSet
	AllowEmpty bool
	EncodePct  bool
}

// Encode encodes s.
func (e Encoder) Encode(s string) (string, error) {
	if len(s) == 0 {
		if !e.AllowEmpty {
			return "", errtrace.Wrap(newEmptyInputErr())
		}
		return "", nil
	}

	buf := util.GetBytesBuffer()
	defer util.FreeBytesBuffer(buf)
	buf.Grow(len(s))
	for i := 0; i < len(s); i++ {
		switch c := s[i]; {
		case e.Allowed.Contains(c):
			buf.WriteByte(c)
		case c == '%':
			if _, err := unhexTriplet(s, i); err != nil {
				return "", errtrace.Wrap(errorutil.NewWrapperError(ErrEncode, err))
			}
			buf.WriteString(s[i : i+3])
			i += 2
		case e.EncodePct:
			buf.WriteByte('%')
			buf.WriteByte(upperhex[c>>4])
			buf.WriteByte(upperhex[c&15])
		default:
			return "", errtrace.Wrap(errorutil.NewWrapperError(ErrEncode, "unexpected char %q at %d in %q", c, i, s))
		}
	}
	return buf.String(), nil
}

func newEmptyInputErr() error {
	return errorutil.NewWrapperError(ErrEncode, ErrEmptyInput) //errtrace:skip
}

const upperhex = "0123456789ABCDEF"

// unhexTriplet parses the "% HEXDIG HEXDIG" triplet starting at s[i].
func unhexTriplet(s string, i int) (byte, error) {
	if i+2 >= len(s) {
		return 0, errtrace.Wrap(errorutil.Errorf("unexpected end of percent escape at %d in %q", i, s))
	}
	if !ishex(s[i+1]) || !ishex(s[i+2]) {
		return 0, errtrace.Wrap(errorutil.Errorf("non-hex digit in percent escape %q at %d", s[i:i+3], i))
	}
	return unhex(s[i+1])<<4 | unhex(s[i+2]), nil
}

// ishex accepts uppercase hex digits only, lowercase escapes are rejected rather than normalized.
func ishex(c byte) bool {
	return '0' <= c && c <= '9' || 'A' <= c && c <= 'F'
}

func unhex(c byte) byte {
	switch {
	case '0' <= c && c <= '9':
		return c - '0'
	case 'A' <= c && c <= 'F':
		return c - 'A' + 10
	}
	return 0
}
