package uri

import (
	"strconv"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/grammar"
)

// Port is a network port of an authority.
type Port uint16

// DecodePort decodes a port from the given input src (string or []byte).
// The input must be a non-empty string of decimal digits in range 0-65535.
func DecodePort[T ~string | ~[]byte](src T) (Port, error) {
	s := string(src)
	if len(s) == 0 {
		return 0, errtrace.Wrap(errorutil.NewWrapperError(ErrEncode, ErrEmptyInput))
	}
	for i := range len(s) {
		if !grammar.IsDigitChar(s[i]) {
			return 0, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidPort, "unexpected char %q at %d in %q", s[i], i, s))
		}
	}
	n, err := strconv.ParseUint(s, 10, 16)
	if err != nil {
		return 0, errtrace.Wrap(errorutil.NewWrapperError(ErrInvalidPort, err))
	}
	return Port(n), nil
}

// Encode returns the decimal representation of the port.
func (p Port) Encode() (string, error) {
	return strconv.FormatUint(uint64(p), 10), nil
}

// MarshalText implements [encoding.TextMarshaler].
func (p Port) MarshalText() ([]byte, error) {
	return strconv.AppendUint(nil, uint64(p), 10), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (p *Port) UnmarshalText(text []byte) error {
	v, err := DecodePort(text)
	if err != nil {
		*p = 0
		return errtrace.Wrap(err)
	}
	*p = v
	return nil
}
