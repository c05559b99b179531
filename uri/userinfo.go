package uri

import (
	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/grammar"
)

// UserInfo is the opaque user information subcomponent of an authority, e.g. "root:passwd".
// It holds decoded text; no username/password structure is imposed.
type UserInfo string

var (
	userInfoDecoder = grammar.Decoder{Allowed: grammar.UserInfoChars, DecodePct: true}
	userInfoEncoder = grammar.Encoder{Allowed: grammar.UserInfoChars, EncodePct: true}
)

// DecodeUserInfo decodes user information from the given input src (string or []byte).
func DecodeUserInfo[T ~string | ~[]byte](src T) (UserInfo, error) {
	v, err := userInfoDecoder.Decode(string(src))
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return UserInfo(v), nil
}

// Encode returns the escaped user information.
func (ui UserInfo) Encode() (string, error) {
	return errtrace.Wrap2(userInfoEncoder.Encode(string(ui)))
}

// MarshalText implements [encoding.TextMarshaler].
func (ui UserInfo) MarshalText() ([]byte, error) {
	v, err := ui.Encode()
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return []byte(v), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (ui *UserInfo) UnmarshalText(text []byte) error {
	v, err := DecodeUserInfo(text)
	if err != nil {
		*ui = ""
		return errtrace.Wrap(err)
	}
	*ui = v
	return nil
}
