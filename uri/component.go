package uri

//go:generate go tool errtrace -w .

import (
	"encoding"

	"braces.dev/errtrace"
)

// Component is implemented by every URI component: [Scheme], [UserInfo], [Host], [Port],
// [Authority], [RPart], [Path], [Query], [Fragment] and [URI].
//
// Encode returns the canonical escaped form of the component.
// Decoding is provided by the DecodeXXX functions and by UnmarshalText on the pointer types,
// see [Decode] for a generic entry point.
type Component interface {
	Encode() (string, error)
	encoding.TextMarshaler
}

// Decode decodes s into a component of type T.
//
//	h, err := uri.Decode[uri.Host]("[::1]")
func Decode[T any, PT interface {
	*T
	encoding.TextUnmarshaler
}](s string) (T, error) {
	var v T
	if err := PT(&v).UnmarshalText([]byte(s)); err != nil {
		var zero T
		return zero, errtrace.Wrap(err)
	}
	return v, nil
}

var (
	_ Component = Scheme("")
	_ Component = UserInfo("")
	_ Component = Host{}
	_ Component = Port(0)
	_ Component = Authority{}
	_ Component = RPart{}
	_ Component = Path("")
	_ Component = Query(nil)
	_ Component = Fragment("")
	_ Component = URI{}
)
