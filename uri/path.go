package uri

import (
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/grammar"
	"github.com/ghettovoice/gouri/internal/util"
)

// Path is the decoded path of a URI.
// It is escaped segment by segment, so the number and order of "/"-separated segments,
// including empty ones, are preserved.
type Path string

var (
	pathSegmentDecoder = grammar.Decoder{Allowed: grammar.PathSegmentChars, AllowEmpty: true, DecodePct: true}
	pathSegmentEncoder = grammar.Encoder{Allowed: grammar.PathSegmentChars, AllowEmpty: true, EncodePct: true}
)

// DecodePath decodes a path from the given input src (string or []byte).
func DecodePath[T ~string | ~[]byte](src T) (Path, error) {
	v, err := mapSegments(string(src), pathSegmentDecoder.Decode)
	if err != nil {
		return "", errtrace.Wrap(err)
	}
	return Path(v), nil
}

// Encode returns the escaped path.
func (p Path) Encode() (string, error) {
	return errtrace.Wrap2(mapSegments(string(p), pathSegmentEncoder.Encode))
}

func mapSegments(s string, fn func(string) (string, error)) (string, error) {
	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)

	for i, seg := range strings.Split(s, "/") {
		v, err := fn(seg)
		if err != nil {
			return "", errtrace.Wrap(err)
		}
		if i > 0 {
			sb.WriteByte('/')
		}
		sb.WriteString(v)
	}
	return sb.String(), nil
}

// Segments returns the "/"-separated segments of the path.
// An absolute path starts with an empty segment.
func (p Path) Segments() []string {
	if p == "" {
		return nil
	}
	return strings.Split(string(p), "/")
}

// IsAbsolute reports whether the path starts with "/".
func (p Path) IsAbsolute() bool { return strings.HasPrefix(string(p), "/") }

// MarshalText implements [encoding.TextMarshaler].
func (p Path) MarshalText() ([]byte, error) {
	v, err := p.Encode()
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return []byte(v), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (p *Path) UnmarshalText(text []byte) error {
	v, err := DecodePath(text)
	if err != nil {
		*p = ""
		return errtrace.Wrap(err)
	}
	*p = v
	return nil
}
