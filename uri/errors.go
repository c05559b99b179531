package uri

import "github.com/ghettovoice/gouri/internal/grammar"

// Error kinds returned by the decode and encode operations.
// Returned errors wrap one or more of them and should be matched with [errors.Is].
const (
	// ErrEncode is a structural or policy violation found while encoding,
	// or during input validation common to both directions: empty input where it is not allowed,
	// a disallowed byte with no escape policy, a malformed existing escape, a scheme not starting
	// with a letter, an invalid host literal or an invalid query pair.
	ErrEncode = grammar.ErrEncode
	// ErrDecode is a structural violation found while decoding: an unrecognized byte,
	// a malformed percent escape or an unknown segmentation phase.
	ErrDecode = grammar.ErrDecode
	// ErrPath is a malformed query pair, i.e. a pair without exactly one "=".
	ErrPath = grammar.ErrPath
	// ErrInvalidUTF8 is returned when percent-decoded bytes do not form valid UTF-8 text.
	ErrInvalidUTF8 = grammar.ErrInvalidUTF8
	// ErrInvalidPort is returned when a port is not a decimal number in range 0-65535.
	ErrInvalidPort = grammar.ErrInvalidPort
	// ErrEmptyInput is wrapped together with [ErrEncode] when a component does not permit empty input.
	ErrEmptyInput = grammar.ErrEmptyInput
	// ErrUnknown is reserved and never returned deliberately.
	ErrUnknown = grammar.ErrUnknown
)
