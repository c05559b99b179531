package uri

import (
	"fmt"

	"braces.dev/errtrace"
	"github.com/qmuntal/stateless"

	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/util"
)

// phase is the segment of a URI the splitter is currently accumulating.
type phase uint8

const (
	phaseScheme phase = iota
	phaseRPart
	phaseQuery
	phaseFragment
)

func (p phase) String() string {
	switch p {
	case phaseScheme:
		return "scheme"
	case phaseRPart:
		return "rpart"
	case phaseQuery:
		return "query"
	case phaseFragment:
		return "fragment"
	default:
		return fmt.Sprintf("phase(%d)", uint8(p))
	}
}

// Delimiters fire phase transitions. Any byte not permitted in the current phase is data.
const (
	trigColon byte = ':'
	trigSlash byte = '/'
	trigQuest byte = '?'
	trigHash  byte = '#'
)

func newPhaseMachine() *stateless.StateMachine {
	m := stateless.NewStateMachine(phaseScheme)
	m.Configure(phaseScheme).
		Permit(trigColon, phaseRPart).
		Permit(trigSlash, phaseRPart).
		Permit(trigQuest, phaseQuery).
		Permit(trigHash, phaseFragment)
	m.Configure(phaseRPart).
		Permit(trigQuest, phaseQuery).
		Permit(trigHash, phaseFragment)
	m.Configure(phaseQuery).
		Permit(trigHash, phaseFragment)
	m.Configure(phaseFragment)
	return m
}

// splitURI scans s left to right and decodes every closed segment into u as soon as it is closed.
func splitURI(s string, u *URI) error {
	m := newPhaseMachine()

	buf := util.GetBytesBuffer()
	defer util.FreeBytesBuffer(buf)

	for i := 0; i < len(s); i++ {
		c := s[i]
		if ok, _ := m.CanFire(c); !ok {
			buf.WriteByte(c)
			continue
		}

		cur, ok := m.MustState().(phase)
		if !ok {
			return errtrace.Wrap(errorutil.NewWrapperError(ErrDecode, "unknown phase %v", m.MustState()))
		}
		// "/" before any ":" starts a relative reference and stays in the buffer
		if c == trigSlash {
			buf.WriteByte(c)
		} else {
			if err := closePhase(u, cur, buf.String(), c); err != nil {
				return errtrace.Wrap(err)
			}
			buf.Reset()
		}
		if err := m.Fire(c); err != nil {
			return errtrace.Wrap(errorutil.NewWrapperError(ErrDecode, err))
		}
	}

	if buf.Len() == 0 {
		return nil
	}
	cur, ok := m.MustState().(phase)
	if !ok {
		return errtrace.Wrap(errorutil.NewWrapperError(ErrDecode, "unknown phase %v", m.MustState()))
	}
	return errtrace.Wrap(closePhase(u, cur, buf.String(), 0))
}

// closePhase decodes the buffered segment of phase p.
// The scheme phase yields a scheme when closed by ":" or "#", otherwise the buffer is an rpart.
func closePhase(u *URI, p phase, seg string, sep byte) error {
	var err error
	switch p {
	case phaseScheme:
		if sep == trigColon || sep == trigHash {
			u.Scheme, err = DecodeScheme(seg)
			break
		}
		u.RPart, err = DecodeRPart(seg)
	case phaseRPart:
		u.RPart, err = DecodeRPart(seg)
	case phaseQuery:
		u.Query, err = DecodeQuery(seg)
	case phaseFragment:
		u.Fragment, err = DecodeFragment(seg)
	default:
		err = errorutil.NewWrapperError(ErrDecode, "unknown phase %v", p)
	}
	return errtrace.Wrap(err)
}
