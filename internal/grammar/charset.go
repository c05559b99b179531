package grammar

// CharSet is a set of raw byte values that a URI component permits unescaped.
// Builder methods never modify the receiver, they return an extended copy,
// so a built set can be shared freely.
type CharSet [4]uint64

// Contains reports whether c is in the set.
func (cs CharSet) Contains(c byte) bool { return cs[c>>6]&(1<<(c&63)) != 0 }

// Add returns a copy of the set extended with the given bytes.
func (cs CharSet) Add(chars ...byte) CharSet {
	for _, c := range chars {
		cs[c>>6] |= 1 << (c & 63)
	}
	return cs
}

func (cs CharSet) addRange(lo, hi byte) CharSet {
	for c := lo; ; c++ {
		cs[c>>6] |= 1 << (c & 63)
		if c == hi {
			break
		}
	}
	return cs
}

// Alnum returns a copy of the set extended with ALPHA and DIGIT.
func (cs CharSet) Alnum() CharSet {
	return cs.addRange('a', 'z').addRange('A', 'Z').addRange('0', '9')
}

// Unreserved returns a copy of the set extended with the RFC 3986 unreserved rule.
func (cs CharSet) Unreserved() CharSet { return cs.Alnum().Add('-', '.', '_', '~') }

// SubDelims returns a copy of the set extended with the RFC 3986 sub-delims rule.
func (cs CharSet) SubDelims() CharSet {
	return cs.Add('!', '$', '&', '\'', '(', ')', '*', '+', ',', ';', '=')
}

// GenDelims returns a copy of the set extended with the RFC 3986 gen-delims rule.
func (cs CharSet) GenDelims() CharSet { return cs.Add(':', '/', '?', '#', '[', ']', '@') }

// Union returns a set containing the bytes of both sets.
func (cs CharSet) Union(other CharSet) CharSet {
	for i := range cs {
		cs[i] |= other[i]
	}
	return cs
}

// Component character sets.
var (
	SchemeChars      = CharSet{}.Alnum().Add('+', '-', '.')
	UserInfoChars    = CharSet{}.Unreserved().SubDelims().Add(':')
	RegNameChars     = CharSet{}.Unreserved().SubDelims()
	PathSegmentChars = CharSet{}.Unreserved().SubDelims().Add(':', '@')
	QueryChars       = CharSet{}.Unreserved().SubDelims().Add(':', '@', '/', '?')
	FragmentChars    = CharSet{}.Unreserved().SubDelims().Add('/', '?')
)

// IsAlphaChar checks ALPHA rule.
func IsAlphaChar(c byte) bool { return 'a' <= c && c <= 'z' || 'A' <= c && c <= 'Z' }

// IsDigitChar checks DIGIT rule.
func IsDigitChar(c byte) bool { return '0' <= c && c <= '9' }
