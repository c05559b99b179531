package grammar_test

import (
	"testing"

	"github.com/ghettovoice/gouri/internal/grammar"
)

func TestCharSet_Contains(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		set  grammar.CharSet
		in   string
		out  string
	}{
		{"zero", grammar.CharSet{}, "", "aZ09-.:%\x00\xff"},
		{"alnum", grammar.CharSet{}.Alnum(), "azAZ09", "-._~!:%\x00\xff"},
		{"unreserved", grammar.CharSet{}.Unreserved(), "azAZ09-._~", "!$&:/%"},
		{"sub-delims", grammar.CharSet{}.SubDelims(), "!$&'()*+,;=", "a0:/?#[]@%"},
		{"gen-delims", grammar.CharSet{}.GenDelims(), ":/?#[]@", "a0!=%"},
		{"explicit", grammar.CharSet{}.Add(0, '%', 0xff), "\x00%\xff", "a0:"},
		{"union", grammar.CharSet{}.Add('a').Union(grammar.CharSet{}.Add('b')), "ab", "c"},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			for i := range len(c.in) {
				if !c.set.Contains(c.in[i]) {
					t.Errorf("set.Contains(%q) = false, want true", c.in[i])
				}
			}
			for i := range len(c.out) {
				if c.set.Contains(c.out[i]) {
					t.Errorf("set.Contains(%q) = true, want false", c.out[i])
				}
			}
		})
	}
}

func TestCharSet_Commutative(t *testing.T) {
	t.Parallel()

	s1 := grammar.CharSet{}.SubDelims().Add(':', '@').Unreserved()
	s2 := grammar.CharSet{}.Add('@').Unreserved().Add(':').SubDelims()
	if s1 != s2 {
		t.Errorf("sets built in different order differ: %v != %v", s1, s2)
	}
	if s1 != grammar.PathSegmentChars {
		t.Errorf("set = %v, want %v", s1, grammar.PathSegmentChars)
	}
}

func TestCharSet_Immutable(t *testing.T) {
	t.Parallel()

	base := grammar.CharSet{}.Alnum()
	_ = base.Add('-')
	if base.Contains('-') {
		t.Error("base.Contains('-') = true after Add on a copy, want false")
	}
}
