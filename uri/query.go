package uri

import (
	"maps"
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/grammar"
	"github.com/ghettovoice/gouri/internal/util"
)

// Query is a decoded URI query.
// It maps every key to a set of values, so duplicate key/value pairs collapse.
// Pairs are encoded in key order, values of a key in value order.
type Query map[string]map[string]struct{}

var (
	queryDecoder = grammar.Decoder{Allowed: grammar.QueryChars, DecodePct: true}
	queryEncoder = grammar.Encoder{Allowed: grammar.QueryChars, EncodePct: true}
)

// NewQuery returns a query built from the given key/value pairs.
//
//	q := uri.NewQuery("a", "1", "b", "2") // a=1&b=2
//
// A trailing key without value is added with an empty value.
func NewQuery(kvs ...string) Query {
	q := make(Query, len(kvs)/2)
	for i := 0; i < len(kvs); i += 2 {
		var v string
		if i+1 < len(kvs) {
			v = kvs[i+1]
		}
		q.Add(kvs[i], v)
	}
	return q
}

// Add adds the value to the key's set of values.
// Like any map write it panics on a nil Query, create one with [NewQuery].
func (q Query) Add(k, v string) {
	vs, ok := q[k]
	if !ok {
		vs = make(map[string]struct{}, 1)
		q[k] = vs
	}
	vs[v] = struct{}{}
}

// AddPair parses a raw "key=value" pair and adds it to the query.
// The pair must contain exactly one "=".
func (q Query) AddPair(pair string) error {
	k, v, err := splitQueryPair(pair)
	if err != nil {
		return errtrace.Wrap(err)
	}
	q.Add(k, v)
	return nil
}

// Get returns the sorted values of the key.
func (q Query) Get(k string) []string {
	vs, ok := q[k]
	if !ok {
		return nil
	}
	return slices.Sorted(maps.Keys(vs))
}

// Has reports whether the query contains the key.
func (q Query) Has(k string) bool {
	_, ok := q[k]
	return ok
}

// HasValue reports whether the key has the value.
func (q Query) HasValue(k, v string) bool {
	_, ok := q[k][v]
	return ok
}

// Del removes the key with all its values.
func (q Query) Del(k string) { delete(q, k) }

// Keys returns the sorted keys of the query.
func (q Query) Keys() []string { return slices.Sorted(maps.Keys(q)) }

// Len returns the number of key/value pairs.
func (q Query) Len() int {
	var n int
	for _, vs := range q {
		n += len(vs)
	}
	return n
}

// Clone returns a deep copy of the query.
func (q Query) Clone() Query {
	if q == nil {
		return nil
	}
	q2 := make(Query, len(q))
	for k, vs := range q {
		q2[k] = maps.Clone(vs)
	}
	return q2
}

// DecodeQuery decodes a query from the given input src (string or []byte).
//
// The whole input is unescaped first, then split into "&"-separated pairs.
// A pair without exactly one "=" fails the whole decode with [ErrPath].
func DecodeQuery[T ~string | ~[]byte](src T) (Query, error) {
	s, err := queryDecoder.Decode(string(src))
	if err != nil {
		return nil, errtrace.Wrap(err)
	}

	q := make(Query)
	for pair := range strings.SplitSeq(s, "&") {
		if err := q.AddPair(pair); err != nil {
			return nil, errtrace.Wrap(err)
		}
	}
	return q, nil
}

func splitQueryPair(pair string) (k, v string, err error) {
	if strings.Count(pair, "=") != 1 {
		return "", "", errtrace.Wrap(errorutil.NewWrapperError(ErrPath, "malformed query pair %q", pair))
	}
	k, v, _ = strings.Cut(pair, "=")
	return k, v, nil
}

// Encode returns the escaped query.
// Keys and values must not contain "&" or "=", they can not be told from the separators.
func (q Query) Encode() (string, error) {
	if q.Len() == 0 {
		return "", errtrace.Wrap(errorutil.NewWrapperError(ErrEncode, ErrEmptyInput))
	}

	kvs := make([][]string, 0, q.Len())
	for k, vs := range q {
		for v := range vs {
			if strings.ContainsAny(k, "&=") || strings.ContainsAny(v, "&=") {
				return "", errtrace.Wrap(errorutil.NewWrapperError(ErrEncode, "invalid query pair %q=%q", k, v))
			}
			kvs = append(kvs, []string{k, v})
		}
	}
	slices.SortFunc(kvs, func(a, b []string) int {
		if c := util.CmpKVs(a, b); c != 0 {
			return c
		}
		return strings.Compare(a[1], b[1])
	})

	sb := util.GetStringBuilder()
	defer util.FreeStringBuilder(sb)
	for i, kv := range kvs {
		if i > 0 {
			sb.WriteByte('&')
		}
		sb.WriteString(kv[0])
		sb.WriteByte('=')
		sb.WriteString(kv[1])
	}
	return errtrace.Wrap2(queryEncoder.Encode(sb.String()))
}

// Equal compares the query with another for equality.
func (q Query) Equal(val any) bool {
	var other Query
	switch v := val.(type) {
	case Query:
		other = v
	case *Query:
		if v == nil {
			return false
		}
		other = *v
	default:
		return false
	}
	return maps.EqualFunc(q, other, func(a, b map[string]struct{}) bool { return maps.Equal(a, b) })
}

// MarshalText implements [encoding.TextMarshaler].
func (q Query) MarshalText() ([]byte, error) {
	v, err := q.Encode()
	if err != nil {
		return nil, errtrace.Wrap(err)
	}
	return []byte(v), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (q *Query) UnmarshalText(text []byte) error {
	v, err := DecodeQuery(text)
	if err != nil {
		*q = nil
		return errtrace.Wrap(err)
	}
	*q = v
	return nil
}
