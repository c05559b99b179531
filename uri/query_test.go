package uri_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"

	"github.com/ghettovoice/gouri/uri"
)

func TestDecodeQuery(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      string
		want    uri.Query
		wantErr error
	}{
		{"empty", "", nil, uri.ErrEmptyInput},
		{"single pair", "a=1", uri.NewQuery("a", "1"), nil},
		{
			"multiple values",
			"arg1=1&arg2=hello&arg2=ddd",
			uri.NewQuery("arg1", "1", "arg2", "hello", "arg2", "ddd"),
			nil,
		},
		{"duplicate pair", "a=1&a=1", uri.NewQuery("a", "1"), nil},
		{"empty value", "a=", uri.NewQuery("a", ""), nil},
		{"empty key", "=b", uri.NewQuery("", "b"), nil},
		{"structural chars", "redirect=/a/b?c:d@e", uri.NewQuery("redirect", "/a/b?c:d@e"), nil},
		{"escaped", "q=%E4%BB%A3%20x", uri.NewQuery("q", "代 x"), nil},
		{"pair without separator", "a&b=c", nil, uri.ErrPath},
		{"pair with two separators", "a=b=c", nil, uri.ErrPath},
		{"trailing ampersand", "a=b&", nil, uri.ErrPath},
		{"escaped ampersand splits pairs", "a=%26", nil, uri.ErrPath},
		{"hash", "a=b#c", nil, uri.ErrDecode},
		{"lowercase hex", "a=%e4%bb%a3", nil, uri.ErrDecode},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := uri.DecodeQuery(c.in)
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("uri.DecodeQuery(%q) error = %v, want %v\ndiff (-got +want):\n%v", c.in, err, c.wantErr, diff)
			}
			if diff := cmp.Diff(got, c.want); diff != "" {
				t.Errorf("uri.DecodeQuery(%q) = %v, want %v\ndiff (-got +want):\n%v", c.in, got, c.want, diff)
			}
		})
	}
}

func TestQuery_Encode(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      uri.Query
		want    string
		wantErr error
	}{
		{"nil", nil, "", uri.ErrEncode},
		{"empty", uri.Query{}, "", uri.ErrEmptyInput},
		{"sorted", uri.NewQuery("b", "2", "a", "z", "a", "y"), "a=y&a=z&b=2", nil},
		{"empty value", uri.NewQuery("a", ""), "a=", nil},
		{"needs escaping", uri.NewQuery("q", "代 x#"), "q=%E4%BB%A3%20x%23", nil},
		{"ampersand in value", uri.NewQuery("a", "x&y"), "", uri.ErrEncode},
		{"equal sign in key", uri.NewQuery("a=b", "c"), "", uri.ErrEncode},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			got, err := c.in.Encode()
			if diff := cmp.Diff(err, c.wantErr, cmpopts.EquateErrors()); diff != "" {
				t.Errorf("query.Encode() error = %v, want %v\ndiff (-got +want):\n%v", err, c.wantErr, diff)
			}
			if got != c.want {
				t.Errorf("query.Encode() = %q, want %q", got, c.want)
			}
		})
	}
}

func TestQuery_RoundTrip(t *testing.T) {
	t.Parallel()

	for _, in := range []string{
		"a=1",
		"arg1=1&arg2=ddd&arg2=hello",
		"k=v:/?@&k=%E4%BB%A3",
	} {
		q, err := uri.DecodeQuery(in)
		if err != nil {
			t.Fatalf("uri.DecodeQuery(%q) error = %v, want nil", in, err)
		}
		got, err := q.Encode()
		if err != nil {
			t.Fatalf("uri.DecodeQuery(%q).Encode() error = %v, want nil", in, err)
		}
		if got != in {
			t.Errorf("uri.DecodeQuery(%q).Encode() = %q, want %q", in, got, in)
		}
	}
}

func TestQuery_Methods(t *testing.T) {
	t.Parallel()

	q := uri.NewQuery("arg2", "hello", "arg1", "1", "arg2", "ddd", "flag")
	if got, want := q.Keys(), []string{"arg1", "arg2", "flag"}; !cmp.Equal(got, want) {
		t.Errorf("q.Keys() = %q, want %q", got, want)
	}
	if got, want := q.Get("arg2"), []string{"ddd", "hello"}; !cmp.Equal(got, want) {
		t.Errorf("q.Get(\"arg2\") = %q, want %q", got, want)
	}
	if got := q.Get("missing"); got != nil {
		t.Errorf("q.Get(\"missing\") = %q, want nil", got)
	}
	if !q.Has("flag") || !q.HasValue("flag", "") {
		t.Error("q.Has(\"flag\") = false, want true")
	}
	if got := q.Len(); got != 4 {
		t.Errorf("q.Len() = %d, want 4", got)
	}

	if err := q.AddPair("arg1=2"); err != nil {
		t.Fatalf("q.AddPair(\"arg1=2\") error = %v, want nil", err)
	}
	if err := q.AddPair("arg1"); !cmp.Equal(err, uri.ErrPath, cmpopts.EquateErrors()) {
		t.Errorf("q.AddPair(\"arg1\") error = %v, want %v", err, uri.ErrPath)
	}

	c := q.Clone()
	q.Del("arg2")
	if q.Has("arg2") {
		t.Error("q.Has(\"arg2\") = true after Del, want false")
	}
	if !c.Has("arg2") || c.Len() != 5 {
		t.Errorf("clone = %v, want untouched copy with 5 pairs", c)
	}
	if c.Equal(q) {
		t.Error("c.Equal(q) = true, want false")
	}
	q.Add("arg2", "hello")
	q.Add("arg2", "ddd")
	if !c.Equal(&q) {
		t.Error("c.Equal(&q) = false, want true")
	}
	if uri.Query(nil).Clone() != nil {
		t.Error("uri.Query(nil).Clone() != nil")
	}
}

func TestQuery_AddToURIWithoutQuery(t *testing.T) {
	t.Parallel()

	u, err := uri.DecodeURI("http://h/a")
	if err != nil {
		t.Fatalf("uri.DecodeURI() error = %v, want nil", err)
	}
	if u.Query != nil {
		t.Fatalf("u.Query = %v, want nil", u.Query)
	}

	func() {
		defer func() {
			if recover() == nil {
				t.Error("nil Query.Add() did not panic")
			}
		}()
		u.Query.Add("k", "v")
	}()

	u.Query = uri.NewQuery()
	u.Query.Add("k", "v")
	got, err := u.Encode()
	if err != nil {
		t.Fatalf("u.Encode() error = %v, want nil", err)
	}
	if want := "http://h/a?k=v"; got != want {
		t.Errorf("u.Encode() = %q, want %q", got, want)
	}
}
