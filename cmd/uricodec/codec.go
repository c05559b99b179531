package main

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"braces.dev/errtrace"

	"github.com/ghettovoice/gouri/uri"
)

func decodeAs[T uri.Component](fn func(string) (T, error)) func(string) (uri.Component, error) {
	return func(s string) (uri.Component, error) {
		v, err := fn(s)
		if err != nil {
			return nil, errtrace.Wrap(err)
		}
		return v, nil
	}
}

var decoders = map[string]func(string) (uri.Component, error){
	"uri":       decodeAs(uri.DecodeURI[string]),
	"scheme":    decodeAs(uri.DecodeScheme[string]),
	"userinfo":  decodeAs(uri.DecodeUserInfo[string]),
	"host":      decodeAs(uri.DecodeHost[string]),
	"port":      decodeAs(uri.DecodePort[string]),
	"authority": decodeAs(uri.DecodeAuthority[string]),
	"rpart":     decodeAs(uri.DecodeRPart[string]),
	"path":      decodeAs(uri.DecodePath[string]),
	"query":     decodeAs(uri.DecodeQuery[string]),
	"fragment":  decodeAs(uri.DecodeFragment[string]),
}

// encoders escape raw text of the string-like components.
var encoders = map[string]func(string) (string, error){
	"scheme":   func(s string) (string, error) { return errtrace.Wrap2(uri.Scheme(s).Encode()) },
	"userinfo": func(s string) (string, error) { return errtrace.Wrap2(uri.UserInfo(s).Encode()) },
	"host":     func(s string) (string, error) { return errtrace.Wrap2(uri.RegName(s).Encode()) },
	"path":     func(s string) (string, error) { return errtrace.Wrap2(uri.Path(s).Encode()) },
	"fragment": func(s string) (string, error) { return errtrace.Wrap2(uri.Fragment(s).Encode()) },
	"query": func(s string) (string, error) {
		// raw pairs are separated by "&" and split on the only "="
		q := uri.NewQuery()
		for pair := range strings.SplitSeq(s, "&") {
			if err := q.AddPair(pair); err != nil {
				return "", errtrace.Wrap(err)
			}
		}
		return errtrace.Wrap2(q.Encode())
	},
}

// Result is the outcome of processing one input.
type Result struct {
	Input     string `json:"input"`
	Component string `json:"component"`
	Encoded   string `json:"encoded,omitempty"`
	Parts     *Parts `json:"parts,omitempty"`
	Error     string `json:"error,omitempty"`
}

// Parts are the decoded subcomponents of a value.
type Parts struct {
	Scheme   string              `json:"scheme,omitempty"`
	UserInfo string              `json:"userinfo,omitempty"`
	Host     string              `json:"host,omitempty"`
	HostKind string              `json:"host_kind,omitempty"`
	Labels   int                 `json:"domain_labels,omitempty"`
	Port     *uint16             `json:"port,omitempty"`
	Path     string              `json:"path,omitempty"`
	Query    map[string][]string `json:"query,omitempty"`
	Fragment string              `json:"fragment,omitempty"`
}

func describe(c uri.Component) *Parts {
	var p Parts
	switch v := c.(type) {
	case uri.URI:
		p.Scheme = string(v.Scheme)
		p.addRPart(v.RPart)
		p.addQuery(v.Query)
		p.Fragment = string(v.Fragment)
	case uri.RPart:
		p.addRPart(v)
	case uri.Authority:
		p.addAuthority(v)
	case uri.Host:
		p.addHost(v)
	case uri.Query:
		p.addQuery(v)
	case uri.Port:
		p.setPort(v)
	case uri.Scheme:
		p.Scheme = string(v)
	case uri.UserInfo:
		p.UserInfo = string(v)
	case uri.Path:
		p.Path = string(v)
	case uri.Fragment:
		p.Fragment = string(v)
	}
	return &p
}

func (p *Parts) addRPart(r uri.RPart) {
	if a, ok := r.Authority(); ok {
		p.addAuthority(a)
	}
	p.Path = string(r.Path())
}

func (p *Parts) addAuthority(a uri.Authority) {
	if ui, ok := a.UserInfo(); ok {
		p.UserInfo = string(ui)
	}
	p.addHost(a.Host())
	if port, ok := a.Port(); ok {
		p.setPort(port)
	}
}

func (p *Parts) setPort(port uri.Port) {
	n := uint16(port)
	p.Port = &n
}

func (p *Parts) addHost(h uri.Host) {
	p.Host = h.Name()
	p.HostKind = h.Kind().String()
	if h.IsDomainName() {
		p.Labels = h.Labels()
	}
}

func (p *Parts) addQuery(q uri.Query) {
	if len(q) == 0 {
		return
	}
	p.Query = make(map[string][]string, len(q))
	for _, k := range q.Keys() {
		p.Query[k] = q.Get(k)
	}
}

// WriteText writes the result in a human readable form.
func (r Result) WriteText(w io.Writer) {
	if r.Error != "" {
		fmt.Fprintf(w, "%s\terror: %s\n", r.Input, r.Error)
		return
	}
	fmt.Fprintln(w, r.Encoded)
	if r.Parts == nil {
		return
	}

	p := r.Parts
	line := func(k, v string) {
		if v != "" {
			fmt.Fprintf(w, "  %s: %s\n", k, v)
		}
	}
	line("scheme", p.Scheme)
	line("userinfo", p.UserInfo)
	if p.HostKind != "" {
		line("host", fmt.Sprintf("%s (%s)", p.Host, p.HostKind))
	}
	if p.Labels > 0 {
		line("domain", fmt.Sprintf("%d labels", p.Labels))
	}
	if p.Port != nil {
		line("port", fmt.Sprint(*p.Port))
	}
	line("path", p.Path)
	for _, k := range slices.Sorted(maps.Keys(p.Query)) {
		line("query", k+" = "+strings.Join(p.Query[k], ", "))
	}
	line("fragment", p.Fragment)
}
