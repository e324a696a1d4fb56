// Package markup is a small HTML writer used to build templ components in
// plain Go. Text and attribute values are always escaped; hrefs go through
// templ's URL sanitiser.
package markup

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
)

// Attr is a single HTML attribute. An empty Key is skipped, which lets
// callers build attribute lists with conditional entries.
type Attr struct {
	Key   string
	Value string
	Bool  bool
}

func A(key, value string) Attr { return Attr{Key: key, Value: value} }

// Flag is a boolean attribute such as hidden.
func Flag(key string) Attr { return Attr{Key: key, Bool: true} }

func Class(classes ...string) Attr { return A("class", strings.Join(classes, " ")) }

func ID(id string) Attr { return A("id", id) }

// Href sanitises the link with templ.URL; unsafe schemes become about:invalid.
func Href(url string) Attr { return A("href", string(templ.URL(url))) }

// External returns the attributes of a link that opens in a new browsing
// context without a handle back to, or the address of, this page.
func External(url string) []Attr {
	return []Attr{Href(url), A("target", "_blank"), A("rel", "noopener noreferrer")}
}

// When returns attrs if cond holds and nothing otherwise.
func When(cond bool, attrs ...Attr) []Attr {
	if !cond {
		return nil
	}
	return attrs
}

// Join flattens attribute groups.
func Join(groups ...[]Attr) []Attr {
	var out []Attr
	for _, g := range groups {
		out = append(out, g...)
	}
	return out
}

// Writer writes elements and remembers the first error.
type Writer struct {
	ctx context.Context
	w   io.Writer
	err error
}

func New(ctx context.Context, w io.Writer) *Writer {
	return &Writer{ctx: ctx, w: w}
}

// Component wraps a render function into a templ.Component.
func Component(render func(m *Writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := New(ctx, w)
		render(m)
		return m.Err()
	})
}

func (m *Writer) Err() error { return m.err }

func (m *Writer) raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

// Raw writes s verbatim. Only use it for trusted, static markup.
func (m *Writer) Raw(s string) { m.raw(s) }

func (m *Writer) Text(s string) { m.raw(templ.EscapeString(s)) }

func (m *Writer) Open(tag string, attrs ...Attr) {
	m.raw("<" + tag)
	m.attrs(attrs)
	m.raw(">")
}

func (m *Writer) Close(tag string) { m.raw("</" + tag + ">") }

// Void writes an element without a closing tag, such as img.
func (m *Writer) Void(tag string, attrs ...Attr) { m.Open(tag, attrs...) }

// Element writes an element holding only text.
func (m *Writer) Element(tag, text string, attrs ...Attr) {
	m.Open(tag, attrs...)
	m.Text(text)
	m.Close(tag)
}

// Wrap writes an element whose children are produced by body.
func (m *Writer) Wrap(tag string, attrs []Attr, body func()) {
	m.Open(tag, attrs...)
	body()
	m.Close(tag)
}

// Render writes a child component in place.
func (m *Writer) Render(c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(m.ctx, m.w)
}

func (m *Writer) attrs(attrs []Attr) {
	for _, a := range attrs {
		if a.Key == "" {
			continue
		}
		if a.Bool {
			m.raw(" " + a.Key)
			continue
		}
		m.raw(" " + a.Key + `="` + templ.EscapeString(a.Value) + `"`)
	}
}
