// Package xmlw is a minimal token-level XML writer used by every ONIX and
// CrossRef emitter so element ordering is exact and explicit rather than
// inferred from Go struct field order. It wraps encoding/xml.Encoder,
// which remains the actual serialization engine.
package xmlw

import (
	"bytes"
	"encoding/xml"
)

// Writer accumulates XML tokens in document order.
type Writer struct {
	buf *bytes.Buffer
	enc *xml.Encoder
}

func New() *Writer {
	buf := &bytes.Buffer{}
	enc := xml.NewEncoder(buf)
	enc.Indent("", "  ")
	return &Writer{buf: buf, enc: enc}
}

// Attr is a name/value XML attribute pair.
type Attr struct {
	Name  string
	Value string
}

func A(name, value string) Attr { return Attr{Name: name, Value: value} }

// Start opens an element with the given attributes.
func (w *Writer) Start(name string, attrs ...Attr) {
	start := xml.StartElement{Name: xml.Name{Local: name}}
	for _, a := range attrs {
		start.Attr = append(start.Attr, xml.Attr{Name: xml.Name{Local: a.Name}, Value: a.Value})
	}
	_ = w.enc.EncodeToken(start)
}

// End closes the most recently opened element named name.
func (w *Writer) End(name string) {
	_ = w.enc.EncodeToken(xml.EndElement{Name: xml.Name{Local: name}})
}

// Text writes character data.
func (w *Writer) Text(s string) {
	_ = w.enc.EncodeToken(xml.CharData([]byte(s)))
}

// Elem writes a leaf element: <name attrs>text</name>.
func (w *Writer) Elem(name string, text string, attrs ...Attr) {
	w.Start(name, attrs...)
	if text != "" {
		w.Text(text)
	}
	w.End(name)
}

// Bytes flushes pending tokens and returns the accumulated document,
// prefixed with the standard XML declaration.
func (w *Writer) Bytes() []byte {
	_ = w.enc.Flush()
	out := &bytes.Buffer{}
	out.WriteString(xml.Header)
	out.Write(w.buf.Bytes())
	out.WriteString("\n")
	return out.Bytes()
}
