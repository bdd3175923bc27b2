package parser

import (
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
)

// SVGNamespace is the namespace of SVG elements.
const SVGNamespace = "http://www.w3.org/2000/svg"

// utf8BOM is dropped from the start of a document so that a prepended XML
// declaration stays the first thing in the output.
var utf8BOM = []byte("\xef\xbb\xbf")

// ErrNoRoot indicates the document has no root element.
var ErrNoRoot = errors.New("no root element")

// Document is a parsed SVG plot. The original bytes are kept verbatim so
// that serialization only changes what was annotated.
type Document struct {
	raw []byte

	root    xml.Name
	hasDecl bool

	title      string
	hasTitle   bool
	titleAt    int64 // byte offset where title text ends
	titleExtra string
}

// ParseDocument parses content as an XML document and locates the first
// SVG <title> element. Malformed XML is an error, and so is a declared
// encoding other than UTF-8: the source bytes are spliced, not transcoded.
// A leading UTF-8 byte order mark is dropped.
func ParseDocument(content []byte) (*Document, error) {
	content = bytes.TrimPrefix(content, utf8BOM)
	doc := &Document{raw: content}
	decoder := xml.NewDecoder(bytes.NewReader(content))

	for {
		token, err := decoder.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse svg: %w", err)
		}

		switch t := token.(type) {
		case xml.ProcInst:
			if t.Target == "xml" {
				doc.hasDecl = true
			}
		case xml.StartElement:
			if doc.root.Local == "" {
				doc.root = t.Name
			}
			if !doc.hasTitle && t.Name.Space == SVGNamespace && t.Name.Local == "title" {
				at, text, err := parseTitle(decoder)
				if err != nil {
					return nil, fmt.Errorf("parse svg title: %w", err)
				}
				doc.hasTitle = true
				doc.title = text
				doc.titleAt = at
			}
		}
	}

	if doc.root.Local == "" {
		return nil, ErrNoRoot
	}
	return doc, nil
}

// parseTitle consumes a <title> element. It returns the element's leading
// text, i.e. the character data before any child element, and the offset at
// which that text ends.
func parseTitle(decoder *xml.Decoder) (int64, string, error) {
	var text bytes.Buffer
	var at int64 = -1
	depth := 1

	for depth > 0 {
		offset := decoder.InputOffset()
		token, err := decoder.Token()
		if err != nil {
			if err == io.EOF {
				err = io.ErrUnexpectedEOF
			}
			return 0, "", err
		}

		switch t := token.(type) {
		case xml.StartElement:
			if depth == 1 && at < 0 {
				at = offset
			}
			depth++
		case xml.EndElement:
			depth--
			if depth == 0 && at < 0 {
				at = offset
			}
		case xml.CharData:
			if depth == 1 && at < 0 {
				text.Write(t)
			}
		}
	}

	return at, text.String(), nil
}

// Root returns the name of the root element.
func (d *Document) Root() xml.Name {
	return d.root
}

// Title returns the leading text of the first SVG <title> element and
// whether such an element exists.
func (d *Document) Title() (string, bool) {
	return d.title + d.titleExtra, d.hasTitle
}

// AnnotateTitle appends suffix to the title text. It does nothing and
// returns false when there is no title or its text is empty.
func (d *Document) AnnotateTitle(suffix string) bool {
	if !d.hasTitle || d.title+d.titleExtra == "" {
		return false
	}
	d.titleExtra += suffix
	return true
}

// Bytes serializes the document. An XML declaration is prepended when the
// source had none.
func (d *Document) Bytes() []byte {
	var buf bytes.Buffer
	buf.Grow(len(d.raw) + len(xml.Header) + len(d.titleExtra))

	if !d.hasDecl {
		buf.WriteString(xml.Header)
	}
	if d.titleExtra == "" {
		buf.Write(d.raw)
		return buf.Bytes()
	}
	buf.Write(d.raw[:d.titleAt])
	xml.EscapeText(&buf, []byte(d.titleExtra))
	buf.Write(d.raw[d.titleAt:])
	return buf.Bytes()
}
