// Package goquery provides a static, string-based HTML backend for the
// enhancement engine. It implements pagelift.Document over a parsed tree,
// which makes offline analysis possible without a live browser page.
package goquery

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagelift/pagelift"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Ensure Document implements pagelift.Document at compile time.
var _ pagelift.Document = (*Document)(nil)

// Document wraps a parsed HTML tree rooted at a known location.
type Document struct {
	doc      *goquery.Document
	location string
}

// Parse parses static HTML into a Document. The location is the absolute
// URL the page was loaded from; relative hrefs are resolved against it.
func Parse(rawHTML string, location string) (*Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, pagelift.Errorf(pagelift.EINVALID, "failed to parse HTML: %v", err)
	}
	return &Document{doc: doc, location: location}, nil
}

// Find returns elements matching the CSS selector in document order.
func (d *Document) Find(selector string) []pagelift.Node {
	return wrapNodes(d.doc.Find(selector).Nodes)
}

// Body returns the document body element, or nil if the tree has none.
func (d *Document) Body() pagelift.Node {
	nodes := d.doc.Find("body").Nodes
	if len(nodes) == 0 {
		return nil
	}
	return &Node{n: nodes[0]}
}

// Root returns the document root element.
func (d *Document) Root() pagelift.Node {
	nodes := d.doc.Find("html").Nodes
	if len(nodes) == 0 {
		// html.Parse always synthesizes an html element; fall back to
		// the document node for trees built by hand.
		return &Node{n: d.doc.Nodes[0]}
	}
	return &Node{n: nodes[0]}
}

// Title returns the trimmed document title, empty if absent.
func (d *Document) Title() string {
	return strings.TrimSpace(d.doc.Find("title").First().Text())
}

// Location returns the document's absolute URL.
func (d *Document) Location() string {
	return d.location
}

// CreateElement creates a detached element.
func (d *Document) CreateElement(tag string) pagelift.Node {
	return &Node{n: &html.Node{
		Type:     html.ElementNode,
		DataAtom: atom.Lookup([]byte(tag)),
		Data:     tag,
	}}
}

// HTML serializes the current state of the tree.
func (d *Document) HTML() (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, d.doc.Nodes[0]); err != nil {
		return "", pagelift.Errorf(pagelift.EINTERNAL, "rendering HTML: %v", err)
	}
	return buf.String(), nil
}

// Scope returns the outer HTML of the first element matching the selector,
// so a run can be restricted to a subtree of the page. Returns ENOTFOUND
// when nothing matches.
func Scope(rawHTML string, selector string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return "", pagelift.Errorf(pagelift.EINVALID, "failed to parse HTML: %v", err)
	}
	sel := doc.Find(selector).First()
	if sel.Length() == 0 {
		return "", pagelift.Errorf(pagelift.ENOTFOUND, "no element matches selector %q", selector)
	}
	scoped, err := goquery.OuterHtml(sel)
	if err != nil {
		return "", pagelift.Errorf(pagelift.EINTERNAL, "rendering scoped HTML: %v", err)
	}
	return scoped, nil
}

func wrapNodes(nodes []*html.Node) []pagelift.Node {
	if len(nodes) == 0 {
		return nil
	}
	wrapped := make([]pagelift.Node, len(nodes))
	for i, n := range nodes {
		wrapped[i] = &Node{n: n}
	}
	return wrapped
}
