package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/pagelift/pagelift"
	"golang.org/x/net/html"
)

// Ensure Node implements pagelift.Node at compile time.
var _ pagelift.Node = (*Node)(nil)

// Node wraps a single element of the parsed tree. Mutations apply to the
// underlying tree directly.
type Node struct {
	n *html.Node
}

// Tag returns the lowercase tag name.
func (w *Node) Tag() string {
	return strings.ToLower(w.n.Data)
}

// Attr returns the value of the named attribute and whether it is set.
func (w *Node) Attr(name string) (string, bool) {
	for _, a := range w.n.Attr {
		if a.Key == name {
			return a.Val, true
		}
	}
	return "", false
}

// SetAttr sets an attribute, replacing any existing value.
func (w *Node) SetAttr(name, value string) {
	for i, a := range w.n.Attr {
		if a.Key == name {
			w.n.Attr[i].Val = value
			return
		}
	}
	w.n.Attr = append(w.n.Attr, html.Attribute{Key: name, Val: value})
}

// AddClass appends class names, preserving existing classes and skipping
// duplicates.
func (w *Node) AddClass(names ...string) {
	current, _ := w.Attr("class")
	classes := strings.Fields(current)

	seen := make(map[string]bool, len(classes))
	for _, c := range classes {
		seen[c] = true
	}
	for _, name := range names {
		if !seen[name] {
			classes = append(classes, name)
			seen[name] = true
		}
	}

	w.SetAttr("class", strings.Join(classes, " "))
}

// Text returns the concatenated text content of the subtree.
func (w *Node) Text() string {
	var sb strings.Builder
	collectText(w.n, &sb)
	return sb.String()
}

func collectText(n *html.Node, sb *strings.Builder) {
	if n.Type == html.TextNode {
		sb.WriteString(n.Data)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, sb)
	}
}

// Children returns the element children in document order.
func (w *Node) Children() []pagelift.Node {
	var children []pagelift.Node
	for c := w.n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			children = append(children, &Node{n: c})
		}
	}
	return children
}

// Find returns descendant elements matching the CSS selector.
func (w *Node) Find(selector string) []pagelift.Node {
	return wrapNodes(goquery.NewDocumentFromNode(w.n).Find(selector).Nodes)
}

// AppendChild attaches child as the last child of this element.
func (w *Node) AppendChild(child pagelift.Node) {
	w.n.AppendChild(child.(*Node).n)
}

// PrependChild attaches child as the first child of this element.
func (w *Node) PrependChild(child pagelift.Node) {
	w.n.InsertBefore(child.(*Node).n, w.n.FirstChild)
}

// SetText replaces the element's content with a single text child.
func (w *Node) SetText(text string) {
	for w.n.FirstChild != nil {
		w.n.RemoveChild(w.n.FirstChild)
	}
	w.n.AppendChild(&html.Node{Type: html.TextNode, Data: text})
}
