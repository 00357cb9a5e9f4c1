package pagelift

// Node is a single element in a document tree. Mutations apply to the
// backing tree immediately.
type Node interface {
	// Tag returns the lowercase element tag name.
	Tag() string

	// Attr returns the value of the named attribute and whether it is set.
	Attr(name string) (string, bool)

	// SetAttr sets an attribute, replacing any existing value.
	SetAttr(name, value string)

	// AddClass appends class names to the element's class attribute,
	// preserving existing classes and skipping duplicates.
	AddClass(names ...string)

	// Text returns the concatenated text content of the subtree.
	Text() string

	// Children returns the element children in document order.
	// Text and comment nodes are not included.
	Children() []Node

	// Find returns descendant elements matching the CSS selector,
	// in document order.
	Find(selector string) []Node

	// AppendChild attaches a node created by the owning document as the
	// last child of this element.
	AppendChild(child Node)

	// PrependChild attaches a node created by the owning document as the
	// first child of this element.
	PrependChild(child Node)

	// SetText replaces the element's content with a single text child.
	SetText(text string)
}

// Document is the capability surface the enhancement engine needs from an
// HTML backend: query-by-selector, child enumeration, attribute access and
// element creation. Implementations may wrap a live browser page or a
// parsed static tree; the engine does not care which.
type Document interface {
	// Find returns elements matching the CSS selector in document order.
	Find(selector string) []Node

	// Body returns the document body element, or nil if the document
	// has none.
	Body() Node

	// Root returns the document root element.
	Root() Node

	// Title returns the document title, or the empty string if absent.
	Title() string

	// Location returns the document's absolute URL.
	Location() string

	// CreateElement creates a detached element owned by this document.
	// The element is not part of the tree until attached via AppendChild
	// or PrependChild.
	CreateElement(tag string) Node

	// HTML serializes the current state of the tree.
	HTML() (string, error)
}

// InteractionChecker reports whether a node has an attached
// interaction-capable event handler. Handler introspection has no portable
// standard equivalent, so the hosting environment must inject an
// implementation; static backends can only approximate it from inline
// handler attributes. A nil checker means no node is considered interactive.
type InteractionChecker func(n Node) bool
