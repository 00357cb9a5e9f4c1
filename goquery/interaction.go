package goquery

import "github.com/pagelift/pagelift"

// interactionAttrs lists the inline handler attributes that make a node
// interaction-capable from the static backend's point of view.
var interactionAttrs = []string{
	"onclick",
	"ondblclick",
	"onmousedown",
	"onmouseup",
	"onkeydown",
	"onkeyup",
	"onkeypress",
	"onsubmit",
	"onchange",
	"oninput",
	"ontouchstart",
}

// HasInlineHandler is the static pagelift.InteractionChecker. A parsed tree
// exposes no listener registry, so only inline on* handler attributes are
// visible; hosts with a live page should inject a checker backed by real
// handler introspection instead.
func HasInlineHandler(n pagelift.Node) bool {
	for _, attr := range interactionAttrs {
		if v, ok := n.Attr(attr); ok && v != "" {
			return true
		}
	}
	return false
}
