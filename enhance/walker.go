package enhance

import "github.com/pagelift/pagelift"

// skipTags lists elements whose entire subtree is excluded from the
// tree-walk: non-content elements plus embedded vector graphics. A matching
// node is never visited, never classified and never counted.
var skipTags = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
	"meta":     true,
	"link":     true,
	"svg":      true,
	"path":     true,
}

// ClassifyTree runs the tree-walk classification mechanism over the whole
// subtree rooted at the document body: pre-order entry with subtree pruning,
// post-order classification. Each classified node receives a fresh
// identifier from ids and its classification kind as an attribute.
// It returns the number of nodes classified.
//
// ClassifyTree may be run standalone or combined with the selector-based
// enhancers; its identifiers and labels are independent of theirs.
func ClassifyTree(doc pagelift.Document, ids *IDGenerator, check pagelift.InteractionChecker) (int, error) {
	body := doc.Body()
	if body == nil {
		return 0, pagelift.Errorf(pagelift.EINVALID, "document has no body")
	}
	w := &walker{ids: ids, check: check}
	w.walk(body)
	return w.classified, nil
}

type walker struct {
	ids        *IDGenerator
	check      pagelift.InteractionChecker
	classified int
}

func (w *walker) walk(n pagelift.Node) {
	if skipTags[n.Tag()] {
		return
	}
	// Children first: classification is post-order.
	for _, child := range n.Children() {
		w.walk(child)
	}
	w.classify(n)
}

// classify assigns at most one tree-walk classification, exactly once.
// Precedence: interactive wins over link; a node with an interaction
// handler never gets link classification even if it carries an href.
func (w *walker) classify(n pagelift.Node) {
	var class pagelift.NodeClass
	switch {
	case w.check != nil && w.check(n):
		class = pagelift.ClassInteractive
	default:
		href, ok := n.Attr("href")
		if !ok || href == "" {
			return
		}
		class = pagelift.ClassLink
	}

	n.SetAttr(pagelift.AttrNodeID, w.ids.Next())
	n.SetAttr(pagelift.AttrNodeClass, string(class))
	w.classified++
}
