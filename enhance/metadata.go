package enhance

import (
	"strings"

	"github.com/pagelift/pagelift"
)

// extractMetadata captures the document title, standard meta tag values, all
// Open Graph properties and the document location. Missing fields become
// empty strings. The document is not mutated.
func extractMetadata(doc pagelift.Document) pagelift.Metadata {
	md := pagelift.Metadata{
		Title:       doc.Title(),
		Description: metaContent(doc, "description"),
		Keywords:    metaContent(doc, "keywords"),
		Author:      metaContent(doc, "author"),
		URL:         doc.Location(),
		OpenGraph:   make(map[string]string),
	}

	// Document order means the last duplicate property wins.
	for _, meta := range doc.Find(`meta[property^="og:"]`) {
		property, _ := meta.Attr("property")
		content, _ := meta.Attr("content")
		md.OpenGraph[strings.TrimPrefix(property, "og:")] = content
	}

	return md
}

// metaContent returns the content of the first meta tag with the given name,
// or the empty string if the tag is absent.
func metaContent(doc pagelift.Document, name string) string {
	nodes := doc.Find(`meta[name="` + name + `"]`)
	if len(nodes) == 0 {
		return ""
	}
	content, _ := nodes[0].Attr("content")
	return content
}
