package enhance

import (
	"net/url"
	"path"
	"strconv"

	"github.com/pagelift/pagelift"
)

// mainContentSelectors is the ordered candidate list for main-content
// marking. The first selector with any match wins; DOM position never
// overrides selector priority.
var mainContentSelectors = []string{
	"main",
	"article",
	`[role="main"]`,
	"#content",
	".content",
}

// enhanceParagraphs gives every paragraph a styling class and positional
// index attribute. The counter increments unconditionally.
func enhanceParagraphs(doc pagelift.Document) int {
	paragraphs := doc.Find("p")
	for i, p := range paragraphs {
		p.AddClass(pagelift.ClassParagraph)
		p.SetAttr(pagelift.AttrIndex, strconv.Itoa(i))
	}
	return len(paragraphs)
}

// enhanceImages gives every image a styling class and positional index
// attribute, synthesizing alt text from the source URL when missing.
// The counter increments unconditionally.
func enhanceImages(doc pagelift.Document) int {
	images := doc.Find("img")
	for i, img := range images {
		img.AddClass(pagelift.ClassImage)
		img.SetAttr(pagelift.AttrIndex, strconv.Itoa(i))

		if alt, ok := img.Attr("alt"); !ok || alt == "" {
			img.SetAttr("alt", altFromSource(img, i))
		}
	}
	return len(images)
}

// altFromSource derives alt text from the final path segment of the image
// source, falling back to a positional label when the segment is empty.
func altFromSource(img pagelift.Node, index int) string {
	fallback := "Image " + strconv.Itoa(index+1)

	src, ok := img.Attr("src")
	if !ok || src == "" {
		return fallback
	}

	segment := finalPathSegment(src)
	if segment == "" {
		return fallback
	}
	return segment
}

// finalPathSegment extracts the last path segment of a URL, ignoring query
// and fragment. Returns the empty string for root or directory paths.
func finalPathSegment(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	base := path.Base(u.Path)
	if base == "." || base == "/" {
		return ""
	}
	return base
}

// markMainContent scans the candidate selectors in priority order and tags
// the first element of the first matching selector. At most one element is
// ever marked.
func markMainContent(doc pagelift.Document) {
	for _, selector := range mainContentSelectors {
		if nodes := doc.Find(selector); len(nodes) > 0 {
			nodes[0].AddClass(pagelift.ClassMainContent)
			return
		}
	}
}
