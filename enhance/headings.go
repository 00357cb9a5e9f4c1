package enhance

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/pagelift/pagelift"
)

// enhanceHeadings enriches every h1-h6 element with level and positional
// index attributes plus generic and level-specific classes. Headings without
// an id get one synthesized from their text; pre-existing ids are kept, but
// attributes, classes and the counter apply regardless.
func enhanceHeadings(doc pagelift.Document) int {
	headings := doc.Find("h1, h2, h3, h4, h5, h6")
	for i, h := range headings {
		level := headingLevel(h.Tag())

		if _, ok := h.Attr("id"); !ok {
			slug := slugify(h.Text())
			if slug == "" {
				slug = strconv.Itoa(i)
			}
			h.SetAttr("id", pagelift.HeadingIDPrefix+slug)
		}

		h.SetAttr(pagelift.AttrLevel, strconv.Itoa(level))
		h.SetAttr(pagelift.AttrIndex, strconv.Itoa(i))
		h.AddClass(pagelift.ClassHeading, pagelift.ClassHeadingLevelPrefix+strconv.Itoa(level))
	}
	return len(headings)
}

// headingLevel derives the level from the numeric tag suffix ("h2" -> 2).
func headingLevel(tag string) int {
	if len(tag) != 2 {
		return 0
	}
	level := int(tag[1] - '0')
	if level < 1 || level > 6 {
		return 0
	}
	return level
}

// slugify lowercases the trimmed text, collapses runs of non-alphanumeric
// characters to a single hyphen and trims leading/trailing hyphens.
// Returns the empty string when nothing alphanumeric remains.
func slugify(text string) string {
	var sb strings.Builder
	pendingHyphen := false

	for _, r := range strings.ToLower(strings.TrimSpace(text)) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingHyphen && sb.Len() > 0 {
				sb.WriteRune('-')
			}
			pendingHyphen = false
			sb.WriteRune(r)
		} else {
			pendingHyphen = true
		}
	}

	return sb.String()
}
