package enhance

import (
	"strconv"

	"github.com/pagelift/pagelift"
)

// enhanceTables enriches every table with a positional index attribute and a
// styling class, synthesizes a visually-hidden caption when none exists, and
// sets scope=col on header-section cells lacking an explicit scope. The
// counter increments once per table regardless of whether a caption or scope
// fix was needed; tables without a header section get no scope attributes
// and raise no error.
func enhanceTables(doc pagelift.Document) int {
	tables := doc.Find("table")
	for i, table := range tables {
		table.SetAttr(pagelift.AttrIndex, strconv.Itoa(i))
		table.AddClass(pagelift.ClassTable)

		// Caption presence is the idempotence guard: re-running the
		// engine does not duplicate captions.
		if len(table.Find("caption")) == 0 {
			caption := doc.CreateElement("caption")
			caption.SetText("Table " + strconv.Itoa(i+1))
			caption.AddClass(pagelift.ClassVisuallyHidden)
			table.PrependChild(caption)
		}

		for _, cell := range table.Find("thead th") {
			if _, ok := cell.Attr("scope"); !ok {
				cell.SetAttr("scope", "col")
			}
		}
	}
	return len(tables)
}
