package enhance

import (
	"encoding/json"

	"github.com/pagelift/pagelift"
)

// embedJSON serializes v and writes it into the document as a non-visual
// data node (a script element of type application/json) under the given
// fixed identifier, appended to the body. An existing node with the same
// identifier is reused so repeated runs do not accumulate data nodes.
func embedJSON(doc pagelift.Document, id string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return pagelift.Errorf(pagelift.EINTERNAL, "serializing result: %v", err)
	}

	if existing := doc.Find("#" + id); len(existing) > 0 {
		existing[0].SetText(string(payload))
		return nil
	}

	body := doc.Body()
	if body == nil {
		return pagelift.Errorf(pagelift.EINVALID, "document has no body")
	}

	node := doc.CreateElement("script")
	node.SetAttr("type", "application/json")
	node.SetAttr("id", id)
	node.SetText(string(payload))
	body.AppendChild(node)
	return nil
}
