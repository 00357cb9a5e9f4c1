package pagelift

// Metadata holds page-level metadata captured during extraction.
// Missing fields are represented as empty strings, never as errors.
type Metadata struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Keywords    string            `json:"keywords"`
	Author      string            `json:"author"`
	URL         string            `json:"url"`
	OpenGraph   map[string]string `json:"openGraph"`
}

// Statistics counts the elements actually mutated by each enhancer.
// Matched-but-filtered elements (e.g. anchors without an href) are
// not counted.
type Statistics struct {
	Headings   int `json:"headings"`
	Links      int `json:"links"`
	Images     int `json:"images"`
	Tables     int `json:"tables"`
	Paragraphs int `json:"paragraphs"`
}

// ExtractionResult is the record produced by one successful engine run.
// It is serialized to JSON and embedded into the document as a data node.
type ExtractionResult struct {
	Metadata           Metadata   `json:"metadata"`
	Statistics         Statistics `json:"statistics"`
	EnhancementApplied bool       `json:"enhancementApplied"`
}

// ErrorRecord replaces the extraction result when a run fails. It is
// embedded under its own fixed identifier; no partial result is embedded
// alongside it.
type ErrorRecord struct {
	Error string `json:"error"`
}
