// Package enhance implements the document-enhancement engine: a single
// deterministic, synchronous pass over a loaded HTML document that
// classifies nodes, enriches structural elements, extracts page metadata
// and embeds the aggregated extraction record back into the tree.
//
// The engine operates over the abstract pagelift.Document capability
// interface, so live-browser and static HTML backends are interchangeable.
package enhance

import (
	"errors"

	"github.com/pagelift/pagelift"
)

// State identifies a phase of an enhancement run.
type State string

// Run states. Both embedding states are terminal; there is no retry.
const (
	StateIdle               State = "idle"
	StateExtractingMetadata State = "extracting-metadata"
	StateEnhancing          State = "enhancing"
	StateAggregating        State = "aggregating"
	StateEmbeddingSuccess   State = "embedding-success"
	StateEmbeddingError     State = "embedding-error"
)

// Config controls an engine run. Each enhancement step is independently
// toggleable; enabled steps run in a fixed order (metadata, then link,
// heading, table, generic enhancers, then the tree-walk).
type Config struct {
	Links    bool
	Headings bool
	Tables   bool
	Generic  bool
	TreeWalk bool

	// Interaction is the host-supplied handler-introspection capability
	// used by the tree-walk. A nil checker classifies no node as
	// interactive.
	Interaction pagelift.InteractionChecker

	// SocialDomains overrides the ordered social-platform domain list.
	// Nil means pagelift.DefaultSocialDomains.
	SocialDomains []string
}

// DefaultConfig enables every enhancement step.
func DefaultConfig() Config {
	return Config{
		Links:    true,
		Headings: true,
		Tables:   true,
		Generic:  true,
		TreeWalk: true,
	}
}

// Engine runs enhancement passes. An Engine is not safe for concurrent use
// against the same document; the host must not mutate the tree while a run
// is in progress.
type Engine struct {
	config Config
	state  State
}

// New creates an Engine with the given configuration.
func New(config Config) *Engine {
	return &Engine{config: config, state: StateIdle}
}

// State returns the engine's current run state.
func (e *Engine) State() State {
	return e.state
}

// Run executes one full pass over the document. On success the extraction
// record is embedded under pagelift.ResultNodeID, the root is flagged as
// enhanced, and the record is returned. On any failure the run aborts, an
// error record is embedded under pagelift.ErrorNodeID instead, and the
// error is returned; no partial result is ever embedded. A nil error is the
// success signal for the host.
func (e *Engine) Run(doc pagelift.Document) (result *pagelift.ExtractionResult, err error) {
	e.state = StateIdle

	// The single catch boundary: stage failures and panics both land here
	// and both produce the embedded error record.
	defer func() {
		if r := recover(); r != nil {
			err = pagelift.Errorf(pagelift.EINTERNAL, "enhancement failed: %v", r)
		}
		if err != nil {
			result = nil
			e.state = StateEmbeddingError
			record := &pagelift.ErrorRecord{Error: errorText(err)}
			_ = embedJSON(doc, pagelift.ErrorNodeID, record)
		}
	}()

	res, err := e.run(doc)
	if err != nil {
		return nil, err
	}

	e.state = StateEmbeddingSuccess
	doc.Root().SetAttr(pagelift.AttrEnhanced, "true")
	if err := embedJSON(doc, pagelift.ResultNodeID, res); err != nil {
		return nil, err
	}
	return res, nil
}

// run sequences the stages and aggregates their counts.
func (e *Engine) run(doc pagelift.Document) (*pagelift.ExtractionResult, error) {
	if doc == nil {
		return nil, pagelift.Errorf(pagelift.EINVALID, "nil document")
	}

	e.state = StateExtractingMetadata
	md := extractMetadata(doc)

	e.state = StateEnhancing
	var stats pagelift.Statistics
	if e.config.Links {
		stats.Links = enhanceLinks(doc, e.socialDomains())
	}
	if e.config.Headings {
		stats.Headings = enhanceHeadings(doc)
	}
	if e.config.Tables {
		stats.Tables = enhanceTables(doc)
	}
	if e.config.Generic {
		stats.Paragraphs = enhanceParagraphs(doc)
		stats.Images = enhanceImages(doc)
		markMainContent(doc)
	}
	if e.config.TreeWalk {
		ids := NewIDGenerator(pagelift.NodeIDPrefix)
		if _, err := ClassifyTree(doc, ids, e.config.Interaction); err != nil {
			return nil, err
		}
	}

	e.state = StateAggregating
	return &pagelift.ExtractionResult{
		Metadata:           md,
		Statistics:         stats,
		EnhancementApplied: true,
	}, nil
}

func (e *Engine) socialDomains() []string {
	if e.config.SocialDomains != nil {
		return e.config.SocialDomains
	}
	return pagelift.DefaultSocialDomains()
}

// errorText prefers the domain error message and falls back to the raw
// error string for non-application errors, so the embedded record always
// carries the failure's actual message.
func errorText(err error) string {
	var e *pagelift.Error
	if errors.As(err, &e) {
		return e.Message
	}
	return err.Error()
}
