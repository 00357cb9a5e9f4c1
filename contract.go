package pagelift

// Attribute contract. All engine-to-host communication beyond the embedded
// data nodes happens through these attribute and class names, one family per
// enhancer, plus a single root-level attribute signaling overall status.
const (
	// Tree-walk classification family.
	AttrNodeID    = "data-pl-id"
	AttrNodeClass = "data-pl-class"

	// Link enhancer family.
	AttrLinkType     = "data-pl-link-type"
	AttrLinkPlatform = "data-pl-platform"

	// Structural enhancer families. AttrIndex carries the element's
	// positional index within its own element type.
	AttrLevel = "data-pl-level"
	AttrIndex = "data-pl-index"

	// Root-level enhancement status flag.
	AttrEnhanced = "data-pl-enhanced"
)

// Class name contract.
const (
	ClassLinkPrefix         = "pl-link-" // + internal|external|social
	ClassHeading            = "pl-heading"
	ClassHeadingLevelPrefix = "pl-heading-l" // + 1..6
	ClassTable              = "pl-table"
	ClassParagraph          = "pl-paragraph"
	ClassImage              = "pl-image"
	ClassMainContent        = "pl-main-content"
	ClassVisuallyHidden     = "pl-visually-hidden"
)

// Fixed identifiers of the embedded data nodes the host reads back after an
// engine run, and the prefixes used for synthesized element identifiers.
const (
	ResultNodeID = "pl-extraction-result"
	ErrorNodeID  = "pl-extraction-error"

	NodeIDPrefix    = "pl-node-"
	HeadingIDPrefix = "heading-"
)
