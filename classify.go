package pagelift

import "strings"

// NodeClass identifies the classification assigned to a node by the
// tree-walk mechanism. It is orthogonal to the structural enrichment
// applied by the selector-based enhancers; both may be attached to the
// same node.
type NodeClass string

// Tree-walk node classifications.
const (
	ClassInteractive NodeClass = "interactive"
	ClassLink        NodeClass = "link"
)

// LinkType classifies an anchor's destination relative to the current page.
type LinkType string

// Link types. LinkSocial implies an external destination.
const (
	LinkInternal LinkType = "internal"
	LinkExternal LinkType = "external"
	LinkSocial   LinkType = "social"
)

// DefaultSocialDomains is the ordered list of known social-platform domains.
// Hostname containment is tested in list order and the first match wins, so
// earlier entries take precedence over later ones.
func DefaultSocialDomains() []string {
	return []string{
		"twitter.com",
		"x.com",
		"facebook.com",
		"instagram.com",
		"linkedin.com",
		"youtube.com",
		"tiktok.com",
		"pinterest.com",
		"reddit.com",
		"github.com",
	}
}

// PlatformLabel derives the platform label from a social domain's leading
// segment, e.g. "twitter.com" -> "twitter".
func PlatformLabel(domain string) string {
	if i := strings.IndexByte(domain, '.'); i > 0 {
		return domain[:i]
	}
	return domain
}
