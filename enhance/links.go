package enhance

import (
	"net/url"
	"strings"

	"github.com/pagelift/pagelift"
)

// enhanceLinks classifies every href-bearing anchor as internal, external or
// social, attaches the link-type attribute and a type-specific class, and
// returns the number of anchors classified. Anchors without an href are
// matched but neither mutated nor counted.
func enhanceLinks(doc pagelift.Document, socialDomains []string) int {
	base, err := url.Parse(doc.Location())
	if err != nil {
		base = nil
	}

	count := 0
	for _, a := range doc.Find("a") {
		href, ok := a.Attr("href")
		if !ok || href == "" {
			continue
		}

		linkType, platform := classifyHref(base, href, socialDomains)
		a.SetAttr(pagelift.AttrLinkType, string(linkType))
		a.AddClass(pagelift.ClassLinkPrefix + string(linkType))
		if platform != "" {
			a.SetAttr(pagelift.AttrLinkPlatform, platform)
		}
		count++
	}
	return count
}

// classifyHref resolves href against the page location and classifies the
// destination. Parse failures are recoverable and resolve to internal
// without propagating. A resolved hostname that is empty or equal to the
// page hostname is internal; anything else is external, reclassified as
// social on the first ordered social-domain containment match.
func classifyHref(base *url.URL, href string, socialDomains []string) (pagelift.LinkType, string) {
	ref, err := url.Parse(href)
	if err != nil {
		return pagelift.LinkInternal, ""
	}

	resolved := ref
	if base != nil {
		resolved = base.ResolveReference(ref)
	}

	host := resolved.Hostname()
	if host == "" {
		return pagelift.LinkInternal, ""
	}
	if base != nil && host == base.Hostname() {
		return pagelift.LinkInternal, ""
	}

	// List order is the tie-break: a hostname containing several listed
	// domains takes the first match, not the earliest in the string.
	for _, domain := range socialDomains {
		if strings.Contains(host, domain) {
			return pagelift.LinkSocial, pagelift.PlatformLabel(domain)
		}
	}

	return pagelift.LinkExternal, ""
}
