// Package pagelift provides an HTML document-enhancement engine. It runs a
// single deterministic pass over a loaded document tree, classifies
// interactive and link-bearing nodes, enriches headings, tables, images and
// paragraphs with structural metadata, extracts page-level metadata, and
// embeds a structured extraction record back into the document.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, rod/, sqlite/); the engine
// itself lives in enhance/.
package pagelift
