package enhance

import "strconv"

// IDGenerator produces a strictly increasing sequence of prefixed
// identifiers. The counter is explicit state owned by the caller: it is
// local to one engine run and not stable across separate invocations on
// the same or a reloaded document.
type IDGenerator struct {
	prefix string
	next   int
}

// NewIDGenerator creates a generator whose identifiers start at <prefix>1.
func NewIDGenerator(prefix string) *IDGenerator {
	return &IDGenerator{prefix: prefix, next: 1}
}

// Next returns a fresh identifier and advances the counter.
func (g *IDGenerator) Next() string {
	id := g.prefix + strconv.Itoa(g.next)
	g.next++
	return id
}

// Count returns the number of identifiers issued so far.
func (g *IDGenerator) Count() int {
	return g.next - 1
}
