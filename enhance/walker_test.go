package enhance_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/pagelift/pagelift"
	"github.com/pagelift/pagelift/enhance"
	"github.com/pagelift/pagelift/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClassifyTree_LinksAndInteractive(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, `<html><body>
		<button onclick="go()">go</button>
		<a href="/docs">docs</a>
		<a>no href</a>
		<span>plain</span>
	</body></html>`, "https://example.com/")

	ids := enhance.NewIDGenerator(pagelift.NodeIDPrefix)
	classified, err := enhance.ClassifyTree(doc, ids, goquery.HasInlineHandler)
	require.NoError(t, err)
	assert.Equal(t, 2, classified)

	buttons := doc.Find("button")
	require.Len(t, buttons, 1)
	kind, _ := buttons[0].Attr(pagelift.AttrNodeClass)
	assert.Equal(t, "interactive", kind)

	anchors := doc.Find("a")
	require.Len(t, anchors, 2)
	kind, _ = anchors[0].Attr(pagelift.AttrNodeClass)
	assert.Equal(t, "link", kind)

	// The bare anchor and the span stay unclassified.
	_, ok := anchors[1].Attr(pagelift.AttrNodeClass)
	assert.False(t, ok)
	_, ok = doc.Find("span")[0].Attr(pagelift.AttrNodeClass)
	assert.False(t, ok)
}

func TestClassifyTree_InteractiveWinsOverLink(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, `<html><body><a href="/x" onclick="go()">x</a></body></html>`,
		"https://example.com/")

	ids := enhance.NewIDGenerator(pagelift.NodeIDPrefix)
	_, err := enhance.ClassifyTree(doc, ids, goquery.HasInlineHandler)
	require.NoError(t, err)

	kind, _ := doc.Find("a")[0].Attr(pagelift.AttrNodeClass)
	assert.Equal(t, "interactive", kind)
}

func TestClassifyTree_SkipSubtreePruned(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, `<html><body>
		<svg onclick="go()"><path onclick="go()"></path></svg>
		<template><a href="/hidden">hidden</a></template>
		<a href="/visible">visible</a>
	</body></html>`, "https://example.com/")

	ids := enhance.NewIDGenerator(pagelift.NodeIDPrefix)
	classified, err := enhance.ClassifyTree(doc, ids, goquery.HasInlineHandler)
	require.NoError(t, err)
	assert.Equal(t, 1, classified)

	// Nothing inside a skipped subtree carries a classification or id.
	for _, n := range doc.Find("svg, svg *, path") {
		_, ok := n.Attr(pagelift.AttrNodeClass)
		assert.False(t, ok)
		_, ok = n.Attr(pagelift.AttrNodeID)
		assert.False(t, ok)
	}

	kind, _ := doc.Find(`a[href="/visible"]`)[0].Attr(pagelift.AttrNodeClass)
	assert.Equal(t, "link", kind)
}

func TestClassifyTree_IdentifiersStrictlyIncreasing(t *testing.T) {
	t.Parallel()

	doc := parseDoc(t, `<html><body>
		<a href="/a">a</a><a href="/b">b</a><a href="/c">c</a>
		<button onclick="go()">go</button>
	</body></html>`, "https://example.com/")

	ids := enhance.NewIDGenerator(pagelift.NodeIDPrefix)
	classified, err := enhance.ClassifyTree(doc, ids, goquery.HasInlineHandler)
	require.NoError(t, err)
	assert.Equal(t, 4, classified)
	assert.Equal(t, 4, ids.Count())

	seen := make(map[string]bool)
	prev := 0
	for _, n := range doc.Find("[" + pagelift.AttrNodeID + "]") {
		id, _ := n.Attr(pagelift.AttrNodeID)
		require.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true

		num, err := strconv.Atoi(strings.TrimPrefix(id, pagelift.NodeIDPrefix))
		require.NoError(t, err)
		assert.Greater(t, num, prev)
		prev = num
	}
	assert.Len(t, seen, 4)
}

func TestClassifyTree_NoBody(t *testing.T) {
	t.Parallel()

	doc := &bodylessDocument{}
	ids := enhance.NewIDGenerator(pagelift.NodeIDPrefix)
	_, err := enhance.ClassifyTree(doc, ids, nil)
	require.Error(t, err)
	assert.Equal(t, pagelift.EINVALID, pagelift.ErrorCode(err))
}

// bodylessDocument is a minimal Document with no body.
type bodylessDocument struct{}

func (d *bodylessDocument) Find(string) []pagelift.Node       { return nil }
func (d *bodylessDocument) Body() pagelift.Node               { return nil }
func (d *bodylessDocument) Root() pagelift.Node               { return nil }
func (d *bodylessDocument) Title() string                     { return "" }
func (d *bodylessDocument) Location() string                  { return "" }
func (d *bodylessDocument) CreateElement(string) pagelift.Node { return nil }
func (d *bodylessDocument) HTML() (string, error)             { return "", nil }
