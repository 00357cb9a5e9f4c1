package goquery_test

import (
	"testing"

	"github.com/pagelift/pagelift"
	"github.com/pagelift/pagelift/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_Basics(t *testing.T) {
	t.Parallel()

	doc, err := goquery.Parse(`<html><head><title> Hi </title></head><body><p>x</p></body></html>`,
		"https://example.com/page")
	require.NoError(t, err)

	assert.Equal(t, "Hi", doc.Title())
	assert.Equal(t, "https://example.com/page", doc.Location())
	require.NotNil(t, doc.Body())
	assert.Equal(t, "body", doc.Body().Tag())
	assert.Equal(t, "html", doc.Root().Tag())
}

func TestParse_NoTitle(t *testing.T) {
	t.Parallel()

	doc, err := goquery.Parse(`<html><body></body></html>`, "https://example.com/")
	require.NoError(t, err)
	assert.Equal(t, "", doc.Title())
}

func TestDocument_Find_DocumentOrder(t *testing.T) {
	t.Parallel()

	doc, err := goquery.Parse(`<html><body><p id="a">1</p><div><p id="b">2</p></div><p id="c">3</p></body></html>`,
		"https://example.com/")
	require.NoError(t, err)

	var ids []string
	for _, p := range doc.Find("p") {
		id, _ := p.Attr("id")
		ids = append(ids, id)
	}
	assert.Equal(t, []string{"a", "b", "c"}, ids)
}

func TestNode_Attributes(t *testing.T) {
	t.Parallel()

	doc, err := goquery.Parse(`<html><body><a href="/x" class="one">x</a></body></html>`,
		"https://example.com/")
	require.NoError(t, err)

	a := doc.Find("a")[0]

	href, ok := a.Attr("href")
	require.True(t, ok)
	assert.Equal(t, "/x", href)

	_, ok = a.Attr("missing")
	assert.False(t, ok)

	a.SetAttr("href", "/y")
	href, _ = a.Attr("href")
	assert.Equal(t, "/y", href)

	a.SetAttr("data-new", "v")
	v, _ := a.Attr("data-new")
	assert.Equal(t, "v", v)
}

func TestNode_AddClass(t *testing.T) {
	t.Parallel()

	doc, err := goquery.Parse(`<html><body><p class="one">x</p></body></html>`,
		"https://example.com/")
	require.NoError(t, err)

	p := doc.Find("p")[0]
	p.AddClass("two", "one", "three")

	class, _ := p.Attr("class")
	assert.Equal(t, "one two three", class)
}

func TestNode_ChildrenSkipsTextNodes(t *testing.T) {
	t.Parallel()

	doc, err := goquery.Parse(`<html><body><div>text<span>a</span>more<em>b</em></div></body></html>`,
		"https://example.com/")
	require.NoError(t, err)

	children := doc.Find("div")[0].Children()
	require.Len(t, children, 2)
	assert.Equal(t, "span", children[0].Tag())
	assert.Equal(t, "em", children[1].Tag())
}

func TestNode_SubtreeFind(t *testing.T) {
	t.Parallel()

	doc, err := goquery.Parse(`<html><body>
		<table id="t1"><caption>c</caption></table>
		<table id="t2"></table>
	</body></html>`, "https://example.com/")
	require.NoError(t, err)

	tables := doc.Find("table")
	require.Len(t, tables, 2)
	assert.Len(t, tables[0].Find("caption"), 1)
	assert.Empty(t, tables[1].Find("caption"))
}

func TestNode_PrependAndAppendChild(t *testing.T) {
	t.Parallel()

	doc, err := goquery.Parse(`<html><body><div><span>old</span></div></body></html>`,
		"https://example.com/")
	require.NoError(t, err)

	div := doc.Find("div")[0]

	first := doc.CreateElement("em")
	first.SetText("first")
	div.PrependChild(first)

	last := doc.CreateElement("strong")
	last.SetText("last")
	div.AppendChild(last)

	children := div.Children()
	require.Len(t, children, 3)
	assert.Equal(t, "em", children[0].Tag())
	assert.Equal(t, "span", children[1].Tag())
	assert.Equal(t, "strong", children[2].Tag())
}

func TestNode_SetText(t *testing.T) {
	t.Parallel()

	doc, err := goquery.Parse(`<html><body><p><span>nested</span>tail</p></body></html>`,
		"https://example.com/")
	require.NoError(t, err)

	p := doc.Find("p")[0]
	p.SetText("replaced")

	assert.Equal(t, "replaced", p.Text())
	assert.Empty(t, p.Children())
}

func TestDocument_HTML_ReflectsMutations(t *testing.T) {
	t.Parallel()

	doc, err := goquery.Parse(`<html><body><p>x</p></body></html>`, "https://example.com/")
	require.NoError(t, err)

	doc.Find("p")[0].SetAttr("data-marker", "yes")

	out, err := doc.HTML()
	require.NoError(t, err)
	assert.Contains(t, out, `data-marker="yes"`)
}

func TestScope(t *testing.T) {
	t.Parallel()

	html := `<html><body><nav>menu</nav><main><p>content</p></main></body></html>`

	scoped, err := goquery.Scope(html, "main")
	require.NoError(t, err)
	assert.Contains(t, scoped, "<p>content</p>")
	assert.NotContains(t, scoped, "<nav>")

	_, err = goquery.Scope(html, "#missing")
	require.Error(t, err)
	assert.Equal(t, pagelift.ENOTFOUND, pagelift.ErrorCode(err))
}

func TestHasInlineHandler(t *testing.T) {
	t.Parallel()

	doc, err := goquery.Parse(`<html><body>
		<button onclick="go()">a</button>
		<input onchange="">
		<a href="/x">b</a>
	</body></html>`, "https://example.com/")
	require.NoError(t, err)

	assert.True(t, goquery.HasInlineHandler(doc.Find("button")[0]))
	// Empty handler values do not count.
	assert.False(t, goquery.HasInlineHandler(doc.Find("input")[0]))
	assert.False(t, goquery.HasInlineHandler(doc.Find("a")[0]))
}
