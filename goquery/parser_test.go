package goquery_test

import (
	"testing"

	"github.com/fwojciec/headmeta"
	"github.com/fwojciec/headmeta/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Ensure Parser implements headmeta.HTMLParser at compile time.
var _ headmeta.HTMLParser = (*goquery.Parser)(nil)

func TestExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("extracts all head metadata", func(t *testing.T) {
		t.Parallel()

		html := `<!DOCTYPE html>
<html>
<head>
<title>Red Panda Facts</title>
<meta property="og:url" content="https://zoo.example.com/red-panda">
<meta property="og:site_name" content="City Zoo">
<meta property="og:description" content="Everything about red pandas">
<meta name="description" content="Plain description">
<meta name="keywords" content="panda,zoo,mammal">
<meta name="author" content="Jane Keeper">
</head>
<body><h1>Red Panda</h1></body>
</html>`

		m, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, headmeta.String("https://zoo.example.com/red-panda"), m.URL)
		assert.Equal(t, headmeta.String("City Zoo"), m.SiteName)
		assert.Equal(t, headmeta.String("Red Panda Facts"), m.Title)
		assert.Equal(t, headmeta.String("Everything about red pandas"), m.Description)
		assert.Equal(t, []string{"panda", "zoo", "mammal"}, m.Keywords)
		assert.Equal(t, headmeta.String("Jane Keeper"), m.Author)
	})

	t.Run("missing tags yield nil fields", func(t *testing.T) {
		t.Parallel()

		m, err := goquery.NewExtractor().Extract(`<html><head></head><body><p>hi</p></body></html>`)

		require.NoError(t, err)
		assert.Equal(t, &headmeta.Metadata{}, m)
	})

	t.Run("empty input yields nil fields", func(t *testing.T) {
		t.Parallel()

		m, err := goquery.NewExtractor().Extract("")

		require.NoError(t, err)
		assert.Equal(t, &headmeta.Metadata{}, m)
	})

	t.Run("empty tags yield empty values", func(t *testing.T) {
		t.Parallel()

		html := `<html><head>
<title></title>
<meta property="og:url">
<meta property="og:site_name" content="">
<meta name="description">
<meta name="keywords" content="">
<meta name="author">
</head></html>`

		m, err := goquery.NewExtractor().Extract(html)

		require.NoError(t, err)
		assert.Equal(t, headmeta.String(""), m.URL)
		assert.Equal(t, headmeta.String(""), m.SiteName)
		assert.Equal(t, headmeta.String(""), m.Title)
		assert.Equal(t, headmeta.String(""), m.Description)
		require.NotNil(t, m.Keywords)
		assert.Empty(t, m.Keywords)
		assert.Equal(t, headmeta.String(""), m.Author)
	})

	t.Run("keywords keep surrounding whitespace", func(t *testing.T) {
		t.Parallel()

		m, err := goquery.NewExtractor().Extract(`<meta name="keywords" content="a, b">`)

		require.NoError(t, err)
		assert.Equal(t, []string{"a", " b"}, m.Keywords)
	})

	t.Run("falls back to name description", func(t *testing.T) {
		t.Parallel()

		m, err := goquery.NewExtractor().Extract(`<head><meta name="description" content="Plain"></head>`)

		require.NoError(t, err)
		assert.Equal(t, headmeta.String("Plain"), m.Description)
	})

	t.Run("title text is decoded", func(t *testing.T) {
		t.Parallel()

		m, err := goquery.NewExtractor().Extract(`<title>Fish &amp; Chips</title>`)

		require.NoError(t, err)
		assert.Equal(t, headmeta.String("Fish & Chips"), m.Title)
	})

	t.Run("attribute values match exactly", func(t *testing.T) {
		t.Parallel()

		m, err := goquery.NewExtractor().Extract(`<meta name="Author" content="Ann"><meta name="author" content="Bob">`)

		require.NoError(t, err)
		assert.Equal(t, headmeta.String("Bob"), m.Author)
	})

	t.Run("tolerates unclosed markup", func(t *testing.T) {
		t.Parallel()

		m, err := goquery.NewExtractor().Extract(`<html><head><title>Broken<meta name="author" content="Ann"`)

		require.NoError(t, err)
		assert.NotNil(t, m.Title)
	})
}

func TestParser_Parse(t *testing.T) {
	t.Parallel()

	t.Run("first returns nil for absent tag", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewParser().Parse(`<p>text</p>`)

		require.NoError(t, err)
		assert.Nil(t, doc.First("title"))
	})

	t.Run("first with attr returns attributes", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewParser().Parse(`<meta property="og:url" content="https://example.com" data-x="1">`)

		require.NoError(t, err)
		el := doc.FirstWithAttr("meta", "property", "og:url")
		require.NotNil(t, el)
		v, ok := el.Attr("content")
		assert.True(t, ok)
		assert.Equal(t, "https://example.com", v)
		_, ok = el.Attr("missing")
		assert.False(t, ok)
	})

	t.Run("ignores non-meta elements carrying the attribute", func(t *testing.T) {
		t.Parallel()

		doc, err := goquery.NewParser().Parse(`<div property="og:url" content="x"></div>`)

		require.NoError(t, err)
		assert.Nil(t, doc.FirstWithAttr("meta", "property", "og:url"))
	})
}
