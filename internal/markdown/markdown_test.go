package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const readme = `# Project

Intro paragraph.

## Getting Started

Install it.

### With ` + "`go install`" + `

Run the thing.

#### Deep heading

## FAQ
`

func TestRenderCollectsH2AndH3(t *testing.T) {
	doc, err := Render([]byte(readme))
	require.NoError(t, err)

	require.Len(t, doc.Headings, 3)
	assert.Equal(t, "Getting Started", doc.Headings[0].Text)
	assert.Equal(t, 2, doc.Headings[0].Level)
	assert.Equal(t, "getting-started", doc.Headings[0].ID)
	assert.Equal(t, "With go install", doc.Headings[1].Text)
	assert.Equal(t, 3, doc.Headings[1].Level)
	assert.Equal(t, "FAQ", doc.Headings[2].Text)

	assert.Contains(t, doc.HTML, `<h2 id="getting-started">Getting Started</h2>`)
	assert.Contains(t, doc.HTML, "<p>Intro paragraph.</p>")
}

func TestRenderHeadingLevels(t *testing.T) {
	doc, err := Render([]byte(readme), WithHeadingLevels(1, 1))
	require.NoError(t, err)
	require.Len(t, doc.Headings, 1)
	assert.Equal(t, "Project", doc.Headings[0].Text)
}

func TestRenderEmpty(t *testing.T) {
	doc, err := Render(nil)
	require.NoError(t, err)
	assert.Empty(t, doc.Headings)
	assert.Equal(t, "", doc.HTML)
}

func TestRenderGFMTable(t *testing.T) {
	doc, err := Render([]byte("| a | b |\n|---|---|\n| 1 | 2 |\n"))
	require.NoError(t, err)
	assert.Contains(t, doc.HTML, "<table>")
}
