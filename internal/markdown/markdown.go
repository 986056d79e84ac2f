package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"mfuertes.net/portfolio/internal/content"
)

// options represents configuration options for rendering
type options struct {
	minLevel int
	maxLevel int
}

// Option is a function that configures options
type Option func(*options)

// WithHeadingLevels sets the inclusive range of heading levels collected into
// the document outline.
func WithHeadingLevels(lo, hi int) Option {
	return func(o *options) {
		o.minLevel = lo
		o.maxLevel = hi
	}
}

var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithParserOptions(parser.WithAutoHeadingID()),
)

// Render converts a markdown body into HTML and collects its h2/h3 outline.
func Render(src []byte, opts ...Option) (*content.Document, error) {
	options := &options{minLevel: 2, maxLevel: 3}
	for _, opt := range opts {
		opt(options)
	}

	root := md.Parser().Parse(text.NewReader(src))

	var headings []content.Heading
	err := ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		n, ok := node.(*ast.Heading)
		if !ok || n.Level < options.minLevel || n.Level > options.maxLevel {
			return ast.WalkContinue, nil
		}
		headingText, err := DecodeTextFromNode(n, src)
		if err != nil {
			return ast.WalkStop, fmt.Errorf("failed to decode heading text: %v", err)
		}
		headingText = strings.TrimSpace(headingText)
		if headingText == "" {
			return ast.WalkSkipChildren, nil
		}
		var id string
		if v, ok := n.AttributeString("id"); ok {
			if b, ok := v.([]byte); ok {
				id = string(b)
			}
		}
		headings = append(headings, content.Heading{ID: id, Text: headingText, Level: n.Level})
		return ast.WalkSkipChildren, nil
	})
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	if err := md.Renderer().Render(&buf, src, root); err != nil {
		return nil, fmt.Errorf("failed to render markdown: %w", err)
	}
	return &content.Document{HTML: buf.String(), Headings: headings}, nil
}

// DecodeTextFromNode extracts text content from an AST node
func DecodeTextFromNode(node ast.Node, src []byte) (string, error) {
	var text strings.Builder
	err := ast.Walk(node, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		switch t := n.(type) {
		case *ast.Text:
			text.Write(t.Segment.Value(src))
			if t.SoftLineBreak() || t.HardLineBreak() {
				text.WriteByte(' ')
			}
		case *ast.String:
			text.Write(t.Value)
		}
		return ast.WalkContinue, nil
	})
	if err != nil {
		return "", err
	}
	return text.String(), nil
}
