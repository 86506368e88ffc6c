// Package markdown renders free-text subscriber notes into safe HTML.
package markdown

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/microcosm-cc/bluemonday"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// Renderer converts markdown to sanitized HTML.
type Renderer interface {
	Render(markdown string) (string, error)
}

type notesRenderer struct {
	md     goldmark.Markdown
	policy *bluemonday.Policy
}

// NewNotesRenderer builds a GFM renderer whose output passes through a UGC policy.
// Raw HTML in the input is never trusted.
func NewNotesRenderer() Renderer {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Linkify,
		),
		goldmark.WithRendererOptions(
			html.WithHardWraps(),
			html.WithXHTML(),
		),
	)

	policy := bluemonday.UGCPolicy()
	policy.RequireNoFollowOnLinks(true)
	policy.AddTargetBlankToFullyQualifiedLinks(true)

	return &notesRenderer{
		md:     md,
		policy: policy,
	}
}

func (r *notesRenderer) Render(markdown string) (string, error) {
	if strings.TrimSpace(markdown) == "" {
		return "", nil
	}
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(markdown), &buf); err != nil {
		return "", fmt.Errorf("failed to convert notes to HTML: %w", err)
	}
	return r.policy.Sanitize(buf.String()), nil
}
