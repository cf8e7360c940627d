package lsp

import (
	"fmt"
	"strings"

	"github.com/mattisb/chromat/internal/color"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// posInRange returns true if pos is within the range [r.Start, r.End).
// The end position is exclusive.
func posInRange(pos protocol.Position, r protocol.Range) bool {
	if pos.Line < r.Start.Line || pos.Line > r.End.Line {
		return false
	}
	if pos.Line == r.Start.Line && pos.Character < r.Start.Character {
		return false
	}
	if pos.Line == r.End.Line && pos.Character >= r.End.Character {
		return false
	}
	return true
}

// hoverMarkdown renders the hover card for a color: the literal as written,
// its rendition in each family, and its WCAG contrast against black and white.
func hoverMarkdown(cl ColorLocation) string {
	var sb strings.Builder

	fmt.Fprintf(&sb, "**%s**\n\n", cl.Text)

	var renditions []string
	for _, target := range presentationTargets {
		if text, ok := color.Format(cl.Color, target); ok {
			renditions = append(renditions, "`"+text+"`")
		}
	}
	sb.WriteString(strings.Join(renditions, " · "))

	black := color.RGB(0, 0, 0)
	white := color.RGB(255, 255, 255)
	fmt.Fprintf(&sb, "\n\ncontrast: %.2f:1 on black, %.2f:1 on white",
		color.ContrastRatio(cl.Color, black),
		color.ContrastRatio(cl.Color, white))

	return sb.String()
}

// hover produces a Hover response for the given cursor position, or nil if
// the position is not inside a color literal.
func hover(result *AnalysisResult, pos protocol.Position) *protocol.Hover {
	if result == nil {
		return nil
	}

	for _, cl := range result.Colors {
		if !posInRange(pos, cl.Range) {
			continue
		}

		return &protocol.Hover{
			Contents: protocol.MarkupContent{
				Kind:  protocol.MarkupKindMarkdown,
				Value: hoverMarkdown(cl),
			},
			Range: &cl.Range,
		}
	}

	return nil
}

// textDocumentHover handles textDocument/hover requests.
func (s *Server) textDocumentHover(_ *glsp.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok {
		return nil, nil
	}
	return hover(doc.Result, params.Position), nil
}
