package lsp

import (
	"math"

	"github.com/mattisb/chromat/internal/color"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// colorToLSP converts an internal color.Color (uint8 RGB, float64 alpha) to a
// protocol.Color (float32 0.0-1.0).
func colorToLSP(c color.Color) protocol.Color {
	return protocol.Color{
		Red:   float32(c.R) / 255.0,
		Green: float32(c.G) / 255.0,
		Blue:  float32(c.B) / 255.0,
		Alpha: float32(c.A),
	}
}

// colorFromLSP converts a protocol.Color back to an internal color. The
// family is left unknown; callers graft the original literal's style when
// they know it.
func colorFromLSP(p protocol.Color) color.Color {
	round := func(v float32) uint8 {
		return uint8(math.Round(math.Min(math.Max(float64(v), 0), 1) * 255))
	}
	return color.Color{
		R: round(p.Red),
		G: round(p.Green),
		B: round(p.Blue),
		A: math.Min(math.Max(float64(p.Alpha), 0), 1),
	}
}

// documentColors converts the analysis result's color locations into LSP
// ColorInformation items.
func documentColors(result *AnalysisResult) []protocol.ColorInformation {
	if result == nil {
		return []protocol.ColorInformation{}
	}

	infos := make([]protocol.ColorInformation, 0, len(result.Colors))
	for _, cl := range result.Colors {
		infos = append(infos, protocol.ColorInformation{
			Range: cl.Range,
			Color: colorToLSP(cl.Color),
		})
	}
	return infos
}

// presentationTargets are the families offered for every color, after the
// style-preserving rendition.
var presentationTargets = []color.Target{
	color.TargetHex,
	color.TargetRGB,
	color.TargetHSL,
	color.TargetOKLCH,
}

// colorPresentation produces presentation options for the (possibly
// picker-adjusted) color at the given range. The first option renders the new
// color in the original literal's notation; the rest offer each family
// explicitly.
func colorPresentation(doc *Document, params *protocol.ColorPresentationParams) []protocol.ColorPresentation {
	c := colorFromLSP(params.Color)

	// Carry the original literal's family and style hints so the default
	// presentation keeps the author's notation.
	for _, cl := range doc.Result.Colors {
		if cl.Range == params.Range {
			c.Family = cl.Color.Family
			c.Hints = cl.Color.Hints
			break
		}
	}

	var presentations []protocol.ColorPresentation
	seen := make(map[string]bool)

	targets := append([]color.Target{color.TargetAuto}, presentationTargets...)
	for _, target := range targets {
		text, ok := color.Format(c, target)
		if !ok || seen[text] {
			continue
		}
		seen[text] = true

		presentations = append(presentations, protocol.ColorPresentation{
			Label: text,
			TextEdit: &protocol.TextEdit{
				Range:   params.Range,
				NewText: text,
			},
		})
	}

	return presentations
}

// textDocumentDocumentColor handles textDocument/documentColor requests.
func (s *Server) textDocumentDocumentColor(_ *glsp.Context, params *protocol.DocumentColorParams) ([]protocol.ColorInformation, error) {
	doc, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok {
		return []protocol.ColorInformation{}, nil
	}
	return documentColors(doc.Result), nil
}

// textDocumentColorPresentation handles textDocument/colorPresentation requests.
func (s *Server) textDocumentColorPresentation(_ *glsp.Context, params *protocol.ColorPresentationParams) ([]protocol.ColorPresentation, error) {
	doc, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok {
		return []protocol.ColorPresentation{}, nil
	}
	return colorPresentation(doc, params), nil
}
