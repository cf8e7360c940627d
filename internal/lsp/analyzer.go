package lsp

import (
	"fmt"

	"github.com/mattisb/chromat/internal/color"
	"github.com/mattisb/chromat/internal/format"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

var (
	DiagError   = protocol.DiagnosticSeverityError
	DiagWarning = protocol.DiagnosticSeverityWarning
)

// AnalysisResult holds all information produced by scanning a document for
// color literals.
type AnalysisResult struct {
	Diagnostics []protocol.Diagnostic
	Colors      []ColorLocation
}

// ColorLocation records a parsed color literal at a specific source position.
type ColorLocation struct {
	Range protocol.Range
	Text  string
	Color color.Color
}

// matchRange converts a scanner match position to an LSP range. Color
// literals never span lines, so the range stays on the match's line.
func matchRange(line, col, length int) protocol.Range {
	return protocol.Range{
		Start: protocol.Position{Line: uint32(line), Character: uint32(col)},
		End:   protocol.Position{Line: uint32(line), Character: uint32(col + length)},
	}
}

// Analyze scans document content for color literals and produces color
// locations plus diagnostics for color-shaped tokens that failed to parse.
func Analyze(content string) *AnalysisResult {
	result := &AnalysisResult{}

	matches, invalids := format.Scan(content)

	for _, m := range matches {
		result.Colors = append(result.Colors, ColorLocation{
			Range: matchRange(m.Line, m.Col, len(m.Text)),
			Text:  m.Text,
			Color: m.Color,
		})
	}

	for _, inv := range invalids {
		result.Diagnostics = append(result.Diagnostics, protocol.Diagnostic{
			Range:    matchRange(inv.Line, inv.Col, len(inv.Text)),
			Severity: &DiagError,
			Source:   strPtr("chromat"),
			Message:  fmt.Sprintf("invalid color literal %q: %s", inv.Text, inv.Err),
		})
	}

	return result
}

func strPtr(s string) *string {
	return &s
}
