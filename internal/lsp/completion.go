package lsp

import (
	"strings"

	"github.com/mattisb/chromat/internal/color"
	"github.com/tliron/glsp"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

// wordBeforeCursor extracts the trailing run of letters on the cursor's line.
// Returns "" when the cursor is not positioned after a partial word.
func wordBeforeCursor(content string, pos protocol.Position) string {
	lines := strings.Split(content, "\n")
	if int(pos.Line) >= len(lines) {
		return ""
	}

	line := lines[pos.Line]
	charPos := min(int(pos.Character), len(line))
	before := line[:charPos]

	end := len(before)
	start := end
	for start > 0 {
		ch := before[start-1]
		if (ch < 'a' || ch > 'z') && (ch < 'A' || ch > 'Z') {
			break
		}
		start--
	}

	return before[start:end]
}

// complete offers CSS color keyword completions matching the partial word at
// the cursor. This is the core logic, decoupled from the LSP protocol handler
// for testability.
func complete(content string, pos protocol.Position) []protocol.CompletionItem {
	prefix := strings.ToLower(wordBeforeCursor(content, pos))
	if prefix == "" {
		return nil
	}

	kind := protocol.CompletionItemKindColor

	var items []protocol.CompletionItem
	for _, name := range color.Names() {
		if !strings.HasPrefix(name, prefix) {
			continue
		}

		c, err := color.Parse(name)
		if err != nil {
			continue
		}
		hex, _ := color.Format(c, color.TargetHex)

		items = append(items, protocol.CompletionItem{
			Label:  name,
			Kind:   &kind,
			Detail: strPtr(hex),
		})
	}

	return items
}

// textDocumentCompletion handles textDocument/completion requests.
func (s *Server) textDocumentCompletion(_ *glsp.Context, params *protocol.CompletionParams) (any, error) {
	doc, ok := s.docs.Get(string(params.TextDocument.URI))
	if !ok {
		return nil, nil
	}

	items := complete(doc.Content, params.Position)
	return items, nil
}
