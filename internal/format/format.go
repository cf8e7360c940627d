// Package format finds and rewrites color literals in arbitrary text, such
// as CSS or config files. It recognizes hex literals and functional notation;
// named keywords are deliberately not scanned for, since bare words like
// "red" are too ambiguous in running text.
package format

import (
	"regexp"
	"strings"

	"github.com/mattisb/chromat/internal/color"
)

// colorLiteral matches hex literal and functional notation candidates. Each
// candidate is validated by the color parser before it counts as a match.
var colorLiteral = regexp.MustCompile(`#[0-9a-fA-F]+|(?i:\b(?:rgba?|hsla?|oklcha?)\([^()]*\))`)

// Match is a validated color literal found in a document.
type Match struct {
	Start, End int // byte offsets into the content
	Line, Col  int // 0-based position of Start; literals never span lines
	Text       string
	Color      color.Color
}

// Invalid is a color-shaped literal that failed to parse.
type Invalid struct {
	Start, End int
	Line, Col  int
	Text       string
	Err        error
}

// Scan finds every color literal in the content, returning validated matches
// and color-shaped tokens that failed to parse (useful for diagnostics).
func Scan(content string) ([]Match, []Invalid) {
	var matches []Match
	var invalids []Invalid

	line, lineStart := 0, 0
	locs := colorLiteral.FindAllStringIndex(content, -1)
	for _, loc := range locs {
		start, end := loc[0], loc[1]

		// Advance the line counter to the match position.
		for {
			nl := strings.IndexByte(content[lineStart:], '\n')
			if nl < 0 || lineStart+nl >= start {
				break
			}
			lineStart += nl + 1
			line++
		}

		text := content[start:end]
		c, err := color.Parse(text)
		if err != nil {
			invalids = append(invalids, Invalid{
				Start: start, End: end,
				Line: line, Col: start - lineStart,
				Text: text, Err: err,
			})
			continue
		}

		matches = append(matches, Match{
			Start: start, End: end,
			Line: line, Col: start - lineStart,
			Text: text, Color: c,
		})
	}

	return matches, invalids
}

// FindAll returns the validated color literals in the content.
func FindAll(content string) []Match {
	matches, _ := Scan(content)
	return matches
}

// Rewrite renders every color literal in the content in the target family
// and returns the rewritten content plus the number of literals that
// changed. Literals the target cannot represent (short-hex compaction on
// non-compactible channels) and literals that fail to parse are left as
// they are.
func Rewrite(content string, target color.Target, opts color.Options) (string, int) {
	matches := FindAll(content)
	if len(matches) == 0 {
		return content, 0
	}

	var sb strings.Builder
	sb.Grow(len(content))

	changed := 0
	prev := 0
	for _, m := range matches {
		sb.WriteString(content[prev:m.Start])

		out, ok := color.FormatWith(m.Color, target, opts)
		if !ok {
			out = m.Text
		} else if out != m.Text {
			changed++
		}
		sb.WriteString(out)

		prev = m.End
	}
	sb.WriteString(content[prev:])

	return sb.String(), changed
}
