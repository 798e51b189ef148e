package extract

import (
	"regexp"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/text"
)

// Parse extracts every fenced code block from a Markdown document.
// Blocks are returned in source order. Parsing never fails: malformed
// Markdown degrades per block (an unterminated fence yields a block flagged
// Unterminated whose content runs to end of file).
func Parse(source []byte) []Block {
	parser := goldmark.DefaultParser()
	root := parser.Parse(text.NewReader(source)).OwnerDocument()

	index := newLineIndex(source)
	srcLines := splitLines(source)

	var blocks []Block

	_ = ast.Walk(root, func(node ast.Node, entering bool) (ast.WalkStatus, error) {
		if entering || node.Kind() != ast.KindFencedCodeBlock {
			return ast.WalkContinue, nil
		}
		fcb, ok := node.(*ast.FencedCodeBlock)
		if !ok {
			return ast.WalkContinue, nil
		}

		blocks = append(blocks, extractBlock(fcb, source, index, srcLines))

		return ast.WalkContinue, nil
	})

	return blocks
}

func extractBlock(fcb *ast.FencedCodeBlock, source []byte, index lineIndex, srcLines []string) Block {
	var block Block

	if fcb.Info != nil {
		block.Info = strings.TrimSpace(string(fcb.Info.Segment.Value(source)))
	}
	if lang := fcb.Language(source); lang != nil {
		block.Lang = strings.ToLower(string(lang))
	}

	lines := fcb.Lines()
	block.Lines = make([]string, 0, lines.Len())
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		block.Lines = append(block.Lines, trimLineEnding(string(seg.Value(source))))
	}

	openLine := 0
	switch {
	case lines.Len() > 0:
		block.StartLine = index.lineAt(lines.At(0).Start)
		block.EndLine = index.lineAt(lines.At(lines.Len() - 1).Start)
		openLine = block.StartLine - 1
	case fcb.Info != nil:
		openLine = index.lineAt(fcb.Info.Segment.Start)
		block.StartLine = openLine + 1
		block.EndLine = openLine
	default:
		// Empty block with no info string: goldmark records no position
		// at all. Content is empty, so remapping never happens.
		block.StartLine = 1
		block.EndLine = 0
	}

	block.Unterminated = isUnterminated(block, openLine, srcLines)

	return block
}

// Indentation is deliberately unbounded here: a fence inside a list item or
// blockquote sits deeper than the 3 spaces CommonMark allows at top level,
// and goldmark has already decided what is a block. These only classify the
// lines around content goldmark attributed to the block.
var (
	reOpenFence  = regexp.MustCompile("^[ \t>]*(`{3,}|~{3,})")
	reCloseFence = regexp.MustCompile("^[ \t>]*(`{3,}|~{3,})[ \t]*$")
)

// isUnterminated checks whether the line after the block's last content line
// is a closing fence matching the opening fence's character and length.
func isUnterminated(block Block, openLine int, srcLines []string) bool {
	if openLine < 1 || openLine > len(srcLines) {
		return false
	}

	open := reOpenFence.FindStringSubmatch(srcLines[openLine-1])
	if open == nil {
		return false
	}
	marker := open[1]

	closeLine := block.EndLine + 1
	if closeLine > len(srcLines) {
		return true
	}

	m := reCloseFence.FindStringSubmatch(srcLines[closeLine-1])
	if m == nil {
		return true
	}

	return m[1][0] != marker[0] || len(m[1]) < len(marker)
}

func trimLineEnding(s string) string {
	s = strings.TrimSuffix(s, "\n")
	return strings.TrimSuffix(s, "\r")
}

func splitLines(source []byte) []string {
	if len(source) == 0 {
		return nil
	}
	raw := strings.Split(string(source), "\n")
	// A trailing newline produces one empty phantom entry, not a line.
	if raw[len(raw)-1] == "" {
		raw = raw[:len(raw)-1]
	}
	for i, line := range raw {
		raw[i] = strings.TrimSuffix(line, "\r")
	}
	return raw
}

// lineIndex maps byte offsets to 1-based line numbers.
type lineIndex []int

func newLineIndex(source []byte) lineIndex {
	starts := []int{0}
	for i, b := range source {
		if b == '\n' && i+1 < len(source) {
			starts = append(starts, i+1)
		}
	}
	return starts
}

func (x lineIndex) lineAt(offset int) int {
	return sort.Search(len(x), func(i int) bool { return x[i] > offset })
}
