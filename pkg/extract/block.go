// Package extract parses fenced code blocks out of Markdown text.
package extract

// Block is one fenced code block within a Markdown file.
type Block struct {
	// Lang is the first token of the fence info string, lowercased.
	// Empty for untagged blocks.
	Lang string

	// Info is the full info string following the opening fence.
	Info string

	// Lines holds the block content between the fences, one entry per
	// line, without line terminators. Fence markers are excluded.
	Lines []string

	// StartLine is the 1-based line number of the first content line,
	// i.e. the line immediately after the opening fence.
	StartLine int

	// EndLine is the 1-based line number of the last content line.
	// For an empty block it is StartLine - 1.
	EndLine int

	// Unterminated reports that no matching closing fence was found
	// before end of file. The block content runs to EOF.
	Unterminated bool
}

// Text returns the block content as a single string with trailing newline.
func (b *Block) Text() string {
	if len(b.Lines) == 0 {
		return ""
	}
	var n int
	for _, line := range b.Lines {
		n += len(line) + 1
	}
	buf := make([]byte, 0, n)
	for _, line := range b.Lines {
		buf = append(buf, line...)
		buf = append(buf, '\n')
	}
	return string(buf)
}
