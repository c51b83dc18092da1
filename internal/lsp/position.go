package lsp

import (
	"sort"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	protocol "github.com/tliron/glsp/protocol_3_16"
)

// lineIndex converts between byte offsets and LSP positions, which count
// UTF-16 code units within a line.
type lineIndex struct {
	content string
	starts  []int
}

func newLineIndex(content string) *lineIndex {
	starts := []int{0}
	for i := 0; i < len(content); i++ {
		if content[i] == '\n' {
			starts = append(starts, i+1)
		}
	}
	return &lineIndex{content: content, starts: starts}
}

// position converts a byte offset.
func (li *lineIndex) position(offset int) protocol.Position {
	offset = max(0, min(offset, len(li.content)))
	line := sort.Search(len(li.starts), func(i int) bool { return li.starts[i] > offset }) - 1
	return protocol.Position{
		Line:      uint32(line),
		Character: uint32(utf16Len(li.content[li.starts[line]:offset])),
	}
}

// rangeOf converts a byte span.
func (li *lineIndex) rangeOf(start, end int) protocol.Range {
	return protocol.Range{Start: li.position(start), End: li.position(end)}
}

// offset converts a position back to a byte offset, clamping to the line.
func (li *lineIndex) offset(pos protocol.Position) int {
	if int(pos.Line) >= len(li.starts) {
		return len(li.content)
	}
	start := li.starts[pos.Line]
	end := len(li.content)
	if int(pos.Line)+1 < len(li.starts) {
		end = li.starts[pos.Line+1] - 1
	}

	units := 0
	for i, r := range li.content[start:end] {
		if units >= int(pos.Character) {
			return start + i
		}
		units += utf16.RuneLen(r)
	}
	return end
}

func utf16Len(s string) int {
	n := 0
	for len(s) > 0 {
		r, size := utf8.DecodeRuneInString(s)
		s = s[size:]
		if l := utf16.RuneLen(r); l > 0 {
			n += l
		} else {
			n++
		}
	}
	return n
}

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

// extractText extracts the source text at a given LSP range from document content.
func extractText(content string, r protocol.Range) string {
	li := newLineIndex(content)
	start, end := li.offset(r.Start), li.offset(r.End)
	if start >= end {
		return ""
	}
	return content[start:end]
}

// splitLines splits content into lines, preserving empty trailing lines.
func splitLines(content string) []string {
	return strings.Split(content, "\n")
}
