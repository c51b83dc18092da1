package vscode

// Comments reports which comment styles appear in a JSON document.
type Comments struct {
	Line  bool // "//"
	Block bool // "/* */"
}

// Any reports whether any comment was found.
func (c Comments) Any() bool {
	return c.Line || c.Block
}

// Comment is the byte span of a single comment. An unterminated block
// comment runs to the end of the document.
type Comment struct {
	Start, End int
	Block      bool
}

// DetectComments reports the comment styles FindComments sees.
func DetectComments(data []byte) Comments {
	var found Comments
	for _, c := range FindComments(data) {
		if c.Block {
			found.Block = true
		} else {
			found.Line = true
		}
	}
	return found
}

// FindComments locates // and /* comments outside string literals, so URLs
// such as "vscode://schemas/color-theme" are not flagged.
func FindComments(data []byte) []Comment {
	var comments []Comment
	inString := false
	escaped := false

	for i := 0; i < len(data); i++ {
		ch := data[i]

		if inString {
			switch {
			case escaped:
				escaped = false
			case ch == '\\':
				escaped = true
			case ch == '"':
				inString = false
			}
			continue
		}

		switch ch {
		case '"':
			inString = true
		case '/':
			if i+1 >= len(data) {
				continue
			}
			switch data[i+1] {
			case '/':
				end := skipLine(data, i)
				comments = append(comments, Comment{Start: i, End: end})
				i = end
			case '*':
				end := skipBlock(data, i+2)
				comments = append(comments, Comment{Start: i, End: min(end+1, len(data)), Block: true})
				i = end
			}
		}
	}

	return comments
}

func skipLine(data []byte, i int) int {
	for i < len(data) && data[i] != '\n' {
		i++
	}
	return i
}

func skipBlock(data []byte, i int) int {
	for i+1 < len(data) {
		if data[i] == '*' && data[i+1] == '/' {
			return i + 1
		}
		i++
	}
	return len(data)
}
