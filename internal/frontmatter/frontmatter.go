// Package frontmatter separates a leading `---` delimited metadata block from
// the markdown body that follows it.
package frontmatter

import (
	"bytes"
)

// Delimiter is the marker line that opens and closes a frontmatter block.
const Delimiter = "---"

// Split separates frontmatter from the markdown body.
//
// The opening delimiter must be the very first line. The block ends at the
// first following line that is exactly the delimiter; any later delimiter
// lines belong to the body. When no complete block is found, had is false,
// frontmatter is nil and body is the unmodified input. Split never fails.
func Split(content []byte) (frontmatter []byte, body []byte, had bool) {
	first, rest, ok := cutLine(content)
	if !ok || !isDelimiter(first) {
		return nil, content, false
	}

	start := len(content) - len(rest)
	offset := start
	for len(rest) > 0 {
		line, next, _ := cutLine(rest)
		if isDelimiter(line) {
			return content[start:offset], next, true
		}
		offset += len(rest) - len(next)
		rest = next
	}
	return nil, content, false
}

// cutLine returns the first line of b without its terminator, and the
// remainder after the terminator. ok reports whether b contained a line at
// all (an unterminated final line counts).
func cutLine(b []byte) (line []byte, rest []byte, ok bool) {
	if len(b) == 0 {
		return nil, nil, false
	}
	i := bytes.IndexByte(b, '\n')
	if i < 0 {
		return b, nil, true
	}
	return b[:i], b[i+1:], true
}

func isDelimiter(line []byte) bool {
	line = bytes.TrimSuffix(line, []byte("\r"))
	return string(line) == Delimiter
}
