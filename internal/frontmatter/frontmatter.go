package frontmatter

import (
	"fmt"
	"strings"
)

// delimiter marks the start and end of a frontmatter block.
const delimiter = "---"

// Metadata is the ordered key/value mapping extracted from a frontmatter
// block. Keys keep the position of their first occurrence; a duplicate key
// overwrites the earlier value (last wins). Metadata is freshly allocated by
// Parse and never mutated afterwards, so it is safe to share across
// goroutines.
type Metadata struct {
	keys   []string
	values map[string]Value
}

func newMetadata() *Metadata {
	return &Metadata{values: make(map[string]Value)}
}

func (m *Metadata) set(key string, v Value) {
	if _, ok := m.values[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.values[key] = v
}

// Get returns the value for key and whether the key is present.
func (m *Metadata) Get(key string) (Value, bool) {
	v, ok := m.values[key]
	return v, ok
}

// Has reports whether key is present.
func (m *Metadata) Has(key string) bool {
	_, ok := m.values[key]
	return ok
}

// Keys returns the keys in insertion order. The returned slice is a copy.
func (m *Metadata) Keys() []string {
	keys := make([]string, len(m.keys))
	copy(keys, m.keys)
	return keys
}

// Len returns the number of keys.
func (m *Metadata) Len() int {
	return len(m.keys)
}

// Parse splits document into frontmatter metadata and body.
//
// The document must begin with a "---" line; a matching "---" line closes the
// block. Lines between the delimiters must each parse as "key: value", where
// the key is a contiguous run of non-colon, non-whitespace characters and the
// value is the trimmed remainder of the line. Blank lines inside the block
// are skipped. The body is the byte-identical remainder of the document after
// the closing delimiter line.
//
// Any violation of that grammar fails with a *ParseError; there is no
// best-effort extraction.
func Parse(document string) (*Metadata, string, error) {
	first, rest, _ := cutLine(document)
	if chomp(first) != delimiter {
		return nil, "", &ParseError{Line: 1, Msg: "missing opening frontmatter delimiter"}
	}

	meta := newMetadata()
	lineNo := 1
	for {
		line, next, hadNewline := cutLine(rest)
		lineNo++

		if chomp(line) == delimiter {
			// Everything after the closing delimiter line is the body.
			return meta, next, nil
		}
		if !hadNewline {
			// Ran off the end of the document without a closing delimiter.
			// A trailing non-delimiter fragment is still unterminated.
			return nil, "", &ParseError{Msg: "missing closing frontmatter delimiter"}
		}

		if err := parseLine(meta, chomp(line), lineNo); err != nil {
			return nil, "", err
		}
		rest = next
	}
}

// parseLine parses a single "key: value" line into meta.
// Blank lines are skipped.
func parseLine(meta *Metadata, line string, lineNo int) error {
	if strings.TrimSpace(line) == "" {
		return nil
	}

	sep := strings.IndexByte(line, ':')
	if sep < 0 {
		return &ParseError{
			Line: lineNo,
			Msg:  fmt.Sprintf("expected 'key: value', got %q", line),
		}
	}

	key := line[:sep]
	if key == "" || strings.ContainsAny(key, " \t") {
		return &ParseError{
			Line: lineNo,
			Msg:  fmt.Sprintf("invalid frontmatter key %q", key),
		}
	}

	meta.set(key, resolveValue(strings.TrimSpace(line[sep+1:])))
	return nil
}

// cutLine splits s at the first newline. The line excludes the newline; rest
// is the remainder after it. hadNewline is false when s is the final,
// unterminated line.
func cutLine(s string) (line, rest string, hadNewline bool) {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i], s[i+1:], true
	}
	return s, "", false
}

// chomp strips a trailing carriage return so CRLF input parses like LF.
func chomp(line string) string {
	return strings.TrimSuffix(line, "\r")
}
