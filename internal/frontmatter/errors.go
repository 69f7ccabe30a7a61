package frontmatter

import "fmt"

// ParseError represents a structural defect in a frontmatter block.
// It is always fatal to parsing; no partial metadata is returned alongside it.
type ParseError struct {
	Line int    // 1-based line number in the document, 0 when not line-specific
	Msg  string // Human-readable description of the defect
}

func (e *ParseError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("frontmatter: line %d: %s", e.Line, e.Msg)
	}
	return "frontmatter: " + e.Msg
}
