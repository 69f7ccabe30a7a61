// Package frontmatter parses the metadata block at the start of a skill
// document.
//
// Frontmatter is delimited by lines containing only "---" at the start and
// end of the block. Every non-blank line between the delimiters must have the
// shape "key: value". Values are scalars; recognized YAML literal forms
// (booleans, numbers, null) are resolved to a typed [Value], and the raw text
// form is always available through [Value.String].
//
// # Basic Usage
//
//	meta, body, err := frontmatter.Parse(document)
//	if err != nil {
//		var perr *frontmatter.ParseError
//		if errors.As(err, &perr) {
//			// perr.Line localizes the defect
//		}
//	}
//	name, _ := meta.Get("name")
//	fmt.Println(name.String(), body)
//
// Parsing is strict: a missing opening or closing delimiter, or a line that
// does not parse as "key: value", fails with a [ParseError]. There is no
// partial extraction. Duplicate keys are resolved deterministically with the
// last occurrence winning while the key keeps its first insertion position.
//
// Both Unix (LF) and Windows (CRLF) line endings are handled.
package frontmatter
