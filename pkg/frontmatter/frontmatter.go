package frontmatter

import "errors"

// Default fence tokens for the two grammars.
const (
	// YAMLSeparator is the default fence for YAML front matter.
	YAMLSeparator = "---"

	// JSONSeparator is the default fence for JSON front matter.
	JSONSeparator = ";;;"
)

// ErrNilDocument is returned by Stringify when called with a nil document.
var ErrNilDocument = errors.New("document is required")

// Document is a parsed document: decoded front matter fields plus the body.
//
// Data is nil when no front matter block was found or the block failed to
// decode; Content then holds the entire original input. Values in Data are
// the decoder's dynamic types: string, int, float64, bool, time.Time, nil,
// nested map[string]any, or []any.
type Document struct {
	// Data holds the decoded front matter fields.
	Data map[string]any

	// Content is the document body following the front matter block.
	Content string
}
