package frontmatter

import (
	"regexp"
	"strings"
)

// rTabIndent matches a line break followed by one or more indentation tabs.
var rTabIndent = regexp.MustCompile(`\r?\n(\t+)`)

// Escape rewrites tab-indented continuation lines so the YAML decoder sees
// space indentation: each tab after a line break becomes two spaces. CRLF
// breaks are normalized to LF in the process. Applied before YAML decoding
// only; JSON front matter and encoding are never escaped.
func Escape(text string) string {
	return rTabIndent.ReplaceAllStringFunc(text, func(m string) string {
		tabs := strings.Count(m, "\t")
		return "\n" + strings.Repeat("  ", tabs)
	})
}
