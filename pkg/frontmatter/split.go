package frontmatter

import (
	"regexp"
	"strings"
)

// SplitResult holds the raw pieces of a document before any decoding.
type SplitResult struct {
	// Data is the raw front matter text between (or before) the fences.
	// Empty when no front matter block was found.
	Data string

	// Content is the document body. When no block is found it holds the
	// entire input.
	Content string

	// Separator is the exact fence token used ("---", ";;;;", ...).
	// Empty when no front matter block was found.
	Separator string

	// Prefix reports whether the fence leads the document (legacy wrapped
	// form) rather than trailing the front matter (modern form).
	Prefix bool
}

var (
	// rOpenFence matches a fence line at the very start of the document.
	rOpenFence = regexp.MustCompile(`^(-{3,}|;{3,})\n`)

	// rLeadingRun matches any leading fence run, even without a newline,
	// used to short-circuit malformed legacy blocks.
	rLeadingRun = regexp.MustCompile(`^(-{3,}|;{3,})`)

	// rTrailingFence matches the modern form: front matter up to the first
	// fence line, then the body.
	rTrailingFence = regexp.MustCompile(`(?s)^(.+?)\n(-{3,}|;{3,})\n?(.*)$`)
)

// Split detects the delimiter convention in text and separates front matter
// from body. It never fails: input with no recognizable block comes back
// whole in Content.
//
// The legacy wrapped form takes precedence. Input that opens with a fence
// run but lacks a matching closing fence is returned entirely as Content;
// it is never reinterpreted as the modern trailing-fence form.
func Split(text string) SplitResult {
	if m := rOpenFence.FindStringSubmatch(text); m != nil {
		sep := m[1]
		rest := text[len(m[0]):]
		// Closing fence: first "\n"+sep after at least one data character.
		if len(rest) > 0 {
			if idx := strings.Index(rest[1:], "\n"+sep); idx >= 0 {
				pos := idx + 1
				body := rest[pos+1+len(sep):]
				body = strings.TrimPrefix(body, "\n")
				return SplitResult{
					Data:      rest[:pos],
					Content:   body,
					Separator: sep,
					Prefix:    true,
				}
			}
		}
		return SplitResult{Content: text}
	}
	if rLeadingRun.MatchString(text) {
		// Malformed legacy block: a leading fence run with no usable close.
		return SplitResult{Content: text}
	}
	if m := rTrailingFence.FindStringSubmatch(text); m != nil {
		return SplitResult{
			Data:      m[1],
			Content:   m[3],
			Separator: m[2],
		}
	}
	return SplitResult{Content: text}
}
