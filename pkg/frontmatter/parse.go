package frontmatter

import (
	"strings"
	"time"

	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Parse splits text, decodes its front matter block, and returns the result
// as a Document.
//
// The fence character selects the grammar: ";" decodes as JSON (the block is
// wrapped in braces first), anything else as YAML (after tab escaping). A
// missing block, a block that fails to decode, or a YAML document that is
// not a mapping all yield a Document with nil Data and the original input as
// Content — broken or absent metadata is an ordinary case for documents,
// not an error.
//
// Bare YAML timestamps are decoded by yaml.v3 in UTC; Parse rebuilds each
// top-level time.Time with the same calendar fields in the local zone so the
// value reflects the wall-clock time written in the document. Swapping in a
// decoder with different timestamp handling would break this step.
func Parse(text string) *Document {
	s := Split(text)
	if s.Separator == "" || s.Data == "" {
		return &Document{Content: text}
	}

	var data map[string]any
	if strings.HasPrefix(s.Separator, ";") {
		data = decodeJSON(s.Data)
	} else {
		data = decodeYAML(s.Data)
	}
	if data == nil {
		return &Document{Content: text}
	}

	for k, v := range data {
		if t, ok := v.(time.Time); ok {
			data[k] = asWallClock(t)
		}
	}

	return &Document{Data: data, Content: s.Content}
}

// decodeJSON decodes a bare member list by wrapping it in braces.
// Returns nil when the block is not valid JSON.
func decodeJSON(raw string) map[string]any {
	var m map[string]any
	if err := json.Unmarshal([]byte("{"+raw+"}"), &m); err != nil {
		return nil
	}
	return m
}

// decodeYAML decodes an escaped YAML block. Returns nil when the block is
// invalid or does not decode to a mapping.
func decodeYAML(raw string) map[string]any {
	var v any
	if err := yaml.Unmarshal([]byte(Escape(raw)), &v); err != nil {
		return nil
	}
	m, ok := v.(map[string]any)
	if !ok {
		return nil
	}
	return m
}

// asWallClock reinterprets t's calendar fields in the local zone.
func asWallClock(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(),
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.Local)
}
