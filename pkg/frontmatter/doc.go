// Package frontmatter splits documents into a front matter block and a body,
// decodes the block into structured data, and serializes structured data back
// into a delimited document.
//
// Three delimiter forms are recognized. The legacy wrapped form opens and
// closes the block with the same fence line:
//
//	---
//	title: Hello
//	---
//	body text
//
// The modern form places a single fence after the block:
//
//	title: Hello
//	---
//	body text
//
// A fence is a line of three or more repeated "-" or ";" characters. A "-"
// fence selects YAML decoding; a ";" fence selects JSON decoding, where the
// block is written as bare object members without surrounding braces:
//
//	;;;
//	"title": "Hello",
//	"draft": true
//	;;;
//	body text
//
// # Basic Usage
//
//	doc := frontmatter.Parse(text)
//	if doc.Data == nil {
//		// no front matter; doc.Content is the full input
//	}
//	title, _ := doc.Data["title"].(string)
//
//	out, err := frontmatter.Stringify(doc, frontmatter.Options{Prefix: true})
//
// Documents without front matter, or with a block that fails to decode, are
// not errors: Parse returns a Document with nil Data and the full input as
// Content. Use [Decode] when malformed metadata should be surfaced.
//
// All functions are pure and safe for concurrent use.
package frontmatter
