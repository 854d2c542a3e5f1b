package frontmatter

import (
	"bytes"
	"sort"
	"strings"
	"time"

	"github.com/cockroachdb/errors"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Options controls Stringify output. The zero value produces a YAML block
// with a trailing "---" fence and 2-space indentation.
type Options struct {
	// Mode selects the grammar: ModeJSON for a ";;;"-fenced bare JSON
	// member list, anything else for YAML.
	Mode string

	// Prefix emits the fence before the front matter block as well
	// (legacy wrapped form).
	Prefix bool

	// Separator overrides the fence token. Defaults to "---" for YAML
	// and ";;;" for JSON.
	Separator string

	// Indent is forwarded to the YAML encoder. Defaults to 2.
	Indent int
}

// ModeJSON selects the JSON grammar for Stringify.
const ModeJSON = "json"

// dateFormat is the layout for date lines in YAML front matter.
const dateFormat = "2006-01-02 15:04:05"

// Stringify serializes a document back into delimited text. The input is
// never mutated. A nil document returns ErrNilDocument; a document with no
// data fields collapses to its content with no fences at all.
//
// In YAML mode, nil-valued and time.Time-valued fields bypass the YAML
// encoder: dates are emitted as "key: YYYY-MM-DD HH:MM:SS" lines (the
// value's own calendar fields, no zone suffix) and nulls as bare "key:"
// lines, both appended after the encoded block in sorted key order. The
// encoder would otherwise render these in forms that do not round-trip
// through Parse.
func Stringify(doc *Document, opts Options) (string, error) {
	if doc == nil {
		return "", ErrNilDocument
	}
	if len(doc.Data) == 0 {
		return doc.Content, nil
	}

	sep := opts.Separator
	if sep == "" {
		if opts.Mode == ModeJSON {
			sep = JSONSeparator
		} else {
			sep = YAMLSeparator
		}
	}

	var b strings.Builder
	if opts.Prefix {
		b.WriteString(sep)
		b.WriteByte('\n')
	}

	var block string
	var err error
	if opts.Mode == ModeJSON {
		block, err = stringifyJSON(doc.Data)
	} else {
		block, err = stringifyYAML(doc.Data, opts.Indent)
	}
	if err != nil {
		return "", err
	}
	b.WriteString(block)

	b.WriteString(sep)
	b.WriteByte('\n')
	b.WriteString(doc.Content)

	return b.String(), nil
}

// stringifyJSON pretty-prints data and strips the object literal down to a
// bare member list: one indentation level removed from every line, outer
// braces dropped.
func stringifyJSON(data map[string]any) (string, error) {
	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return "", errors.Wrap(err, "encoding JSON front matter")
	}
	s := strings.ReplaceAll(string(raw), "\n  ", "\n")
	s = strings.TrimPrefix(s, "{\n")
	s = strings.TrimSuffix(s, "}")
	return s, nil
}

// stringifyYAML encodes data, holding nil and time.Time values out of the
// encoder and appending them as their own lines afterward.
func stringifyYAML(data map[string]any, indent int) (string, error) {
	rest := make(map[string]any, len(data))
	var dateKeys, nullKeys []string
	for k, v := range data {
		switch v.(type) {
		case nil:
			nullKeys = append(nullKeys, k)
		case time.Time:
			dateKeys = append(dateKeys, k)
		default:
			rest[k] = v
		}
	}
	sort.Strings(dateKeys)
	sort.Strings(nullKeys)

	var b strings.Builder
	if len(rest) > 0 {
		if indent <= 0 {
			indent = 2
		}
		var buf bytes.Buffer
		enc := yaml.NewEncoder(&buf)
		enc.SetIndent(indent)
		if err := enc.Encode(rest); err != nil {
			return "", errors.Wrap(err, "encoding YAML front matter")
		}
		if err := enc.Close(); err != nil {
			return "", errors.Wrap(err, "closing YAML encoder")
		}
		b.Write(buf.Bytes())
	}
	for _, k := range dateKeys {
		b.WriteString(k)
		b.WriteString(": ")
		b.WriteString(data[k].(time.Time).Format(dateFormat))
		b.WriteByte('\n')
	}
	for _, k := range nullKeys {
		b.WriteString(k)
		b.WriteString(":\n")
	}
	return b.String(), nil
}
