package frontmatter

import (
	"strings"

	"github.com/cockroachdb/errors"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"
)

// Decode splits text and unmarshals its front matter block into out, which
// is typically a pointer to a tagged struct. The body is returned as
// content.
//
// Unlike Parse, decode failures surface as errors: a caller asking for a
// typed result wants to know the metadata was malformed. A document without
// any front matter block is still not an error — out is left untouched and
// the full text is returned.
func Decode[T any](text string, out *T) (content string, err error) {
	s := Split(text)
	if s.Separator == "" || s.Data == "" {
		return text, nil
	}

	if strings.HasPrefix(s.Separator, ";") {
		if err := json.Unmarshal([]byte("{"+s.Data+"}"), out); err != nil {
			return "", errors.Wrap(err, "decoding JSON front matter")
		}
	} else {
		if err := yaml.Unmarshal([]byte(Escape(s.Data)), out); err != nil {
			return "", errors.Wrap(err, "decoding YAML front matter")
		}
	}

	return s.Content, nil
}
