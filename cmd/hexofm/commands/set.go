package commands

import (
	"log/slog"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	fmerrors "github.com/dimaslanjaka/hexo-front-matter/internal/errors"
	"github.com/dimaslanjaka/hexo-front-matter/pkg/fileutil"
	"github.com/dimaslanjaka/hexo-front-matter/pkg/frontmatter"
)

func init() {
	rootCmd.AddCommand(setCmd)
}

var setCmd = &cobra.Command{
	Use:   "set <file> <key=value>...",
	Short: "Set front matter values",
	Long: `Set front matter values and rewrite the file atomically.

Values are decoded as YAML scalars, so numbers, booleans, and dates keep
their types. A bare "key=" sets the key to null, which serializes as an
empty "key:" line. A document without front matter gets a fresh block.

The document's existing fence token and placement are preserved.

Examples:
  hexofm set content/post.md title="New title"
  hexofm set content/post.md draft=true priority=2
  hexofm set content/post.md updated=2024-01-02
  hexofm set content/post.md subtitle=`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(c *cobra.Command, args []string) error {
		return runSet(args[0], args[1:])
	},
}

func runSet(path string, assignments []string) error {
	doc, opts, err := readForEdit(path)
	if err != nil {
		return err
	}
	if doc.Data == nil {
		doc.Data = make(map[string]any, len(assignments))
	}

	for _, assignment := range assignments {
		key, raw, ok := strings.Cut(assignment, "=")
		if !ok || key == "" {
			err := errors.Wrapf(fmerrors.ErrInvalidAssignment, "%q", assignment)
			return fmerrors.NewUserError(err, "Use KEY=VALUE form, e.g. title=\"Hello\"")
		}
		doc.Data[key] = scalarValue(raw)
	}

	if err := fileutil.AtomicWriteDocument(path, doc, opts); err != nil {
		return fmerrors.NewSystemError(err, "Check permissions on "+path)
	}
	slog.Info("updated front matter", "file", path, "keys", len(assignments))

	return nil
}

// readForEdit loads a document along with the stringify options that
// reproduce its current fence form on rewrite.
func readForEdit(path string) (*frontmatter.Document, frontmatter.Options, error) {
	raw, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return nil, frontmatter.Options{}, err
	}
	text := string(raw)

	doc := frontmatter.Parse(text)
	opts := baseOptions()

	// Preserve the existing fence only when its block actually decoded;
	// otherwise the old block is part of the content and re-adding its
	// fence would nest it.
	if doc.Data != nil {
		if s := frontmatter.Split(text); s.Separator != "" {
			opts.Separator = s.Separator
			opts.Prefix = s.Prefix
			if strings.HasPrefix(s.Separator, ";") {
				opts.Mode = frontmatter.ModeJSON
			} else {
				opts.Mode = ""
			}
		}
	}

	return doc, opts, nil
}

// scalarValue decodes a command line value the way the YAML grammar would.
// An empty value means null; anything undecodable stays a plain string.
func scalarValue(raw string) any {
	if raw == "" {
		return nil
	}
	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	return v
}
