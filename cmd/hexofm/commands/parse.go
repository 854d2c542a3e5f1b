package commands

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/cockroachdb/errors"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/dimaslanjaka/hexo-front-matter/pkg/fileutil"
	"github.com/dimaslanjaka/hexo-front-matter/pkg/frontmatter"
)

var (
	parseAsJSON  bool
	parseContent bool
)

func init() {
	parseCmd.Flags().BoolVar(&parseAsJSON, "json", false, "output as JSON")
	parseCmd.Flags().BoolVar(&parseContent, "content", false, "include the document body in the output")
	rootCmd.AddCommand(parseCmd)
}

var parseCmd = &cobra.Command{
	Use:   "parse <file>",
	Short: "Decode a document's front matter",
	Long: `Decode a document's front matter block and print the metadata.

The fence character selects the grammar: "-" fences decode as YAML, ";"
fences as JSON. A document without front matter (or with a block that does
not decode) prints an empty result rather than failing.

Examples:
  hexofm parse content/post.md
  hexofm parse content/post.md --json
  hexofm parse content/post.md --content`,
	Args: cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		return runParse(args[0], c.OutOrStdout())
	},
}

func runParse(path string, w io.Writer) error {
	doc, err := fileutil.ReadDocument(path)
	if err != nil {
		return err
	}
	if doc.Data == nil {
		slog.Warn("no front matter found", "file", path)
	}

	if parseAsJSON {
		out := map[string]any{"data": doc.Data}
		if parseContent {
			out["content"] = doc.Content
		}
		raw, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return errors.Wrap(err, "encoding result")
		}
		fmt.Fprintf(w, "%s\n", raw)
		return nil
	}

	if len(doc.Data) > 0 {
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(doc.Data); err != nil {
			return errors.Wrap(err, "encoding result")
		}
		if err := enc.Close(); err != nil {
			return errors.Wrap(err, "encoding result")
		}
	}
	if parseContent {
		fmt.Fprintf(w, "%s\n%s", frontmatter.YAMLSeparator, doc.Content)
	}

	return nil
}
