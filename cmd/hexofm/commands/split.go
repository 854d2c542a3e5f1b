package commands

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/dimaslanjaka/hexo-front-matter/pkg/fileutil"
	"github.com/dimaslanjaka/hexo-front-matter/pkg/frontmatter"
)

var splitAsJSON bool

func init() {
	splitCmd.Flags().BoolVar(&splitAsJSON, "json", false, "output as JSON")
	rootCmd.AddCommand(splitCmd)
}

var splitCmd = &cobra.Command{
	Use:   "split <file>",
	Short: "Show the raw front matter split",
	Long: `Split a document at its fence without decoding the metadata.

Prints the fence token, whether it leads the document (legacy wrapped form)
or trails the block (modern form), the raw metadata text, and the body.

Examples:
  hexofm split content/post.md
  hexofm split content/post.md --json`,
	Args: cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		return runSplit(args[0], c.OutOrStdout())
	},
}

// splitDetail mirrors the split result for JSON output.
type splitDetail struct {
	Separator string `json:"separator,omitempty"`
	Prefix    bool   `json:"prefix"`
	Data      string `json:"data,omitempty"`
	Content   string `json:"content"`
}

func runSplit(path string, w io.Writer) error {
	raw, err := fileutil.ReadFileWithLimit(path)
	if err != nil {
		return err
	}
	s := frontmatter.Split(string(raw))

	if splitAsJSON {
		out, err := json.MarshalIndent(splitDetail{
			Separator: s.Separator,
			Prefix:    s.Prefix,
			Data:      s.Data,
			Content:   s.Content,
		}, "", "  ")
		if err != nil {
			return errors.Wrap(err, "encoding result")
		}
		fmt.Fprintf(w, "%s\n", out)
		return nil
	}

	label := color.New(color.FgCyan, color.Bold)
	if s.Separator == "" {
		fmt.Fprintln(w, "no front matter")
	} else {
		label.Fprint(w, "separator: ")
		fmt.Fprintln(w, s.Separator)
		label.Fprint(w, "prefix: ")
		fmt.Fprintln(w, s.Prefix)
		label.Fprintln(w, "data:")
		fmt.Fprintln(w, s.Data)
	}
	label.Fprintln(w, "content:")
	fmt.Fprint(w, s.Content)

	return nil
}
