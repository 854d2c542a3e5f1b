package commands

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	fmerrors "github.com/dimaslanjaka/hexo-front-matter/internal/errors"
	"github.com/dimaslanjaka/hexo-front-matter/pkg/fileutil"
)

func init() {
	rootCmd.AddCommand(getCmd)
}

var getCmd = &cobra.Command{
	Use:   "get <file> <key>",
	Short: "Print one front matter value",
	Long: `Print a single front matter value, YAML-encoded.

Examples:
  hexofm get content/post.md title
  hexofm get content/post.md tags`,
	Args: cobra.ExactArgs(2),
	RunE: func(c *cobra.Command, args []string) error {
		return runGet(args[0], args[1], c.OutOrStdout())
	},
}

func runGet(path, key string, w io.Writer) error {
	doc, err := fileutil.ReadDocument(path)
	if err != nil {
		return err
	}

	value, ok := doc.Data[key]
	if !ok {
		err := errors.Wrapf(fmerrors.ErrMissingKey, "%q in %s", key, path)
		return fmerrors.NewUserError(err, "Run 'hexofm parse "+path+"' to list keys")
	}

	if value == nil {
		fmt.Fprintln(w, "null")
		return nil
	}

	out, err := yaml.Marshal(value)
	if err != nil {
		return errors.Wrap(err, "encoding value")
	}
	fmt.Fprintf(w, "%s", out)

	return nil
}
