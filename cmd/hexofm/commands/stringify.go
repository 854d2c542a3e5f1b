package commands

import (
	"fmt"
	"io"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	fmerrors "github.com/dimaslanjaka/hexo-front-matter/internal/errors"
	"github.com/dimaslanjaka/hexo-front-matter/pkg/fileutil"
	"github.com/dimaslanjaka/hexo-front-matter/pkg/frontmatter"
)

var (
	stringifyContentFile string
	stringifyMode        string
	stringifySeparator   string
	stringifyPrefix      bool
	stringifyOutput      string
)

func init() {
	stringifyCmd.Flags().StringVar(&stringifyContentFile, "content-file", "", "file holding the document body")
	stringifyCmd.Flags().StringVar(&stringifyMode, "mode", "", `output grammar: "yaml" or "json"`)
	stringifyCmd.Flags().StringVar(&stringifySeparator, "separator", "", "explicit fence token")
	stringifyCmd.Flags().BoolVar(&stringifyPrefix, "prefix", false, "emit the leading fence (legacy wrapped form)")
	stringifyCmd.Flags().StringVarP(&stringifyOutput, "output", "o", "", "write the document to a file instead of stdout")
	rootCmd.AddCommand(stringifyCmd)
}

var stringifyCmd = &cobra.Command{
	Use:   "stringify <data-file>",
	Short: "Build a delimited document from metadata",
	Long: `Build a front-matter document from a metadata mapping file.

The data file is a YAML (or JSON) mapping. The body is read from
--content-file when given, otherwise the document has an empty body.
Mode, separator, and prefix default to the hexofm configuration and can
be overridden per call.

Examples:
  hexofm stringify meta.yaml --content-file body.md
  hexofm stringify meta.yaml --mode json -o page.md
  hexofm stringify meta.yaml --separator ';;;;' --prefix`,
	Args: cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		return runStringify(c, args[0], c.OutOrStdout())
	},
}

func runStringify(c *cobra.Command, dataPath string, w io.Writer) error {
	raw, err := fileutil.ReadFileWithLimit(dataPath)
	if err != nil {
		return err
	}

	var data map[string]any
	if err := yaml.Unmarshal(raw, &data); err != nil {
		err = errors.Wrapf(err, "decoding %s", dataPath)
		return fmerrors.NewUserError(err, "The data file must be a YAML or JSON mapping")
	}

	doc := &frontmatter.Document{Data: data}
	if stringifyContentFile != "" {
		body, err := fileutil.ReadFileWithLimit(stringifyContentFile)
		if err != nil {
			return err
		}
		doc.Content = string(body)
	}

	opts := baseOptions()
	if stringifyMode != "" {
		opts.Mode = stringifyMode
	}
	if stringifySeparator != "" {
		opts.Separator = stringifySeparator
	}
	if c != nil && c.Flags().Changed("prefix") {
		opts.Prefix = stringifyPrefix
	}

	out, err := frontmatter.Stringify(doc, opts)
	if err != nil {
		return err
	}

	if stringifyOutput != "" {
		if err := fileutil.AtomicWriteFile(stringifyOutput, []byte(out), 0644); err != nil {
			return fmerrors.NewSystemError(err, "Check permissions on "+stringifyOutput)
		}
		return nil
	}

	fmt.Fprint(w, out)
	return nil
}
