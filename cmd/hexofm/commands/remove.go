package commands

import (
	"log/slog"

	"github.com/cockroachdb/errors"
	"github.com/spf13/cobra"

	fmerrors "github.com/dimaslanjaka/hexo-front-matter/internal/errors"
	"github.com/dimaslanjaka/hexo-front-matter/pkg/fileutil"
)

func init() {
	rootCmd.AddCommand(removeCmd)
}

var removeCmd = &cobra.Command{
	Use:     "remove <file> <key>...",
	Aliases: []string{"rm"},
	Short:   "Remove front matter keys",
	Long: `Remove front matter keys and rewrite the file atomically.

A key that is not present is skipped with a warning. When the last key is
removed the whole block collapses and the file becomes plain content.

Examples:
  hexofm remove content/post.md draft
  hexofm rm content/post.md draft updated`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(c *cobra.Command, args []string) error {
		return runRemove(args[0], args[1:])
	},
}

func runRemove(path string, keys []string) error {
	doc, opts, err := readForEdit(path)
	if err != nil {
		return err
	}
	if doc.Data == nil {
		err := errors.Newf("%s has no front matter", path)
		return fmerrors.NewUserError(err, "Run 'hexofm split "+path+"' to inspect the file")
	}

	removed := 0
	for _, key := range keys {
		if _, ok := doc.Data[key]; !ok {
			slog.Warn("key not found", "file", path, "key", key)
			continue
		}
		delete(doc.Data, key)
		removed++
	}

	if removed == 0 {
		return nil
	}

	if err := fileutil.AtomicWriteDocument(path, doc, opts); err != nil {
		return fmerrors.NewSystemError(err, "Check permissions on "+path)
	}
	slog.Info("removed front matter keys", "file", path, "keys", removed)

	return nil
}
