// Package fileutil provides file system utilities including atomic write operations.
package fileutil

import (
	"os"
	"path/filepath"

	"github.com/cockroachdb/errors"

	"github.com/dimaslanjaka/hexo-front-matter/pkg/frontmatter"
)

// AtomicWriteFile writes data to a file atomically using a temp file + rename pattern.
// This ensures interrupted writes leave the original file intact.
//
// The caller is responsible for ensuring the parent directory exists.
// Permissions are applied to the final file via the perm parameter.
func AtomicWriteFile(path string, data []byte, perm os.FileMode) error {
	dir := filepath.Dir(path)

	// Create temp file in same directory for atomic rename (same filesystem required)
	tmp, err := os.CreateTemp(dir, ".hexofm-atomic-*.tmp")
	if err != nil {
		return errors.Wrap(err, "creating temp file")
	}

	// Track temp file name for cleanup
	tmpName := tmp.Name()
	defer func() {
		// Only remove if rename failed (file still exists)
		if _, statErr := os.Stat(tmpName); statErr == nil {
			os.Remove(tmpName)
		}
	}()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		return errors.Wrap(err, "writing temp file")
	}

	if err := tmp.Chmod(perm); err != nil {
		tmp.Close()
		return errors.Wrap(err, "setting file permissions")
	}

	if err := tmp.Close(); err != nil {
		return errors.Wrap(err, "closing temp file")
	}

	if err := os.Rename(tmpName, path); err != nil {
		return errors.Wrap(err, "renaming temp file")
	}

	return nil
}

// AtomicWriteDocumentWithPerm serializes doc with the given stringify
// options and writes it to path atomically with the specified permissions.
//
// The caller is responsible for ensuring the parent directory exists.
func AtomicWriteDocumentWithPerm(path string, doc *frontmatter.Document, opts frontmatter.Options, perm os.FileMode) error {
	out, err := frontmatter.Stringify(doc, opts)
	if err != nil {
		return errors.Wrap(err, "serializing document")
	}

	return AtomicWriteFile(path, []byte(out), perm)
}

// AtomicWriteDocument serializes doc and writes it to path atomically.
// The file is created with 0644 permissions.
func AtomicWriteDocument(path string, doc *frontmatter.Document, opts frontmatter.Options) error {
	return AtomicWriteDocumentWithPerm(path, doc, opts, 0644)
}
