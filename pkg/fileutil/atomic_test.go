package fileutil

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/dimaslanjaka/hexo-front-matter/pkg/frontmatter"
)

func TestAtomicWriteFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.md")

	if err := AtomicWriteFile(path, []byte("hello\n"), 0644); err != nil {
		t.Fatalf("AtomicWriteFile() error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "hello\n" {
		t.Errorf("content = %q, want %q", data, "hello\n")
	}
}

func TestAtomicWriteFileOverwrites(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.md")

	if err := os.WriteFile(path, []byte("old"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := AtomicWriteFile(path, []byte("new"), 0644); err != nil {
		t.Fatalf("AtomicWriteFile() error = %v", err)
	}

	data, _ := os.ReadFile(path)
	if string(data) != "new" {
		t.Errorf("content = %q, want %q", data, "new")
	}
}

func TestAtomicWriteFileNoTempLeftover(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "out.md")

	if err := AtomicWriteFile(path, []byte("x"), 0644); err != nil {
		t.Fatalf("AtomicWriteFile() error = %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	for _, e := range entries {
		if strings.HasPrefix(e.Name(), ".hexofm-atomic-") {
			t.Errorf("temp file left behind: %s", e.Name())
		}
	}
}

func TestAtomicWriteDocumentRoundTrip(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.md")

	doc := &frontmatter.Document{
		Data:    map[string]any{"title": "Hello"},
		Content: "body\n",
	}
	if err := AtomicWriteDocument(path, doc, frontmatter.Options{Prefix: true}); err != nil {
		t.Fatalf("AtomicWriteDocument() error = %v", err)
	}

	got, err := ReadDocument(path)
	if err != nil {
		t.Fatalf("ReadDocument() error = %v", err)
	}
	if got.Data["title"] != "Hello" {
		t.Errorf("title = %#v, want %q", got.Data["title"], "Hello")
	}
	if got.Content != "body\n" {
		t.Errorf("content = %q, want %q", got.Content, "body\n")
	}
}

func TestAtomicWriteDocumentNil(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "page.md")

	if err := AtomicWriteDocument(path, nil, frontmatter.Options{}); err == nil {
		t.Error("AtomicWriteDocument(nil) should fail")
	}
	if _, statErr := os.Stat(path); statErr == nil {
		t.Error("failed write should not create the file")
	}
}
