package frontmatter

import "testing"

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want SplitResult
	}{
		{
			name: "legacy wrapped form",
			in:   "---\nfoo\n---\nbar",
			want: SplitResult{Data: "foo", Content: "bar", Separator: "---", Prefix: true},
		},
		{
			name: "legacy wrapped form without body",
			in:   "---\nfoo\n---",
			want: SplitResult{Data: "foo", Content: "", Separator: "---", Prefix: true},
		},
		{
			name: "legacy wrapped form with trailing newline only",
			in:   "---\nfoo\n---\n",
			want: SplitResult{Data: "foo", Content: "", Separator: "---", Prefix: true},
		},
		{
			name: "legacy wrapped form with semicolon fence",
			in:   ";;;\n\"foo\": 1\n;;;\nbar",
			want: SplitResult{Data: "\"foo\": 1", Content: "bar", Separator: ";;;", Prefix: true},
		},
		{
			name: "legacy wrapped form with long fence",
			in:   "-----\nfoo\n-----\nbar",
			want: SplitResult{Data: "foo", Content: "bar", Separator: "-----", Prefix: true},
		},
		{
			name: "legacy multiline data",
			in:   "---\nfoo: 1\nbar: 2\n---\nbaz",
			want: SplitResult{Data: "foo: 1\nbar: 2", Content: "baz", Separator: "---", Prefix: true},
		},
		{
			name: "modern trailing fence",
			in:   "foo: 1\n---\nbar",
			want: SplitResult{Data: "foo: 1", Content: "bar", Separator: "---"},
		},
		{
			name: "modern trailing fence without body",
			in:   "foo: 1\n---",
			want: SplitResult{Data: "foo: 1", Content: "", Separator: "---"},
		},
		{
			name: "malformed leading fence is all content",
			in:   "---\nno closing fence",
			want: SplitResult{Content: "---\nno closing fence"},
		},
		{
			name: "mismatched fence characters do not close",
			in:   "---\nfoo\n;;;\nbar",
			want: SplitResult{Content: "---\nfoo\n;;;\nbar"},
		},
		{
			name: "empty block is not front matter",
			in:   "---\n---\nbar",
			want: SplitResult{Content: "---\n---\nbar"},
		},
		{
			name: "bare fence run only",
			in:   "----",
			want: SplitResult{Content: "----"},
		},
		{
			name: "no fence at all",
			in:   "hello world",
			want: SplitResult{Content: "hello world"},
		},
		{
			name: "empty input",
			in:   "",
			want: SplitResult{Content: ""},
		},
		{
			name: "short dash run is not a fence",
			in:   "--\nfoo\n--\nbar",
			want: SplitResult{Content: "--\nfoo\n--\nbar"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.in)
			if got != tt.want {
				t.Errorf("Split(%q) = %+v, want %+v", tt.in, got, tt.want)
			}
		})
	}
}

func TestSplitLegacyPrecedence(t *testing.T) {
	// A document that matches both forms must be read as the legacy form.
	in := "---\nfoo\n---\nbar\n---\nbaz"
	got := Split(in)
	if !got.Prefix {
		t.Fatalf("Split(%q).Prefix = false, want true", in)
	}
	if got.Data != "foo" {
		t.Errorf("Data = %q, want %q", got.Data, "foo")
	}
	if got.Content != "bar\n---\nbaz" {
		t.Errorf("Content = %q, want %q", got.Content, "bar\n---\nbaz")
	}
}

func TestEscape(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "single tab",
			in:   "foo:\n\tbar",
			want: "foo:\n  bar",
		},
		{
			name: "multiple tabs widen proportionally",
			in:   "foo:\n\t\tbar",
			want: "foo:\n    bar",
		},
		{
			name: "crlf collapses to lf",
			in:   "foo:\r\n\tbar",
			want: "foo:\n  bar",
		},
		{
			name: "tab not at line start is preserved",
			in:   "foo:\tbar",
			want: "foo:\tbar",
		},
		{
			name: "no tabs",
			in:   "foo: bar\nbaz: qux",
			want: "foo: bar\nbaz: qux",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Escape(tt.in); got != tt.want {
				t.Errorf("Escape(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
