package frontmatter

import (
	"reflect"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name        string
		in          string
		wantData    map[string]any
		wantContent string
	}{
		{
			name:        "yaml legacy form",
			in:          "---\ntitle: Hello\ndraft: true\n---\nbody",
			wantData:    map[string]any{"title": "Hello", "draft": true},
			wantContent: "body",
		},
		{
			name:        "yaml modern form",
			in:          "title: Hello\ncount: 3\n---\nbody",
			wantData:    map[string]any{"title": "Hello", "count": 3},
			wantContent: "body",
		},
		{
			name:        "json fence",
			in:          ";;;\n\"title\": \"Hello\",\n\"draft\": true\n;;;\nbody",
			wantData:    map[string]any{"title": "Hello", "draft": true},
			wantContent: "body",
		},
		{
			name:        "nested mapping",
			in:          "---\nauthor:\n  name: Ann\n---\nbody",
			wantData:    map[string]any{"author": map[string]any{"name": "Ann"}},
			wantContent: "body",
		},
		{
			name:        "sequence value",
			in:          "---\ntags:\n  - a\n  - b\n---\nbody",
			wantData:    map[string]any{"tags": []any{"a", "b"}},
			wantContent: "body",
		},
		{
			name:        "tab indented block scalar",
			in:          "---\ntitle: |-\n\thello\n---\nbody",
			wantData:    map[string]any{"title": "hello"},
			wantContent: "body",
		},
		{
			name:        "no front matter",
			in:          "plain text",
			wantData:    nil,
			wantContent: "plain text",
		},
		{
			name:        "malformed yaml degrades to content",
			in:          "---\ntitle: [unclosed\n---\nbody",
			wantData:    nil,
			wantContent: "---\ntitle: [unclosed\n---\nbody",
		},
		{
			name:        "non-mapping yaml degrades to content",
			in:          "---\n- a\n- b\n---\nbody",
			wantData:    nil,
			wantContent: "---\n- a\n- b\n---\nbody",
		},
		{
			name:        "malformed json degrades to content",
			in:          ";;;\nnot json at all\n;;;\nbody",
			wantData:    nil,
			wantContent: ";;;\nnot json at all\n;;;\nbody",
		},
		{
			name:        "unclosed fence degrades to content",
			in:          "---\ntitle: Hello",
			wantData:    nil,
			wantContent: "---\ntitle: Hello",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Parse(tt.in)
			if !reflect.DeepEqual(got.Data, tt.wantData) {
				t.Errorf("Data = %#v, want %#v", got.Data, tt.wantData)
			}
			if got.Content != tt.wantContent {
				t.Errorf("Content = %q, want %q", got.Content, tt.wantContent)
			}
		})
	}
}

func TestParseDateWallClock(t *testing.T) {
	doc := Parse("---\ndate: 2024-01-02 03:04:05\n---\nbody")
	if doc.Data == nil {
		t.Fatal("expected front matter, got none")
	}

	got, ok := doc.Data["date"].(time.Time)
	if !ok {
		t.Fatalf("date = %#v, want time.Time", doc.Data["date"])
	}

	want := time.Date(2024, time.January, 2, 3, 4, 5, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("date = %v, want %v", got, want)
	}
	if got.Location() != time.Local {
		t.Errorf("location = %v, want local", got.Location())
	}
}

func TestParseJSONNumbers(t *testing.T) {
	doc := Parse(";;;\n\"count\": 42\n;;;\n")
	if doc.Data == nil {
		t.Fatal("expected front matter, got none")
	}
	if got, want := doc.Data["count"], float64(42); got != want {
		t.Errorf("count = %#v, want %#v", got, want)
	}
}

func TestRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		opts Options
	}{
		{name: "modern form"},
		{name: "legacy form", opts: Options{Prefix: true}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := &Document{
				Data: map[string]any{
					"title": "Hello",
					"count": 3,
					"draft": true,
				},
				Content: "body text\n",
			}

			out, err := Stringify(doc, tt.opts)
			if err != nil {
				t.Fatalf("Stringify() error = %v", err)
			}

			got := Parse(out)
			if !reflect.DeepEqual(got.Data, doc.Data) {
				t.Errorf("Data = %#v, want %#v", got.Data, doc.Data)
			}
			if got.Content != doc.Content {
				t.Errorf("Content = %q, want %q", got.Content, doc.Content)
			}
		})
	}
}

type pageMeta struct {
	Title string `yaml:"title" json:"title"`
	Draft bool   `yaml:"draft" json:"draft"`
}

func TestDecode(t *testing.T) {
	t.Run("yaml front matter", func(t *testing.T) {
		var meta pageMeta
		content, err := Decode("---\ntitle: Hello\ndraft: true\n---\nbody", &meta)
		if err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		if meta.Title != "Hello" || !meta.Draft {
			t.Errorf("meta = %+v", meta)
		}
		if content != "body" {
			t.Errorf("content = %q, want %q", content, "body")
		}
	})

	t.Run("json front matter", func(t *testing.T) {
		var meta pageMeta
		content, err := Decode(";;;\n\"title\": \"Hello\"\n;;;\nbody", &meta)
		if err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		if meta.Title != "Hello" {
			t.Errorf("meta = %+v", meta)
		}
		if content != "body" {
			t.Errorf("content = %q, want %q", content, "body")
		}
	})

	t.Run("no front matter", func(t *testing.T) {
		var meta pageMeta
		content, err := Decode("just a body", &meta)
		if err != nil {
			t.Fatalf("Decode() error = %v", err)
		}
		if meta != (pageMeta{}) {
			t.Errorf("meta = %+v, want zero", meta)
		}
		if content != "just a body" {
			t.Errorf("content = %q", content)
		}
	})

	t.Run("malformed front matter surfaces error", func(t *testing.T) {
		var meta pageMeta
		if _, err := Decode("---\ntitle: [unclosed\n---\nbody", &meta); err == nil {
			t.Fatal("Decode() error = nil, want parse error")
		}
	})
}
