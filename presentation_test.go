package smack

import (
	"bytes"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFiles(t *testing.T, dir string, files map[string]string) {
	t.Helper()
	for name, body := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
}

func sectionNames(p *Presentation) []string {
	names := make([]string, len(p.Sections))
	for i, s := range p.Sections {
		names[i] = filepath.Base(s.Path)
	}
	return names
}

func TestLoadOrdersByStem(t *testing.T) {
	cases := []struct {
		name  string
		files []string
		want  []string
	}{
		{"alphabetical", []string{"b.md", "a.md", "c.md"}, []string{"a.md", "b.md", "c.md"}},
		{"numbered", []string{"10-end.md", "01-intro.md", "02-body.md"}, []string{"01-intro.md", "02-body.md", "10-end.md"}},
		{"byte order puts upper case first", []string{"b.md", "B.md", "a.md"}, []string{"B.md", "a.md", "b.md"}},
		{"stem before name", []string{"a-b.md", "a.md"}, []string{"a.md", "a-b.md"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			dir := t.TempDir()
			files := map[string]string{}
			for _, name := range tc.files {
				files[name] = "# " + name + "\n"
			}
			writeFiles(t, dir, files)
			p, err := Load(dir)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			got := sectionNames(p)
			if strings.Join(got, ",") != strings.Join(tc.want, ",") {
				t.Fatalf("order = %v, want %v", got, tc.want)
			}
		})
	}
}

func TestLoadIgnoresOtherEntries(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.md":          "# A\n",
		"notes.txt":     "not a slide",
		"b.markdown":    "# ignored\n",
		"sub/c.md":      "# nested\n",
		"image.md.orig": "x",
	})
	p, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := sectionNames(p); len(got) != 1 || got[0] != "a.md" {
		t.Fatalf("sections = %v", got)
	}
}

func TestLoadEmptyDirectory(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"readme.txt": "x", "sub/a.md": "# A\n"})
	if _, err := Load(dir); !errors.Is(err, ErrEmptyPresentation) {
		t.Fatalf("expected ErrEmptyPresentation, got %v", err)
	}
	if _, err := Load(filepath.Join(dir, "missing")); err == nil {
		t.Fatalf("expected error for missing directory")
	}
}

func TestLoadFailsOnBadSection(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.md": "# A\n",
		"b.md": "---\njustify: diagonal\n---\n",
	})
	_, err := Load(dir)
	if !errors.Is(err, ErrFrontMatter) {
		t.Fatalf("expected ErrFrontMatter, got %v", err)
	}
	if !strings.Contains(err.Error(), "b.md") {
		t.Fatalf("error does not name the file: %v", err)
	}
}

func TestStepsFlattenSections(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.md": "# A\n\n!!! note\n    one\n",
		"b.md": "---\njustify: right\n---\n# B\n",
		"c.md": "# C\n\n!!! note\n    one\n\n!!! note\n    two\n",
	})
	p, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	steps := p.Steps()
	if len(steps) != 2+1+3 {
		t.Fatalf("steps = %d, want 6", len(steps))
	}
	if &steps[0] != &p.Steps()[0] {
		t.Fatalf("Steps returned a different slice")
	}
	wantSection := []string{"a.md", "a.md", "b.md", "c.md", "c.md", "c.md"}
	for i, step := range steps {
		if got := filepath.Base(step.Section.Path); got != wantSection[i] {
			t.Fatalf("step %d from %s, want %s", i, got, wantSection[i])
		}
		want := JustifyCenter
		if wantSection[i] == "b.md" {
			want = JustifyRight
		}
		if step.Justify() != want {
			t.Fatalf("step %d justify %q, want %q", i, step.Justify(), want)
		}
	}
}

func TestLoadLogsSections(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{"a.md": "---\ntitle: Intro\n---\n# A\n"})
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	if _, err := Load(dir, WithLogger(logger)); err != nil {
		t.Fatalf("Load: %v", err)
	}
	out := buf.String()
	if !strings.Contains(out, `msg="section loaded"`) || !strings.Contains(out, "title=Intro") {
		t.Fatalf("unexpected log output: %s", out)
	}
}

func TestWriteOutline(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"01.md": "---\ntitle: Intro\n---\n# A\n\n!!! note \"Greet\"\n    Say hello to everyone in the room.\n",
		"02.md": "# B\n",
	})
	p, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	var buf bytes.Buffer
	if err := p.WriteOutline(&buf); err != nil {
		t.Fatalf("WriteOutline: %v", err)
	}
	out := buf.String()
	for _, want := range []string{
		"2 sections, 3 steps",
		"01.md  Intro  justify=center",
		"02.md  (untitled)",
		"1. Greet: Say hello to everyone in the room.",
		"2. End: Continue to next section...",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("outline missing %q:\n%s", want, out)
		}
	}
}
