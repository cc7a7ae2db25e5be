package smack

import (
	"strings"
	"testing"
)

func loadDeck(tb testing.TB) *Presentation {
	tb.Helper()
	p, err := Load("testdata/deck")
	if err != nil {
		tb.Fatalf("load deck: %v", err)
	}
	return p
}

func TestDeckStructure(t *testing.T) {
	p := loadDeck(t)
	want := []struct {
		title   string
		justify Justify
		steps   int
	}{
		{"Terminal slides", JustifyCenter, 3},
		{"Numbers", JustifyLeft, 2},
		{"Thanks", JustifyFull, 2},
	}
	if len(p.Sections) != len(want) {
		t.Fatalf("sections = %d", len(p.Sections))
	}
	for i, w := range want {
		s := p.Sections[i]
		if s.Title != w.title || s.Justify != w.justify || len(s.Steps) != w.steps {
			t.Fatalf("section %d: %q %q %d steps", i, s.Title, s.Justify, len(s.Steps))
		}
	}
	if len(p.Steps()) != 7 {
		t.Fatalf("steps = %d, want 7", len(p.Steps()))
	}
	last := p.Sections[2].Steps[0]
	if last.InfoTitle() != "Question" || len(last.InfoBody()) != 0 {
		t.Fatalf("bare admonition: %q %d", last.InfoTitle(), len(last.InfoBody()))
	}
}

func TestDeckRendersEveryStep(t *testing.T) {
	p := loadDeck(t)
	r := NewRenderer(BoringTheme())
	for _, width := range []int{50, 80, 120} {
		for i, step := range p.Steps() {
			out := r.RenderFrame(Frame{Step: step, Position: i, Total: len(p.Steps()), Width: width, Height: 30})
			lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
			if len(lines) != 30 {
				t.Fatalf("width %d step %d: %d lines", width, i, len(lines))
			}
			for j, line := range lines[1:] {
				if w := textWidth(line); w != width {
					t.Fatalf("width %d step %d line %d: %d columns: %q", width, i, j+1, w, line)
				}
			}
		}
	}
}

func TestDeckStepContent(t *testing.T) {
	p := loadDeck(t)
	r := NewRenderer(BoringTheme())
	frame := func(i int) string {
		return r.RenderFrame(Frame{Step: p.Steps()[i], Position: i, Total: len(p.Steps()), Width: 80, Height: 40})
	}
	first := frame(0)
	if !strings.Contains(first, "smack") || strings.Contains(first, "One file per section") {
		t.Fatalf("first step shows the wrong body:\n%s", first)
	}
	second := frame(1)
	if !strings.Contains(second, "• One file per section") || !strings.Contains(second, " Ordering ") {
		t.Fatalf("second step missing list or info title:\n%s", second)
	}
	plot := frame(3)
	if !strings.Contains(plot, "visitors") || !strings.Contains(plot, "█") {
		t.Fatalf("plot not drawn:\n%s", plot)
	}
	table := frame(4)
	for _, want := range []string{"─┼─", "Peak on thursday[1].", "[1] Server logs, week 12.", " End "} {
		if !strings.Contains(table, want) {
			t.Fatalf("step 5 missing %q:\n%s", want, table)
		}
	}
}
