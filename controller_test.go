package smack

import (
	"bytes"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
)

func testPresentation(t *testing.T) *Presentation {
	t.Helper()
	dir := t.TempDir()
	writeFiles(t, dir, map[string]string{
		"a.md": "# A\n\n!!! note \"one\"\n    first\n\nmore\n\n!!! note \"two\"\n    second\n",
		"b.md": "# B\n",
	})
	p, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	return p
}

func newTestController(t *testing.T, input string, out io.Writer) *Controller {
	t.Helper()
	c, err := NewController(testPresentation(t), ControllerConfig{
		Input:    strings.NewReader(input),
		Output:   out,
		Renderer: NewRenderer(BoringTheme()),
		Size:     func() (int, int) { return 60, 20 },
	})
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	return c
}

func TestDispatchAliases(t *testing.T) {
	tests := []struct {
		inputs []string
		want   int
	}{
		{[]string{""}, 1},
		{[]string{"n", "n"}, 2},
		{[]string{">", " N \n"}, 2},
		{[]string{"e"}, 3},
		{[]string{"$", "p"}, 2},
		{[]string{"$", "<"}, 2},
		{[]string{"$", "s"}, 0},
		{[]string{"$", "0"}, 0},
		{[]string{"n", "r"}, 1},
		{[]string{"n", "bogus"}, 1},
		{[]string{"e", "n", "n"}, 3},
		{[]string{"p", "p"}, 0},
	}
	for _, tc := range tests {
		c := newTestController(t, "", io.Discard)
		for _, in := range tc.inputs {
			if err := c.Dispatch(in); err != nil {
				t.Fatalf("%q: Dispatch(%q): %v", tc.inputs, in, err)
			}
		}
		if got := c.State().Index(); got != tc.want {
			t.Fatalf("%q: index = %d, want %d", tc.inputs, got, tc.want)
		}
	}
}

func TestDispatchQuit(t *testing.T) {
	c := newTestController(t, "", io.Discard)
	for _, in := range []string{"q", "Q\n"} {
		if err := c.Dispatch(in); !errors.Is(err, ErrQuit) {
			t.Fatalf("Dispatch(%q) = %v, want ErrQuit", in, err)
		}
	}
}

func TestRunDrawsAFramePerCommand(t *testing.T) {
	var out bytes.Buffer
	c := newTestController(t, "n\nn\nq\nn\n", &out)
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	frames := strings.Split(out.String(), prompt)
	// three frames, and the text after the final prompt is empty
	if len(frames) != 4 || frames[3] != "" {
		t.Fatalf("expected 3 frames, got %d", len(frames)-1)
	}
	for i, want := range []string{"1/4", "2/4", "3/4"} {
		if !strings.Contains(frames[i], want) {
			t.Fatalf("frame %d missing %q:\n%s", i, want, frames[i])
		}
	}
	if c.State().Index() != 2 {
		t.Fatalf("commands after quit were run")
	}
}

func TestRunStopsAtEOF(t *testing.T) {
	var out bytes.Buffer
	c := newTestController(t, "n", &out)
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if c.State().Index() != 1 {
		t.Fatalf("unterminated last line was not dispatched")
	}
	if got := strings.Count(out.String(), prompt); got != 2 {
		t.Fatalf("expected 2 frames, got %d", got)
	}
}

func TestRunFrameSize(t *testing.T) {
	var out bytes.Buffer
	c := newTestController(t, "q\n", &out)
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	screen := strings.TrimSuffix(out.String(), prompt)
	lines := strings.Split(strings.TrimSuffix(screen, "\n"), "\n")
	if len(lines) != 19 {
		t.Fatalf("frame has %d lines, want 19", len(lines))
	}
	for i, line := range lines {
		if w := textWidth(line); w > 60 {
			t.Fatalf("line %d is %d columns wide", i, w)
		}
	}
}

func TestRunAltScreen(t *testing.T) {
	var out bytes.Buffer
	c, err := NewController(testPresentation(t), ControllerConfig{
		Input:     strings.NewReader("q\n"),
		Output:    &out,
		Renderer:  NewRenderer(BoringTheme()),
		AltScreen: true,
	})
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	if err := c.Run(); err != nil {
		t.Fatalf("Run: %v", err)
	}
	s := out.String()
	if !strings.HasPrefix(s, ansiAltScreenOn) || !strings.HasSuffix(s, ansiAltScreenOff) {
		t.Fatalf("alternate screen not entered and left")
	}
	if !strings.Contains(s, ansiClearHome) {
		t.Fatalf("frame was not drawn from home")
	}
}

func TestControllerLogsStepChanges(t *testing.T) {
	var buf bytes.Buffer
	c, err := NewController(testPresentation(t), ControllerConfig{
		Input:  strings.NewReader(""),
		Output: io.Discard,
		Logger: slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})),
	})
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	_ = c.Dispatch("n")
	_ = c.Dispatch("x")
	out := buf.String()
	if !strings.Contains(out, `msg="step changed" from=0 to=1`) {
		t.Fatalf("missing step change record: %s", out)
	}
	if !strings.Contains(out, `msg="unknown command" input=x`) {
		t.Fatalf("missing unknown command record: %s", out)
	}
}

func TestNewControllerValidates(t *testing.T) {
	p := testPresentation(t)
	cases := []ControllerConfig{
		{Output: io.Discard},
		{Input: strings.NewReader("")},
	}
	for i, cfg := range cases {
		if _, err := NewController(p, cfg); err == nil {
			t.Fatalf("case %d: expected error", i)
		}
	}
	if _, err := NewController(nil, ControllerConfig{Input: strings.NewReader(""), Output: io.Discard}); err == nil {
		t.Fatalf("expected error for nil presentation")
	}
}
