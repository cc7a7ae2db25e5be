package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeDeck(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	files := map[string]string{
		"01-intro.md": "---\ntitle: Intro\n---\n# Hello\n\n!!! note \"First\"\n    Say hi.\n",
		"02-end.md":   "# Bye\n",
	}
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	return dir
}

func TestRunInspect(t *testing.T) {
	dir := writeDeck(t)
	var stdout, stderr bytes.Buffer
	code := run([]string{"inspect", dir}, strings.NewReader(""), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, stderr.String())
	}
	out := stdout.String()
	for _, want := range []string{"2 sections, 3 steps", "01-intro.md", "Intro", "First: Say hi.", "End"} {
		if !strings.Contains(out, want) {
			t.Fatalf("outline missing %q:\n%s", want, out)
		}
	}
}

func TestRunShowQuits(t *testing.T) {
	dir := writeDeck(t)
	var stdout, stderr bytes.Buffer
	code := run([]string{"--boring", "-w", "60", "-H", "20", dir}, strings.NewReader("n\nq\n"), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, stderr.String())
	}
	out := stdout.String()
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("boring output contains escape sequences")
	}
	if got := strings.Count(out, "> "); got != 2 {
		t.Fatalf("expected 2 prompts, got %d", got)
	}
	if !strings.Contains(out, "2/3") {
		t.Fatalf("expected second frame to show 2/3:\n%s", out)
	}
}

func TestRunEmptyDirectory(t *testing.T) {
	var stdout, stderr bytes.Buffer
	code := run([]string{t.TempDir()}, strings.NewReader(""), &stdout, &stderr)
	if code != 1 {
		t.Fatalf("exit code %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "no steps") {
		t.Fatalf("unexpected stderr %q", stderr.String())
	}
}

func TestRunUsageErrors(t *testing.T) {
	cases := [][]string{
		{},
		{"a", "b"},
		{"--theme", "nope", "x"},
	}
	for _, args := range cases {
		var stdout, stderr bytes.Buffer
		dir := writeDeck(t)
		if len(args) == 3 {
			args[2] = dir
		}
		if code := run(args, strings.NewReader(""), &stdout, &stderr); code != 2 {
			t.Fatalf("run(%q) exit code %d, want 2", args, code)
		}
	}
}

func TestRunListThemes(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if code := run([]string{"--list-themes"}, strings.NewReader(""), &stdout, &stderr); code != 0 {
		t.Fatalf("exit code %d", code)
	}
	if !strings.Contains(stdout.String(), "default\n") {
		t.Fatalf("theme list missing default: %q", stdout.String())
	}
}

func TestRunLogFile(t *testing.T) {
	dir := writeDeck(t)
	logPath := filepath.Join(t.TempDir(), "smack.log")
	var stdout, stderr bytes.Buffer
	code := run([]string{"--boring", "--log-file", logPath, dir}, strings.NewReader("n\n"), &stdout, &stderr)
	if code != 0 {
		t.Fatalf("exit code %d, stderr %q", code, stderr.String())
	}
	data, err := os.ReadFile(logPath)
	if err != nil {
		t.Fatalf("read log: %v", err)
	}
	for _, want := range []string{"section loaded", "step changed"} {
		if !strings.Contains(string(data), want) {
			t.Fatalf("log missing %q:\n%s", want, data)
		}
	}
}

func TestResolveOSC8(t *testing.T) {
	cases := map[string]bool{
		"on":  true,
		"off": false,
		"1":   true,
		"0":   false,
		"":    false,
	}
	for input, want := range cases {
		got, err := resolveOSC8(input)
		if err != nil {
			t.Fatalf("resolveOSC8(%q): %v", input, err)
		}
		if got != want {
			t.Fatalf("resolveOSC8(%q)=%v want %v", input, got, want)
		}
	}
	if _, err := resolveOSC8("nope"); err == nil {
		t.Fatalf("expected error for invalid osc8 value")
	}
}

func TestScreenSizeOverrides(t *testing.T) {
	var buf bytes.Buffer
	t.Setenv("COLUMNS", "100")
	t.Setenv("LINES", "30")
	w, h := screenSize(&buf, 0, 0)()
	if w != 100 || h != 30 {
		t.Fatalf("env size = %dx%d, want 100x30", w, h)
	}
	w, h = screenSize(&buf, 50, 10)()
	if w != 50 || h != 10 {
		t.Fatalf("override size = %dx%d, want 50x10", w, h)
	}
}

func TestSplitCommand(t *testing.T) {
	cmd, rest := splitCommand([]string{"inspect", "deck"})
	if cmd != commandInspect || len(rest) != 1 || rest[0] != "deck" {
		t.Fatalf("splitCommand inspect = %q %q", cmd, rest)
	}
	cmd, rest = splitCommand([]string{"deck"})
	if cmd != commandShow || len(rest) != 1 {
		t.Fatalf("splitCommand default = %q %q", cmd, rest)
	}
}
