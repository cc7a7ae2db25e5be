package smack

import (
	"strings"

	"github.com/muesli/reflow/ansi"
	"github.com/muesli/reflow/truncate"
	"github.com/muesli/reflow/wordwrap"
	"github.com/muesli/reflow/wrap"
)

func textWidth(s string) int {
	return ansi.PrintableRuneWidth(s)
}

func truncateWithEllipsis(text string, limit int) string {
	if textWidth(text) <= limit {
		return text
	}
	if limit <= 0 {
		return ""
	}
	return truncate.StringWithTail(text, uint(limit), "…")
}

// wrapLines word-wraps s to width, breaking words longer than width.
func wrapLines(s string, width int) []string {
	if width <= 0 {
		return strings.Split(s, "\n")
	}
	wrapped := wrap.String(wordwrap.String(s, width), width)
	lines := strings.Split(wrapped, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return lines
}

// padRight pads s with spaces to width.
func padRight(s string, width int) string {
	if w := textWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

// alignLines aligns each line within width. Full justification spreads the
// words of every line except the last one.
func alignLines(lines []string, width int, justify Justify) []string {
	out := make([]string, len(lines))
	for i, line := range lines {
		switch justify {
		case JustifyCenter:
			out[i] = indentTo(line, (width-textWidth(line))/2)
		case JustifyRight:
			out[i] = indentTo(line, width-textWidth(line))
		case JustifyFull:
			if i < len(lines)-1 {
				out[i] = spreadWords(line, width)
			} else {
				out[i] = line
			}
		default:
			out[i] = line
		}
	}
	return out
}

// centerBlock shifts a block of lines right so its widest line is centered,
// keeping the lines aligned with each other.
func centerBlock(lines []string, width int) []string {
	widest := 0
	for _, line := range lines {
		widest = max(widest, textWidth(line))
	}
	offset := (width - widest) / 2
	out := make([]string, len(lines))
	for i, line := range lines {
		out[i] = indentTo(line, offset)
	}
	return out
}

func indentTo(line string, n int) string {
	if n <= 0 || line == "" {
		return line
	}
	return strings.Repeat(" ", n) + line
}

func spreadWords(line string, width int) string {
	lead := len(line) - len(strings.TrimLeft(line, " "))
	words := strings.Fields(line[lead:])
	if len(words) < 2 {
		return line
	}
	used := lead
	for _, w := range words {
		used += textWidth(w)
	}
	gaps := len(words) - 1
	free := width - used
	if free < gaps {
		return line
	}
	var b strings.Builder
	b.WriteString(line[:lead])
	for i, w := range words {
		b.WriteString(w)
		if i == gaps {
			break
		}
		n := free / gaps
		if i < free%gaps {
			n++
		}
		b.WriteString(strings.Repeat(" ", n))
	}
	return b.String()
}
