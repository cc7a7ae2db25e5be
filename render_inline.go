package smack

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
)

// inline renders the inline children of n with style as the base style.
func (r *Renderer) inline(n ast.Node, source []byte, style lipgloss.Style) string {
	var b strings.Builder
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		r.writeInline(&b, c, source, style)
	}
	return b.String()
}

func (r *Renderer) writeInline(b *strings.Builder, n ast.Node, source []byte, style lipgloss.Style) {
	switch node := n.(type) {
	case *ast.Text:
		b.WriteString(style.Render(string(node.Value(source))))
		switch {
		case node.HardLineBreak():
			b.WriteString("\n")
		case node.SoftLineBreak():
			b.WriteString(" ")
		}
	case *ast.String:
		b.WriteString(style.Render(string(node.Value)))
	case *ast.CodeSpan:
		b.WriteString(r.styles.CodeInline.Render(plainText(node, source)))
	case *ast.Emphasis:
		s := r.styles.Emphasis
		if node.Level >= 2 {
			s = r.styles.Strong
		}
		b.WriteString(r.inline(node, source, s.Inherit(style)))
	case *east.Strikethrough:
		b.WriteString(r.inline(node, source, r.styles.Strikethrough.Inherit(style)))
	case *ast.Link:
		r.writeLink(b, string(node.Destination), plainText(node, source), r.inline(node, source, r.styles.LinkText.Inherit(style)))
	case *ast.AutoLink:
		label := string(node.Label(source))
		r.writeLink(b, string(node.URL(source)), label, r.styles.LinkText.Inherit(style).Render(label))
	case *ast.Image:
		b.WriteString(r.styles.LinkText.Render("[image: " + plainText(node, source) + "]"))
	case *ast.RawHTML:
		for i := 0; i < node.Segments.Len(); i++ {
			seg := node.Segments.At(i)
			b.WriteString(r.styles.Footer.Render(string(seg.Value(source))))
		}
	case *east.FootnoteLink:
		b.WriteString(r.styles.LinkText.Render("[" + strconv.Itoa(node.Index) + "]"))
	case *east.FootnoteBacklink:
	default:
		b.WriteString(r.inline(n, source, style))
	}
}

// writeLink writes the styled label followed by the destination unless the
// label already shows it, or an OSC 8 hyperlink when enabled.
func (r *Renderer) writeLink(b *strings.Builder, url, text, label string) {
	if r.osc8 {
		b.WriteString(hyperlink(url, label))
		return
	}
	b.WriteString(label)
	if url != "" && text != strings.TrimPrefix(url, "mailto:") && text != url {
		b.WriteString(" " + r.styles.LinkURL.Render("("+url+")"))
	}
}

// plainText returns the unstyled text of n. Block children are joined with
// a space.
func plainText(n ast.Node, source []byte) string {
	var b strings.Builder
	writePlain(&b, n, source)
	return strings.TrimSpace(b.String())
}

func writePlain(b *strings.Builder, n ast.Node, source []byte) {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		switch node := c.(type) {
		case *ast.Text:
			b.Write(node.Value(source))
			if node.SoftLineBreak() || node.HardLineBreak() {
				b.WriteByte(' ')
			}
		case *ast.String:
			b.Write(node.Value)
		case *ast.AutoLink:
			b.Write(node.Label(source))
		case *east.FootnoteLink:
			b.WriteString("[" + strconv.Itoa(node.Index) + "]")
		default:
			if c.Type() == ast.TypeBlock && b.Len() > 0 {
				b.WriteByte(' ')
			}
			writePlain(b, c, source)
		}
	}
}
