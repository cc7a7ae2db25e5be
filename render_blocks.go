package smack

import (
	"fmt"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
)

const (
	bulletMarker = "•"
	quotePrefix  = "│ "
	tabSpaces    = "    "
)

// blockJustify returns the justification requested by a block attribute:
// a .left/.center/.right/.full class or align=<name>.
func blockJustify(n ast.Node) (Justify, bool) {
	if v, ok := attributeString(n, "align"); ok {
		if j, ok := ParseJustify(v); ok {
			return j, true
		}
	}
	if v, ok := attributeString(n, "class"); ok {
		for _, class := range strings.Fields(v) {
			if j, ok := ParseJustify(class); ok && j != JustifyDefault {
				return j, true
			}
		}
	}
	return "", false
}

func (r *Renderer) renderBlock(n ast.Node, source []byte, width int, justify Justify) []string {
	if j, ok := blockJustify(n); ok {
		justify = j
	}
	width = max(width, 1)
	switch node := n.(type) {
	case *ast.Heading:
		style := r.styles.Heading[min(max(node.Level, 1), 6)-1]
		return alignLines(wrapLines(r.inline(node, source, style), width), width, JustifyCenter)
	case *ast.Paragraph, *ast.TextBlock:
		return alignLines(wrapLines(r.inline(node, source, r.styles.Text), width), width, justify)
	case *ast.List:
		return alignBlock(r.renderList(node, source, width, justify), width, justify)
	case *ast.Blockquote:
		return r.renderQuote(node, source, width, justify)
	case *ast.FencedCodeBlock:
		return r.renderCode(codeLines(node, source), string(node.Language(source)), width)
	case *ast.CodeBlock:
		return r.renderCode(codeLines(node, source), "", width)
	case *ast.ThematicBreak:
		return []string{r.styles.ThematicBreak.Render(strings.Repeat("─", width))}
	case *ast.HTMLBlock:
		lines := codeLines(node, source)
		if node.HasClosure() {
			lines = append(lines, strings.TrimRight(string(node.ClosureLine.Value(source)), "\r\n"))
		}
		for i, line := range lines {
			lines[i] = r.styles.Footer.Render(line)
		}
		return lines
	case *east.Table:
		return alignBlock(r.renderTable(node, source, width), width, justify)
	case *east.FootnoteList:
		return r.renderFootnotes(node, source, width)
	case *Admonition:
		return r.renderAdmonition(node, source, width, justify)
	case *Container:
		return r.renderContainer(node, source, width, justify)
	default:
		if n.HasChildren() {
			return r.renderChildren(n, source, width, justify, true)
		}
		return nil
	}
}

// renderChildren renders the block children of n, separated by blank lines
// when loose.
func (r *Renderer) renderChildren(n ast.Node, source []byte, width int, justify Justify, loose bool) []string {
	var out []string
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		lines := r.renderBlock(c, source, width, justify)
		if len(lines) == 0 {
			continue
		}
		if loose && len(out) > 0 {
			out = append(out, "")
		}
		out = append(out, lines...)
	}
	return out
}

// alignBlock moves a block as a whole, keeping its lines aligned with each
// other.
func alignBlock(lines []string, width int, justify Justify) []string {
	switch justify {
	case JustifyCenter:
		return centerBlock(lines, width)
	case JustifyRight:
		widest := 0
		for _, line := range lines {
			widest = max(widest, textWidth(line))
		}
		out := make([]string, len(lines))
		for i, line := range lines {
			out[i] = indentTo(line, width-widest)
		}
		return out
	default:
		return lines
	}
}

func (r *Renderer) renderList(list *ast.List, source []byte, width int, justify Justify) []string {
	var out []string
	num := list.Start
	if list.IsOrdered() && num == 0 {
		num = 1
	}
	itemJustify := JustifyLeft
	if justify == JustifyFull {
		itemJustify = JustifyFull
	}
	for item := list.FirstChild(); item != nil; item = item.NextSibling() {
		marker := bulletMarker
		if list.IsOrdered() {
			marker = fmt.Sprintf("%d%c", num, list.Marker)
			num++
		}
		indent := textWidth(marker) + 1
		body := r.renderChildren(item, source, width-indent, itemJustify, !list.IsTight)
		if len(body) == 0 {
			body = []string{""}
		}
		if !list.IsTight && len(out) > 0 {
			out = append(out, "")
		}
		for i, line := range body {
			switch {
			case i == 0:
				out = append(out, r.styles.ListMarker.Render(marker)+" "+line)
			case line == "":
				out = append(out, "")
			default:
				out = append(out, strings.Repeat(" ", indent)+line)
			}
		}
	}
	return out
}

func (r *Renderer) renderQuote(n ast.Node, source []byte, width int, justify Justify) []string {
	prefix := r.styles.Quote.Render(quotePrefix)
	lines := r.renderChildren(n, source, width-textWidth(quotePrefix), justify, true)
	for i, line := range lines {
		lines[i] = prefix + line
	}
	return lines
}

// renderCode centers a code block. Blocks tagged with a language other than
// "text" are framed in a panel titled with the language.
func (r *Renderer) renderCode(lines []string, lang string, width int) []string {
	widest := 0
	for i, line := range lines {
		line = strings.ReplaceAll(line, "\t", tabSpaces)
		widest = max(widest, runewidth.StringWidth(line))
		lines[i] = line
	}
	for i, line := range lines {
		lines[i] = r.styles.CodeBlock.Render(line)
	}
	if lang == "" || strings.EqualFold(lang, "text") {
		return centerBlock(lines, width)
	}
	boxWidth := min(widest+panelChrome, width)
	return centerBlock(r.panel(lang, "", lines, boxWidth, len(lines)+2), width)
}

func codeLines(n ast.Node, source []byte) []string {
	text := strings.TrimRight(string(codeText(n, source)), "\n")
	if text == "" {
		return nil
	}
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, "\r")
	}
	return lines
}

func (r *Renderer) renderTable(table *east.Table, source []byte, width int) []string {
	var rows [][]string
	header := -1
	for row := table.FirstChild(); row != nil; row = row.NextSibling() {
		style := r.styles.Text
		if row.Kind() == east.KindTableHeader {
			header = len(rows)
			style = r.styles.Strong
		}
		var cells []string
		for cell := row.FirstChild(); cell != nil; cell = cell.NextSibling() {
			cells = append(cells, r.inline(cell, source, style))
		}
		rows = append(rows, cells)
	}
	cols := len(table.Alignments)
	for _, row := range rows {
		cols = max(cols, len(row))
	}
	if cols == 0 {
		return nil
	}
	widths := make([]int, cols)
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], textWidth(cell))
		}
	}
	sep := " " + r.styles.Border.Render("│") + " "
	if limit := (width - 3*(cols-1)) / cols; sumInts(widths)+3*(cols-1) > width && limit > 0 {
		for i := range widths {
			widths[i] = min(widths[i], limit)
		}
	}
	var out []string
	for i, row := range rows {
		parts := make([]string, cols)
		for c := 0; c < cols; c++ {
			cell := ""
			if c < len(row) {
				cell = truncateWithEllipsis(row[c], widths[c])
			}
			align := east.AlignNone
			if c < len(table.Alignments) {
				align = table.Alignments[c]
			}
			parts[c] = alignCell(cell, widths[c], align)
		}
		out = append(out, strings.Join(parts, sep))
		if i == header {
			rules := make([]string, cols)
			for c := range rules {
				rules[c] = strings.Repeat("─", widths[c])
			}
			out = append(out, r.styles.Border.Render(strings.Join(rules, "─┼─")))
		}
	}
	return out
}

func alignCell(cell string, width int, align east.Alignment) string {
	free := width - textWidth(cell)
	if free <= 0 {
		return cell
	}
	switch align {
	case east.AlignRight:
		return strings.Repeat(" ", free) + cell
	case east.AlignCenter:
		return strings.Repeat(" ", free/2) + cell + strings.Repeat(" ", free-free/2)
	default:
		return cell + strings.Repeat(" ", free)
	}
}

func sumInts(values []int) int {
	total := 0
	for _, v := range values {
		total += v
	}
	return total
}

func (r *Renderer) renderFootnotes(list *east.FootnoteList, source []byte, width int) []string {
	out := []string{r.styles.ThematicBreak.Render(strings.Repeat("─", min(width, 20)))}
	for fn := list.FirstChild(); fn != nil; fn = fn.NextSibling() {
		footnote, ok := fn.(*east.Footnote)
		if !ok {
			continue
		}
		label := r.styles.LinkText.Render(fmt.Sprintf("[%d]", footnote.Index))
		indent := textWidth(label) + 1
		body := r.renderChildren(footnote, source, width-indent, JustifyLeft, false)
		for i, line := range body {
			if i == 0 {
				out = append(out, label+" "+line)
			} else {
				out = append(out, strings.Repeat(" ", indent)+line)
			}
		}
	}
	return out
}

// renderAdmonition draws an admonition nested inside another block.
func (r *Renderer) renderAdmonition(n *Admonition, source []byte, width int, justify Justify) []string {
	var out []string
	if n.Title != "" {
		out = append(out, r.styles.Strong.Render(n.Title))
	}
	for _, line := range r.renderChildren(n, source, width-2, justify, true) {
		out = append(out, indentTo(line, 2))
	}
	return out
}

func (r *Renderer) renderContainer(n *Container, source []byte, width int, justify Justify) []string {
	switch n.Name {
	case ContainerCenter:
		return centerBlock(r.renderChildren(n, source, width, JustifyLeft, true), width)
	case ContainerPlot:
		plot, err := PlotFromContainer(Node{Kind: BlockContainer, Block: n, Source: source})
		if err != nil {
			// a broken plot only replaces itself
			return wrapLines(r.styles.Error.Render("plot: "+err.Error()), width)
		}
		return centerBlock(plot.Lines(width, 0, r.styles), width)
	default:
		return r.renderChildren(n, source, width, justify, true)
	}
}

