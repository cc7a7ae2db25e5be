package smack

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

const (
	defaultInfoLines = 1
	minFrameWidth    = 20
	minBodyHeight    = 3
	// panel border plus one column of padding on each side
	panelChrome = 4
)

// Renderer draws steps as terminal screens.
type Renderer struct {
	styles    Styles
	osc8      bool
	infoLines int
}

// NewRenderer returns a renderer using theme. A nil theme uses DefaultTheme.
func NewRenderer(theme Theme, opts ...RenderOption) *Renderer {
	cfg := renderConfig{infoLines: defaultInfoLines}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if theme == nil {
		theme = DefaultTheme()
	}
	return &Renderer{
		styles:    theme.Styles(),
		osc8:      cfg.osc8,
		infoLines: cfg.infoLines,
	}
}

// Frame is one screen to draw.
type Frame struct {
	Step *Step
	// Position is the index of Step in the presentation, Total the number of
	// steps; both are shown in the footer.
	Position int
	Total    int
	Width    int
	Height   int
}

// RenderFrame draws a blank line, the body panel titled with the section
// title and the info footer panel titled with the admonition title. The
// result has exactly f.Height lines unless f.Height is too small to fit the
// panels.
func (r *Renderer) RenderFrame(f Frame) string {
	width := max(f.Width, minFrameWidth)
	infoHeight := r.infoLines + 2
	bodyHeight := max(f.Height-1-infoHeight, minBodyHeight)
	inner := width - panelChrome

	step := f.Step
	lines := []string{""}
	lines = append(lines, r.panel(step.Title(), "", r.RenderBody(step.Body, inner, step.Justify()), width, bodyHeight)...)
	status := ""
	if f.Total > 0 {
		status = fmt.Sprintf("%d/%d", f.Position+1, f.Total)
	}
	lines = append(lines, r.panel(step.InfoTitle(), status, r.RenderInfo(step, inner), width, infoHeight)...)
	return strings.Join(lines, "\n") + "\n"
}

// RenderBody renders body nodes to lines at most width columns wide.
func (r *Renderer) RenderBody(nodes []Node, width int, justify Justify) []string {
	var out []string
	for _, n := range nodes {
		if n.Block == nil {
			continue
		}
		lines := r.renderBlock(n.Block, n.Source, width, justify)
		if len(lines) == 0 {
			continue
		}
		if len(out) > 0 {
			out = append(out, "")
		}
		out = append(out, lines...)
	}
	return out
}

// RenderInfo renders the admonition content of step. A missing body renders
// as nothing.
func (r *Renderer) RenderInfo(step *Step, width int) []string {
	return r.RenderBody(step.InfoBody(), width, JustifyLeft)
}

// panel frames content in a rounded border of the given outer size. The
// title is centered in the top border, the footer right-aligned in the
// bottom border. Content is clipped to fit.
func (r *Renderer) panel(title, footer string, content []string, width, height int) []string {
	border := lipgloss.RoundedBorder()
	innerWidth := width - 2
	contentWidth := innerWidth - 2
	rows := max(height-2, 0)

	out := make([]string, 0, rows+2)
	out = append(out, r.borderLine(border.TopLeft, border.Top, border.TopRight, title, innerWidth, lipgloss.Center))
	side := r.styles.Border.Render(border.Left)
	sideRight := r.styles.Border.Render(border.Right)
	for i := 0; i < rows; i++ {
		line := ""
		if i < len(content) {
			line = truncateWithEllipsis(content[i], contentWidth)
		}
		out = append(out, side+" "+padRight(line, contentWidth)+" "+sideRight)
	}
	out = append(out, r.borderLine(border.BottomLeft, border.Bottom, border.BottomRight, footer, innerWidth, lipgloss.Right))
	return out
}

func (r *Renderer) borderLine(left, fill, right, label string, width int, pos lipgloss.Position) string {
	if label == "" || width < 6 {
		return r.styles.Border.Render(left + strings.Repeat(fill, max(width, 0)) + right)
	}
	label = " " + truncateWithEllipsis(label, width-4) + " "
	free := width - textWidth(label)
	before := free / 2
	if pos == lipgloss.Right {
		before = free - 1
	}
	return r.styles.Border.Render(left+strings.Repeat(fill, before)) +
		r.styles.PanelTitle.Render(label) +
		r.styles.Border.Render(strings.Repeat(fill, free-before)+right)
}
