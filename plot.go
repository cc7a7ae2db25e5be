package smack

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/yuin/goldmark/ast"
)

var (
	// ErrPlotColumns reports plot data without exactly two columns.
	ErrPlotColumns = errors.New("plot data must have 2 columns")
	// ErrPlotData reports plot data that cannot be read.
	ErrPlotData = errors.New("invalid plot data")
)

// Plot is a labeled series read from the csv block of a plot container. The
// header row names the axes: the first column holds the x values, the second
// the y values.
type Plot struct {
	XLabel string
	YLabel string
	X      []string
	Y      []float64
}

// ParsePlot reads two-column CSV data with a header row.
func ParsePlot(data []byte) (*Plot, error) {
	r := csv.NewReader(bytes.NewReader(data))
	r.FieldsPerRecord = -1
	r.TrimLeadingSpace = true
	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPlotData, err)
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("%w: missing header row", ErrPlotData)
	}
	header := records[0]
	if len(header) != 2 {
		return nil, fmt.Errorf("%w, got %d", ErrPlotColumns, len(header))
	}
	p := &Plot{
		XLabel: strings.TrimSpace(header[0]),
		YLabel: strings.TrimSpace(header[1]),
	}
	for i, rec := range records[1:] {
		if len(rec) != 2 {
			return nil, fmt.Errorf("%w, got %d on row %d", ErrPlotColumns, len(rec), i+2)
		}
		y, err := strconv.ParseFloat(strings.TrimSpace(rec[1]), 64)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %q is not a number", ErrPlotData, i+2, rec[1])
		}
		if math.IsInf(y, 0) || math.IsNaN(y) {
			return nil, fmt.Errorf("%w: row %d: %q is not finite", ErrPlotData, i+2, rec[1])
		}
		p.X = append(p.X, strings.TrimSpace(rec[0]))
		p.Y = append(p.Y, y)
	}
	return p, nil
}

// PlotFromContainer reads the first csv fenced code block of a plot container.
func PlotFromContainer(n Node) (*Plot, error) {
	c := n.Container()
	if c == nil || c.Name != ContainerPlot {
		return nil, fmt.Errorf("%w: not a plot container", ErrPlotData)
	}
	code := firstFencedCode(c, n.Source, "csv")
	if code == nil {
		return nil, fmt.Errorf("%w: missing csv code block", ErrPlotData)
	}
	return ParsePlot(codeText(code, n.Source))
}

func codeText(n ast.Node, source []byte) []byte {
	var buf bytes.Buffer
	lines := n.Lines()
	for i := 0; i < lines.Len(); i++ {
		seg := lines.At(i)
		buf.Write(seg.Value(source))
	}
	return buf.Bytes()
}

// Lines draws the plot as a horizontal bar chart at most width columns wide
// and height rows tall. Rows beyond height are dropped.
func (p *Plot) Lines(width, height int, styles Styles) []string {
	labelWidth := runewidth.StringWidth(p.XLabel)
	valueWidth := 0
	values := make([]string, len(p.Y))
	peak := 0.0
	for i, y := range p.Y {
		labelWidth = max(labelWidth, runewidth.StringWidth(p.X[i]))
		values[i] = strconv.FormatFloat(y, 'g', -1, 64)
		valueWidth = max(valueWidth, len(values[i]))
		peak = math.Max(peak, math.Abs(y))
	}
	barWidth := width - labelWidth - valueWidth - 3
	if barWidth < 1 {
		barWidth = 1
	}
	out := []string{styles.PanelTitle.Render(runewidth.FillLeft("", labelWidth+2) + p.YLabel)}
	rows := len(p.Y)
	if height > 2 && rows > height-2 {
		rows = height - 2
	}
	for i := 0; i < rows; i++ {
		n := 0
		if peak > 0 && !math.IsInf(peak, 0) && p.Y[i] > 0 {
			n = int(math.Round(p.Y[i] / peak * float64(barWidth)))
		}
		n = min(max(n, 0), barWidth)
		bar := styles.Bar.Render(strings.Repeat("█", n))
		out = append(out, fmt.Sprintf("%s %s%s %s",
			runewidth.FillLeft(p.X[i], labelWidth),
			styles.Border.Render("│"),
			bar,
			values[i]))
	}
	axis := runewidth.FillLeft("", labelWidth) + " " + styles.Border.Render("└"+strings.Repeat("─", barWidth)) + " " + p.XLabel
	return append(out, axis)
}
