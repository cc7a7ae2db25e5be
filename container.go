package smack

import (
	"bytes"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// KindContainer is the goldmark node kind of a named container block.
var KindContainer = ast.NewNodeKind("Container")

// Container is a named fenced block:
//
//	::: plot
//	```csv
//	x,y
//	1,2
//	```
//	:::
type Container struct {
	ast.BaseBlock
	Name string

	fence int
}

// Kind implements ast.Node.
func (n *Container) Kind() ast.NodeKind { return KindContainer }

// Dump implements ast.Node.
func (n *Container) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{"Name": n.Name}, nil)
}

const (
	// ContainerPlot renders its csv code block as a bar chart.
	ContainerPlot = "plot"
	// ContainerCenter horizontally centers its content.
	ContainerCenter = "center"
)

const minContainerFence = 3

type containerParser struct {
	names map[string]struct{}
}

func (p *containerParser) Trigger() []byte {
	return []byte{':'}
}

func (p *containerParser) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	line, _ := reader.PeekLine()
	pos := pc.BlockOffset()
	if pos < 0 || pos >= len(line) || pc.BlockIndent() >= 4 {
		return nil, parser.NoChildren
	}
	fence := countFence(line[pos:])
	if fence < minContainerFence {
		return nil, parser.NoChildren
	}
	name := strings.TrimSpace(string(line[pos+fence:]))
	if i := strings.IndexAny(name, " \t"); i >= 0 {
		name = name[:i]
	}
	if _, ok := p.names[name]; !ok {
		return nil, parser.NoChildren
	}
	reader.Advance(lineContentLen(line))
	return &Container{Name: name, fence: fence}, parser.HasChildren
}

func (p *containerParser) Continue(node ast.Node, reader text.Reader, pc parser.Context) parser.State {
	line, _ := reader.PeekLine()
	c := node.(*Container)
	trimmed := util.TrimLeftSpace(line)
	if len(line)-len(trimmed) < 4 {
		fence := countFence(trimmed)
		if fence >= c.fence && util.IsBlank(trimmed[fence:]) {
			reader.Advance(lineContentLen(line))
			return parser.Close
		}
	}
	return parser.Continue | parser.HasChildren
}

func (p *containerParser) Close(node ast.Node, reader text.Reader, pc parser.Context) {}

func (p *containerParser) CanInterruptParagraph() bool { return true }

func (p *containerParser) CanAcceptIndentedLine() bool { return false }

func countFence(b []byte) int {
	n := 0
	for n < len(b) && b[n] == ':' {
		n++
	}
	return n
}

type containers struct {
	names []string
}

// Containers returns a goldmark extension parsing `:::` blocks with one of
// the given names. Blocks with other names are left to the other parsers.
func Containers(names ...string) goldmark.Extender {
	return &containers{names: names}
}

func (e *containers) Extend(m goldmark.Markdown) {
	set := make(map[string]struct{}, len(e.names))
	for _, name := range e.names {
		set[strings.TrimSpace(name)] = struct{}{}
	}
	m.Parser().AddOptions(parser.WithBlockParsers(
		util.Prioritized(&containerParser{names: set}, 160),
	))
}

// firstFencedCode returns the first fenced code block child tagged lang.
func firstFencedCode(n ast.Node, source []byte, lang string) *ast.FencedCodeBlock {
	for c := n.FirstChild(); c != nil; c = c.NextSibling() {
		fenced, ok := c.(*ast.FencedCodeBlock)
		if !ok {
			continue
		}
		if bytes.EqualFold(fenced.Language(source), []byte(lang)) {
			return fenced
		}
	}
	return nil
}
