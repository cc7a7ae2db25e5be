package smack

import (
	"bytes"
	"strings"
	"unicode"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// KindAdmonition is the goldmark node kind of an admonition block.
var KindAdmonition = ast.NewNodeKind("Admonition")

// Admonition is a callout block:
//
//	!!! tag "Optional title"
//	    indented body
//
// The title is the quoted string or the rest of the line; without one it is
// the capitalized tag. An empty quoted title ("") leaves the title empty.
type Admonition struct {
	ast.BaseBlock
	Tag   string
	Title string
}

// Kind implements ast.Node.
func (n *Admonition) Kind() ast.NodeKind { return KindAdmonition }

// Dump implements ast.Node.
func (n *Admonition) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, map[string]string{
		"Tag":   n.Tag,
		"Title": n.Title,
	}, nil)
}

var admonitionMarker = []byte("!!!")

const admonitionIndent = 4

type admonitionParser struct{}

func (p *admonitionParser) Trigger() []byte {
	return []byte{'!'}
}

func (p *admonitionParser) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	line, _ := reader.PeekLine()
	pos := pc.BlockOffset()
	if pos < 0 || pos >= len(line) || pc.BlockIndent() >= admonitionIndent {
		return nil, parser.NoChildren
	}
	rest := line[pos:]
	if !bytes.HasPrefix(rest, admonitionMarker) {
		return nil, parser.NoChildren
	}
	tag, title, ok := parseAdmonitionHeader(rest[len(admonitionMarker):])
	if !ok {
		return nil, parser.NoChildren
	}
	reader.Advance(lineContentLen(line))
	return &Admonition{Tag: tag, Title: title}, parser.HasChildren
}

func (p *admonitionParser) Continue(node ast.Node, reader text.Reader, pc parser.Context) parser.State {
	line, _ := reader.PeekLine()
	if util.IsBlank(line) {
		return parser.Continue | parser.HasChildren
	}
	pos, padding := util.IndentPosition(line, reader.LineOffset(), admonitionIndent)
	if pos < 0 {
		return parser.Close
	}
	reader.AdvanceAndSetPadding(pos, padding)
	return parser.Continue | parser.HasChildren
}

func (p *admonitionParser) Close(node ast.Node, reader text.Reader, pc parser.Context) {}

func (p *admonitionParser) CanInterruptParagraph() bool { return true }

func (p *admonitionParser) CanAcceptIndentedLine() bool { return false }

// parseAdmonitionHeader parses ` tag "title"` following the marker.
func parseAdmonitionHeader(b []byte) (tag, title string, ok bool) {
	if len(b) == 0 || (b[0] != ' ' && b[0] != '\t') {
		return "", "", false
	}
	header := strings.TrimSpace(string(b))
	if header == "" {
		return "", "", false
	}
	tag = header
	rest := ""
	if i := strings.IndexAny(header, " \t"); i >= 0 {
		tag = header[:i]
		rest = strings.TrimSpace(header[i:])
	}
	if strings.HasPrefix(tag, `"`) {
		return "", "", false
	}
	switch {
	case len(rest) >= 2 && strings.HasPrefix(rest, `"`) && strings.HasSuffix(rest, `"`):
		title = rest[1 : len(rest)-1]
	case rest != "":
		title = rest
	default:
		title = capitalize(tag)
	}
	return tag, title, true
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// lineContentLen is the length of line without its trailing newline.
func lineContentLen(line []byte) int {
	n := len(line)
	if n > 0 && line[n-1] == '\n' {
		n--
	}
	if n > 0 && line[n-1] == '\r' {
		n--
	}
	return n
}

type admonitions struct{}

// Admonitions is a goldmark extension parsing `!!!` admonition blocks.
var Admonitions goldmark.Extender = &admonitions{}

func (e *admonitions) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(parser.WithBlockParsers(
		util.Prioritized(&admonitionParser{}, 150),
	))
}
