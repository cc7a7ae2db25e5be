package smack

import (
	"fmt"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"github.com/yuin/goldmark/util"
)

// KindAttributeBlock is the goldmark node kind of a block attribute line.
var KindAttributeBlock = ast.NewNodeKind("AttributeBlock")

// AttributeBlock holds the attributes of a `{#id .class key=value}` line until
// they are moved onto the block that follows it.
type AttributeBlock struct {
	ast.BaseBlock
}

// Kind implements ast.Node.
func (n *AttributeBlock) Kind() ast.NodeKind { return KindAttributeBlock }

// Dump implements ast.Node.
func (n *AttributeBlock) Dump(source []byte, level int) {
	ast.DumpHelper(n, source, level, nil, nil)
}

type attributeBlockParser struct{}

func (p *attributeBlockParser) Trigger() []byte {
	return []byte{'{'}
}

func (p *attributeBlockParser) Open(parent ast.Node, reader text.Reader, pc parser.Context) (ast.Node, parser.State) {
	line, _ := reader.PeekLine()
	pos := pc.BlockOffset()
	if pos < 0 || pos >= len(line) || line[pos] != '{' || pc.BlockIndent() >= 4 {
		return nil, parser.NoChildren
	}
	savedLine, savedPos := reader.Position()
	reader.Advance(pos)
	attrs, ok := parser.ParseAttributes(reader)
	if ok {
		rest, _ := reader.PeekLine()
		ok = util.IsBlank(rest)
	}
	if !ok {
		reader.SetPosition(savedLine, savedPos)
		return nil, parser.NoChildren
	}
	node := &AttributeBlock{}
	for _, attr := range attrs {
		node.SetAttribute(attr.Name, attr.Value)
	}
	rest, _ := reader.PeekLine()
	reader.Advance(lineContentLen(rest))
	return node, parser.NoChildren
}

func (p *attributeBlockParser) Continue(node ast.Node, reader text.Reader, pc parser.Context) parser.State {
	return parser.Close
}

func (p *attributeBlockParser) Close(node ast.Node, reader text.Reader, pc parser.Context) {}

func (p *attributeBlockParser) CanInterruptParagraph() bool { return false }

func (p *attributeBlockParser) CanAcceptIndentedLine() bool { return false }

// attributeTransformer moves attribute lines onto their following sibling.
// A trailing attribute line with nothing after it is dropped.
type attributeTransformer struct{}

func (t *attributeTransformer) Transform(doc *ast.Document, reader text.Reader, pc parser.Context) {
	var found []ast.Node
	_ = ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}
		if n.Kind() == KindAttributeBlock {
			found = append(found, n)
			return ast.WalkSkipChildren, nil
		}
		if n.Type() == ast.TypeInline {
			return ast.WalkSkipChildren, nil
		}
		return ast.WalkContinue, nil
	})
	for _, n := range found {
		target := n.NextSibling()
		for target != nil && target.Kind() == KindAttributeBlock {
			target = target.NextSibling()
		}
		if target != nil {
			for _, attr := range n.Attributes() {
				target.SetAttribute(attr.Name, attr.Value)
			}
		}
		n.Parent().RemoveChild(n.Parent(), n)
	}
}

type blockAttributes struct{}

// BlockAttributes is a goldmark extension attaching `{...}` attribute lines
// to the block that follows them.
var BlockAttributes goldmark.Extender = &blockAttributes{}

func (e *blockAttributes) Extend(m goldmark.Markdown) {
	m.Parser().AddOptions(
		parser.WithBlockParsers(util.Prioritized(&attributeBlockParser{}, 170)),
		parser.WithASTTransformers(util.Prioritized(&attributeTransformer{}, 100)),
	)
}

// attributeString returns a block attribute as a string.
func attributeString(n ast.Node, name string) (string, bool) {
	if n == nil {
		return "", false
	}
	v, ok := n.AttributeString(name)
	if !ok {
		return "", false
	}
	switch val := v.(type) {
	case []byte:
		return string(val), true
	case string:
		return val, true
	default:
		return fmt.Sprint(val), true
	}
}
