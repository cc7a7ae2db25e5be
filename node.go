package smack

import (
	"github.com/yuin/goldmark/ast"
	east "github.com/yuin/goldmark/extension/ast"
)

// BlockKind tags a top-level node.
type BlockKind uint8

const (
	BlockOther BlockKind = iota
	BlockParagraph
	BlockHeading
	BlockList
	BlockCode
	BlockQuote
	BlockTable
	BlockThematicBreak
	BlockHTML
	BlockFootnotes
	BlockAdmonition
	BlockContainer
	BlockFrontMatter
)

var blockKindNames = [...]string{
	BlockOther:         "other",
	BlockParagraph:     "paragraph",
	BlockHeading:       "heading",
	BlockList:          "list",
	BlockCode:          "code",
	BlockQuote:         "quote",
	BlockTable:         "table",
	BlockThematicBreak: "thematic-break",
	BlockHTML:          "html",
	BlockFootnotes:     "footnotes",
	BlockAdmonition:    "admonition",
	BlockContainer:     "container",
	BlockFrontMatter:   "front-matter",
}

func (k BlockKind) String() string {
	if int(k) < len(blockKindNames) {
		return blockKindNames[k]
	}
	return "unknown"
}

// Node is one top-level block of a document. Block is nil for front matter,
// whose raw text (delimiters included) is in Source.
type Node struct {
	Kind   BlockKind
	Block  ast.Node
	Source []byte
}

func newNode(n ast.Node, source []byte) Node {
	return Node{Kind: classify(n), Block: n, Source: source}
}

func classify(n ast.Node) BlockKind {
	switch n.Kind() {
	case ast.KindParagraph, ast.KindTextBlock:
		return BlockParagraph
	case ast.KindHeading:
		return BlockHeading
	case ast.KindList:
		return BlockList
	case ast.KindFencedCodeBlock, ast.KindCodeBlock:
		return BlockCode
	case ast.KindBlockquote:
		return BlockQuote
	case east.KindTable:
		return BlockTable
	case ast.KindThematicBreak:
		return BlockThematicBreak
	case ast.KindHTMLBlock:
		return BlockHTML
	case east.KindFootnoteList:
		return BlockFootnotes
	case KindAdmonition:
		return BlockAdmonition
	case KindContainer:
		return BlockContainer
	default:
		return BlockOther
	}
}

// Admonition returns the admonition block, or nil for other kinds.
func (n Node) Admonition() *Admonition {
	a, _ := n.Block.(*Admonition)
	return a
}

// Container returns the container block, or nil for other kinds.
func (n Node) Container() *Container {
	c, _ := n.Block.(*Container)
	return c
}

// Children returns the block children of n as nodes.
func (n Node) Children() []Node {
	if n.Block == nil {
		return nil
	}
	var out []Node
	for c := n.Block.FirstChild(); c != nil; c = c.NextSibling() {
		out = append(out, newNode(c, n.Source))
	}
	return out
}

// Attr returns a block attribute set by a preceding `{...}` line.
func (n Node) Attr(name string) (string, bool) {
	return attributeString(n.Block, name)
}

// Text returns the plain inline text of n.
func (n Node) Text() string {
	if n.Block == nil {
		return ""
	}
	return plainText(n.Block, n.Source)
}
