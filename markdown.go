package smack

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/text"
)

// NewMarkdown returns the goldmark engine for the presentation dialect:
// CommonMark plus tables, strikethrough, footnotes, admonitions, the plot and
// center containers and block attributes.
func NewMarkdown() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.Table,
			extension.Strikethrough,
			extension.Footnote,
			Admonitions,
			Containers(ContainerPlot, ContainerCenter),
			BlockAttributes,
		),
	)
}

// Document is a parsed Markdown file as an ordered list of top-level nodes.
// A leading front matter block, if any, is the first node.
type Document struct {
	Source []byte
	Nodes  []Node
}

// ParseDocument parses src into top-level nodes.
func ParseDocument(src []byte) *Document {
	return parseWith(NewMarkdown(), src)
}

func parseWith(md goldmark.Markdown, src []byte) *Document {
	doc := &Document{}
	block, rest, ok := splitFrontMatter(src)
	if ok {
		doc.Nodes = append(doc.Nodes, Node{Kind: BlockFrontMatter, Source: block})
	}
	doc.Source = rest
	root := md.Parser().Parse(text.NewReader(rest))
	for n := root.FirstChild(); n != nil; n = n.NextSibling() {
		doc.Nodes = append(doc.Nodes, newNode(n, rest))
	}
	return doc
}
