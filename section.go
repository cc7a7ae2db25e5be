package smack

import (
	"fmt"
	"os"
	"slices"
	"strings"
	"sync"
)

// Justify is the text justification of a section body.
type Justify string

const (
	JustifyDefault Justify = "default"
	JustifyLeft    Justify = "left"
	JustifyCenter  Justify = "center"
	JustifyRight   Justify = "right"
	JustifyFull    Justify = "full"
)

// ParseJustify parses a justification name. Matching ignores case and
// surrounding space.
func ParseJustify(s string) (Justify, bool) {
	switch j := Justify(strings.ToLower(strings.TrimSpace(s))); j {
	case JustifyDefault, JustifyLeft, JustifyCenter, JustifyRight, JustifyFull:
		return j, true
	default:
		return "", false
	}
}

// Section is one source file split into steps.
type Section struct {
	Path        string
	Title       string
	Justify     Justify
	FrontMatter map[string]any
	Steps       []*Step
}

const endOfSectionMarkdown = "!!! end\n\tContinue to next section...\n"

// endOfSection is the info node of the last step of every section.
var endOfSection = sync.OnceValue(func() Node {
	return ParseDocument([]byte(endOfSectionMarkdown)).Nodes[0]
})

// LoadSection reads and segments one Markdown file.
func LoadSection(path string) (*Section, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	if err := ValidateInput(src); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return NewSection(path, src)
}

// NewSection parses src and segments it into steps. path is only recorded.
func NewSection(path string, src []byte) (*Section, error) {
	s := &Section{
		Path:        path,
		Justify:     JustifyCenter,
		FrontMatter: map[string]any{},
	}
	doc := ParseDocument(src)
	nodes, err := s.extractFrontMatter(doc.Nodes)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	s.segment(nodes)
	return s, nil
}

// extractFrontMatter decodes front matter nodes into s and returns the
// remaining nodes.
func (s *Section) extractFrontMatter(nodes []Node) ([]Node, error) {
	rest := make([]Node, 0, len(nodes))
	for _, n := range nodes {
		if n.Kind != BlockFrontMatter {
			rest = append(rest, n)
			continue
		}
		meta, err := decodeFrontMatter(n.Source)
		if err != nil {
			return nil, err
		}
		for k, v := range meta {
			s.FrontMatter[k] = v
		}
	}
	if v, ok := s.FrontMatter["title"]; ok && v != nil {
		s.Title = fmt.Sprint(v)
	}
	if v, ok := s.FrontMatter["justify"]; ok && v != nil {
		j, ok := ParseJustify(fmt.Sprint(v))
		if !ok {
			return nil, fmt.Errorf("%w: unknown justify %q", ErrFrontMatter, fmt.Sprint(v))
		}
		s.Justify = j
	}
	return rest, nil
}

// segment splits nodes into steps. Every admonition closes a step whose body
// is everything before it; the body keeps growing across steps. A final step
// with the end-of-section marker always follows.
func (s *Section) segment(nodes []Node) {
	var body []Node
	for _, n := range nodes {
		switch n.Kind {
		case BlockAdmonition:
			s.appendStep(body, n)
		case BlockFrontMatter:
		default:
			body = append(body, n)
		}
	}
	s.appendStep(body, endOfSection())
}

func (s *Section) appendStep(body []Node, info Node) {
	s.Steps = append(s.Steps, &Step{
		Section: s,
		Index:   len(s.Steps),
		Body:    slices.Clone(body),
		Info:    info,
	})
}
