package smack

// Step is one screen of a presentation.
type Step struct {
	// Section owns the step. Lookup only.
	Section *Section
	// Index is the position of the step within its section.
	Index int
	// Body holds the section's non-admonition nodes up to this step.
	Body []Node
	// Info is the admonition that closed the step, or the end-of-section
	// marker for the last step of a section.
	Info Node
}

// Title returns the section title.
func (s *Step) Title() string {
	if s.Section == nil {
		return ""
	}
	return s.Section.Title
}

// Justify returns the justification for the step body.
func (s *Step) Justify() Justify {
	if s.Section == nil {
		return JustifyCenter
	}
	return s.Section.Justify
}

// InfoTitle returns the admonition title, or "" when there is none.
func (s *Step) InfoTitle() string {
	if a := s.Info.Admonition(); a != nil {
		return a.Title
	}
	return ""
}

// InfoBody returns the admonition's content blocks. An admonition with a
// title but no body yields nil.
func (s *Step) InfoBody() []Node {
	if s.Info.Admonition() == nil {
		return nil
	}
	return s.Info.Children()
}

// IsEndOfSection reports whether s is the closing step of its section.
func (s *Step) IsEndOfSection() bool {
	return s.Section != nil && s.Index == len(s.Section.Steps)-1
}
