package smack

// State is a cursor over the flattened steps of a presentation. The cursor
// always stays within [0, Len()); moves past either end are no-ops.
type State struct {
	steps  []*Step
	cursor int
}

// NewState starts at the first step. An empty step list yields
// ErrEmptyPresentation.
func NewState(steps []*Step) (*State, error) {
	if len(steps) == 0 {
		return nil, ErrEmptyPresentation
	}
	return &State{steps: steps}, nil
}

// Current returns the step under the cursor.
func (s *State) Current() *Step { return s.steps[s.cursor] }

// Index returns the cursor.
func (s *State) Index() int { return s.cursor }

// Len returns the number of steps.
func (s *State) Len() int { return len(s.steps) }

// Next moves to the following step, stopping at the last one.
func (s *State) Next() {
	s.cursor = min(s.cursor+1, len(s.steps)-1)
}

// Previous moves to the preceding step, stopping at the first one.
func (s *State) Previous() {
	s.cursor = max(s.cursor-1, 0)
}

// Start moves to the first step.
func (s *State) Start() { s.cursor = 0 }

// End moves to the last step.
func (s *State) End() { s.cursor = len(s.steps) - 1 }
