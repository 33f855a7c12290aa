package suggest

// Key is a keyboard event the selection machine understands.
type Key int

const (
	KeyDown Key = iota
	KeyUp
	KeyEnter
	KeyEscape
)

// Op classifies the resolved outcome of a key press.
type Op int

const (
	// OpNone means the key had no effect in the current state.
	OpNone Op = iota
	// OpMove means the highlighted index changed.
	OpMove
	// OpCommit means the suggestion at Effect.Index should be committed:
	// its text becomes the query and an explicit search starts.
	OpCommit
	// OpSearch means an explicit search with the current query text.
	OpSearch
	// OpHide means the dropdown was dismissed, query text unchanged.
	OpHide
)

// Effect is the resolved outcome of a key press.
type Effect struct {
	Kind  Op
	Index int // suggestion index, meaningful for OpCommit only
}

// Selection tracks which suggestion, if any, is highlighted. Index -1
// means no selection; otherwise it is a valid index into the current
// list. Replacing the list always resets the index to -1.
type Selection struct {
	visible bool
	index   int
	length  int
}

// NewSelection returns the initial hidden state.
func NewSelection() Selection {
	return Selection{index: -1}
}

// Show makes a freshly replaced list of n suggestions visible with no
// selection.
func (s *Selection) Show(n int) {
	s.visible = true
	s.index = -1
	s.length = n
}

// Hide dismisses the dropdown and clears the selection.
func (s *Selection) Hide() {
	s.visible = false
	s.index = -1
	s.length = 0
}

// ResetIndex clears the highlighted entry without changing visibility.
func (s *Selection) ResetIndex() {
	s.index = -1
}

// Visible reports whether the dropdown is shown.
func (s Selection) Visible() bool { return s.visible }

// Index returns the highlighted entry, -1 for none.
func (s Selection) Index() int { return s.index }

// Len returns the length of the list the selection ranges over.
func (s Selection) Len() int { return s.length }

// Resolve is the pure transition function of the selection machine,
// keyed by (state, key). Arrow keys wrap around the list bounds; from
// -1, down lands on the first entry and up on the last. Enter resolves
// to a commit when an entry is highlighted and to an explicit search
// otherwise. Escape hides the dropdown.
func Resolve(s Selection, k Key) (Selection, Effect) {
	switch k {
	case KeyDown:
		if !s.visible || s.length == 0 {
			return s, Effect{Kind: OpNone}
		}
		s.index = (s.index + 1) % s.length
		return s, Effect{Kind: OpMove}

	case KeyUp:
		if !s.visible || s.length == 0 {
			return s, Effect{Kind: OpNone}
		}
		if s.index < 0 {
			s.index = s.length - 1
		} else {
			s.index = (s.index - 1 + s.length) % s.length
		}
		return s, Effect{Kind: OpMove}

	case KeyEnter:
		if s.visible && s.index >= 0 {
			committed := s.index
			s.Hide()
			return s, Effect{Kind: OpCommit, Index: committed}
		}
		return s, Effect{Kind: OpSearch}

	case KeyEscape:
		if s.visible {
			s.Hide()
			return s, Effect{Kind: OpHide}
		}
		return s, Effect{Kind: OpNone}
	}

	return s, Effect{Kind: OpNone}
}
