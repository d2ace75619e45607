package suggest

// IndexPolicy decides what happens to the highlighted index when the query changes.
type IndexPolicy string

const (
	// ResetAlways moves the highlight to the first item on every query change.
	ResetAlways IndexPolicy = "reset"
	// PreserveOnEmptyReopen keeps the previous index when the list is
	// reopened with an empty query after an empty query.
	PreserveOnEmptyReopen IndexPolicy = "preserve"
)

// IsValid reports whether p is a known policy.
func (p IndexPolicy) IsValid() bool {
	switch p {
	case ResetAlways, PreserveOnEmptyReopen:
		return true
	default:
		return false
	}
}

// Selection is the visible suggestion list and its highlighted index.
// Index is meaningless while Items is empty.
type Selection struct {
	Items []Item
	Index int
	Query string

	policy  IndexPolicy
	updated bool
}

// NewSelection returns an empty selection using policy.
func NewSelection(policy IndexPolicy) *Selection {
	if !policy.IsValid() {
		policy = ResetAlways
	}
	return &Selection{policy: policy}
}

// Update replaces the visible items for a new query and resets the index.
func (s *Selection) Update(items []Item, query string) {
	preserve := s.policy == PreserveOnEmptyReopen && s.updated && s.Query == "" && query == ""

	s.Items = items
	s.Query = query
	s.updated = true

	if !preserve {
		s.Index = 0
	}
	s.clampIndex()
}

// Down moves the highlight one item down, stopping at the last item.
func (s *Selection) Down() {
	s.Index++
	s.clampIndex()
}

// Up moves the highlight one item up, stopping at the first item.
func (s *Selection) Up() {
	s.Index--
	s.clampIndex()
}

// Selected returns the highlighted item, if any.
func (s *Selection) Selected() (Item, bool) {
	if len(s.Items) == 0 {
		return Item{}, false
	}
	return s.Items[s.Index], true
}

// Empty reports whether there is nothing to show.
func (s *Selection) Empty() bool {
	return len(s.Items) == 0
}

// Len returns the number of visible items.
func (s *Selection) Len() int {
	return len(s.Items)
}

func (s *Selection) clampIndex() {
	if s.Index > len(s.Items)-1 {
		s.Index = len(s.Items) - 1
	}
	if s.Index < 0 {
		s.Index = 0
	}
}
