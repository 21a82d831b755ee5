package editor

import "strings"

// Selector is the searchable pick-list used by the theme and font browsers.
// It keeps a full item list, a free-text filter, and a selection index into
// the filtered view. Every filter change recomputes the view and resets the
// selection to the top.
type Selector struct {
	items    []string
	filter   string
	filtered []string
	index    int
}

// NewSelector returns a selector over items with an empty filter.
func NewSelector(items []string) *Selector {
	s := &Selector{items: items}
	s.SetFilter("")
	return s
}

// SetFilter replaces the filter text. The filtered view is the
// case-insensitive substring match of the filter against every item.
func (s *Selector) SetFilter(filter string) {
	s.filter = filter
	needle := strings.ToLower(filter)
	s.filtered = s.filtered[:0]
	for _, item := range s.items {
		if strings.Contains(strings.ToLower(item), needle) {
			s.filtered = append(s.filtered, item)
		}
	}
	s.index = 0
}

// Filter returns the current filter text.
func (s *Selector) Filter() string { return s.filter }

// Filtered returns the current filtered view. Callers must not mutate it.
func (s *Selector) Filtered() []string { return s.filtered }

// Len returns the size of the filtered view.
func (s *Selector) Len() int { return len(s.filtered) }

// Index returns the selection index within the filtered view.
func (s *Selector) Index() int { return s.index }

// Selected returns the selected item, or false when the view is empty.
func (s *Selector) Selected() (string, bool) {
	if s.index < 0 || s.index >= len(s.filtered) {
		return "", false
	}
	return s.filtered[s.index], true
}

// MoveUp moves the selection toward the top, clamped.
func (s *Selector) MoveUp() {
	if s.index > 0 {
		s.index--
	}
}

// MoveDown moves the selection toward the bottom, clamped.
func (s *Selector) MoveDown() {
	if s.index+1 < len(s.filtered) {
		s.index++
	}
}
