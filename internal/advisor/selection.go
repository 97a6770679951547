package advisor

import "sort"

// Selection is an immutable set of checked criterion ids.
// The zero value is the empty selection.
type Selection struct {
	ids map[string]struct{}
}

// NewSelection builds a selection from ids; duplicates collapse
func NewSelection(ids ...string) Selection {
	if len(ids) == 0 {
		return Selection{}
	}
	set := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return Selection{ids: set}
}

// Toggle returns a new selection with id added if absent or removed if present.
// The receiver is left untouched.
func (s Selection) Toggle(id string) Selection {
	next := make(map[string]struct{}, len(s.ids)+1)
	for k := range s.ids {
		next[k] = struct{}{}
	}
	if _, ok := next[id]; ok {
		delete(next, id)
	} else {
		next[id] = struct{}{}
	}
	return Selection{ids: next}
}

// Has reports whether id is selected
func (s Selection) Has(id string) bool {
	_, ok := s.ids[id]
	return ok
}

// Len returns the number of selected ids
func (s Selection) Len() int {
	return len(s.ids)
}

// IsEmpty returns true if nothing is selected
func (s Selection) IsEmpty() bool {
	return len(s.ids) == 0
}

// IDs returns the selected ids sorted
func (s Selection) IDs() []string {
	out := make([]string, 0, len(s.ids))
	for id := range s.ids {
		out = append(out, id)
	}
	sort.Strings(out)
	return out
}
