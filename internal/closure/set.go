package closure

import (
	"sort"

	"github.com/vk/hypergraph/internal/record"
)

// Set is a set of record ids from one collection.
type Set map[record.ID]struct{}

// NewSet returns a set holding ids.
func NewSet(ids ...record.ID) Set {
	s := make(Set, len(ids))
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts id and reports whether it was not present before.
func (s Set) Add(id record.ID) bool {
	if _, ok := s[id]; ok {
		return false
	}
	s[id] = struct{}{}
	return true
}

// Has reports whether id is in the set.
func (s Set) Has(id record.ID) bool {
	_, ok := s[id]
	return ok
}

// HasAny reports whether any of ids is in the set.
func (s Set) HasAny(ids []record.ID) bool {
	for _, id := range ids {
		if s.Has(id) {
			return true
		}
	}
	return false
}

// Sorted returns the ids in ascending order.
func (s Set) Sorted() []record.ID {
	out := make([]record.ID, 0, len(s))
	for id := range s {
		out = append(out, id)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}
