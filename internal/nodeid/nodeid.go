package nodeid

import (
	"fmt"

	"github.com/vk/hypergraph/internal/record"
)

// DefaultOffset is the argument key offset used when none is configured.
const DefaultOffset = 10000

// Key is a node key in the rendered graph.
type Key int

// Namespacer allocates disjoint key ranges per record collection.
type Namespacer struct {
	Offset int
}

// New returns a Namespacer with the given argument offset. A non-positive
// offset selects DefaultOffset.
func New(offset int) Namespacer {
	if offset <= 0 {
		offset = DefaultOffset
	}
	return Namespacer{Offset: offset}
}

// Key returns the namespaced key of a record. Debates are never rendered as
// nodes and have no key; asking for one panics.
func (n Namespacer) Key(kind record.Kind, id record.ID) Key {
	switch kind {
	case record.KindPosition:
		return Key(id)
	case record.KindArgument:
		return Key(int(id) + n.Offset)
	default:
		panic(fmt.Sprintf("nodeid: no key space for %s records", kind))
	}
}

// Position is shorthand for Key(record.KindPosition, id).
func (n Namespacer) Position(id record.ID) Key {
	return n.Key(record.KindPosition, id)
}

// Argument is shorthand for Key(record.KindArgument, id).
func (n Namespacer) Argument(id record.ID) Key {
	return n.Key(record.KindArgument, id)
}

// Fits reports whether id stays inside the range reserved for its collection,
// i.e. a position id below the offset.
func (n Namespacer) Fits(kind record.Kind, id record.ID) bool {
	if kind == record.KindPosition {
		return int(id) < n.Offset
	}
	return true
}

// Resolve maps a key back to the collection and record id it was allocated
// for. Keys at or above the offset are attributed to arguments.
func (n Namespacer) Resolve(k Key) (record.Kind, record.ID) {
	if int(k) >= n.Offset {
		return record.KindArgument, record.ID(int(k) - n.Offset)
	}
	return record.KindPosition, record.ID(k)
}
