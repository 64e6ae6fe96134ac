package closure

import (
	"context"
	"errors"
	"fmt"

	"github.com/vk/hypergraph/internal/ctxlog"
	"github.com/vk/hypergraph/internal/record"
)

// DefaultAllDebates is the debate id that stands for the whole hierarchy in
// Hypernomicon databases.
const DefaultAllDebates record.ID = 1

// ErrRootNotFound is returned when the root debate is neither a known debate
// nor the all-debates sentinel.
var ErrRootNotFound = errors.New("root debate not found")

// Options tunes Compute.
type Options struct {
	// AllDebates is the root id that selects every debate without walking
	// the hierarchy.
	AllDebates record.ID
}

// Scope is the result of a closure: the ids of every in-scope record, per
// collection.
type Scope struct {
	Debates   Set
	Positions Set
	Arguments Set
}

// Compute returns the records that descend from root, root included.
func Compute(ctx context.Context, st record.Store, root record.ID, opts Options) (Scope, error) {
	logger := ctxlog.FromContext(ctx)

	debates, err := debateClosure(st, root, opts)
	if err != nil {
		return Scope{}, err
	}
	logger.Debug("Debate closure complete.", "root", root, "debates", len(debates))

	positions := positionClosure(st, debates)
	logger.Debug("Position closure complete.", "positions", len(positions))

	arguments := argumentClosure(st, positions)
	logger.Debug("Argument closure complete.", "arguments", len(arguments))

	return Scope{Debates: debates, Positions: positions, Arguments: arguments}, nil
}

func debateClosure(st record.Store, root record.ID, opts Options) (Set, error) {
	all := opts.AllDebates
	if all == 0 {
		all = DefaultAllDebates
	}
	if root == all {
		set := NewSet(root)
		for _, d := range st.Debates() {
			set.Add(d.ID)
		}
		return set, nil
	}
	if !record.HasDebate(st, root) {
		return nil, fmt.Errorf("%w: %d", ErrRootNotFound, root)
	}

	children := make(adjacency)
	for _, d := range st.Debates() {
		children.link(d.LargerDebates, d.ID)
	}
	return children.reach(root), nil
}

func positionClosure(st record.Store, debates Set) Set {
	var seeds []record.ID
	children := make(adjacency)
	for _, p := range st.Positions() {
		if debates.HasAny(p.Debates) {
			seeds = append(seeds, p.ID)
		}
		children.link(p.LargerPositions, p.ID)
	}
	return children.reach(seeds...)
}

func argumentClosure(st record.Store, positions Set) Set {
	var seeds []record.ID
	children := make(adjacency)
	for _, a := range st.Arguments() {
		for _, ref := range a.Positions {
			if positions.Has(ref.Position) {
				seeds = append(seeds, a.ID)
				break
			}
		}
		children.link(a.Counterarguments, a.ID)
	}
	return children.reach(seeds...)
}

// adjacency maps a parent id to the ids of records that point at it.
type adjacency map[record.ID][]record.ID

func (adj adjacency) link(parents []record.ID, child record.ID) {
	for _, p := range parents {
		adj[p] = append(adj[p], child)
	}
}

// reach returns seeds plus everything reachable from them.
func (adj adjacency) reach(seeds ...record.ID) Set {
	set := make(Set)
	queue := make([]record.ID, 0, len(seeds))
	for _, s := range seeds {
		if set.Add(s) {
			queue = append(queue, s)
		}
	}
	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		for _, child := range adj[id] {
			if set.Add(child) {
				queue = append(queue, child)
			}
		}
	}
	return set
}
