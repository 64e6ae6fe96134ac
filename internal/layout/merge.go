package layout

import (
	"github.com/vk/hypergraph/internal/gojs"
	"github.com/vk/hypergraph/internal/nodeid"
)

// Report describes what Merge carried over.
type Report struct {
	NodesPlaced int
	LinksRouted int
	NewNodes    int
	// DroppedKeys lists saved node keys with no fresh counterpart, in saved
	// order. Their layout is discarded.
	DroppedKeys []nodeid.Key
	// AmbiguousPairs lists link endpoints that occur more than once in the
	// saved graph, in the order first seen.
	AmbiguousPairs []gojs.Pair
}

// Merge returns a copy of fresh with loc, size and points taken from saved.
// A nil saved model yields an unchanged copy of fresh. Neither input is
// modified.
func Merge(fresh, saved *gojs.Model) (*gojs.Model, Report) {
	out := fresh.Clone()
	var rep Report
	if saved == nil {
		rep.NewNodes = len(out.Nodes)
		return out, rep
	}

	nodes := make(map[nodeid.Key]gojs.Node, len(saved.Nodes))
	for _, n := range saved.Nodes {
		if _, ok := nodes[n.Key]; !ok {
			nodes[n.Key] = n
		}
	}
	links := make(map[gojs.Pair]gojs.Link, len(saved.Links))
	reported := make(map[gojs.Pair]bool)
	for _, l := range saved.Links {
		p := l.Pair()
		if _, ok := links[p]; ok {
			if !reported[p] {
				reported[p] = true
				rep.AmbiguousPairs = append(rep.AmbiguousPairs, p)
			}
			continue
		}
		links[p] = l
	}

	seen := make(map[nodeid.Key]bool, len(out.Nodes))
	for i := range out.Nodes {
		n := &out.Nodes[i]
		seen[n.Key] = true
		prev, ok := nodes[n.Key]
		if !ok {
			rep.NewNodes++
			continue
		}
		if prev.Loc != "" {
			n.Loc = prev.Loc
		}
		if prev.Size != "" {
			n.Size = prev.Size
		}
		if prev.HasLayout() {
			rep.NodesPlaced++
		}
	}
	for _, n := range saved.Nodes {
		if !seen[n.Key] {
			seen[n.Key] = true
			rep.DroppedKeys = append(rep.DroppedKeys, n.Key)
		}
	}

	for i := range out.Links {
		l := &out.Links[i]
		prev, ok := links[l.Pair()]
		if !ok || len(prev.Points) == 0 {
			continue
		}
		l.Points = append([]float64(nil), prev.Points...)
		rep.LinksRouted++
	}
	return out, rep
}
