// Package layout carries the hand-made arrangement of a saved graph over to a
// freshly built one.
//
// Node placement (loc, size) is matched by node key and link routing (points)
// by the (from, to) pair. Only those fields are copied; text, figure and
// colour always come from the fresh graph. Nodes and links that did not exist
// before receive no layout, and saved entries that no longer exist are
// dropped.
//
// When the saved graph holds several links with the same endpoints, the first
// one wins and the pair is reported as ambiguous.
package layout
