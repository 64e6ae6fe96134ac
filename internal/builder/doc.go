/*
Package builder turns the records inside a closure.Scope into the nodes and
links of a GoJS graph description.

The mapping is:

  - every named position becomes a node with the position figure;
  - a position under an in-scope larger position gets a link from the
    larger position to it;
  - every named argument becomes a node with the argument figure, keyed in
    the argument range of the nodeid.Namespacer;
  - an argument about an in-scope position gets a link from the position to
    the argument, green when its verdict is the success verdict and red
    otherwise;
  - an argument countering an in-scope argument gets a red link from the
    countered argument to it.

Records without a name produce no node but still produce links, so the
editor shows a dangling edge rather than silently losing the relation.

Output follows the record store order: position nodes, position links,
argument nodes, then argument links.
*/
package builder
