// internal/nodeid/doc.go

/*
Package nodeid maps record identifiers onto graph node keys.

Positions and arguments share one key space in the rendered graph, but their
record ids are only unique inside their own collection. The Namespacer keeps
the two apart by shifting argument ids by a fixed offset:

	position 6  -> key 6
	argument 1  -> key 10001   (offset 10000)

Nothing checks that position ids stay below the offset. A position id at or
above it collides with the argument range; Fits lets callers detect that and
warn about it.
*/
package nodeid
