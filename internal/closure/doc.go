/*
Package closure computes which records fall under a root debate.

Records only point upwards (a position names its debate, an argument names
the position it argues about), but extraction needs to walk downwards from the
root. Compute therefore inverts each parent-pointer relation into a child
adjacency list once and runs a worklist reachability over it, in three stages:

 1. Debates: the root and every debate whose larger_debate chain reaches it.
 2. Positions: positions attached to an in-scope debate, then every position
    whose larger_position chain reaches one of those.
 3. Arguments: arguments about an in-scope position, then every argument
    whose counterargument chain reaches one of those.

Sets only grow and each id is queued at most once, so cyclic references
terminate. References to ids that no record carries add nothing.
*/
package closure
