// Package friends detects "friend pairs" of vertices and contracts them.
//
// A pair (u, v), u ≠ v, is a friend pair when every simple u→v path with at
// most cutoff edges (DefaultCutoff = 3) passes the following test: inside the
// subgraph induced by that path's vertices there is at least one simple u→v
// path of even edge-length. Pairs with no bounded path at all are not friends.
// Adjacent vertices are never friends: the direct edge induces a subgraph
// whose only u→v path has length 1.
//
// Contracting a friend pair replaces both vertices by a fresh vertex adjacent
// to the union of their neighborhoods. A Reducer repeats "find pairs, contract
// the first" until no pair remains, one Step at a time or via Run.
//
// Path enumeration is exponential in the worst case; the cutoff is what keeps
// the search tractable, so it is always required to be positive.
package friends
