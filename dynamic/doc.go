// Package dynamic adds a time axis to core.Network.
//
// A dynamic.Network holds one core.Network snapshot per discrete time
// instant t ≥ 0, ordered by t. It starts with an empty snapshot at t=0.
//
// Forking:
//
//	SetCurrentTime(t) with no snapshot at t inserts a deep copy
//	(core.Network.Copy) of the snapshot at the greatest instant ≤ t and makes
//	it current. Later edits to either snapshot never reach the other.
//	Negative instants are ignored.
//
// Delegation:
//
//	Every Graph Store operation (CreateNode, Connect, RemoveNode, Neighbours,
//	...) acts on the current snapshot. Node and Link values are owned by one
//	snapshot; address entities of other instants by id.
//
// Complexity:
//
//	Snapshot lookup and floor search are O(log T) over T instants
//	(red-black tree); a fork costs O(V+E) of the copied snapshot.
package dynamic
