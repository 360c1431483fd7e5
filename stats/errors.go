package stats

import "errors"

// Sentinel errors for statistics.
var (
	// ErrNilNetwork is returned when a nil network is passed.
	ErrNilNetwork = errors.New("stats: network is nil")

	// ErrNodeNotFound is returned when the node is not attached to the network.
	ErrNodeNotFound = errors.New("stats: node not found")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("stats: invalid option supplied")
)
