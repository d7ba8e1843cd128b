package flow

import "errors"

var (
	// ErrExpandInfinite reports a request to expand output into an
	// unbounded region axis. There is no meaningful answer, so layout
	// refuses to start.
	ErrExpandInfinite = errors.New("region is unbounded")

	// ErrUnexpectedChild reports a content child whose kind the flow
	// dispatcher does not recognize. This is a content-model bug in
	// the caller, not a layout condition.
	ErrUnexpectedChild = errors.New("unexpected flow child")

	// ErrFloatCenterAnchor reports a floating placement with an
	// explicit center anchor. Floats anchor to a region edge.
	ErrFloatCenterAnchor = errors.New("floating content cannot be center-anchored")
)
