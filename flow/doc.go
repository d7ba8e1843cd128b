// Package flow implements the pagination engine: it packs an ordered
// stream of prepared content children (spacing, paragraphs, blocks,
// placed and floating boxes, footnote-bearing content) into a sequence
// of bounded regions, producing one finished frame per consumed region.
//
// # Layout
//
// The entry point is [Layout]:
//
//	regions := flow.NewRegions(model.Size{W: 612, H: 792}, nil, true, model.Axes{})
//	regions.Root = true
//	fragment, err := flow.Layout(delegate, locator, children, styles, regions)
//
// The engine handles weak-spacing collapse, orphan control for sticky
// blocks, fractional leftover-space distribution, deferred floats, and
// footnotes, including the transactional re-layout of footnote entries
// that do not fit their region.
//
// # Collaborators
//
// The engine does not shape paragraphs or lay out arbitrary block
// content itself; it consumes those capabilities through the [Delegate]
// interface. The root typeflow package provides a standard
// implementation.
//
// # Regions
//
// A [Regions] cursor describes the sequence of areas to fill: the
// current region's remaining size, a backlog of future region sizes and
// an optional repeatable final size. Only root flows (cursor opened
// with Root set) process floats and footnotes; nested flows leave them
// to the outermost one, except that a columns container inside a root
// flow takes the responsibility over.
//
// # Errors
//
// Overflow, floats that do not fit, and footnote entries that do not
// fit are not errors: the engine breaks regions, defers floats and
// retries footnotes internally. Errors reported by [Layout] are fatal
// input problems: expansion into an unbounded region
// ([ErrExpandInfinite]), an unclassifiable child
// ([ErrUnexpectedChild]), or a center-anchored float
// ([ErrFloatCenterAnchor]).
package flow
