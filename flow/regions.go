package flow

import (
	"fmt"

	"github.com/tsawler/typeflow/model"
)

// Regions tracks the sequence of areas available to a flow: the current
// region's remaining space, the sizes of the regions that follow, and
// an optional repeatable final size.
type Regions struct {
	// Size is the remaining space in the current region. It shrinks
	// as items are placed.
	Size model.Size

	// Full is the un-consumed size of the current region, used for
	// ratio math and the float anchor choice.
	Full model.Size

	// Backlog holds the sizes of subsequent regions, consumed front
	// to back once the current region is finished.
	Backlog []model.Size

	// Last is a size repeated indefinitely once the backlog is
	// exhausted ("every further page looks like this"). Nil means the
	// backlog is all there is.
	Last *model.Size

	// Expand selects, per axis, whether output frames fill the full
	// region size or shrink to their content.
	Expand model.Axes

	// Root marks the flow that owns floats and footnotes. Nested
	// flows are laid out with Root unset.
	Root bool
}

// NewRegions creates a cursor over a first region of the given size
// followed by backlog. If repeat is set, the final size (the last
// backlog entry, or the first size when the backlog is empty) repeats
// indefinitely.
func NewRegions(first model.Size, backlog []model.Size, repeat bool, expand model.Axes) Regions {
	r := Regions{Size: first, Full: first, Backlog: backlog, Expand: expand}
	if repeat {
		last := first
		if len(backlog) > 0 {
			last = backlog[len(backlog)-1]
		}
		r.Last = &last
	}
	return r
}

// One creates a cursor with a single region and no follow-up regions
func One(base model.Size, expand model.Axes) Regions {
	return Regions{Size: base, Full: base, Expand: expand}
}

// Base returns the size used for measuring children: the full region
// height at the current region's width, ignoring consumption and
// expansion.
func (r Regions) Base() model.Size {
	return model.Size{W: r.Size.W, H: r.Full.H}
}

// IsFull reports whether the current region has no usable space left
func (r Regions) IsFull() bool {
	return r.Size.H <= model.Eps
}

// InLast reports whether the current region is the final one: no
// backlog remains and the current region already has the repeatable
// size (or there is no repeatable size at all). Content that does not
// fit the last region stays in it; there is nowhere better.
func (r Regions) InLast() bool {
	if len(r.Backlog) > 0 {
		return false
	}
	return r.Last == nil || model.ApproxEq(r.Last.H, r.Full.H)
}

// Next advances to the next region, resetting Size and Full from the
// backlog or the repeatable last size. Advancing past the final region
// keeps its size; the cursor never runs out.
func (r *Regions) Next() {
	if len(r.Backlog) > 0 {
		r.Full = r.Backlog[0]
		r.Backlog = r.Backlog[1:]
	} else if r.Last != nil {
		r.Full = *r.Last
	}
	r.Size = r.Full
}

// WithRoot returns a copy of the cursor with the root flag replaced
func (r Regions) WithRoot(root bool) Regions {
	r.Root = root
	return r
}

// Validate rejects contradictory setups before layout begins: asking
// output to expand to fill an unbounded axis has no answer.
func (r Regions) Validate() error {
	sizes := append([]model.Size{r.Full}, r.Backlog...)
	if r.Last != nil {
		sizes = append(sizes, *r.Last)
	}
	for _, size := range sizes {
		if r.Expand.X && !model.IsFinite(size.W) {
			return fmt.Errorf("cannot expand width into unbounded region: %w", ErrExpandInfinite)
		}
		if r.Expand.Y && !model.IsFinite(size.H) {
			return fmt.Errorf("cannot expand height into unbounded region: %w", ErrExpandInfinite)
		}
	}
	return nil
}
