package flow

import (
	"github.com/tsawler/typeflow/content"
	"github.com/tsawler/typeflow/model"
)

// flowItem is one pending placement in the current region. The variant
// set is closed; the measurement and placement passes in finalize.go
// switch over every variant.
type flowItem interface {
	// outOfFlow reports whether the item consumes no flow space at
	// all. A region holding only such items is not worth emitting.
	outOfFlow() bool
}

// absoluteItem is resolved vertical spacing. Weak spacing collapses to
// nothing when no frame precedes it in the region.
type absoluteItem struct {
	amount float64
	weak   bool
}

func (*absoluteItem) outOfFlow() bool { return false }

// fracItem is spacing taking a proportional share of the leftover
// region space, resolved only at finalization.
type fracItem struct {
	share float64
}

func (*fracItem) outOfFlow() bool { return false }

// frameItem is a rendered box in normal stacking order. sticky glues it
// to the following item across region breaks; movable marks it as
// eligible for footnote scanning and the footnote rollback.
type frameItem struct {
	frame   *model.Frame
	alignX  model.FixedAlign
	alignY  model.FixedAlign
	sticky  bool
	movable bool
}

// A zero-size frame carrying only tags is pure metadata and does not
// justify a region of its own.
func (f *frameItem) outOfFlow() bool {
	if f.frame.Width() != 0 || f.frame.Height() != 0 {
		return false
	}
	for _, item := range f.frame.Items() {
		if item.Kind != model.ItemTag {
			return false
		}
	}
	return true
}

// placedItem is an absolutely positioned box. Non-floating placements
// consume no flow height; floating ones reserve a band at a region edge
// and are deferred when they do not fit.
type placedItem struct {
	frame     *model.Frame
	alignX    model.FixedAlign
	alignY    content.YAlign
	delta     model.Point
	float     bool
	clearance float64
}

func (p *placedItem) outOfFlow() bool { return !p.float }

// footnoteItem is a footnote separator or entry frame, anchored to the
// bottom of its region. Its height was already reserved by the footnote
// handler.
type footnoteItem struct {
	frame *model.Frame
}

func (*footnoteItem) outOfFlow() bool { return false }
