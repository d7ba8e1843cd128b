package flow

import (
	"github.com/tsawler/typeflow/content"
	"github.com/tsawler/typeflow/model"
)

// finishRegion turns the pending items into one finished frame, pushes
// it to the output, and opens the next region. Without force, a region
// holding only out-of-flow items is finalized as an empty frame and the
// items stay pending, so meaningless intermediate pages are not
// manufactured.
func (l *Layouter) finishRegion(force bool) error {
	if !force && len(l.items) > 0 && allOutOfFlow(l.items) {
		l.finished = append(l.finished, model.NewFrame(l.initial))
		l.nextRegion()
		return nil
	}

	// Trailing weak spacing has no frame after it to justify it.
	for len(l.items) > 0 {
		last, ok := l.items[len(l.items)-1].(*absoluteItem)
		if !ok || !last.weak {
			break
		}
		l.regions.Size.H += last.amount
		l.items = l.items[:len(l.items)-1]
	}

	// Measurement pass.
	var (
		fr             float64
		used           model.Size
		footnoteHeight float64
		floatTop       float64
		floatBottom    float64
	)
	firstFootnote := true
	for _, item := range l.items {
		switch it := item.(type) {
		case *absoluteItem:
			used.H += it.amount
		case *fracItem:
			fr += it.share
		case *frameItem:
			used.H += it.frame.Height()
			used.MaxW(it.frame.Width())
		case *placedItem:
			if !it.float {
				continue
			}
			switch it.alignY {
			case content.YTop:
				floatTop += it.frame.Height()
			case content.YBottom:
				floatBottom += it.frame.Height()
			}
		case *footnoteItem:
			footnoteHeight += it.frame.Height()
			if !firstFootnote {
				footnoteHeight += l.fnGap
			}
			firstFootnote = false
			used.MaxW(it.frame.Width())
		}
	}
	used.H += footnoteHeight + floatTop + floatBottom

	// Final region size: expansion picks the full size, otherwise the
	// content size, clamped to the region. Fractional spacing and
	// footnotes always claim the whole (finite) region height.
	size := l.expand.Select(l.initial, used).Min(l.initial)
	if (fr > 0 || l.hasFootnotes) && model.IsFinite(l.initial.H) {
		size.H = l.initial.H
	}

	// Placement pass. The ruler is the loosest vertical alignment
	// seen so far; once content asked to sit lower, everything after
	// it stays at least that low.
	output := model.NewFrame(size)
	ruler := model.AlignStart
	offset := floatTop
	var (
		floatTopOffset    float64
		floatBottomOffset float64
		footnoteOffset    float64
	)

	for _, item := range l.items {
		switch it := item.(type) {
		case *absoluteItem:
			offset += it.amount

		case *fracItem:
			if fr > 0 {
				leftover := size.H - used.H
				if model.IsFinite(leftover) && leftover > 0 {
					offset += it.share / fr * leftover
				}
			}

		case *frameItem:
			ruler = ruler.Max(it.alignY)
			x := it.alignX.Position(size.W - it.frame.Width())
			y := offset + ruler.Position(size.H-used.H)
			offset += it.frame.Height()
			output.PushFrame(model.Point{X: x, Y: y}, it.frame)

		case *placedItem:
			x := it.alignX.Position(size.W - it.frame.Width())
			var y float64
			switch {
			case !it.float:
				switch it.alignY {
				case content.YTop:
					y = 0
				case content.YCenter:
					y = model.AlignCenter.Position(size.H - it.frame.Height())
				case content.YBottom:
					y = model.AlignEnd.Position(size.H - it.frame.Height())
				default:
					y = offset
				}
			case it.alignY == content.YTop:
				y = floatTopOffset
				floatTopOffset += it.frame.Height()
			default:
				floatBottomOffset += it.frame.Height()
				y = size.H - footnoteHeight - floatBottomOffset
			}
			output.PushFrame(model.Point{X: x, Y: y}.Add(it.delta), it.frame)

		case *footnoteItem:
			y := size.H - footnoteHeight + footnoteOffset
			footnoteOffset += it.frame.Height() + l.fnGap
			output.PushFrame(model.WithY(y), it.frame)
		}
	}

	l.items = l.items[:0]
	l.finished = append(l.finished, output)
	l.trace("region finished", "index", len(l.finished)-1, "size", size, "forced", force)
	l.nextRegion()

	// Replay deferred floats against the fresh region, in order.
	floats := l.pendingFloats
	l.pendingFloats = nil
	for _, f := range floats {
		if err := l.layoutItem(f); err != nil {
			return err
		}
	}
	return nil
}

// nextRegion advances the cursor and resets per-region state
func (l *Layouter) nextRegion() {
	l.regions.Next()
	l.initial = l.regions.Size
	l.hasFootnotes = false
}

// finish flushes the remaining state into frames and returns the
// completed fragment.
func (l *Layouter) finish() (model.Fragment, error) {
	// A flow expanding to its full height owes a frame per backlog
	// region even when it ran out of content.
	if l.expand.Y {
		for len(l.regions.Backlog) > 0 {
			if err := l.finishRegion(true); err != nil {
				return nil, err
			}
		}
	}
	if err := l.finishRegion(true); err != nil {
		return nil, err
	}
	// Forced finalization may itself queue new items (float replay,
	// footnote spill-over); keep going until everything is placed.
	for len(l.items) > 0 || len(l.pendingFloats) > 0 {
		if err := l.finishRegion(true); err != nil {
			return nil, err
		}
	}
	return l.finished, nil
}

// allOutOfFlow reports whether every pending item is out of flow
func allOutOfFlow(items []flowItem) bool {
	for _, item := range items {
		if !item.outOfFlow() {
			return false
		}
	}
	return true
}
