package flow

import (
	"github.com/tsawler/typeflow/content"
	"github.com/tsawler/typeflow/model"
)

// findFootnotes walks a frame tree and collects footnote elements not
// yet present in notes, deduplicated by location identity.
func findFootnotes(notes *[]*content.Element, frame *model.Frame) {
	for _, item := range frame.Items() {
		switch item.Kind {
		case model.ItemGroup:
			findFootnotes(notes, item.Group)
		case model.ItemTag:
			el, ok := item.Tag.(*content.Element)
			if !ok || el.Kind != content.KindFootnote {
				continue
			}
			if containsNote(*notes, el) {
				continue
			}
			*notes = append(*notes, el)
		}
	}
}

func containsNote(notes []*content.Element, el *content.Element) bool {
	for _, n := range notes {
		if n.TagLocation() == el.TagLocation() {
			return true
		}
	}
	return false
}

// tryHandleFootnotes is the non-transactional entry point used for
// floats and multi-region sub-frames: a failed attempt finishes the
// region and retries forced, which cannot fail.
func (l *Layouter) tryHandleFootnotes(notes []*content.Element) error {
	ok, err := l.handleFootnotes(&notes, false, false)
	if err != nil || ok {
		return err
	}
	if err := l.finishRegion(false); err != nil {
		return err
	}
	_, err = l.handleFootnotes(&notes, false, true)
	return err
}

// handleFootnotes lays out the entries for every pending footnote
// reference in order. It reports failure (and rolls the whole attempt
// back) when the first note of the call, or any note while movable is
// set, produces an empty first entry frame and force is unset; the
// caller then finishes the region and retries forced. Nested footnotes
// discovered inside an entry are spliced in right after it, giving a
// depth-first resolution order.
func (l *Layouter) handleFootnotes(notes *[]*content.Element, movable, force bool) (bool, error) {
	// The rollback triple: item count, consumed height, and locator
	// state, captured together and restored together. The separator
	// flag rides along since the separator is one of the items.
	itemsLen := len(l.items)
	notesLen := len(*notes)
	sizeH := l.regions.Size.H
	hadSeparator := l.hasFootnotes
	cp := l.loc.Checkpoint()

	// Once an entry spans into a further region the checkpoint no
	// longer describes restorable state; from then on the call
	// behaves as if forced.
	crossed := false

	k := 0
	for k < len(*notes) {
		note := (*notes)[k]
		if !l.hasFootnotes {
			if err := l.layoutFootnoteSeparator(); err != nil {
				return false, err
			}
		}
		l.regions.Size.H -= l.fnGap

		entryStyles := l.styles.With(note.Styles)
		frames, err := l.del.Block(note.Body, l.loc, entryStyles, l.regions.WithRoot(false))
		if err != nil {
			return false, err
		}

		if !force && !crossed && (k == 0 || movable) &&
			(len(frames) == 0 || frames[0].IsEmpty()) {
			l.items = l.items[:itemsLen]
			*notes = (*notes)[:notesLen]
			l.regions.Size.H = sizeH
			l.hasFootnotes = hadSeparator
			l.loc.Restore(cp)
			l.trace("footnote attempt rolled back", "note", note.TagLocation())
			return false, nil
		}

		prev := len(*notes)
		for i, frame := range frames {
			findFootnotes(notes, frame)
			if i > 0 {
				crossed = true
				if err := l.finishRegion(false); err != nil {
					return false, err
				}
				if err := l.layoutFootnoteSeparator(); err != nil {
					return false, err
				}
				l.regions.Size.H -= l.fnGap
			}
			l.regions.Size.H -= frame.Height()
			l.items = append(l.items, &footnoteItem{frame: frame})
		}

		k++

		// Rotate freshly discovered nested notes in right after the
		// note that introduced them.
		if nested := len(*notes) - prev; nested > 0 {
			rotateRight((*notes)[k:], nested)
		}
	}

	return true, nil
}

// layoutFootnoteSeparator lays out the separator above the region's
// first footnote and reserves its space plus the configured clearance.
func (l *Layouter) layoutFootnoteSeparator() error {
	var frame *model.Frame
	if l.fnSeparator != nil {
		pod := One(l.regions.Base(), model.Axes{X: l.regions.Expand.X})
		frag, err := l.del.Block(l.fnSeparator, l.loc, l.styles, pod)
		if err != nil {
			return err
		}
		frame = singleFrame(frag)
	} else {
		frame = builtinSeparator(l.regions.Base().W)
	}
	frame.GrowHeight(l.fnClearance)
	frame.Translate(model.WithY(l.fnClearance))
	l.hasFootnotes = true
	l.regions.Size.H -= frame.Height()
	l.items = append(l.items, &footnoteItem{frame: frame})
	return nil
}

// builtinSeparator is the default separator: a short rule spanning
// about a third of the region width.
func builtinSeparator(width float64) *model.Frame {
	if !model.IsFinite(width) {
		width = 180
	}
	length := width * 0.3
	frame := model.NewFrame(model.Size{W: length, H: 1})
	frame.PushRule(model.Point{Y: 0.5}, length)
	return frame
}

// rotateRight rotates the slice right by n, bringing its last n
// elements to the front.
func rotateRight(s []*content.Element, n int) {
	if n <= 0 || n >= len(s) {
		return
	}
	tmp := append([]*content.Element(nil), s[len(s)-n:]...)
	copy(s[n:], s[:len(s)-n])
	copy(s, tmp)
}
