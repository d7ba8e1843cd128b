package flow

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/tsawler/typeflow/content"
	"github.com/tsawler/typeflow/model"
	"github.com/tsawler/typeflow/style"
)

// Config holds optional engine configuration
type Config struct {
	// Logger receives a debug-level trace of region finalization,
	// float deferral and footnote rollback. Nil disables tracing.
	Logger *log.Logger
}

// DefaultConfig returns the default engine configuration (no tracing)
func DefaultConfig() Config {
	return Config{}
}

// Layouter drives one flow layout: it classifies children, accumulates
// flow items for the current region, and finalizes regions into frames.
// A Layouter is exclusively owned by one Layout call and must not be
// shared.
type Layouter struct {
	del    Delegate
	loc    *content.Locator
	styles style.Chain
	logger *log.Logger

	// root flows own float and footnote processing
	root bool

	// regions is the cursor over the remaining areas; expand keeps
	// the output expansion request while the cursor itself measures
	// children without vertical expansion.
	regions Regions
	expand  model.Axes

	// initial is the full size of the currently open region
	initial model.Size

	// lastWasPar feeds the shaper's leading consolidation
	lastWasPar bool

	// items are the pending placements for the current region; they
	// are drained by finishRegion.
	items []flowItem

	// pendingFloats holds floats deferred to the next region
	pendingFloats []*placedItem

	// hasFootnotes marks that the current region holds a separator
	hasFootnotes bool

	// fnSeparator, fnClearance and fnGap are the footnote settings
	// resolved from the ambient style
	fnSeparator *content.Element
	fnClearance float64
	fnGap       float64

	finished model.Fragment
}

// NewLayouter creates a layouter over the given cursor. The cursor's
// Root flag moves onto the layouter; children see a non-root cursor and
// no vertical expansion.
func NewLayouter(del Delegate, loc *content.Locator, styles style.Chain, regions Regions) *Layouter {
	return NewLayouterWithConfig(DefaultConfig(), del, loc, styles, regions)
}

// NewLayouterWithConfig creates a layouter with custom configuration
func NewLayouterWithConfig(cfg Config, del Delegate, loc *content.Locator, styles style.Chain, regions Regions) *Layouter {
	l := &Layouter{
		del:         del,
		loc:         loc,
		styles:      styles,
		logger:      cfg.Logger,
		root:        regions.Root,
		expand:      regions.Expand,
		fnClearance: styles.FootnoteClearance(),
		fnGap:       styles.FootnoteGap(),
	}
	if sep, ok := styles.FootnoteSeparator().(*content.Element); ok {
		l.fnSeparator = sep
	}
	regions.Root = false
	regions.Expand.Y = false
	l.regions = regions
	l.initial = regions.Size
	return l
}

// Layout lays children out across regions and returns the finished
// fragment, one frame per consumed region. Fatal input errors abort the
// whole call; layout conditions (overflow, float and footnote non-fit)
// are resolved internally.
func Layout(del Delegate, loc *content.Locator, children []*content.Element, styles style.Chain, regions Regions) (model.Fragment, error) {
	return LayoutWithConfig(DefaultConfig(), del, loc, children, styles, regions)
}

// LayoutWithConfig is Layout with custom engine configuration
func LayoutWithConfig(cfg Config, del Delegate, loc *content.Locator, children []*content.Element, styles style.Chain, regions Regions) (model.Fragment, error) {
	if err := regions.Validate(); err != nil {
		return nil, err
	}
	l := NewLayouterWithConfig(cfg, del, loc, styles, regions)
	if err := l.layoutChildren(children); err != nil {
		return nil, err
	}
	return l.finish()
}

// layoutChildren classifies and dispatches each child in order
func (l *Layouter) layoutChildren(children []*content.Element) error {
	for _, child := range children {
		styles := l.styles.With(child.Styles)
		var err error
		switch child.Kind {
		case content.KindSpacing:
			err = l.layoutSpacing(child, styles)
		case content.KindParagraph:
			err = l.layoutPar(child, styles)
		case content.KindBlock, content.KindRule:
			err = l.layoutSingle(child, styles)
		case content.KindPlaced:
			err = l.layoutPlaced(child, styles)
		case content.KindFlow, content.KindColumns:
			err = l.layoutMultiple(child, styles)
		case content.KindBreak:
			// Breaking a single unbounded region is a no-op.
			if len(l.regions.Backlog) > 0 || l.regions.Last != nil {
				err = l.finishRegion(true)
			}
		default:
			err = fmt.Errorf("%s child: %w", child.Kind, ErrUnexpectedChild)
		}
		if err != nil {
			return err
		}
	}
	return nil
}

// layoutSpacing turns a spacing child into an absolute or fractional
// item
func (l *Layouter) layoutSpacing(el *content.Element, styles style.Chain) error {
	if el.Fr > 0 {
		return l.layoutItem(&fracItem{share: el.Fr})
	}
	amount := el.Amount.Resolve(l.regions.Base().H)
	return l.layoutItem(&absoluteItem{amount: amount, weak: el.Weak})
}

// layoutPar shapes a paragraph into lines and places them, keeping the
// first line together with any trailing sticky frames.
func (l *Layouter) layoutPar(el *content.Element, styles style.Chain) error {
	leading := styles.Leading()
	alignX, alignY := styles.AlignX(), styles.AlignY()
	consecutive := l.lastWasPar

	lines, err := l.del.ParagraphLines(el, l.loc, styles, consecutive, l.regions.Base(), l.regions.Expand.X)
	if err != nil {
		return err
	}

	// Find the trailing run of sticky frames (and interleaved
	// spacing) that must travel with the paragraph across a break.
	sticky := len(l.items)
scan:
	for i := len(l.items) - 1; i >= 0; i-- {
		switch item := l.items[i].(type) {
		case *absoluteItem:
			// keep scanning past spacing
		case *frameItem:
			if !item.sticky {
				break scan
			}
			sticky = i
		default:
			break scan
		}
	}

	if len(lines) > 0 {
		first := lines[0]
		if !model.Fits(l.regions.Size.H, first.Height()) && !l.regions.InLast() {
			carry := append([]flowItem(nil), l.items[sticky:]...)
			l.items = l.items[:sticky]
			if err := l.finishRegion(false); err != nil {
				return err
			}
			for _, item := range carry {
				if err := l.layoutItem(item); err != nil {
					return err
				}
			}
		}
	}

	for i, line := range lines {
		if i > 0 {
			if err := l.layoutItem(&absoluteItem{amount: leading, weak: true}); err != nil {
				return err
			}
		}
		item := &frameItem{frame: line, alignX: alignX, alignY: alignY, movable: true}
		if err := l.layoutItem(item); err != nil {
			return err
		}
	}

	l.lastWasPar = true
	return nil
}

// layoutSingle lays self-contained content into one region-sized pod
func (l *Layouter) layoutSingle(el *content.Element, styles style.Chain) error {
	pod := One(l.regions.Base(), model.Axes{})
	frag, err := l.del.Block(el, l.loc, styles, pod)
	if err != nil {
		return err
	}
	frame := singleFrame(frag)
	item := &frameItem{
		frame:   frame,
		alignX:  styles.AlignX(),
		alignY:  styles.AlignY(),
		sticky:  el.Sticky,
		movable: true,
	}
	if err := l.layoutItem(item); err != nil {
		return err
	}
	l.lastWasPar = false
	return nil
}

// layoutPlaced lays out absolutely positioned content and emits a
// placed item
func (l *Layouter) layoutPlaced(el *content.Element, styles style.Chain) error {
	if el.Float && el.AlignY == content.YCenter {
		return fmt.Errorf("placed element: %w", ErrFloatCenterAnchor)
	}
	base := l.regions.Base()
	pod := One(base, model.Axes{})
	frag, err := l.del.Block(el, l.loc, styles, pod)
	if err != nil {
		return err
	}
	delta := model.Point{
		X: el.Delta[0].Resolve(base.W),
		Y: el.Delta[1].Resolve(base.H),
	}
	item := &placedItem{
		frame:     singleFrame(frag),
		alignX:    el.AlignX,
		alignY:    el.AlignY,
		delta:     delta,
		float:     el.Float,
		clearance: el.Clearance,
	}
	if err := l.layoutItem(item); err != nil {
		return err
	}
	l.lastWasPar = false
	return nil
}

// layoutMultiple lays a child that may span several regions across the
// shared cursor, finalizing the current region between sub-frames.
func (l *Layouter) layoutMultiple(el *content.Element, styles style.Chain) error {
	// A columns container inside a root flow takes over float and
	// footnote processing for its span.
	isRoot := l.root
	if isRoot && el.Kind == content.KindColumns {
		l.root = false
		l.regions.Root = true
	}

	if l.regions.IsFull() {
		if err := l.finishRegion(false); err != nil {
			return err
		}
	}

	alignX, alignY := styles.AlignX(), styles.AlignY()
	frag, err := l.del.Block(el, l.loc, styles, l.regions)
	if err != nil {
		return err
	}

	var notes []*content.Element
	for i, frame := range frag {
		if i > 0 {
			if err := l.finishRegion(false); err != nil {
				return err
			}
		}
		if l.root {
			findFootnotes(&notes, frame)
		}
		item := &frameItem{frame: frame, alignX: alignX, alignY: alignY, sticky: el.Sticky}
		if err := l.layoutItem(item); err != nil {
			return err
		}
	}

	l.root = isRoot
	l.regions.Root = false
	l.lastWasPar = false

	if l.root && len(notes) > 0 {
		return l.tryHandleFootnotes(notes)
	}
	return nil
}

// layoutItem performs the placement bookkeeping for one flow item:
// weak-spacing collapse, region breaking for frames, float queueing and
// anchoring, and footnote discovery for movable frames.
func (l *Layouter) layoutItem(item flowItem) error {
	switch it := item.(type) {
	case *absoluteItem:
		if it.weak && !l.hasFrame() {
			return nil
		}
		l.regions.Size.H -= it.amount

	case *fracItem:
		// Resolved at finalization.

	case *frameItem:
		height := it.frame.Height()
		for !model.Fits(l.regions.Size.H, height) && !l.regions.InLast() {
			if err := l.finishRegion(false); err != nil {
				return err
			}
		}
		l.regions.Size.H -= height

		if l.root && it.movable {
			var notes []*content.Element
			findFootnotes(&notes, it.frame)
			l.items = append(l.items, it)
			ok, err := l.handleFootnotes(&notes, true, false)
			if err != nil {
				return err
			}
			if !ok {
				// The frame and its footnotes move to the next
				// region together.
				l.items = l.items[:len(l.items)-1]
				if err := l.finishRegion(false); err != nil {
					return err
				}
				l.items = append(l.items, it)
				l.regions.Size.H -= height
				if _, err := l.handleFootnotes(&notes, true, true); err != nil {
					return err
				}
			}
			return nil
		}

	case *placedItem:
		if !it.float {
			break
		}
		need := it.frame.Height() + it.clearance
		if len(l.pendingFloats) > 0 ||
			(!model.Fits(l.regions.Size.H, need) && !l.regions.InLast()) {
			l.pendingFloats = append(l.pendingFloats, it)
			l.trace("float deferred", "height", it.frame.Height())
			return nil
		}
		if it.alignY == content.YAuto {
			it.alignY = l.autoFloatAnchor(need)
		}
		if it.alignY == content.YTop {
			it.frame.Translate(model.WithY(it.clearance))
		}
		it.frame.GrowHeight(it.clearance)
		l.regions.Size.H -= it.frame.Height()
		if l.root {
			var notes []*content.Element
			findFootnotes(&notes, it.frame)
			if len(notes) > 0 {
				l.items = append(l.items, it)
				return l.tryHandleFootnotes(notes)
			}
		}

	case *footnoteItem:
		// Height already reserved by the footnote handler.
	}

	l.items = append(l.items, item)
	return nil
}

// autoFloatAnchor picks the region edge requiring less displacement for
// a float band of the given height. With an unbounded region there is
// no midpoint; such floats anchor to the top.
func (l *Layouter) autoFloatAnchor(need float64) content.YAlign {
	if !model.IsFinite(l.regions.Full.H) {
		return content.YTop
	}
	ratio := (l.regions.Size.H - need/2) / l.regions.Full.H
	if ratio <= 0.5 {
		return content.YBottom
	}
	return content.YTop
}

// hasFrame reports whether the pending items already contain a real
// frame, which is what weak spacing needs in front of it to survive.
func (l *Layouter) hasFrame() bool {
	for _, item := range l.items {
		if _, ok := item.(*frameItem); ok {
			return true
		}
	}
	return false
}

// trace logs a debug message when tracing is configured
func (l *Layouter) trace(msg string, kv ...any) {
	if l.logger != nil {
		l.logger.Debug(msg, kv...)
	}
}

// singleFrame extracts the single frame a one-region layout produced.
// A delegate that returns nothing yields an empty frame rather than a
// nil dereference further down.
func singleFrame(frag model.Fragment) *model.Frame {
	if len(frag) == 0 {
		return model.NewFrame(model.Size{})
	}
	return frag[0]
}
