package content

import (
	"github.com/tsawler/typeflow/model"
	"github.com/tsawler/typeflow/style"
)

// Kind classifies an element for flow dispatch
type Kind int

const (
	KindUnknown Kind = iota

	// KindSpacing is vertical spacing, absolute/relative or fractional
	KindSpacing

	// KindParagraph is shapeable text, laid out line by line
	KindParagraph

	// KindBlock is a self-contained box laid out into a single region
	// (rules, shapes, images, fixed-size boxes)
	KindBlock

	// KindFlow is a nested flow that may span several regions
	KindFlow

	// KindColumns is a nested multi-column container; inside a root
	// flow it inherits responsibility for floats and footnotes
	KindColumns

	// KindPlaced is an absolutely positioned (possibly floating) box
	KindPlaced

	// KindBreak is an explicit region break marker
	KindBreak

	// KindFootnote marks a footnote reference; its Body holds the
	// entry content laid out at the bottom of a region
	KindFootnote

	// KindRule is a thin horizontal rule block
	KindRule
)

// String returns a string representation of the kind
func (k Kind) String() string {
	switch k {
	case KindSpacing:
		return "spacing"
	case KindParagraph:
		return "paragraph"
	case KindBlock:
		return "block"
	case KindFlow:
		return "flow"
	case KindColumns:
		return "columns"
	case KindPlaced:
		return "placed"
	case KindBreak:
		return "break"
	case KindFootnote:
		return "footnote"
	case KindRule:
		return "rule"
	default:
		return "unknown"
	}
}

// YAlign is a vertical alignment request for placed content. The zero
// value YAuto means "no explicit anchor": non-floating placements follow
// the flow offset, floating placements choose the nearer region edge.
type YAlign int

const (
	YAuto YAlign = iota
	YTop
	YCenter
	YBottom
)

// String returns a string representation of the alignment
func (y YAlign) String() string {
	switch y {
	case YTop:
		return "top"
	case YCenter:
		return "center"
	case YBottom:
		return "bottom"
	default:
		return "auto"
	}
}

// Element is one prepared content child. Kind selects which fields are
// meaningful; the rest stay at their zero values.
type Element struct {
	// Kind classifies the element for flow dispatch
	Kind Kind

	// Styles holds local style overrides chained on top of the
	// ambient style before the element is interpreted
	Styles style.Properties

	// Text is the paragraph text for KindParagraph
	Text string

	// Width and Height size KindBlock and KindPlaced content; a zero
	// Rel means "natural size" as decided by the delegate
	Width  model.Rel
	Height model.Rel

	// Children is nested content for KindFlow, KindColumns, and
	// footnote entry bodies
	Children []*Element

	// Count is the column count for KindColumns
	Count int

	// Amount is the spacing amount for KindSpacing, resolved against
	// the region height
	Amount model.Rel

	// Fr is the fractional share for KindSpacing; nonzero means the
	// spacing is fractional and Amount is ignored
	Fr float64

	// Weak marks spacing that collapses when no frame precedes it in
	// its region
	Weak bool

	// Sticky glues a block to the following element across region
	// breaks (orphan control)
	Sticky bool

	// Float marks placed content as floating (anchored to a region
	// edge, deferred when it does not fit)
	Float bool

	// AlignX and AlignY position placed content
	AlignX model.FixedAlign
	AlignY YAlign

	// Delta is an extra offset applied to placed content after
	// alignment, resolved against the region size
	Delta [2]model.Rel

	// Clearance is the gap reserved between a float and the normal
	// flow
	Clearance float64

	// Body is the entry content of a KindFootnote element
	Body *Element

	// location is assigned by Identify; zero means unidentified
	location int64
}

// TagLocation returns the element's location identity, implementing
// model.Tag so elements can be embedded in frames as markers.
func (e *Element) TagLocation() int64 {
	return e.location
}

// Identified reports whether the element has been assigned a location
func (e *Element) Identified() bool {
	return e.location != 0
}

// Identify assigns the element a fresh location from the locator.
// Already identified elements keep their identity.
func (e *Element) Identify(loc *Locator) {
	if e.location == 0 {
		e.location = loc.Allocate()
	}
}
