package content

import (
	"github.com/tsawler/typeflow/model"
	"github.com/tsawler/typeflow/style"
)

// Paragraph creates a paragraph element from text
func Paragraph(text string) *Element {
	return &Element{Kind: KindParagraph, Text: text}
}

// Spacing creates absolute vertical spacing of v points
func Spacing(v float64) *Element {
	return &Element{Kind: KindSpacing, Amount: model.Absolute(v)}
}

// WeakSpacing creates vertical spacing that collapses when nothing
// precedes it in its region
func WeakSpacing(v float64) *Element {
	return &Element{Kind: KindSpacing, Amount: model.Absolute(v), Weak: true}
}

// RelSpacing creates vertical spacing relative to the region height
// (1.0 = the full region)
func RelSpacing(ratio float64) *Element {
	return &Element{Kind: KindSpacing, Amount: model.Relative(ratio)}
}

// FrSpacing creates fractional spacing taking the given share of the
// leftover region space
func FrSpacing(share float64) *Element {
	return &Element{Kind: KindSpacing, Fr: share}
}

// Block creates a fixed-size block element
func Block(w, h float64) *Element {
	return &Element{Kind: KindBlock, Width: model.Absolute(w), Height: model.Absolute(h)}
}

// StickyBlock creates a fixed-size block glued to the following
// element across region breaks
func StickyBlock(w, h float64) *Element {
	el := Block(w, h)
	el.Sticky = true
	return el
}

// Rule creates a thin horizontal rule
func Rule() *Element {
	return &Element{Kind: KindRule, Height: model.Absolute(1)}
}

// Flow creates a nested flow over children; it may span several
// regions
func Flow(children ...*Element) *Element {
	return &Element{Kind: KindFlow, Children: children}
}

// Columns creates a multi-column container with count columns
func Columns(count int, children ...*Element) *Element {
	return &Element{Kind: KindColumns, Count: count, Children: children}
}

// Placed creates absolutely positioned, non-floating content of the
// given size
func Placed(w, h float64, alignX model.FixedAlign, alignY YAlign) *Element {
	return &Element{
		Kind:   KindPlaced,
		Width:  model.Absolute(w),
		Height: model.Absolute(h),
		AlignX: alignX,
		AlignY: alignY,
	}
}

// Float creates floating placed content with the given clearance; an
// YAuto anchor lets the engine pick the nearer region edge
func Float(w, h float64, anchor YAlign, clearance float64) *Element {
	return &Element{
		Kind:      KindPlaced,
		Width:     model.Absolute(w),
		Height:    model.Absolute(h),
		AlignY:    anchor,
		Float:     true,
		Clearance: clearance,
	}
}

// Break creates an explicit region break marker
func Break() *Element {
	return &Element{Kind: KindBreak}
}

// Footnote creates a footnote reference whose entry renders body at
// the bottom of the region. Attach it to a paragraph's Children.
func Footnote(body *Element) *Element {
	return &Element{Kind: KindFootnote, Body: body}
}

// Styled attaches local style overrides to an element and returns it
func Styled(el *Element, props style.Properties) *Element {
	el.Styles = props
	return el
}
