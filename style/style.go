// Package style provides the read-only hierarchical property store the
// flow engine consumes: flat property sets chained into a cascade, with
// resolve (nearest value wins) and fold (values combine along the chain)
// lookup semantics and documented defaults.
package style

import "github.com/tsawler/typeflow/model"

// Key identifies a style property
type Key int

const (
	// KeyLeading is the spacing between paragraph lines (points).
	// Default: 6.5.
	KeyLeading Key = iota

	// KeyParSpacing is the spacing between paragraphs (points).
	// Default: 12. Folds by taking the maximum along the chain.
	KeyParSpacing

	// KeyFootnoteSeparator is the content element rendered above the
	// first footnote of a region. Default: nil, meaning the engine's
	// built-in rule.
	KeyFootnoteSeparator

	// KeyFootnoteClearance is the gap between body content and the
	// footnote separator (points). Default: 12.
	KeyFootnoteClearance

	// KeyFootnoteGap is the gap between footnote entries (points).
	// Default: 6.
	KeyFootnoteGap

	// KeyFontSize is the nominal text size (points). Default: 11.
	KeyFontSize

	// KeyAlignX is the horizontal alignment of in-flow frames within
	// their region. Default: start.
	KeyAlignX

	// KeyAlignY is the vertical alignment of in-flow content within
	// its region. Default: start.
	KeyAlignY
)

// Properties is one flat set of property values
type Properties map[Key]any

// Chain is a cascade of property sets. Lookup walks from the most local
// set outward; the zero Chain resolves everything to defaults.
type Chain struct {
	props  Properties
	parent *Chain
}

// NewChain creates a single-link chain from a property set
func NewChain(props Properties) Chain {
	return Chain{props: props}
}

// With layers local overrides on top of the chain. A nil or empty set
// returns the chain unchanged.
func (c Chain) With(props Properties) Chain {
	if len(props) == 0 {
		return c
	}
	parent := c
	return Chain{props: props, parent: &parent}
}

// Resolve returns the nearest value for key, or nil if no link sets it
func (c Chain) Resolve(key Key) any {
	for link := &c; link != nil; link = link.parent {
		if v, ok := link.props[key]; ok {
			return v
		}
	}
	return nil
}

// Fold combines every value set for key along the chain, outermost
// first, through combine. Used for additive properties where a local
// value adjusts rather than replaces the inherited one.
func (c Chain) Fold(key Key, initial any, combine func(acc, v any) any) any {
	var links []*Chain
	for link := &c; link != nil; link = link.parent {
		links = append(links, link)
	}
	acc := initial
	for i := len(links) - 1; i >= 0; i-- {
		if v, ok := links[i].props[key]; ok {
			acc = combine(acc, v)
		}
	}
	return acc
}

func (c Chain) float(key Key, def float64) float64 {
	if v, ok := c.Resolve(key).(float64); ok {
		return v
	}
	return def
}

// Leading returns the line spacing within paragraphs
func (c Chain) Leading() float64 {
	return c.float(KeyLeading, 6.5)
}

// ParSpacing returns the spacing between paragraphs. It folds with max
// so an inner context can only loosen the inherited spacing, not negate
// the document's baseline rhythm.
func (c Chain) ParSpacing() float64 {
	v := c.Fold(KeyParSpacing, 12.0, func(acc, v any) any {
		f, ok := v.(float64)
		if !ok {
			return acc
		}
		if a := acc.(float64); f > a {
			return f
		}
		return acc
	})
	return v.(float64)
}

// FootnoteClearance returns the gap between body content and the
// footnote separator
func (c Chain) FootnoteClearance() float64 {
	return c.float(KeyFootnoteClearance, 12.0)
}

// FootnoteGap returns the gap between footnote entries
func (c Chain) FootnoteGap() float64 {
	return c.float(KeyFootnoteGap, 6.0)
}

// FontSize returns the nominal text size
func (c Chain) FontSize() float64 {
	return c.float(KeyFontSize, 11.0)
}

// AlignX returns the horizontal alignment of in-flow frames
func (c Chain) AlignX() model.FixedAlign {
	if v, ok := c.Resolve(KeyAlignX).(model.FixedAlign); ok {
		return v
	}
	return model.AlignStart
}

// AlignY returns the vertical alignment of in-flow content
func (c Chain) AlignY() model.FixedAlign {
	if v, ok := c.Resolve(KeyAlignY).(model.FixedAlign); ok {
		return v
	}
	return model.AlignStart
}

// FootnoteSeparator returns the configured separator content, or nil
// for the built-in rule. The value is stored as any to avoid a
// dependency cycle with the content package; the flow engine asserts
// the concrete element type.
func (c Chain) FootnoteSeparator() any {
	return c.Resolve(KeyFootnoteSeparator)
}
