package flow

import (
	"github.com/tsawler/typeflow/content"
	"github.com/tsawler/typeflow/model"
	"github.com/tsawler/typeflow/style"
)

// Delegate supplies the layout capabilities the flow engine consumes
// but does not own: paragraph shaping and recursive block layout. The
// root typeflow package provides the standard implementation; tests use
// stubs for exact control over produced frames.
type Delegate interface {
	// ParagraphLines shapes a paragraph into one frame per line.
	// consecutive reports whether the previous flow child was also a
	// paragraph, which shapers may use to consolidate leading. base
	// is the measuring size from Regions.Base; expandX asks for
	// full-width line frames.
	ParagraphLines(el *content.Element, loc *content.Locator, styles style.Chain, consecutive bool, base model.Size, expandX bool) ([]*model.Frame, error)

	// Block lays out self-contained or multi-region content into the
	// given regions, producing one frame per region used, in order.
	// Single-region callers pass a one-region cursor and expect one
	// frame. A first frame may come back empty when nothing fits the
	// first region; the engine interprets that for footnote entries
	// as "try again in the next region".
	Block(el *content.Element, loc *content.Locator, styles style.Chain, regions Regions) (model.Fragment, error)
}
