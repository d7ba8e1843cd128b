package typeflow

import (
	"fmt"

	"github.com/tsawler/typeflow/content"
	"github.com/tsawler/typeflow/flow"
	"github.com/tsawler/typeflow/model"
	"github.com/tsawler/typeflow/style"
	"github.com/tsawler/typeflow/text"
)

// StandardDelegate is the reference implementation of the layout
// capabilities the flow engine consumes: paragraph shaping through the
// text package and block layout for fixed-size boxes, rules, nested
// flows, columns, and footnote entry bodies.
type StandardDelegate struct {
	shaper *text.Shaper

	// Gutter is the gap between columns, in points
	Gutter float64
}

// NewStandardDelegate creates a standard delegate with the default
// shaper
func NewStandardDelegate() *StandardDelegate {
	return &StandardDelegate{
		shaper: text.NewShaper(),
		Gutter: 12,
	}
}

// ParagraphLines implements flow.Delegate. The reference shaper keeps
// leading uniform, so consecutive has no effect here.
func (d *StandardDelegate) ParagraphLines(el *content.Element, loc *content.Locator, styles style.Chain, consecutive bool, base model.Size, expandX bool) ([]*model.Frame, error) {
	return d.shapeParagraph(el, loc, styles, base.W, expandX), nil
}

// shapeParagraph shapes the paragraph text and attaches footnote
// markers and tags to the last line.
func (d *StandardDelegate) shapeParagraph(el *content.Element, loc *content.Locator, styles style.Chain, maxWidth float64, expand bool) []*model.Frame {
	raw := el.Text
	var notes []*content.Element
	for _, child := range el.Children {
		if child.Kind == content.KindFootnote {
			raw += "†" // dagger marker in the running text
			notes = append(notes, child)
		}
	}

	lines := d.shaper.Lines(raw, styles.FontSize(), maxWidth, expand)
	if len(lines) == 0 && len(notes) > 0 {
		// A paragraph holding only footnote references still needs a
		// line to carry the tags.
		lines = []*model.Frame{model.NewFrame(model.Size{H: styles.FontSize()})}
	}
	if len(lines) > 0 {
		last := lines[len(lines)-1]
		for _, note := range notes {
			note.Identify(loc)
			last.PushTag(model.Point{X: last.Width()}, note)
		}
	}
	return lines
}

// Block implements flow.Delegate
func (d *StandardDelegate) Block(el *content.Element, loc *content.Locator, styles style.Chain, regions flow.Regions) (model.Fragment, error) {
	if el == nil {
		return model.Fragment{model.NewFrame(model.Size{})}, nil
	}
	styles = styles.With(el.Styles)
	switch el.Kind {
	case content.KindRule:
		return d.ruleBlock(el, styles, regions), nil
	case content.KindBlock:
		if len(el.Children) > 0 {
			return flow.Layout(d, loc, el.Children, styles, regions)
		}
		return d.sizedBlock(el, regions), nil
	case content.KindParagraph:
		return d.paragraphBlock(el, loc, styles, regions), nil
	case content.KindPlaced:
		// The placed payload itself: a sized box.
		return d.sizedBlock(el, regions), nil
	case content.KindFlow:
		return flow.Layout(d, loc, el.Children, styles, regions)
	case content.KindColumns:
		return d.columnsBlock(el, loc, styles, regions)
	default:
		return nil, fmt.Errorf("%s block content: %w", el.Kind, flow.ErrUnexpectedChild)
	}
}

// ruleBlock renders a horizontal rule spanning the region width
func (d *StandardDelegate) ruleBlock(el *content.Element, styles style.Chain, regions flow.Regions) model.Fragment {
	width := regions.Base().W
	if !model.IsFinite(width) {
		width = 180
	}
	height := el.Height.Resolve(regions.Base().H)
	if height <= 0 {
		height = 1
	}
	frame := model.NewFrame(model.Size{W: width, H: height})
	frame.PushRule(model.Point{Y: height / 2}, width)
	return model.Fragment{frame}
}

// sizedBlock renders a fixed-size box as a single frame. Oversize is
// the flow engine's problem, not the block's: the frame reports its
// true size and the engine breaks regions around it.
func (d *StandardDelegate) sizedBlock(el *content.Element, regions flow.Regions) model.Fragment {
	base := regions.Base()
	w := el.Width.Resolve(base.W)
	if el.Width.IsZero() && model.IsFinite(base.W) {
		w = base.W
	}
	h := el.Height.Resolve(base.H)
	frame := model.NewFrame(model.Size{W: w, H: h})
	// A visible box edge so the frame is not mistaken for metadata.
	frame.PushRule(model.Point{}, w)
	return model.Fragment{frame}
}

// paragraphBlock stacks a paragraph's lines across the given regions,
// one frame per region used. When the first line does not fit the
// first region, the first frame comes back empty; the flow engine
// keys footnote rollback on exactly that.
func (d *StandardDelegate) paragraphBlock(el *content.Element, loc *content.Locator, styles style.Chain, regions flow.Regions) model.Fragment {
	base := regions.Base()
	lines := d.shapeParagraph(el, loc, styles, base.W, regions.Expand.X)
	leading := styles.Leading()

	var frag model.Fragment
	remaining := regions.Size.H
	frame := model.NewFrame(model.Size{})
	y := 0.0
	maxW := 0.0

	flush := func() {
		w := maxW
		if regions.Expand.X && model.IsFinite(base.W) {
			w = base.W
		}
		frame.SetSize(model.Size{W: w, H: y})
		frag = append(frag, frame)
		frame = model.NewFrame(model.Size{})
		y, maxW = 0, 0
		regions.Next()
		remaining = regions.Size.H
	}

	for _, line := range lines {
		need := line.Height()
		if y > 0 {
			need += leading
		}
		if !model.Fits(remaining, need) && !regions.InLast() {
			flush()
			need = line.Height()
		}
		if y > 0 {
			y += leading
		}
		frame.PushFrame(model.WithY(y), line)
		y += line.Height()
		remaining -= need
		maxW = max(maxW, line.Width())
	}
	flush()
	return frag
}

// columnsBlock lays children into count side-by-side columns per
// region, producing one combined frame per region used.
func (d *StandardDelegate) columnsBlock(el *content.Element, loc *content.Locator, styles style.Chain, regions flow.Regions) (model.Fragment, error) {
	count := el.Count
	if count < 1 {
		count = 2
	}
	base := regions.Base()
	colW := base.W
	if model.IsFinite(base.W) {
		colW = (base.W - d.Gutter*float64(count-1)) / float64(count)
	}

	// Build an inner cursor with count column regions per outer
	// region: the remainder of the current one, then the backlog.
	inner := flow.Regions{
		Size:   model.Size{W: colW, H: regions.Size.H},
		Full:   model.Size{W: colW, H: regions.Full.H},
		Expand: model.Axes{X: regions.Expand.X},
		Root:   regions.Root,
	}
	for i := 1; i < count; i++ {
		inner.Backlog = append(inner.Backlog, model.Size{W: colW, H: regions.Full.H})
	}
	for _, size := range regions.Backlog {
		for i := 0; i < count; i++ {
			inner.Backlog = append(inner.Backlog, model.Size{W: colW, H: size.H})
		}
	}
	if regions.Last != nil {
		last := model.Size{W: colW, H: regions.Last.H}
		inner.Last = &last
	}

	colFrames, err := flow.Layout(d, loc, el.Children, styles, inner)
	if err != nil {
		return nil, err
	}

	var frag model.Fragment
	for start := 0; start < len(colFrames); start += count {
		end := min(start+count, len(colFrames))
		group := colFrames[start:end]
		height := 0.0
		for _, col := range group {
			if col.Height() > height {
				height = col.Height()
			}
		}
		width := base.W
		if !model.IsFinite(width) {
			width = float64(len(group))*colW + d.Gutter*float64(len(group)-1)
		}
		outer := model.NewFrame(model.Size{W: width, H: height})
		for i, col := range group {
			outer.PushFrame(model.Point{X: float64(i) * (colW + d.Gutter)}, col)
		}
		frag = append(frag, outer)
	}
	if len(frag) == 0 {
		frag = model.Fragment{model.NewFrame(model.Size{W: base.W, H: 0})}
	}
	return frag, nil
}
