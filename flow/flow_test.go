package flow

import (
	"github.com/tsawler/typeflow/content"
	"github.com/tsawler/typeflow/model"
	"github.com/tsawler/typeflow/style"
)

// stubDelegate gives tests exact control over the frames the engine
// receives: paragraph lines come from a per-text height table, block
// content from a hook (or a fixed-size default).
type stubDelegate struct {
	// lines maps paragraph text to the heights of its line frames
	lines map[string][]float64

	// lineWidth is the width of every produced line frame
	lineWidth float64

	// block, when set, handles Block calls
	block func(el *content.Element, loc *content.Locator, styles style.Chain, regions Regions) (model.Fragment, error)
}

func newStubDelegate() *stubDelegate {
	return &stubDelegate{lines: make(map[string][]float64), lineWidth: 50}
}

func (d *stubDelegate) ParagraphLines(el *content.Element, loc *content.Locator, styles style.Chain, consecutive bool, base model.Size, expandX bool) ([]*model.Frame, error) {
	heights := d.lines[el.Text]
	frames := make([]*model.Frame, 0, len(heights))
	for _, h := range heights {
		frame := model.NewFrame(model.Size{W: d.lineWidth, H: h})
		frame.PushText(model.Point{}, el.Text, h)
		frames = append(frames, frame)
	}
	if len(frames) == 0 {
		frame := model.NewFrame(model.Size{W: d.lineWidth, H: 10})
		frame.PushText(model.Point{}, el.Text, 10)
		frames = append(frames, frame)
	}
	last := frames[len(frames)-1]
	for _, child := range el.Children {
		if child.Kind == content.KindFootnote {
			child.Identify(loc)
			last.PushTag(model.Point{X: last.Width()}, child)
		}
	}
	return frames, nil
}

func (d *stubDelegate) Block(el *content.Element, loc *content.Locator, styles style.Chain, regions Regions) (model.Fragment, error) {
	if d.block != nil {
		return d.block(el, loc, styles, regions)
	}
	frame := model.NewFrame(model.Size{W: el.Width.Abs, H: el.Height.Abs})
	frame.PushRule(model.Point{}, el.Width.Abs)
	return model.Fragment{frame}, nil
}

// rootRegions creates a root cursor over one first region and a
// non-repeating backlog
func rootRegions(first model.Size, backlog ...model.Size) Regions {
	r := NewRegions(first, backlog, false, model.Axes{})
	r.Root = true
	return r
}

// groups returns the group items of a frame in placement order
func groups(frame *model.Frame) []model.FrameItem {
	var out []model.FrameItem
	for _, item := range frame.Items() {
		if item.Kind == model.ItemGroup {
			out = append(out, item)
		}
	}
	return out
}
