package typeflow

import (
	"errors"
	"strings"
	"testing"

	"github.com/tsawler/typeflow/content"
	"github.com/tsawler/typeflow/flow"
	"github.com/tsawler/typeflow/model"
	"github.com/tsawler/typeflow/style"
)

// pageGroups returns a page frame's group items in placement order
func pageGroups(frame *model.Frame) []model.FrameItem {
	var out []model.FrameItem
	for _, item := range frame.Items() {
		if item.Kind == model.ItemGroup {
			out = append(out, item)
		}
	}
	return out
}

func TestComposeSimpleParagraphs(t *testing.T) {
	frag, err := Compose(
		content.Paragraph("It was a dark and stormy night."),
		content.Spacing(12),
		content.Paragraph("Suddenly, a shot rang out."),
	).PageSize(300, 400).Fragment()
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}

	if len(frag) != 1 {
		t.Fatalf("expected 1 page, got %d", len(frag))
	}
	if frag[0].Height() > 400 {
		t.Errorf("page exceeds its size: %g", frag[0].Height())
	}
	gs := pageGroups(frag[0])
	if len(gs) < 2 {
		t.Fatalf("expected at least 2 lines, got %d", len(gs))
	}
	if gs[0].Pos.Y != 0 {
		t.Errorf("first line starts the page, got y=%g", gs[0].Pos.Y)
	}
}

func TestComposeExpandFillsPage(t *testing.T) {
	frag, err := Compose(content.Paragraph("short")).
		PageSize(300, 400).
		Expand(true, true).
		Fragment()
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}
	if got := frag[0].Size(); got != (model.Size{W: 300, H: 400}) {
		t.Errorf("expected the full page size, got %+v", got)
	}
}

func TestComposePagination(t *testing.T) {
	long := strings.Repeat("the quick brown fox jumps over the lazy dog ", 20)
	frag, err := Compose(content.Paragraph(long)).PageSize(200, 30).Fragment()
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}
	if len(frag) < 2 {
		t.Errorf("a long paragraph on tiny pages must paginate, got %d page(s)", len(frag))
	}
	for i, page := range frag {
		if page.Height() > 30 {
			t.Errorf("page %d exceeds its size: %g", i, page.Height())
		}
	}
}

func TestComposeBounded(t *testing.T) {
	long := strings.Repeat("overflowing content ", 50)
	frag, err := Compose(content.Paragraph(long)).
		Pages(model.Size{W: 200, H: 30}).
		Bounded().
		Fragment()
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}
	if len(frag) != 1 {
		t.Errorf("a bounded composition never adds pages, got %d", len(frag))
	}
}

func TestComposeFractionalFooter(t *testing.T) {
	frag, err := Compose(
		content.Paragraph("Body."),
		content.FrSpacing(1),
		content.Paragraph("Footer."),
	).PageSize(300, 400).Expand(true, true).Fragment()
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}

	gs := pageGroups(frag[0])
	if len(gs) != 2 {
		t.Fatalf("expected body and footer lines, got %d", len(gs))
	}
	// Both lines are 11pt; the footer sits flush with the page bottom.
	if gs[1].Pos.Y != 389 {
		t.Errorf("expected footer at y=389, got %g", gs[1].Pos.Y)
	}
}

func TestComposeFootnote(t *testing.T) {
	para := content.Paragraph("A claim needing a source.")
	para.Children = []*content.Element{
		content.Footnote(content.Paragraph("See appendix.")),
	}

	frag, err := Compose(para).PageSize(300, 400).Fragment()
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}
	if len(frag) != 1 {
		t.Fatalf("expected 1 page, got %d", len(frag))
	}
	if h := frag[0].Height(); h != 400 {
		t.Errorf("a page holding footnotes claims its full height, got %g", h)
	}
	gs := pageGroups(frag[0])
	if len(gs) != 3 {
		t.Fatalf("expected line, separator and entry, got %d groups", len(gs))
	}
	// 1pt separator grown by the 12pt clearance, then a 6pt gap and the
	// 11pt entry line.
	if gs[1].Pos.Y != 370 {
		t.Errorf("expected separator at y=370, got %g", gs[1].Pos.Y)
	}
	if gs[2].Pos.Y != 389 {
		t.Errorf("expected entry at y=389, got %g", gs[2].Pos.Y)
	}
}

func TestComposeColumns(t *testing.T) {
	frag, err := Compose(
		content.Columns(2,
			content.Paragraph("left"),
			content.Break(),
			content.Paragraph("right"),
		),
	).PageSize(300, 400).Fragment()
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}
	if len(frag) != 1 {
		t.Fatalf("expected 1 page, got %d", len(frag))
	}

	gs := pageGroups(frag[0])
	if len(gs) != 1 {
		t.Fatalf("expected one columns frame, got %d groups", len(gs))
	}
	cols := pageGroups(gs[0].Group)
	if len(cols) != 2 {
		t.Fatalf("expected 2 columns, got %d", len(cols))
	}
	// Column width (300 - 12) / 2 = 144, so the second column starts at
	// 144 + the 12pt gutter.
	if cols[0].Pos.X != 0 || cols[1].Pos.X != 156 {
		t.Errorf("unexpected column positions: %g and %g", cols[0].Pos.X, cols[1].Pos.X)
	}
}

func TestComposeWithDelegate(t *testing.T) {
	del := &fixedDelegate{}
	frag, err := Compose(content.Paragraph("ignored")).
		PageSize(300, 400).
		WithDelegate(del).
		Fragment()
	if err != nil {
		t.Fatalf("compose failed: %v", err)
	}
	gs := pageGroups(frag[0])
	if len(gs) != 1 || gs[0].Group.Height() != 42 {
		t.Error("the custom delegate's line should be used")
	}
}

// fixedDelegate produces one fixed 42pt line per paragraph
type fixedDelegate struct{}

func (d *fixedDelegate) ParagraphLines(el *content.Element, loc *content.Locator, styles style.Chain, consecutive bool, base model.Size, expandX bool) ([]*model.Frame, error) {
	frame := model.NewFrame(model.Size{W: 10, H: 42})
	frame.PushText(model.Point{}, el.Text, 42)
	return []*model.Frame{frame}, nil
}

func (d *fixedDelegate) Block(el *content.Element, loc *content.Locator, styles style.Chain, regions flow.Regions) (model.Fragment, error) {
	return model.Fragment{model.NewFrame(model.Size{})}, nil
}

func TestComposeInvalidRegions(t *testing.T) {
	_, err := Compose(content.Paragraph("x")).
		PageSize(300, model.Infinite).
		Expand(false, true).
		Fragment()
	if !errors.Is(err, flow.ErrExpandInfinite) {
		t.Errorf("expected ErrExpandInfinite, got %v", err)
	}
}

func TestMust(t *testing.T) {
	if got := Must(7, nil); got != 7 {
		t.Errorf("expected the value back, got %d", got)
	}
	defer func() {
		if recover() == nil {
			t.Error("expected a panic on error")
		}
	}()
	Must(0, errors.New("boom"))
}
