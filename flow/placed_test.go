package flow

import (
	"errors"
	"testing"

	"github.com/tsawler/typeflow/content"
	"github.com/tsawler/typeflow/model"
	"github.com/tsawler/typeflow/style"
)

// A non-floating placement consumes no flow height and is positioned
// by its own alignment, independent of the flow offset.
func TestPlaced_NonFloatConsumesNoHeight(t *testing.T) {
	del := newStubDelegate()

	r := One(model.Size{W: 200, H: 100}, model.Axes{X: true})
	r.Root = true
	frag := layout(t, del, r, style.Chain{},
		content.Block(100, 10),
		content.Placed(40, 20, model.AlignEnd, content.YBottom),
		content.Block(100, 10),
	)

	if h := frag[0].Height(); h != 20 {
		t.Errorf("expected flow height 20, got %g", h)
	}
	gs := groups(frag[0])
	if len(gs) != 3 {
		t.Fatalf("expected 3 groups, got %d", len(gs))
	}
	placed := gs[1]
	if placed.Pos.X != 160 {
		t.Errorf("expected end-aligned x=160, got %g", placed.Pos.X)
	}
	if placed.Pos.Y != 0 {
		t.Errorf("expected bottom-aligned y=0 in a 20-high frame, got %g", placed.Pos.Y)
	}
	if gs[2].Pos.Y != 10 {
		t.Errorf("expected second block right after the first, got y=%g", gs[2].Pos.Y)
	}
}

// A float that does not fit a non-last region is deferred and becomes
// the first positioned item of the next region, keeping its anchor.
func TestPlaced_FloatDeferredToNextRegion(t *testing.T) {
	del := newStubDelegate()

	frag := layout(t, del,
		rootRegions(model.Size{W: 200, H: 100}, model.Size{W: 200, H: 100}),
		style.Chain{},
		content.Block(100, 80),
		content.Float(50, 30, content.YTop, 0),
		content.Block(100, 30),
	)

	if len(frag) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(frag))
	}
	if gs := groups(frag[0]); len(gs) != 1 {
		t.Errorf("first region should hold only the first block, got %d groups", len(gs))
	}
	gs := groups(frag[1])
	if len(gs) != 2 {
		t.Fatalf("expected float and block in second region, got %d groups", len(gs))
	}
	float := gs[0]
	if float.Group.Height() != 30 {
		t.Errorf("expected the float placed first, got height %g", float.Group.Height())
	}
	if float.Pos.Y != 0 {
		t.Errorf("expected top-anchored float at y=0, got %g", float.Pos.Y)
	}
	if gs[1].Pos.Y != 30 {
		t.Errorf("expected flow content below the float, got y=%g", gs[1].Pos.Y)
	}
}

// An auto-anchored float picks the nearer region edge.
func TestPlaced_AutoAnchor(t *testing.T) {
	del := newStubDelegate()

	// High in the region: anchors to the top.
	r := One(model.Size{W: 200, H: 100}, model.Axes{})
	r.Root = true
	frag := layout(t, del, r, style.Chain{},
		content.Float(50, 20, content.YAuto, 0),
		content.Block(100, 10),
	)
	gs := groups(frag[0])
	if gs[0].Pos.Y != 0 {
		t.Errorf("expected top anchor at y=0, got %g", gs[0].Pos.Y)
	}
	if gs[1].Pos.Y != 20 {
		t.Errorf("expected flow content below the float, got y=%g", gs[1].Pos.Y)
	}

	// Low in the region: anchors to the bottom.
	r = One(model.Size{W: 200, H: 100}, model.Axes{})
	r.Root = true
	frag = layout(t, del, r, style.Chain{},
		content.Block(100, 80),
		content.Float(50, 20, content.YAuto, 0),
	)
	gs = groups(frag[0])
	if gs[1].Pos.Y != 80 {
		t.Errorf("expected bottom anchor at y=80, got %g", gs[1].Pos.Y)
	}
}

// With an unbounded region there is no midpoint; auto anchors go to
// the top.
func TestPlaced_AutoAnchorInfiniteRegion(t *testing.T) {
	del := newStubDelegate()

	r := One(model.Size{W: 200, H: model.Infinite}, model.Axes{})
	r.Root = true
	frag := layout(t, del, r, style.Chain{},
		content.Float(50, 20, content.YAuto, 0),
		content.Block(100, 10),
	)

	gs := groups(frag[0])
	if gs[0].Pos.Y != 0 {
		t.Errorf("expected top anchor, got y=%g", gs[0].Pos.Y)
	}
}

// Clearance widens the float's reserved band.
func TestPlaced_FloatClearance(t *testing.T) {
	del := newStubDelegate()

	r := One(model.Size{W: 200, H: 100}, model.Axes{})
	r.Root = true
	frag := layout(t, del, r, style.Chain{},
		content.Float(50, 20, content.YTop, 8),
		content.Block(100, 10),
	)

	gs := groups(frag[0])
	if gs[0].Pos.Y != 0 {
		t.Errorf("expected float band at y=0, got %g", gs[0].Pos.Y)
	}
	// The block starts below float plus clearance.
	if gs[1].Pos.Y != 28 {
		t.Errorf("expected flow content at y=28, got %g", gs[1].Pos.Y)
	}
}

func TestPlaced_FloatCenterAnchorRejected(t *testing.T) {
	del := newStubDelegate()
	r := rootRegions(model.Size{W: 200, H: 100})

	_, err := Layout(del, content.NewLocator(),
		[]*content.Element{content.Float(50, 20, content.YCenter, 0)},
		style.Chain{}, r)
	if !errors.Is(err, ErrFloatCenterAnchor) {
		t.Errorf("expected ErrFloatCenterAnchor, got %v", err)
	}
}

// Two floats deferred from the same region replay in their original
// order.
func TestPlaced_DeferredFloatsKeepOrder(t *testing.T) {
	del := newStubDelegate()

	frag := layout(t, del,
		rootRegions(model.Size{W: 200, H: 100}, model.Size{W: 200, H: 200}),
		style.Chain{},
		content.Block(100, 90),
		content.Float(50, 30, content.YTop, 0),
		content.Float(60, 40, content.YTop, 0),
		content.Block(100, 20),
	)

	if len(frag) != 2 {
		t.Fatalf("expected 2 frames, got %d", len(frag))
	}
	gs := groups(frag[1])
	if len(gs) != 3 {
		t.Fatalf("expected both floats and the block, got %d groups", len(gs))
	}
	if gs[0].Group.Height() != 30 || gs[1].Group.Height() != 40 {
		t.Errorf("floats out of order: heights %g, %g", gs[0].Group.Height(), gs[1].Group.Height())
	}
	if gs[0].Pos.Y != 0 || gs[1].Pos.Y != 30 {
		t.Errorf("expected stacked top floats at y=0 and y=30, got %g and %g", gs[0].Pos.Y, gs[1].Pos.Y)
	}
}
