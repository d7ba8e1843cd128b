package model

import (
	"fmt"
	"strings"
)

// Tag is implemented by content elements so frames can carry invisible
// markers pointing back at the element that produced a piece of content.
// Introspection (footnote discovery in particular) walks frames and
// inspects tags; TagLocation is the element's stable identity.
type Tag interface {
	TagLocation() int64
}

// ItemKind identifies the kind of a frame item
type ItemKind int

const (
	// ItemGroup is a nested frame positioned inside its parent
	ItemGroup ItemKind = iota
	// ItemText is a rendered text run
	ItemText
	// ItemRule is a horizontal rule
	ItemRule
	// ItemTag is an invisible marker for the element that produced
	// the surrounding content
	ItemTag
)

// FrameItem is one positioned entry in a frame. Exactly one of the
// payload fields is meaningful, selected by Kind.
type FrameItem struct {
	// Pos is the item position relative to the frame's top-left corner
	Pos Point

	// Kind selects the payload
	Kind ItemKind

	// Group is the nested frame for ItemGroup items
	Group *Frame

	// Text is the run content for ItemText items
	Text string

	// FontSize is the nominal size of an ItemText run
	FontSize float64

	// Length is the rule length for ItemRule items
	Length float64

	// Tag is the marker for ItemTag items
	Tag Tag
}

// Frame is a positioned tree of rendered content for one region
type Frame struct {
	size  Size
	items []FrameItem
}

// NewFrame creates an empty frame of the given size
func NewFrame(size Size) *Frame {
	return &Frame{size: size}
}

// Size returns the frame's size
func (f *Frame) Size() Size {
	return f.size
}

// Width returns the frame's width
func (f *Frame) Width() float64 {
	return f.size.W
}

// Height returns the frame's height
func (f *Frame) Height() float64 {
	return f.size.H
}

// SetSize replaces the frame's size without touching its content
func (f *Frame) SetSize(size Size) {
	f.size = size
}

// GrowHeight extends the frame's height by v
func (f *Frame) GrowHeight(v float64) {
	f.size.H += v
}

// Items returns the frame's items in insertion order
func (f *Frame) Items() []FrameItem {
	return f.items
}

// IsEmpty reports whether the frame carries no items at all. An empty
// frame stands for "nothing could be placed here"; the flow engine keys
// its footnote rollback on this.
func (f *Frame) IsEmpty() bool {
	return len(f.items) == 0
}

// Push appends an item to the frame
func (f *Frame) Push(item FrameItem) {
	f.items = append(f.items, item)
}

// PushFrame appends a nested frame as a group item at pos
func (f *Frame) PushFrame(pos Point, inner *Frame) {
	f.items = append(f.items, FrameItem{Pos: pos, Kind: ItemGroup, Group: inner})
}

// PushText appends a text run at pos
func (f *Frame) PushText(pos Point, text string, fontSize float64) {
	f.items = append(f.items, FrameItem{Pos: pos, Kind: ItemText, Text: text, FontSize: fontSize})
}

// PushRule appends a horizontal rule of the given length at pos
func (f *Frame) PushRule(pos Point, length float64) {
	f.items = append(f.items, FrameItem{Pos: pos, Kind: ItemRule, Length: length})
}

// PushTag appends an invisible element marker at pos
func (f *Frame) PushTag(pos Point, tag Tag) {
	f.items = append(f.items, FrameItem{Pos: pos, Kind: ItemTag, Tag: tag})
}

// Translate shifts every item in the frame by delta
func (f *Frame) Translate(delta Point) {
	for i := range f.items {
		f.items[i].Pos = f.items[i].Pos.Add(delta)
	}
}

// String renders the frame tree in an indented, human-readable form,
// mainly for debugging and CLI output.
func (f *Frame) String() string {
	var sb strings.Builder
	f.write(&sb, 0)
	return sb.String()
}

func (f *Frame) write(sb *strings.Builder, depth int) {
	indent := strings.Repeat("  ", depth)
	fmt.Fprintf(sb, "%sframe %.2fx%.2f\n", indent, f.size.W, f.size.H)
	for _, item := range f.items {
		switch item.Kind {
		case ItemGroup:
			fmt.Fprintf(sb, "%s  @(%.2f, %.2f)\n", indent, item.Pos.X, item.Pos.Y)
			item.Group.write(sb, depth+2)
		case ItemText:
			fmt.Fprintf(sb, "%s  text @(%.2f, %.2f) %q\n", indent, item.Pos.X, item.Pos.Y, item.Text)
		case ItemRule:
			fmt.Fprintf(sb, "%s  rule @(%.2f, %.2f) len=%.2f\n", indent, item.Pos.X, item.Pos.Y, item.Length)
		case ItemTag:
			fmt.Fprintf(sb, "%s  tag @(%.2f, %.2f) loc=%d\n", indent, item.Pos.X, item.Pos.Y, item.Tag.TagLocation())
		}
	}
}

// Fragment is the ordered sequence of frames produced by one layout
// call, one frame per consumed region.
type Fragment []*Frame

// Height returns the summed height of all frames in the fragment
func (fr Fragment) Height() float64 {
	total := 0.0
	for _, f := range fr {
		total += f.Height()
	}
	return total
}

// String renders every frame in the fragment
func (fr Fragment) String() string {
	var sb strings.Builder
	for i, f := range fr {
		fmt.Fprintf(&sb, "--- region %d ---\n", i)
		sb.WriteString(f.String())
	}
	return sb.String()
}
