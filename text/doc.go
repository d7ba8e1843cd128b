// Package text provides the reference paragraph shaper used by the
// standard layout delegate: it normalizes paragraph text, measures it
// with a font face, and breaks it greedily into line frames.
//
// The shaper is deliberately simple: no hyphenation, no bidi, no
// justification. It exists so the flow engine is runnable end to end;
// a full shaping stack can replace it behind the same delegate
// interface.
//
//	shaper := text.NewShaper()
//	lines := shaper.Lines("some paragraph text", 11, 200, false)
package text
