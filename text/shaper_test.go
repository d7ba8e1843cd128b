package text

import (
	"strings"
	"testing"

	"github.com/tsawler/typeflow/model"
)

func TestMeasure(t *testing.T) {
	s := NewShaper()
	if got := s.Measure("", 11); got != 0 {
		t.Errorf("empty text has no width, got %g", got)
	}

	short := s.Measure("hi", 11)
	long := s.Measure("hello there", 11)
	if short <= 0 {
		t.Errorf("expected positive width, got %g", short)
	}
	if long <= short {
		t.Errorf("longer text must measure wider: %g vs %g", long, short)
	}

	small := s.Measure("hello", 8)
	big := s.Measure("hello", 16)
	if big <= small {
		t.Errorf("width scales with font size: %g vs %g", big, small)
	}
}

func TestLinesBreaking(t *testing.T) {
	s := NewShaper()
	text := strings.Repeat("word ", 20)

	lines := s.Lines(text, 11, 100, false)
	if len(lines) < 2 {
		t.Fatalf("expected the text to wrap, got %d line(s)", len(lines))
	}
	for i, line := range lines {
		if line.Width() > 100+model.Eps {
			t.Errorf("line %d exceeds the max width: %g", i, line.Width())
		}
		if line.Height() != 11 {
			t.Errorf("line %d: expected line height 11, got %g", i, line.Height())
		}
	}
}

func TestLinesUnboundedWidth(t *testing.T) {
	s := NewShaper()
	lines := s.Lines("a few words here", 11, model.Infinite, false)
	if len(lines) != 1 {
		t.Fatalf("unbounded width yields a single line, got %d", len(lines))
	}
	if lines[0].IsEmpty() {
		t.Error("the line should carry a text run")
	}
}

func TestLinesExpand(t *testing.T) {
	s := NewShaper()
	lines := s.Lines("tiny", 11, 300, true)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Width() != 300 {
		t.Errorf("expanded lines take the full width, got %g", lines[0].Width())
	}

	lines = s.Lines("tiny", 11, 300, false)
	if lines[0].Width() >= 300 {
		t.Errorf("unexpanded lines shrink to content, got %g", lines[0].Width())
	}
}

func TestLinesEmptyText(t *testing.T) {
	s := NewShaper()
	if lines := s.Lines("   ", 11, 100, false); lines != nil {
		t.Errorf("whitespace-only text yields no lines, got %d", len(lines))
	}
}

func TestLinesNormalizes(t *testing.T) {
	s := NewShaper()
	// e plus combining acute composes to a single code point.
	lines := s.Lines("café", 11, model.Infinite, false)
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	run := lines[0].Items()[0]
	if run.Text != "café" {
		t.Errorf("expected NFC-composed text, got %q", run.Text)
	}
}

func TestLinesLongWordOverflows(t *testing.T) {
	s := NewShaper()
	// A single word wider than the line is kept whole on its own line.
	lines := s.Lines("small incomprehensibilities small", 11, 40, false)
	for _, line := range lines {
		run := line.Items()[0]
		if strings.Contains(run.Text, " ") && line.Width() > 40+model.Eps {
			t.Errorf("multi-word line exceeds the max width: %q", run.Text)
		}
	}
	if len(lines) != 3 {
		t.Errorf("expected each word on its own line, got %d", len(lines))
	}
}
