package text

import (
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/typeflow/model"
)

// ShaperConfig holds configuration for the shaper
type ShaperConfig struct {
	// Face is the font face used for measuring. Default: basicfont
	// Face7x13, rescaled to the requested size.
	Face font.Face

	// LineHeightRatio is the line box height as a multiple of the
	// font size. Default: 1.0 (the leading between lines is the flow
	// engine's business, not the shaper's).
	LineHeightRatio float64
}

// DefaultShaperConfig returns sensible default configuration
func DefaultShaperConfig() ShaperConfig {
	return ShaperConfig{
		Face:            basicfont.Face7x13,
		LineHeightRatio: 1.0,
	}
}

// Shaper breaks paragraph text into measured line frames
type Shaper struct {
	config ShaperConfig
}

// NewShaper creates a shaper with default configuration
func NewShaper() *Shaper {
	return &Shaper{config: DefaultShaperConfig()}
}

// NewShaperWithConfig creates a shaper with custom configuration
func NewShaperWithConfig(config ShaperConfig) *Shaper {
	return &Shaper{config: config}
}

// Measure returns the advance width of s at the given font size
func (s *Shaper) Measure(text string, fontSize float64) float64 {
	if text == "" {
		return 0
	}
	advance := font.MeasureString(s.config.Face, text)
	// The measuring face has a fixed nominal size; scale its advance
	// to the requested size.
	nominal := float64(s.config.Face.Metrics().Height.Ceil())
	if nominal == 0 {
		nominal = 13
	}
	return float64(advance)/64.0*fontSize/nominal
}

// Lines normalizes text and breaks it greedily into line frames no
// wider than maxWidth. With expand set, every line frame takes the full
// maxWidth; otherwise it shrinks to its content. An unbounded maxWidth
// yields a single line.
func (s *Shaper) Lines(text string, fontSize, maxWidth float64, expand bool) []*model.Frame {
	text = norm.NFC.String(strings.TrimSpace(text))
	if text == "" {
		return nil
	}

	lineHeight := fontSize * s.config.LineHeightRatio
	words := strings.Fields(text)

	var lines []string
	var current strings.Builder
	for _, word := range words {
		candidate := word
		if current.Len() > 0 {
			candidate = current.String() + " " + word
		}
		if current.Len() > 0 && model.IsFinite(maxWidth) && s.Measure(candidate, fontSize) > maxWidth {
			lines = append(lines, current.String())
			current.Reset()
			current.WriteString(word)
			continue
		}
		current.Reset()
		current.WriteString(candidate)
	}
	if current.Len() > 0 {
		lines = append(lines, current.String())
	}

	frames := make([]*model.Frame, 0, len(lines))
	for _, line := range lines {
		width := s.Measure(line, fontSize)
		frameWidth := width
		if expand && model.IsFinite(maxWidth) {
			frameWidth = maxWidth
		}
		frame := model.NewFrame(model.Size{W: frameWidth, H: lineHeight})
		frame.PushText(model.Point{}, line, fontSize)
		frames = append(frames, frame)
	}
	return frames
}
