package main

import (
	"fmt"

	"github.com/BurntSushi/toml"

	"github.com/tsawler/typeflow/style"
)

// Setup is the TOML page setup consumed by the layout command:
//
//	[page]
//	width = 612.0
//	height = 792.0
//	expand_x = true
//
//	[styles]
//	leading = 6.5
//	font_size = 11.0
//	footnote_gap = 6.0
//	footnote_clearance = 12.0
type Setup struct {
	Page   PageSetup   `toml:"page"`
	Styles StylesSetup `toml:"styles"`
}

// PageSetup configures the repeated page geometry
type PageSetup struct {
	Width   float64 `toml:"width"`
	Height  float64 `toml:"height"`
	ExpandX bool    `toml:"expand_x"`
	ExpandY bool    `toml:"expand_y"`
}

// StylesSetup configures the ambient styles; zero values keep the
// engine defaults
type StylesSetup struct {
	Leading           float64 `toml:"leading"`
	FontSize          float64 `toml:"font_size"`
	FootnoteGap       float64 `toml:"footnote_gap"`
	FootnoteClearance float64 `toml:"footnote_clearance"`
}

// DefaultSetup returns a US Letter page with default styles
func DefaultSetup() Setup {
	return Setup{
		Page: PageSetup{Width: 612, Height: 792, ExpandX: true},
	}
}

// LoadSetup reads a Setup from a TOML file, starting from defaults
func LoadSetup(path string) (Setup, error) {
	setup := DefaultSetup()
	if _, err := toml.DecodeFile(path, &setup); err != nil {
		return Setup{}, fmt.Errorf("reading setup %s: %w", path, err)
	}
	return setup, nil
}

// StyleProperties converts the configured styles into engine style
// properties, leaving unset values to the defaults
func (s Setup) StyleProperties() style.Properties {
	props := style.Properties{}
	if s.Styles.Leading > 0 {
		props[style.KeyLeading] = s.Styles.Leading
	}
	if s.Styles.FontSize > 0 {
		props[style.KeyFontSize] = s.Styles.FontSize
	}
	if s.Styles.FootnoteGap > 0 {
		props[style.KeyFootnoteGap] = s.Styles.FootnoteGap
	}
	if s.Styles.FootnoteClearance > 0 {
		props[style.KeyFootnoteClearance] = s.Styles.FootnoteClearance
	}
	return props
}
