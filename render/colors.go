package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sinkhole/core"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbGround     = tcell.NewRGBColor(52, 59, 88)    // Ground dots
	RgbHoleInside = tcell.NewRGBColor(0, 0, 0)       // Mouth interior
	RgbHoleRim    = tcell.NewRGBColor(122, 162, 247) // Mouth edge
	RgbMagnetRing = tcell.NewRGBColor(187, 154, 247) // Magnet reach outline
	RgbSinking    = tcell.NewRGBColor(86, 95, 137)   // Objects below the ground line

	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255)
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)
	RgbSizeBg     = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbMagnetBg   = tcell.NewRGBColor(187, 154, 247) // Lavender
	RgbBoostBg    = tcell.NewRGBColor(255, 192, 203) // Pink for boost timer
	RgbXPEmpty    = tcell.NewRGBColor(40, 40, 40)
	RgbGoalDone   = tcell.NewRGBColor(158, 206, 106) // Met goals
)

// Styles built from the palette
var (
	StyleBackground = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbGround)
	StyleStatus     = tcell.StyleDefault.Background(RgbBackground).Foreground(RgbStatusBar)
)

var categoryColors = map[core.Category]tcell.Color{
	core.CategoryApple:  tcell.NewRGBColor(247, 118, 142),
	core.CategoryPear:   tcell.NewRGBColor(158, 206, 106),
	core.CategoryBanana: tcell.NewRGBColor(224, 175, 104),
	core.CategoryCoin:   tcell.NewRGBColor(255, 215, 0),
	core.CategoryGem:    tcell.NewRGBColor(125, 207, 255),
	core.CategoryBox:    tcell.NewRGBColor(181, 137, 90),
	core.CategoryRock:   tcell.NewRGBColor(150, 150, 150),
	core.CategoryBarrel: tcell.NewRGBColor(200, 110, 60),
}

var categoryGlyphs = map[core.Category]rune{
	core.CategoryApple:  'a',
	core.CategoryPear:   'p',
	core.CategoryBanana: 'b',
	core.CategoryCoin:   '$',
	core.CategoryGem:    '*',
	core.CategoryBox:    '#',
	core.CategoryRock:   'o',
	core.CategoryBarrel: 'B',
}

// CategoryColor returns the display color for an object category
func CategoryColor(c core.Category) tcell.Color {
	if col, ok := categoryColors[c]; ok {
		return col
	}
	return tcell.NewRGBColor(255, 255, 255)
}

// CategoryGlyph returns the character drawn for an object category
func CategoryGlyph(c core.Category) rune {
	if g, ok := categoryGlyphs[c]; ok {
		return g
	}
	return '?'
}

// GetProgressColor returns the XP bar color at progress in [0, 1], red through yellow to green
func GetProgressColor(progress float64) tcell.Color {
	if progress <= 0 {
		return RgbXPEmpty
	}
	progress = min(progress, 1)
	if progress < 0.5 {
		t := progress / 0.5
		return tcell.NewRGBColor(255, int32(255*t), 0)
	}
	t := (progress - 0.5) / 0.5
	return tcell.NewRGBColor(int32(255*(1-t)), 255, 0)
}
