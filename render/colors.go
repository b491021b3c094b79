package render

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/sprite-quest/components"
)

// RGB color definitions
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)    // Tokyo Night background
	RgbGround     = tcell.NewRGBColor(60, 70, 60)    // Ground markers
	RgbPlayer     = tcell.NewRGBColor(100, 150, 255) // Blue
	RgbSlime      = tcell.NewRGBColor(50, 255, 50)   // Bright green
	RgbGoblin     = tcell.NewRGBColor(200, 160, 60)  // Ochre
	RgbOrc        = tcell.NewRGBColor(140, 100, 70)  // Brown
	RgbDragon     = tcell.NewRGBColor(255, 80, 80)   // Red
	RgbPotion     = tcell.NewRGBColor(255, 100, 200) // Pink
	RgbGold       = tcell.NewRGBColor(255, 255, 0)   // Bright yellow
	RgbProjectile = tcell.NewRGBColor(255, 255, 200) // Yellow-white

	RgbHealthFull  = tcell.NewRGBColor(0, 200, 0)
	RgbHealthEmpty = tcell.NewRGBColor(180, 50, 50)

	RgbStatusBar  = tcell.NewRGBColor(255, 255, 255) // White
	RgbStatusText = tcell.NewRGBColor(0, 0, 0)       // Dark text for status
	RgbHUDBg      = tcell.NewRGBColor(135, 206, 250) // Light sky blue
	RgbBossBg     = tcell.NewRGBColor(200, 50, 50)   // Red boss badge
	RgbPanelBg    = tcell.NewRGBColor(40, 42, 54)
	RgbPanelEdge  = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbDim        = tcell.NewRGBColor(110, 110, 110)
)

// SpeciesColor returns the body color of a species
func SpeciesColor(sp components.Species) tcell.Color {
	switch sp {
	case components.SpeciesGoblin:
		return RgbGoblin
	case components.SpeciesOrc:
		return RgbOrc
	case components.SpeciesDragon:
		return RgbDragon
	default:
		return RgbSlime
	}
}

// SpeciesGlyph returns the fill glyph of a species
func SpeciesGlyph(sp components.Species) rune {
	switch sp {
	case components.SpeciesGoblin:
		return 'g'
	case components.SpeciesOrc:
		return 'O'
	case components.SpeciesDragon:
		return 'D'
	default:
		return 's'
	}
}

// EffectLook returns the glyph and color of a visual effect
func EffectLook(kind components.EffectKind) (rune, tcell.Color) {
	switch kind {
	case components.EffectHit:
		return '*', tcell.NewRGBColor(255, 120, 120)
	case components.EffectAttack:
		return '+', RgbProjectile
	case components.EffectPoison:
		return '~', tcell.NewRGBColor(120, 255, 80)
	case components.EffectJump:
		return '^', RgbGoblin
	case components.EffectSlam:
		return '#', RgbOrc
	case components.EffectRoar:
		return '!', RgbDragon
	case components.EffectFire:
		return '%', tcell.NewRGBColor(255, 140, 0)
	case components.EffectWing:
		return '=', tcell.NewRGBColor(200, 200, 255)
	case components.EffectPickup:
		return 'o', RgbGold
	case components.EffectLevelUp:
		return '↑', tcell.NewRGBColor(0, 255, 255)
	default:
		return 'x', tcell.NewRGBColor(255, 80, 80)
	}
}

// HealthColor blends from the empty to the full health color by ratio
func HealthColor(ratio float64) tcell.Color {
	return blend(RgbHealthEmpty, RgbHealthFull, ratio)
}

// fade moves a color toward the background as progress goes from 0 to 1
func fade(c tcell.Color, progress float64) tcell.Color {
	return blend(c, RgbBackground, progress)
}

func blend(from, to tcell.Color, t float64) tcell.Color {
	if t < 0 {
		t = 0
	}
	if t > 1 {
		t = 1
	}
	r0, g0, b0 := from.RGB()
	r1, g1, b1 := to.RGB()
	lerp := func(a, b int32) int32 { return a + int32(float64(b-a)*t) }
	return tcell.NewRGBColor(lerp(r0, r1), lerp(g0, g1), lerp(b0, b1))
}
