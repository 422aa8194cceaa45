package render

import "github.com/gdamore/tcell/v2"

// RGB color definitions for the mole field
var (
	RgbBackground = tcell.NewRGBColor(26, 27, 38)  // Tokyo Night background
	RgbGround     = tcell.NewRGBColor(34, 60, 34)  // Dark grass
	RgbHole       = tcell.NewRGBColor(20, 14, 10)  // Near black earth
	RgbMole       = tcell.NewRGBColor(139, 90, 43) // Brown
	RgbMoleLocked = tcell.NewRGBColor(90, 60, 30)  // Dimmed brown while falling
	RgbWord       = tcell.NewRGBColor(255, 255, 255)

	RgbHUDText     = tcell.NewRGBColor(255, 255, 255)
	RgbHUDBg       = tcell.NewRGBColor(0, 0, 0)
	RgbTitle       = tcell.NewRGBColor(255, 165, 0)  // Orange
	RgbMessage     = tcell.NewRGBColor(255, 255, 0)  // Bright yellow
	RgbTimerLow    = tcell.NewRGBColor(255, 80, 80)  // Normal red
	RgbMenuText    = tcell.NewRGBColor(180, 180, 180) // Brighter gray
	RgbMenuCurrent = tcell.NewRGBColor(144, 238, 144) // Light grass green
	RgbStatusText  = tcell.NewRGBColor(0, 0, 0)

	RgbAudioMuted   = tcell.NewRGBColor(255, 0, 0)
	RgbAudioUnmuted = tcell.NewRGBColor(0, 255, 0)
	RgbStatusBg     = tcell.NewRGBColor(135, 206, 250) // Light sky blue
)
