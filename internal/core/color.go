package core

// Color is a semantic colour for a screen cell.
// Front ends decide the concrete palette (ANSI codes in the terminal, RGBA in the window).
type Color uint8

// Colours used by the game.
const (
	ColorDefault Color = iota
	ColorGrass
	ColorLane
	ColorPlayer
	ColorObstacle
	ColorHUD
	ColorText
)
