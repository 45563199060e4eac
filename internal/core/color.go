package core

// Color is the semantic color of a screen cell.
// The host maps each value to a terminal style.
type Color uint8

const (
	ColorDefault  Color = iota
	ColorHidden         // Unrevealed cell
	ColorRevealed       // Blocked cell
	ColorEdge           // Unrevealed cell on the outer ring
	ColorMouse
	ColorCursor
	ColorTitle
	ColorHint
	ColorWin
	ColorLose
	ColorWarning
)
