package core

// Color represents a foreground color for a screen cell.
// Uses ANSI 256-color codes for terminal compatibility.
type Color uint8

// Palette used by the games. The names follow the HEX FLAP retro theme.
const (
	ColorDefault     Color = iota
	ColorChip              // bright green player
	ColorChipDim           // dim green trail
	ColorCircuit           // blue obstacles
	ColorCircuitDark       // dark blue obstacle outline and grid
	ColorText              // cyan text
	ColorSpark             // yellow particles and sparkles
	ColorDanger            // magenta-red game over
	ColorGround            // green terrain
	ColorWater             // river blue
	ColorBuilding          // grey buildings
	ColorGray
)
