package film

import "strings"

// Position is the side of the photo a painter anchors its content band to.
type Position int

const (
	// PositionNone means no preference; each painter picks its own default.
	PositionNone Position = iota
	PositionTop
	PositionBottom
	PositionLeft
	PositionRight
	PositionMiddle
)

// String returns the lower-case name of the position.
func (p Position) String() string {
	switch p {
	case PositionTop:
		return "top"
	case PositionBottom:
		return "bottom"
	case PositionLeft:
		return "left"
	case PositionRight:
		return "right"
	case PositionMiddle:
		return "middle"
	default:
		return "none"
	}
}

// ParsePosition maps a case-insensitive name or its single-letter
// abbreviation to a Position. Anything else yields PositionNone.
func ParsePosition(s string) Position {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top", "t":
		return PositionTop
	case "bottom", "b":
		return PositionBottom
	case "left", "l":
		return PositionLeft
	case "right", "r":
		return PositionRight
	case "middle", "m":
		return PositionMiddle
	default:
		return PositionNone
	}
}
