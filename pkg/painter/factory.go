package painter

import (
	"strings"

	"github.com/user/instantfilm/pkg/film"
)

// Style names accepted by New.
const (
	StyleTriangular = "triangular"
	StyleDuel       = "duel"
	StyleDiagonal   = "diagonal"
	StyleBlank      = "blank"
)

// Styles returns every accepted style name, default first.
func Styles() []string {
	return []string{StyleTriangular, StyleDuel, StyleDiagonal, StyleBlank}
}

// IsStyle reports whether style names a painter (case-insensitive).
func IsStyle(style string) bool {
	style = strings.ToLower(strings.TrimSpace(style))
	for _, s := range Styles() {
		if s == style {
			return true
		}
	}
	return false
}

// New returns the painter for style (case-insensitive). An empty or unknown
// style yields the default: a bottom-anchored Triangular painter with
// padding on all sides, regardless of pos and padAround.
func New(style string, res Resources, pos film.Position, padAround bool) Painter {
	switch strings.ToLower(strings.TrimSpace(style)) {
	case StyleTriangular:
		return NewTriangular(res, pos, padAround)
	case StyleDuel:
		return NewDuel(res, pos, padAround, false)
	case StyleDiagonal:
		return NewDuel(res, pos, padAround, true)
	case StyleBlank:
		return NewBlank(res, pos, padAround)
	default:
		return NewTriangular(res, film.PositionBottom, true)
	}
}
