package domain

import "strings"

// Classification is the token kind occupying a hex cell.
type Classification uint8

const (
	Fire Classification = iota
	Water
	Earth
	Air
	Salt
	Vitae
	Mors
	Quicksilver
	Lead
	Tin
	Iron
	Copper
	Silver
	Gold
	Empty
	OutOfBounds
	Unknown
)

var names = [...]string{
	"FIRE", "WATER", "EARTH", "AIR",
	"SALT", "VITAE", "MORS", "QUICKSILVER",
	"LEAD", "TIN", "IRON", "COPPER", "SILVER", "GOLD",
	"EMPTY", "OUT_OF_BOUNDS", "UNKNOWN",
}

func (c Classification) String() string {
	if int(c) < len(names) {
		return names[c]
	}
	return "UNKNOWN"
}

// Parse maps a token name to its Classification. Names outside the known
// vocabulary map to Unknown rather than an error.
func Parse(s string) Classification {
	s = strings.ToUpper(strings.TrimSpace(s))
	for i, n := range names {
		if n == s {
			return Classification(i)
		}
	}
	return Unknown
}

// MetalOrder is the transmutation order, lowest rank first. Quicksilver may
// only pair with the lowest-ranked metal still present on the board.
var MetalOrder = [6]Classification{Lead, Tin, Iron, Copper, Silver, Gold}

// IsBasic reports whether c is one of the four basic elements.
func (c Classification) IsBasic() bool { return c <= Air }

// IsMetal reports whether c is a ranked metal (quicksilver is not one).
func (c Classification) IsMetal() bool { return c >= Lead && c <= Gold }

// IsSentinel reports whether c marks a cell holding no token.
func (c Classification) IsSentinel() bool { return c >= Empty }

// MetalRank returns the position of c in MetalOrder, or -1 for non-metals.
func (c Classification) MetalRank() int {
	if !c.IsMetal() {
		return -1
	}
	return int(c - Lead)
}

// Matches reports whether tokens a and b pair under the matching rules.
// lowestMetal is the lowest-ranked metal currently present on the board
// (Unknown when none remains); quicksilver pairs only with that metal.
func Matches(a, b, lowestMetal Classification) bool {
	switch {
	case a.IsBasic() && a == b:
		return true
	case a == Salt && (b.IsBasic() || b == Salt):
		return true
	case b == Salt && a.IsBasic():
		return true
	case (a == Vitae && b == Mors) || (a == Mors && b == Vitae):
		return true
	case a == Quicksilver && b.IsMetal():
		return b == lowestMetal
	case b == Quicksilver && a.IsMetal():
		return a == lowestMetal
	}
	return false
}
