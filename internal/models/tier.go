package models

import "strings"

type TierLevel string

const (
	TierUnclassified TierLevel = "unclassified"
	TierRegular      TierLevel = "regular"
	TierVIP          TierLevel = "vip"
	TierSuperVIP     TierLevel = "super_vip"
)

// Strictness define el orden total entre categorías.
// Número mayor = categoría más estricta.
func (t TierLevel) Strictness() int {
	switch t {
	case TierSuperVIP:
		return 3
	case TierVIP:
		return 2
	case TierRegular:
		return 1
	default:
		return 0
	}
}

func (t TierLevel) Label() string {
	switch t {
	case TierSuperVIP:
		return "Super VIP"
	case TierVIP:
		return "VIP"
	case TierRegular:
		return "Regular"
	default:
		return "Sin clasificar"
	}
}

func ParseTierLevel(s string) (TierLevel, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "regular":
		return TierRegular, true
	case "vip":
		return TierVIP, true
	case "super_vip", "supervip", "super vip":
		return TierSuperVIP, true
	case "unclassified", "sin clasificar":
		return TierUnclassified, true
	}
	return TierUnclassified, false
}
