package item

import "strings"

// WeaponKind classifies handheld weapon materials.
type WeaponKind int

const (
	NotWeapon WeaponKind = iota
	Sword
	Bow
	Crossbow
	Trident
	Axe
)

func (k WeaponKind) String() string {
	switch k {
	case Sword:
		return "sword"
	case Bow:
		return "bow"
	case Crossbow:
		return "crossbow"
	case Trident:
		return "trident"
	case Axe:
		return "axe"
	}
	return "not a weapon"
}

// MatchWeaponKind reports the weapon kind for a material, or NotWeapon.
// Pickaxes do not count as axes.
func MatchWeaponKind(material string) WeaponKind {
	name := Normalize(material)
	switch {
	case strings.HasSuffix(name, "_sword"):
		return Sword
	case name == "minecraft:bow":
		return Bow
	case name == "minecraft:crossbow":
		return Crossbow
	case name == "minecraft:trident":
		return Trident
	case strings.HasSuffix(name, "_axe"):
		return Axe
	}
	return NotWeapon
}
