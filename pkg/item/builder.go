// Package item builds the display stacks that menus render into container
// slots. Materials are resolved against the vanilla item registry, so a
// typo'd material fails at construction time rather than rendering a hole.
package item

import (
	"fmt"
	"strings"

	"github.com/go-mclib/data/pkg/data/items"
)

const airMaterial = "minecraft:air"

// Stack is a renderable item: a registry material plus the display name,
// lore and count a host should show for it. Display text is stored with
// section-sign color codes already applied.
type Stack struct {
	Material string
	ID       int32
	Count    int
	Name     string
	Lore     []string
}

// IsAir reports whether the stack renders as an empty slot.
func (s *Stack) IsAir() bool {
	return s == nil || s.Material == "" || s.Material == airMaterial
}

func (s *Stack) String() string {
	if s.IsAir() {
		return "air"
	}
	return fmt.Sprintf("%dx %s", s.Count, s.Material)
}

// Normalize lowercases a material name and prefixes the vanilla namespace
// when none is given, so "Stone" and "minecraft:stone" resolve the same.
func Normalize(material string) string {
	material = strings.ToLower(strings.TrimSpace(material))
	if material != "" && !strings.Contains(material, ":") {
		material = "minecraft:" + material
	}
	return material
}

// FromID builds a plain stack for a registry ID, with no display overrides.
func FromID(id int32, count int) *Stack {
	return &Stack{Material: items.ItemName(id), ID: id, Count: count}
}

// Builder assembles a Stack fluently. Build panics on unresolvable or air
// materials, the earliest point the mistake is visible.
type Builder struct {
	material string
	id       int32
	count    int
	name     string
	lore     []string
}

// NewBuilder starts a build for the given material. The material is
// normalized immediately but only validated by Build.
func NewBuilder(material string) *Builder {
	normalized := Normalize(material)
	return &Builder{
		material: normalized,
		id:       items.ItemID(normalized),
		count:    1,
	}
}

// Name sets the display name, translating &-style color codes.
func (b *Builder) Name(name string) *Builder {
	b.name = TranslateColorCodes('&', name)
	return b
}

// RawName sets the display name without color code translation.
func (b *Builder) RawName(name string) *Builder {
	b.name = name
	return b
}

// Lore sets the lore lines, translating &-style color codes per line.
func (b *Builder) Lore(lines ...string) *Builder {
	b.lore = make([]string, len(lines))
	for i, line := range lines {
		b.lore[i] = TranslateColorCodes('&', line)
	}
	return b
}

// RawLore sets the lore lines without color code translation.
func (b *Builder) RawLore(lines ...string) *Builder {
	b.lore = append([]string(nil), lines...)
	return b
}

// Amount sets the stack count.
func (b *Builder) Amount(count int) *Builder {
	b.count = count
	return b
}

// Build validates the material and returns the finished stack.
func (b *Builder) Build() *Stack {
	if b.id < 0 {
		panic(fmt.Sprintf("item: unknown material %q", b.material))
	}
	if b.material == airMaterial {
		panic("item: air cannot be used as a display stack")
	}
	return &Stack{
		Material: b.material,
		ID:       b.id,
		Count:    b.count,
		Name:     b.name,
		Lore:     append([]string(nil), b.lore...),
	}
}
