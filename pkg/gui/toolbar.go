package gui

import (
	"fmt"

	"github.com/NicksCraft/ParadoxLib/pkg/item"
)

// ToolbarButtonKind is the role a toolbar slot plays in pagination.
type ToolbarButtonKind int

const (
	ToolbarPrevious ToolbarButtonKind = iota
	ToolbarCurrent
	ToolbarNext
	ToolbarUnassigned
)

func (k ToolbarButtonKind) String() string {
	switch k {
	case ToolbarPrevious:
		return "previous"
	case ToolbarCurrent:
		return "current"
	case ToolbarNext:
		return "next"
	}
	return "unassigned"
}

// KindForOffset returns the default role for a toolbar offset: previous at
// 0, current at 4, next at 8, unassigned elsewhere.
func KindForOffset(offset int) ToolbarButtonKind {
	switch offset {
	case 0:
		return ToolbarPrevious
	case 4:
		return ToolbarCurrent
	case 8:
		return ToolbarNext
	}
	return ToolbarUnassigned
}

// ToolbarBuilder produces the buttons of a menu's toolbar row.
type ToolbarBuilder interface {
	// BuildToolbarButton returns the button for one toolbar offset, or nil
	// to leave it empty. page is the menu page the toolbar is being built
	// for and must match the menu's current page.
	BuildToolbarButton(offset, page int, kind ToolbarButtonKind, menu *Menu) *Button
}

// LabelBuilder produces a display name for a toolbar button. The returned
// text may use &-style color codes.
type LabelBuilder func(*Menu) string

// LoreBuilder produces lore lines for a toolbar button.
type LoreBuilder func(*Menu) []string

// DefaultToolbarBuilder renders previous/current/next pagination buttons at
// offsets 0, 4 and 8. Every text and icon is a swappable func, so callers
// can relabel or reskin buttons without re-implementing the paging logic.
type DefaultToolbarBuilder struct {
	PreviousLabel LabelBuilder
	PreviousLore  LoreBuilder
	CurrentLabel  LabelBuilder
	CurrentLore   LoreBuilder
	NextLabel     LabelBuilder
	NextLore      LoreBuilder

	PreviousIcon func() *item.Builder
	CurrentIcon  func() *item.Builder
	NextIcon     func() *item.Builder
}

// NewDefaultToolbarBuilder returns a builder with the stock labels, lore
// and icons.
func NewDefaultToolbarBuilder() *DefaultToolbarBuilder {
	return &DefaultToolbarBuilder{
		PreviousLabel: func(*Menu) string { return "&a&l← Previous Page" },
		PreviousLore: func(m *Menu) []string {
			return []string{
				"&aClick to move back to",
				fmt.Sprintf("&apage %d.", m.CurrentPage()),
			}
		},
		CurrentLabel: func(m *Menu) string {
			return fmt.Sprintf("&7&lPage %d of %d", m.CurrentPage()+1, m.MaxPageNumber())
		},
		CurrentLore: func(m *Menu) []string {
			return []string{
				"&7You are currently viewing",
				fmt.Sprintf("&7page %d.", m.CurrentPage()+1),
			}
		},
		NextLabel: func(*Menu) string { return "&a&lNext Page →" },
		NextLore: func(m *Menu) []string {
			return []string{
				"&aClick to move forward to",
				fmt.Sprintf("&apage %d.", m.CurrentPage()+2),
			}
		},
		PreviousIcon: func() *item.Builder { return item.NewBuilder("minecraft:arrow") },
		CurrentIcon:  func() *item.Builder { return item.NewBuilder("minecraft:paper") },
		NextIcon:     func() *item.Builder { return item.NewBuilder("minecraft:arrow") },
	}
}

// BuildToolbarButton builds the stock pagination buttons. The previous
// button only exists past page 0 and the next button only below the last
// page; both deny the click and flip the page for the clicking viewer.
func (d *DefaultToolbarBuilder) BuildToolbarButton(offset, page int, kind ToolbarButtonKind, menu *Menu) *Button {
	if page != menu.CurrentPage() {
		panic(fmt.Sprintf(
			"gui: toolbar built for page %d but menu %s is on page %d (modified during render?)",
			page, menu.ID(), menu.CurrentPage(),
		))
	}

	switch kind {
	case ToolbarPrevious:
		if menu.CurrentPage() <= 0 {
			return nil
		}
		icon := d.PreviousIcon().
			Name(d.PreviousLabel(menu)).
			Lore(d.PreviousLore(menu)...).
			Build()
		return NewButton(icon).WithHandler(func(e *ClickEvent) {
			e.Deny()
			menu.PreviousPage(e.Viewer)
		})

	case ToolbarCurrent:
		icon := d.CurrentIcon().
			Name(d.CurrentLabel(menu)).
			Lore(d.CurrentLore(menu)...).
			Build()
		return NewButton(icon).WithHandler(func(e *ClickEvent) {
			e.Deny()
		})

	case ToolbarNext:
		if menu.CurrentPage() >= menu.MaxPageIndex() {
			return nil
		}
		icon := d.NextIcon().
			Name(d.NextLabel(menu)).
			Lore(d.NextLore(menu)...).
			Build()
		return NewButton(icon).WithHandler(func(e *ClickEvent) {
			e.Deny()
			menu.NextPage(e.Viewer)
		})
	}
	return nil
}
