// Package gui implements paginated button menus rendered into host
// containers. A Manager creates menus and owns the host wiring; menus hold
// a sparse absolute-slot button map that pages over a fixed window of rows,
// with an optional pagination toolbar rendered below the page.
package gui

import (
	"fmt"

	"github.com/NicksCraft/ParadoxLib/pkg/item"
)

const (
	// SlotsPerRow is the width of a container row.
	SlotsPerRow = 9

	// ToolbarSlots is the size of the pagination toolbar row.
	ToolbarSlots = 9
)

// Menu is a paginated grid of buttons. Buttons live in a sparse map keyed
// by absolute slot; the current page selects which pageSize-wide band of
// that map is visible. Menus are not safe for concurrent use.
type Menu struct {
	manager *Manager

	title       string
	id          string
	rowsPerPage int

	buttons     map[int]*Button
	stickySlots map[int]bool

	currentPage int

	toolbarBuilder           ToolbarBuilder
	automaticPagination      bool
	blockDefaultInteractions bool

	blockedMenuActions     map[ActionKind]bool
	blockedAdjacentActions map[ActionKind]bool
	permittedClickKinds    map[ClickKind]bool

	onClose      func(*CloseEvent)
	onPageChange func(*Menu)
}

func newMenu(mgr *Manager, title string, rowsPerPage int, id string, permitted []ClickKind) *Menu {
	m := &Menu{
		manager:                  mgr,
		title:                    item.TranslateColorCodes('&', title),
		id:                       id,
		rowsPerPage:              rowsPerPage,
		buttons:                  make(map[int]*Button),
		stickySlots:              make(map[int]bool),
		toolbarBuilder:           mgr.toolbarBuilder,
		automaticPagination:      mgr.automaticPagination,
		blockDefaultInteractions: mgr.blockDefaultInteractions,
		blockedMenuActions:       actionSet(defaultBlockedMenuActions),
		blockedAdjacentActions:   actionSet(defaultBlockedAdjacentActions),
	}
	if len(permitted) > 0 {
		m.permittedClickKinds = clickSet(permitted)
	} else {
		m.permittedClickKinds = clickSet(defaultPermittedClickKinds)
	}
	return m
}

// Manager returns the manager this menu was created by.
func (m *Menu) Manager() *Manager { return m.manager }

// ID returns the menu's tag, or "" for untagged menus.
func (m *Menu) ID() string { return m.id }

func (m *Menu) SetID(id string) { m.id = id }

// Title returns the stored title with color codes applied but placeholders
// unexpanded. RenderTitle expands them for display.
func (m *Menu) Title() string { return m.title }

// SetTitle stores the title, translating &-style color codes.
func (m *Menu) SetTitle(title string) {
	m.title = item.TranslateColorCodes('&', title)
}

// SetRawTitle stores the title without color code translation.
func (m *Menu) SetRawTitle(title string) { m.title = title }

// RowsPerPage returns the number of button rows shown per page.
func (m *Menu) RowsPerPage() int { return m.rowsPerPage }

func (m *Menu) SetRowsPerPage(rows int) { m.rowsPerPage = rows }

// PageSize returns the number of button slots on one page.
func (m *Menu) PageSize() int { return SlotsPerRow * m.rowsPerPage }

// DefaultInteractionsBlocked reports whether unhandled clicks inside the
// menu are denied.
func (m *Menu) DefaultInteractionsBlocked() bool { return m.blockDefaultInteractions }

func (m *Menu) SetBlockDefaultInteractions(block bool) { m.blockDefaultInteractions = block }

// AutomaticPaginationEnabled reports whether a toolbar row is appended to
// rendered windows.
func (m *Menu) AutomaticPaginationEnabled() bool { return m.automaticPagination }

func (m *Menu) SetAutomaticPaginationEnabled(enabled bool) { m.automaticPagination = enabled }

// ToolbarBuilder returns the builder used for this menu's toolbar row.
func (m *Menu) ToolbarBuilder() ToolbarBuilder { return m.toolbarBuilder }

func (m *Menu) SetToolbarBuilder(b ToolbarBuilder) { m.toolbarBuilder = b }

// BlockedMenuActions returns the live set of actions denied inside the
// menu. Callers may mutate it.
func (m *Menu) BlockedMenuActions() map[ActionKind]bool { return m.blockedMenuActions }

// BlockedAdjacentActions returns the live set of actions denied in the
// viewer's own inventory while the menu is open.
func (m *Menu) BlockedAdjacentActions() map[ActionKind]bool { return m.blockedAdjacentActions }

// PermittedClickKinds returns the live set of click kinds the menu accepts.
func (m *Menu) PermittedClickKinds() map[ClickKind]bool { return m.permittedClickKinds }

// SetButton places a button at an absolute slot. A nil button is stored
// as-is and treated as empty.
func (m *Menu) SetButton(slot int, b *Button) {
	m.buttons[slot] = b
}

// SetButtonOnPage places a button at a page-relative slot. Out-of-range
// slots are ignored; the upper bound is inclusive of pageSize.
func (m *Menu) SetButtonOnPage(page, slot int, b *Button) {
	if slot < 0 || slot > m.PageSize() {
		return
	}
	m.SetButton(page*m.PageSize()+slot, b)
}

// GetButton returns the button at an absolute slot, or nil for slots that
// are empty or beyond the highest filled slot.
func (m *Menu) GetButton(slot int) *Button {
	if slot < 0 || slot > m.HighestFilledSlot() {
		return nil
	}
	return m.buttons[slot]
}

// GetButtonOnPage returns the button at a page-relative slot, or nil when
// the slot is out of range.
func (m *Menu) GetButtonOnPage(page, slot int) *Button {
	if slot < 0 || slot > m.PageSize() {
		return nil
	}
	return m.GetButton(page*m.PageSize() + slot)
}

// RemoveButton clears an absolute slot.
func (m *Menu) RemoveButton(slot int) {
	delete(m.buttons, slot)
}

// RemoveButtonOnPage clears a page-relative slot. Out-of-range slots are
// ignored.
func (m *Menu) RemoveButtonOnPage(page, slot int) {
	if slot < 0 || slot > m.PageSize() {
		return
	}
	m.RemoveButton(page*m.PageSize() + slot)
}

// AddButton appends a button after the highest filled slot, except that an
// empty slot 0 is filled first.
func (m *Menu) AddButton(b *Button) {
	if m.HighestFilledSlot() == 0 && m.GetButton(0) == nil {
		m.SetButton(0, b)
		return
	}
	m.SetButton(m.HighestFilledSlot()+1, b)
}

// AddButtons appends buttons in order.
func (m *Menu) AddButtons(buttons ...*Button) {
	for _, b := range buttons {
		m.AddButton(b)
	}
}

// HighestFilledSlot returns the highest absolute slot holding a non-nil
// button, or 0 for an empty menu.
func (m *Menu) HighestFilledSlot() int {
	highest := 0
	for slot, b := range m.buttons {
		if b != nil && slot > highest {
			highest = slot
		}
	}
	return highest
}

// StickSlot marks a page-relative slot as sticky: every page renders that
// slot from page 0. Out-of-range slots are ignored.
func (m *Menu) StickSlot(slot int) {
	if slot < 0 || slot >= m.PageSize() {
		return
	}
	m.stickySlots[slot] = true
}

// UnstickSlot removes the sticky mark from a slot.
func (m *Menu) UnstickSlot(slot int) {
	delete(m.stickySlots, slot)
}

// IsStickiedSlot reports whether a page-relative slot is sticky.
func (m *Menu) IsStickiedSlot(slot int) bool {
	if slot < 0 || slot >= m.PageSize() {
		return false
	}
	return m.stickySlots[slot]
}

// ClearStickySlots removes every sticky mark, leaving buttons in place.
func (m *Menu) ClearStickySlots() {
	m.stickySlots = make(map[int]bool)
}

// StickiedSlots returns the sticky slots in no particular order.
func (m *Menu) StickiedSlots() []int {
	slots := make([]int, 0, len(m.stickySlots))
	for slot := range m.stickySlots {
		slots = append(slots, slot)
	}
	return slots
}

// ClearAllButStickiedSlots resets the menu to page 0 and removes every
// button that is not in a sticky slot.
func (m *Menu) ClearAllButStickiedSlots() {
	m.currentPage = 0
	for slot := range m.buttons {
		if !m.IsStickiedSlot(slot) {
			delete(m.buttons, slot)
		}
	}
}

// CurrentPage returns the zero-indexed page the menu is on.
func (m *Menu) CurrentPage() int { return m.currentPage }

// SetCurrentPage moves the menu to a page without clamping or refreshing
// any open view. Fires the page change callback.
func (m *Menu) SetCurrentPage(page int) {
	m.currentPage = page
	if m.onPageChange != nil {
		m.onPageChange(m)
	}
}

// MaxPageNumber returns the one-indexed count of pages needed to show every
// button. An empty menu still has one page.
func (m *Menu) MaxPageNumber() int {
	pageSize := m.PageSize()
	return (m.HighestFilledSlot() + pageSize) / pageSize
}

// MaxPageIndex returns the zero-indexed last page, for comparison against
// CurrentPage.
func (m *Menu) MaxPageIndex() int {
	return m.MaxPageNumber() - 1
}

// NextPage advances to the next page if one exists, refreshing the viewer's
// open window and firing the page change callback. Returns whether the page
// changed.
func (m *Menu) NextPage(viewer Viewer) bool {
	if m.currentPage >= m.MaxPageIndex() {
		return false
	}
	m.currentPage++
	m.Refresh(viewer)
	if m.onPageChange != nil {
		m.onPageChange(m)
	}
	return true
}

// PreviousPage moves back one page if possible, refreshing the viewer's
// open window and firing the page change callback. Returns whether the page
// changed.
func (m *Menu) PreviousPage(viewer Viewer) bool {
	if m.currentPage <= 0 {
		return false
	}
	m.currentPage--
	m.Refresh(viewer)
	if m.onPageChange != nil {
		m.onPageChange(m)
	}
	return true
}

// OnClose sets the callback fired when a viewer closes this menu.
func (m *Menu) OnClose(fn func(*CloseEvent)) {
	m.onClose = fn
}

// OnPageChange sets the callback fired whenever the current page changes.
func (m *Menu) OnPageChange(fn func(*Menu)) {
	m.onPageChange = fn
}

func (m *Menu) String() string {
	return fmt.Sprintf("Menu[title=%q, id=%q, rowsPerPage=%d, currentPage=%d]",
		m.title, m.id, m.rowsPerPage, m.currentPage)
}
