package gui

import (
	"strconv"
	"strings"

	"github.com/NicksCraft/ParadoxLib/pkg/item"
)

// Window is the rendered form of a menu's current page: a dense slice of
// display stacks (nil for empty slots) plus the size and expanded title the
// backing container should have.
type Window struct {
	Size     int
	Title    string
	Contents []*item.Stack
}

func (m *Menu) needsPagination() bool {
	return m.automaticPagination && m.MaxPageNumber() > 0
}

// windowSize is the container size the current render wants. Open and
// Refresh must agree on this or a page flip would write past the window.
func (m *Menu) windowSize() int {
	if m.needsPagination() {
		return m.PageSize() + ToolbarSlots
	}
	return m.PageSize()
}

// RenderTitle expands the {currentPage} and {maxPage} placeholders in the
// menu title. Page numbers are shown one-indexed.
func (m *Menu) RenderTitle() string {
	title := strings.ReplaceAll(m.title, "{currentPage}", strconv.Itoa(m.currentPage+1))
	return strings.ReplaceAll(title, "{maxPage}", strconv.Itoa(m.MaxPageNumber()))
}

// RenderWindow projects the current page into a window: the page's band of
// the button map, sticky slots taken from page 0 on top, and the toolbar
// row when pagination is active.
func (m *Menu) RenderWindow() Window {
	pageSize := m.PageSize()
	size := m.windowSize()
	contents := make([]*item.Stack, size)

	highest := m.HighestFilledSlot()
	start := m.currentPage * pageSize
	for slot := start; slot < start+pageSize; slot++ {
		if slot > highest {
			break
		}
		if b := m.buttons[slot]; b != nil {
			contents[slot-start] = b.Icon()
		}
	}

	for slot := range m.stickySlots {
		if b := m.buttons[slot]; b != nil {
			contents[slot] = b.Icon()
		} else {
			contents[slot] = nil
		}
	}

	if m.needsPagination() {
		builder := m.toolbarBuilder
		if builder == nil {
			panic("gui: menu has no toolbar builder")
		}
		for offset := 0; offset < ToolbarSlots; offset++ {
			b := builder.BuildToolbarButton(offset, m.currentPage, KindForOffset(offset), m)
			if b != nil {
				contents[pageSize+offset] = b.Icon()
			}
		}
	}

	return Window{Size: size, Title: m.RenderTitle(), Contents: contents}
}

// Open renders the menu into a fresh container and shows it to the viewer.
func (m *Menu) Open(viewer Viewer) {
	if viewer == nil {
		return
	}
	w := m.RenderWindow()
	c := m.manager.host.CreateContainer(m, w.Size, w.Title)
	c.SetContents(w.Contents)
	viewer.OpenContainer(c)
}

// Refresh re-renders the menu into the viewer's open window. It does
// nothing unless the viewer is currently looking at this menu. When the
// render needs a different size or title than the open container has, the
// menu is reopened instead of written in place.
func (m *Menu) Refresh(viewer Viewer) {
	if viewer == nil {
		return
	}
	view := viewer.OpenView()
	if view == nil {
		return
	}
	top := view.Top()
	if top == nil || top.Holder() != m {
		return
	}

	w := m.RenderWindow()
	if top.Size() != w.Size || top.Title() != w.Title {
		m.Open(viewer)
		return
	}
	top.SetContents(w.Contents)
}
