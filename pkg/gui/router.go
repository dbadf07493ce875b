package gui

// Router classifies raw container interaction events against the menus of
// one manager. It keeps no state of its own; every entry point resolves
// the event's container fresh.
type Router struct {
	manager *Manager
}

// holderKind is the result of resolving a container back to a menu.
type holderKind int

const (
	holderNone holderKind = iota
	holderForeignMenu
	holderMenu
)

// resolve classifies a container: not menu-held at all, held by a menu of
// another manager, or held by a menu of ours.
func (r *Router) resolve(c Container) (*Menu, holderKind) {
	if c == nil {
		return nil, holderNone
	}
	menu, ok := c.Holder().(*Menu)
	if !ok || menu == nil {
		return nil, holderNone
	}
	if menu.manager != r.manager {
		return menu, holderForeignMenu
	}
	return menu, holderMenu
}

// HandleClick processes a click inside a menu container: policy filters
// first, then toolbar resolution for the trailing row, then sticky and
// normal button dispatch.
func (r *Router) HandleClick(e *ClickEvent) {
	menu, kind := r.resolve(e.Container)
	if kind != holderMenu {
		return
	}

	// Snapshot paging state so a handler flipping the page mid-dispatch
	// cannot redirect this click's button resolution.
	page := menu.CurrentPage()
	pageSize := menu.PageSize()

	if menu.blockedMenuActions[e.Action] {
		e.Deny()
		return
	}
	if !menu.permittedClickKinds[e.Kind] {
		e.Deny()
		return
	}
	if menu.blockDefaultInteractions {
		e.Deny()
	}

	if e.Slot >= pageSize {
		// Toolbar row. Never moves items, never reaches a normal button.
		e.Deny()
		builder := menu.ToolbarBuilder()
		if builder == nil {
			panic("gui: menu has no toolbar builder")
		}
		offset := e.Slot - pageSize
		b := builder.BuildToolbarButton(offset, menu.CurrentPage(), KindForOffset(offset), menu)
		if b != nil && b.Handler() != nil {
			b.Handler()(e)
		}
		return
	}

	if menu.IsStickiedSlot(e.Slot) {
		if b := menu.GetButtonOnPage(0, e.Slot); b != nil && b.Handler() != nil {
			b.Handler()(e)
		}
	}

	if b := menu.GetButtonOnPage(page, e.Slot); b != nil && b.Handler() != nil {
		b.Handler()(e)
	}
}

// HandleAdjacentClick vetoes clicks in the container shown alongside an
// open menu, typically the viewer's own inventory.
func (r *Router) HandleAdjacentClick(e *ClickEvent) {
	if e.View == nil {
		return
	}
	top := e.View.Top()
	menu, kind := r.resolve(top)
	if kind != holderMenu {
		return
	}
	if e.Container == top {
		// A click on the menu itself; HandleClick owns that path.
		return
	}
	// Checks blockedMenuActions, not blockedAdjacentActions.
	if menu.blockedMenuActions[e.Action] {
		e.Deny()
	}
}

// HandleDrag vetoes drags that spill into an open menu container.
func (r *Router) HandleDrag(e *DragEvent) {
	if e.View == nil {
		return
	}
	top := e.View.Top()
	if _, kind := r.resolve(top); kind != holderMenu {
		return
	}
	if dragTouchesTop(e.View, e.RawSlots) {
		e.Deny()
	}
}

// dragTouchesTop reports whether any raw slot lands in the view's top
// container. A raw slot counts only when it is below the top container's
// size and maps to itself under view slot conversion, which excludes
// bottom-container slots whose raw index merely overlaps numerically.
func dragTouchesTop(view View, rawSlots []int) bool {
	top := view.Top()
	for _, raw := range rawSlots {
		if raw >= top.Size() {
			continue
		}
		if view.ConvertSlot(raw) == raw {
			return true
		}
	}
	return false
}

// HandleClose fires the menu's close callback when a viewer closes it.
func (r *Router) HandleClose(e *CloseEvent) {
	menu, kind := r.resolve(e.Container)
	if kind != holderMenu {
		return
	}
	if menu.onClose != nil {
		menu.onClose(e)
	}
}

// Attach registers the router's handlers on a bus. The adjacent and drag
// vetoes run at lowest priority so later handlers observe the verdict; the
// click and close paths run at normal priority.
func (r *Router) Attach(bus EventBus) {
	bus.OnClick(PriorityLowest, r.HandleAdjacentClick)
	bus.OnDrag(PriorityLowest, r.HandleDrag)
	bus.OnClick(PriorityNormal, r.HandleClick)
	bus.OnClose(PriorityNormal, r.HandleClose)
}
