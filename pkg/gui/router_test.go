package gui

import "testing"

// clickOn builds a click event for a slot of the viewer's open top
// container.
func clickOn(viewer *fakeViewer, slot int, kind ClickKind, action ActionKind) *ClickEvent {
	top := viewer.view.top
	return &ClickEvent{
		Viewer:    viewer,
		View:      viewer.view,
		Container: top,
		Slot:      slot,
		RawSlot:   slot,
		Kind:      kind,
		Action:    action,
	}
}

// bottomClick builds a click event for the viewer's own inventory while a
// container is open above it.
func bottomClick(viewer *fakeViewer, slot int, kind ClickKind, action ActionKind) *ClickEvent {
	return &ClickEvent{
		Viewer:    viewer,
		View:      viewer.view,
		Container: viewer.view.bottom,
		Slot:      slot,
		RawSlot:   viewer.view.top.Size() + slot,
		Kind:      kind,
		Action:    action,
	}
}

func TestClickInvokesButtonHandler(t *testing.T) {
	mgr, _ := newTestManager()
	menu := mgr.NewMenu("Menu", 1)

	var calls int
	var seen *ClickEvent
	menu.SetButton(2, NewButton(icon("stone")).WithHandler(func(e *ClickEvent) {
		calls++
		seen = e
	}))

	viewer := newFakeViewer("Steve")
	menu.Open(viewer)

	e := clickOn(viewer, 2, ClickLeft, ActionPickupAll)
	mgr.Router().HandleClick(e)

	if calls != 1 {
		t.Fatalf("handler calls = %d, want 1", calls)
	}
	if seen != e {
		t.Error("handler received a different event")
	}
	if e.Result() != ResultDeny {
		t.Errorf("Result() = %v, want deny with default interactions blocked", e.Result())
	}
}

func TestClickIgnoresUnmanagedContainer(t *testing.T) {
	mgr, _ := newTestManager()

	viewer := newFakeViewer("Steve")
	viewer.OpenContainer(&fakeContainer{size: 27, title: "chest"})

	e := clickOn(viewer, 0, ClickLeft, ActionPickupAll)
	mgr.Router().HandleClick(e)

	if e.Result() != ResultDefault {
		t.Errorf("Result() = %v, want default for an unmanaged container", e.Result())
	}
}

func TestClickIgnoresForeignManagerMenu(t *testing.T) {
	mgr, _ := newTestManager()
	other, _ := newTestManager()
	foreign := other.NewMenu("Foreign", 1)

	var calls int
	foreign.SetButton(0, NewButton(icon("stone")).WithHandler(func(*ClickEvent) { calls++ }))

	viewer := newFakeViewer("Steve")
	foreign.Open(viewer)

	e := clickOn(viewer, 0, ClickLeft, ActionPickupAll)
	mgr.Router().HandleClick(e)

	if calls != 0 {
		t.Errorf("handler calls = %d, want 0 for a foreign manager's menu", calls)
	}
	if e.Result() != ResultDefault {
		t.Errorf("Result() = %v, want default", e.Result())
	}
}

func TestClickBlockedActionStopsBeforeHandlers(t *testing.T) {
	mgr, _ := newTestManager()
	menu := mgr.NewMenu("Menu", 1)

	var calls int
	menu.SetButton(0, NewButton(icon("stone")).WithHandler(func(*ClickEvent) { calls++ }))

	viewer := newFakeViewer("Steve")
	menu.Open(viewer)

	e := clickOn(viewer, 0, ClickLeft, ActionMoveToOtherInventory)
	mgr.Router().HandleClick(e)

	if e.Result() != ResultDeny {
		t.Errorf("Result() = %v, want deny", e.Result())
	}
	if calls != 0 {
		t.Errorf("handler calls = %d, want 0 for a blocked action", calls)
	}
}

func TestClickUnpermittedKindStopsBeforeHandlers(t *testing.T) {
	mgr, _ := newTestManager()
	menu := mgr.NewMenu("Menu", 1)

	var calls int
	menu.SetButton(0, NewButton(icon("stone")).WithHandler(func(*ClickEvent) { calls++ }))

	viewer := newFakeViewer("Steve")
	menu.Open(viewer)

	e := clickOn(viewer, 0, ClickMiddle, ActionCloneStack)
	mgr.Router().HandleClick(e)

	if e.Result() != ResultDeny {
		t.Errorf("Result() = %v, want deny", e.Result())
	}
	if calls != 0 {
		t.Errorf("handler calls = %d, want 0 for an unpermitted click kind", calls)
	}
}

func TestClickDefaultInteractionPolicy(t *testing.T) {
	mgr, _ := newTestManager()
	blocked := mgr.NewMenu("Blocked", 1)
	viewer := newFakeViewer("Steve")
	blocked.Open(viewer)

	e := clickOn(viewer, 5, ClickLeft, ActionPickupAll)
	mgr.Router().HandleClick(e)
	if e.Result() != ResultDeny {
		t.Errorf("Result() = %v, want deny while blocking default interactions", e.Result())
	}

	open := mgr.NewMenu("Open", 1)
	open.SetBlockDefaultInteractions(false)
	open.Open(viewer)

	e = clickOn(viewer, 5, ClickLeft, ActionPickupAll)
	mgr.Router().HandleClick(e)
	if e.Result() != ResultDefault {
		t.Errorf("Result() = %v, want default with interactions allowed", e.Result())
	}
}

func TestToolbarPreviousClick(t *testing.T) {
	mgr, _ := newTestManager()
	menu := mgr.NewMenu("Menu", 1)
	for i := 0; i < 20; i++ {
		menu.AddButton(NewButton(icon("stone")))
	}

	// A button stored at page 1's inclusive-bound slot must not be reached
	// by a toolbar click on the same window slot.
	var normalCalls int
	menu.SetButtonOnPage(1, 9, NewButton(icon("paper")).WithHandler(func(*ClickEvent) { normalCalls++ }))

	menu.SetCurrentPage(1)
	viewer := newFakeViewer("Steve")
	menu.Open(viewer)

	e := clickOn(viewer, menu.PageSize(), ClickLeft, ActionPickupAll)
	mgr.Router().HandleClick(e)

	if e.Result() != ResultDeny {
		t.Errorf("Result() = %v, want deny", e.Result())
	}
	if got := menu.CurrentPage(); got != 0 {
		t.Errorf("CurrentPage() = %d, want 0 after the previous button", got)
	}
	if normalCalls != 0 {
		t.Errorf("normal handler calls = %d, want 0 for a toolbar click", normalCalls)
	}
}

func TestToolbarNextClick(t *testing.T) {
	mgr, _ := newTestManager()
	menu := mgr.NewMenu("Menu", 1)
	for i := 0; i < 20; i++ {
		menu.AddButton(NewButton(icon("stone")))
	}
	viewer := newFakeViewer("Steve")
	menu.Open(viewer)

	e := clickOn(viewer, menu.PageSize()+8, ClickLeft, ActionPickupAll)
	mgr.Router().HandleClick(e)

	if got := menu.CurrentPage(); got != 1 {
		t.Errorf("CurrentPage() = %d, want 1 after the next button", got)
	}
	if e.Result() != ResultDeny {
		t.Errorf("Result() = %v, want deny", e.Result())
	}
}

func TestToolbarNextClickAtLastPage(t *testing.T) {
	mgr, _ := newTestManager()
	menu := mgr.NewMenu("Menu", 1)
	for i := 0; i < 20; i++ {
		menu.AddButton(NewButton(icon("stone")))
	}
	menu.SetCurrentPage(2)
	viewer := newFakeViewer("Steve")
	menu.Open(viewer)

	e := clickOn(viewer, menu.PageSize()+8, ClickLeft, ActionPickupAll)
	mgr.Router().HandleClick(e)

	if got := menu.CurrentPage(); got != 2 {
		t.Errorf("CurrentPage() = %d, want 2 still", got)
	}
	if e.Result() != ResultDeny {
		t.Errorf("Result() = %v, want deny even with no button", e.Result())
	}
}

func TestToolbarCurrentClick(t *testing.T) {
	mgr, _ := newTestManager()
	menu := mgr.NewMenu("Menu", 1)
	for i := 0; i < 20; i++ {
		menu.AddButton(NewButton(icon("stone")))
	}
	menu.SetCurrentPage(1)
	viewer := newFakeViewer("Steve")
	menu.Open(viewer)

	e := clickOn(viewer, menu.PageSize()+4, ClickLeft, ActionPickupAll)
	mgr.Router().HandleClick(e)

	if got := menu.CurrentPage(); got != 1 {
		t.Errorf("CurrentPage() = %d, want 1", got)
	}
	if e.Result() != ResultDeny {
		t.Errorf("Result() = %v, want deny", e.Result())
	}
}

func TestToolbarUnassignedOffsetClick(t *testing.T) {
	mgr, _ := newTestManager()
	menu := mgr.NewMenu("Menu", 1)
	for i := 0; i < 20; i++ {
		menu.AddButton(NewButton(icon("stone")))
	}
	viewer := newFakeViewer("Steve")
	menu.Open(viewer)

	e := clickOn(viewer, menu.PageSize()+2, ClickLeft, ActionPickupAll)
	mgr.Router().HandleClick(e)

	if e.Result() != ResultDeny {
		t.Errorf("Result() = %v, want deny", e.Result())
	}
	if got := menu.CurrentPage(); got != 0 {
		t.Errorf("CurrentPage() = %d, want 0", got)
	}
}

func TestClickStickySlotFiresPageZeroHandlerToo(t *testing.T) {
	mgr, _ := newTestManager()
	menu := mgr.NewMenu("Menu", 1)

	var stickyCalls, normalCalls int
	menu.SetButton(2, NewButton(icon("paper")).WithHandler(func(*ClickEvent) { stickyCalls++ }))
	for i := 1; i < 20; i++ {
		menu.AddButton(NewButton(icon("stone")))
	}
	menu.SetButtonOnPage(1, 2, NewButton(icon("stone")).WithHandler(func(*ClickEvent) { normalCalls++ }))
	menu.StickSlot(2)
	menu.SetCurrentPage(1)

	viewer := newFakeViewer("Steve")
	menu.Open(viewer)

	e := clickOn(viewer, 2, ClickLeft, ActionPickupAll)
	mgr.Router().HandleClick(e)

	if stickyCalls != 1 {
		t.Errorf("sticky handler calls = %d, want 1", stickyCalls)
	}
	if normalCalls != 1 {
		t.Errorf("normal handler calls = %d, want 1", normalCalls)
	}
}

// A handler that flips the page mid-dispatch must not redirect the same
// click's button resolution; the router resolves with the page as it was
// when the click arrived.
func TestClickResolutionUsesPageSnapshot(t *testing.T) {
	mgr, _ := newTestManager()
	menu := mgr.NewMenu("Menu", 1)

	var snapshotCalls, hijackCalls int
	menu.SetButton(2, NewButton(icon("paper")).WithHandler(func(*ClickEvent) {
		menu.SetCurrentPage(5)
	}))
	for i := 1; i < 20; i++ {
		menu.AddButton(NewButton(icon("stone")))
	}
	menu.SetButtonOnPage(1, 2, NewButton(icon("stone")).WithHandler(func(*ClickEvent) { snapshotCalls++ }))
	menu.SetButtonOnPage(5, 2, NewButton(icon("stone")).WithHandler(func(*ClickEvent) { hijackCalls++ }))
	menu.StickSlot(2)
	menu.SetCurrentPage(1)

	viewer := newFakeViewer("Steve")
	menu.Open(viewer)

	e := clickOn(viewer, 2, ClickLeft, ActionPickupAll)
	mgr.Router().HandleClick(e)

	if snapshotCalls != 1 {
		t.Errorf("snapshot-page handler calls = %d, want 1", snapshotCalls)
	}
	if hijackCalls != 0 {
		t.Errorf("post-flip page handler calls = %d, want 0", hijackCalls)
	}
}

func TestAdjacentClickDeniesBlockedAction(t *testing.T) {
	mgr, _ := newTestManager()
	menu := mgr.NewMenu("Menu", 1)
	viewer := newFakeViewer("Steve")
	menu.Open(viewer)

	e := bottomClick(viewer, 3, ClickShiftLeft, ActionMoveToOtherInventory)
	mgr.Router().HandleAdjacentClick(e)

	if e.Result() != ResultDeny {
		t.Errorf("Result() = %v, want deny", e.Result())
	}
}

func TestAdjacentClickAllowsUnblockedAction(t *testing.T) {
	mgr, _ := newTestManager()
	menu := mgr.NewMenu("Menu", 1)
	viewer := newFakeViewer("Steve")
	menu.Open(viewer)

	e := bottomClick(viewer, 3, ClickLeft, ActionPickupAll)
	mgr.Router().HandleAdjacentClick(e)

	if e.Result() != ResultDefault {
		t.Errorf("Result() = %v, want default", e.Result())
	}
}

// Documented quirk: the adjacent path consults the menu blocklist, so an
// action listed only in the adjacent blocklist is not denied.
func TestAdjacentClickConsultsMenuBlocklist(t *testing.T) {
	mgr, _ := newTestManager()
	menu := mgr.NewMenu("Menu", 1)
	menu.BlockedAdjacentActions()[ActionHotbarSwap] = true
	viewer := newFakeViewer("Steve")
	menu.Open(viewer)

	e := bottomClick(viewer, 3, ClickLeft, ActionHotbarSwap)
	mgr.Router().HandleAdjacentClick(e)
	if e.Result() != ResultDefault {
		t.Errorf("Result() = %v, want default for an adjacent-only blocked action", e.Result())
	}

	menu.BlockedMenuActions()[ActionHotbarSwap] = true
	e = bottomClick(viewer, 3, ClickLeft, ActionHotbarSwap)
	mgr.Router().HandleAdjacentClick(e)
	if e.Result() != ResultDeny {
		t.Errorf("Result() = %v, want deny once the menu blocklist contains it", e.Result())
	}
}

func TestAdjacentClickIgnoresTopContainer(t *testing.T) {
	mgr, _ := newTestManager()
	menu := mgr.NewMenu("Menu", 1)
	viewer := newFakeViewer("Steve")
	menu.Open(viewer)

	e := clickOn(viewer, 0, ClickLeft, ActionMoveToOtherInventory)
	mgr.Router().HandleAdjacentClick(e)

	if e.Result() != ResultDefault {
		t.Errorf("Result() = %v, want default; top clicks belong to the click path", e.Result())
	}
}

func TestAdjacentClickIgnoresUnmanagedView(t *testing.T) {
	mgr, _ := newTestManager()
	viewer := newFakeViewer("Steve")
	viewer.OpenContainer(&fakeContainer{size: 27, title: "chest"})

	e := bottomClick(viewer, 3, ClickLeft, ActionMoveToOtherInventory)
	mgr.Router().HandleAdjacentClick(e)

	if e.Result() != ResultDefault {
		t.Errorf("Result() = %v, want default", e.Result())
	}
}

func TestDragDeniedWhenTouchingMenu(t *testing.T) {
	mgr, _ := newTestManager()
	menu := mgr.NewMenu("Menu", 1)
	viewer := newFakeViewer("Steve")
	menu.Open(viewer)

	e := &DragEvent{Viewer: viewer, View: viewer.view, RawSlots: []int{25, 5}}
	mgr.Router().HandleDrag(e)

	if e.Result() != ResultDeny {
		t.Errorf("Result() = %v, want deny for a drag touching the menu", e.Result())
	}
}

func TestDragAllowedInOwnInventory(t *testing.T) {
	mgr, _ := newTestManager()
	menu := mgr.NewMenu("Menu", 1)
	viewer := newFakeViewer("Steve")
	menu.Open(viewer)

	e := &DragEvent{Viewer: viewer, View: viewer.view, RawSlots: []int{20, 25}}
	mgr.Router().HandleDrag(e)

	if e.Result() != ResultDefault {
		t.Errorf("Result() = %v, want default for a drag below the menu", e.Result())
	}
}

func TestDragSlotConversionExcludesRemappedSlots(t *testing.T) {
	mgr, _ := newTestManager()
	menu := mgr.NewMenu("Menu", 1)
	viewer := newFakeViewer("Steve")
	menu.Open(viewer)
	viewer.view.convert = func(raw int) int { return raw + 100 }

	e := &DragEvent{Viewer: viewer, View: viewer.view, RawSlots: []int{5}}
	mgr.Router().HandleDrag(e)

	if e.Result() != ResultDefault {
		t.Errorf("Result() = %v, want default when conversion remaps the slot", e.Result())
	}
}

func TestDragIgnoresUnmanagedView(t *testing.T) {
	mgr, _ := newTestManager()
	viewer := newFakeViewer("Steve")
	viewer.OpenContainer(&fakeContainer{size: 27, title: "chest"})

	e := &DragEvent{Viewer: viewer, View: viewer.view, RawSlots: []int{5}}
	mgr.Router().HandleDrag(e)

	if e.Result() != ResultDefault {
		t.Errorf("Result() = %v, want default", e.Result())
	}
}

func TestCloseFiresCallback(t *testing.T) {
	mgr, _ := newTestManager()
	menu := mgr.NewMenu("Menu", 1)

	var closes int
	menu.OnClose(func(e *CloseEvent) { closes++ })

	viewer := newFakeViewer("Steve")
	menu.Open(viewer)

	e := &CloseEvent{Viewer: viewer, Container: viewer.view.top}
	mgr.Router().HandleClose(e)

	if closes != 1 {
		t.Errorf("close callbacks = %d, want 1", closes)
	}
}

func TestCloseWithoutCallback(t *testing.T) {
	mgr, _ := newTestManager()
	menu := mgr.NewMenu("Menu", 1)
	viewer := newFakeViewer("Steve")
	menu.Open(viewer)

	mgr.Router().HandleClose(&CloseEvent{Viewer: viewer, Container: viewer.view.top})
}

func TestCloseIgnoresUnmanagedContainer(t *testing.T) {
	mgr, _ := newTestManager()
	menu := mgr.NewMenu("Menu", 1)

	var closes int
	menu.OnClose(func(*CloseEvent) { closes++ })

	viewer := newFakeViewer("Steve")
	viewer.OpenContainer(&fakeContainer{size: 27, title: "chest"})

	mgr.Router().HandleClose(&CloseEvent{Viewer: viewer, Container: viewer.view.top})

	if closes != 0 {
		t.Errorf("close callbacks = %d, want 0", closes)
	}
}

func TestAttachRoutesThroughDispatcher(t *testing.T) {
	mgr, _ := newTestManager()
	menu := mgr.NewMenu("Menu", 1)

	var calls int
	menu.SetButton(0, NewButton(icon("stone")).WithHandler(func(*ClickEvent) { calls++ }))

	bus := NewDispatcher()
	mgr.Attach(bus)

	viewer := newFakeViewer("Steve")
	menu.Open(viewer)

	click := clickOn(viewer, 0, ClickLeft, ActionPickupAll)
	bus.FireClick(click)
	if calls != 1 {
		t.Errorf("handler calls = %d, want 1 via the bus", calls)
	}

	adjacent := bottomClick(viewer, 3, ClickLeft, ActionMoveToOtherInventory)
	bus.FireClick(adjacent)
	if adjacent.Result() != ResultDeny {
		t.Errorf("adjacent Result() = %v, want deny via the bus", adjacent.Result())
	}

	drag := &DragEvent{Viewer: viewer, View: viewer.view, RawSlots: []int{0}}
	bus.FireDrag(drag)
	if drag.Result() != ResultDeny {
		t.Errorf("drag Result() = %v, want deny via the bus", drag.Result())
	}

	var closes int
	menu.OnClose(func(*CloseEvent) { closes++ })
	bus.FireClose(&CloseEvent{Viewer: viewer, Container: viewer.view.top})
	if closes != 1 {
		t.Errorf("close callbacks = %d, want 1 via the bus", closes)
	}
}
