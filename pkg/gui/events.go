package gui

// ClickKind identifies the input gesture behind a container click.
type ClickKind int

const (
	ClickLeft ClickKind = iota
	ClickShiftLeft
	ClickRight
	ClickShiftRight
	ClickWindowBorderLeft
	ClickWindowBorderRight
	ClickMiddle
	ClickNumberKey
	ClickDoubleClick
	ClickDrop
	ClickControlDrop
	ClickCreative
	ClickSwapOffhand
	ClickUnknown
)

var clickKindNames = [...]string{
	"left", "shift-left", "right", "shift-right",
	"window-border-left", "window-border-right", "middle", "number-key",
	"double-click", "drop", "control-drop", "creative", "swap-offhand",
	"unknown",
}

func (k ClickKind) String() string {
	if k < 0 || int(k) >= len(clickKindNames) {
		return "invalid"
	}
	return clickKindNames[k]
}

// ActionKind identifies what a click would do to the clicked slot and the
// cursor if the host let it proceed.
type ActionKind int

const (
	ActionNothing ActionKind = iota
	ActionPickupAll
	ActionPickupSome
	ActionPickupHalf
	ActionPickupOne
	ActionPlaceAll
	ActionPlaceSome
	ActionPlaceOne
	ActionSwapWithCursor
	ActionDropAllCursor
	ActionDropOneCursor
	ActionDropAllSlot
	ActionDropOneSlot
	ActionMoveToOtherInventory
	ActionHotbarMoveAndReadd
	ActionHotbarSwap
	ActionCloneStack
	ActionCollectToCursor
	ActionUnknown
)

var actionKindNames = [...]string{
	"nothing", "pickup-all", "pickup-some", "pickup-half", "pickup-one",
	"place-all", "place-some", "place-one", "swap-with-cursor",
	"drop-all-cursor", "drop-one-cursor", "drop-all-slot", "drop-one-slot",
	"move-to-other-inventory", "hotbar-move-and-readd", "hotbar-swap",
	"clone-stack", "collect-to-cursor", "unknown",
}

func (a ActionKind) String() string {
	if a < 0 || int(a) >= len(actionKindNames) {
		return "invalid"
	}
	return actionKindNames[a]
}

// Result is the verdict handlers leave on a cancellable event. The host
// applies the final result after every handler has run.
type Result int

const (
	ResultDefault Result = iota
	ResultAllow
	ResultDeny
)

func (r Result) String() string {
	switch r {
	case ResultAllow:
		return "allow"
	case ResultDeny:
		return "deny"
	}
	return "default"
}

// Defaults applied to every new menu. Each menu receives its own copy, so
// mutating one menu's sets never leaks into another.
var (
	defaultPermittedClickKinds = []ClickKind{ClickLeft, ClickRight}

	defaultBlockedMenuActions = []ActionKind{
		ActionMoveToOtherInventory,
		ActionCollectToCursor,
	}

	defaultBlockedAdjacentActions = []ActionKind{
		ActionMoveToOtherInventory,
		ActionCollectToCursor,
	}
)

func clickSet(kinds []ClickKind) map[ClickKind]bool {
	set := make(map[ClickKind]bool, len(kinds))
	for _, k := range kinds {
		set[k] = true
	}
	return set
}

func actionSet(actions []ActionKind) map[ActionKind]bool {
	set := make(map[ActionKind]bool, len(actions))
	for _, a := range actions {
		set[a] = true
	}
	return set
}

// ClickEvent describes a single click inside an open view. Hosts construct
// one per click and apply the Result afterwards.
type ClickEvent struct {
	Viewer    Viewer
	View      View
	Container Container
	Slot      int
	RawSlot   int
	Kind      ClickKind
	Action    ActionKind

	result Result
}

// Deny marks the event so the host suppresses the default item movement.
func (e *ClickEvent) Deny() { e.result = ResultDeny }

// Allow marks the event so the host performs the default item movement
// even if an earlier handler denied it.
func (e *ClickEvent) Allow() { e.result = ResultAllow }

// Result returns the verdict left by handlers so far.
func (e *ClickEvent) Result() Result { return e.result }

// DragEvent describes an item spread across one or more raw view slots.
type DragEvent struct {
	Viewer   Viewer
	View     View
	RawSlots []int

	result Result
}

func (e *DragEvent) Deny()          { e.result = ResultDeny }
func (e *DragEvent) Allow()         { e.result = ResultAllow }
func (e *DragEvent) Result() Result { return e.result }

// CloseEvent fires when a viewer closes a container. It is not cancellable.
type CloseEvent struct {
	Viewer    Viewer
	Container Container
}
