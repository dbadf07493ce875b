package gui

import (
	ns "github.com/go-mclib/protocol/java_protocol/net_structures"

	"github.com/NicksCraft/ParadoxLib/pkg/item"
)

// Container is one rendered window of slots. Implementations are provided
// by the host; the holder carries the identity of whatever opened it, and a
// menu recognizes its own containers by finding itself there.
type Container interface {
	Size() int
	Title() string
	Holder() any
	SetItem(slot int, icon *item.Stack)
	SetContents(icons []*item.Stack)
}

// View is what a viewer sees while a container is open: the container on
// top and the viewer's own inventory below it.
type View interface {
	Top() Container
	Bottom() Container

	// ConvertSlot maps a raw view slot to a container-local slot. A raw
	// slot inside the top container maps to itself.
	ConvertSlot(raw int) int
}

// Viewer is a player or player-like entity that containers are shown to.
type Viewer interface {
	UUID() ns.UUID
	Name() string

	// OpenContainer replaces whatever the viewer currently has open.
	OpenContainer(Container)

	// OpenView returns the currently open view, or nil if none.
	OpenView() View
}

// Host creates containers for menus to render into. Menu code never talks
// to a server or a terminal directly; it goes through this.
type Host interface {
	CreateContainer(holder any, size int, title string) Container
}
