package termhost

import (
	ns "github.com/go-mclib/protocol/java_protocol/net_structures"

	"github.com/NicksCraft/ParadoxLib/pkg/gui"
	"github.com/NicksCraft/ParadoxLib/pkg/item"
)

// container is an in-memory slot grid shown by the terminal host.
type container struct {
	host   *Host
	holder any
	size   int
	title  string
	items  []*item.Stack
}

func (c *container) Size() int     { return c.size }
func (c *container) Title() string { return c.title }
func (c *container) Holder() any   { return c.holder }

func (c *container) SetItem(slot int, icon *item.Stack) {
	if slot < 0 || slot >= len(c.items) {
		return
	}
	c.items[slot] = icon
	c.host.invalidate()
}

func (c *container) SetContents(icons []*item.Stack) {
	for i := range c.items {
		if i < len(icons) {
			c.items[i] = icons[i]
		} else {
			c.items[i] = nil
		}
	}
	c.host.invalidate()
}

func (c *container) item(slot int) *item.Stack {
	if slot < 0 || slot >= len(c.items) {
		return nil
	}
	return c.items[slot]
}

// view pairs an open container with the player inventory below it.
type view struct {
	top    *container
	bottom *container
}

func (v *view) Top() gui.Container    { return v.top }
func (v *view) Bottom() gui.Container { return v.bottom }

// ConvertSlot maps raw view slots: the top container occupies the low
// indices and maps to itself, everything past it is inventory-local.
func (v *view) ConvertSlot(raw int) int {
	if raw < v.top.size {
		return raw
	}
	return raw - v.top.size
}

// Viewer is the single terminal-controlled player of a Host.
type Viewer struct {
	host *Host
	uuid ns.UUID
	name string
	view *view
}

func (v *Viewer) UUID() ns.UUID { return v.uuid }
func (v *Viewer) Name() string  { return v.name }

// OpenContainer shows a container above the player inventory, replacing
// any previously open one. Containers from other hosts are ignored.
func (v *Viewer) OpenContainer(c gui.Container) {
	top, ok := c.(*container)
	if !ok || top.host != v.host {
		v.host.logf("refusing to open a container from another host")
		return
	}
	v.view = &view{top: top, bottom: v.host.inventory}
	v.host.invalidate()
}

// OpenView returns the current view, or nil when no container is open.
func (v *Viewer) OpenView() gui.View {
	if v.view == nil {
		return nil
	}
	return v.view
}

// CloseView closes the open container without firing events; input-driven
// closes go through the host so close handlers run.
func (v *Viewer) CloseView() {
	v.view = nil
	v.host.invalidate()
}

// Give places a stack into the first empty inventory slot and reports
// whether there was room.
func (v *Viewer) Give(stack *item.Stack) bool {
	for slot, existing := range v.host.inventory.items {
		if existing.IsAir() {
			v.host.inventory.SetItem(slot, stack)
			return true
		}
	}
	return false
}
