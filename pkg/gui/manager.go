package gui

import (
	"log"
	"os"
)

// Manager creates menus for one plugin and wires them to a host. Menus
// copy the manager's defaults at creation time, so changing a manager
// setting affects future menus only.
type Manager struct {
	plugin string
	host   Host

	// Logger receives library diagnostics. Replace it to redirect.
	Logger *log.Logger

	toolbarBuilder           ToolbarBuilder
	automaticPagination      bool
	blockDefaultInteractions bool

	router *Router
}

// NewManager creates a manager for the named plugin on the given host.
func NewManager(plugin string, host Host) *Manager {
	if host == nil {
		panic("gui: nil host")
	}
	return &Manager{
		plugin:                   plugin,
		host:                     host,
		Logger:                   log.New(os.Stdout, "", log.LstdFlags),
		toolbarBuilder:           NewDefaultToolbarBuilder(),
		automaticPagination:      true,
		blockDefaultInteractions: true,
	}
}

// Plugin returns the plugin name the manager was created for.
func (m *Manager) Plugin() string { return m.plugin }

// Host returns the container host menus render into.
func (m *Manager) Host() Host { return m.host }

// ToolbarBuilder returns the builder handed to new menus.
func (m *Manager) ToolbarBuilder() ToolbarBuilder { return m.toolbarBuilder }

// SetToolbarBuilder replaces the builder handed to new menus.
func (m *Manager) SetToolbarBuilder(b ToolbarBuilder) { m.toolbarBuilder = b }

// SetAutomaticPaginationEnabled sets the pagination default for new menus.
func (m *Manager) SetAutomaticPaginationEnabled(enabled bool) {
	m.automaticPagination = enabled
}

// SetBlockDefaultInteractions sets the interaction-blocking default for
// new menus.
func (m *Manager) SetBlockDefaultInteractions(block bool) {
	m.blockDefaultInteractions = block
}

// NewMenu creates an untagged menu accepting the default click kinds.
func (m *Manager) NewMenu(title string, rowsPerPage int) *Menu {
	return newMenu(m, title, rowsPerPage, "", nil)
}

// NewTaggedMenu creates a menu with an id tag. When permitted click kinds
// are given they replace the defaults.
func (m *Manager) NewTaggedMenu(title string, rowsPerPage int, id string, permitted ...ClickKind) *Menu {
	return newMenu(m, title, rowsPerPage, id, permitted)
}

// Router returns the event router for this manager's menus.
func (m *Manager) Router() *Router {
	if m.router == nil {
		m.router = &Router{manager: m}
	}
	return m.router
}

// Attach registers the manager's router on an event bus.
func (m *Manager) Attach(bus EventBus) {
	m.Router().Attach(bus)
}
