// Package termhost renders menus in the terminal. It implements the gui
// host interfaces over an interactive bubbletea program with one player,
// so menu code built against it behaves the same as against a game server.
package termhost

import (
	"crypto/rand"
	"fmt"
	"io"
	"strings"
	"sync"

	tea "github.com/charmbracelet/bubbletea"
	ns "github.com/go-mclib/protocol/java_protocol/net_structures"

	"github.com/NicksCraft/ParadoxLib/pkg/gui"
	"github.com/NicksCraft/ParadoxLib/pkg/item"
)

const (
	// inventorySize is the player grid below an open container: three
	// storage rows plus the hotbar.
	inventorySize = 36

	maxLogLines = 500
)

// Host is a terminal-backed container host for a single player.
type Host struct {
	// Verbose logs every synthesized input event, not just handled ones.
	Verbose bool

	dispatcher *gui.Dispatcher
	viewer     *Viewer
	inventory  *container

	mu      sync.Mutex
	program *tea.Program
	logs    []string
}

// New creates a host with an empty player inventory for the named player.
func New(playerName string) *Host {
	h := &Host{dispatcher: gui.NewDispatcher()}

	var uuid ns.UUID
	rand.Read(uuid[:])

	h.viewer = &Viewer{host: h, uuid: uuid, name: playerName}
	h.inventory = &container{
		host:  h,
		size:  inventorySize,
		title: "Inventory",
		items: make([]*item.Stack, inventorySize),
	}
	return h
}

// CreateContainer implements gui.Host.
func (h *Host) CreateContainer(holder any, size int, title string) gui.Container {
	return &container{
		host:   h,
		holder: holder,
		size:   size,
		title:  title,
		items:  make([]*item.Stack, size),
	}
}

// Dispatcher returns the event bus menu routers should attach to.
func (h *Host) Dispatcher() *gui.Dispatcher { return h.dispatcher }

// Viewer returns the host's single player.
func (h *Host) Viewer() *Viewer { return h.viewer }

// LogWriter returns a writer whose lines appear in the host's log pane.
// Point a log.Logger at it.
func (h *Host) LogWriter() io.Writer {
	return &logWriter{host: h}
}

// Run shows the terminal UI and blocks until the player quits.
func (h *Host) Run() error {
	p := tea.NewProgram(newModel(h), tea.WithAltScreen())
	h.setProgram(p)
	_, err := p.Run()
	h.setProgram(nil)
	return err
}

func (h *Host) setProgram(p *tea.Program) {
	h.mu.Lock()
	h.program = p
	h.mu.Unlock()
}

// invalidate wakes the UI after container or view changes. The send runs
// off-goroutine because state changes often happen mid-Update.
func (h *Host) invalidate() {
	h.mu.Lock()
	p := h.program
	h.mu.Unlock()
	if p != nil {
		go p.Send(redrawMsg{})
	}
}

func (h *Host) appendLog(line string) {
	h.mu.Lock()
	h.logs = append(h.logs, line)
	if len(h.logs) > maxLogLines {
		h.logs = h.logs[len(h.logs)-maxLogLines:]
	}
	h.mu.Unlock()
}

func (h *Host) renderLogs() string {
	h.mu.Lock()
	defer h.mu.Unlock()
	return strings.Join(h.logs, "\n")
}

func (h *Host) logf(format string, args ...any) {
	h.appendLog(fmt.Sprintf(format, args...))
	h.invalidate()
}

// closeOpenView fires the close event for the open container, then closes
// it.
func (h *Host) closeOpenView() {
	v := h.viewer
	if v.view == nil {
		return
	}
	e := &gui.CloseEvent{Viewer: v, Container: v.view.top}
	h.dispatcher.FireClose(e)
	v.CloseView()
}

// click synthesizes a click on the given container slot and runs it
// through the dispatcher. It reports the final verdict.
func (h *Host) click(onTop bool, slot int, kind gui.ClickKind, action gui.ActionKind) gui.Result {
	v := h.viewer
	if v.view == nil {
		return gui.ResultDefault
	}

	clicked := gui.Container(v.view.bottom)
	raw := v.view.top.size + slot
	if onTop {
		clicked = v.view.top
		raw = slot
	}

	e := &gui.ClickEvent{
		Viewer:    v,
		View:      v.view,
		Container: clicked,
		Slot:      slot,
		RawSlot:   raw,
		Kind:      kind,
		Action:    action,
	}
	h.dispatcher.FireClick(e)

	if h.Verbose {
		where := "inventory"
		if onTop {
			where = "menu"
		}
		h.logf("%s click on %s slot %d: %s", e.Kind, where, slot, e.Result())
	}
	return e.Result()
}

// logWriter feeds log lines into the host's log pane.
type logWriter struct {
	host *Host
}

func (w *logWriter) Write(p []byte) (int, error) {
	msg := strings.TrimSuffix(string(p), "\n")
	if msg != "" {
		w.host.appendLog(msg)
		w.host.invalidate()
	}
	return len(p), nil
}
