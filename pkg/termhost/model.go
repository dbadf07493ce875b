package termhost

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/NicksCraft/ParadoxLib/pkg/gui"
	"github.com/NicksCraft/ParadoxLib/pkg/item"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("39"))

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	cellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("252"))

	emptyCellStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	cursorCellStyle = lipgloss.NewStyle().
			Reverse(true)

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

// redrawMsg wakes the UI after host state changes.
type redrawMsg struct{}

// model renders the host's open container, the player inventory and a log
// pane, and turns key presses into synthesized click events.
type model struct {
	host     *Host
	cursor   int
	focusTop bool
	seenTop  *container

	vp     viewport.Model
	ready  bool
	width  int
	height int
}

func newModel(h *Host) *model {
	m := &model{host: h}
	m.syncView()
	return m
}

func (m *model) Init() tea.Cmd {
	return nil
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	m.syncView()

	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "esc":
			if m.host.viewer.view == nil {
				return m, tea.Quit
			}
			m.host.closeOpenView()
			m.syncView()
			m.resizeLog()
			return m, nil

		case "tab":
			if m.host.viewer.view != nil {
				m.focusTop = !m.focusTop
				m.clampCursor()
			}
			return m, nil

		case "up", "k":
			m.moveCursor(-gui.SlotsPerRow)
			return m, nil

		case "down", "j":
			m.moveCursor(gui.SlotsPerRow)
			return m, nil

		case "left", "h":
			m.moveCursor(-1)
			return m, nil

		case "right", "l":
			m.moveCursor(1)
			return m, nil

		case "enter", " ":
			m.host.click(m.focusTop, m.cursor, gui.ClickLeft, gui.ActionPickupAll)
			m.syncView()
			m.syncLog()
			return m, nil

		case "r":
			m.host.click(m.focusTop, m.cursor, gui.ClickRight, gui.ActionPickupHalf)
			m.syncView()
			m.syncLog()
			return m, nil

		case "s":
			m.host.click(m.focusTop, m.cursor, gui.ClickShiftLeft, gui.ActionMoveToOtherInventory)
			m.syncView()
			m.syncLog()
			return m, nil
		}

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeLog()
		return m, nil

	case redrawMsg:
		m.resizeLog()
		m.syncLog()
		return m, nil
	}

	if m.ready {
		var cmd tea.Cmd
		m.vp, cmd = m.vp.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) View() string {
	if !m.ready {
		return "Initializing..."
	}

	v := m.host.viewer
	sections := []string{
		titleStyle.Render("ParadoxLib terminal host - " + v.name),
		"",
	}

	if v.view != nil {
		top := v.view.top
		sections = append(sections,
			headerStyle.Render(item.StripColorCodes(top.title)),
			m.renderGrid(top),
			"",
		)
	}

	sections = append(sections,
		headerStyle.Render("Inventory"),
		m.renderGrid(m.host.inventory),
		"",
		m.vp.View(),
		helpStyle.Render("arrows/hjkl: move • enter: click • r: right click • s: shift click • tab: switch • esc: close • q: quit"),
	)
	return strings.Join(sections, "\n")
}

// syncView tracks container swaps: when the open top container changes the
// cursor and focus reset to the new grid.
func (m *model) syncView() {
	var top *container
	if v := m.host.viewer.view; v != nil {
		top = v.top
	}
	if top != m.seenTop {
		m.seenTop = top
		m.focusTop = top != nil
		m.cursor = 0
	}
	m.clampCursor()
}

func (m *model) focusedContainer() *container {
	v := m.host.viewer
	if v.view != nil && m.focusTop {
		return v.view.top
	}
	return m.host.inventory
}

func (m *model) moveCursor(delta int) {
	next := m.cursor + delta
	if next < 0 || next >= m.focusedContainer().size {
		return
	}
	m.cursor = next
}

func (m *model) clampCursor() {
	if size := m.focusedContainer().size; m.cursor >= size {
		m.cursor = size - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// chromeLines is the number of non-log lines View produces; the log pane
// gets the rest of the window.
func (m *model) chromeLines() int {
	lines := 9
	if v := m.host.viewer.view; v != nil {
		lines += 2 + (v.top.size+gui.SlotsPerRow-1)/gui.SlotsPerRow
	}
	return lines
}

func (m *model) resizeLog() {
	if m.width == 0 {
		return
	}
	logHeight := m.height - m.chromeLines()
	if logHeight < 3 {
		logHeight = 3
	}
	if !m.ready {
		m.vp = viewport.New(m.width, logHeight)
		m.vp.SetContent(m.host.renderLogs())
		m.vp.GotoBottom()
		m.ready = true
		return
	}
	m.vp.Width = m.width
	m.vp.Height = logHeight
}

func (m *model) syncLog() {
	if !m.ready {
		return
	}
	// Do not scroll if not at bottom, to prevent flickering.
	wasAtBottom := m.vp.AtBottom()
	m.vp.SetContent(m.host.renderLogs())
	if wasAtBottom {
		m.vp.GotoBottom()
	}
}

func (m *model) renderGrid(c *container) string {
	focused := c == m.focusedContainer()
	rows := make([]string, 0, (c.size+gui.SlotsPerRow-1)/gui.SlotsPerRow)
	for start := 0; start < c.size; start += gui.SlotsPerRow {
		cells := make([]string, 0, gui.SlotsPerRow)
		for slot := start; slot < start+gui.SlotsPerRow && slot < c.size; slot++ {
			cells = append(cells, m.renderCell(c, slot, focused))
		}
		rows = append(rows, strings.Join(cells, " "))
	}
	return strings.Join(rows, "\n")
}

func (m *model) renderCell(c *container, slot int, focused bool) string {
	stack := c.item(slot)
	style := cellStyle
	if stack.IsAir() {
		style = emptyCellStyle
	}
	if focused && slot == m.cursor {
		style = cursorCellStyle
	}
	return style.Render(cellLabel(stack))
}

const cellWidth = 7

func cellLabel(s *item.Stack) string {
	if s.IsAir() {
		return strings.Repeat(".", cellWidth)
	}
	name := strings.TrimPrefix(s.Material, "minecraft:")
	if s.Name != "" {
		name = item.StripColorCodes(s.Name)
	}
	if s.Count > 1 {
		name = fmt.Sprintf("%s*%d", name, s.Count)
	}
	runes := []rune(name)
	if len(runes) > cellWidth {
		runes = runes[:cellWidth]
	}
	return fmt.Sprintf("%-*s", cellWidth, string(runes))
}
