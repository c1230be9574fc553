package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"taskpad/internal/config"
	"taskpad/internal/controller"
)

type screen int

const (
	screenWelcome screen = iota
	screenTasks
)

type inputMode int

const (
	inputNone inputMode = iota
	inputAdd
	inputEdit
)

type frameMsg time.Time

// Model is the Bubble Tea model for the whole app. The controller owns
// all task state; the model only holds view concerns.
type Model struct {
	cfg    *config.Config
	logger *log.Logger
	ctrl   *controller.Controller

	screen    screen
	helloOnly bool

	cursor int
	mode   inputMode
	input  textinput.Model
	keys   keyMap
	help   help.Model

	status  string
	ticking bool
	width   int
	height  int
}

func newModel(cfg *config.Config, logger *log.Logger, ctrl *controller.Controller, startupStatus string, helloOnly bool) *Model {
	ti := textinput.New()
	ti.Placeholder = "What needs doing?"
	ti.CharLimit = 256
	ti.Width = 40

	return &Model{
		cfg:       cfg,
		logger:    logger,
		ctrl:      ctrl,
		screen:    screenWelcome,
		helloOnly: helloOnly,
		input:     ti,
		keys:      defaultKeyMap(),
		help:      help.New(),
		status:    startupStatus,
	}
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil

	case frameMsg:
		return m.updateFrame()

	case tea.KeyMsg:
		if m.screen == screenWelcome {
			return m.updateWelcome(msg)
		}
		if m.mode != inputNone {
			return m.updateInput(msg)
		}
		return m.updateTasks(msg)
	}

	return m, nil
}

// updateFrame advances all fades by one frame. Ticking stops once no
// fade is active and restarts on the next add or delete.
func (m *Model) updateFrame() (tea.Model, tea.Cmd) {
	// The persist handle is dropped here; deletion writes are
	// fire-and-forget like every other persist.
	_, active := m.ctrl.Advance(frameInterval)
	m.clampCursor()
	if active {
		return m, frameCmd()
	}
	m.ticking = false
	return m, nil
}

func (m *Model) updateWelcome(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		return m, tea.Quit
	}
	if m.helloOnly {
		return m, tea.Quit
	}
	m.screen = screenTasks
	return m, nil
}

// updateInput handles keys while the add or edit field is focused.
func (m *Model) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		return m.commitInput()
	case "esc", "ctrl+c":
		// Leaving the field is a blur: edits are already applied,
		// only the pointer is cleared.
		if m.mode == inputEdit {
			m.ctrl.EndEdit()
		}
		m.mode = inputNone
		m.input.Blur()
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	// Edited text is written through on every change; the edit
	// pointer stays set until blur.
	if m.mode == inputEdit {
		if id := m.ctrl.Editing(); id != "" {
			m.ctrl.SetText(id, m.input.Value())
		}
	}
	return m, cmd
}

func (m *Model) commitInput() (tea.Model, tea.Cmd) {
	switch m.mode {
	case inputAdd:
		id, _ := m.ctrl.Add(m.input.Value())
		if id == "" {
			m.status = "Nothing to add"
		} else {
			m.status = ""
			m.cursor = len(m.ctrl.Tasks()) - 1
		}
	case inputEdit:
		m.ctrl.EndEdit()
	}
	m.mode = inputNone
	m.input.Blur()
	m.input.Reset()
	return m, m.ensureTicking()
}

func (m *Model) updateTasks(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Up):
		if m.cursor > 0 {
			m.cursor--
		}

	case key.Matches(msg, m.keys.Down):
		if m.cursor < len(m.ctrl.Tasks())-1 {
			m.cursor++
		}

	case key.Matches(msg, m.keys.Add):
		m.mode = inputAdd
		m.input.Reset()
		m.input.Placeholder = "What needs doing?"
		return m, m.input.Focus()

	case key.Matches(msg, m.keys.Toggle):
		if id := m.selectedID(); id != "" {
			m.ctrl.Toggle(id)
		}

	case key.Matches(msg, m.keys.Edit):
		if id := m.selectedID(); id != "" {
			if m.ctrl.BeginEdit(id) {
				m.mode = inputEdit
				m.input.SetValue(m.ctrl.Tasks().Get(id).Text)
				m.input.CursorEnd()
				return m, m.input.Focus()
			}
		}

	case key.Matches(msg, m.keys.Delete):
		if id := m.selectedID(); id != "" {
			m.ctrl.Delete(id)
			return m, m.ensureTicking()
		}

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}

	return m, nil
}

// selectedID returns the id under the cursor, or "".
func (m *Model) selectedID() string {
	tasks := m.ctrl.Tasks()
	if m.cursor < 0 || m.cursor >= len(tasks) {
		return ""
	}
	return tasks[m.cursor].ID
}

func (m *Model) clampCursor() {
	if n := len(m.ctrl.Tasks()); m.cursor >= n {
		m.cursor = n - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// ensureTicking schedules the next frame unless one is already due.
func (m *Model) ensureTicking() tea.Cmd {
	if m.ticking || !m.ctrl.Animating() {
		return nil
	}
	m.ticking = true
	return frameCmd()
}

func frameCmd() tea.Cmd {
	return tea.Tick(frameInterval, func(t time.Time) tea.Msg {
		return frameMsg(t)
	})
}
