// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"golang.org/x/term"

	"github.com/xmlcmp/xmlcmp/internal/differ"
	"github.com/xmlcmp/xmlcmp/internal/log"
	"github.com/xmlcmp/xmlcmp/internal/xmldoc"
)

type viewState int

const (
	stateBrowse viewState = iota
	statePicking
)

type statusKind int

const (
	statusNone statusKind = iota
	statusInfo
	statusWarn
	statusError
)

// slot is one of the two file-open targets.
type slot struct {
	path string
	size int64
}

// Model is the Bubble Tea model for the comparison view. All state is owned
// by the event loop; parsing and diffing run synchronously inside Update.
type Model struct {
	state    viewState
	keys     keyMap
	help     help.Model
	picker   filepicker.Model
	pickSlot int
	viewport viewport.Model

	slots    [2]slot
	pairs    []differ.Pair
	compared bool

	status     string
	statusKind statusKind

	width  int
	height int
	ready  bool
}

// New returns a model with zero, one, or two files preselected.
func New(leftPath, rightPath string) Model {
	m := Model{
		state: stateBrowse,
		keys:  newKeyMap(),
		help:  help.New(),
	}
	if leftPath != "" {
		m.setSlot(0, leftPath)
	}
	if rightPath != "" {
		m.setSlot(1, rightPath)
	}
	return m
}

// Run launches the fullscreen comparison view. It refuses to start when
// stdout is not a terminal.
func Run(leftPath, rightPath string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return fmt.Errorf("interactive comparison requires a terminal")
	}

	p := tea.NewProgram(New(leftPath, rightPath), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		vpHeight := m.height - m.chromeHeight()
		if vpHeight < 1 {
			vpHeight = 1
		}
		if !m.ready {
			m.viewport = viewport.New(m.width, vpHeight)
			m.ready = true
		} else {
			m.viewport.Width = m.width
			m.viewport.Height = vpHeight
		}
		m.refreshContent()
		return m, nil

	case tea.KeyMsg:
		if m.state == statePicking {
			return m.updatePicking(msg)
		}
		return m.updateBrowse(msg)
	}

	if m.state == statePicking {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// updateBrowse handles keys in the main view.
func (m Model) updateBrowse(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Any keypress dismisses the previous status message.
	m.status = ""
	m.statusKind = statusNone

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.OpenLeft):
		return m.openPicker(0)

	case key.Matches(msg, m.keys.OpenRight):
		return m.openPicker(1)

	case key.Matches(msg, m.keys.Compare):
		m.runCompare()
		return m, nil
	}

	var cmd tea.Cmd
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

// updatePicking handles keys while a file picker is open.
func (m Model) updatePicking(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		m.state = stateBrowse
		return m, nil
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)

	if ok, path := m.picker.DidSelectFile(msg); ok {
		m.setSlot(m.pickSlot, path)
		m.state = stateBrowse
		m.setStatus(statusInfo, fmt.Sprintf("selected %s", path))
		return m, cmd
	}

	return m, cmd
}

func (m Model) View() string {
	if !m.ready {
		return "loading..."
	}

	title := lipgloss.NewStyle().Bold(true).Render("xmlcmp - XML section comparison")

	if m.state == statePicking {
		prompt := fmt.Sprintf("Select XML %d:", m.pickSlot+1)
		return title + "\n\n" + prompt + "\n" + m.picker.View() + "\n" + m.help.View(m.keys)
	}

	body := m.viewport.View()
	if !m.compared {
		body = "\nPress 1 and 2 to choose two XML documents, then c to compare.\n"
	}

	return title + "\n" + m.slotLine() + "\n" + m.statusLine() + "\n" + body + "\n" + m.help.View(m.keys)
}

// openPicker switches to the file picker for the given slot, starting from
// the directory of the slot's current selection when there is one.
func (m Model) openPicker(n int) (tea.Model, tea.Cmd) {
	fp := filepicker.New()
	fp.Height = m.height - 8
	if fp.Height < 5 {
		fp.Height = 5
	}
	fp.CurrentDirectory, _ = os.Getwd()
	if m.slots[n].path != "" {
		fp.CurrentDirectory = filepath.Dir(m.slots[n].path)
	}

	m.picker = fp
	m.pickSlot = n
	m.state = statePicking
	return m, fp.Init()
}

// runCompare destroys the previous result and rebuilds it from scratch:
// reload both files, re-pair, re-diff, re-render. A parse failure leaves the
// previous result intact and only reports the error.
func (m *Model) runCompare() {
	if m.slots[0].path == "" || m.slots[1].path == "" {
		m.setStatus(statusWarn, "select both XML files before comparing")
		return
	}

	left, err := xmldoc.Load(m.slots[0].path)
	if err != nil {
		log.WithError(err).Error("compare aborted")
		m.setStatus(statusError, err.Error())
		return
	}

	right, err := xmldoc.Load(m.slots[1].path)
	if err != nil {
		log.WithError(err).Error("compare aborted")
		m.setStatus(statusError, err.Error())
		return
	}

	m.pairs = differ.PairDocuments(left, right)
	m.compared = true
	m.viewport.GotoTop()
	m.refreshContent()
	m.setStatus(statusInfo, fmt.Sprintf("compared %d section pairs", len(m.pairs)))
}

func (m *Model) refreshContent() {
	if !m.compared || !m.ready {
		return
	}
	m.viewport.SetContent(newRenderer(m.width).pairs(m.pairs))
}

func (m *Model) setSlot(n int, path string) {
	m.slots[n] = slot{path: path}
	if fi, err := os.Stat(path); err == nil {
		m.slots[n].size = fi.Size()
	}
}

func (m *Model) setStatus(kind statusKind, text string) {
	m.statusKind = kind
	m.status = text
}

// slotLine shows both selected paths with humanized file sizes.
func (m Model) slotLine() string {
	fmtSlot := func(label string, s slot) string {
		if s.path == "" {
			return fmt.Sprintf("%s: (not selected)", label)
		}
		return fmt.Sprintf("%s: %s (%s)", label, s.path, humanize.Bytes(uint64(s.size)))
	}
	return fmtSlot("XML 1", m.slots[0]) + "  |  " + fmtSlot("XML 2", m.slots[1])
}

func (m Model) statusLine() string {
	switch m.statusKind {
	case statusWarn:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#d0a000")).Bold(true).Render("warning: " + m.status)
	case statusError:
		return lipgloss.NewStyle().Foreground(lipgloss.Color("#d04040")).Bold(true).Render("error: " + m.status)
	case statusInfo:
		return lipgloss.NewStyle().Faint(true).Render(m.status)
	default:
		return ""
	}
}

// chromeHeight is the number of screen rows used by the fixed UI around the
// results viewport.
func (m Model) chromeHeight() int {
	// title + slots + status + help
	return 4
}
