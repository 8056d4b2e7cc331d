package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/bdurukan/texxteditor/audio"
)

// waitForStop blocks until the user ends the recording: an interactive
// terminal gets the live recording view, anything else a plain prompt.
// Returns false when the user aborted instead of stopping.
func waitForStop(rec *audio.Recorder) bool {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprintln(os.Stderr, "recording... press enter to stop")
		bufio.NewReader(os.Stdin).ReadString('\n')
		return true
	}

	final, err := tea.NewProgram(recordModel{rec: rec}).Run()
	if err != nil {
		return true
	}
	m, ok := final.(recordModel)
	return !ok || !m.aborted
}

var (
	recDotStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196")).Bold(true)
	recTimeStyle  = lipgloss.NewStyle().Bold(true)
	recHintStyle  = lipgloss.NewStyle().Faint(true)
	recLevelStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
)

type recordTickMsg time.Time

type recordModel struct {
	rec      *audio.Recorder
	frame    int
	duration float64
	level    float64
	aborted  bool
}

func recordTick() tea.Cmd {
	return tea.Tick(100*time.Millisecond, func(t time.Time) tea.Msg {
		return recordTickMsg(t)
	})
}

func (m recordModel) Init() tea.Cmd {
	return recordTick()
}

func (m recordModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "enter", " ", "q":
			return m, tea.Quit
		case "ctrl+c", "esc":
			m.aborted = true
			return m, tea.Quit
		}
	case recordTickMsg:
		m.frame++
		m.duration = m.rec.Duration()
		m.level = m.rec.Level()
		return m, recordTick()
	}
	return m, nil
}

func (m recordModel) View() string {
	dot := " "
	if m.frame%10 < 5 {
		dot = recDotStyle.Render("●")
	}

	const meterWidth = 20
	filled := int(m.level * meterWidth)
	if filled > meterWidth {
		filled = meterWidth
	}
	meter := recLevelStyle.Render(strings.Repeat("█", filled)) +
		strings.Repeat("░", meterWidth-filled)

	return fmt.Sprintf("\n %s %s  %s\n\n %s\n",
		dot,
		recTimeStyle.Render(fmt.Sprintf("REC %5.1fs", m.duration)),
		meter,
		recHintStyle.Render("enter to stop & transcribe, ctrl+c to abort"))
}
