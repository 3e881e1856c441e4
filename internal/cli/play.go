package cli

import (
	"fmt"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/seamusw/cubesim"
	"github.com/seamusw/cubesim/internal/session"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Interactive cube session",
	Long: `Start an interactive terminal session.

Type moves in standard notation and press Enter to apply them.

Keys:
  Enter   - Apply the typed move sequence
  Ctrl+U  - Undo the last move
  Ctrl+S  - Apply a fresh random scramble
  Ctrl+G  - Grow the cube (N+1, resets to solved)
  Ctrl+D  - Shrink the cube (N-1, resets to solved)
  Esc     - Quit`,
	RunE: runPlay,
}

func init() {
	rootCmd.AddCommand(playCmd)
}

// Styles
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("205"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	solvedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("82"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))
)

type tickMsg time.Time

type playModel struct {
	tracker *cubesim.Tracker
	session *session.Session
	rng     *rand.Rand
	input   textinput.Model

	lastApplied string
	parseErr    error
	solvedFlash bool
}

func newPlayModel(size int) playModel {
	input := textinput.New()
	input.Placeholder = "R U R' U' ..."
	input.Focus()
	input.CharLimit = 128
	input.Width = 40

	return playModel{
		tracker: cubesim.NewTracker(size),
		session: session.New(),
		rng:     rand.New(rand.NewSource(time.Now().UnixNano())),
		input:   input,
	}
}

func (m playModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tick())
}

func tick() tea.Cmd {
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tickMsg:
		return m, tick()

	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyEsc, tea.KeyCtrlC:
			return m, tea.Quit

		case tea.KeyEnter:
			m.applyInput()
			return m, nil

		case tea.KeyCtrlU:
			if m.tracker.Undo() {
				m.lastApplied = "(undo)"
				m.parseErr = nil
			}
			return m, nil

		case tea.KeyCtrlS:
			movements := cubesim.NewScramble(20, m.rng)
			m.tracker.ApplyAll(movements)
			for _, mv := range movements {
				m.session.Record(mv)
			}
			m.lastApplied = cubesim.FormatMovements(movements)
			m.parseErr = nil
			return m, nil

		case tea.KeyCtrlG:
			m.tracker.Grow()
			m.lastApplied = fmt.Sprintf("(resized to %d)", m.tracker.Cube().Size())
			m.parseErr = nil
			return m, nil

		case tea.KeyCtrlD:
			m.tracker.Shrink()
			m.lastApplied = fmt.Sprintf("(resized to %d)", m.tracker.Cube().Size())
			m.parseErr = nil
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *playModel) applyInput() {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return
	}
	movements, err := cubesim.ParseScramble(text)
	if err != nil {
		m.parseErr = err
		return
	}
	m.tracker.ApplyAll(movements)
	for _, mv := range movements {
		m.session.Record(mv)
	}
	m.lastApplied = cubesim.FormatMovements(movements)
	m.parseErr = nil
	m.input.SetValue("")
}

func (m playModel) View() string {
	var b strings.Builder

	cube := m.tracker.Cube()
	b.WriteString(titleStyle.Render(fmt.Sprintf("cubesim — %d×%d×%d", cube.Size(), cube.Size(), cube.Size())))
	b.WriteString("\n\n")
	b.WriteString(renderNet(cube.ToFaceletModel(), cube.Size(), !plain))
	b.WriteString("\n")

	summary := m.session.Summarize()
	b.WriteString(statusStyle.Render(fmt.Sprintf(
		"session %s  moves %d  elapsed %s",
		summary.ID[:8], m.tracker.MoveCount(), summary.Duration.Round(time.Second),
	)))
	b.WriteString("\n")

	if m.tracker.IsSolved() {
		b.WriteString(solvedStyle.Render("SOLVED"))
		b.WriteString("\n")
	}
	if m.lastApplied != "" {
		b.WriteString(statusStyle.Render("last: " + m.lastApplied))
		b.WriteString("\n")
	}
	if m.parseErr != nil {
		b.WriteString(errorStyle.Render(m.parseErr.Error()))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.input.View())
	b.WriteString("\n\n")
	b.WriteString(helpStyle.Render("enter apply · ctrl+u undo · ctrl+s scramble · ctrl+g grow · ctrl+d shrink · esc quit"))
	b.WriteString("\n")
	return b.String()
}

func runPlay(cmd *cobra.Command, args []string) error {
	p := tea.NewProgram(newPlayModel(cubeSize), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("play error: %w", err)
	}
	return nil
}
