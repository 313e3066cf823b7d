// Package display provides the interactive terminal session for the
// advisor: hole cards in, simulated win probability and a stay-or-fold
// recommendation out, one betting phase at a time.
package display

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/Peter-Fernandes-1/Poker-Bot/internal/bot"
	"github.com/Peter-Fernandes-1/Poker-Bot/internal/deck"
	"github.com/Peter-Fernandes-1/Poker-Bot/internal/policy"
)

// step tracks what kind of input the session expects next.
type step int

const (
	stepHole       step = iota // waiting for two hole cards
	stepBoard                  // waiting for the next community cards
	stepSimulating             // simulation running, input ignored
	stepContinue               // waiting for enter to proceed
)

// adviceMsg delivers a finished simulation back to the update loop.
type adviceMsg struct {
	advice bot.Advice
	err    error
}

// Model is the Bubble Tea model for an advisor session
type Model struct {
	bot    *bot.PokerBot
	budget time.Duration
	logger *log.Logger

	// UI components
	logViewport viewport.Model
	cardInput   textinput.Model

	// State
	step       step
	phase      bot.Phase
	hole       []deck.Card
	board      []deck.Card
	sessionLog []string
	quitting   bool

	// Styles
	styles *Styles

	// Dimensions
	width  int
	height int
}

// Styles contains all styling for the session
type Styles struct {
	LogPane   lipgloss.Style
	InputPane lipgloss.Style

	Header    lipgloss.Style
	PhaseInfo lipgloss.Style
	RedCard   lipgloss.Style
	BlackCard lipgloss.Style

	Stay  lipgloss.Style
	Fold  lipgloss.Style
	Error lipgloss.Style
	Help  lipgloss.Style
}

// DefaultStyles returns the default session styling
func DefaultStyles() *Styles {
	return &Styles{
		LogPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#626262")).
			Padding(1),
		InputPane: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#04B575")).
			Padding(1),
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1).
			Bold(true),
		PhaseInfo: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		RedCard: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		BlackCard: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Bold(true),
		Stay: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#96CEB4")).
			Bold(true),
		Fold: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Error: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B")).
			Bold(true),
		Help: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#626262")),
	}
}

// NewModel creates a session model around an advisor bot
func NewModel(b *bot.PokerBot, budget time.Duration, logger *log.Logger) *Model {
	vp := viewport.New(100, 25)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "Enter your two hole cards (e.g. AhKs)"
	ti.Focus()
	ti.CharLimit = 40
	ti.Width = 100
	ti.PromptStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#04B575")).Bold(true)
	ti.Prompt = "> "

	return &Model{
		bot:         b,
		budget:      budget,
		logger:      logger.WithPrefix("display"),
		logViewport: vp,
		cardInput:   ti,
		step:        stepHole,
		styles:      DefaultStyles(),
	}
}

// Init initializes the session model
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages in the session
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateDimensions()

	case adviceMsg:
		cmds = append(cmds, m.handleAdvice(msg)...)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		case "enter":
			if m.step != stepSimulating {
				cmds = append(cmds, m.handleInput(strings.TrimSpace(m.cardInput.Value()))...)
				m.cardInput.SetValue("")
			}
		case "up", "k":
			m.logViewport.ScrollUp(1)
		case "down", "j":
			m.logViewport.ScrollDown(1)
		case "pgup":
			m.logViewport.HalfPageUp()
		case "pgdown":
			m.logViewport.HalfPageDown()
		}
	}

	var cmd tea.Cmd
	if m.step != stepSimulating {
		m.cardInput, cmd = m.cardInput.Update(msg)
		cmds = append(cmds, cmd)
	}
	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// handleInput advances the session on a submitted line.
func (m *Model) handleInput(input string) []tea.Cmd {
	if strings.EqualFold(input, "quit") {
		m.quitting = true
		return []tea.Cmd{tea.Sequence(tea.ClearScreen, tea.Quit)}
	}

	switch m.step {
	case stepHole:
		hole, err := deck.ParseCards(input)
		if err != nil || len(hole) != 2 {
			m.addError("enter exactly two cards, e.g. AhKs")
			return nil
		}
		if err := m.bot.SetKnownCards(hole, nil); err != nil {
			m.addError(err.Error())
			return nil
		}
		m.hole = hole
		m.board = nil
		m.phase = bot.PreFlop
		return m.startSimulation()

	case stepBoard:
		cards, err := deck.ParseCards(input)
		if err != nil || len(cards) != m.cardsWanted() {
			m.addError(fmt.Sprintf("enter exactly %d cards, e.g. %s", m.cardsWanted(), m.boardExample()))
			return nil
		}
		board := append(append([]deck.Card{}, m.board...), cards...)
		if err := m.bot.SetKnownCards(m.hole, board); err != nil {
			m.addError(err.Error())
			return nil
		}
		m.board = board
		m.phase++
		return m.startSimulation()

	case stepContinue:
		if m.phase == bot.PreRiver {
			// Hand complete, start over.
			m.addLog("")
			m.addLog(m.styles.Header.Render(" New Hand "))
			m.step = stepHole
			m.cardInput.Placeholder = "Enter your two hole cards (e.g. AhKs)"
			return nil
		}
		m.step = stepBoard
		if m.phase == bot.PreFlop {
			m.cardInput.Placeholder = "Enter the three flop cards (e.g. 2c7d9h)"
		} else {
			m.cardInput.Placeholder = "Enter the turn card (e.g. Js)"
		}
		return nil
	}
	return nil
}

// startSimulation kicks off an asynchronous Advise call.
func (m *Model) startSimulation() []tea.Cmd {
	m.step = stepSimulating
	m.addLog("")
	m.addLog(m.styles.PhaseInfo.Render(fmt.Sprintf("%s: hand %s board %s",
		m.phase, m.formatCards(m.hole), m.formatCards(m.board))))
	m.addLog(m.styles.Help.Render(fmt.Sprintf("simulating for up to %s...", m.budget)))

	b := m.bot
	budget := m.budget
	return []tea.Cmd{func() tea.Msg {
		advice, err := b.Advise(budget)
		return adviceMsg{advice: advice, err: err}
	}}
}

// handleAdvice records a finished simulation and prompts to continue.
func (m *Model) handleAdvice(msg adviceMsg) []tea.Cmd {
	if msg.err != nil {
		m.logger.Error("simulation failed", "error", msg.err)
		m.addError(msg.err.Error())
		m.step = stepHole
		m.cardInput.Placeholder = "Enter your two hole cards (e.g. AhKs)"
		return nil
	}

	advice := msg.advice
	verdict := m.styles.Stay.Render("STAY")
	if advice.Verdict == policy.Fold {
		verdict = m.styles.Fold.Render("FOLD")
	}
	m.addLog(fmt.Sprintf("win probability %.1f%% over %d trials in %s",
		advice.WinRate*100, advice.Trials, advice.Elapsed.Round(time.Millisecond)))
	m.addLog("recommendation: " + verdict)

	m.step = stepContinue
	if m.phase == bot.PreRiver {
		m.cardInput.Placeholder = "Enter for a new hand, 'quit' to exit"
	} else {
		m.cardInput.Placeholder = "Enter to deal the next cards, 'quit' to exit"
	}
	return nil
}

// View renders the session
func (m *Model) View() string {
	if m.quitting {
		return ""
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.renderLogPane(),
		m.renderInputPane(),
	)
}

func (m *Model) renderLogPane() string {
	m.logViewport.SetContent(strings.Join(m.sessionLog, "\n"))
	return m.styles.LogPane.Width(m.width - 4).Render(m.logViewport.View())
}

func (m *Model) renderInputPane() string {
	var content strings.Builder

	if m.step == stepSimulating {
		content.WriteString(m.styles.PhaseInfo.Render("Simulating..."))
	} else {
		content.WriteString(m.cardInput.View())
	}
	content.WriteString("\n")
	content.WriteString(m.styles.Help.Render("↑↓ scroll log • Enter to submit • Ctrl+C to quit"))

	return m.styles.InputPane.Width(m.width - 4).Render(content.String())
}

// formatCards formats cards with suit colors
func (m *Model) formatCards(cards []deck.Card) string {
	if len(cards) == 0 {
		return "[]"
	}

	var formatted []string
	for _, card := range cards {
		if card.IsRed() {
			formatted = append(formatted, m.styles.RedCard.Render(card.String()))
		} else {
			formatted = append(formatted, m.styles.BlackCard.Render(card.String()))
		}
	}

	return "[" + strings.Join(formatted, " ") + "]"
}

// cardsWanted returns how many community cards the next phase needs.
func (m *Model) cardsWanted() int {
	next := m.phase + 1
	return next.BoardCards() - m.phase.BoardCards()
}

func (m *Model) boardExample() string {
	if m.phase == bot.PreFlop {
		return "2c7d9h"
	}
	return "Js"
}

func (m *Model) addLog(entry string) {
	m.sessionLog = append(m.sessionLog, entry)
	m.logViewport.SetContent(strings.Join(m.sessionLog, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

func (m *Model) addError(message string) {
	m.addLog(m.styles.Error.Render("error: " + message))
}

// updateDimensions updates component dimensions based on terminal size
func (m *Model) updateDimensions() {
	if m.height <= 0 || m.width <= 0 {
		return
	}

	inputPaneHeight := 6
	logHeight := m.height - inputPaneHeight - 1
	if logHeight < 3 {
		logHeight = 3
	}

	m.logViewport.Width = m.width - 4
	m.logViewport.Height = logHeight - 4
	m.cardInput.Width = m.width - 8
}

// Run starts the interactive session and blocks until the user quits.
func Run(b *bot.PokerBot, budget time.Duration, logger *log.Logger) error {
	program := tea.NewProgram(NewModel(b, budget, logger), tea.WithAltScreen())
	if _, err := program.Run(); err != nil {
		return fmt.Errorf("running session: %w", err)
	}
	return nil
}
