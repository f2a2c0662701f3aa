package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/lox/blackjack/internal/game"
)

// TUIModel represents the Bubble Tea model for the blackjack table
type TUIModel struct {
	logger    *log.Logger
	formatter *game.EventFormatter

	// UI components
	logViewport viewport.Model
	actionInput textinput.Model

	// State
	gameLog      []string
	actionResult chan ActionResult
	quitSignal   chan struct{}
	quitting     bool
	focusedPane  int // 0 = log, 1 = input

	// Table state, rebuilt from events
	roundID string
	seats   []string
	hands   map[string]game.PlayerView

	// Pending question, empty while the round plays on its own
	prompt string
	turn   *game.PlayerView

	// Dimensions
	width       int
	height      int
	initialized bool

	// Test mode
	testMode    bool
	capturedLog []string
}

// ActionResult is one line submitted by the user
type ActionResult struct {
	Input    string
	Continue bool
}

// EventMsg delivers a round event to the model
type EventMsg struct {
	Event game.GameEvent
}

// PromptMsg asks the user a question. Player is set when the question is a
// hit or stay decision.
type PromptMsg struct {
	Question string
	Player   *game.PlayerView
}

// LogMsg appends a plain line to the log
type LogMsg struct {
	Line string
}

// QuitMsg is a custom message to signal quit
type QuitMsg struct{}

// NewTUIModel creates a new TUI model
func NewTUIModel(logger *log.Logger) *TUIModel {
	return NewTUIModelWithOptions(logger, false)
}

// NewTUIModelWithOptions creates a new TUI model with test mode option
func NewTUIModelWithOptions(logger *log.Logger, testMode bool) *TUIModel {
	vp := viewport.New(10, 5)
	vp.SetContent("")

	ti := textinput.New()
	ti.Placeholder = "hit or stay"
	ti.Focus()
	ti.CharLimit = 40
	ti.Width = 40
	ti.PromptStyle = lipgloss.NewStyle().Foreground(accent).Bold(true)
	ti.TextStyle = lipgloss.NewStyle().Foreground(chalk)
	ti.Prompt = "> "

	return &TUIModel{
		logger:       logger.WithPrefix("tui"),
		formatter:    game.NewEventFormatter(game.FormattingOptions{}),
		logViewport:  vp,
		actionInput:  ti,
		gameLog:      []string{},
		actionResult: make(chan ActionResult, 1),
		quitSignal:   make(chan struct{}, 1),
		focusedPane:  1,
		hands:        map[string]game.PlayerView{},
		testMode:     testMode,
		capturedLog:  []string{},
	}
}

// Init initializes the TUI model
func (m *TUIModel) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, m.listenForQuit())
}

// listenForQuit returns a command that listens for quit signals
func (m *TUIModel) listenForQuit() tea.Cmd {
	return func() tea.Msg {
		<-m.quitSignal
		return QuitMsg{}
	}
}

// Update handles messages in the TUI
func (m *TUIModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case QuitMsg:
		m.quitting = true
		return m, tea.Sequence(tea.ClearScreen, tea.Quit)

	case EventMsg:
		m.applyEvent(msg.Event)

	case PromptMsg:
		m.prompt = msg.Question
		m.turn = msg.Player

	case LogMsg:
		m.AddLogEntry(msg.Line)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.logger.Debug("Updating dimensions", "width", m.width, "height", m.height)

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			m.quitting = true
			m.submit(ActionResult{Continue: false})
			return m, tea.Sequence(tea.ClearScreen, tea.Quit)
		case "tab":
			if m.focusedPane == 0 {
				m.focusedPane = 1
				m.actionInput.Focus()
			} else {
				m.focusedPane = 0
				m.actionInput.Blur()
			}
		case "enter":
			if m.focusedPane == 1 {
				m.processAction(strings.TrimSpace(m.actionInput.Value()))
				m.actionInput.SetValue("")
			}
		case "up", "k":
			if m.focusedPane == 0 {
				m.logViewport.ScrollUp(1)
			}
		case "down", "j":
			if m.focusedPane == 0 {
				m.logViewport.ScrollDown(1)
			}
		case "pgup", "b":
			if m.focusedPane == 0 {
				m.logViewport.HalfPageUp()
			}
		case "pgdown", "f":
			if m.focusedPane == 0 {
				m.logViewport.HalfPageDown()
			}
		case "home", "g":
			if m.focusedPane == 0 {
				m.logViewport.GotoTop()
			}
		case "end", "G":
			if m.focusedPane == 0 {
				m.logViewport.GotoBottom()
			}
		}
	}

	var cmd tea.Cmd
	if m.focusedPane == 1 {
		m.actionInput, cmd = m.actionInput.Update(msg)
		cmds = append(cmds, cmd)
	}

	m.logViewport, cmd = m.logViewport.Update(msg)
	cmds = append(cmds, cmd)

	return m, tea.Batch(cmds...)
}

// applyEvent records the event in the log and refreshes the table sidebar
func (m *TUIModel) applyEvent(event game.GameEvent) {
	switch e := event.(type) {
	case game.RoundStartEvent:
		m.roundID = e.RoundID
		m.seats = append(append([]string{}, e.Players...), e.Dealer)
		m.hands = map[string]game.PlayerView{}
		m.AddLogEntry("")
		m.AddLogEntry(HeaderStyle.Render(" " + m.formatter.FormatRoundStart(e) + " "))
		return
	case game.CardDealtEvent:
		m.hands[e.Player.Name] = e.Player
	case game.HoleCardRevealedEvent:
		m.hands[e.Dealer.Name] = e.Dealer
	case game.HitEvent:
		m.hands[e.Player.Name] = e.Player
	case game.StandEvent:
		m.hands[e.Player.Name] = e.Player
	case game.BustEvent:
		m.hands[e.Player.Name] = e.Player
	case game.RoundEndEvent:
		m.hands[e.Dealer.Name] = e.Dealer
		for _, r := range e.Results {
			m.hands[r.Player.Name] = r.Player
		}
		for _, line := range m.formatter.FormatRoundEnd(e) {
			m.AddLogEntry(resultStyle(line).Render(line))
		}
		return
	case game.InvalidDecisionEvent:
		for _, line := range m.formatter.Format(e) {
			m.AddLogEntry(WarningStyle.Render(line))
		}
		return
	}

	for _, line := range m.formatter.Format(event) {
		m.AddLogEntry(line)
	}
}

// View renders the TUI
func (m *TUIModel) View() string {
	if m.quitting {
		return ""
	}

	if m.width == 0 || m.height == 0 {
		return "Loading..."
	}

	actionContent := m.renderActionPane()
	actionHeight := lipgloss.Height(actionContent)
	actionPane := paneBorder(true).
		Width(max(m.width-2, 1)).
		Height(max(actionHeight, 1)).
		Render(actionContent)

	sidebarContent := m.renderSidebarPane()
	sidebarWidth := max(lipgloss.Width(sidebarContent), 28)
	paneHeight := max(m.height-actionHeight-4, 1)

	sidebarPane := paneBorder(false).
		Width(sidebarWidth).
		Height(paneHeight).
		Render(sidebarContent)

	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	m.logViewport.Width = max(m.width-sidebarWidth-4, 1)
	m.logViewport.Height = paneHeight

	if !m.initialized && m.logViewport.Width > 1 && m.logViewport.Height > 1 {
		m.logViewport.GotoBottom()
		m.initialized = true
	}

	logStyle := paneBorder(m.focusedPane == 0).
		Width(m.logViewport.Width).
		Height(m.logViewport.Height)

	topRow := lipgloss.JoinHorizontal(lipgloss.Top, logStyle.Render(m.logViewport.View()), sidebarPane)
	return lipgloss.JoinVertical(lipgloss.Top, topRow, actionPane)
}

// renderSidebarPane lists every seat with the hand an observer can see
func (m *TUIModel) renderSidebarPane() string {
	var content strings.Builder

	if m.roundID == "" {
		content.WriteString(InfoStyle.Render("Waiting for the first deal"))
		return content.String()
	}

	content.WriteString(InfoStyle.Render("Round " + m.roundID))
	content.WriteString("\n\n")

	for _, name := range m.seats {
		view, ok := m.hands[name]
		if !ok {
			content.WriteString(fmt.Sprintf("%s\n", name))
			continue
		}
		content.WriteString(fmt.Sprintf("%s (%d)%s\n  %s\n", name, view.ShownPoints(), statusBadge(view.Status), FormatCards(view.Cards)))
	}

	return content.String()
}

// renderActionPane renders the question and the input line
func (m *TUIModel) renderActionPane() string {
	var content strings.Builder

	switch {
	case m.turn != nil:
		content.WriteString(TurnStyle.Render(fmt.Sprintf("%s: %s (%d)", m.turn.Name, FormatCards(m.turn.Cards), m.turn.Points)))
		content.WriteString("\n")
		content.WriteString(PromptStyle.Render(m.prompt))
	case m.prompt != "":
		content.WriteString(PromptStyle.Render(m.prompt))
	default:
		content.WriteString(TurnStyle.Render("Waiting..."))
	}
	content.WriteString("\n")

	content.WriteString(m.actionInput.View())
	content.WriteString("\n")

	if m.focusedPane == 0 {
		content.WriteString(HelpStyle.Render("Log focused: ↑↓ scroll, PgUp/PgDn half page, Home/End, Tab to input"))
	} else {
		content.WriteString(HelpStyle.Render("Tab to scroll log • Enter to submit • Ctrl+C to quit"))
	}

	return content.String()
}

// FormatCards renders card views with red suits coloured and hidden cards
// masked
func FormatCards(cards []game.CardView) string {
	formatted := make([]string, len(cards))
	for i, c := range cards {
		formatted[i] = cardStyle(c).Render(c.String())
	}
	return strings.Join(formatted, " ")
}

// AddLogEntry adds an entry to the game log
func (m *TUIModel) AddLogEntry(entry string) {
	m.gameLog = append(m.gameLog, entry)

	if m.testMode {
		m.capturedLog = append(m.capturedLog, entry)
		return
	}

	m.logViewport.SetContent(strings.Join(m.gameLog, "\n"))
	if m.logViewport.Height > 0 && m.logViewport.Width > 0 {
		m.logViewport.GotoBottom()
	}
}

// processAction answers the pending question. Input with nothing to answer
// is dropped so it cannot leak into the next question.
func (m *TUIModel) processAction(input string) {
	if m.prompt == "" {
		m.logger.Debug("Ignoring input with no pending question", "input", input)
		return
	}
	m.prompt = ""
	m.turn = nil
	m.submit(ActionResult{Input: input, Continue: true})
}

func (m *TUIModel) submit(result ActionResult) {
	select {
	case m.actionResult <- result:
	default:
		m.logger.Warn("Dropping input, previous answer not consumed", "input", result.Input)
	}
}

// WaitForAction waits for the user's next answer
func (m *TUIModel) WaitForAction(ctx context.Context) (ActionResult, error) {
	select {
	case <-ctx.Done():
		return ActionResult{}, ctx.Err()
	case result := <-m.actionResult:
		return result, nil
	}
}

// SendQuitSignal signals the TUI to quit gracefully
func (m *TUIModel) SendQuitSignal() {
	select {
	case m.quitSignal <- struct{}{}:
	default:
	}
}

// GetCapturedLog returns the captured log entries (test mode only)
func (m *TUIModel) GetCapturedLog() []string {
	if !m.testMode {
		return nil
	}
	result := make([]string, len(m.capturedLog))
	copy(result, m.capturedLog)
	return result
}

// InjectAction programmatically injects an answer (test mode only)
func (m *TUIModel) InjectAction(input string) error {
	if !m.testMode {
		return fmt.Errorf("action injection only available in test mode")
	}

	select {
	case m.actionResult <- ActionResult{Input: input, Continue: true}:
		return nil
	default:
		return fmt.Errorf("action channel full")
	}
}

// IsTestMode returns whether the TUI is in test mode
func (m *TUIModel) IsTestMode() bool {
	return m.testMode
}
