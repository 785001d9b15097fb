package viz

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/san-kum/galton/internal/board"
)

// TickMsg drives one board tick.
type TickMsg time.Time

// keyCommands maps keys to board commands. They are applied from Update, so
// always between ticks.
var keyCommands = map[string]board.Command{
	"s":     board.CmdStart,
	"enter": board.CmdStart,
	"r":     board.CmdReset,
	"+":     board.CmdRowsUp,
	"=":     board.CmdRowsUp,
	"-":     board.CmdRowsDown,
	"_":     board.CmdRowsDown,
	"]":     board.CmdBallsUp,
	"[":     board.CmdBallsDown,
}

// Model is the bubbletea model for the terminal board.
type Model struct {
	engine        *board.Engine
	rate          int
	theme         Theme
	width, height int
	showHelp      bool
	paused        bool
}

func NewModel(e *board.Engine, tickRate int, theme Theme) Model {
	if tickRate <= 0 {
		tickRate = board.DefaultRates().TickRate
	}
	return Model{
		engine: e,
		rate:   tickRate,
		theme:  theme,
		width:  100,
		height: 40,
	}
}

func (m Model) Init() tea.Cmd {
	return m.tick()
}

func (m Model) tick() tea.Cmd {
	return tea.Tick(time.Second/time.Duration(m.rate), func(t time.Time) tea.Msg { return TickMsg(t) })
}

// Update handles input events and steps the board.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		if cmd, ok := keyCommands[key]; ok {
			m.engine.Apply(cmd)
			return m, nil
		}
		switch key {
		case "q", "ctrl+c":
			return m, tea.Quit
		case " ", "p":
			m.paused = !m.paused
		case "?":
			m.showHelp = !m.showHelp
		case "t":
			m.theme = NextTheme(m.theme)
		}
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
	case TickMsg:
		if !m.paused {
			m.engine.Tick()
		}
		return m, m.tick()
	}
	return m, nil
}

// View renders the board, the stats panel and the bin histogram.
func (m Model) View() string {
	return render(m.engine.Snapshot(), m.layout())
}

func (m Model) layout() frame {
	return frame{
		width:    m.width,
		height:   m.height,
		theme:    m.theme,
		paused:   m.paused,
		showHelp: m.showHelp,
	}
}

// Run opens the full-screen terminal front-end and blocks until the user
// quits.
func Run(e *board.Engine, tickRate int, theme Theme) error {
	if _, err := tea.NewProgram(NewModel(e, tickRate, theme), tea.WithAltScreen()).Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
