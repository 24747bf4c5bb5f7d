package main

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/stopwatch"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/sweephq/sweeper/internal/mines"
)

type PlayCmd struct {
	Width  int    `default:"9" help:"Grid width"`
	Height int    `default:"9" help:"Grid height"`
	Mines  int    `default:"10" help:"Number of mines"`
	Unique bool   `default:"true" negatable:"" help:"Guarantee the grid is solvable without guessing"`
	Auto   bool   `help:"Watch the solver play instead"`
	Seed   uint64 `default:"0" help:"RNG seed (0 for random)"`
}

func (c *PlayCmd) Run() error {
	params := mines.GameParams{
		Width:     c.Width,
		Height:    c.Height,
		MineCount: c.Mines,
		Unique:    c.Unique,
	}
	if err := params.Validate(); err != nil {
		return err
	}

	m := playModel{
		params:    params,
		cursorX:   c.Width / 2,
		cursorY:   c.Height / 2,
		auto:      c.Auto,
		rnd:       createRand(c.Seed),
		stopwatch: stopwatch.NewWithInterval(time.Second),
	}
	_, err := tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

var (
	coveredStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("250")).
			Background(lipgloss.Color("238"))
	flagStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).
			Background(lipgloss.Color("238"))
	mineStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("231")).
			Background(lipgloss.Color("124"))
	cursorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("232")).
			Background(lipgloss.Color("220"))
	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))
	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")).Bold(true)
	loseStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203")).Bold(true)

	countStyles = map[mines.CellState]lipgloss.Style{
		1: lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		2: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
		3: lipgloss.NewStyle().Foreground(lipgloss.Color("203")),
		4: lipgloss.NewStyle().Foreground(lipgloss.Color("63")),
		5: lipgloss.NewStyle().Foreground(lipgloss.Color("130")),
		6: lipgloss.NewStyle().Foreground(lipgloss.Color("37")),
		7: lipgloss.NewStyle().Foreground(lipgloss.Color("219")),
		8: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
	}
)

type autoTickMsg struct{}

func autoTick() tea.Cmd {
	return tea.Tick(150*time.Millisecond, func(time.Time) tea.Msg {
		return autoTickMsg{}
	})
}

type playModel struct {
	params    mines.GameParams
	game      *mines.GameState
	cursorX   int
	cursorY   int
	auto      bool
	rnd       *rand.Rand
	stopwatch stopwatch.Model
	err       error
}

func (m playModel) Init() tea.Cmd {
	if m.auto {
		return autoTick()
	}
	return nil
}

// open starts the game on the first call so the first opened cell is
// never a mine.
func (m *playModel) open(x, y int) tea.Cmd {
	if m.game == nil {
		game, err := mines.NewGame(&m.params, x, y, m.rnd)
		if err != nil {
			m.err = err
			return tea.Quit
		}
		m.game = game
		return m.stopwatch.Start()
	}
	m.game.OpenCell(x, y)
	return nil
}

func (m playModel) gameOver() bool {
	return m.game != nil && (m.game.Won || m.game.Dead)
}

func (m playModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case autoTickMsg:
		if m.gameOver() {
			return m, m.stopwatch.Stop()
		}
		var cmd tea.Cmd
		if m.game == nil {
			cmd = m.open(m.cursorX, m.cursorY)
		} else if move, ok := m.game.SolveStep(m.rnd); ok {
			m.cursorX, m.cursorY = move.X, move.Y
		}
		if m.gameOver() {
			m.game.RevealMines()
			return m, tea.Batch(cmd, m.stopwatch.Stop())
		}
		return m, tea.Batch(cmd, autoTick())

	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "up", "k":
			if m.cursorY > 0 {
				m.cursorY--
			}
		case "down", "j":
			if m.cursorY < m.params.Height-1 {
				m.cursorY++
			}
		case "left", "h":
			if m.cursorX > 0 {
				m.cursorX--
			}
		case "right", "l":
			if m.cursorX < m.params.Width-1 {
				m.cursorX++
			}
		case " ", "enter", "o":
			if m.auto || m.gameOver() {
				break
			}
			cmd := m.open(m.cursorX, m.cursorY)
			if m.gameOver() {
				m.game.RevealMines()
				return m, tea.Batch(cmd, m.stopwatch.Stop())
			}
			return m, cmd
		case "f":
			if !m.auto && m.game != nil && !m.gameOver() {
				m.game.FlagCell(m.cursorX, m.cursorY)
			}
		case "c":
			if !m.auto && m.game != nil && !m.gameOver() {
				m.game.ChordCell(m.cursorX, m.cursorY)
				if m.gameOver() {
					m.game.RevealMines()
					return m, m.stopwatch.Stop()
				}
			}
		case "s":
			if !m.auto && m.game != nil && !m.gameOver() {
				if move, ok := m.game.SolveStep(m.rnd); ok {
					m.cursorX, m.cursorY = move.X, move.Y
				}
				if m.gameOver() {
					m.game.RevealMines()
					return m, m.stopwatch.Stop()
				}
			}
		case "n":
			m.game = nil
			return m, m.stopwatch.Reset()
		}
		return m, nil
	}

	var cmd tea.Cmd
	m.stopwatch, cmd = m.stopwatch.Update(msg)
	return m, cmd
}

func (m playModel) cellView(x, y int) string {
	var c mines.CellState = mines.Unknown
	if m.game != nil {
		c = m.game.PlayerGrid[y*m.params.Width+x]
	}

	var s string
	switch {
	case c == mines.Unknown || c == mines.Question:
		s = coveredStyle.Render("·")
	case c == mines.Flagged || c == mines.CorrectlyFlagged:
		s = flagStyle.Render("⚑")
	case c == mines.ExplodedMine || c == mines.UnflaggedMine:
		s = mineStyle.Render("✸")
	case c == mines.FalselyFlagged:
		s = mineStyle.Render("✗")
	case c == 0:
		s = " "
	default:
		s = countStyles[c].Render(c.String())
	}

	if x == m.cursorX && y == m.cursorY {
		s = cursorStyle.Render(cursorGlyph(c))
	}
	return s
}

func cursorGlyph(c mines.CellState) string {
	if c.Open() && c > 0 {
		return c.String()
	}
	switch c {
	case mines.Flagged, mines.CorrectlyFlagged:
		return "⚑"
	case mines.ExplodedMine, mines.UnflaggedMine:
		return "✸"
	default:
		return "·"
	}
}

func (m playModel) statusLine() string {
	flags := 0
	if m.game != nil {
		for _, c := range m.game.PlayerGrid {
			if c == mines.Flagged {
				flags++
			}
		}
	}

	parts := []string{
		fmt.Sprintf("⚑ %d/%d", flags, m.params.MineCount),
		m.stopwatch.View(),
	}
	switch {
	case m.game == nil:
		parts = append(parts, "open a cell to start")
	case m.game.Won:
		return winStyle.Render("cleared!") + "  " + statusStyle.Render(strings.Join(parts, "  "))
	case m.game.Dead:
		return loseStyle.Render("boom") + "  " + statusStyle.Render(strings.Join(parts, "  "))
	}
	return statusStyle.Render(strings.Join(parts, "  "))
}

func (m playModel) View() string {
	var b strings.Builder
	for y := range m.params.Height {
		for x := range m.params.Width {
			b.WriteString(m.cellView(x, y))
			b.WriteString(" ")
		}
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.statusLine())
	b.WriteString("\n")
	b.WriteString(statusStyle.Render("move: arrows/hjkl  open: space  flag: f  chord: c  solver: s  new: n  quit: q"))
	b.WriteString("\n")
	return b.String()
}
