package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type dashboardTab int

const (
	tabWords dashboardTab = iota
	tabScoreboard
)

type wordsLoadedMsg []WordRow
type scoreboardLoadedMsg []ScoreRow

type DashboardModel struct {
	Client   *Client
	Tab      dashboardTab
	Table    table.Model
	Username string
	Level    string
	Err      error
}

func NewDashboardModel(c *Client, username, level string, height int) DashboardModel {
	if height <= 0 {
		height = 20
	}
	t := table.New(
		table.WithColumns(wordColumns()),
		table.WithFocused(true),
		table.WithHeight(height-10),
	)

	sStyle := table.DefaultStyles()
	sStyle.Header = sStyle.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("240")).
		BorderBottom(true).
		Bold(false)
	sStyle.Selected = sStyle.Selected.
		Foreground(lipgloss.Color("229")).
		Background(lipgloss.Color("62")).
		Bold(false)
	t.SetStyles(sStyle)

	return DashboardModel{Client: c, Tab: tabWords, Table: t, Username: username, Level: level}
}

func wordColumns() []table.Column {
	return []table.Column{
		{Title: "Word", Width: 16},
		{Title: "Level", Width: 6},
		{Title: "Meaning", Width: 32},
		{Title: "Example", Width: 44},
	}
}

func scoreColumns() []table.Column {
	return []table.Column{
		{Title: "#", Width: 4},
		{Title: "Username", Width: 24},
		{Title: "Score", Width: 8},
		{Title: "Level", Width: 6},
	}
}

func (m DashboardModel) Init() tea.Cmd {
	return m.loadWords
}

func (m DashboardModel) loadWords() tea.Msg {
	words, err := m.Client.Words()
	if err != nil {
		return errMsg(err)
	}
	return wordsLoadedMsg(words)
}

func (m DashboardModel) loadScoreboard() tea.Msg {
	rows, err := m.Client.Scoreboard()
	if err != nil {
		return errMsg(err)
	}
	return scoreboardLoadedMsg(rows)
}

func (m DashboardModel) refresh() tea.Cmd {
	if m.Tab == tabWords {
		return m.loadWords
	}
	return m.loadScoreboard
}

func (m DashboardModel) Update(msg tea.Msg) (DashboardModel, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "tab":
			if m.Tab == tabWords {
				m.Tab = tabScoreboard
			} else {
				m.Tab = tabWords
			}
			m.Err = nil
			return m, m.refresh()
		case "r":
			return m, m.refresh()
		case "q":
			return m, tea.Quit
		}

	case wordsLoadedMsg:
		m.Table.SetColumns(wordColumns())
		rows := make([]table.Row, 0, len(msg))
		for _, w := range msg {
			rows = append(rows, table.Row{w.Word, w.Level, w.Meaning, w.Example})
		}
		m.Table.SetRows(rows)
		m.Err = nil

	case scoreboardLoadedMsg:
		m.Table.SetColumns(scoreColumns())
		rows := make([]table.Row, 0, len(msg))
		for i, s := range msg {
			rows = append(rows, table.Row{strconv.Itoa(i + 1), s.Username, strconv.Itoa(s.Score), s.Level})
		}
		m.Table.SetRows(rows)
		m.Err = nil

	case errMsg:
		m.Err = msg
	}

	m.Table, cmd = m.Table.Update(msg)
	return m, cmd
}

func (m DashboardModel) View() string {
	var b strings.Builder

	title := "Word Catalog"
	if m.Tab == tabScoreboard {
		title = "Scoreboard"
	}
	b.WriteString(titleStyle.Render(fmt.Sprintf("LearnHub - %s", title)))
	b.WriteString("  " + focusedStyle.Render(fmt.Sprintf("%s (%s)", m.Username, m.Level)))
	b.WriteString("\n\n")
	b.WriteString(m.Table.View())
	b.WriteString("\n\n")
	b.WriteString(blurredStyle.Render("Tab switches view, 'r' refreshes, 'q' quits"))

	if m.Err != nil {
		b.WriteString("\n" + errorMessageStyle(m.Err.Error()))
	}
	return b.String()
}
