package ui

import (
	tea "github.com/charmbracelet/bubbletea"
)

type state int

const (
	stateLogin state = iota
	stateDashboard
)

type RootModel struct {
	State     state
	Client    *Client
	Login     LoginModel
	Dashboard DashboardModel
	height    int
}

func NewRootModel() RootModel {
	c := NewClient()
	return RootModel{
		State:  stateLogin,
		Client: c,
		Login:  NewLoginModel(c),
	}
}

func (m RootModel) Init() tea.Cmd {
	return m.Login.Init()
}

func (m RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.height = msg.Height
		if m.State == stateDashboard {
			m.Dashboard.Table.SetHeight(msg.Height - 10)
		}

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

	case loggedInMsg:
		m.State = stateDashboard
		m.Dashboard = NewDashboardModel(m.Client, msg.Username, msg.Level, m.height)
		return m, m.Dashboard.Init()
	}

	switch m.State {
	case stateLogin:
		if err, ok := msg.(errMsg); ok {
			m.Login.Err = err
		}
		newLogin, cmd := m.Login.Update(msg)
		m.Login = newLogin
		cmds = append(cmds, cmd)

	case stateDashboard:
		newDash, cmd := m.Dashboard.Update(msg)
		m.Dashboard = newDash
		cmds = append(cmds, cmd)
	}

	return m, tea.Batch(cmds...)
}

func (m RootModel) View() string {
	switch m.State {
	case stateDashboard:
		return m.Dashboard.View()
	default:
		return m.Login.View()
	}
}
