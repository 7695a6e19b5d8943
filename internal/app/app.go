package app

import (
	"fmt"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"

	"github.com/abhisek/mcquiz/internal/router"
	"github.com/abhisek/mcquiz/internal/screen"
	"github.com/abhisek/mcquiz/internal/screens/picker"
	"github.com/abhisek/mcquiz/internal/ui/layout"
)

// Options configures the bank picker.
type Options struct {
	Entries []picker.Entry
}

// AppModel is the root Bubble Tea model of the bank picker.
type AppModel struct {
	router   *router.Router
	width    int
	height   int
	selected string
}

// newAppModel creates a new AppModel with the picker screen.
func newAppModel(opts Options) AppModel {
	return AppModel{
		router: router.New(picker.New(opts.Entries)),
	}
}

// Selected returns the chosen bank path, or "" if the user quit.
func (m AppModel) Selected() string {
	return m.selected
}

func (m AppModel) Init() tea.Cmd {
	if active := m.router.Active(); active != nil {
		return active.Init()
	}
	return nil
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case screen.ChooseBankMsg:
		m.selected = msg.Path
		return m, tea.Quit

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "esc":
			if m.router.Depth() > 1 {
				return m, func() tea.Msg { return router.PopScreenMsg{} }
			}
			return m, tea.Quit
		}
	}

	cmd := m.router.Update(msg)
	return m, cmd
}

func (m AppModel) View() tea.View {
	v := tea.NewView("")
	v.AltScreen = true

	if m.width == 0 || m.height == 0 {
		return v
	}

	if layout.IsTooSmall(m.width, m.height) {
		v.SetContent(layout.RenderMinSizeMessage(m.width, m.height))
		return v
	}

	header := layout.RenderHeader(m.router.Breadcrumb(), m.width)

	footerHints := []layout.KeyHint{
		{Key: "Esc", Description: "Back"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
	if hp, ok := m.router.Active().(screen.KeyHintProvider); ok {
		footerHints = hp.KeyHints()
	}
	footer := layout.RenderFooter(footerHints, m.width)

	contentHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if contentHeight < 0 {
		contentHeight = 0
	}

	content := m.router.View(m.width, contentHeight)
	v.SetContent(layout.RenderFrame(header, content, footer, m.width, m.height))
	return v
}

// Run shows the picker and returns the chosen bank path. An empty path
// means the user quit without choosing.
func Run(opts Options) (string, error) {
	p := tea.NewProgram(newAppModel(opts))
	final, err := p.Run()
	if err != nil {
		return "", fmt.Errorf("run picker: %w", err)
	}
	m, ok := final.(AppModel)
	if !ok {
		return "", nil
	}
	return m.Selected(), nil
}
