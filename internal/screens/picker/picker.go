package picker

import (
	"fmt"
	"path/filepath"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mcquiz/internal/bank"
	"github.com/abhisek/mcquiz/internal/router"
	"github.com/abhisek/mcquiz/internal/screen"
	"github.com/abhisek/mcquiz/internal/screens/bankinfo"
	"github.com/abhisek/mcquiz/internal/ui/components"
	"github.com/abhisek/mcquiz/internal/ui/layout"
	"github.com/abhisek/mcquiz/internal/ui/theme"
)

// Entry is a discovered bank file. Bank is nil when it failed to load.
type Entry struct {
	Path string
	Bank *bank.Bank
	Err  error
}

// PickerScreen lists the available banks with a filter input.
type PickerScreen struct {
	entries []Entry
	filter  components.TextInput
	menu    components.Menu
}

var _ screen.Screen = (*PickerScreen)(nil)
var _ screen.KeyHintProvider = (*PickerScreen)(nil)

// New creates a PickerScreen for the given entries.
func New(entries []Entry) *PickerScreen {
	s := &PickerScreen{
		entries: entries,
		filter:  components.NewTextInput("type to filter", 40),
	}
	s.menu = components.NewMenu(s.items())
	return s
}

func (s *PickerScreen) Init() tea.Cmd {
	return s.filter.Init()
}

func (s *PickerScreen) Title() string {
	return "Banks"
}

func (s *PickerScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "↑↓", Description: "Navigate"},
		{Key: "Enter", Description: "Details"},
		{Key: "Ctrl+C", Description: "Quit"},
	}
}

func (s *PickerScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok {
		switch kmsg.String() {
		case "up", "down", "enter":
			var cmd tea.Cmd
			s.menu, cmd = s.menu.Update(msg)
			return s, cmd
		}
	}

	before := s.filter.Value()
	var cmd tea.Cmd
	s.filter, cmd = s.filter.Update(msg)
	if s.filter.Value() != before {
		s.menu.SetItems(s.items())
	}
	return s, cmd
}

// Visible returns the entries matching the current filter.
func (s *PickerScreen) Visible() []Entry {
	var out []Entry
	for _, e := range s.entries {
		if s.filter.Matches(label(e)) || s.filter.Matches(filepath.Base(e.Path)) {
			out = append(out, e)
		}
	}
	return out
}

func (s *PickerScreen) items() []components.MenuItem {
	visible := s.Visible()
	items := make([]components.MenuItem, 0, len(visible))
	for _, e := range visible {
		item := components.MenuItem{Label: label(e)}
		if e.Err != nil || e.Bank == nil {
			item.Disabled = true
			item.Detail = "cannot be loaded"
		} else {
			b := e.Bank
			item.Detail = fmt.Sprintf("%d questions", b.Count())
			item.Action = func() tea.Cmd {
				return func() tea.Msg {
					return router.PushScreenMsg{Screen: bankinfo.New(b)}
				}
			}
		}
		items = append(items, item)
	}
	return items
}

func label(e Entry) string {
	if e.Bank != nil {
		return e.Bank.Title()
	}
	base := filepath.Base(e.Path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}

func (s *PickerScreen) View(width, height int) string {
	var b strings.Builder

	b.WriteString("\n  ")
	b.WriteString(s.filter.View())
	b.WriteString("\n\n")

	if len(s.entries) == 0 {
		b.WriteString(theme.Hint.Render("  No quiz banks found."))
		return b.String()
	}
	if len(s.menu.Items) == 0 {
		b.WriteString(theme.Hint.Render("  Nothing matches the filter."))
		return b.String()
	}
	b.WriteString(s.menu.View())
	return b.String()
}
