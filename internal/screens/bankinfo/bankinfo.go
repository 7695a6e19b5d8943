package bankinfo

import (
	"fmt"
	"strings"

	tea "charm.land/bubbletea/v2"

	"github.com/abhisek/mcquiz/internal/bank"
	"github.com/abhisek/mcquiz/internal/screen"
	"github.com/abhisek/mcquiz/internal/ui/layout"
	"github.com/abhisek/mcquiz/internal/ui/theme"
)

// BankInfoScreen shows a bank's metadata and chapters before playing it.
type BankInfoScreen struct {
	bank *bank.Bank
}

var _ screen.Screen = (*BankInfoScreen)(nil)
var _ screen.KeyHintProvider = (*BankInfoScreen)(nil)

// New creates a BankInfoScreen.
func New(b *bank.Bank) *BankInfoScreen {
	return &BankInfoScreen{bank: b}
}

func (s *BankInfoScreen) Init() tea.Cmd {
	return nil
}

func (s *BankInfoScreen) Title() string {
	return "Details"
}

func (s *BankInfoScreen) KeyHints() []layout.KeyHint {
	return []layout.KeyHint{
		{Key: "Enter", Description: "Start quiz"},
		{Key: "Esc", Description: "Back"},
	}
}

func (s *BankInfoScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	if kmsg, ok := msg.(tea.KeyMsg); ok && kmsg.String() == "enter" {
		path := s.bank.Path
		return s, func() tea.Msg { return screen.ChooseBankMsg{Path: path} }
	}
	return s, nil
}

func (s *BankInfoScreen) View(width, height int) string {
	b := s.bank
	var sb strings.Builder

	sb.WriteString("\n")
	sb.WriteString(theme.Title.Render("  " + b.Title()))
	sb.WriteString("\n\n")

	field := func(name, value string) {
		if value == "" {
			return
		}
		sb.WriteString(fmt.Sprintf("  %s %s\n", theme.Label.Render(fmt.Sprintf("%-13s", name+":")), value))
	}
	if m := b.Meta; m != nil {
		field("Author", m.Author)
		field("Contributors", strings.Join(m.Contributors, ", "))
		field("License", m.License)
		field("Homepage", m.Homepage)
		field("Version", m.Version)
	}
	field("File", b.Path)
	sb.WriteString("\n")

	for _, ch := range b.Chapters {
		sb.WriteString(fmt.Sprintf("  %-40s %s\n", ch.Name, theme.Hint.Render(fmt.Sprintf("%d", len(ch.Questions)))))
	}
	sb.WriteString("\n")
	sb.WriteString(theme.Body.Render(fmt.Sprintf("  %d questions in %d chapters", b.Count(), len(b.Chapters))))
	return sb.String()
}
