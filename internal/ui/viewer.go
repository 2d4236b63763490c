package ui

import (
	"fmt"
	"strings"

	"charm.land/bubbles/v2/help"
	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	lipgloss "charm.land/lipgloss/v2"
	"github.com/charmbracelet/x/ansi"

	"github.com/upFrontEnd/good-mood-generator/internal/quote"
	"github.com/upFrontEnd/good-mood-generator/internal/theme"
)

const unknownAuthor = "Unknown author"

type viewerKeyMap struct {
	Next  key.Binding
	Theme key.Binding
	Share key.Binding
	Bio   key.Binding
	Quit  key.Binding
}

func newViewerKeyMap() viewerKeyMap {
	return viewerKeyMap{
		Next: key.NewBinding(
			key.WithKeys("n", "enter", "space"),
			key.WithHelp("n/enter", "another quote"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "light/dark"),
		),
		Share: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "copy share link"),
		),
		Bio: key.NewBinding(
			key.WithKeys("b"),
			key.WithHelp("b", "author bio"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "esc", "ctrl+c"),
			key.WithHelp("q/esc", "quit"),
		),
	}
}

func (k viewerKeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Theme, k.Share, k.Bio, k.Quit}
}

func (k viewerKeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Theme, k.Share}, {k.Bio, k.Quit}}
}

// ViewerOptions wires the viewer to its collaborators.
type ViewerOptions struct {
	Selector *quote.Selector
	Resolver *theme.Resolver
	// OnShare is invoked when the share key is pressed with the record on
	// screen. Optional; the key does nothing without it.
	OnShare func(quote.Record) error
}

type viewerModel struct {
	selector *quote.Selector
	resolver *theme.Resolver
	onShare  func(quote.Record) error

	keys viewerKeyMap
	help help.Model

	width    int
	height   int
	showBio  bool
	status   string
	quitting bool
}

func newViewerModel(opts ViewerOptions) viewerModel {
	return viewerModel{
		selector: opts.Selector,
		resolver: opts.Resolver,
		onShare:  opts.OnShare,
		keys:     newViewerKeyMap(),
		help:     help.New(),
		showBio:  CurrentPreferences.ShowBio,
	}
}

func (m viewerModel) Init() tea.Cmd {
	return nil
}

func (m viewerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyPressMsg:
		switch msg.String() {
		case "n", "enter", "space", " ":
			m.selector.SelectAnother()
			m.status = ""
		case "t":
			pref := m.resolver.Toggle()
			m.status = "theme set to " + pref.String()
		case "s":
			m.status = m.shareCurrent()
		case "b":
			m.showBio = !m.showBio
			m.status = ""
		case "q", "esc", "ctrl+c":
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m viewerModel) shareCurrent() string {
	rec, ok := m.selector.Current()
	if !ok || m.onShare == nil {
		return ""
	}
	if err := m.onShare(rec); err != nil {
		return "share failed: " + err.Error()
	}
	return "share link copied to clipboard"
}

func (m viewerModel) View() tea.View {
	if m.quitting {
		return tea.View{}
	}

	width := m.width
	if width <= 0 {
		width = 80
	}
	cardWidth := width - 8
	if cardWidth > 72 {
		cardWidth = 72
	}
	if cardWidth < 20 {
		cardWidth = 20
	}

	headerStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(string(Background))).
		Background(lipgloss.Color(string(Primary))).
		Padding(0, 1).
		Bold(true)
	taglineStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(string(Secondary))).
		Italic(true)
	quoteStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(string(Foreground))).
		Italic(true).
		Width(cardWidth)
	authorStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(string(Primary))).
		Bold(true)
	bioStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(string(Muted))).
		Width(cardWidth)
	cardStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(string(Border))).
		Padding(1, 3)
	statusStyle := lipgloss.NewStyle().
		Foreground(lipgloss.Color(string(Success)))

	parts := []string{
		headerStyle.Render("GOOD MOOD"),
		taglineStyle.Render("A little encouragement on demand."),
		"",
		cardStyle.Render(m.renderCard(quoteStyle, authorStyle, bioStyle, cardWidth)),
	}
	if m.status != "" {
		parts = append(parts, statusStyle.Render(ansi.Truncate(m.status, max(10, width-2), "...")))
	}

	// Restyled per render so a theme toggle recolors the help line too.
	helpModel := m.help
	keyStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(Accent))).Bold(true)
	hintStyle := lipgloss.NewStyle().Foreground(lipgloss.Color(string(Muted)))
	helpModel.Styles.ShortKey = keyStyle
	helpModel.Styles.ShortDesc = hintStyle
	helpModel.Styles.FullKey = keyStyle
	helpModel.Styles.FullDesc = hintStyle
	helpModel.Styles.Ellipsis = hintStyle
	parts = append(parts, "", helpModel.View(m.keys))

	v := tea.NewView(lipgloss.JoinVertical(lipgloss.Left, parts...))
	v.AltScreen = true
	return v
}

func (m viewerModel) renderCard(quoteStyle, authorStyle, bioStyle lipgloss.Style, cardWidth int) string {
	rec, ok := m.selector.Current()
	if !ok {
		return quoteStyle.Render("No quotes available. Add some to your catalog file.")
	}

	lines := []string{
		quoteStyle.Render(fmt.Sprintf("“%s”", rec.Text)),
		"",
		authorStyle.Render("— " + rec.AuthorName(unknownAuthor)),
	}
	if m.showBio && rec.Author != nil && rec.Author.Bio != "" {
		lines = append(lines, bioStyle.Render(rec.Author.Bio))
	}
	if m.showBio && rec.Author != nil && rec.Author.Photo != "" {
		photo := ansi.Truncate(rec.Author.Photo, max(12, cardWidth), "...")
		lines = append(lines, bioStyle.Render(photo))
	}
	return strings.Join(lines, "\n")
}

// RunViewer displays the full-screen quote card until the user quits.
func RunViewer(opts ViewerOptions) error {
	if !IsInteractiveTerminal() {
		return fmt.Errorf("non-interactive terminal")
	}
	program := tea.NewProgram(newViewerModel(opts))
	_, err := program.Run()
	return err
}
