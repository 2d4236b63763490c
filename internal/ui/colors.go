package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Palette defines the TUI color palette.
type Palette struct {
	Name       string
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Info       lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Foreground lipgloss.Color
	Border     lipgloss.Color
	Highlight  lipgloss.Color
	Disabled   bool
}

const defaultThemeName = "light"

// Active palette colors. Reassigned by ApplyPalette; read by the styles and
// the viewer.
var (
	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Accent     lipgloss.Color
	Info       lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Muted      lipgloss.Color
	Background lipgloss.Color
	Foreground lipgloss.Color
	Border     lipgloss.Color
	Highlight  lipgloss.Color

	activePalette Palette
)

func init() {
	ApplyPalette(DefaultPalette())
}

// ThemeNames returns supported palette names.
func ThemeNames() []string {
	return []string{"light", "dark"}
}

// PaletteByName returns a palette by theme name.
func PaletteByName(name string) Palette {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "dark":
		return Palette{
			Name:       "dark",
			Primary:    lipgloss.Color("#FACC15"),
			Secondary:  lipgloss.Color("#A78BFA"),
			Accent:     lipgloss.Color("#38BDF8"),
			Info:       lipgloss.Color("#60A5FA"),
			Success:    lipgloss.Color("#34D399"),
			Warning:    lipgloss.Color("#FBBF24"),
			Error:      lipgloss.Color("#F87171"),
			Muted:      lipgloss.Color("#94A3B8"),
			Background: lipgloss.Color("#0B1120"),
			Foreground: lipgloss.Color("#E2E8F0"),
			Border:     lipgloss.Color("#334155"),
			Highlight:  lipgloss.Color("#FDE68A"),
		}
	default:
		return Palette{
			Name:       "light",
			Primary:    lipgloss.Color("#B45309"),
			Secondary:  lipgloss.Color("#7C3AED"),
			Accent:     lipgloss.Color("#0284C7"),
			Info:       lipgloss.Color("#2563EB"),
			Success:    lipgloss.Color("#059669"),
			Warning:    lipgloss.Color("#D97706"),
			Error:      lipgloss.Color("#DC2626"),
			Muted:      lipgloss.Color("#6B7280"),
			Background: lipgloss.Color("#FDF6E3"),
			Foreground: lipgloss.Color("#1F2937"),
			Border:     lipgloss.Color("#D1BFA3"),
			Highlight:  lipgloss.Color("#92400E"),
		}
	}
}

// DefaultPalette returns the default theme palette.
func DefaultPalette() Palette {
	return PaletteByName(defaultThemeName)
}

// ApplyPalette switches the active colors and rebuilds the shared styles.
func ApplyPalette(p Palette) {
	activePalette = p
	Primary = p.Primary
	Secondary = p.Secondary
	Accent = p.Accent
	Info = p.Info
	Success = p.Success
	Warning = p.Warning
	Error = p.Error
	Muted = p.Muted
	Background = p.Background
	Foreground = p.Foreground
	Border = p.Border
	Highlight = p.Highlight
	rebuildStyles(p)
}
