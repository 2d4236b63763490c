package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/upFrontEnd/good-mood-generator/internal/theme"
	"github.com/upFrontEnd/good-mood-generator/internal/ui"
)

var themeCmd = &cobra.Command{
	Use:       "theme [light|dark|toggle]",
	Short:     "Show or change the color theme",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"light", "dark", "toggle"},
	RunE:      runTheme,
}

func runTheme(cmd *cobra.Command, args []string) error {
	if len(args) == 0 {
		pref, source := themeResolver.Resolve()
		fmt.Printf("%s (%s)\n", ui.PrimaryStyle().Render(pref.String()), ui.MutedStyle.Render(source.String()))
		return nil
	}

	// User input is forgiving; only the stored value must match verbatim.
	switch choice := strings.ToLower(strings.TrimSpace(args[0])); choice {
	case "toggle":
		next := themeResolver.Toggle()
		fmt.Println(ui.SuccessStyle.Render("Theme set to " + next.String()))
	default:
		pref, ok := theme.Parse(choice)
		if !ok {
			return fmt.Errorf("unknown theme %q (expected light, dark, or toggle)", args[0])
		}
		themeResolver.Apply(pref)
		fmt.Println(ui.SuccessStyle.Render("Theme set to " + pref.String()))
	}
	return nil
}
