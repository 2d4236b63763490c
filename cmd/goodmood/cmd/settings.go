package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/upFrontEnd/good-mood-generator/internal/config"
	"github.com/upFrontEnd/good-mood-generator/internal/ui"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Configure theme and display preferences",
	RunE:  runSettings,
}

func runSettings(cmd *cobra.Command, args []string) error {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}

	themeChoice := themeResolver.Current().String()
	dense := cfg.UI.Dense
	noColorPref := cfg.UI.NoColor
	showBio := cfg.UI.ShowBio
	quotesFile := cfg.Quotes.File

	themeOptions := make([]huh.Option[string], 0, len(ui.ThemeNames()))
	for _, name := range ui.ThemeNames() {
		themeOptions = append(themeOptions, huh.NewOption(name, name))
	}

	ui.StartScreen("SETTINGS", "Tune how goodmood looks")

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Description("Light or dark color palette").
				Options(themeOptions...).
				Value(&themeChoice),
			huh.NewConfirm().
				Title("Dense Layout").
				Description("Reduce vertical spacing").
				Value(&dense),
			huh.NewConfirm().
				Title("Disable Colors").
				Description("Use monochrome output").
				Value(&noColorPref),
			huh.NewConfirm().
				Title("Show Author Bio").
				Description("Display the author's bio and photo link under quotes").
				Value(&showBio),
			huh.NewInput().
				Title("Extra Quotes File").
				Description("Optional yaml catalog merged with the built-in quotes").
				Placeholder("~/quotes.yaml").
				Value(&quotesFile).
				Validate(func(value string) error {
					if value == "" {
						return nil
					}
					if _, err := os.Stat(value); err != nil {
						return fmt.Errorf("file not found")
					}
					return nil
				}),
		),
	).WithTheme(ui.HuhTheme())

	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}

	cfg.UI = config.UIConfig{
		Theme:   themeChoice,
		Dense:   dense,
		NoColor: noColorPref,
		ShowBio: showBio,
	}
	cfg.Quotes.File = quotesFile

	if cfgPath == "" {
		return fmt.Errorf("no config path available, settings cannot be saved")
	}
	if err := cfg.Save(cfgPath); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	ui.ApplyPreferences(ui.Preferences{
		Theme:   themeChoice,
		Dense:   dense,
		NoColor: noColorPref || noColor,
		ShowBio: showBio,
	})

	fmt.Println()
	fmt.Println(ui.SuccessBox.Render("Settings saved to " + cfgPath))
	return nil
}
