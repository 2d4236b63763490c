package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/upFrontEnd/good-mood-generator/internal/config"
	"github.com/upFrontEnd/good-mood-generator/internal/quote"
	"github.com/upFrontEnd/good-mood-generator/internal/share"
	"github.com/upFrontEnd/good-mood-generator/internal/theme"
	"github.com/upFrontEnd/good-mood-generator/internal/ui"
)

var (
	verbose bool
	quiet   bool
	noColor bool
	cfgFile string

	cfgPath       string
	logger        *log.Logger
	cfg           *config.Config
	themeResolver *theme.Resolver
)

var rootCmd = &cobra.Command{
	Use:   "goodmood",
	Short: "Display a random good-mood quote",
	Long: `goodmood shows a random uplifting quote with its author,
remembers whether you prefer a light or dark look, and builds
share links for the quotes you like.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogger()

		if cmd.Name() == "version" || cmd.Name() == "help" {
			cfg = config.DefaultConfig()
			return nil
		}

		resolveConfigPath()

		var err error
		cfg, err = config.Load(cfgPath)
		if err != nil {
			logger.Warn("could not load config, using defaults", "error", err)
			cfg = config.DefaultConfig()
		}

		themeResolver = newThemeResolver()
		pref := themeResolver.ResolveInitial()
		applyUISettings(pref)
		setupLogger()

		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 0 {
			return cmd.Help()
		}
		if !ui.IsInteractiveTerminal() {
			return runQuote(quoteCmd, nil)
		}
		return ui.RunViewer(ui.ViewerOptions{
			Selector: newSelector(0),
			Resolver: themeResolver,
			OnShare:  share.CopyTweetURL,
		})
	},
}

// Execute runs the root command.
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, ui.ErrorStyle.Render("Error: "+err.Error()))
		return err
	}
	return nil
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (default: ~/.config/goodmood/goodmood.yaml)")

	rootCmd.AddCommand(quoteCmd)
	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(themeCmd)
	rootCmd.AddCommand(settingsCmd)
	rootCmd.AddCommand(versionCmd)
}

func resolveConfigPath() {
	if cfgFile != "" {
		cfgPath = cfgFile
		return
	}
	path, err := config.DefaultPath()
	if err != nil {
		logger.Warn("could not locate config directory, preferences will not persist", "error", err)
		cfgPath = ""
		return
	}
	cfgPath = path
}

// newThemeResolver builds the session resolver: preference from the config
// file, then the terminal background, then light. The terminal hint is only
// wired up when there is a terminal to ask.
func newThemeResolver() *theme.Resolver {
	var store theme.Store
	if cfgPath != "" {
		store = config.NewPreferenceStore(cfgPath)
	}
	opts := []theme.ResolverOption{
		theme.WithApplyHook(func(pref theme.Preference) {
			ui.ApplyTheme(pref.String(), cfg.UI.NoColor || noColor)
		}),
		theme.WithLogger(logger),
	}
	if ui.IsInteractiveTerminal() {
		opts = append(opts, theme.WithDarkHint(lipgloss.HasDarkBackground))
	}
	return theme.NewResolver(store, opts...)
}

func applyUISettings(pref theme.Preference) {
	ui.ApplyPreferences(ui.Preferences{
		Theme:   pref.String(),
		Dense:   cfg.UI.Dense,
		NoColor: cfg.UI.NoColor || noColor,
		ShowBio: cfg.UI.ShowBio,
	})
}

// newSelector loads the catalog and wraps it in a selector. A non-zero seed
// makes selection deterministic for scripting.
func newSelector(seed int64, opts ...quote.SelectorOption) *quote.Selector {
	records, err := quote.Catalog(cfg.Quotes.File)
	if err != nil {
		logger.Warn("could not load extra quotes", "error", err)
	}
	if seed != 0 {
		opts = append(opts, quote.WithRand(rand.New(rand.NewSource(seed))))
	}
	return quote.NewSelector(records, opts...)
}

func printQuote(rec quote.Record, ok bool) {
	if !ok {
		fmt.Println(ui.MutedStyle.Render("No quotes available. Add some to your catalog file."))
		return
	}
	lines := []string{
		ui.QuoteStyle.Render("“" + rec.Text + "”"),
		ui.AuthorStyle.Render("— " + rec.AuthorName("Unknown author")),
	}
	if cfg.UI.ShowBio && rec.Author != nil && rec.Author.Bio != "" {
		lines = append(lines, ui.BioStyle.Render(rec.Author.Bio))
	}
	fmt.Println(ui.QuoteBox.Render(strings.Join(lines, "\n")))
}

func setupLogger() {
	level := log.InfoLevel
	if verbose {
		level = log.DebugLevel
	}
	if quiet {
		level = log.WarnLevel
	}

	styles := log.DefaultStyles()
	if !noColor && os.Getenv("NO_COLOR") == "" {
		styles.Levels[log.DebugLevel] = lipgloss.NewStyle().
			SetString("DEBUG").
			Foreground(ui.Muted).
			Bold(true)
		styles.Levels[log.InfoLevel] = lipgloss.NewStyle().
			SetString("INFO").
			Foreground(ui.Primary).
			Bold(true)
		styles.Levels[log.WarnLevel] = lipgloss.NewStyle().
			SetString("WARN").
			Foreground(ui.Warning).
			Bold(true)
		styles.Levels[log.ErrorLevel] = lipgloss.NewStyle().
			SetString("ERROR").
			Foreground(ui.Error).
			Bold(true)
	}

	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: verbose,
		TimeFormat:      time.Kitchen,
		Level:           level,
	})
	logger.SetStyles(styles)
}
