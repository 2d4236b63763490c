package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/upFrontEnd/good-mood-generator/internal/quote"
	"github.com/upFrontEnd/good-mood-generator/internal/share"
	"github.com/upFrontEnd/good-mood-generator/internal/ui"
)

var shareCopy bool

var shareCmd = &cobra.Command{
	Use:   "share",
	Short: "Print share links for a random quote",
	RunE:  runShare,
}

func init() {
	shareCmd.Flags().BoolVar(&shareCopy, "copy", false, "Copy the tweet link to the clipboard")
	shareCmd.Flags().Int64Var(&quoteSeed, "seed", 0, "Seed for the random pick")
	_ = shareCmd.Flags().MarkHidden("seed")
}

func runShare(cmd *cobra.Command, args []string) error {
	selector := newSelector(quoteSeed, quote.WithRandomStart())
	rec, ok := selector.Current()
	if !ok {
		fmt.Println(ui.MutedStyle.Render("No quotes available to share."))
		return nil
	}

	printQuote(rec, true)
	fmt.Println()
	fmt.Println(ui.MutedStyle.Render("tweet: ") + share.TweetURL(rec))
	fmt.Println(ui.MutedStyle.Render("mail:  ") + share.MailtoURL(rec))

	if !shareCopy {
		fmt.Println(ui.HintStyle.Render("Run with --copy to put the tweet link on your clipboard"))
		return nil
	}
	if err := share.CopyTweetURL(rec); err != nil {
		return fmt.Errorf("copying share link: %w", err)
	}
	fmt.Println(ui.SuccessStyle.Render("Tweet link copied to clipboard"))
	return nil
}
