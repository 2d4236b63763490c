// Package share builds share links for quotes
package share

import (
	"net/url"

	"github.com/atotto/clipboard"

	"github.com/upFrontEnd/good-mood-generator/internal/quote"
)

// Text returns the shareable text form of a record: the quote in quotation
// marks, with the author appended when one is known.
func Text(rec quote.Record) string {
	text := "“" + rec.Text + "”"
	if rec.Author != nil && rec.Author.Name != "" {
		text += " — " + rec.Author.Name
	}
	return text
}

// TweetURL returns an X/Twitter intent link for the record.
func TweetURL(rec quote.Record) string {
	query := url.Values{}
	query.Set("text", Text(rec))
	return "https://twitter.com/intent/tweet?" + query.Encode()
}

// MailtoURL returns a mailto link with the record as the body.
func MailtoURL(rec quote.Record) string {
	query := url.Values{}
	query.Set("subject", "A quote for you")
	query.Set("body", Text(rec))
	return "mailto:?" + query.Encode()
}

// CopyTweetURL places the tweet link on the system clipboard.
func CopyTweetURL(rec quote.Record) error {
	return clipboard.WriteAll(TweetURL(rec))
}
