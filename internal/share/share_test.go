package share

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/upFrontEnd/good-mood-generator/internal/quote"
)

func TestText(t *testing.T) {
	rec := quote.Record{Text: "Keep going", Author: &quote.Author{Name: "Ada"}}
	assert.Equal(t, "“Keep going” — Ada", Text(rec))

	assert.Equal(t, "“Keep going”", Text(quote.Record{Text: "Keep going"}))
	assert.Equal(t, "“Keep going”", Text(quote.Record{Text: "Keep going", Author: &quote.Author{}}))
}

func TestTweetURL(t *testing.T) {
	rec := quote.Record{Text: "Light tomorrow with today", Author: &quote.Author{Name: "E. B. Browning"}}

	raw := TweetURL(rec)
	require.True(t, strings.HasPrefix(raw, "https://twitter.com/intent/tweet?"))

	parsed, err := url.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, Text(rec), parsed.Query().Get("text"))
}

func TestMailtoURL(t *testing.T) {
	rec := quote.Record{Text: "Hello"}

	parsed, err := url.Parse(MailtoURL(rec))
	require.NoError(t, err)
	assert.Equal(t, "mailto", parsed.Scheme)
	assert.Equal(t, Text(rec), parsed.Query().Get("body"))
	assert.NotEmpty(t, parsed.Query().Get("subject"))
}
