package quote

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalog_BuiltIn(t *testing.T) {
	records, err := Catalog("")
	require.NoError(t, err)
	require.NotEmpty(t, records)

	for _, rec := range records {
		assert.NotEmpty(t, rec.Text)
	}
}

func TestCatalog_UserFileMergedOnTop(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quotes.yaml")
	data := `quotes:
  - text: "user quote one"
    author:
      name: "Someone"
  - text: ""
  - text: "user quote two"
`
	require.NoError(t, os.WriteFile(path, []byte(data), 0o644))

	builtin, err := Catalog("")
	require.NoError(t, err)

	records, err := Catalog(path)
	require.NoError(t, err)

	// The empty-text entry is skipped, the rest land after the built-ins.
	require.Len(t, records, len(builtin)+2)
	assert.Equal(t, "user quote one", records[len(builtin)].Text)
	assert.Equal(t, "Someone", records[len(builtin)].Author.Name)
	assert.Nil(t, records[len(builtin)+1].Author)
}

func TestCatalog_MissingUserFileKeepsBuiltIns(t *testing.T) {
	records, err := Catalog(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
	assert.NotEmpty(t, records)
}

func TestCatalog_MalformedUserFileKeepsBuiltIns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "broken.yaml")
	require.NoError(t, os.WriteFile(path, []byte("quotes: {not a list"), 0o644))

	records, err := Catalog(path)
	assert.Error(t, err)
	assert.NotEmpty(t, records)
}

func TestParseCatalog_OptionalAuthorFields(t *testing.T) {
	data := `quotes:
  - text: "full"
    author:
      name: "Name"
      bio: "Bio"
      photo: "https://example.com/p.jpg"
  - text: "name only"
    author:
      name: "Name"
  - text: "no author"
`
	records, err := parseCatalog([]byte(data))
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "Bio", records[0].Author.Bio)
	assert.Equal(t, "https://example.com/p.jpg", records[0].Author.Photo)
	assert.Empty(t, records[1].Author.Bio)
	assert.Nil(t, records[2].Author)
}
