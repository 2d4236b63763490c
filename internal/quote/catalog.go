package quote

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed quotes.yaml
var embeddedCatalog []byte

type catalogFile struct {
	Quotes []Record `yaml:"quotes"`
}

// Catalog returns the built-in quote collection, optionally extended with
// records from userPath. Records with empty text are dropped so selection
// never has to care about them; other missing fields are left for the
// presentation layer to fall back on.
func Catalog(userPath string) ([]Record, error) {
	records, err := parseCatalog(embeddedCatalog)
	if err != nil {
		return nil, fmt.Errorf("parsing built-in catalog: %w", err)
	}

	if userPath == "" {
		return records, nil
	}

	data, err := os.ReadFile(userPath)
	if err != nil {
		return records, fmt.Errorf("reading catalog %s: %w", userPath, err)
	}
	extra, err := parseCatalog(data)
	if err != nil {
		return records, fmt.Errorf("parsing catalog %s: %w", userPath, err)
	}
	return append(records, extra...), nil
}

func parseCatalog(data []byte) ([]Record, error) {
	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, err
	}
	records := make([]Record, 0, len(file.Quotes))
	for _, rec := range file.Quotes {
		if rec.Text == "" {
			continue
		}
		records = append(records, rec)
	}
	return records, nil
}
