package suggest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// ErrInvalidCatalog is returned for catalogs with missing or duplicate values.
var ErrInvalidCatalog = errors.New("invalid catalog")

// Catalog is the full, read-only list of suggestions.
type Catalog []Item

// catalogFile is the on-disk layout of a catalog file.
type catalogFile struct {
	Items []Item `yaml:"items" toml:"items"`
}

// Validate checks that every item has a unique, non-empty value.
func (c Catalog) Validate() error {
	seen := make(map[string]int, len(c))
	var errs []error
	for idx, item := range c {
		if item.Value == "" {
			errs = append(errs, fmt.Errorf("%w: item %d has no value", ErrInvalidCatalog, idx))
			continue
		}
		if prev, ok := seen[item.Value]; ok {
			errs = append(errs, fmt.Errorf("%w: value %q repeated at items %d and %d",
				ErrInvalidCatalog, item.Value, prev, idx))
			continue
		}
		seen[item.Value] = idx
	}
	return errors.Join(errs...)
}

// Lookup returns the item with the given value.
func (c Catalog) Lookup(value string) (Item, bool) {
	for _, item := range c {
		if item.Value == value {
			return item, true
		}
	}
	return Item{}, false
}

// Values returns every item value in catalog order.
func (c Catalog) Values() []string {
	out := make([]string, len(c))
	for idx, item := range c {
		out[idx] = item.Value
	}
	return out
}

// LoadCatalog reads a catalog file. The format is chosen by extension:
// .toml is decoded as TOML; .yaml, .yml and .json as YAML.
func LoadCatalog(path string) (Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read catalog: %w", err)
	}

	catalog, err := ParseCatalog(data, filepath.Ext(path))
	if err != nil {
		return nil, fmt.Errorf("parse catalog %s: %w", path, err)
	}
	return catalog, nil
}

// ParseCatalog decodes catalog data. ext selects the decoder as in LoadCatalog.
// A bare top-level list of items is accepted for YAML and JSON.
func ParseCatalog(data []byte, ext string) (Catalog, error) {
	var file catalogFile

	switch strings.ToLower(ext) {
	case ".toml":
		if _, err := toml.Decode(string(data), &file); err != nil {
			return nil, fmt.Errorf("decode toml: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &file); err != nil {
			var items []Item
			if listErr := yaml.Unmarshal(data, &items); listErr != nil {
				return nil, fmt.Errorf("decode yaml: %w", err)
			}
			file.Items = items
		}
	}

	catalog := Catalog(file.Items)
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return catalog, nil
}
