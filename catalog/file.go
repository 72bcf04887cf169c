package catalog

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk layout of a catalog override file.
type catalogFile struct {
	Items []Entry `yaml:"items"`
}

// LoadFile reads a catalog from a YAML file. The file replaces the
// built-in catalog entirely rather than merging with it.
func LoadFile(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}

	var cf catalogFile
	if err := yaml.Unmarshal(data, &cf); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}
	if len(cf.Items) == 0 {
		return nil, fmt.Errorf("catalog file %s contains no items", path)
	}

	for _, e := range cf.Items {
		if e.Name == "" {
			return nil, fmt.Errorf("catalog file %s: item with empty name", path)
		}
		if e.UnitPrice < 0 {
			return nil, fmt.Errorf("catalog file %s: item %q has negative unit price", path, e.Name)
		}
		if e.AvailableQuantity < 0 {
			return nil, fmt.Errorf("catalog file %s: item %q has negative quantity", path, e.Name)
		}
	}

	return New(cf.Items), nil
}
