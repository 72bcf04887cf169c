package catalog

import (
	"sort"
	"strings"
)

// Entry describes a rentable equipment item.
type Entry struct {
	Name              string  `json:"name" yaml:"name"`
	UnitPrice         float64 `json:"unit_price" yaml:"unit_price"`
	AvailableQuantity int     `json:"available_quantity" yaml:"available_quantity"`
}

// Catalog is the registry of rentable items. It is built once at startup
// and never mutated afterwards, so it is safe to share across requests.
type Catalog struct {
	entries map[string]Entry
}

// Default returns the built-in equipment catalog.
func Default() *Catalog {
	return New([]Entry{
		{Name: "chairs", UnitPrice: 5, AvailableQuantity: 300},
		{Name: "tables", UnitPrice: 15, AvailableQuantity: 80},
		{Name: "canopy", UnitPrice: 250, AvailableQuantity: 10},
		{Name: "sound_system", UnitPrice: 400, AvailableQuantity: 5},
		{Name: "generator", UnitPrice: 350, AvailableQuantity: 4},
	})
}

// New builds a catalog from the given entries. Entry names are lowercased;
// the lowercase name is the canonical key.
func New(entries []Entry) *Catalog {
	m := make(map[string]Entry, len(entries))
	for _, e := range entries {
		e.Name = strings.ToLower(e.Name)
		m[e.Name] = e
	}
	return &Catalog{entries: m}
}

// Lookup returns the entry for the given item name. Matching is
// case-insensitive.
func (c *Catalog) Lookup(name string) (Entry, bool) {
	e, ok := c.entries[strings.ToLower(name)]
	return e, ok
}

// Entries returns all catalog entries sorted by name.
func (c *Catalog) Entries() []Entry {
	out := make([]Entry, 0, len(c.entries))
	for _, e := range c.entries {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// Len returns the number of items in the catalog.
func (c *Catalog) Len() int {
	return len(c.entries)
}
