package catalog

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLookupCaseInsensitive(t *testing.T) {
	cat := Default()

	for _, name := range []string{"chairs", "Chairs", "CHAIRS", "cHaIrS"} {
		entry, ok := cat.Lookup(name)
		if !ok {
			t.Fatalf("Lookup(%q) failed, want hit", name)
		}
		if entry.Name != "chairs" {
			t.Errorf("Lookup(%q) returned entry %q, want chairs", name, entry.Name)
		}
		if entry.UnitPrice != 5 {
			t.Errorf("Lookup(%q) unit price = %v, want 5", name, entry.UnitPrice)
		}
	}
}

func TestLookupUnknownItem(t *testing.T) {
	cat := Default()

	if _, ok := cat.Lookup("drone"); ok {
		t.Fatal("Lookup(drone) succeeded, want miss")
	}
}

func TestDefaultCatalogContents(t *testing.T) {
	cat := Default()

	if cat.Len() != 5 {
		t.Fatalf("default catalog has %d items, want 5", cat.Len())
	}

	entry, ok := cat.Lookup("sound_system")
	if !ok {
		t.Fatal("sound_system missing from default catalog")
	}
	if entry.UnitPrice != 400 || entry.AvailableQuantity != 5 {
		t.Errorf("sound_system = %+v, want price 400 quantity 5", entry)
	}
}

func TestEntriesSorted(t *testing.T) {
	cat := Default()

	entries := cat.Entries()
	if len(entries) != 5 {
		t.Fatalf("Entries returned %d items, want 5", len(entries))
	}
	for i := 1; i < len(entries); i++ {
		if entries[i-1].Name >= entries[i].Name {
			t.Fatalf("Entries not sorted: %q before %q", entries[i-1].Name, entries[i].Name)
		}
	}
}

func TestNewLowercasesNames(t *testing.T) {
	cat := New([]Entry{{Name: "Stage_Lights", UnitPrice: 120, AvailableQuantity: 8}})

	entry, ok := cat.Lookup("stage_lights")
	if !ok {
		t.Fatal("Lookup(stage_lights) failed after New with mixed-case name")
	}
	if entry.Name != "stage_lights" {
		t.Errorf("entry name = %q, want stage_lights", entry.Name)
	}
}

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write catalog file: %v", err)
	}
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeCatalogFile(t, `
items:
  - name: Chairs
    unit_price: 7
    available_quantity: 100
  - name: stage
    unit_price: 500
    available_quantity: 2
`)

	cat, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile failed: %v", err)
	}
	if cat.Len() != 2 {
		t.Fatalf("loaded %d items, want 2", cat.Len())
	}

	entry, ok := cat.Lookup("CHAIRS")
	if !ok {
		t.Fatal("chairs missing from loaded catalog")
	}
	if entry.UnitPrice != 7 {
		t.Errorf("chairs unit price = %v, want 7", entry.UnitPrice)
	}
}

func TestLoadFileRejectsNegativePrice(t *testing.T) {
	path := writeCatalogFile(t, `
items:
  - name: chairs
    unit_price: -1
    available_quantity: 10
`)

	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for negative unit price")
	}
}

func TestLoadFileRejectsEmpty(t *testing.T) {
	path := writeCatalogFile(t, "items: []\n")

	if _, err := LoadFile(path); err == nil {
		t.Fatal("expected error for empty catalog file")
	}
}

func TestLoadFileMissing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Fatal("expected error for missing catalog file")
	}
}
