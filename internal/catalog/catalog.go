package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
)

//go:embed elements.json
var elementsJSON []byte

// Catalog is the immutable, ordered collection of element records. It is
// loaded once at startup and read-only for the process lifetime; the slice
// returned by All must not be modified.
type Catalog struct {
	records []Record
}

// Load parses and validates the embedded dataset.
func Load() (*Catalog, error) {
	return LoadFrom(elementsJSON)
}

// LoadFrom builds a catalog from raw JSON, preserving entry order.
func LoadFrom(data []byte) (*Catalog, error) {
	var records []Record
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("catalog: parse dataset: %w", err)
	}
	return New(records)
}

// New builds a catalog from explicitly constructed records, preserving their
// order. Every record is validated and atomic numbers must be unique; a bad
// dataset is a startup failure, not something to limp past.
func New(records []Record) (*Catalog, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("catalog: dataset is empty")
	}

	seen := make(map[int]string, len(records))
	for i := range records {
		rec := &records[i]
		if err := rec.Validate(); err != nil {
			return nil, fmt.Errorf("catalog: entry %d: %w", i, err)
		}
		if prev, dup := seen[rec.AtomicNumber]; dup {
			return nil, fmt.Errorf("catalog: atomicNumber %d shared by %q and %q", rec.AtomicNumber, prev, rec.Name)
		}
		seen[rec.AtomicNumber] = rec.Name
	}

	return &Catalog{records: records}, nil
}

// All returns the records in catalog order. Read-only.
func (c *Catalog) All() []Record {
	return c.records
}

// Len returns the number of records.
func (c *Catalog) Len() int {
	return len(c.records)
}

// First returns the first catalog entry.
func (c *Catalog) First() Record {
	return c.records[0]
}
