package bondstore

import "github.com/seenimoa/yieldspread/pkg/models"

// BondTable maps identifiers to bonds of a single category and remembers the
// order in which identifiers were first seen.
type BondTable struct {
	category models.BondCategory
	order    []string
	byID     map[string]models.BondRecord
}

// NewBondTable returns an empty table for the given category.
func NewBondTable(category models.BondCategory) *BondTable {
	return &BondTable{
		category: category,
		byID:     make(map[string]models.BondRecord),
	}
}

// Category returns the category every record in the table belongs to.
func (t *BondTable) Category() models.BondCategory { return t.category }

// Put stores r under its identifier. A repeated identifier overwrites the
// earlier values but keeps its original position; replaced reports that case.
func (t *BondTable) Put(r models.BondRecord) (replaced bool) {
	r.Category = t.category
	if _, ok := t.byID[r.ID]; ok {
		t.byID[r.ID] = r
		return true
	}
	t.byID[r.ID] = r
	t.order = append(t.order, r.ID)
	return false
}

// Get looks up a bond by identifier.
func (t *BondTable) Get(id string) (models.BondRecord, bool) {
	r, ok := t.byID[id]
	return r, ok
}

// Len returns the number of distinct identifiers.
func (t *BondTable) Len() int { return len(t.order) }

// Records returns the bonds in first-seen order.
func (t *BondTable) Records() []models.BondRecord {
	out := make([]models.BondRecord, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.byID[id])
	}
	return out
}
