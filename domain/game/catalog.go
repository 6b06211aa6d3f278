package game

import (
	"fmt"
	"sort"
)

// Catalog is an immutable set of game specs keyed by id
type Catalog struct {
	specs map[string]Spec
	order []string
}

// NewCatalog builds a catalog from the given specs, validating each
func NewCatalog(specs ...Spec) (*Catalog, error) {
	c := &Catalog{specs: make(map[string]Spec, len(specs))}
	for _, s := range specs {
		if err := s.Validate(); err != nil {
			return nil, err
		}
		if _, exists := c.specs[s.ID]; exists {
			return nil, fmt.Errorf("duplicate game id %q", s.ID)
		}
		c.specs[s.ID] = s
		c.order = append(c.order, s.ID)
	}
	sort.Strings(c.order)
	return c, nil
}

// Get looks up a spec by id
func (c *Catalog) Get(id string) (Spec, bool) {
	s, ok := c.specs[id]
	return s, ok
}

// List returns all specs in deterministic id order
func (c *Catalog) List() []Spec {
	out := make([]Spec, 0, len(c.order))
	for _, id := range c.order {
		out = append(out, c.specs[id])
	}
	return out
}

// DefaultCatalog returns the shipped game variants. The 3-digit game is the
// primary, fully supported path; lotto642 exercises the combination rules.
func DefaultCatalog() *Catalog {
	c, err := NewCatalog(
		Spec{ID: "2d", Name: "EZ2 2-Digit", DigitCount: 2, MinValue: 1, MaxValue: 31, OrderSignificant: true},
		Spec{ID: "3d", Name: "Swertres 3-Digit", DigitCount: 3, MinValue: 0, MaxValue: 9, OrderSignificant: true},
		Spec{ID: "4d", Name: "4-Digit", DigitCount: 4, MinValue: 0, MaxValue: 9, OrderSignificant: true},
		Spec{ID: "lotto642", Name: "Lotto 6/42", DigitCount: 6, MinValue: 1, MaxValue: 42, OrderSignificant: false},
	)
	if err != nil {
		// Shipped specs are constants; a failure here is a build defect.
		panic(err)
	}
	return c
}
