package inventory

import (
	"fmt"

	"github.com/syrec53/AeroplaneReservation/internal/domain"
)

// Catalog is the fixed set of flights seeded at startup. It is read-only after
// construction and safe for concurrent use.
type Catalog struct {
	order []*Flight
	byID  map[string]*Flight
}

func NewCatalog(specs []domain.FlightSpec) (*Catalog, error) {
	c := &Catalog{
		order: make([]*Flight, 0, len(specs)),
		byID:  make(map[string]*Flight, len(specs)),
	}
	for _, spec := range specs {
		if _, dup := c.byID[spec.ID]; dup {
			return nil, domain.WithID(fmt.Errorf("%w: duplicate id", domain.ErrInvalidFlightSpec), spec.ID)
		}
		f, err := NewFlight(spec)
		if err != nil {
			return nil, err
		}
		c.order = append(c.order, f)
		c.byID[spec.ID] = f
	}
	return c, nil
}

func (c *Catalog) Get(id string) (*Flight, bool) {
	f, ok := c.byID[id]
	return f, ok
}

// List returns flights in seeding order.
func (c *Catalog) List() []*Flight {
	out := make([]*Flight, len(c.order))
	copy(out, c.order)
	return out
}
