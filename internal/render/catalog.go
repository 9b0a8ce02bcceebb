package render

import (
	"fmt"
	"sort"

	"github.com/alexgh05/ITEC-Project-sub000/internal/culture"
)

// Catalog maps cultures to programs. It is immutable after construction.
type Catalog struct {
	programs map[culture.ID]RenderFunc
	fallback RenderFunc
}

// NewCatalog builds a catalog from programs, which must contain an entry for
// culture.Default.
func NewCatalog(programs map[culture.ID]RenderFunc) (*Catalog, error) {
	def, ok := programs[culture.Default]
	if !ok || def == nil {
		return nil, ErrNoDefault
	}
	c := &Catalog{
		programs: make(map[culture.ID]RenderFunc, len(programs)),
		fallback: def,
	}
	for id, fn := range programs {
		if fn == nil {
			return nil, fmt.Errorf("render: nil program for %s", id)
		}
		c.programs[id] = fn
	}
	return c, nil
}

// Resolve returns the program for id, or the default program when id has no
// entry of its own.
func (c *Catalog) Resolve(id culture.ID) RenderFunc {
	fn, _ := c.Lookup(id)
	return fn
}

// Lookup is Resolve that also reports whether id had its own entry.
func (c *Catalog) Lookup(id culture.ID) (RenderFunc, bool) {
	if fn, ok := c.programs[id]; ok {
		return fn, true
	}
	return c.fallback, false
}

func (c *Catalog) Has(id culture.ID) bool {
	_, ok := c.programs[id]
	return ok
}

// IDs lists registered cultures, default first, the rest sorted.
func (c *Catalog) IDs() []culture.ID {
	out := make([]culture.ID, 0, len(c.programs))
	for id := range c.programs {
		if id != culture.Default {
			out = append(out, id)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return append([]culture.ID{culture.Default}, out...)
}
