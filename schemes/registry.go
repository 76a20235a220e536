package schemes

import (
	"fmt"

	"oss.terrastruct.com/colorschemes/lib/color"
	"oss.terrastruct.com/colorschemes/lib/go2"
)

// Registry is an immutable table of palettes keyed by identifier.
// It is safe for concurrent use since nothing mutates it after NewRegistry.
type Registry struct {
	palettes []Palette
	index    map[string]int
}

// NewRegistry parses every definition up front. Any malformed entry fails the
// whole registry.
func NewRegistry(defs []Definition) (*Registry, error) {
	r := &Registry{
		palettes: make([]Palette, 0, len(defs)),
		index:    make(map[string]int, len(defs)),
	}
	for _, def := range defs {
		if def.ID == "" {
			return nil, fmt.Errorf("color scheme %d has no identifier", len(r.palettes))
		}
		if _, ok := r.index[def.ID]; ok {
			return nil, fmt.Errorf("duplicate color scheme %q", def.ID)
		}
		if !def.Category.Valid() {
			return nil, fmt.Errorf("color scheme %q: unknown category %q", def.ID, def.Category)
		}
		if len(def.Colors) == 0 {
			return nil, fmt.Errorf("color scheme %q has no colors", def.ID)
		}

		p := Palette{
			ID:       def.ID,
			Category: def.Category,
			Colors:   make([]color.Color, len(def.Colors)),
		}
		for i, lit := range def.Colors {
			c, err := color.Parse(lit)
			if err != nil {
				return nil, &MalformedColorError{
					ID:      def.ID,
					Index:   i,
					Literal: lit,
					Err:     err,
				}
			}
			p.Colors[i] = c
		}

		r.index[def.ID] = len(r.palettes)
		r.palettes = append(r.palettes, p)
	}
	return r, nil
}

func MustNewRegistry(defs []Definition) *Registry {
	r, err := NewRegistry(defs)
	if err != nil {
		panic(fmt.Sprintf("failed to build color scheme registry: %v", err))
	}
	return r
}

func (r *Registry) Len() int {
	return len(r.palettes)
}

func (r *Registry) find(id string) (Palette, bool) {
	i, ok := r.index[id]
	if !ok {
		return Palette{}, false
	}
	return r.palettes[i], true
}

// Find returns a copy of the palette registered under id.
func (r *Registry) Find(id string) (Palette, error) {
	p, ok := r.find(id)
	if !ok {
		return Palette{}, &NotFoundError{ID: id}
	}
	return p.clone(), nil
}

// Lookup is Find scoped to a category.
func (r *Registry) Lookup(category Category, id string) (Palette, error) {
	p, ok := r.find(id)
	if !ok || p.Category != category {
		return Palette{}, &NotFoundError{ID: id, Category: category}
	}
	return p.clone(), nil
}

// Colors returns the ordered colors of the palette. The slice is the caller's.
func (r *Registry) Colors(id string) ([]color.Color, error) {
	p, err := r.Find(id)
	if err != nil {
		return nil, err
	}
	return p.Colors, nil
}

func (r *Registry) Category(id string) (Category, error) {
	p, ok := r.find(id)
	if !ok {
		return "", &NotFoundError{ID: id}
	}
	return p.Category, nil
}

// IDs lists identifiers in declaration order. Without categories every
// identifier is listed.
func (r *Registry) IDs(categories ...Category) []string {
	ps := r.filter(categories)
	ids := make([]string, len(ps))
	for i, p := range ps {
		ids[i] = p.ID
	}
	return ids
}

func (r *Registry) Palettes(categories ...Category) []Palette {
	ps := r.filter(categories)
	out := make([]Palette, len(ps))
	for i, p := range ps {
		out[i] = p.clone()
	}
	return out
}

// Categories returns the categories with at least one palette, in the order
// they were first declared.
func (r *Registry) Categories() []Category {
	var out []Category
	for _, p := range r.palettes {
		if !go2.Contains(out, p.Category) {
			out = append(out, p.Category)
		}
	}
	return out
}

func (r *Registry) filter(categories []Category) []Palette {
	if len(categories) == 0 {
		return r.palettes
	}
	return go2.Filter(r.palettes, func(p Palette) bool {
		return go2.Contains(categories, p.Category)
	})
}
