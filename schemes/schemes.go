// schemes defines color schemes for charts: ordered palettes grouped by category.
// Colors are assigned to datasets in palette order.
package schemes

import (
	"fmt"
	"strings"

	"oss.terrastruct.com/colorschemes/lib/color"
	"oss.terrastruct.com/colorschemes/lib/go2"
)

type Category string

const (
	Office  Category = "office"
	Tableau Category = "tableau"
)

var Categories = []Category{
	Office,
	Tableau,
}

func ParseCategory(s string) (Category, error) {
	norm := strings.ToLower(strings.TrimSpace(s))
	for _, c := range Categories {
		if string(c) == norm {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown category %q", s)
}

func (c Category) Valid() bool {
	for _, c2 := range Categories {
		if c == c2 {
			return true
		}
	}
	return false
}

// Definition is the literal form of a palette from which a Registry is built.
type Definition struct {
	ID       string
	Category Category
	Colors   []string
}

type Palette struct {
	ID       string        `json:"id"`
	Category Category      `json:"category"`
	Colors   []color.Color `json:"colors"`
}

// ColorAt returns the color for dataset i, cycling through the palette.
// An empty palette yields the zero Color.
func (p Palette) ColorAt(i int) color.Color {
	n := len(p.Colors)
	if n == 0 {
		return color.Color{}
	}
	i %= n
	if i < 0 {
		i += n
	}
	return p.Colors[i]
}

func (p Palette) Hex() []string {
	return go2.Map(p.Colors, color.Color.Hex)
}

func (p Palette) clone() Palette {
	p.Colors = append([]color.Color(nil), p.Colors...)
	return p
}
