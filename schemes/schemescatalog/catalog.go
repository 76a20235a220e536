package schemescatalog

import (
	"fmt"
	"strings"

	"oss.terrastruct.com/colorschemes/lib/color"
	"oss.terrastruct.com/colorschemes/schemes"
)

// Registry is built while the package initializes. Malformed literals panic
// here, before any caller can observe a partial catalog.
var Registry = schemes.MustNewRegistry(Definitions())

// Definitions returns the raw catalog in declaration order.
func Definitions() []schemes.Definition {
	defs := make([]schemes.Definition, 0, len(Office)+len(Tableau))
	defs = append(defs, Office...)
	defs = append(defs, Tableau...)
	return defs
}

func Find(id string) (schemes.Palette, error) {
	return Registry.Find(id)
}

func Lookup(category schemes.Category, id string) (schemes.Palette, error) {
	return Registry.Lookup(category, id)
}

func Colors(id string) ([]color.Color, error) {
	return Registry.Colors(id)
}

func Category(id string) (schemes.Category, error) {
	return Registry.Category(id)
}

func IDs(categories ...schemes.Category) []string {
	return Registry.IDs(categories...)
}

func CLIString(categories ...schemes.Category) string {
	var s strings.Builder
	for _, p := range Registry.Palettes(categories...) {
		s.WriteString(fmt.Sprintf("- %s (%s): %d colors\n", p.ID, p.Category, len(p.Colors)))
	}
	return s.String()
}
