package schemescatalog_test

import (
	"errors"
	"strings"
	"testing"

	"oss.terrastruct.com/util-go/assert"

	"oss.terrastruct.com/colorschemes/schemes"
	"oss.terrastruct.com/colorschemes/schemes/schemescatalog"
)

func TestCatalog(t *testing.T) {
	t.Parallel()

	defs := schemescatalog.Definitions()
	assert.Equal(t, len(defs), schemescatalog.Registry.Len())

	for _, def := range defs {
		def := def
		t.Run(def.ID, func(t *testing.T) {
			t.Parallel()

			colors, err := schemescatalog.Colors(def.ID)
			assert.Success(t, err)
			assert.Equal(t, len(def.Colors), len(colors))
			assert.True(t, len(colors) >= 5)
			for i, c := range colors {
				assert.Equal(t, strings.ToLower(def.Colors[i]), c.Hex())
				assert.Equal(t, uint8(0xff), c.A)
			}

			again, err := schemescatalog.Colors(def.ID)
			assert.Success(t, err)
			assert.Equal(t, len(colors), len(again))
			for i := range colors {
				assert.Equal(t, colors[i], again[i])
			}

			cat, err := schemescatalog.Category(def.ID)
			assert.Success(t, err)
			assert.Equal(t, def.Category, cat)

			p, err := schemescatalog.Lookup(def.Category, def.ID)
			assert.Success(t, err)
			assert.Equal(t, def.ID, p.ID)
		})
	}
}

func TestCatalogPartition(t *testing.T) {
	t.Parallel()

	office := schemescatalog.IDs(schemes.Office)
	tableau := schemescatalog.IDs(schemes.Tableau)
	all := schemescatalog.IDs()

	assert.Equal(t, len(schemescatalog.Office), len(office))
	assert.Equal(t, len(schemescatalog.Tableau), len(tableau))
	assert.Equal(t, len(all), len(office)+len(tableau))

	seen := make(map[string]bool)
	for _, id := range office {
		cat, err := schemescatalog.Category(id)
		assert.Success(t, err)
		assert.Equal(t, schemes.Office, cat)
		seen[id] = true
	}
	for _, id := range tableau {
		cat, err := schemescatalog.Category(id)
		assert.Success(t, err)
		assert.Equal(t, schemes.Tableau, cat)
		assert.True(t, !seen[id])
		seen[id] = true
	}
	for _, id := range all {
		assert.True(t, seen[id])
	}

	// Declaration order.
	assert.Equal(t, "Adjacency6", all[0])
	assert.Equal(t, "YellowOrange6", office[len(office)-1])
	assert.Equal(t, "Tableau10", tableau[0])
	assert.Equal(t, "Tableau10", all[len(office)])
	assert.Equal(t, "ClassicRedGreenLight11", all[len(all)-1])
}

func TestPinned(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		id    string
		cat   schemes.Category
		n     int
		first string
		last  string
	}{
		{id: "Adjacency6", cat: schemes.Office, n: 6, first: "#a9a57c", last: "#b1a089"},
		{id: "Excel16", cat: schemes.Office, n: 16, first: "#9999ff", last: "#0000ff"},
		{id: "SOHO6", cat: schemes.Office, n: 6, first: "#61625e", last: "#ad7d4d"},
		{id: "WoodType6", cat: schemes.Office, n: 6, first: "#d34817", last: "#855d5d"},
		{id: "Tableau20", cat: schemes.Tableau, n: 20, first: "#4e79a7", last: "#d7b5a6"},
		{id: "HueCircle19", cat: schemes.Tableau, n: 19, first: "#1ba3c6", last: "#4f7cba"},
		{id: "OrangeBlue7", cat: schemes.Tableau, n: 7, first: "#9e3d22", last: "#2b5c8a"},
		{id: "Blue20", cat: schemes.Tableau, n: 20, first: "#b9ddf1", last: "#2a5783"},
		{id: "RedGold21", cat: schemes.Tableau, n: 21, first: "#f4d166", last: "#b71d3e"},
		{id: "ClassicGray13", cat: schemes.Tableau, n: 13, first: "#c3c3c3", last: "#1e1e1e"},
		{id: "ClassicAreaRedGreen21", cat: schemes.Tableau, n: 21, first: "#bd1100", last: "#4a8c1c"},
		{id: "ClassicRedWhiteGreen11", cat: schemes.Tableau, n: 11, first: "#9c0824", last: "#09622a"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.id, func(t *testing.T) {
			t.Parallel()

			p, err := schemescatalog.Find(tc.id)
			assert.Success(t, err)
			assert.Equal(t, tc.cat, p.Category)
			assert.Equal(t, tc.n, len(p.Colors))
			assert.String(t, tc.first, p.Colors[0].Hex())
			assert.String(t, tc.last, p.Colors[len(p.Colors)-1].Hex())
		})
	}
}

func TestRepeatedColors(t *testing.T) {
	t.Parallel()

	// Palettes may repeat a color; the repeat is kept in place.
	p, err := schemescatalog.Find("RedGold21")
	assert.Success(t, err)
	assert.Equal(t, p.Colors[5], p.Colors[6])

	p, err = schemescatalog.Find("Excel16")
	assert.Success(t, err)
	assert.Equal(t, p.Colors[11], p.Colors[15])
}

func TestOffice6(t *testing.T) {
	t.Parallel()

	p, err := schemescatalog.Find("Office6")
	assert.Success(t, err)
	assert.Equal(t, schemes.Office, p.Category)
	assert.Equal(t, "#5b9bd5,#ed7d31,#a5a5a5,#ffc000,#4472c4,#70ad47", strings.Join(p.Hex(), ","))
}

func TestTableau10(t *testing.T) {
	t.Parallel()

	colors, err := schemescatalog.Colors("Tableau10")
	assert.Success(t, err)
	assert.Equal(t, 10, len(colors))
	assert.Equal(t, "#4e79a7", colors[0].Hex())

	cat, err := schemescatalog.Category("Tableau10")
	assert.Success(t, err)
	assert.Equal(t, schemes.Tableau, cat)

	_, err = schemescatalog.Lookup(schemes.Office, "Tableau10")
	assert.True(t, errors.Is(err, schemes.ErrNotFound))
}

func TestUnknown(t *testing.T) {
	t.Parallel()

	_, err := schemescatalog.Colors("unknown-id")
	var nf *schemes.NotFoundError
	assert.True(t, errors.As(err, &nf))
	assert.Equal(t, "unknown-id", nf.ID)
}

func TestCLIString(t *testing.T) {
	t.Parallel()

	s := schemescatalog.CLIString(schemes.Tableau)
	lines := strings.Split(strings.TrimSuffix(s, "\n"), "\n")
	assert.Equal(t, len(schemescatalog.Tableau), len(lines))
	assert.String(t, `- Tableau10 (tableau): 10 colors
- Tableau20 (tableau): 20 colors
- ColorBlind10 (tableau): 10 colors
- SeattleGrays5 (tableau): 5 colors`, strings.Join(lines[:4], "\n"))
}
