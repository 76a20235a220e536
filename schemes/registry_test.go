package schemes_test

import (
	"errors"
	"strings"
	"sync"
	"testing"

	"oss.terrastruct.com/util-go/assert"

	"oss.terrastruct.com/colorschemes/lib/color"
	"oss.terrastruct.com/colorschemes/schemes"
)

var testDefs = []schemes.Definition{
	{ID: "Warm", Category: schemes.Office, Colors: []string{"#ff0000", "#ff8000", "#ffff00"}},
	{ID: "Cool", Category: schemes.Tableau, Colors: []string{"#0000ff", "#00ffff"}},
	{ID: "Repeat", Category: schemes.Office, Colors: []string{"#111111", "#222222", "#111111"}},
}

func TestRegistry(t *testing.T) {
	t.Parallel()

	r, err := schemes.NewRegistry(testDefs)
	assert.Success(t, err)
	assert.Equal(t, 3, r.Len())

	colors, err := r.Colors("Warm")
	assert.Success(t, err)
	assert.Equal(t, 3, len(colors))
	assert.Equal(t, "#ff0000", colors[0].Hex())
	assert.Equal(t, "#ffff00", colors[2].Hex())

	c, err := r.Category("Cool")
	assert.Success(t, err)
	assert.Equal(t, schemes.Tableau, c)

	assert.Equal(t, "Warm,Cool,Repeat", strings.Join(r.IDs(), ","))
	assert.Equal(t, "Warm,Repeat", strings.Join(r.IDs(schemes.Office), ","))
	assert.Equal(t, "Cool", strings.Join(r.IDs(schemes.Tableau), ","))
	assert.Equal(t, "Warm,Cool,Repeat", strings.Join(r.IDs(schemes.Tableau, schemes.Office), ","))
	assert.Equal(t, 0, len(r.IDs(schemes.Category("excel"))))

	cats := r.Categories()
	assert.Equal(t, 2, len(cats))
	assert.Equal(t, schemes.Office, cats[0])
	assert.Equal(t, schemes.Tableau, cats[1])

	p, err := r.Find("Repeat")
	assert.Success(t, err)
	assert.Equal(t, p.Colors[0], p.Colors[2])
	assert.Equal(t, "#111111,#222222,#111111", strings.Join(p.Hex(), ","))
}

func TestRegistryNotFound(t *testing.T) {
	t.Parallel()

	r := schemes.MustNewRegistry(testDefs)

	_, err := r.Colors("unknown-id")
	var nf *schemes.NotFoundError
	assert.True(t, errors.As(err, &nf))
	assert.Equal(t, "unknown-id", nf.ID)
	assert.True(t, errors.Is(err, schemes.ErrNotFound))
	assert.ErrorString(t, err, `color scheme "unknown-id" not found`)

	_, err = r.Category("unknown-id")
	assert.True(t, errors.Is(err, schemes.ErrNotFound))

	_, err = r.Find("")
	assert.True(t, errors.Is(err, schemes.ErrNotFound))

	// Lookups are case sensitive.
	_, err = r.Find("warm")
	assert.True(t, errors.Is(err, schemes.ErrNotFound))

	p, err := r.Lookup(schemes.Office, "Warm")
	assert.Success(t, err)
	assert.Equal(t, "Warm", p.ID)

	_, err = r.Lookup(schemes.Tableau, "Warm")
	assert.ErrorString(t, err, `color scheme "Warm" not found in category "tableau"`)

	// The rest of the registry is unaffected.
	_, err = r.Colors("Cool")
	assert.Success(t, err)
}

func TestRegistryImmutable(t *testing.T) {
	t.Parallel()

	r := schemes.MustNewRegistry(testDefs)

	colors, err := r.Colors("Warm")
	assert.Success(t, err)
	colors[0].R = 0
	colors = append(colors[:1], colors[2:]...)
	_ = colors

	p, err := r.Find("Warm")
	assert.Success(t, err)
	p.Colors[1].G = 0

	for _, p := range r.Palettes() {
		p.Colors[0].B = 0x42
	}

	again, err := r.Colors("Warm")
	assert.Success(t, err)
	assert.Equal(t, "#ff0000,#ff8000,#ffff00", strings.Join(schemes.Palette{Colors: again}.Hex(), ","))
}

func TestRegistryConcurrentReads(t *testing.T) {
	t.Parallel()

	r := schemes.MustNewRegistry(testDefs)
	exp, err := r.Colors("Warm")
	assert.Success(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 100; j++ {
				got, err := r.Colors("Warm")
				if err != nil || len(got) != len(exp) || got[1] != exp[1] {
					t.Errorf("inconsistent read: %v %v", got, err)
					return
				}
				_ = r.IDs(schemes.Office)
				_, _ = r.Category("Cool")
			}
		}()
	}
	wg.Wait()
}

func TestNewRegistryErrors(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name string
		defs []schemes.Definition
		exp  string
	}{
		{
			name: "malformed_hex",
			defs: []schemes.Definition{
				{ID: "Bad", Category: schemes.Office, Colors: []string{"#ffffff", "#zzzzzz"}},
			},
			exp: `color scheme "Bad": color 1: invalid hex color "#zzzzzz"`,
		},
		{
			name: "named_color",
			defs: []schemes.Definition{
				{ID: "Named", Category: schemes.Tableau, Colors: []string{"red"}},
			},
			exp: `color scheme "Named": color 0: invalid hex color "red"`,
		},
		{
			name: "empty",
			defs: []schemes.Definition{
				{ID: "Empty", Category: schemes.Office},
			},
			exp: `color scheme "Empty" has no colors`,
		},
		{
			name: "duplicate",
			defs: []schemes.Definition{
				{ID: "Twice", Category: schemes.Office, Colors: []string{"#000"}},
				{ID: "Twice", Category: schemes.Tableau, Colors: []string{"#fff"}},
			},
			exp: `duplicate color scheme "Twice"`,
		},
		{
			name: "category",
			defs: []schemes.Definition{
				{ID: "Other", Category: "excel", Colors: []string{"#000"}},
			},
			exp: `color scheme "Other": unknown category "excel"`,
		},
		{
			name: "no_id",
			defs: []schemes.Definition{
				{Category: schemes.Office, Colors: []string{"#000"}},
			},
			exp: `color scheme 0 has no identifier`,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			r, err := schemes.NewRegistry(tc.defs)
			assert.ErrorString(t, err, tc.exp)
			assert.True(t, r == nil)
		})
	}
}

func TestMalformedColorError(t *testing.T) {
	t.Parallel()

	_, err := schemes.NewRegistry([]schemes.Definition{
		{ID: "Bad", Category: schemes.Office, Colors: []string{"#000", "#111", "#12345"}},
	})
	var merr *schemes.MalformedColorError
	assert.True(t, errors.As(err, &merr))
	assert.Equal(t, "Bad", merr.ID)
	assert.Equal(t, 2, merr.Index)
	assert.Equal(t, "#12345", merr.Literal)
}

func TestMustNewRegistryPanics(t *testing.T) {
	t.Parallel()

	defer func() {
		assert.True(t, recover() != nil)
	}()
	schemes.MustNewRegistry([]schemes.Definition{
		{ID: "Bad", Category: schemes.Office, Colors: []string{"#1"}},
	})
	t.Fatal("expected panic")
}

func TestColorAt(t *testing.T) {
	t.Parallel()

	p, err := schemes.MustNewRegistry(testDefs).Find("Warm")
	assert.Success(t, err)

	var got []string
	for i := 0; i < 7; i++ {
		got = append(got, p.ColorAt(i).Hex())
	}
	assert.Equal(t, "#ff0000 #ff8000 #ffff00 #ff0000 #ff8000 #ffff00 #ff0000", strings.Join(got, " "))
	assert.Equal(t, "#ffff00", p.ColorAt(-1).Hex())
	assert.Equal(t, "#ff8000", p.ColorAt(-5).Hex())

	assert.Equal(t, color.Color{}, schemes.Palette{}.ColorAt(0))
	assert.Equal(t, color.Color{}, schemes.Palette{}.ColorAt(-3))
}

func TestParseCategory(t *testing.T) {
	t.Parallel()

	c, err := schemes.ParseCategory(" Tableau ")
	assert.Success(t, err)
	assert.Equal(t, schemes.Tableau, c)

	c, err = schemes.ParseCategory("office")
	assert.Success(t, err)
	assert.Equal(t, schemes.Office, c)

	_, err = schemes.ParseCategory("excel")
	assert.ErrorString(t, err, `unknown category "excel"`)

	_, err = schemes.ParseCategory(" EXCEL ")
	assert.ErrorString(t, err, `unknown category " EXCEL "`)
}
