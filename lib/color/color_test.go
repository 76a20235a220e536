package color

import (
	"encoding/json"
	stdcolor "image/color"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParse(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		in  string
		exp Color
		hex string
	}{
		{in: "#4e79a7", exp: Color{0x4e, 0x79, 0xa7, 0xff}, hex: "#4e79a7"},
		{in: "#4E79A7", exp: Color{0x4e, 0x79, 0xa7, 0xff}, hex: "#4e79a7"},
		{in: "#fff", exp: Color{0xff, 0xff, 0xff, 0xff}, hex: "#ffffff"},
		{in: "#09c", exp: Color{0x00, 0x99, 0xcc, 0xff}, hex: "#0099cc"},
		{in: "#000000", exp: Color{0, 0, 0, 0xff}, hex: "#000000"},
		{in: "#4e79a780", exp: Color{0x4e, 0x79, 0xa7, 0x80}, hex: "#4e79a780"},
		{in: "#f008", exp: Color{0xff, 0x00, 0x00, 0x88}, hex: "#ff000088"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.in, func(t *testing.T) {
			t.Parallel()

			c, err := Parse(tc.in)
			assert.NoError(t, err)
			assert.Equal(t, tc.exp, c)
			assert.Equal(t, tc.hex, c.Hex())
			assert.Equal(t, tc.hex, c.String())
		})
	}
}

func TestParseInvalid(t *testing.T) {
	t.Parallel()

	for _, in := range []string{
		"",
		"#",
		"4e79a7",
		"#4e79a",
		"#4e79a7f",
		"#4e79a7ff0",
		"#gggggg",
		"red",
		"rgb(1, 2, 3)",
		" #4e79a7",
	} {
		_, err := Parse(in)
		assert.Error(t, err, "%q should not parse", in)
	}
}

func TestMustParsePanics(t *testing.T) {
	assert.Panics(t, func() {
		MustParse("#12")
	})
	assert.NotPanics(t, func() {
		MustParse("#123456")
	})
}

func TestRGBA(t *testing.T) {
	c := MustParse("#ff8000")
	r, g, b, a := c.RGBA()
	er, eg, eb, ea := stdcolor.NRGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff}.RGBA()
	assert.Equal(t, []uint32{er, eg, eb, ea}, []uint32{r, g, b, a})

	m := stdcolor.NRGBAModel.Convert(c).(stdcolor.NRGBA)
	assert.Equal(t, stdcolor.NRGBA{R: 0xff, G: 0x80, B: 0x00, A: 0xff}, m)
}

func TestColorful(t *testing.T) {
	c := MustParse("#4e79a7")
	assert.Equal(t, "#4e79a7", c.Colorful().Hex())
}

func TestJSON(t *testing.T) {
	in := []Color{MustParse("#5b9bd5"), MustParse("#ed7d3180")}
	b, err := json.Marshal(in)
	assert.NoError(t, err)
	assert.Equal(t, `["#5b9bd5","#ed7d3180"]`, string(b))

	var out []Color
	assert.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in, out)

	assert.Error(t, json.Unmarshal([]byte(`["blue"]`), &out))
}
