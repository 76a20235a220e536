package version

import (
	"testing"

	"oss.terrastruct.com/util-go/assert"
)

func TestOnlyNumbers(t *testing.T) {
	v := Version
	t.Cleanup(func() { Version = v })

	Version = "v0.1.0-HEAD"
	assert.String(t, "0.1.0", OnlyNumbers())

	Version = "v12.3.45"
	assert.String(t, "12.3.45", OnlyNumbers())

	Version = "HEAD"
	assert.String(t, "", OnlyNumbers())
}
