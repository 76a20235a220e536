package go2

import (
	"strings"
	"testing"

	"oss.terrastruct.com/util-go/assert"
)

func TestFilter(t *testing.T) {
	got := Filter([]string{"Office6", "Tableau10", "Office2013"}, func(s string) bool {
		return strings.HasPrefix(s, "Office")
	})
	assert.JSON(t, []string{"Office6", "Office2013"}, got)

	assert.JSON(t, []int{}, Filter([]int{1, 2}, func(int) bool { return false }))
}

func TestMap(t *testing.T) {
	assert.JSON(t, []int{1, 3}, Map([]string{"a", "abc"}, func(s string) int { return len(s) }))
}

func TestContainsMax(t *testing.T) {
	assert.True(t, Contains([]string{"office", "tableau"}, "tableau"))
	assert.True(t, !Contains([]string{"office"}, "tableau"))
	assert.Equal(t, 7, Max(3, 7))
	assert.Equal(t, "b", Max("a", "b"))
}
