package number

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func of(items ...string) *Numbers {
	n := New(len(items))
	for _, s := range items {
		n.Add(s)
	}
	return n
}

func TestNumbers_Get(t *testing.T) {
	n := of("1", "2")

	s, ok := n.Get(1)
	assert.True(t, ok)
	assert.Equal(t, "2", s)

	_, ok = n.Get(2)
	assert.False(t, ok)
	_, ok = n.Get(-1)
	assert.False(t, ok)

	var nilNumbers *Numbers
	_, ok = nilNumbers.Get(0)
	assert.False(t, ok)
	assert.Equal(t, 0, nilNumbers.Len())
}

func TestNumbers_Release(t *testing.T) {
	n := of("1")
	n.Release()

	_, ok := n.Get(0)
	assert.False(t, ok)
	assert.Equal(t, 0, n.Len())

	var nilNumbers *Numbers
	assert.NotPanics(t, nilNumbers.Release)
}

func TestNumbers_SortUnique(t *testing.T) {
	n := of("#", "12", "*", "9", "12", "1", "#", "120")
	n.SortUnique()

	assert.Equal(t, []string{"1", "12", "120", "9", "*", "#"}, n.Slice())
}

func TestNumbers_SliceIsCopy(t *testing.T) {
	n := of("1", "2")
	s := n.Slice()
	s[0] = "5"

	got, _ := n.Get(0)
	assert.Equal(t, "1", got)
}
