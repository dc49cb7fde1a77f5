package number

import (
	"github.com/stretchr/testify/assert"
	"testing"
)

func TestLength(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want int
	}{
		{name: "digits", in: "0123456789", want: 10},
		{name: "star_hash", in: "*#", want: 2},
		{name: "empty", in: "", want: 0},
		{name: "letter", in: "12a3", want: 0},
		{name: "space", in: "12 ", want: 0},
		{name: "plus", in: "+48", want: 0},
		{name: "nul_inside", in: "12\x003", want: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Length(tt.in))
			assert.Equal(t, tt.want > 0, Valid(tt.in))
		})
	}
}

func TestID(t *testing.T) {
	for i, c := range []byte("0123456789*#") {
		assert.True(t, IsSymbol(c))
		assert.Equal(t, i, ID(c))
	}
	assert.False(t, IsSymbol('a'))
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		want int
	}{
		{name: "equal", a: "123", b: "123", want: 0},
		{name: "digit_less", a: "122", b: "123", want: -1},
		{name: "prefix_first", a: "12", b: "123", want: -1},
		{name: "longer_last", a: "1230", b: "123", want: 1},
		{name: "star_after_nine", a: "9", b: "*", want: -1},
		{name: "hash_after_star", a: "#", b: "*", want: 1},
		{name: "order_not_ascii", a: "*", b: "0", want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Compare(tt.a, tt.b))
			assert.Equal(t, -tt.want, Compare(tt.b, tt.a))
		})
	}
}
