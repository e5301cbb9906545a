package money

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"500", "500"},
		{" 250.5 ج.م", "250.5"},
		{"٣٠٠", "300"},
		{"١٢٫٥", "12.5"},
		{"1,500", "1500"},
		{"2 كرتونة", "2"},
		{"كرتونة", "0"},
		{"", "0"},
		{"-40", "-40"},
		{"7.", "7"},
		{".5", "0.5"},
	}

	for _, tt := range tests {
		got := Parse(tt.in)
		assert.True(t, got.Equal(decimal.RequireFromString(tt.want)), "Parse(%q) = %s, want %s", tt.in, got, tt.want)
	}
}

func TestSum(t *testing.T) {
	got := Sum("100", "كيس أرز", "50.25")
	assert.True(t, got.Equal(decimal.RequireFromString("150.25")), "got %s", got)
}

func TestSplitEven(t *testing.T) {
	shares := Split(decimal.NewFromInt(100), 4)
	require.Len(t, shares, 4)
	for _, s := range shares {
		assert.Equal(t, "25", s.String())
	}
}

func TestSplitRemainderGoesToFirstShare(t *testing.T) {
	total := decimal.NewFromInt(100)
	shares := Split(total, 3)
	require.Len(t, shares, 3)

	assert.Equal(t, "33.34", shares[0].String())
	assert.Equal(t, "33.33", shares[1].String())
	assert.Equal(t, "33.33", shares[2].String())

	sum := decimal.Zero
	for _, s := range shares {
		sum = sum.Add(s)
	}
	assert.True(t, sum.Equal(total), "shares add up to %s", sum)
}

func TestSplitKeepsSubPiasterTotals(t *testing.T) {
	total := decimal.RequireFromString("10.005")
	shares := Split(total, 2)
	require.Len(t, shares, 2)
	assert.True(t, shares[0].Add(shares[1]).Equal(total))
	assert.Equal(t, "5", shares[1].String())
}

func TestSplitNothing(t *testing.T) {
	assert.Nil(t, Split(decimal.NewFromInt(10), 0))
}
