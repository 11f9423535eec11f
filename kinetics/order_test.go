package kinetics

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOrder_String(t *testing.T) {
	require.Equal(t, "zeroth", Zeroth.String())
	require.Equal(t, "first", First.String())
	require.Equal(t, "second", Second.String())
	require.Equal(t, "unknown", Order(42).String())
}

func TestOrderFromString(t *testing.T) {
	tests := []struct {
		name  string
		want  Order
		found bool
	}{
		{"zeroth", Zeroth, true},
		{"First", First, true},
		{"SECOND", Second, true},
		{"third", Zeroth, false},
		{"", Zeroth, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, ok := OrderFromString(tt.name)
			require.Equal(t, tt.found, ok)
			if ok {
				require.Equal(t, tt.want, o)
			}
		})
	}
}

func TestOrder_Labels(t *testing.T) {
	require.Equal(t, "[A]", Zeroth.Label())
	require.Equal(t, "ln[A]", First.Label())
	require.Equal(t, "1/[A]", Second.Label())

	require.Equal(t, "[A] vs t", Zeroth.LinearLabel())
	require.Equal(t, "ln[A] vs t", First.LinearLabel())
	require.Equal(t, "1/[A] vs t", Second.LinearLabel())
}

func TestOrder_Units(t *testing.T) {
	require.Equal(t, "M/s", Zeroth.Units())
	require.Equal(t, "1/s", First.Units())
	require.Equal(t, "1/(M·s)", Second.Units())
}

func TestOrder_Transform(t *testing.T) {
	require.Equal(t, 0.25, Zeroth.Transform(0.25))
	require.InDelta(t, math.Log(0.25), First.Transform(0.25), 1e-15)
	require.InDelta(t, 4.0, Second.Transform(0.25), 1e-15)
}

func TestOrder_Admits(t *testing.T) {
	// Zeroth admits any finite concentration, including zero and negative.
	require.True(t, Zeroth.Admits(0.5))
	require.True(t, Zeroth.Admits(0))
	require.True(t, Zeroth.Admits(-0.1))

	for _, o := range []Order{First, Second} {
		require.True(t, o.Admits(0.5), "order %s", o)
		require.False(t, o.Admits(0), "order %s", o)
		require.False(t, o.Admits(-0.1), "order %s", o)
	}

	for o := Zeroth; o <= Second; o++ {
		require.False(t, o.Admits(math.NaN()), "order %s", o)
		require.False(t, o.Admits(math.Inf(1)), "order %s", o)
	}
}

func TestOrder_RateSignConvention(t *testing.T) {
	// Decaying data has a negative slope for Zeroth/First and a positive one
	// for Second; k comes out positive in all three.
	require.Equal(t, 0.01, Zeroth.rateFromSlope(-0.01))
	require.Equal(t, 0.01, First.rateFromSlope(-0.01))
	require.Equal(t, 0.01, Second.rateFromSlope(0.01))
}
