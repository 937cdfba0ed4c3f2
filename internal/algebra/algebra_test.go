package algebra

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkSemiringLaws verifies identities, commutativity of Add and distributivity on samples.
func checkSemiringLaws[T Semiring[T]](t *testing.T, samples []T) {
	t.Helper()
	zero, one := Zero[T](), One[T]()
	require.True(t, zero.IsZero())
	require.True(t, one.IsOne())
	for _, a := range samples {
		assert.Equal(t, a, a.Add(zero), "additive identity")
		assert.Equal(t, a, a.Mul(one), "multiplicative identity")
		for _, b := range samples {
			assert.Equal(t, a.Add(b), b.Add(a), "add commutes")
			for _, c := range samples {
				assert.Equal(t, a.Mul(b.Add(c)), a.Mul(b).Add(a.Mul(c)), "distributive")
			}
		}
	}
}

func checkDivByZero[T Field[T]](t *testing.T, x T) {
	t.Helper()
	_, err := x.Div(x.Zero())
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrDivisionByZero))

	_, err = x.Zero().Inv()
	assert.True(t, errors.Is(err, ErrDivisionByZero))
}

func TestSemiringLaws(t *testing.T) {
	t.Run("Real", func(t *testing.T) {
		checkSemiringLaws(t, []Real{0, 1, -2, 3.5})
	})
	t.Run("Real32", func(t *testing.T) {
		checkSemiringLaws(t, []Real32{0, 1, -2, 4})
	})
	t.Run("Complex", func(t *testing.T) {
		checkSemiringLaws(t, []Complex{0, 1, Cmplx(1, 2), Cmplx(-3, 0.5)})
	})
	t.Run("Rational", func(t *testing.T) {
		checkSemiringLaws(t, []Rational{Int(0), Int(1), Frac(1, 3), Frac(-5, 4)})
	})
	t.Run("Bool", func(t *testing.T) {
		checkSemiringLaws(t, []Bool{false, true})
	})
}

func TestDivisionByZero(t *testing.T) {
	checkDivByZero(t, Real(3))
	checkDivByZero(t, Real32(3))
	checkDivByZero(t, Cmplx(1, 1))
	checkDivByZero(t, Frac(2, 7))
}

func TestDivision(t *testing.T) {
	r, err := Real(1).Div(4)
	require.NoError(t, err)
	assert.Equal(t, Real(0.25), r)

	q, err := Frac(1, 2).Div(Frac(3, 4))
	require.NoError(t, err)
	assert.Equal(t, Frac(2, 3), q)

	inv, err := Frac(-3, 5).Inv()
	require.NoError(t, err)
	assert.Equal(t, Frac(-5, 3), inv)
}

func TestRationalNormalization(t *testing.T) {
	assert.Equal(t, Frac(1, 2), Frac(2, 4))
	assert.Equal(t, Frac(-1, 2), Frac(1, -2))
	assert.Equal(t, Rational{}, Frac(0, 9))
	assert.Equal(t, int64(2), Frac(3, 6).Den())
	assert.Equal(t, "-3/7", Frac(6, -14).String())
	assert.Equal(t, "4", Int(4).String())

	_, err := NewRational(1, 0)
	assert.ErrorIs(t, err, ErrDivisionByZero)
}

func TestRationalArithmetic(t *testing.T) {
	assert.Equal(t, Frac(5, 6), Frac(1, 2).Add(Frac(1, 3)))
	assert.Equal(t, Frac(1, 6), Frac(1, 2).Sub(Frac(1, 3)))
	assert.Equal(t, Frac(1, 6), Frac(1, 2).Mul(Frac(1, 3)))
	assert.Equal(t, 1, Frac(1, 2).Cmp(Frac(1, 3)))
	assert.Equal(t, Frac(2, 3), Frac(4, 9).Sqrt())
	assert.InDelta(t, math.Sqrt2, Int(2).Sqrt().Float64(), 1e-12)
	assert.Equal(t, Rational{}, Int(-4).Sqrt())
}

func TestRationalSqrt_Large(t *testing.T) {
	for _, x := range []Rational{Int(2e18), Int(math.MaxInt64), Frac(3_000_000_000_000_000_001, 2)} {
		r := x.Sqrt()
		require.Positive(t, r.Den(), "sqrt(%s)", x)
		assert.InEpsilon(t, math.Sqrt(x.Float64()), r.Float64(), 1e-12, "sqrt(%s)", x)
	}
	assert.Equal(t, Int(2_000_000_000), Int(4e18).Sqrt())

	small := Frac(1, 1_000_000_000_000_000_000).Sqrt()
	assert.Equal(t, Frac(1, 1_000_000_000), small)
}

func TestRound(t *testing.T) {
	tests := []struct {
		name     string
		in       Real
		decimals int
		want     Real
	}{
		{"half up", 2.5, 0, 3},
		{"negative half away from zero", -2.5, 0, -3},
		{"two places", 1.23456, 2, 1.23},
		{"two places up", 1.235001, 2, 1.24},
		{"inf unchanged", Real(math.Inf(1)), 3, Real(math.Inf(1))},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Round(tt.decimals))
		})
	}

	assert.Equal(t, Frac(3, 2), Frac(149, 100).Round(1))
	assert.Equal(t, Frac(-3, 2), Frac(-149, 100).Round(1))
	assert.Equal(t, Int(1), Frac(1, 2).Round(0))
	assert.Equal(t, Frac(-7, 10), Frac(-2, 3).Round(1))
	assert.Equal(t, Cmplx(1.5, -2), Cmplx(1.46, -2.04).Round(1))
	assert.Equal(t, Real32(0.5), Real32(0.46).Round(1))
}

func TestRationalRound_LargeOperands(t *testing.T) {
	tests := []struct {
		name     string
		in       Rational
		decimals int
		want     Rational
	}{
		{"scaled numerator beyond int64", Frac(500_000_000_000_000_001, 4), 1, Frac(1_250_000_000_000_000_003, 10)},
		{"negative", Frac(-500_000_000_000_000_001, 4), 1, Frac(-1_250_000_000_000_000_003, 10)},
		{"rounds to integer", Frac(500_000_000_000_000_001, 1000), 1, Int(500_000_000_000_000)},
		{"large denominator", Frac(1, math.MaxInt64), 18, Rational{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.in.Round(tt.decimals))
		})
	}

	// 133333333333333333.67 has no int64 numerator over 100; the value must
	// not collapse to something else.
	x := Frac(400_000_000_000_000_001, 3)
	assert.InEpsilon(t, x.Float64(), x.Round(2).Float64(), 1e-15)
}

func TestComplex(t *testing.T) {
	z := Cmplx(3, 4)
	assert.Equal(t, 5.0, z.Abs())
	assert.Equal(t, Cmplx(3, -4), z.Conj())
	assert.Equal(t, 3.0, z.Re())
	assert.Equal(t, 4.0, z.Im())
}

func TestBoolSemiring(t *testing.T) {
	assert.Equal(t, Bool(true), Bool(false).Add(true))
	assert.Equal(t, Bool(false), Bool(true).Mul(false))
	assert.True(t, Bool(false).IsZero())
}

func TestKindOf(t *testing.T) {
	assert.Equal(t, KindReal, KindOf[Real]())
	assert.Equal(t, KindReal32, KindOf[Real32]())
	assert.Equal(t, KindComplex, KindOf[Complex]())
	assert.Equal(t, KindRational, KindOf[Rational]())
	assert.Equal(t, KindBool, KindOf[Bool]())
	assert.Equal(t, KindOther, KindOf[int]())
	assert.True(t, KindComplex.IEEE())
	assert.False(t, KindRational.IEEE())
	assert.Equal(t, "rational", KindRational.String())
}

func TestHelpers(t *testing.T) {
	xs := []Real{3, -4, 1}
	assert.Equal(t, Real(0), Sum(xs))
	assert.Equal(t, Real(26), Dot(xs, xs))
	assert.Equal(t, 4.0, MaxAbs(xs))
	assert.Equal(t, 1.0, MinAbs(xs))
	assert.True(t, math.IsInf(MinAbs([]Real{}), 1))
	assert.Equal(t, []Complex{Cmplx(1, -1)}, ConjSlice([]Complex{Cmplx(1, 1)}))
}
