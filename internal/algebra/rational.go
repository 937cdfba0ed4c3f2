package algebra

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
)

// maxSqrtDenominator bounds the denominator of inexact rational square roots.
const maxSqrtDenominator = 1_000_000_000

// Rational is an exact field element num/den stored in lowest terms with a
// positive denominator, so == is value equality. The zero value is 0/1.
//
// Numerators and denominators are int64; operands must stay within that range.
type Rational struct {
	num int64
	dm1 int64 // denominator minus one keeps the zero value valid
}

// NewRational returns num/den in lowest terms.
func NewRational(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, fmt.Errorf("rational %d/0: %w", num, ErrDivisionByZero)
	}
	return normRational(num, den), nil
}

// Frac is like NewRational but panics on a zero denominator.
// Intended for literals.
func Frac(num, den int64) Rational {
	r, err := NewRational(num, den)
	if err != nil {
		panic(err)
	}
	return r
}

// Int returns the rational n/1.
func Int(n int64) Rational {
	return Rational{num: n}
}

func normRational(num, den int64) Rational {
	if den < 0 {
		num, den = -num, -den
	}
	if num == 0 {
		return Rational{}
	}
	if g := gcd(abs64(num), den); g > 1 {
		num /= g
		den /= g
	}
	return Rational{num: num, dm1: den - 1}
}

// Num returns the numerator.
func (a Rational) Num() int64 { return a.num }

// Den returns the (positive) denominator.
func (a Rational) Den() int64 { return a.dm1 + 1 }

func (a Rational) Add(b Rational) Rational {
	ad, bd := a.Den(), b.Den()
	g := gcd(ad, bd)
	return normRational(a.num*(bd/g)+b.num*(ad/g), ad/g*bd)
}

func (a Rational) Sub(b Rational) Rational { return a.Add(b.Neg()) }

func (a Rational) Mul(b Rational) Rational {
	if a.num == 0 || b.num == 0 {
		return Rational{}
	}
	g1 := gcd(abs64(a.num), b.Den())
	g2 := gcd(abs64(b.num), a.Den())
	return normRational((a.num/g1)*(b.num/g2), (a.Den()/g2)*(b.Den()/g1))
}

func (a Rational) Neg() Rational      { return Rational{num: -a.num, dm1: a.dm1} }
func (Rational) Zero() Rational       { return Rational{} }
func (Rational) One() Rational        { return Rational{num: 1} }
func (a Rational) IsZero() bool       { return a.num == 0 }
func (a Rational) IsOne() bool        { return a.num == 1 && a.dm1 == 0 }
func (a Rational) Conj() Rational     { return a }
func (a Rational) Float64() float64   { return float64(a.num) / float64(a.Den()) }
func (a Rational) Abs() float64       { return math.Abs(a.Float64()) }
func (a Rational) Cmp(b Rational) int { return sign64(a.Sub(b).num) }

// Div returns a / b.
func (a Rational) Div(b Rational) (Rational, error) {
	if b.num == 0 {
		return Rational{}, fmt.Errorf("rational %s / 0: %w", a, ErrDivisionByZero)
	}
	return a.Mul(normRational(b.Den(), b.num)), nil
}

// Inv returns 1 / a.
func (a Rational) Inv() (Rational, error) {
	return Int(1).Div(a)
}

// Sqrt returns the exact root when numerator and denominator are perfect
// squares, and otherwise the closest fraction with a bounded denominator.
// Negative values have no rational root; Sqrt returns zero for them.
func (a Rational) Sqrt() Rational {
	if a.num <= 0 {
		return Rational{}
	}
	n, nok := isqrt(a.num)
	d, dok := isqrt(a.Den())
	if nok && dok {
		return normRational(n, d)
	}
	return approxRational(math.Sqrt(a.Float64()), maxSqrtDenominator)
}

// Round rounds to the given number of decimal places, half away from zero.
// A value whose rounded form does not fit in int64 is returned unchanged.
func (a Rational) Round(decimals int) Rational {
	if decimals > 18 || a.dm1 == 0 {
		return a
	}
	scale := uint64(1)
	for i := 0; i < decimals; i++ {
		scale *= 10
	}
	den := uint64(a.Den())
	q, r := uint64(abs64(a.num))/den, uint64(abs64(a.num))%den
	// frac = round(r * scale / den) with ties away from zero, in 128 bits.
	hi, lo := bits.Mul64(r, 2*scale)
	lo, carry := bits.Add64(lo, den, 0)
	frac, _ := bits.Div64(hi+carry, lo, 2*den)
	hi, lo = bits.Mul64(q, scale)
	if hi != 0 || lo > math.MaxInt64-frac {
		return a
	}
	n := int64(lo + frac)
	if a.num < 0 {
		n = -n
	}
	return normRational(n, int64(scale))
}

// String formats the value as "num/den", or "num" for integers.
func (a Rational) String() string {
	if a.dm1 == 0 {
		return strconv.FormatInt(a.num, 10)
	}
	return strconv.FormatInt(a.num, 10) + "/" + strconv.FormatInt(a.Den(), 10)
}

// approxRational finds the continued-fraction convergent of x >= 0 with the
// largest denominator not exceeding maxDen. The integer part is always kept,
// so the result has a denominator of at least one.
func approxRational(x float64, maxDen int64) Rational {
	whole := math.Floor(x)
	h0, h1 := int64(1), int64(whole)
	k0, k1 := int64(0), int64(1)
	f := x - whole
	for i := 0; i < 64 && f >= 1e-15; i++ {
		f = 1 / f
		whole = math.Floor(f)
		if whole > float64(maxDen) {
			break
		}
		ai := int64(whole)
		h2, k2 := ai*h1+h0, ai*k1+k0
		if k2 > maxDen {
			break
		}
		h0, h1 = h1, h2
		k0, k1 = k1, k2
		f -= whole
	}
	return normRational(h1, k1)
}

func isqrt(n int64) (int64, bool) {
	u := uint64(n)
	r := uint64(math.Sqrt(float64(n)))
	for r*r > u {
		r--
	}
	for (r+1)*(r+1) <= u {
		r++
	}
	return int64(r), r*r == u
}

func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs64(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

func sign64(x int64) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	default:
		return 0
	}
}
