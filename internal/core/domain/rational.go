package domain

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
)

// Rational is an exact fraction kept in lowest terms with a positive
// denominator. The zero value is 0/1.
//
// Fields are unexported so the invariant set up by NewRational cannot be
// broken after construction. Every operation returns a new value.
type Rational struct {
	num int64
	den int64
}

// NewRational builds a normalised fraction from a raw numerator and
// denominator. It fails with ErrInvalidArgument when den is zero and with
// ErrOverflow when the reduced value cannot be held in int64 (only possible
// for inputs involving math.MinInt64).
func NewRational(num, den int64) (Rational, error) {
	if den == 0 {
		return Rational{}, fmt.Errorf("%w: denominator must not be zero", ErrInvalidArgument)
	}

	// |MinInt64| has no int64 representation.
	if num == math.MinInt64 || den == math.MinInt64 {
		return fromBig(big.NewInt(num), big.NewInt(den))
	}

	g := gcd(abs(num), abs(den))
	num /= g
	den /= g

	if den < 0 {
		num = -num
		den = -den
	}

	return Rational{num: num, den: den}, nil
}

// Integer returns n/1.
func Integer(n int64) Rational {
	return Rational{num: n, den: 1}
}

// Copy returns a new value with identical fields. No re-normalisation is
// performed; every constructor already produced a normalised value.
func (r Rational) Copy() Rational {
	return Rational{num: r.num, den: r.den}
}

// Num returns the numerator. It carries the sign of the fraction.
func (r Rational) Num() int64 {
	return r.num
}

// Den returns the denominator, which is always positive.
func (r Rational) Den() int64 {
	return r.d()
}

// IsZero reports whether the fraction equals zero.
func (r Rational) IsZero() bool {
	return r.num == 0
}

// Float64 returns num/den as a floating-point approximation.
func (r Rational) Float64() float64 {
	return float64(r.num) / float64(r.d())
}

// FormatDecimal renders the decimal approximation with the given number of
// places, e.g. 2/3 with 2 places is "0.67".
func (r Rational) FormatDecimal(places int) string {
	return strconv.FormatFloat(r.Float64(), 'f', places, 64)
}

// Equal reports whether r and other denote the same number.
func (r Rational) Equal(other Rational) bool {
	return Compare(r, other) == 0
}

// Cmp compares r with other; see Compare.
func (r Rational) Cmp(other Rational) int {
	return Compare(r, other)
}

// String renders the fraction as "<num>/<den>".
func (r Rational) String() string {
	return fmt.Sprintf("%d/%d", r.num, r.d())
}

// MarshalText implements encoding.TextMarshaler.
func (r Rational) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (r *Rational) UnmarshalText(text []byte) error {
	parsed, err := ParseRational(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// d maps the zero value's denominator to 1.
func (r Rational) d() int64 {
	if r.den == 0 {
		return 1
	}
	return r.den
}

// Add returns a + b.
func Add(a, b Rational) (Rational, error) {
	return combine(a, b, false)
}

// Subtract returns a - b.
func Subtract(a, b Rational) (Rational, error) {
	return combine(a, b, true)
}

// Multiply returns a * b.
func Multiply(a, b Rational) (Rational, error) {
	num, okN := mul64(a.num, b.num)
	den, okD := mul64(a.d(), b.d())
	if okN && okD {
		return NewRational(num, den)
	}

	return fromBig(
		new(big.Int).Mul(big.NewInt(a.num), big.NewInt(b.num)),
		new(big.Int).Mul(big.NewInt(a.d()), big.NewInt(b.d())),
	)
}

// Divide returns a / b. It fails with ErrDivisionByZero when b is zero.
func Divide(a, b Rational) (Rational, error) {
	if b.num == 0 {
		return Rational{}, fmt.Errorf("%w: %s / %s", ErrDivisionByZero, a, b)
	}

	// b.num may be negative; normalisation moves the sign to the numerator.
	num, okN := mul64(a.num, b.d())
	den, okD := mul64(a.d(), b.num)
	if okN && okD {
		return NewRational(num, den)
	}

	return fromBig(
		new(big.Int).Mul(big.NewInt(a.num), big.NewInt(b.d())),
		new(big.Int).Mul(big.NewInt(a.d()), big.NewInt(b.num)),
	)
}

// Equals reports whether a and b denote the same number using
// cross-multiplication, so it holds for unreduced operands too.
func Equals(a, b Rational) bool {
	return Compare(a, b) == 0
}

// Compare returns -1, 0 or 1 depending on whether a is less than, equal to
// or greater than b. Cross products are exact for every int64 input.
func Compare(a, b Rational) int {
	left, okL := mul64(a.num, b.d())
	right, okR := mul64(b.num, a.d())
	if okL && okR {
		switch {
		case left == right:
			return 0
		case left > right:
			return 1
		default:
			return -1
		}
	}

	l := new(big.Int).Mul(big.NewInt(a.num), big.NewInt(b.d()))
	r := new(big.Int).Mul(big.NewInt(b.num), big.NewInt(a.d()))
	return l.Cmp(r)
}

// combine computes (a.num*b.den ± b.num*a.den) / (a.den*b.den).
func combine(a, b Rational, subtract bool) (Rational, error) {
	left, okL := mul64(a.num, b.d())
	right, okR := mul64(b.num, a.d())
	den, okD := mul64(a.d(), b.d())
	if okL && okR && okD {
		var num int64
		var ok bool
		if subtract {
			num, ok = sub64(left, right)
		} else {
			num, ok = add64(left, right)
		}
		if ok {
			return NewRational(num, den)
		}
	}

	num := new(big.Int).Mul(big.NewInt(a.num), big.NewInt(b.d()))
	other := new(big.Int).Mul(big.NewInt(b.num), big.NewInt(a.d()))
	if subtract {
		num.Sub(num, other)
	} else {
		num.Add(num, other)
	}
	return fromBig(num, new(big.Int).Mul(big.NewInt(a.d()), big.NewInt(b.d())))
}

// fromBig normalises an exact intermediate result and narrows it to int64.
func fromBig(num, den *big.Int) (Rational, error) {
	if den.Sign() == 0 {
		return Rational{}, fmt.Errorf("%w: denominator must not be zero", ErrInvalidArgument)
	}
	if num.Sign() == 0 {
		return Rational{num: 0, den: 1}, nil
	}

	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), new(big.Int).Abs(den))
	n := new(big.Int).Quo(num, g)
	d := new(big.Int).Quo(den, g)

	if d.Sign() < 0 {
		n.Neg(n)
		d.Neg(d)
	}

	if !n.IsInt64() || !d.IsInt64() {
		return Rational{}, fmt.Errorf("%w: %s/%s", ErrOverflow, n, d)
	}

	return Rational{num: n.Int64(), den: d.Int64()}, nil
}

// gcd is the Euclidean algorithm. gcd(0, d) == d.
func gcd(a, b int64) int64 {
	for b != 0 {
		a, b = b, a%b
	}
	return a
}

func abs(n int64) int64 {
	if n < 0 {
		return -n
	}
	return n
}

// mul64 multiplies and reports whether the product fits in int64.
func mul64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	c := a * b
	if (c < 0) != ((a < 0) != (b < 0)) || c/b != a {
		return c, false
	}
	return c, true
}

func add64(a, b int64) (int64, bool) {
	c := a + b
	if (b > 0 && c < a) || (b < 0 && c > a) {
		return c, false
	}
	return c, true
}

func sub64(a, b int64) (int64, bool) {
	c := a - b
	if (b > 0 && c > a) || (b < 0 && c < a) {
		return c, false
	}
	return c, true
}
