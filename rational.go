package rational

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math/big"

	"golang.org/x/exp/constraints"
)

// Rational type is a representation of an exact rational number.
// The zero value is the numeric value of 0.
// It is designed to be safe for concurrent use by multiple goroutines.
//
// A rational type is a struct with two parameters:
//
//   - Numerator: an arbitrary-precision integer of any sign.
//   - Denominator: an arbitrary-precision integer of any sign.
//
// The numerical value of a rational is Numerator / Denominator, with the
// convention that a zero denominator represents the value 0.
// The pair is stored exactly as constructed and is reduced to its canonical
// form only when the value is observed, without mutating the stored pair.
// Such approach allows for multiple representations of the same numerical
// value. For example, 1/2, 2/4, and -3/-6 all have the same value, but they
// have different numerators and denominators.
type Rational struct {
	num big.Int // the numerator
	den big.Int // the denominator; 0 represents the value 0
}

var (
	errDivisionByZero = errors.New("division by zero")
	errInvalidOperand = errors.New("invalid operand")
	errInvalidBinary  = errors.New("invalid binary representation")
)

var (
	Zero = New(0, 1) // Zero is a rational with a value of 0.
	One  = New(1, 1) // One is a rational with a value of 1.
	Two  = New(2, 1) // Two is a rational with a value of 2.
)

// New returns a rational equal to num / den.
// The pair is stored as given and is not eagerly reduced.
// A zero den is not an error: the resulting value is 0.
func New(num, den int64) Rational {
	var v Rational
	v.num.SetInt64(num)
	v.den.SetInt64(den)
	return v
}

// NewFromInt64 returns a rational with an integer value of val.
func NewFromInt64(val int64) Rational {
	return New(val, 1)
}

// NewFromInts returns a rational equal to num / den.
// It accepts any built-in integer types for the two parts, including
// mixed widths and signedness.
// Also see method [New].
func NewFromInts[Num, Den constraints.Integer](num Num, den Den) Rational {
	var v Rational
	v.num.Set(newBigInt(num))
	v.den.Set(newBigInt(den))
	return v
}

// NewFromBigInt returns a rational equal to num / den.
// The operands are copied, so the caller remains free to mutate them.
//
// NewFromBigInt returns an error if num or den is nil.
func NewFromBigInt(num, den *big.Int) (Rational, error) {
	if num == nil || den == nil {
		return Rational{}, errInvalidOperand
	}
	var v Rational
	v.num.Set(num)
	v.den.Set(den)
	return v, nil
}

// norm returns the canonical form of r as a freshly allocated pair:
// the denominator is positive, the parts share no common factor other
// than 1, and the value 0 is returned as 0/1.
func (r Rational) norm() (num, den *big.Int) {
	num = new(big.Int).Set(&r.num)
	den = new(big.Int).Set(&r.den)
	reduce(num, den)
	return num, den
}

// Num returns the numerator of the canonical form of r.
// The result is a copy and may be mutated by the caller.
func (r Rational) Num() *big.Int {
	num, _ := r.norm()
	return num
}

// Den returns the denominator of the canonical form of r.
// It is always positive, even if r was constructed with a negative or
// zero denominator.
// The result is a copy and may be mutated by the caller.
func (r Rational) Den() *big.Int {
	_, den := r.norm()
	return den
}

// Sign returns:
//
//	-1 if r < 0
//	 0 if r == 0
//	+1 if r > 0
func (r Rational) Sign() int {
	if r.den.Sign() == 0 {
		return 0
	}
	return r.num.Sign() * r.den.Sign()
}

// IsZero returns true if r == 0.
func (r Rational) IsZero() bool {
	return r.num.Sign() == 0 || r.den.Sign() == 0
}

// IsPos returns true if r > 0.
func (r Rational) IsPos() bool {
	return r.Sign() > 0
}

// IsNeg returns true if r < 0.
func (r Rational) IsNeg() bool {
	return r.Sign() < 0
}

// IsInt returns true if r has an integer value.
func (r Rational) IsInt() bool {
	_, den := r.norm()
	return den.Cmp(intOne) == 0
}

// Neg returns r with opposite sign.
func (r Rational) Neg() Rational {
	var v Rational
	v.num.Neg(&r.num)
	v.den.Set(&r.den)
	return v
}

// Abs returns the absolute value of r.
func (r Rational) Abs() Rational {
	if r.Sign() < 0 {
		return r.Neg()
	}
	return r
}

// CopySign returns r with the same sign as e.
// If e is zero, the sign of the result remains unchanged.
func (r Rational) CopySign(e Rational) Rational {
	switch {
	case e.IsZero():
		return r
	case r.Sign()*e.Sign() < 0:
		return r.Neg()
	default:
		return r
	}
}

// Add returns the exact sum of r and e.
// (Note that a/b + c/d = (a*d + b*c) / (b*d).)
func (r Rational) Add(e Rational) Rational {
	an, ad := r.norm()
	bn, bd := e.norm()
	var v Rational
	v.num.Mul(an, bd)
	v.num.Add(&v.num, new(big.Int).Mul(ad, bn))
	v.den.Mul(ad, bd)
	reduce(&v.num, &v.den)
	return v
}

// Sub returns the exact difference of r and e.
func (r Rational) Sub(e Rational) Rational {
	an, ad := r.norm()
	bn, bd := e.norm()
	var v Rational
	v.num.Mul(an, bd)
	v.num.Sub(&v.num, new(big.Int).Mul(ad, bn))
	v.den.Mul(ad, bd)
	reduce(&v.num, &v.den)
	return v
}

// Mul returns the exact product of r and e.
// (Note that a/b * c/d = (a*c) / (b*d).)
func (r Rational) Mul(e Rational) Rational {
	an, ad := r.norm()
	bn, bd := e.norm()
	var v Rational
	v.num.Mul(an, bn)
	v.den.Mul(ad, bd)
	reduce(&v.num, &v.den)
	return v
}

// Quo returns the exact quotient of r and e.
//
// Quo returns an error if e is 0, including the case when e was
// constructed with a zero denominator, since such a rational has
// the value 0.
func (r Rational) Quo(e Rational) (Rational, error) {
	if e.IsZero() {
		return Rational{}, errDivisionByZero
	}
	an, ad := r.norm()
	bn, bd := e.norm()
	var v Rational
	v.num.Mul(an, bd)
	v.den.Mul(ad, bn)
	reduce(&v.num, &v.den)
	return v, nil
}

// Inv returns the reciprocal of r, that is 1 / r.
//
// Inv returns an error if r is 0.
func (r Rational) Inv() (Rational, error) {
	if r.IsZero() {
		return Rational{}, errDivisionByZero
	}
	num, den := r.norm()
	var v Rational
	v.num.Set(den)
	v.den.Set(num)
	reduce(&v.num, &v.den)
	return v, nil
}

// Pow returns r raised to the exp power.
// (Note that a^0 = 1 and a^b = (1/a)^(-b) if b < 0.)
// A negative exponent is applied by raising the reciprocal to the
// opposite power, so the possibly large power of the original pair is
// never materialized first.
//
// Pow returns an error if r is 0 and exp is negative.
func (r Rational) Pow(exp int) (Rational, error) {
	switch {
	case exp == 0:
		return One, nil
	case exp == 1:
		return r, nil
	case exp < 0:
		v, err := r.Inv()
		if err != nil {
			return Rational{}, err
		}
		// Negating the smallest int overflows, so raise the reciprocal
		// to -(exp + 1) and multiply by it once more.
		w, err := v.Pow(-(exp + 1))
		if err != nil {
			return Rational{}, err
		}
		return w.Mul(v), nil
	}
	num, den := r.norm()
	var v Rational
	v.num.Set(pow(num, exp))
	v.den.Set(pow(den, exp))
	return v, nil
}

// Cmp compares r and e numerically and returns:
//
//	-1 if r < e
//	 0 if r == e
//	+1 if r > e
//
// The comparison cross-multiplies the canonical forms, which is exact
// since the parts are arbitrary-precision integers.
func (r Rational) Cmp(e Rational) int {
	an, ad := r.norm()
	bn, bd := e.norm()
	return an.Mul(an, bd).Cmp(bn.Mul(bn, ad))
}

// Equal returns true if r and e represent the same numeric value,
// regardless of which equivalent numerator/denominator pair each was
// constructed from.
func (r Rational) Equal(e Rational) bool {
	return r.Cmp(e) == 0
}

// Max returns the larger of r and e.
// If they are equal, r is returned.
func (r Rational) Max(e Rational) Rational {
	if r.Cmp(e) >= 0 {
		return r
	}
	return e
}

// Min returns the smaller of r and e.
// If they are equal, r is returned.
func (r Rational) Min(e Rational) Rational {
	if r.Cmp(e) <= 0 {
		return r
	}
	return e
}

// NullRational represents a rational that may be absent.
// It follows the convention of types such as [sql.NullString].
//
// [sql.NullString]: https://pkg.go.dev/database/sql#NullString
type NullRational struct {
	Rational Rational
	Valid    bool // Valid is true if Rational is present
}

// Null returns a present NullRational holding r.
func Null(r Rational) NullRational {
	return NullRational{Rational: r, Valid: true}
}

// Sum returns the exact sum of all values, folded left to right
// starting from 0.
// An empty input sums to 0.
//
// Sum returns an error if any of the values is absent.
func Sum(vals []NullRational) (Rational, error) {
	sum := Zero
	for _, val := range vals {
		if !val.Valid {
			return Rational{}, errInvalidOperand
		}
		sum = sum.Add(val.Rational)
	}
	return sum, nil
}

// String method implements the [fmt.Stringer] interface and returns the
// canonical string representation of r.
// A value with a denominator of 1 in canonical form is rendered as a plain
// integer, all other values as "(N / D)" with a positive D:
//
//	New(5, 3).String()    // (5 / 3)
//	New(-10, -6).String() // (5 / 3)
//	New(5, -10).String()  // (-1 / 2)
//	New(-2, 1).String()   // -2
//	New(4, 0).String()    // 0
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (r Rational) String() string {
	num, den := r.norm()
	if den.Cmp(intOne) == 0 {
		return num.String()
	}
	return "(" + num.String() + " / " + den.String() + ")"
}

// Format implements the [fmt.Formatter] interface.
// The following [verbs] are available:
//
//	%s, %v: (-1 / 2)
//	%q:    "(-1 / 2)"
//
// The '-' format flag can be used with all verbs, and a width is
// supported for padding.
//
// [verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (r Rational) Format(state fmt.State, verb rune) {
	switch verb {
	case 's', 'S', 'v', 'V', 'q', 'Q':
		// supported
	default:
		state.Write([]byte("%!"))
		state.Write([]byte(string(verb)))
		state.Write([]byte("(rational.Rational="))
		state.Write([]byte(r.String()))
		state.Write([]byte(")"))
		return
	}

	text := r.String()
	if verb == 'q' || verb == 'Q' {
		text = "\"" + text + "\""
	}

	// Padding
	lspaces, tspaces := 0, 0
	if w, ok := state.Width(); ok && w > len(text) {
		if state.Flag('-') {
			tspaces = w - len(text)
		} else {
			lspaces = w - len(text)
		}
	}

	buf := make([]byte, 0, lspaces+len(text)+tspaces)
	for i := 0; i < lspaces; i++ {
		buf = append(buf, ' ')
	}
	buf = append(buf, text...)
	for i := 0; i < tspaces; i++ {
		buf = append(buf, ' ')
	}
	state.Write(buf)
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// Also see method [Rational.String].
//
// There is no corresponding TextUnmarshaler: the canonical string form
// is an output format only.
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (r Rational) MarshalText() ([]byte, error) {
	return []byte(r.String()), nil
}

// MarshalBinary implements the [encoding.BinaryMarshaler] interface.
// The encoding holds the canonical form of r: a flag byte carrying the
// sign, the length of the numerator magnitude as a big-endian uint32,
// and the magnitudes of the numerator and denominator.
//
// [encoding.BinaryMarshaler]: https://pkg.go.dev/encoding#BinaryMarshaler
func (r Rational) MarshalBinary() ([]byte, error) {
	num, den := r.norm()
	nb := num.Bytes()
	db := den.Bytes()
	buf := make([]byte, 0, 5+len(nb)+len(db))
	var flag byte
	if num.Sign() < 0 {
		flag = 1
	}
	buf = append(buf, flag)
	buf = binary.BigEndian.AppendUint32(buf, uint32(len(nb)))
	buf = append(buf, nb...)
	buf = append(buf, db...)
	return buf, nil
}

// UnmarshalBinary implements the [encoding.BinaryUnmarshaler] interface.
// Also see method [Rational.MarshalBinary].
//
// [encoding.BinaryUnmarshaler]: https://pkg.go.dev/encoding#BinaryUnmarshaler
func (r *Rational) UnmarshalBinary(data []byte) error {
	if len(data) < 5 {
		return errInvalidBinary
	}
	flag := data[0]
	if flag > 1 {
		return errInvalidBinary
	}
	// Compare in uint64 so an oversized length cannot wrap negative on
	// 32-bit platforms.
	nlen := binary.BigEndian.Uint32(data[1:5])
	if uint64(nlen) > uint64(len(data)-5) {
		return errInvalidBinary
	}
	var v Rational
	v.num.SetBytes(data[5 : 5+int(nlen)])
	if flag == 1 {
		v.num.Neg(&v.num)
	}
	v.den.SetBytes(data[5+int(nlen):])
	if v.den.Sign() == 0 {
		return errInvalidBinary
	}
	*r = v
	return nil
}
