package rational

import (
	"math/big"

	"golang.org/x/exp/constraints"
)

// intOne is shared by read-only comparisons and must never be mutated.
var intOne = big.NewInt(1)

// newBigInt converts any built-in integer type to the arbitrary-precision
// primitive.
func newBigInt[T constraints.Integer](v T) *big.Int {
	if v < 0 {
		return new(big.Int).SetInt64(int64(v))
	}
	return new(big.Int).SetUint64(uint64(v))
}

// reduce brings a numerator/denominator pair to canonical form in place:
// a pair with a zero part collapses to 0/1, the sign is carried solely by
// the numerator, and the greatest common divisor is divided out.
//
// reduce is idempotent and depends only on the values of num and den, so
// observing a rational in any order yields the same canonical form.
func reduce(num, den *big.Int) {
	if num.Sign() == 0 || den.Sign() == 0 {
		num.SetInt64(0)
		den.SetInt64(1)
		return
	}
	if den.Sign() < 0 {
		num.Neg(num)
		den.Neg(den)
	}
	g := new(big.Int).GCD(nil, nil, new(big.Int).Abs(num), den)
	if g.Cmp(intOne) != 0 {
		num.Quo(num, g)
		den.Quo(den, g)
	}
}

// pow calculates x^exp for a positive exp.
func pow(x *big.Int, exp int) *big.Int {
	return new(big.Int).Exp(x, big.NewInt(int64(exp)), nil)
}
