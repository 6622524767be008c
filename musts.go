package rational

import "fmt"

// MustQuo is like [Rational.Quo] but panics if computing error.
func (r Rational) MustQuo(e Rational) Rational {
	v, err := r.Quo(e)
	if err != nil {
		panic(fmt.Sprintf("MustQuo(%v) failed: %v", e, err))
	}
	return v
}

// MustInv is like [Rational.Inv] but panics if computing error.
func (r Rational) MustInv() Rational {
	v, err := r.Inv()
	if err != nil {
		panic(fmt.Sprintf("MustInv() failed: %v", err))
	}
	return v
}

// MustPow is like [Rational.Pow] but panics if computing error.
func (r Rational) MustPow(exp int) Rational {
	v, err := r.Pow(exp)
	if err != nil {
		panic(fmt.Sprintf("MustPow(%v) failed: %v", exp, err))
	}
	return v
}

// MustSum is like [Sum] but panics if computing error.
func MustSum(vals []NullRational) Rational {
	v, err := Sum(vals)
	if err != nil {
		panic(fmt.Sprintf("MustSum(%v) failed: %v", vals, err))
	}
	return v
}
