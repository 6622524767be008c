/*
Package rational implements immutable exact rational numbers.
It is designed for applications that cannot tolerate binary floating-point
rounding errors, such as financial calculations, symbolic computation,
and exact geometry.

# Representation

[Rational] is a struct with two fields:

  - Numerator: an arbitrary-precision integer of any sign.
  - Denominator: an arbitrary-precision integer of any sign.

The numerical value of a rational is Numerator / Denominator.
By contract, a zero denominator does not represent an error:
a rational constructed with a zero denominator has the numeric value 0.

A rational is stored exactly as it was constructed, so the same numeric
value can have multiple representations.
For example, 1/2, 2/4, and -3/-6 all represent the same value but have
different numerators and denominators.
Whenever a value is observed (compared, formatted, signed, or
marshaled), it is first brought to its canonical form:
the numerator and denominator share no common factor other than 1,
the denominator is positive, and the value 0 is represented as 0/1.
Canonicalization is a pure function of the stored pair.
It never mutates a rational, so the order in which values are observed
has no effect on any result.

# Constraints

Since both parts are arbitrary-precision integers, arithmetic never
overflows, never rounds, and never loses precision.
Special values such as NaN, Infinity, or signed zeros are not supported.

# Conversions

The package provides methods for converting rationals:

  - from integers:
    [New], [NewFromInt64], [NewFromInts], [NewFromBigInt].
  - to string:
    [Rational.String], [Rational.Format], [Rational.MarshalText].
  - to and from a lossless binary form:
    [Rational.MarshalBinary], [Rational.UnmarshalBinary].

Parsing rationals from text is intentionally not provided.
The canonical string form is an output format only.

# Operations

All arithmetic is exact:

  - [Rational.Add], [Rational.Sub], [Rational.Mul] cannot fail and return
    the result directly.
  - [Rational.Quo], [Rational.Inv], [Rational.Pow] can fail and return
    an error alongside the result.

Every operation returns a new rational and leaves its operands unchanged.

# Absent values

[NullRational] represents a rational that may be absent, following the
convention of types such as [sql.NullString].
[Sum] accepts a slice of possibly-absent rationals and fails if any
element is absent.

# Errors

All methods are panic-free and pure.
Errors are returned in the following cases:

  - Division by Zero.
    Unlike the standard library, [Rational.Quo] and [Rational.Inv] do not
    panic when the divisor has the value 0.
    Instead, they return an error.
    Note that this covers divisors constructed with a zero denominator,
    since such a rational has the value 0.

  - Invalid Operation.
    [Rational.Pow] returns an error if 0 is raised to a negative power.

  - Invalid Operand.
    [NewFromBigInt] returns an error if an operand is nil, and [Sum]
    returns an error if any element of its input is absent.

For callers that prefer panics over errors, [Rational.MustQuo],
[Rational.MustInv], and [Rational.MustPow] are provided.

[sql.NullString]: https://pkg.go.dev/database/sql#NullString
*/
package rational
