package phantom

import (
	"fmt"
	"hash/maphash"
)

// AmountFor keeps relative quantities expressed in Units (seconds,
// cycles, bytes, apples). Unit is a phantom tag; only amounts of the
// same unit interact. An amount is a delta, not a point: it is the
// vector half of the affine pair formed with InstantFor.
//
// Arithmetic is exactly the arithmetic of Repr: integers wrap on
// overflow, floats round, integer division by zero panics. The wrapper
// adds no checking of its own.
type AmountFor[Unit any, Repr Number, C Caps] struct {
	repr Repr
}

type (
	Amount[Unit any, Repr Number]                = AmountFor[Unit, Repr, CopyDefault]
	AmountNoCopy[Unit any, Repr Number]          = AmountFor[Unit, Repr, DefaultOnly]
	AmountNoDefault[Unit any, Repr Number]       = AmountFor[Unit, Repr, CopyOnly]
	AmountNoCopyNoDefault[Unit any, Repr Number] = AmountFor[Unit, Repr, NoCaps]
)

// NewAmount wraps repr as an amount of Units with the standard
// capability set. Unit is given explicitly, Repr is inferred.
func NewAmount[Unit any, Repr Number](repr Repr) Amount[Unit, Repr] {
	return Amount[Unit, Repr]{repr: repr}
}

// NewAmountFor is NewAmount with an explicit capability descriptor.
func NewAmountFor[Unit any, C Caps, Repr Number](repr Repr) AmountFor[Unit, Repr, C] {
	return AmountFor[Unit, Repr, C]{repr: repr}
}

// ZeroAmount constructs the zero delta. Only descriptors granting the
// default capability compile here.
func ZeroAmount[Unit any, Repr Number, C CanDefault]() AmountFor[Unit, Repr, C] {
	return AmountFor[Unit, Repr, C]{}
}

// DupAmount returns a bit-for-bit duplicate of a. Only descriptors
// granting the duplication capability compile here.
func DupAmount[Unit any, Repr Number, C CanCopy](a AmountFor[Unit, Repr, C]) AmountFor[Unit, Repr, C] {
	return a
}

// Get returns the underlying representation of the amount.
func (a AmountFor[Unit, Repr, C]) Get() Repr { return a.repr }

// IsZero reports whether a is the zero delta.
func (a AmountFor[Unit, Repr, C]) IsZero() bool { return a.repr == 0 }

// Clone returns a copy holding the identical Repr, regardless of the
// descriptor.
func (a AmountFor[Unit, Repr, C]) Clone() AmountFor[Unit, Repr, C] { return a }

// Add sums two deltas of the same unit.
func (a AmountFor[Unit, Repr, C]) Add(b AmountFor[Unit, Repr, C]) AmountFor[Unit, Repr, C] {
	return AmountFor[Unit, Repr, C]{repr: a.repr + b.repr}
}

// Sub subtracts a delta of the same unit.
func (a AmountFor[Unit, Repr, C]) Sub(b AmountFor[Unit, Repr, C]) AmountFor[Unit, Repr, C] {
	return AmountFor[Unit, Repr, C]{repr: a.repr - b.repr}
}

// Scale multiplies the delta by a raw scalar. The scalar is
// dimensionless, so the result keeps the unit.
func (a AmountFor[Unit, Repr, C]) Scale(k Repr) AmountFor[Unit, Repr, C] {
	return AmountFor[Unit, Repr, C]{repr: a.repr * k}
}

// Div divides two deltas of the same unit, yielding a dimensionless raw
// scalar.
func (a AmountFor[Unit, Repr, C]) Div(b AmountFor[Unit, Repr, C]) Repr {
	return a.repr / b.repr
}

// Less reports whether a is strictly smaller than b.
func (a AmountFor[Unit, Repr, C]) Less(b AmountFor[Unit, Repr, C]) bool {
	return a.repr < b.repr
}

// Compare returns -1, 0 or +1 comparing a to b.
func (a AmountFor[Unit, Repr, C]) Compare(b AmountFor[Unit, Repr, C]) int {
	switch {
	case a.repr < b.repr:
		return -1
	case a.repr > b.repr:
		return 1
	default:
		return 0
	}
}

// String formats the amount exactly as its bare Repr.
func (a AmountFor[Unit, Repr, C]) String() string { return fmt.Sprint(a.repr) }

// HashAmount hashes the amount's representation with maphash.
func HashAmount[Unit any, Repr Number, C Caps](seed maphash.Seed, a AmountFor[Unit, Repr, C]) uint64 {
	return maphash.Comparable(seed, a.repr)
}
