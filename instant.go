package phantom

import (
	"fmt"
	"hash/maphash"
)

// InstantFor keeps absolute points expressed in Units (seconds from
// epoch, CPU ticks, years from birth). Unit is a phantom tag shared
// with AmountFor; the two form an affine pair over that unit:
//
//	instant − instant = amount
//	instant ± amount  = instant
//
// Two absolute points can never be summed directly; only deltas
// compose under addition. Numeric behavior (overflow, rounding,
// division by zero) is exactly that of Repr.
type InstantFor[Unit any, Repr Number, C Caps] struct {
	repr Repr
}

type (
	Instant[Unit any, Repr Number]                = InstantFor[Unit, Repr, CopyDefault]
	InstantNoCopy[Unit any, Repr Number]          = InstantFor[Unit, Repr, DefaultOnly]
	InstantNoDefault[Unit any, Repr Number]       = InstantFor[Unit, Repr, CopyOnly]
	InstantNoCopyNoDefault[Unit any, Repr Number] = InstantFor[Unit, Repr, NoCaps]
)

// NewInstant wraps repr as an absolute point in Units with the standard
// capability set. Unit is given explicitly, Repr is inferred.
func NewInstant[Unit any, Repr Number](repr Repr) Instant[Unit, Repr] {
	return Instant[Unit, Repr]{repr: repr}
}

// NewInstantFor is NewInstant with an explicit capability descriptor.
func NewInstantFor[Unit any, C Caps, Repr Number](repr Repr) InstantFor[Unit, Repr, C] {
	return InstantFor[Unit, Repr, C]{repr: repr}
}

// ZeroInstant constructs the origin point. Only descriptors granting
// the default capability compile here.
func ZeroInstant[Unit any, Repr Number, C CanDefault]() InstantFor[Unit, Repr, C] {
	return InstantFor[Unit, Repr, C]{}
}

// DupInstant returns a bit-for-bit duplicate of t. Only descriptors
// granting the duplication capability compile here.
func DupInstant[Unit any, Repr Number, C CanCopy](t InstantFor[Unit, Repr, C]) InstantFor[Unit, Repr, C] {
	return t
}

// Get returns the underlying representation of the instant.
func (t InstantFor[Unit, Repr, C]) Get() Repr { return t.repr }

// IsZero reports whether t is the origin point.
func (t InstantFor[Unit, Repr, C]) IsZero() bool { return t.repr == 0 }

// Clone returns a copy holding the identical Repr, regardless of the
// descriptor.
func (t InstantFor[Unit, Repr, C]) Clone() InstantFor[Unit, Repr, C] { return t }

// Sub returns the delta between two points of the same unit, in the
// manner of time.Time.Sub.
func (t InstantFor[Unit, Repr, C]) Sub(o InstantFor[Unit, Repr, C]) AmountFor[Unit, Repr, C] {
	return AmountFor[Unit, Repr, C]{repr: t.repr - o.repr}
}

// Add shifts the point forward by a delta of the same unit.
func (t InstantFor[Unit, Repr, C]) Add(d AmountFor[Unit, Repr, C]) InstantFor[Unit, Repr, C] {
	return InstantFor[Unit, Repr, C]{repr: t.repr + d.repr}
}

// SubAmount shifts the point backward by a delta of the same unit.
// Separate from Sub because unsigned representations cannot express a
// negated delta.
func (t InstantFor[Unit, Repr, C]) SubAmount(d AmountFor[Unit, Repr, C]) InstantFor[Unit, Repr, C] {
	return InstantFor[Unit, Repr, C]{repr: t.repr - d.repr}
}

// Scale multiplies the point by a raw scalar.
func (t InstantFor[Unit, Repr, C]) Scale(k Repr) InstantFor[Unit, Repr, C] {
	return InstantFor[Unit, Repr, C]{repr: t.repr * k}
}

// Div divides two points of the same unit, yielding a dimensionless
// raw scalar: t.Scale(3).Div(t) == 3.
func (t InstantFor[Unit, Repr, C]) Div(o InstantFor[Unit, Repr, C]) Repr {
	return t.repr / o.repr
}

// Less reports whether t is strictly before o.
func (t InstantFor[Unit, Repr, C]) Less(o InstantFor[Unit, Repr, C]) bool {
	return t.repr < o.repr
}

// Compare returns -1, 0 or +1 comparing t to o.
func (t InstantFor[Unit, Repr, C]) Compare(o InstantFor[Unit, Repr, C]) int {
	switch {
	case t.repr < o.repr:
		return -1
	case t.repr > o.repr:
		return 1
	default:
		return 0
	}
}

// UnitTag returns the zero value of the unit marker. It performs no
// computation over Repr; it exists so debug output can name the unit:
//
//	fmt.Printf("%v %T", when, when.UnitTag())
func (t InstantFor[Unit, Repr, C]) UnitTag() Unit {
	var u Unit
	return u
}

// String formats the instant exactly as its bare Repr.
func (t InstantFor[Unit, Repr, C]) String() string { return fmt.Sprint(t.repr) }

// HashInstant hashes the instant's representation with maphash.
func HashInstant[Unit any, Repr Number, C Caps](seed maphash.Seed, t InstantFor[Unit, Repr, C]) uint64 {
	return maphash.Comparable(seed, t.repr)
}
