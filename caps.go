package phantom

// Caps is the closed set of capability descriptors usable as the C
// parameter of IDFor, AmountFor and InstantFor. The unexported method
// seals the set: external code can use the four markers below but
// cannot introduce a fifth combination, so an invalid descriptor is a
// compile error, never a runtime check.
type Caps interface {
	CopyDefault | CopyOnly | DefaultOnly | NoCaps
	capFlags() Flags
}

// CopyDefault grants both trivial duplication and zero-value
// construction. It is the standard descriptor; the short aliases
// (ID, Amount, Instant) are fixed to it.
type CopyDefault struct{}

// CopyOnly grants trivial duplication but not zero-value construction.
type CopyOnly struct{}

// DefaultOnly grants zero-value construction but not trivial
// duplication.
type DefaultOnly struct{}

// NoCaps grants neither capability.
type NoCaps struct{}

func (CopyDefault) capFlags() Flags { return FlagsCopyDefault }
func (CopyOnly) capFlags() Flags    { return FlagsCopyOnly }
func (DefaultOnly) capFlags() Flags { return FlagsDefaultOnly }
func (NoCaps) capFlags() Flags      { return FlagsNone }

// CanCopy is the subset of descriptors granting trivial duplication.
// Each optional capability is declared once, here, as a constraint —
// not once per concrete wrapper type.
type CanCopy interface {
	CopyDefault | CopyOnly
	capFlags() Flags
}

// CanDefault is the subset of descriptors granting zero-value
// construction.
type CanDefault interface {
	CopyDefault | DefaultOnly
	capFlags() Flags
}

// FlagsOf returns the packed descriptor value for a capability marker.
func FlagsOf[C Caps]() Flags {
	var c C
	return c.capFlags()
}
