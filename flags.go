package phantom

// Flags is the packed capability descriptor shared by every wrapper
// family: bit 0 grants trivial duplication ("copy"), bit 1 grants
// zero-value construction ("default"). The bit layout is part of the
// public contract; callers branch on it through IsCopy and IsDefault.
//
// Do not hand-roll Flags values. The four constants below are the only
// valid combinations, and at the type level the sealed Caps markers are
// the only way to parameterize a wrapper.
type Flags uint8

const (
	flagBitCopy    Flags = 0b01
	flagBitDefault Flags = 0b10
)

// The four valid descriptor values, one per Caps marker.
const (
	FlagsNone        Flags = 0
	FlagsCopyOnly    Flags = flagBitCopy
	FlagsDefaultOnly Flags = flagBitDefault
	FlagsCopyDefault Flags = flagBitCopy | flagBitDefault
)

// IsCopy reports whether the descriptor grants trivial duplication.
func (f Flags) IsCopy() bool { return f&flagBitCopy != 0 }

// IsDefault reports whether the descriptor grants zero-value
// construction.
func (f Flags) IsDefault() bool { return f&flagBitDefault != 0 }
