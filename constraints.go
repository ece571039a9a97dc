package phantom

// Number covers the representation types that support the affine
// arithmetic of AmountFor and InstantFor. Identifier wrappers only need
// equality, so IDFor accepts any comparable representation instead.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uintptr |
		~float32 | ~float64
}
