package phantom

import (
	"cmp"
	"fmt"
	"hash/maphash"
)

// IDFor keeps identifiers of entities in a type-safe way. Entity is a
// phantom tag: it never exists at runtime, it only makes identifiers of
// different entities incompatible Go types. An IDFor stores exactly one
// Repr and has exactly the size of Repr.
//
//	type User struct{}
//	type Post struct{}
//
//	type UserID = phantom.ID[User, uint64]
//	type PostID = phantom.ID[Post, uint64]
//
// UserID and PostID share a representation but cannot be assigned or
// compared to one another; mixing them up is a compile error. Because
// Repr is comparable, identifiers compare with == and work as map keys
// whenever their markers match.
//
// Identifiers are never mutated in place: every operation is a
// read-only view over the stored Repr.
type IDFor[Entity any, Repr comparable, C Caps] struct {
	repr Repr
}

// Capability-selection aliases. The expected standard (copy + default)
// is omitted from the name; names call out the differences only.
type (
	ID[Entity any, Repr comparable]                = IDFor[Entity, Repr, CopyDefault]
	IDNoCopy[Entity any, Repr comparable]          = IDFor[Entity, Repr, DefaultOnly]
	IDNoDefault[Entity any, Repr comparable]       = IDFor[Entity, Repr, CopyOnly]
	IDNoCopyNoDefault[Entity any, Repr comparable] = IDFor[Entity, Repr, NoCaps]
)

// NewID wraps repr as an identifier of Entity with the standard
// capability set. Entity is given explicitly, Repr is inferred:
//
//	id := phantom.NewID[User](uint64(15))
func NewID[Entity any, Repr comparable](repr Repr) ID[Entity, Repr] {
	return ID[Entity, Repr]{repr: repr}
}

// NewIDFor is NewID with an explicit capability descriptor.
func NewIDFor[Entity any, C Caps, Repr comparable](repr Repr) IDFor[Entity, Repr, C] {
	return IDFor[Entity, Repr, C]{repr: repr}
}

// ZeroID constructs an identifier holding the zero value of Repr. Only
// descriptors granting the default capability compile here.
func ZeroID[Entity any, Repr comparable, C CanDefault]() IDFor[Entity, Repr, C] {
	return IDFor[Entity, Repr, C]{}
}

// DupID returns a bit-for-bit duplicate of id. Only descriptors
// granting the duplication capability compile here.
func DupID[Entity any, Repr comparable, C CanCopy](id IDFor[Entity, Repr, C]) IDFor[Entity, Repr, C] {
	return id
}

// Get returns the underlying representation of the identifier.
func (id IDFor[Entity, Repr, C]) Get() Repr { return id.repr }

// IsZero reports whether id holds the zero value of Repr.
func (id IDFor[Entity, Repr, C]) IsZero() bool {
	var zero Repr
	return id.repr == zero
}

// Clone returns a copy holding the identical Repr. Unlike DupID it is
// available for every descriptor; the duplication is explicit at the
// call site.
func (id IDFor[Entity, Repr, C]) Clone() IDFor[Entity, Repr, C] { return id }

// String formats the identifier exactly as its bare Repr.
func (id IDFor[Entity, Repr, C]) String() string { return fmt.Sprint(id.repr) }

// LessID orders identifiers by their representation. Defined only for
// ordered representations. Ordering identifiers is mostly useful for
// sorted containers; it carries no semantic weight.
func LessID[Entity any, Repr cmp.Ordered, C Caps](a, b IDFor[Entity, Repr, C]) bool {
	return a.repr < b.repr
}

// CompareID compares representations in the manner of cmp.Compare:
// -1 if a < b, 0 if equal, +1 if a > b.
func CompareID[Entity any, Repr cmp.Ordered, C Caps](a, b IDFor[Entity, Repr, C]) int {
	return cmp.Compare(a.repr, b.repr)
}

// HashID hashes the identifier's representation with maphash. Equal
// identifiers hash equal under the same seed.
func HashID[Entity any, Repr comparable, C Caps](seed maphash.Seed, id IDFor[Entity, Repr, C]) uint64 {
	return maphash.Comparable(seed, id.repr)
}
