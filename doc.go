// Package phantom implements tagged wrapper types: newtypes that attach
// a compile-time marker to a runtime value so that semantically
// different values sharing one representation (a user id and a post id,
// both uint64) cannot be mixed up. The marker is a phantom type
// parameter; it occupies zero bytes, so a wrapper has exactly the
// memory layout of its representation and adds no runtime cost.
//
// Three wrapper families share the same foundation:
//
//   - IDFor tags opaque identifiers. It supports equality, ordering,
//     hashing and map-key use by delegating to the representation, and
//     deliberately has no arithmetic.
//   - AmountFor tags relative quantities (a delta of some unit) and
//     InstantFor tags absolute points in that unit. Together they form
//     an affine pair: instant − instant = amount, instant ± amount =
//     instant, amount + amount = amount. Two absolute points can never
//     be summed directly.
//
// Every family takes a capability descriptor (Caps) selecting whether
// the concrete wrapper type exposes gated duplication (DupID and
// friends) and zero-value construction (ZeroID and friends). The short
// aliases ID, Amount and Instant use the standard descriptor granting
// both; the NoCopy/NoDefault alias variants opt out.
//
// Wrapper values serialize exactly as their bare representation in
// JSON, CBOR and YAML: no envelope, no marker metadata, byte-identical
// output.
package phantom
