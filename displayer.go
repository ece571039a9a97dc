package phantom

// DisplayerOf is implemented by a marker type to supply custom
// rendering for a wrapper it tags but does not define. A generic
// wrapper cannot know how to render every (marker, representation)
// combination; this indirection hands the decision back to the marker:
//
//	type message struct{}
//	type MessageID = phantom.ID[message, [32]byte]
//
//	func (message) Display(id *MessageID) string {
//		return hex.EncodeToString(id.Get()[:])
//	}
//
//	fmt.Println(phantom.DisplayID(&id)) // hex, not the raw array
//
// Markers implementing DisplayerOf must be zero-size struct types; the
// proxy instantiates the marker's zero value to dispatch the call.
type DisplayerOf[T any] interface {
	Display(value *T) string
}

// DisplayProxy borrows a wrapper for the duration of one formatting
// call and forwards rendering to the marker type D. It is returned by
// DisplayID, DisplayAmount and DisplayInstant and is not meant to be
// stored.
type DisplayProxy[T any, D DisplayerOf[T]] struct {
	value *T
}

// String renders the borrowed value through D, satisfying fmt.Stringer
// so the proxy drops straight into fmt verbs.
func (p DisplayProxy[T, D]) String() string {
	var d D
	return d.Display(p.value)
}

// DisplayID returns a proxy rendering id through its Entity marker.
// It compiles only when Entity implements DisplayerOf for this exact
// identifier type.
func DisplayID[Entity DisplayerOf[IDFor[Entity, Repr, C]], Repr comparable, C Caps](id *IDFor[Entity, Repr, C]) DisplayProxy[IDFor[Entity, Repr, C], Entity] {
	return DisplayProxy[IDFor[Entity, Repr, C], Entity]{value: id}
}

// DisplayAmount returns a proxy rendering a through its Unit marker.
func DisplayAmount[Unit DisplayerOf[AmountFor[Unit, Repr, C]], Repr Number, C Caps](a *AmountFor[Unit, Repr, C]) DisplayProxy[AmountFor[Unit, Repr, C], Unit] {
	return DisplayProxy[AmountFor[Unit, Repr, C], Unit]{value: a}
}

// DisplayInstant returns a proxy rendering t through its Unit marker.
func DisplayInstant[Unit DisplayerOf[InstantFor[Unit, Repr, C]], Repr Number, C Caps](t *InstantFor[Unit, Repr, C]) DisplayProxy[InstantFor[Unit, Repr, C], Unit] {
	return DisplayProxy[InstantFor[Unit, Repr, C], Unit]{value: t}
}
