package phantom

import (
	"hash/maphash"
	"slices"
	"testing"
	"testing/quick"
	"unsafe"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type user struct{}
type post struct{}

type userID = ID[user, uint64]
type postID = ID[post, uint64]

func TestIDNewGet(t *testing.T) {
	id := NewID[user](uint64(15))
	require.Equal(t, uint64(15), id.Get())
	require.Equal(t, NewID[user](uint64(15)), id)
	require.NotEqual(t, NewID[user](uint64(16)), id)
}

func TestIDGetRoundTripsAnyRepr(t *testing.T) {
	err := quick.Check(func(x uint64) bool {
		return NewID[user](x).Get() == x
	}, nil)
	require.NoError(t, err)

	err = quick.Check(func(s string) bool {
		return NewID[user](s).Get() == s
	}, nil)
	require.NoError(t, err)
}

func TestIDMarkersAreFree(t *testing.T) {
	// the phantom tag adds no hidden byte: wrapper layout == repr layout
	assert.Equal(t, unsafe.Sizeof(uint64(0)), unsafe.Sizeof(userID{}))
	assert.Equal(t, unsafe.Sizeof(""), unsafe.Sizeof(ID[user, string]{}))
	assert.Equal(t, unsafe.Sizeof([32]byte{}), unsafe.Sizeof(ID[user, [32]byte]{}))
	assert.Equal(t, unsafe.Sizeof(uuid.UUID{}), unsafe.Sizeof(ID[user, uuid.UUID]{}))
}

func TestIDAsMapKey(t *testing.T) {
	users := map[ID[user, string]]int{}
	id := NewID[user]("john")
	users[id] = 42
	got, ok := users[id.Clone()]
	require.True(t, ok)
	require.Equal(t, 42, got)
}

func TestIDOrdering(t *testing.T) {
	a := NewID[user](uint64(3))
	b := NewID[user](uint64(5))
	assert.True(t, LessID(a, b))
	assert.False(t, LessID(b, a))
	assert.Equal(t, -1, CompareID(a, b))
	assert.Equal(t, 0, CompareID(a, a))
	assert.Equal(t, 1, CompareID(b, a))

	ids := []userID{NewID[user](uint64(9)), NewID[user](uint64(1)), NewID[user](uint64(4))}
	slices.SortFunc(ids, CompareID)
	assert.True(t, slices.IsSortedFunc(ids, CompareID))
	assert.Equal(t, uint64(1), ids[0].Get())
}

func TestIDZeroValue(t *testing.T) {
	z := ZeroID[user, uint64, CopyDefault]()
	assert.True(t, z.IsZero())
	assert.Equal(t, uint64(0), z.Get())

	var v userID
	assert.Equal(t, z, v)
	assert.False(t, NewID[user](uint64(1)).IsZero())
}

func TestIDDupAndClone(t *testing.T) {
	id := NewID[user](uint64(7))
	assert.Equal(t, id, DupID(id))

	noCopy := NewIDFor[user, NoCaps](uint64(7))
	assert.Equal(t, noCopy, noCopy.Clone())
	assert.Equal(t, uint64(7), noCopy.Get())
}

func TestIDHash(t *testing.T) {
	seed := maphash.MakeSeed()
	a := NewID[user](uint64(99))
	b := NewID[user](uint64(99))
	c := NewID[user](uint64(100))
	assert.Equal(t, HashID(seed, a), HashID(seed, b))
	assert.NotEqual(t, HashID(seed, a), HashID(seed, c))
}

func TestIDUUIDRepr(t *testing.T) {
	u := uuid.MustParse("a2c8f4e0-3b1d-4a5e-9c7f-0123456789ab")
	id := NewID[user](u)
	require.Equal(t, u, id.Get())

	byID := map[ID[user, uuid.UUID]]string{id: "john"}
	require.Equal(t, "john", byID[NewID[user](u)])
}

func TestIDString(t *testing.T) {
	assert.Equal(t, "15", NewID[user](uint64(15)).String())
	assert.Equal(t, "john", NewID[user]("john").String())
}

// userID and postID share the uint64 representation, yet a userID can
// only become a postID through an explicit conversion. Assignment or ==
// across markers does not compile, which is the point of the tag.
func TestIDExplicitConversionAcrossMarkers(t *testing.T) {
	uid := NewID[user](uint64(15))
	pid := postID(uid)
	require.Equal(t, uid.Get(), pid.Get())
}
