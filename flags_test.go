package phantom

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestFlagsPredicates(t *testing.T) {
	assert.True(t, FlagsCopyDefault.IsCopy())
	assert.True(t, FlagsCopyOnly.IsCopy())
	assert.False(t, FlagsDefaultOnly.IsCopy())
	assert.False(t, FlagsNone.IsCopy())

	assert.True(t, FlagsCopyDefault.IsDefault())
	assert.True(t, FlagsDefaultOnly.IsDefault())
	assert.False(t, FlagsCopyOnly.IsDefault())
	assert.False(t, FlagsNone.IsDefault())
}

func TestFlagsBitLayout(t *testing.T) {
	// bit 0 = copy, bit 1 = default; callers branch on these bits
	assert.Equal(t, Flags(0b00), FlagsNone)
	assert.Equal(t, Flags(0b01), FlagsCopyOnly)
	assert.Equal(t, Flags(0b10), FlagsDefaultOnly)
	assert.Equal(t, Flags(0b11), FlagsCopyDefault)
}

func TestFlagsOfMarkers(t *testing.T) {
	assert.Equal(t, FlagsCopyDefault, FlagsOf[CopyDefault]())
	assert.Equal(t, FlagsCopyOnly, FlagsOf[CopyOnly]())
	assert.Equal(t, FlagsDefaultOnly, FlagsOf[DefaultOnly]())
	assert.Equal(t, FlagsNone, FlagsOf[NoCaps]())
}

func TestCapsMarkersAreZeroSize(t *testing.T) {
	assert.EqualValues(t, 0, unsafe.Sizeof(CopyDefault{}))
	assert.EqualValues(t, 0, unsafe.Sizeof(CopyOnly{}))
	assert.EqualValues(t, 0, unsafe.Sizeof(DefaultOnly{}))
	assert.EqualValues(t, 0, unsafe.Sizeof(NoCaps{}))
}
