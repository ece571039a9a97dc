package phantom

import (
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

type message struct{}

type messageID = ID[message, [32]byte]

func (message) Display(id *messageID) string {
	r := id.Get()
	return hex.EncodeToString(r[:])
}

type yearUnit struct{}

type yearAD = Instant[yearUnit, uint64]

func (yearUnit) Display(y *yearAD) string {
	return fmt.Sprintf("%d AD", y.Get())
}

type byteUnit struct{}

type byteCount = Amount[byteUnit, uint64]

func (byteUnit) Display(a *byteCount) string {
	return fmt.Sprintf("%d B", a.Get())
}

func TestDisplayIDDelegatesToMarker(t *testing.T) {
	var raw [32]byte
	for i := range raw {
		raw[i] = byte(i)
	}
	id := NewID[message](raw)

	want := "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"
	assert.Equal(t, want, DisplayID(&id).String())
	assert.Equal(t, want, fmt.Sprintf("%v", DisplayID(&id)))
}

func TestDisplayInstantDelegatesToMarker(t *testing.T) {
	y := NewInstant[yearUnit](uint64(1221))
	assert.Equal(t, "1221 AD", DisplayInstant(&y).String())
	// plain String still formats as the bare repr
	assert.Equal(t, "1221", y.String())
}

func TestDisplayAmountDelegatesToMarker(t *testing.T) {
	a := NewAmount[byteUnit](uint64(4096))
	assert.Equal(t, "4096 B", fmt.Sprint(DisplayAmount(&a)))
}
