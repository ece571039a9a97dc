// Package codec wraps fxamacker/cbor with a fixed deterministic
// configuration. Same logical value, same bytes — which is what lets
// tests (and applications persisting tagged values) compare the
// encoding of a wrapper against the encoding of its bare
// representation byte for byte.
package codec

import (
	"io"

	"github.com/fxamacker/cbor/v2"
)

// encMode uses Core Deterministic Encoding (RFC 8949 §4.2): sorted map
// keys, shortest integer forms, no indefinite-length items.
var encMode cbor.EncMode

// decMode accepts standard CBOR; unknown struct fields are ignored so
// older readers keep working against newer writers.
var decMode cbor.DecMode

func init() {
	var err error
	encMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("codec: encoder init: " + err.Error())
	}
	decMode, err = cbor.DecOptions{}.DecMode()
	if err != nil {
		panic("codec: decoder init: " + err.Error())
	}
}

// Marshal encodes v deterministically.
func Marshal(v any) ([]byte, error) {
	return encMode.Marshal(v)
}

// Unmarshal decodes CBOR data into v.
func Unmarshal(data []byte, v any) error {
	return decMode.Unmarshal(data, v)
}

// Encoder and Decoder are stream aliases so callers import only this
// package, not fxamacker/cbor.
type (
	Encoder    = cbor.Encoder
	Decoder    = cbor.Decoder
	RawMessage = cbor.RawMessage
)

// NewEncoder returns a deterministic CBOR encoder writing to w.
func NewEncoder(w io.Writer) *Encoder {
	return encMode.NewEncoder(w)
}

// NewDecoder returns a CBOR decoder reading from r.
func NewDecoder(r io.Reader) *Decoder {
	return decMode.NewDecoder(r)
}
