package phantom

import (
	"encoding/json"

	"github.com/fxamacker/cbor/v2"
	"gopkg.in/yaml.v3"
)

// Serialization transparency: a wrapper serializes exactly as its bare
// Repr in every supported format — no envelope, no marker metadata.
// marshal(wrap(x)) == marshal(x) and unmarshal round-trips, so wrappers
// drop into existing wire formats and storage schemas unchanged.
//
// Encode/decode errors are those of the underlying codec for Repr,
// passed through untouched.

// MarshalJSON implements json.Marshaler by delegating to Repr.
func (id IDFor[Entity, Repr, C]) MarshalJSON() ([]byte, error) {
	return json.Marshal(id.repr)
}

// UnmarshalJSON implements json.Unmarshaler by delegating to Repr.
func (id *IDFor[Entity, Repr, C]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &id.repr)
}

// MarshalCBOR implements cbor.Marshaler by delegating to Repr.
func (id IDFor[Entity, Repr, C]) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(id.repr)
}

// UnmarshalCBOR implements cbor.Unmarshaler by delegating to Repr.
func (id *IDFor[Entity, Repr, C]) UnmarshalCBOR(data []byte) error {
	return cbor.Unmarshal(data, &id.repr)
}

// MarshalYAML implements yaml.Marshaler by delegating to Repr.
func (id IDFor[Entity, Repr, C]) MarshalYAML() (any, error) {
	return id.repr, nil
}

// UnmarshalYAML implements yaml.Unmarshaler by delegating to Repr.
func (id *IDFor[Entity, Repr, C]) UnmarshalYAML(node *yaml.Node) error {
	return node.Decode(&id.repr)
}

func (a AmountFor[Unit, Repr, C]) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.repr)
}

func (a *AmountFor[Unit, Repr, C]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &a.repr)
}

func (a AmountFor[Unit, Repr, C]) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(a.repr)
}

func (a *AmountFor[Unit, Repr, C]) UnmarshalCBOR(data []byte) error {
	return cbor.Unmarshal(data, &a.repr)
}

func (a AmountFor[Unit, Repr, C]) MarshalYAML() (any, error) {
	return a.repr, nil
}

func (a *AmountFor[Unit, Repr, C]) UnmarshalYAML(node *yaml.Node) error {
	return node.Decode(&a.repr)
}

func (t InstantFor[Unit, Repr, C]) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.repr)
}

func (t *InstantFor[Unit, Repr, C]) UnmarshalJSON(data []byte) error {
	return json.Unmarshal(data, &t.repr)
}

func (t InstantFor[Unit, Repr, C]) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(t.repr)
}

func (t *InstantFor[Unit, Repr, C]) UnmarshalCBOR(data []byte) error {
	return cbor.Unmarshal(data, &t.repr)
}

func (t InstantFor[Unit, Repr, C]) MarshalYAML() (any, error) {
	return t.repr, nil
}

func (t *InstantFor[Unit, Repr, C]) UnmarshalYAML(node *yaml.Node) error {
	return node.Decode(&t.repr)
}
