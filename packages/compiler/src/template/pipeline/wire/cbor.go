package wire

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// cborEncMode uses canonical encoding so equal blocks always produce equal bytes.
var cborEncMode cbor.EncMode

func init() {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(fmt.Sprintf("wire: failed to create CBOR enc mode: %v", err))
	}
	cborEncMode = em
}

// MarshalCBOR implements cbor.Marshaler
func (b *SerializedTemplateBlock) MarshalCBOR() ([]byte, error) {
	return cborEncMode.Marshal(b.Tuple())
}

// MarshalCBOR implements cbor.Marshaler
func (b *SerializedInlineBlock) MarshalCBOR() ([]byte, error) {
	return cborEncMode.Marshal(b.Tuple())
}

// MarshalCanonicalCBOR serializes any value with the canonical encoding.
func MarshalCanonicalCBOR(v interface{}) ([]byte, error) {
	return cborEncMode.Marshal(v)
}

// UnmarshalCBOR decodes canonical CBOR into generic values.
func UnmarshalCBOR(data []byte) (interface{}, error) {
	var v interface{}
	if err := cbor.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("wire: unmarshal cbor: %w", err)
	}
	return v, nil
}
