package i64

import (
	"github.com/fxamacker/cbor/v2"
	"github.com/pkg/errors"
)

// MarshalCBOR implements the [cbor.Marshaler] interface.
// The integer is encoded as a CBOR unsigned (major type 0) or negative
// (major type 1) integer in its shortest form.
//
// [cbor.Marshaler]: https://pkg.go.dev/github.com/fxamacker/cbor/v2#Marshaler
func (x Int64) MarshalCBOR() ([]byte, error) {
	return cbor.Marshal(x.v)
}

// UnmarshalCBOR implements the [cbor.Unmarshaler] interface.
// It accepts CBOR integers within the signed 64-bit range.
//
// [cbor.Unmarshaler]: https://pkg.go.dev/github.com/fxamacker/cbor/v2#Unmarshaler
func (x *Int64) UnmarshalCBOR(data []byte) error {
	var v int64
	if err := cbor.Unmarshal(data, &v); err != nil {
		return errors.Wrapf(ErrInvalidInput, "decoding CBOR: %v", err)
	}
	x.v = v
	return nil
}
