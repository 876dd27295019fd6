// Package ipld implements the canonical DAG-CBOR payload embedded in every
// IPNS record. The encoded bytes are what the V2 signature covers, so the
// encoding must be byte-for-byte deterministic.
package ipld

import (
	"errors"
	"fmt"

	cbor "github.com/fxamacker/cbor/v2"
)

// ErrDecode is returned for structurally invalid record data.
var ErrDecode = errors.New("malformed record data")

// ErrUnsupportedValidityType is returned when the data carries a validity
// type other than EOL.
var ErrUnsupportedValidityType = errors.New("unsupported validity type")

// ValidityType says how the Validity bytes of a record are interpreted.
type ValidityType uint64

const (
	// ValidityEOL says "this record is valid until..."
	ValidityEOL ValidityType = 0
)

func (t ValidityType) String() string {
	switch t {
	case ValidityEOL:
		return "EOL"
	default:
		return fmt.Sprintf("ValidityType(%d)", uint64(t))
	}
}

// Data is the versionless payload of a record.
type Data struct {
	Value        []byte
	Validity     []byte
	ValidityType ValidityType
	Sequence     uint64
	TTL          uint64
}

const (
	keyValue        = "Value"
	keyValidity     = "Validity"
	keyValidityType = "ValidityType"
	keySequence     = "Sequence"
	keyTTL          = "TTL"
)

// CBOR major types we accept for the payload fields.
const (
	majorUint  = 0
	majorBytes = 2
)

var (
	encMode cbor.EncMode
	decMode cbor.DecMode
)

func init() {
	var err error
	// Canonical CBOR sorts map keys length-first, which matches DAG-CBOR.
	encMode, err = cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	decMode, err = cbor.DecOptions{
		DupMapKey:   cbor.DupMapKeyEnforcedAPF,
		IndefLength: cbor.IndefLengthForbidden,
		TagsMd:      cbor.TagsForbidden,
	}.DecMode()
	if err != nil {
		panic(err)
	}
}

// Encode serializes d. Identical field values always produce identical bytes.
func Encode(d Data) ([]byte, error) {
	m := map[string]interface{}{
		keyValue:        nonNil(d.Value),
		keyValidity:     nonNil(d.Validity),
		keyValidityType: uint64(d.ValidityType),
		keySequence:     d.Sequence,
		keyTTL:          d.TTL,
	}
	b, err := encMode.Marshal(m)
	if err != nil {
		return nil, fmt.Errorf("encoding record data: %w", err)
	}
	return b, nil
}

// Decode parses b into a Data. All five fields are required; keys it does
// not know about are ignored.
func Decode(b []byte) (Data, error) {
	var fields map[string]cbor.RawMessage
	if err := decMode.Unmarshal(b, &fields); err != nil {
		return Data{}, fmt.Errorf("%w: %w", ErrDecode, err)
	}

	var (
		d   Data
		typ uint64
		err error
	)
	if d.Value, err = bytesField(fields, keyValue); err != nil {
		return Data{}, err
	}
	if d.Validity, err = bytesField(fields, keyValidity); err != nil {
		return Data{}, err
	}
	if typ, err = uintField(fields, keyValidityType); err != nil {
		return Data{}, err
	}
	if d.Sequence, err = uintField(fields, keySequence); err != nil {
		return Data{}, err
	}
	if d.TTL, err = uintField(fields, keyTTL); err != nil {
		return Data{}, err
	}

	d.ValidityType = ValidityType(typ)
	if d.ValidityType != ValidityEOL {
		return Data{}, fmt.Errorf("%w: %d", ErrUnsupportedValidityType, typ)
	}
	return d, nil
}

func rawField(fields map[string]cbor.RawMessage, key string, major byte) (cbor.RawMessage, error) {
	raw, ok := fields[key]
	if !ok || len(raw) == 0 {
		return nil, fmt.Errorf("%w: missing field %q", ErrDecode, key)
	}
	if raw[0]>>5 != major {
		return nil, fmt.Errorf("%w: field %q has wrong type", ErrDecode, key)
	}
	return raw, nil
}

func bytesField(fields map[string]cbor.RawMessage, key string) ([]byte, error) {
	raw, err := rawField(fields, key, majorBytes)
	if err != nil {
		return nil, err
	}
	var v []byte
	if err := decMode.Unmarshal(raw, &v); err != nil {
		return nil, fmt.Errorf("%w: field %q: %w", ErrDecode, key, err)
	}
	return nonNil(v), nil
}

func uintField(fields map[string]cbor.RawMessage, key string) (uint64, error) {
	raw, err := rawField(fields, key, majorUint)
	if err != nil {
		return 0, err
	}
	var v uint64
	if err := decMode.Unmarshal(raw, &v); err != nil {
		return 0, fmt.Errorf("%w: field %q: %w", ErrDecode, key, err)
	}
	return v, nil
}

func nonNil(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	return b
}
