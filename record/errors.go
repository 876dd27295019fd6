package record

import (
	"errors"

	ld "github.com/dirkmc/go-ipns/ipld"
	rsp "github.com/dirkmc/go-ipns/path"
)

var (
	// ErrMissingPrivateKey is returned when creating a record for an identity
	// that cannot sign.
	ErrMissingPrivateKey = errors.New("missing private key")

	// ErrSignatureCreation is returned when the signing primitive fails.
	ErrSignatureCreation = errors.New("record signature creation failed")

	// ErrDecode is returned for malformed envelopes, data blobs and keys.
	ErrDecode = ld.ErrDecode

	// ErrRecordTooLarge is returned for encoded records above MaxRecordSize.
	ErrRecordTooLarge = errors.New("record exceeds maximum size")

	// ErrMissingSignatureV2 is returned when a record has no V2 signature,
	// whatever its V1 signature says.
	ErrMissingSignatureV2 = errors.New("record is missing its V2 signature")

	// ErrInvalidSignatureV2 is returned when the V2 signature does not verify.
	ErrInvalidSignatureV2 = errors.New("invalid record V2 signature")

	// ErrMissingSignatureV1 is returned by the legacy checker for V2-only records.
	ErrMissingSignatureV1 = errors.New("record is missing its V1 signature")

	// ErrInvalidSignatureV1 is returned by the legacy checker.
	ErrInvalidSignatureV1 = errors.New("invalid record V1 signature")

	// ErrFieldMismatch is returned when a plain-text envelope field disagrees
	// with the signed data blob.
	ErrFieldMismatch = errors.New("record field does not match signed data")

	// ErrUnsupportedValidityType is returned for validity types other than EOL.
	ErrUnsupportedValidityType = ld.ErrUnsupportedValidityType

	// ErrExpiredRecord should be returned when a record is
	// invalid due to being too old
	ErrExpiredRecord = errors.New("expired record")

	// ErrInvalidValidity is returned for unparsable EOL timestamps.
	ErrInvalidValidity = errors.New("invalid record validity")

	// ErrPublicKeyMismatch is returned when a public key does not belong to
	// the name it is used with.
	ErrPublicKeyMismatch = errors.New("public key does not match name")

	// ErrPublicKeyNotFound is returned when neither the name nor the record
	// carries a public key.
	ErrPublicKeyNotFound = errors.New("public key not found in name or record")

	// ErrInvalidValue is returned for values that are not valid paths.
	ErrInvalidValue = rsp.ErrInvalidValue
)
