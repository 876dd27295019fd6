package record

import (
	"bytes"
	"fmt"

	ld "github.com/dirkmc/go-ipns/ipld"
	pb "github.com/dirkmc/go-ipns/pb"
	ci "github.com/libp2p/go-libp2p/core/crypto"
)

// Validate decodes an encoded record and validates it against pk.
func Validate(pk ci.PubKey, raw []byte) error {
	r, err := Unmarshal(raw)
	if err != nil {
		return err
	}
	return ValidateRecord(pk, r)
}

// ValidateRecord checks, in order: the V2 signature is present and made by
// pk, the data blob decodes, the envelope fields agree with it, the validity
// type is EOL and the EOL has not passed. The V1 signature is not verified.
func ValidateRecord(pk ci.PubKey, r *Record) error {
	if r == nil || r.entry == nil {
		return fmt.Errorf("%w: nil record", ErrDecode)
	}
	if pk == nil {
		return ErrPublicKeyNotFound
	}
	e := r.entry

	sig := e.GetSignatureV2()
	if len(sig) == 0 {
		return ErrMissingSignatureV2
	}
	if err := verifyV2(pk, e.GetData(), sig); err != nil {
		log.Debugf("V2 signature check failed: %s", err)
		return err
	}

	d, err := ld.Decode(e.GetData())
	if err != nil {
		return err
	}
	if err := checkFieldsMatch(e, d); err != nil {
		return err
	}

	if e.GetValidityType() != pb.IpnsEntry_EOL {
		return fmt.Errorf("%w: %s", ErrUnsupportedValidityType, e.GetValidityType())
	}

	eol, err := parseValidity(d.Validity)
	if err != nil {
		return err
	}
	return eolValidityCheck(eol)
}

// checkFieldsMatch compares the envelope duplicates with the signed data.
// A record with a V1 signature must duplicate every field. V2-only records
// may leave them out, but the ones they carry still have to agree.
func checkFieldsMatch(e *pb.IpnsEntry, d ld.Data) error {
	all := e.SignatureV1 != nil

	var field string
	switch {
	case (all || e.Value != nil) && !bytes.Equal(e.GetValue(), d.Value):
		field = "value"
	case (all || e.Validity != nil) && !bytes.Equal(e.GetValidity(), d.Validity):
		field = "validity"
	case (all || e.ValidityType != nil) && uint64(e.GetValidityType()) != uint64(d.ValidityType):
		field = "validityType"
	case (all || e.Sequence != nil) && e.GetSequence() != d.Sequence:
		field = "sequence"
	case (all || e.Ttl != nil) && e.GetTtl() != d.TTL:
		field = "ttl"
	default:
		return nil
	}
	return fmt.Errorf("%w: %s", ErrFieldMismatch, field)
}
