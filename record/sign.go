package record

import (
	"fmt"

	pb "github.com/dirkmc/go-ipns/pb"
	ci "github.com/libp2p/go-libp2p/core/crypto"
)

func signV1(sk ci.PrivKey, value []byte, typ pb.IpnsEntry_ValidityType, validity []byte) ([]byte, error) {
	sig, err := sk.Sign(RecordDataForSig(value, typ, validity))
	if err != nil {
		log.Errorf("record V1 signature creation failed: %s", err)
		return nil, fmt.Errorf("%w: %w", ErrSignatureCreation, err)
	}
	return sig, nil
}

func signV2(sk ci.PrivKey, data []byte) ([]byte, error) {
	sig, err := sk.Sign(RecordDataForSigV2(data))
	if err != nil {
		log.Errorf("record V2 signature creation failed: %s", err)
		return nil, fmt.Errorf("%w: %w", ErrSignatureCreation, err)
	}
	return sig, nil
}

func verifyV2(pk ci.PubKey, data []byte, sig []byte) error {
	if ok, err := pk.Verify(RecordDataForSigV2(data), sig); err != nil || !ok {
		return ErrInvalidSignatureV2
	}
	return nil
}

// VerifyV1 checks the legacy signature the way a V1-only validator would,
// using the plain envelope fields. ValidateRecord does not need it: a valid
// V2 signature is sufficient.
func VerifyV1(pk ci.PubKey, r *Record) error {
	if r == nil || r.entry == nil {
		return fmt.Errorf("%w: nil record", ErrDecode)
	}
	e := r.entry
	if len(e.GetSignatureV1()) == 0 {
		return ErrMissingSignatureV1
	}

	data := RecordDataForSig(e.GetValue(), e.GetValidityType(), e.GetValidity())
	if ok, err := pk.Verify(data, e.GetSignatureV1()); err != nil || !ok {
		return ErrInvalidSignatureV1
	}
	return nil
}
