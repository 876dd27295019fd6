package record

import (
	"bytes"
	"fmt"

	ci "github.com/libp2p/go-libp2p/core/crypto"
	peer "github.com/libp2p/go-libp2p/core/peer"
	mh "github.com/multiformats/go-multihash"
)

// ExtractPublicKey returns the key that must have signed r for it to be
// valid under id. A key embedded in the record wins but has to hash to id;
// otherwise the key has to be inlined in id itself.
func ExtractPublicKey(id peer.ID, r *Record) (ci.PubKey, error) {
	if r == nil || r.entry == nil {
		return nil, fmt.Errorf("%w: nil record", ErrDecode)
	}
	if pkb := r.entry.GetPubKey(); len(pkb) > 0 {
		pk, err := ci.UnmarshalPublicKey(pkb)
		if err != nil {
			return nil, fmt.Errorf("%w: embedded public key: %w", ErrDecode, err)
		}

		expected, err := peer.IDFromPublicKey(pk)
		if err != nil {
			return nil, fmt.Errorf("%w: embedded public key: %w", ErrDecode, err)
		}
		if expected != id {
			return nil, fmt.Errorf("%w: embedded key is for %s, not %s", ErrPublicKeyMismatch, expected, id)
		}
		return pk, nil
	}

	pk, err := id.ExtractPublicKey()
	if err != nil || pk == nil {
		return nil, fmt.Errorf("%w: %s", ErrPublicKeyNotFound, id)
	}
	return pk, nil
}

// embeddedKey returns the marshaled public key if it has to travel with the
// record, or nil when id is an identity multihash of that very key.
func embeddedKey(id peer.ID, pk ci.PubKey) ([]byte, error) {
	pkb, err := ci.MarshalPublicKey(pk)
	if err != nil {
		return nil, fmt.Errorf("marshaling public key: %w", err)
	}

	dh, err := mh.Decode([]byte(id))
	if err == nil && dh.Code == mh.IDENTITY && bytes.Equal(dh.Digest, pkb) {
		return nil, nil
	}
	return pkb, nil
}
