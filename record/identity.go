package record

import (
	"fmt"

	ci "github.com/libp2p/go-libp2p/core/crypto"
	peer "github.com/libp2p/go-libp2p/core/peer"
)

// Identity is a name records are published under, with whatever key
// material is known for it. PrivKey is nil for identities that can only be
// used to validate; PubKey is nil when the key is neither known nor inlined
// in the ID.
type Identity struct {
	ID      peer.ID
	PrivKey ci.PrivKey
	PubKey  ci.PubKey
}

// NewIdentity returns a signing identity for sk.
func NewIdentity(sk ci.PrivKey) (Identity, error) {
	id, err := peer.IDFromPrivateKey(sk)
	if err != nil {
		return Identity{}, fmt.Errorf("deriving peer ID: %w", err)
	}
	return Identity{ID: id, PrivKey: sk, PubKey: sk.GetPublic()}, nil
}

// IdentityFromID returns an identity without signing capability.
func IdentityFromID(id peer.ID) Identity {
	// ErrNoPublicKey just means the key is hashed into the ID
	pk, _ := id.ExtractPublicKey()
	return Identity{ID: id, PubKey: pk}
}

// Bytes returns the raw bytes of the peer ID.
func (i Identity) Bytes() []byte {
	return []byte(i.ID)
}

// CanSign reports whether records can be created for the identity.
func (i Identity) CanSign() bool {
	return i.PrivKey != nil
}
