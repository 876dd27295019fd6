// Package test holds helpers shared by the tests in this module.
package test

import (
	"bytes"
	"errors"
	"testing"

	rec "github.com/dirkmc/go-ipns/record"
	u "github.com/ipfs/go-ipfs-util"
	ci "github.com/libp2p/go-libp2p/core/crypto"
)

// Ed25519Identity returns a deterministic ed25519 identity. Its public key
// is inlined in the peer ID.
func Ed25519Identity(t testing.TB, seed int64) rec.Identity {
	t.Helper()
	sk, _, err := ci.GenerateEd25519Key(u.NewSeededRand(seed))
	if err != nil {
		t.Fatal(err)
	}
	return identity(t, sk)
}

// RSAIdentity returns an RSA identity. RSA public keys are too large to be
// inlined, so the peer ID is a hash of the key.
func RSAIdentity(t testing.TB, seed int64) rec.Identity {
	t.Helper()
	sk, _, err := ci.GenerateKeyPairWithReader(ci.RSA, 2048, u.NewSeededRand(seed))
	if err != nil {
		t.Fatal(err)
	}
	return identity(t, sk)
}

func identity(t testing.TB, sk ci.PrivKey) rec.Identity {
	t.Helper()
	id, err := rec.NewIdentity(sk)
	if err != nil {
		t.Fatal(err)
	}
	return id
}

var ErrSignerBroken = errors.New("signer broken")

// FailingSigner is a private key whose Sign fails. With V1Only set it only
// fails for payloads that are not V2 signature payloads.
type FailingSigner struct {
	ci.PrivKey
	V1Only bool
}

func (s FailingSigner) Sign(data []byte) ([]byte, error) {
	if s.V1Only && bytes.HasPrefix(data, []byte("ipns-signature:")) {
		return s.PrivKey.Sign(data)
	}
	return nil, ErrSignerBroken
}
