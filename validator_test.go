package ipns_test

import (
	"testing"
	"time"

	ipns "github.com/dirkmc/go-ipns"
	rec "github.com/dirkmc/go-ipns/record"
	tu "github.com/dirkmc/go-ipns/test"
	proto "github.com/gogo/protobuf/proto"
	"github.com/stretchr/testify/require"
)

const value = "/ipfs/bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi"

func marshal(t *testing.T, r *rec.Record) []byte {
	t.Helper()
	raw, err := rec.Marshal(r)
	require.NoError(t, err)
	return raw
}

func TestValidatorAcceptsFreshRecords(t *testing.T) {
	v := ipns.Validator{}

	for name, id := range map[string]rec.Identity{
		"ed25519": tu.Ed25519Identity(t, 10),
		"rsa":     tu.RSAIdentity(t, 11),
	} {
		t.Run(name, func(t *testing.T) {
			for _, compat := range []bool{true, false} {
				r, err := rec.Create(id, value, 1, time.Hour, rec.WithV1Compatibility(compat))
				require.NoError(t, err)
				require.NoError(t, v.Validate(string(ipns.RoutingKey(id.ID)), marshal(t, r)))
			}
		})
	}
}

func TestValidatorRequiresEmbeddedKeyForHashedIDs(t *testing.T) {
	id := tu.RSAIdentity(t, 12)

	r, err := rec.Create(id, value, 1, time.Hour)
	require.NoError(t, err)
	require.NotNil(t, r.PubKey())

	e := r.Proto()
	e.PubKey = nil
	raw, err := proto.Marshal(e)
	require.NoError(t, err)

	err = ipns.Validator{}.Validate(string(ipns.RoutingKey(id.ID)), raw)
	require.ErrorIs(t, err, rec.ErrPublicKeyNotFound)
}

func TestValidatorRejectsOtherNames(t *testing.T) {
	v := ipns.Validator{}
	ed, otherEd := tu.Ed25519Identity(t, 13), tu.Ed25519Identity(t, 14)
	rsa, otherRSA := tu.RSAIdentity(t, 15), tu.RSAIdentity(t, 16)

	r, err := rec.Create(ed, value, 1, time.Hour)
	require.NoError(t, err)
	err = v.Validate(string(ipns.RoutingKey(otherEd.ID)), marshal(t, r))
	require.ErrorIs(t, err, rec.ErrInvalidSignatureV2)

	r, err = rec.Create(rsa, value, 1, time.Hour)
	require.NoError(t, err)
	err = v.Validate(string(ipns.RoutingKey(otherRSA.ID)), marshal(t, r))
	require.ErrorIs(t, err, rec.ErrPublicKeyMismatch)

	err = v.Validate("/pk/"+string(rsa.ID), marshal(t, r))
	require.ErrorIs(t, err, ipns.ErrInvalidRoutingKey)
}

func TestValidatorRejectsExpiredAndGarbage(t *testing.T) {
	v := ipns.Validator{}
	id := tu.Ed25519Identity(t, 17)
	key := string(ipns.RoutingKey(id.ID))

	r, err := rec.CreateWithExpiration(id, value, 1, "2020-01-01T00:00:00Z")
	require.NoError(t, err)
	require.ErrorIs(t, v.Validate(key, marshal(t, r)), rec.ErrExpiredRecord)

	require.ErrorIs(t, v.Validate(key, []byte{0x0a, 0x7f}), rec.ErrDecode)
}
