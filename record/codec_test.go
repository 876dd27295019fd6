package record_test

import (
	"testing"
	"time"

	pb "github.com/dirkmc/go-ipns/pb"
	rec "github.com/dirkmc/go-ipns/record"
	tu "github.com/dirkmc/go-ipns/test"
	proto "github.com/gogo/protobuf/proto"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func optionalBytes(t *rapid.T, label string) []byte {
	if !rapid.Bool().Draw(t, label+"?") {
		return nil
	}
	return append([]byte{}, rapid.SliceOfN(rapid.Byte(), 0, 64).Draw(t, label)...)
}

func optionalUint64(t *rapid.T, label string) *uint64 {
	if !rapid.Bool().Draw(t, label+"?") {
		return nil
	}
	return proto.Uint64(rapid.Uint64().Draw(t, label))
}

func genEntry(t *rapid.T) *pb.IpnsEntry {
	e := &pb.IpnsEntry{
		Value:       optionalBytes(t, "value"),
		SignatureV1: optionalBytes(t, "signatureV1"),
		Validity:    optionalBytes(t, "validity"),
		Sequence:    optionalUint64(t, "sequence"),
		Ttl:         optionalUint64(t, "ttl"),
		PubKey:      optionalBytes(t, "pubKey"),
		SignatureV2: optionalBytes(t, "signatureV2"),
		Data:        optionalBytes(t, "data"),
	}
	if rapid.Bool().Draw(t, "validityType?") {
		e.ValidityType = pb.IpnsEntry_ValidityType(rapid.Int32Range(0, 3).Draw(t, "validityType")).Enum()
	}
	return e
}

func TestMarshalRoundTrip(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		in := genEntry(t)

		raw, err := rec.Marshal(rec.FromProto(in))
		if err != nil {
			t.Fatal(err)
		}
		r, err := rec.Unmarshal(raw)
		if err != nil {
			t.Fatal(err)
		}

		out := r.Proto()
		if !proto.Equal(in, out) {
			t.Fatalf("round trip mismatch:\n%s\n%s", in, out)
		}
		// absent stays absent, empty stays empty
		if (in.PubKey == nil) != (out.PubKey == nil) || (in.SignatureV1 == nil) != (out.SignatureV1 == nil) {
			t.Fatalf("optional presence changed:\n%s\n%s", in, out)
		}
		if (in.Ttl == nil) != (out.Ttl == nil) {
			t.Fatalf("ttl presence changed:\n%s\n%s", in, out)
		}
	})
}

func TestMarshalCreatedRecord(t *testing.T) {
	id := tu.RSAIdentity(t, 20)

	r, err := rec.Create(id, testValue, 9, time.Hour, rec.WithV1Compatibility(false))
	require.NoError(t, err)

	raw, err := rec.Marshal(r)
	require.NoError(t, err)
	out, err := rec.Unmarshal(raw)
	require.NoError(t, err)

	require.True(t, proto.Equal(r.Proto(), out.Proto()))
	require.Nil(t, out.Proto().SignatureV1)
	require.Equal(t, r.PubKey(), out.PubKey())
	require.NotNil(t, out.PubKey())
}

func TestUnmarshalMalformed(t *testing.T) {
	r, err := rec.Create(tu.Ed25519Identity(t, 21), testValue, 1, time.Hour)
	require.NoError(t, err)
	raw, err := rec.Marshal(r)
	require.NoError(t, err)

	_, err = rec.Unmarshal(raw[:len(raw)-5])
	require.ErrorIs(t, err, rec.ErrDecode)

	_, err = rec.Unmarshal([]byte{0x0a, 0xff, 0xff, 0xff, 0xff, 0x0f})
	require.ErrorIs(t, err, rec.ErrDecode)

	_, err = rec.Unmarshal(make([]byte, rec.MaxRecordSize+1))
	require.ErrorIs(t, err, rec.ErrRecordTooLarge)
}

func TestUnmarshalDoesNotValidate(t *testing.T) {
	// no signatures at all is still a well formed envelope
	raw, err := proto.Marshal(&pb.IpnsEntry{Value: []byte(testValue)})
	require.NoError(t, err)

	r, err := rec.Unmarshal(raw)
	require.NoError(t, err)
	require.False(t, r.HasSignatureV1())
}

func TestMarshalNil(t *testing.T) {
	_, err := rec.Marshal(nil)
	require.Error(t, err)
}
