package pb

import (
	"testing"

	proto "github.com/gogo/protobuf/proto"
	descriptor "github.com/gogo/protobuf/protoc-gen-gogo/descriptor"
)

func TestOptionalPresence(t *testing.T) {
	in := &IpnsEntry{
		Value:        []byte("/ipfs/bafkqaaa"),
		SignatureV1:  []byte{},
		ValidityType: IpnsEntry_EOL.Enum(),
		Sequence:     proto.Uint64(0),
		SignatureV2:  []byte{1, 2, 3},
	}

	b, err := proto.Marshal(in)
	if err != nil {
		t.Fatal(err)
	}

	out := new(IpnsEntry)
	if err := proto.Unmarshal(b, out); err != nil {
		t.Fatal(err)
	}

	if out.SignatureV1 == nil {
		t.Fatal("empty signatureV1 should still be present")
	}
	if out.Sequence == nil || *out.Sequence != 0 {
		t.Fatal("zero sequence should still be present")
	}
	if out.ValidityType == nil || *out.ValidityType != IpnsEntry_EOL {
		t.Fatal("validity type lost")
	}
	if out.Ttl != nil {
		t.Fatal("ttl was never set")
	}
	if out.PubKey != nil || out.Validity != nil || out.Data != nil {
		t.Fatal("absent bytes fields came back present")
	}
	if !proto.Equal(in, out) {
		t.Fatalf("round trip mismatch:\n%s\n%s", in, out)
	}
}

func TestValidityTypeName(t *testing.T) {
	if IpnsEntry_EOL.String() != "EOL" {
		t.Fatalf("got %q", IpnsEntry_EOL.String())
	}
	if IpnsEntry_ValidityType(7).String() != "7" {
		t.Fatalf("got %q", IpnsEntry_ValidityType(7).String())
	}
}

func TestUnmarshalTruncated(t *testing.T) {
	b, err := proto.Marshal(&IpnsEntry{Value: []byte("/ipns/name")})
	if err != nil {
		t.Fatal(err)
	}
	if err := proto.Unmarshal(b[:len(b)-3], new(IpnsEntry)); err == nil {
		t.Fatal("expected truncated input to fail")
	}
}

func TestDescriptor(t *testing.T) {
	fd, md := descriptor.ForMessage(&IpnsEntry{})
	if fd.GetPackage() != "ipns.pb" || md.GetName() != "IpnsEntry" {
		t.Fatalf("unexpected descriptor %s.%s", fd.GetPackage(), md.GetName())
	}

	for _, f := range md.GetField() {
		if f.GetLabel() != descriptor.FieldDescriptorProto_LABEL_OPTIONAL {
			t.Fatalf("field %s should be optional", f.GetName())
		}
	}
	if len(md.GetField()) != 9 || md.GetField()[8].GetName() != "data" || md.GetField()[8].GetNumber() != 9 {
		t.Fatalf("unexpected fields %v", md.GetField())
	}
	if md.GetEnumType()[0].GetValue()[0].GetName() != IpnsEntry_EOL.String() {
		t.Fatal("enum descriptor does not match IpnsEntry_EOL")
	}
}
