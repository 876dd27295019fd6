// Package record builds, encodes and validates IPNS records.
//
// A record carries its payload twice: as plain envelope fields, which legacy
// readers and the V1 signature use, and as a canonical DAG-CBOR blob, which
// the V2 signature covers. The blob is authoritative; the envelope fields are
// only checked against it.
package record

import (
	"math"
	"time"

	ld "github.com/dirkmc/go-ipns/ipld"
	pb "github.com/dirkmc/go-ipns/pb"
	proto "github.com/gogo/protobuf/proto"
	logging "github.com/ipfs/go-log/v2"
)

var log = logging.Logger("ipns/record")

// Record is a signed IPNS record. It is never modified after construction;
// accessors hand out copies.
type Record struct {
	entry *pb.IpnsEntry
}

// FromProto wraps a copy of an envelope. No checks are performed.
func FromProto(e *pb.IpnsEntry) *Record {
	return &Record{entry: proto.Clone(e).(*pb.IpnsEntry)}
}

// Proto returns a copy of the record's envelope.
func (r *Record) Proto() *pb.IpnsEntry {
	return proto.Clone(r.entry).(*pb.IpnsEntry)
}

// Data decodes the signed data blob.
func (r *Record) Data() (ld.Data, error) {
	return ld.Decode(r.entry.GetData())
}

// Value returns the path the record points to.
func (r *Record) Value() (string, error) {
	d, err := r.Data()
	if err != nil {
		return "", err
	}
	return string(d.Value), nil
}

// Validity returns the end of life of the record.
func (r *Record) Validity() (time.Time, error) {
	d, err := r.Data()
	if err != nil {
		return time.Time{}, err
	}
	return parseValidity(d.Validity)
}

// ValidityType returns how Validity is to be interpreted, always EOL for
// records that decode.
func (r *Record) ValidityType() (ld.ValidityType, error) {
	d, err := r.Data()
	if err != nil {
		return 0, err
	}
	return d.ValidityType, nil
}

// Sequence returns the record's sequence number.
func (r *Record) Sequence() (uint64, error) {
	d, err := r.Data()
	if err != nil {
		return 0, err
	}
	return d.Sequence, nil
}

// TTL is an advisory refresh interval, it does not affect validity.
func (r *Record) TTL() (time.Duration, error) {
	d, err := r.Data()
	if err != nil {
		return 0, err
	}
	if d.TTL > math.MaxInt64 {
		return time.Duration(math.MaxInt64), nil
	}
	return time.Duration(d.TTL), nil
}

// PubKey returns the embedded public key, or nil if the record has none.
func (r *Record) PubKey() []byte {
	return copyBytes(r.entry.GetPubKey())
}

// HasSignatureV1 reports whether the record carries the legacy signature.
func (r *Record) HasSignatureV1() bool {
	return len(r.entry.GetSignatureV1()) > 0
}

func copyBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	return append([]byte{}, b...)
}
