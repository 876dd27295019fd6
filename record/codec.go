package record

import (
	"errors"
	"fmt"

	pb "github.com/dirkmc/go-ipns/pb"
	proto "github.com/gogo/protobuf/proto"
)

// MaxRecordSize is the largest encoded record Unmarshal accepts.
const MaxRecordSize = 10 << 10

// Marshal encodes r as a protobuf envelope.
func Marshal(r *Record) ([]byte, error) {
	if r == nil || r.entry == nil {
		return nil, errors.New("cannot marshal nil record")
	}
	return proto.Marshal(r.entry)
}

// Unmarshal decodes an envelope. It only checks structure: signatures,
// keys and validity are left to ValidateRecord.
func Unmarshal(data []byte) (*Record, error) {
	if len(data) > MaxRecordSize {
		return nil, fmt.Errorf("%w: %d > %d bytes", ErrRecordTooLarge, len(data), MaxRecordSize)
	}

	entry := new(pb.IpnsEntry)
	if err := proto.Unmarshal(data, entry); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return &Record{entry: entry}, nil
}
