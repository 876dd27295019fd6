package record

import (
	"fmt"
	"time"

	ld "github.com/dirkmc/go-ipns/ipld"
	rsp "github.com/dirkmc/go-ipns/path"
	pb "github.com/dirkmc/go-ipns/pb"
	proto "github.com/gogo/protobuf/proto"
)

// DefaultTTL is the advisory TTL of records created without WithTTL.
const DefaultTTL = time.Hour

type options struct {
	v1Compatible bool
	ttl          time.Duration
}

type Option func(*options)

// WithV1Compatibility controls whether the legacy V1 signature is added.
// Defaults to true. V2-only records are smaller but are rejected by
// validators that only understand V1.
func WithV1Compatibility(compatible bool) Option {
	return func(o *options) {
		o.v1Compatible = compatible
	}
}

// WithTTL sets the TTL hint of the record, independent of its EOL.
// Negative values are treated as zero.
func WithTTL(ttl time.Duration) Option {
	return func(o *options) {
		if ttl < 0 {
			ttl = 0
		}
		o.ttl = ttl
	}
}

// Create returns a record signed by id that maps it to value until
// lifetime from now.
//
// value may be a cid.Cid (stored as /ipfs/<CIDv1>), a peer.ID (stored as
// /ipns/<CIDv1>), or a path string starting with "/".
func Create(id Identity, value interface{}, seq uint64, lifetime time.Duration, opts ...Option) (*Record, error) {
	return create(id, value, seq, timeNow().Add(lifetime), opts)
}

// CreateWithExpiration is the same as Create, with an explicit RFC3339
// expiration. Nanosecond precision is kept.
func CreateWithExpiration(id Identity, value interface{}, seq uint64, expiration string, opts ...Option) (*Record, error) {
	eol, err := time.Parse(time.RFC3339Nano, expiration)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidValidity, err)
	}
	return create(id, value, seq, eol, opts)
}

func create(id Identity, value interface{}, seq uint64, eol time.Time, opts []Option) (*Record, error) {
	o := options{
		v1Compatible: true,
		ttl:          DefaultTTL,
	}
	for _, opt := range opts {
		opt(&o)
	}

	val, err := rsp.NormalizeValue(value)
	if err != nil {
		return nil, err
	}
	validity := formatValidity(eol)

	if !id.CanSign() {
		return nil, ErrMissingPrivateKey
	}
	if !id.ID.MatchesPrivateKey(id.PrivKey) {
		return nil, fmt.Errorf("%w: private key does not belong to %s", ErrPublicKeyMismatch, id.ID)
	}

	data, err := ld.Encode(ld.Data{
		Value:        []byte(val),
		Validity:     validity,
		ValidityType: ld.ValidityEOL,
		Sequence:     seq,
		TTL:          uint64(o.ttl),
	})
	if err != nil {
		return nil, err
	}

	sig2, err := signV2(id.PrivKey, data)
	if err != nil {
		return nil, err
	}

	entry := &pb.IpnsEntry{
		Value:        []byte(val),
		ValidityType: pb.IpnsEntry_EOL.Enum(),
		Validity:     validity,
		Sequence:     proto.Uint64(seq),
		Ttl:          proto.Uint64(uint64(o.ttl)),
		SignatureV2:  sig2,
		Data:         data,
	}

	if o.v1Compatible {
		entry.SignatureV1, err = signV1(id.PrivKey, entry.Value, entry.GetValidityType(), entry.Validity)
		if err != nil {
			return nil, err
		}
	}

	entry.PubKey, err = embeddedKey(id.ID, id.PrivKey.GetPublic())
	if err != nil {
		return nil, err
	}

	log.Debugf("Created record for %s -> %s (seq %d, eol %s)", id.ID, val, seq, validity)
	return &Record{entry: entry}, nil
}
