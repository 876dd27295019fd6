// Package path turns the target of a record into its canonical value string.
//
// A record value can be
//   - a content address, stored as /ipfs/<CIDv1>
//   - another name (peer ID or libp2p-key CID), stored as /ipns/<CIDv1>
//   - any other path starting with "/", stored as-is
package path

import (
	"bytes"
	"errors"
	"fmt"
	"strings"

	bpath "github.com/ipfs/boxo/path"
	cid "github.com/ipfs/go-cid"
	peer "github.com/libp2p/go-libp2p/core/peer"
)

// ErrInvalidValue is returned when a value cannot be turned into a path.
var ErrInvalidValue = errors.New("value must be a valid content path starting with /")

// NormalizeValue accepts a peer.ID, a cid.Cid, a boxo path.Path, raw bytes or
// a string and returns the value to store in a record.
func NormalizeValue(v interface{}) (string, error) {
	switch val := v.(type) {
	case peer.ID:
		return FromPeer(val)
	case cid.Cid:
		return FromCid(val)
	case *cid.Cid:
		if val == nil {
			return "", ErrInvalidValue
		}
		return FromCid(*val)
	case []byte:
		if bytes.HasPrefix(val, []byte("/")) {
			return FromString(string(val))
		}
		c, err := cid.Cast(val)
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidValue, err)
		}
		return FromCid(c)
	case string:
		return FromString(val)
	case bpath.Path:
		return FromString(val.String())
	default:
		return "", fmt.Errorf("%w: unsupported type %T", ErrInvalidValue, v)
	}
}

// FromString keeps strings that already look like a path and otherwise tries
// to parse them as a CID.
func FromString(s string) (string, error) {
	s = strings.TrimSpace(s)
	if len(s) > 1 && s[0] == '/' {
		return s, nil
	}

	c, err := cid.Decode(s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidValue, s)
	}
	return FromCid(c)
}

// FromCid returns /ipfs/<CIDv1>, or /ipns/<CIDv1> for libp2p-key CIDs.
func FromCid(c cid.Cid) (string, error) {
	if !c.Defined() {
		return "", fmt.Errorf("%w: undefined CID", ErrInvalidValue)
	}

	v1 := cid.NewCidV1(c.Type(), c.Hash())
	if c.Type() == cid.Libp2pKey {
		p, err := bpath.NewPath("/ipns/" + v1.String())
		if err != nil {
			return "", fmt.Errorf("%w: %w", ErrInvalidValue, err)
		}
		return p.String(), nil
	}
	return bpath.FromCid(v1).String(), nil
}

// FromPeer returns the recursive /ipns/ value pointing at another name.
func FromPeer(id peer.ID) (string, error) {
	if err := id.Validate(); err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidValue, err)
	}
	return FromCid(peer.ToCid(id))
}
