/*
Package ipns implements the records of the InterPlanetary Name System.

An IPNS name is the peer ID of a key pair. Its owner publishes a signed
record saying

  The current value of /ipns/k51qzi5uqu5dlvj2baxnqndepeb86cbk3ng7n3i46uzyxzyqj2xjonzllnv0v8
  is /ipfs/bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi
  until 2030-01-01T00:00:00.000000000Z

and anyone holding the name can check that the record was signed by the
name's key and has not expired.

Records are built and checked by the record package. This package holds the
conventions for the keys records are stored under, and Validator, which
checks a record fetched for a routing key.
*/
package ipns

import (
	"bytes"
	"errors"
	"fmt"

	dshelp "github.com/ipfs/boxo/datastore/dshelp"
	ds "github.com/ipfs/go-datastore"
	logging "github.com/ipfs/go-log/v2"
	peer "github.com/libp2p/go-libp2p/core/peer"
)

var log = logging.Logger("ipns")

// Namespace is the routing namespace of IPNS records.
const Namespace = "ipns"

const namespacePrefix = "/" + Namespace + "/"

// ErrInvalidRoutingKey is returned for keys outside the IPNS namespace or
// that do not end in a valid peer ID.
var ErrInvalidRoutingKey = errors.New("invalid ipns routing key")

// RoutingKey returns the key a record for id is published under:
// /ipns/ followed by the raw bytes of the peer ID.
func RoutingKey(id peer.ID) []byte {
	return append([]byte(namespacePrefix), string(id)...)
}

// IDFromRoutingKey is the inverse of RoutingKey.
func IDFromRoutingKey(key []byte) (peer.ID, error) {
	if !bytes.HasPrefix(key, []byte(namespacePrefix)) {
		return "", ErrInvalidRoutingKey
	}

	id, err := peer.IDFromBytes(key[len(namespacePrefix):])
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidRoutingKey, err)
	}
	return id, nil
}

// LocalKey returns the datastore key for storing a record for id locally:
// /ipns/ followed by the unpadded RFC4648 base32 encoding of the peer ID.
func LocalKey(id peer.ID) ds.Key {
	return ds.NewKey(Namespace).Child(dshelp.NewKeyFromBinary([]byte(id)))
}
