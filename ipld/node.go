package ipld

import (
	"fmt"

	cbornode "github.com/ipfs/go-ipld-cbor"
	mh "github.com/multiformats/go-multihash"
)

// Node wraps an encoded Data blob in a go-ipld-cbor node so it can be
// addressed by CID and rendered as JSON.
func Node(b []byte) (*cbornode.Node, error) {
	nd, err := cbornode.Decode(b, mh.SHA2_256, -1)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecode, err)
	}
	return nd, nil
}
