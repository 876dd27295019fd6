package record

import (
	"bytes"
	"fmt"

	pb "github.com/dirkmc/go-ipns/pb"
)

// Prefix of the V2 signed payload, so that a V2 signature can never be
// replayed as a signature over some other message.
const v2SigPrefix = "ipns-signature:"

// RecordDataForSig returns the payload of the legacy V1 signature. Order
// matters: value, then validity, then the validity type name.
func RecordDataForSig(value []byte, typ pb.IpnsEntry_ValidityType, validity []byte) []byte {
	return bytes.Join([][]byte{
		value,
		validity,
		[]byte(fmt.Sprint(typ)),
	},
		[]byte{})
}

// RecordDataForSigV2 returns the payload of the V2 signature.
func RecordDataForSigV2(data []byte) []byte {
	return bytes.Join([][]byte{
		[]byte(v2SigPrefix),
		data,
	},
		[]byte{})
}
