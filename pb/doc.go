// Package pb holds the wire schema of an IPNS record, see ipns.proto.
package pb

//go:generate protoc --gogo_out=paths=source_relative:. ipns.proto
