package ipns

import (
	rec "github.com/dirkmc/go-ipns/record"
)

// Validator checks records fetched for routing keys produced by RoutingKey.
// The public key comes from the record if it carries one, otherwise from
// the peer ID in the key.
type Validator struct{}

// Validate implements the routing system's validation hook: key is the
// routing key and value the encoded record.
func (v Validator) Validate(key string, value []byte) error {
	id, err := IDFromRoutingKey([]byte(key))
	if err != nil {
		log.Debugf("Rejecting record with bad key %q: %s", key, err)
		return err
	}

	r, err := rec.Unmarshal(value)
	if err != nil {
		log.Debugf("Could not parse record for %s: %s", id, err)
		return err
	}

	pk, err := rec.ExtractPublicKey(id, r)
	if err != nil {
		log.Debugf("No usable public key for %s: %s", id, err)
		return err
	}

	if err := rec.ValidateRecord(pk, r); err != nil {
		log.Debugf("Invalid record for %s: %s", id, err)
		return err
	}
	return nil
}
