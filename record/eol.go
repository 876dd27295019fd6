package record

import (
	"fmt"
	"time"

	u "github.com/ipfs/go-ipfs-util"
)

// EOLs are always written in UTC with all nine fractional digits.
const validityFormat = "2006-01-02T15:04:05.000000000Z07:00"

// overridden in tests
var timeNow = time.Now

func formatValidity(eol time.Time) []byte {
	return []byte(eol.UTC().Format(validityFormat))
}

func parseValidity(b []byte) (time.Time, error) {
	t, err := u.ParseRFC3339(string(b))
	if err != nil {
		log.Warnf("Failed to parse time from record EOL [%s]", b)
		return time.Time{}, fmt.Errorf("%w: %w", ErrInvalidValidity, err)
	}
	return t, nil
}

func eolValidityCheck(eol time.Time) error {
	if timeNow().After(eol) {
		return ErrExpiredRecord
	}
	return nil
}
