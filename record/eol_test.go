package record

import (
	"errors"
	"testing"
	"time"

	u "github.com/ipfs/go-ipfs-util"
	ci "github.com/libp2p/go-libp2p/core/crypto"
)

func setClock(t *testing.T, now time.Time) {
	t.Helper()
	timeNow = func() time.Time { return now }
	t.Cleanup(func() { timeNow = time.Now })
}

func TestEolValidation(t *testing.T) {
	sk, _, err := ci.GenerateEd25519Key(u.NewSeededRand(15))
	if err != nil {
		t.Fatal(err)
	}
	id, err := NewIdentity(sk)
	if err != nil {
		t.Fatal(err)
	}

	ts := time.Date(2030, 6, 1, 12, 0, 0, 0, time.UTC)
	setClock(t, ts)

	r, err := Create(id, "/ipfs/bafybeigdyrzt5sfp7udm7hu76uh7y26nf3efuylqabf3oclgtqy55fbzdi", 1, time.Hour)
	if err != nil {
		t.Fatal(err)
	}
	raw, err := Marshal(r)
	if err != nil {
		t.Fatal(err)
	}

	for _, offset := range []time.Duration{0, time.Minute, 59 * time.Minute, time.Hour} {
		setClock(t, ts.Add(offset))
		if err := Validate(id.PubKey, raw); err != nil {
			t.Fatalf("record should be valid %s after creation: %s", offset, err)
		}
	}

	for _, offset := range []time.Duration{time.Hour + time.Nanosecond, 2 * time.Hour} {
		setClock(t, ts.Add(offset))
		if err := Validate(id.PubKey, raw); !errors.Is(err, ErrExpiredRecord) {
			t.Fatalf("expected expired error %s after creation, got %v", offset, err)
		}
	}
}

func TestEolRoundTrip(t *testing.T) {
	eol := time.Date(2030, 1, 2, 3, 4, 5, 6, time.FixedZone("X", 3600))

	b := formatValidity(eol)
	if string(b) != "2030-01-02T02:04:05.000000006Z" {
		t.Fatalf("unexpected validity %s", b)
	}

	parsed, err := parseValidity(b)
	if err != nil {
		t.Fatal(err)
	}
	if !parsed.Equal(eol) {
		t.Fatalf("expected %s, got %s", eol, parsed)
	}

	if _, err := parseValidity([]byte("2030-13-02T02:04:05.000000000Z")); !errors.Is(err, ErrInvalidValidity) {
		t.Fatalf("expected invalid month to fail, got %v", err)
	}
}
