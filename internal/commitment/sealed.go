package commitment

import "fmt"

// Sealed is the server-side form of a pending commitment, used to carry it
// across requests. It holds the secret key and must never be sent to the
// player before the round is resolved.
type Sealed struct {
	Key    []byte `json:"key"`
	Move   string `json:"move"`
	Digest []byte `json:"digest"`
}

// Seal exports the commitment for storage.
func (c *Commitment) Seal() Sealed {
	return Sealed{
		Key:    clone(c.key),
		Move:   c.move,
		Digest: clone(c.digest),
	}
}

// Open rebuilds a commitment from storage. The digest is recomputed so a
// tampered key, move or digest is rejected.
func Open(mac MACFunc, s Sealed) (*Commitment, error) {
	if len(s.Key) < MinKeyBytes {
		return nil, fmt.Errorf("%w: got %d", ErrKeyTooShort, len(s.Key))
	}
	if !Verify(mac, s.Key, s.Move, s.Digest) {
		return nil, ErrDigestMismatch
	}

	return &Commitment{
		key:    clone(s.Key),
		move:   s.Move,
		digest: clone(s.Digest),
	}, nil
}
