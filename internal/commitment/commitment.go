// Package commitment implements the commit-reveal scheme used to prove the
// computer picked its move before the player did.
//
// The committing party publishes HMAC-SHA256(key, move) up front and keeps the
// key secret. Once the round is over it discloses the key and the move, and
// anyone can recompute the MAC and compare it with the published digest.
package commitment

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
)

// MinKeyBytes is the smallest accepted key size (256 bits).
const MinKeyBytes = 32

var (
	ErrKeyTooShort    = errors.New("commitment key must be at least 32 bytes")
	ErrDigestMismatch = errors.New("commitment digest does not match key and move")
)

// KeyGenerator returns a fresh secret key.
type KeyGenerator func() ([]byte, error)

// MACFunc computes a keyed digest of message.
type MACFunc func(key, message []byte) []byte

// HMACSHA256 is the production MACFunc.
func HMACSHA256(key, message []byte) []byte {
	h := hmac.New(sha256.New, key)
	h.Write(message)
	return h.Sum(nil)
}

// RandomKeys returns a KeyGenerator reading n bytes from reader.
// A nil reader means crypto/rand.
func RandomKeys(n int, reader io.Reader) (KeyGenerator, error) {
	if n < MinKeyBytes {
		return nil, fmt.Errorf("%w: got %d", ErrKeyTooShort, n)
	}
	if reader == nil {
		reader = rand.Reader
	}

	return func() ([]byte, error) {
		buf := make([]byte, n)
		if _, err := io.ReadFull(reader, buf); err != nil {
			return nil, fmt.Errorf("generate key: %w", err)
		}
		return buf, nil
	}, nil
}

// DefaultKeys generates 32-byte keys from crypto/rand.
func DefaultKeys() ([]byte, error) {
	buf := make([]byte, MinKeyBytes)
	if _, err := io.ReadFull(rand.Reader, buf); err != nil {
		return nil, fmt.Errorf("generate key: %w", err)
	}
	return buf, nil
}

// Commitment binds a move under a secret key.
type Commitment struct {
	key    []byte
	move   string
	digest []byte
}

// Commit generates a key and computes the digest over move.
// The committed move cannot change afterwards.
func Commit(keys KeyGenerator, mac MACFunc, move string) (*Commitment, error) {
	key, err := keys()
	if err != nil {
		return nil, err
	}
	if len(key) < MinKeyBytes {
		return nil, fmt.Errorf("%w: got %d", ErrKeyTooShort, len(key))
	}

	return &Commitment{
		key:    key,
		move:   move,
		digest: mac(key, []byte(move)),
	}, nil
}

// Digest returns the published digest.
func (c *Commitment) Digest() []byte {
	return clone(c.digest)
}

// DigestHex returns the digest hex-encoded.
func (c *Commitment) DigestHex() string {
	return hex.EncodeToString(c.digest)
}

// Disclose reveals the key and the committed move. Calling it again returns
// the same values.
func (c *Commitment) Disclose() ([]byte, string) {
	return clone(c.key), c.move
}

// Verify recomputes mac(key, move) and compares it with digest in constant time.
func Verify(mac MACFunc, key []byte, move string, digest []byte) bool {
	return hmac.Equal(mac(key, []byte(move)), digest)
}

// VerifyHex is Verify over hex-encoded key and digest.
func VerifyHex(mac MACFunc, keyHex, move, digestHex string) (bool, error) {
	key, err := DecodeHex(keyHex)
	if err != nil {
		return false, fmt.Errorf("decode key: %w", err)
	}
	digest, err := DecodeHex(digestHex)
	if err != nil {
		return false, fmt.Errorf("decode hmac: %w", err)
	}
	return Verify(mac, key, move, digest), nil
}

// EncodeHex is the wire encoding for keys and digests.
func EncodeHex(b []byte) string {
	return hex.EncodeToString(b)
}

func DecodeHex(s string) ([]byte, error) {
	return hex.DecodeString(s)
}

func clone(b []byte) []byte {
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
