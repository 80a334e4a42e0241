// Package sampling implements deterministic and secure generation of random
// bytes and random polynomial coefficients, used by the randomized
// self-checks and the benchmarks.
package sampling

import (
	"crypto/rand"
	"io"

	"github.com/zeebo/blake3"
	"golang.org/x/crypto/blake2b"
)

// KeySize is the byte size of PRNG keys produced by DeriveKey.
const KeySize = 32

// PRNG is an interface for the generation of random bytes.
type PRNG interface {
	io.Reader
}

// ThreadSafePRNG is a PRNG backed by crypto/rand. It is safe for concurrent
// use but not reproducible.
type ThreadSafePRNG struct{}

// NewPRNG returns a new thread-safe, non-deterministic PRNG.
func NewPRNG() (*ThreadSafePRNG, error) {
	return &ThreadSafePRNG{}, nil
}

func (prng *ThreadSafePRNG) Read(sum []byte) (n int, err error) {
	return rand.Read(sum)
}

// KeyedPRNG deterministically generates a sequence of random bytes from a key
// using the blake2b XOF. Two KeyedPRNGs built from the same key produce the
// same stream. A KeyedPRNG must not be shared between goroutines.
type KeyedPRNG struct {
	key []byte
	xof blake2b.XOF
}

// NewKeyedPRNG creates a new KeyedPRNG from the given key, which must be at
// most 64 bytes. A nil key is valid and treated as an empty one.
func NewKeyedPRNG(key []byte) (*KeyedPRNG, error) {
	xof, err := blake2b.NewXOF(blake2b.OutputLengthUnknown, key)
	if err != nil {
		return nil, err
	}
	k := make([]byte, len(key))
	copy(k, key)
	return &KeyedPRNG{key: k, xof: xof}, nil
}

// Key returns a copy of the key, usable with NewKeyedPRNG to replay the
// stream.
func (prng *KeyedPRNG) Key() (key []byte) {
	key = make([]byte, len(prng.key))
	copy(key, prng.key)
	return
}

func (prng *KeyedPRNG) Read(sum []byte) (n int, err error) {
	return prng.xof.Read(sum)
}

// Reset rewinds the PRNG to the start of its stream.
func (prng *KeyedPRNG) Reset() {
	prng.xof.Reset()
}

// DeriveKey hashes a domain-separation label together with seed material into
// a KeySize-byte PRNG key, so that independent consumers of one seed read
// independent streams.
func DeriveKey(label string, seed []byte) []byte {
	hasher := blake3.New()
	hasher.Write([]byte(label))
	hasher.Write(seed)
	return hasher.Sum(nil)[:KeySize]
}
