// Package password implements the credential subsystem: salted argon2id
// hashing of plaintext passwords and verification against the stored,
// self-describing encoded form.
package password

import (
	"crypto/rand"
	"crypto/subtle"
	"encoding/base64"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/argon2"
)

// ErrMalformedHash is returned when a stored hash cannot be decoded. A
// wrong password is not an error; it is a false verification result.
var ErrMalformedHash = errors.New("malformed password hash")

// Params are the argon2id cost parameters baked into each encoded hash.
type Params struct {
	Memory      uint32 // KiB
	Time        uint32
	Parallelism uint8
	SaltLen     uint32
	KeyLen      uint32
}

// Default is the calibration used for every new hash.
var Default = Params{Memory: 64 * 1024, Time: 3, Parallelism: 1, SaltLen: 32, KeyLen: 32}

// Hash derives a key from plain with a fresh random salt and returns the
// PHC encoded form: $argon2id$v=19$m=...,t=...,p=...$<saltB64>$<keyB64>.
func Hash(p Params, plain string) (string, error) {
	if plain == "" {
		return "", errors.New("empty password")
	}
	salt := make([]byte, p.SaltLen)
	if _, err := rand.Read(salt); err != nil {
		return "", err
	}
	key := argon2.IDKey([]byte(plain), salt, p.Time, p.Memory, p.Parallelism, p.KeyLen)
	return fmt.Sprintf("$argon2id$v=%d$m=%d,t=%d,p=%d$%s$%s",
		argon2.Version, p.Memory, p.Time, p.Parallelism,
		base64.RawStdEncoding.EncodeToString(salt),
		base64.RawStdEncoding.EncodeToString(key),
	), nil
}

// Verify recomputes the key for plain using the salt and parameters
// embedded in encoded and compares in constant time. A mismatch returns
// (false, nil); an undecodable stored hash returns ErrMalformedHash.
func Verify(plain, encoded string) (bool, error) {
	parts := strings.Split(encoded, "$")
	if len(parts) != 6 || parts[0] != "" || parts[1] != "argon2id" {
		return false, fmt.Errorf("%w: not a PHC argon2id string", ErrMalformedHash)
	}

	var version int
	if _, err := fmt.Sscanf(parts[2], "v=%d", &version); err != nil {
		return false, fmt.Errorf("%w: bad version field", ErrMalformedHash)
	}
	if version != argon2.Version {
		return false, fmt.Errorf("%w: unsupported version %d", ErrMalformedHash, version)
	}

	var memory, time uint32
	var parallelism uint8
	if _, err := fmt.Sscanf(parts[3], "m=%d,t=%d,p=%d", &memory, &time, &parallelism); err != nil {
		return false, fmt.Errorf("%w: bad parameter field", ErrMalformedHash)
	}

	salt, err := base64.RawStdEncoding.DecodeString(parts[4])
	if err != nil {
		return false, fmt.Errorf("%w: bad salt encoding", ErrMalformedHash)
	}
	stored, err := base64.RawStdEncoding.DecodeString(parts[5])
	if err != nil {
		return false, fmt.Errorf("%w: bad key encoding", ErrMalformedHash)
	}
	if len(stored) == 0 {
		return false, fmt.Errorf("%w: empty derived key", ErrMalformedHash)
	}

	key := argon2.IDKey([]byte(plain), salt, time, memory, parallelism, uint32(len(stored)))
	return subtle.ConstantTimeCompare(key, stored) == 1, nil
}
