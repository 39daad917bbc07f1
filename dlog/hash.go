package dlog

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"

	"github.com/renproject/secp256k1"
)

// HashPoints computes the Fiat-Shamir challenge for the given session ID,
// party ID and points. The hash is SHA-256 over the bytes of sid, the 8 byte
// little endian encoding of pid, and the compressed encoding of each point in
// the order given. The digest is interpreted as a big endian integer and
// reduced modulo the group order, so every digest maps to a scalar.
func HashPoints(sid string, pid uint64, points ...secp256k1.Point) (secp256k1.Fn, error) {
	h := sha256.New()

	var pidBytes [8]byte
	binary.LittleEndian.PutUint64(pidBytes[:], pid)

	if _, err := h.Write([]byte(sid)); err != nil {
		return secp256k1.Fn{}, fmt.Errorf("%w: writing sid: %v", ErrHashToScalar, err)
	}
	if _, err := h.Write(pidBytes[:]); err != nil {
		return secp256k1.Fn{}, fmt.Errorf("%w: writing pid: %v", ErrHashToScalar, err)
	}
	for i := range points {
		if _, err := h.Write(encodePoint(&points[i])); err != nil {
			return secp256k1.Fn{}, fmt.Errorf("%w: writing point %v: %v", ErrHashToScalar, i, err)
		}
	}

	var digest [sha256.Size]byte
	copy(digest[:], h.Sum(nil))
	return scalarFromDigest(digest), nil
}

func scalarFromDigest(digest [sha256.Size]byte) secp256k1.Fn {
	var c secp256k1.Fn
	// Overflow is not an error, the value is reduced.
	_ = c.SetB32(digest[:])
	return c
}
