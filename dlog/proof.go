package dlog

import (
	"fmt"

	decred "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/renproject/secp256k1"
)

const (
	// pointLen is the length of a compressed curve point: a parity byte
	// followed by the big endian x coordinate.
	pointLen = 33

	// scalarLen is the length of a big endian scalar.
	scalarLen = 32
)

// A Proof of knowledge of a discrete logarithm. It consists of the commitment
// t = g^r and the response s = r + cx for the challenge c. A Proof contains no
// secret information and is never modified after it is created.
type Proof struct {
	t secp256k1.Point
	s secp256k1.Fn
}

// T returns the commitment of the proof.
func (p *Proof) T() secp256k1.Point { return p.t }

// S returns the response of the proof.
func (p *Proof) S() secp256k1.Fn { return p.s }

// Eq returns true if the two proofs have equal commitments and responses.
func (p *Proof) Eq(other *Proof) bool {
	return p.t.Eq(&other.t) && p.s.Eq(&other.s)
}

// String implements the Stringer interface.
func (p Proof) String() string {
	rec := Encode(p)
	return fmt.Sprintf("{t: %v, s: %v}", rec.T, rec.S)
}

// encodePoint returns the compressed encoding of the point: 0x02 or 0x03 for
// an even or odd y coordinate, followed by the x coordinate. The point at
// infinity has no compressed form and is written as a single zero byte.
func encodePoint(p *secp256k1.Point) []byte {
	if p.IsInfinity() {
		return []byte{0x00}
	}
	buf := make([]byte, pointLen)
	// PutBytes writes the parity of y as the first byte.
	p.PutBytes(buf)
	buf[0] |= 0x02
	return buf
}

func encodeScalar(s *secp256k1.Fn) []byte {
	buf := make([]byte, scalarLen)
	s.PutB32(buf)
	return buf
}

// decodePoint parses a compressed point. The prefix must be 0x02 or 0x03 and
// the x coordinate must be a field element for which a y coordinate exists.
func decodePoint(b []byte) (secp256k1.Point, error) {
	if len(b) != pointLen {
		return secp256k1.Point{}, fmt.Errorf("%w: point has length %v, expected %v", ErrDecoding, len(b), pointLen)
	}
	pk, err := decred.ParsePubKey(b)
	if err != nil {
		return secp256k1.Point{}, fmt.Errorf("%w: %v", ErrDecoding, err)
	}

	// The uncompressed form is 0x04 || x || y.
	xy := pk.SerializeUncompressed()
	var x, y secp256k1.Fp
	x.SetB32(xy[1 : 1+32])
	y.SetB32(xy[1+32:])

	var p secp256k1.Point
	p.SetXY(&x, &y)
	return p, nil
}

// decodeScalar parses a big endian scalar. Values that are not less than the
// group order are rejected rather than reduced.
func decodeScalar(b []byte) (secp256k1.Fn, error) {
	if len(b) != scalarLen {
		return secp256k1.Fn{}, fmt.Errorf("%w: scalar has length %v, expected %v", ErrDecoding, len(b), scalarLen)
	}
	if !scalarInRange(b) {
		return secp256k1.Fn{}, fmt.Errorf("%w: scalar is not less than the group order", ErrDecoding)
	}
	var s secp256k1.Fn
	_ = s.SetB32(b)
	return s, nil
}

// scalarInRange returns true if the 32 byte big endian integer is less than
// the group order.
func scalarInRange(b []byte) bool {
	var n decred.ModNScalar
	return !n.SetByteSlice(b)
}
