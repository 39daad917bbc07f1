package dlog

import (
	"math/rand"
	"reflect"

	"github.com/renproject/secp256k1"
	"github.com/renproject/surge"
)

// Generate implements the quick.Generator interface.
func (p Proof) Generate(rand *rand.Rand, _ int) reflect.Value {
	var r, s secp256k1.Fn
	var buf [scalarLen]byte
	rand.Read(buf[:])
	_ = r.SetB32(buf[:])
	rand.Read(buf[:])
	_ = s.SetB32(buf[:])

	var t secp256k1.Point
	t.BaseExp(&r)
	return reflect.ValueOf(Proof{t: t, s: s})
}

// SizeHint implements the surge.SizeHinter interface.
func (p Proof) SizeHint() int { return pointLen + scalarLen }

// Marshal implements the surge.Marshaler interface. The commitment is written
// in compressed form followed by the big endian response, the same bytes that
// Encode renders as hex.
func (p Proof) Marshal(buf []byte, rem int) ([]byte, int, error) {
	size := p.SizeHint()
	if len(buf) < size || rem < size {
		return buf, rem, surge.ErrUnexpectedEndOfBuffer
	}
	copy(buf, encodePoint(&p.t))
	copy(buf[pointLen:], encodeScalar(&p.s))
	return buf[size:], rem - size, nil
}

// Unmarshal implements the surge.Unmarshaler interface. The bytes are
// validated in the same way as Decode.
func (p *Proof) Unmarshal(buf []byte, rem int) ([]byte, int, error) {
	size := p.SizeHint()
	if len(buf) < size || rem < size {
		return buf, rem, surge.ErrUnexpectedEndOfBuffer
	}

	t, err := decodePoint(buf[:pointLen])
	if err != nil {
		return buf, rem, err
	}
	s, err := decodeScalar(buf[pointLen:size])
	if err != nil {
		return buf, rem, err
	}

	p.t, p.s = t, s
	return buf[size:], rem - size, nil
}
