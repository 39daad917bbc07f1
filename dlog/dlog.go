package dlog

import (
	"crypto/rand"
	"fmt"
	"io"

	"github.com/renproject/secp256k1"
)

// Prove creates a non-interactive proof of knowledge of x, the discrete
// logarithm of y = g^x, bound to the given session and party. The caller is
// responsible for ensuring that y is indeed g^x; a proof for an incorrect pair
// will simply fail to verify. The commitment exponent is sampled from
// crypto/rand.
func Prove(sid string, pid uint64, x *secp256k1.Fn, y *secp256k1.Point) (Proof, error) {
	return ProveWithRand(rand.Reader, sid, pid, x, y)
}

// ProveWithRand is the same as Prove, except that the commitment exponent is
// sampled from the given reader. The reader must be a source of uniformly
// random bytes, and must be safe for concurrent use if ProveWithRand is called
// concurrently.
func ProveWithRand(rng io.Reader, sid string, pid uint64, x *secp256k1.Fn, y *secp256k1.Point) (Proof, error) {
	r, err := RandomScalar(rng)
	if err != nil {
		return Proof{}, err
	}

	g := generator()

	var t secp256k1.Point
	t.BaseExp(&r)

	c, err := HashPoints(sid, pid, g, *y, t)
	if err != nil {
		return Proof{}, err
	}

	var s secp256k1.Fn
	s.Mul(&c, x)
	s.Add(&s, &r)

	return Proof{t: t, s: s}, nil
}

// Verify returns true if the proof shows knowledge of the discrete logarithm
// of y in the context of the given session and party, and false otherwise. A
// false result is not an error; an error is only returned when the challenge
// could not be computed. A nil proof is rejected.
func Verify(p *Proof, sid string, pid uint64, y *secp256k1.Point) (bool, error) {
	if p == nil {
		return false, nil
	}

	g := generator()

	c, err := HashPoints(sid, pid, g, *y, p.t)
	if err != nil {
		return false, err
	}

	var expected, actual secp256k1.Point
	expected.BaseExp(&p.s)
	// y is the point at infinity when x is zero.
	actual.ScaleExt(y, &c)
	actual.Add(&actual, &p.t)

	return actual.Eq(&expected), nil
}

// RandomScalar samples a scalar uniformly at random from [0, n), where n is
// the order of the group, using bytes read from the given reader. Byte strings
// that represent a number not less than n are discarded and drawn again.
func RandomScalar(rng io.Reader) (secp256k1.Fn, error) {
	var buf [scalarLen]byte
	for {
		if _, err := io.ReadFull(rng, buf[:]); err != nil {
			return secp256k1.Fn{}, fmt.Errorf("%w: %v", ErrRandomSource, err)
		}
		if !scalarInRange(buf[:]) {
			continue
		}
		var r secp256k1.Fn
		_ = r.SetB32(buf[:])
		return r, nil
	}
}

func generator() secp256k1.Point {
	var g secp256k1.Point
	one := secp256k1.NewFnFromU16(1)
	g.BaseExp(&one)
	return g
}
