package dlogutil

import (
	"bytes"
	"encoding/hex"
	"errors"
	"io"

	"github.com/renproject/dlog/dlog"
	"github.com/renproject/secp256k1"
)

// ErrReaderFailure is the error returned by a FailingReader.
var ErrReaderFailure = errors.New("reader failure")

// RandomKeyPair returns a random scalar x and the point g^x.
func RandomKeyPair() (secp256k1.Fn, secp256k1.Point) {
	x := secp256k1.RandomFn()
	var y secp256k1.Point
	y.BaseExp(&x)
	return x, y
}

// FailingReader is an io.Reader that always returns ErrReaderFailure.
type FailingReader struct{}

// Read implements the io.Reader interface.
func (FailingReader) Read([]byte) (int, error) { return 0, ErrReaderFailure }

// OverflowingReader returns an io.Reader that first yields the given number of
// 32 byte blocks of 0xff, each of which is greater than the group order, and
// then reads from r.
func OverflowingReader(blocks int, r io.Reader) io.Reader {
	return io.MultiReader(bytes.NewReader(bytes.Repeat([]byte{0xff}, 32*blocks)), r)
}

// FlipBitT returns a copy of the record with the given bit of the decoded
// commitment flipped. It panics if the record is not valid hex.
func FlipBitT(rec dlog.Record, bit int) dlog.Record {
	rec.T = flipBit(rec.T, bit)
	return rec
}

// FlipBitS returns a copy of the record with the given bit of the decoded
// response flipped. It panics if the record is not valid hex.
func FlipBitS(rec dlog.Record, bit int) dlog.Record {
	rec.S = flipBit(rec.S, bit)
	return rec
}

func flipBit(h string, bit int) string {
	b, err := hex.DecodeString(h)
	if err != nil {
		panic(err)
	}
	b[bit/8] ^= 1 << uint(bit%8)
	return hex.EncodeToString(b)
}
