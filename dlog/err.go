package dlog

import "errors"

var (
	// ErrRandomSource is returned when the random source used to sample the
	// commitment exponent could not be read from. The proof is not created
	// and the caller may try again.
	ErrRandomSource = errors.New("random source unavailable")

	// ErrHashToScalar is returned when the proof transcript could not be
	// hashed into a challenge scalar.
	ErrHashToScalar = errors.New("cannot hash transcript to scalar")

	// ErrDecoding is returned when an encoded proof is malformed: the hex is
	// invalid, a field has the wrong length, the commitment is not a point on
	// the curve, or the response is not less than the group order.
	ErrDecoding = errors.New("malformed proof encoding")
)
