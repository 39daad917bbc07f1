package dlog

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
)

// A Record is the wire form of a Proof. T is the lowercase hex encoding of
// the compressed commitment point and S is the lowercase hex encoding of the
// 32 byte big endian response.
type Record struct {
	T string `json:"t"`
	S string `json:"s"`
}

// Encode returns the wire record for the proof.
func Encode(p Proof) Record {
	return Record{
		T: hex.EncodeToString(encodePoint(&p.t)),
		S: hex.EncodeToString(encodeScalar(&p.s)),
	}
}

// Decode parses a wire record into a proof. An error wrapping ErrDecoding is
// returned if either field is not valid hex of the right length, if T is not
// a point on the curve, or if S is not less than the group order.
func Decode(rec Record) (Proof, error) {
	tBytes, err := hex.DecodeString(rec.T)
	if err != nil {
		return Proof{}, fmt.Errorf("%w: decoding t: %v", ErrDecoding, err)
	}
	sBytes, err := hex.DecodeString(rec.S)
	if err != nil {
		return Proof{}, fmt.Errorf("%w: decoding s: %v", ErrDecoding, err)
	}

	t, err := decodePoint(tBytes)
	if err != nil {
		return Proof{}, fmt.Errorf("decoding t: %w", err)
	}
	s, err := decodeScalar(sBytes)
	if err != nil {
		return Proof{}, fmt.Errorf("decoding s: %w", err)
	}
	return Proof{t: t, s: s}, nil
}

// MarshalJSON implements the json.Marshaler interface.
func (p Proof) MarshalJSON() ([]byte, error) {
	return json.Marshal(Encode(p))
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (p *Proof) UnmarshalJSON(data []byte) error {
	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return fmt.Errorf("%w: %v", ErrDecoding, err)
	}
	decoded, err := Decode(rec)
	if err != nil {
		return err
	}
	*p = decoded
	return nil
}
