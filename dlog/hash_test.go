package dlog_test

import (
	"crypto/sha256"
	"encoding/binary"
	"math/big"

	. "github.com/onsi/ginkgo"
	. "github.com/onsi/gomega"
	. "github.com/renproject/dlog/dlog"

	decred "github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/renproject/secp256k1"
)

var _ = Describe("Transcript hashing", func() {
	trials := 20

	order, _ := new(big.Int).SetString(
		"FFFFFFFFFFFFFFFFFFFFFFFFFFFFFFFEBAAEDCE6AF48A03BBFD25E8CD0364141", 16)

	randomPoint := func() (secp256k1.Point, []byte) {
		k := secp256k1.RandomFn()
		var p secp256k1.Point
		p.BaseExp(&k)
		compressed := decred.PrivKeyFromBytes(EncodeScalar(&k)).PubKey().SerializeCompressed()
		return p, compressed
	}

	reduce := func(digest []byte) []byte {
		v := new(big.Int).SetBytes(digest)
		v.Mod(v, order)
		buf := make([]byte, 32)
		return v.FillBytes(buf)
	}

	It("should hash the session ID, little endian party ID and compressed points", func() {
		for i := 0; i < trials; i++ {
			p1, b1 := randomPoint()
			p2, b2 := randomPoint()
			pid := uint64(i) * 0x0102030405

			h := sha256.New()
			h.Write([]byte("session"))
			var pidBytes [8]byte
			binary.LittleEndian.PutUint64(pidBytes[:], pid)
			h.Write(pidBytes[:])
			h.Write(b1)
			h.Write(b2)
			expected := reduce(h.Sum(nil))

			c, err := HashPoints("session", pid, p1, p2)
			Expect(err).ToNot(HaveOccurred())
			Expect(EncodeScalar(&c)).To(Equal(expected))
		}
	})

	It("should be deterministic", func() {
		for i := 0; i < trials; i++ {
			p1, _ := randomPoint()
			p2, _ := randomPoint()

			c1, err := HashPoints("sid", 7, p1, p2)
			Expect(err).ToNot(HaveOccurred())
			c2, err := HashPoints("sid", 7, p1, p2)
			Expect(err).ToNot(HaveOccurred())
			Expect(c1.Eq(&c2)).To(BeTrue())
		}
	})

	It("should depend on the order of the points", func() {
		for i := 0; i < trials; i++ {
			p1, _ := randomPoint()
			p2, _ := randomPoint()

			c1, err := HashPoints("sid", 1, p1, p2)
			Expect(err).ToNot(HaveOccurred())
			c2, err := HashPoints("sid", 1, p2, p1)
			Expect(err).ToNot(HaveOccurred())
			Expect(c1.Eq(&c2)).To(BeFalse())
		}
	})

	It("should depend on the session ID, party ID and every point", func() {
		p1, _ := randomPoint()
		p2, _ := randomPoint()

		c, err := HashPoints("sid", 1, p1, p2)
		Expect(err).ToNot(HaveOccurred())

		others := []func() (secp256k1.Fn, error){
			func() (secp256k1.Fn, error) { return HashPoints("sie", 1, p1, p2) },
			func() (secp256k1.Fn, error) { return HashPoints("sid", 2, p1, p2) },
			func() (secp256k1.Fn, error) { return HashPoints("sid", 1<<56, p1, p2) },
			func() (secp256k1.Fn, error) { return HashPoints("sid", 1, p1) },
			func() (secp256k1.Fn, error) { return HashPoints("sid", 1, p1, p2, p2) },
		}
		for _, other := range others {
			d, err := other()
			Expect(err).ToNot(HaveOccurred())
			Expect(d.Eq(&c)).To(BeFalse())
		}
	})

	Context("digest reduction", func() {
		It("should reduce digests that are not less than the group order", func() {
			var digest [32]byte
			for i := range digest {
				digest[i] = 0xff
			}
			c := ScalarFromDigest(digest)
			Expect(EncodeScalar(&c)).To(Equal(reduce(digest[:])))
		})

		It("should map the group order to zero", func() {
			var digest [32]byte
			order.FillBytes(digest[:])
			c := ScalarFromDigest(digest)
			Expect(c.IsZero()).To(BeTrue())
		})

		It("should leave digests less than the group order unchanged", func() {
			for i := 0; i < trials; i++ {
				k := secp256k1.RandomFn()
				var digest [32]byte
				copy(digest[:], EncodeScalar(&k))
				c := ScalarFromDigest(digest)
				Expect(c.Eq(&k)).To(BeTrue())
			}
		})
	})
})
