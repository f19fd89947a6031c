package utils

import (
	"encoding/hex"
	"github.com/fernandosanchezjr/sha256-simd"
	"io"
)

type Digest [32]byte

func (d Digest) String() string {
	return hex.EncodeToString(d[:])
}

func Sum(b []byte) Digest {
	return sha256.Sum256(b)
}

// Fingerprint hashes the first n bytes of r.
func Fingerprint(r io.Reader, n int64) (Digest, error) {
	var d Digest
	h := sha256.New()
	if _, err := io.CopyN(h, r, n); err != nil {
		return d, err
	}
	copy(d[:], h.Sum(nil))
	return d, nil
}
