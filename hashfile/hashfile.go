// Package hashfile computes the SHA-256 digest of a file, reading it
// in fixed-size chunks the way the reference signer tooling does.
package hashfile

import (
	"io"
	"os"

	sha256simd "github.com/minio/sha256-simd"
)

// chunkSize matches the reference tool's fixed read-buffer size.
const chunkSize = 32

// SHA256 returns the SHA-256 digest of the file at path, read in
// chunkSize-byte increments rather than slurped into memory at once.
func SHA256(path string) ([32]byte, error) {
	var digest [32]byte

	f, err := os.Open(path)
	if err != nil {
		return digest, err
	}
	defer f.Close()

	h := sha256simd.New()
	buf := make([]byte, chunkSize)
	for {
		n, err := f.Read(buf)
		if n > 0 {
			h.Write(buf[:n])
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return digest, err
		}
	}

	copy(digest[:], h.Sum(nil))
	return digest, nil
}
