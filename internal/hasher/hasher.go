// Package hasher implements the streaming SHA-256 file digest pipeline.
package hasher

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	apperrors "github.com/sfdlabs/sfd-hash/internal/errors"
)

// ChunkSize is the staging buffer size for file reads. 64 KiB balances
// syscall overhead against working-set footprint.
const ChunkSize = 64 * 1024

// Result is the machine-readable record for one successful digest
// computation. Field order matches the wire format on stdout.
type Result struct {
	Algorithm string `json:"algorithm"`
	Hash      string `json:"hash"`
	Bytes     uint64 `json:"bytes"`
}

// NewResult builds the reportable record from a raw digest and byte count.
// The hash is lowercase hex, two characters per digest byte.
func NewResult(digest []byte, bytes uint64) Result {
	return Result{
		Algorithm: "sha256",
		Hash:      hex.EncodeToString(digest),
		Bytes:     bytes,
	}
}

// HashFile streams the file at path through SHA-256 in ChunkSize reads and
// returns the raw 32-byte digest plus the total number of bytes read.
// Failures to open or read wrap apperrors.ErrIO; failures in the digest
// layer wrap apperrors.ErrHashing. No partial digest is returned on error.
func HashFile(path string) ([]byte, uint64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, 0, fmt.Errorf("open %s: %w: %w", path, err, apperrors.ErrIO)
	}
	defer func() { _ = f.Close() }()

	return sum(f)
}

// sum drives the digest over r. Bytes returned alongside a read error are
// incorporated before the error is reported, so the byte count always
// matches the data fed to the digest.
func sum(r io.Reader) ([]byte, uint64, error) {
	h := sha256.New()
	buf := make([]byte, ChunkSize)
	var total uint64

	for {
		n, err := r.Read(buf)
		if n > 0 {
			if _, werr := h.Write(buf[:n]); werr != nil {
				return nil, 0, fmt.Errorf("digest update: %w: %w", werr, apperrors.ErrHashing)
			}
			total += uint64(n)
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, fmt.Errorf("read: %w: %w", err, apperrors.ErrIO)
		}
	}

	digest := h.Sum(nil)
	if len(digest) != sha256.Size {
		return nil, 0, fmt.Errorf("digest length %d, want %d: %w", len(digest), sha256.Size, apperrors.ErrHashing)
	}
	return digest, total, nil
}
