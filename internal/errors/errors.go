// Package errors defines the sfd-hash failure taxonomy and exit code mapping.
package errors

import sterrors "errors"

// The three failure kinds. The taxonomy is deliberately coarse: ErrIO
// collapses open failures and read faults into one category, and ErrHashing
// covers any fault in the digest layer.
var (
	// ErrUsage indicates a wrong argument count. Raised only by the CLI
	// driver, never by the hasher.
	ErrUsage = sterrors.New("usage error")

	// ErrIO indicates a failure to open or read the input file.
	ErrIO = sterrors.New("file I/O error")

	// ErrHashing indicates a failure in the digest primitive (update,
	// finalize, or unexpected digest length).
	ErrHashing = sterrors.New("hashing error")
)

// Exit codes are part of the public contract; downstream shell pipelines
// depend on the exact values.
const (
	ExitOK      = 0
	ExitUsage   = 1
	ExitIO      = 2
	ExitHashing = 3
)

// ExitCode maps an error to a process exit code. Errors outside the
// taxonomy map to ExitHashing, the internal-fault category; exit 1 stays
// reserved for usage errors.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return ExitOK
	case sterrors.Is(err, ErrUsage):
		return ExitUsage
	case sterrors.Is(err, ErrIO):
		return ExitIO
	default:
		return ExitHashing
	}
}
