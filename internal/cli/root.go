// Package cli implements the sfd-hash command-line driver.
package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	apperrors "github.com/sfdlabs/sfd-hash/internal/errors"
	"github.com/sfdlabs/sfd-hash/internal/hasher"
)

// newRootCmd builds the root command. Flag parsing is disabled: the tool
// takes exactly one positional argument and treats anything else, dashed or
// not, as a candidate file path.
func newRootCmd(prog string, stdout, stderr io.Writer) *cobra.Command {
	cmd := &cobra.Command{
		Use:   prog + " <file-path>",
		Short: "Compute the SHA-256 digest of a file",
		Long: `sfd-hash streams a single file through SHA-256 and prints a one-line
deterministic JSON record with the lowercase hex digest and byte count.`,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				fmt.Fprintf(stderr, "Usage: %s <file-path>\n", prog)
				return apperrors.ErrUsage
			}

			digest, bytes, err := hasher.HashFile(args[0])
			if err != nil {
				fmt.Fprintln(stderr, failureMessage(err))
				return err
			}

			line, err := json.Marshal(hasher.NewResult(digest, bytes))
			if err != nil {
				err = fmt.Errorf("encode result: %w: %w", err, apperrors.ErrHashing)
				fmt.Fprintln(stderr, failureMessage(err))
				return err
			}
			fmt.Fprintf(stdout, "%s\n", line)
			return nil
		},
	}
	cmd.CompletionOptions.DisableDefaultCmd = true
	return cmd
}

// failureMessage maps a hasher error to its fixed single-line diagnostic.
// The coarse two-message surface is contractual; underlying causes stay in
// the wrapped error text.
func failureMessage(err error) string {
	if errors.Is(err, apperrors.ErrIO) {
		return "File I/O error"
	}
	return "Hashing error"
}

// Run executes the CLI for argv (argv[0] is the program name as invoked)
// and returns the process exit code. Nothing is written to stdout on any
// failure path.
func Run(argv []string, stdout, stderr io.Writer) int {
	prog := "sfd-hash"
	var args []string
	if len(argv) > 0 {
		if argv[0] != "" {
			prog = argv[0]
		}
		args = argv[1:]
	}

	root := newRootCmd(prog, stdout, stderr)
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		return apperrors.ExitCode(err)
	}
	return apperrors.ExitOK
}
