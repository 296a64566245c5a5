// Command xc320sum hashes a file, a string, or stdin with XC320 and
// prints the hex digest, in the spirit of sha256sum/md5sum. Hashing logic
// itself lives entirely in package xc320; this command is a thin consumer
// of its public API (spec.md §1 places the CLI out of the hashing core's
// scope, but still names the interface it must expose; see
// SPEC_FULL.md §D.
package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/Xzray03/XzalgoChain"
	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	var (
		inputString string
		checkHash   string
		quiet       bool
		upper       bool
		showVersion bool
	)

	root := &cobra.Command{
		Use:   "xc320sum [file]",
		Short: "compute or verify XC320 digests",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if showVersion {
				fmt.Println("xc320sum", version)
				return nil
			}

			data, name, err := readInput(args, inputString)
			if err != nil {
				return err
			}

			digest := xc320.Sum320(data)
			hexDigest := hex.EncodeToString(digest[:])
			if upper {
				hexDigest = strings.ToUpper(hexDigest)
			}

			if checkHash != "" {
				want, err := hex.DecodeString(strings.TrimSpace(checkHash))
				if err != nil {
					return fmt.Errorf("invalid -c hash: %w", err)
				}
				var wantDigest [xc320.Size]byte
				if len(want) != xc320.Size {
					return fmt.Errorf("hash length mismatch: got %d bytes, want %d", len(want), xc320.Size)
				}
				copy(wantDigest[:], want)
				if xc320.Equals(digest, wantDigest) {
					if !quiet {
						fmt.Println("OK")
					}
					return nil
				}
				if !quiet {
					fmt.Println("FAILED")
				}
				os.Exit(1)
			}

			if quiet || name == "" {
				fmt.Println(hexDigest)
			} else {
				fmt.Printf("%s  %s\n", hexDigest, name)
			}
			return nil
		},
	}

	root.Flags().StringVarP(&inputString, "input-string", "i", "", "hash this string instead of a file/stdin")
	root.Flags().StringVarP(&checkHash, "check", "c", "", "verify against this hex digest (exit 1 on mismatch)")
	root.Flags().BoolVarP(&quiet, "quiet", "q", false, "suppress the filename in output")
	root.Flags().BoolVarP(&upper, "upper", "V", false, "print the digest in upper case")
	root.Flags().BoolVarP(&showVersion, "version", "v", false, "print version and exit")

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "xc320sum:", err)
		os.Exit(1)
	}
}

// readInput resolves the -i flag, a positional file argument, or stdin (in
// that priority order) into the bytes to hash.
func readInput(args []string, inputString string) (data []byte, name string, err error) {
	if inputString != "" {
		return []byte(inputString), "", nil
	}
	if len(args) == 1 && args[0] != "-" {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return data, args[0], nil
	}
	data, err = io.ReadAll(os.Stdin)
	if err != nil {
		return nil, "", fmt.Errorf("reading stdin: %w", err)
	}
	return data, "-", nil
}
