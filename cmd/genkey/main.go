// Command genkey derives a key with HKDF-SHA256 from files named by environment
// variables and prints the key's SHA-256 fingerprint. The key itself is never
// printed.
//
//	ENV_SECRET_IKM_LOCATION=/run/secrets/ikm \
//	ENV_SECRET_PEPPER_LOCATION=/run/secrets/pepper \
//	ENV_PUBLIC_SALT_LOCATION=./salt.dat \
//	ENV_PUBLIC_INFO_LOCATION=./info.dat \
//	genkey
//
// On failure it prints a single "error: ..." line to stderr and exits with
// status 1.
package main

import (
	"fmt"
	"io"
	"os"
)

func main() {
	os.Exit(execute(os.Args[1:], nil, os.Stdout, os.Stderr))
}

// execute runs the CLI and returns the process exit code. A nil environment
// means the process environment.
func execute(args []string, environment map[string]string, stdout, stderr io.Writer) int {
	cmd := newRootCmd(environment)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}
