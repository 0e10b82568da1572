package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/dmitrymomot/genkey/core/logger"
	"github.com/dmitrymomot/genkey/pkg/keydigest"
)

func newVerifyCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "verify <fingerprint>",
		Short: "Derive the key and check it against a known fingerprint",
		Long: `verify derives the key exactly like the root command and compares its
fingerprint with the given hex value. It prints "ok" on a match and fails
otherwise.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			expected, err := keydigest.Parse(args[0])
			if err != nil {
				return err
			}

			key, log, err := a.deriveKey(cmd)
			if err != nil {
				return err
			}
			defer key.Wipe()

			if err := keydigest.Verify(key, expected); err != nil {
				log.Info("fingerprint mismatch", logger.Action("verify"), logger.Result("failure"), logger.Error(err))
				return err
			}

			log.Info("fingerprint verified", logger.Action("verify"), logger.Result("success"))
			_, err = fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return err
		},
	}
}
