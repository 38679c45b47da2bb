package cmd

import (
	"github.com/spf13/cobra"

	"wasmcrypto/crypto/pqc/dilithium"
)

// NewSelfTestCmd returns the `selftest` command.
func NewSelfTestCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "selftest",
		Short: "Check the linked backend against the published Dilithium2 vector",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := appFromCmd(cmd)
			if err != nil {
				return err
			}
			if err := a.SelfTest(); err != nil {
				return err
			}
			cmd.Printf("ok (%s)\n", dilithium.ActiveBackend())
			return nil
		},
	}
}
