package cmd

import (
	"github.com/spf13/cobra"

	"wasmcrypto/app"
)

// NewVerifyCmd returns the `verify` command. It prints the verdict and fails
// when the signature does not verify.
func NewVerifyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Verify a Dilithium2 signature against a message and public key",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := appFromCmd(cmd)
			if err != nil {
				return err
			}

			sig, err := decodeFlag(cmd, "signature")
			if err != nil {
				return err
			}
			pk, err := decodeFlag(cmd, "pubkey")
			if err != nil {
				return err
			}
			msg, err := readMessage(cmd)
			if err != nil {
				return err
			}

			ok := a.Adapter.Verify(sig, msg, pk)
			cmd.Println(ok)
			if !ok {
				return app.ErrSignatureInvalid.Wrapf("pubkey %s", Fingerprint(pk))
			}
			return nil
		},
	}
	cmd.Flags().String("signature", "", "Signature (hex or base64)")
	cmd.Flags().String("pubkey", "", "Public key (hex or base64)")
	addMessageFlags(cmd)
	return cmd
}
