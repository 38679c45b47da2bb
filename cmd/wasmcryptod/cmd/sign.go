package cmd

import (
	"github.com/spf13/cobra"

	"wasmcrypto/app"
)

// NewSignCmd returns the `sign` command.
func NewSignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sign",
		Short: "Sign a message with the keypair derived from a seed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := appFromCmd(cmd)
			if err != nil {
				return err
			}

			msg, err := readMessage(cmd)
			if err != nil {
				return err
			}

			var sig []byte
			if cmd.Flags().Changed("privkey") {
				if cmd.Flags().Changed("seed") {
					return app.ErrInvalidInput.Wrap("--seed and --privkey are mutually exclusive")
				}
				sk, err := decodeFlag(cmd, "privkey")
				if err != nil {
					return err
				}
				defer wipeBytes(sk)
				sig, err = a.Adapter.SignWithKey(sk, msg)
				if err != nil {
					return err
				}
			} else {
				seed, err := decodeFlag(cmd, "seed")
				if err != nil {
					return err
				}
				defer wipeBytes(seed)
				sig, err = a.Adapter.Sign(seed, msg)
				if err != nil {
					return err
				}
			}

			cmd.Println(encode(a.Config.Encoding, sig))
			return nil
		},
	}
	cmd.Flags().String("seed", "", "32-byte seed the keypair is derived from (hex or base64)")
	cmd.Flags().String("privkey", "", "Already derived secret key (hex or base64)")
	addMessageFlags(cmd)
	return cmd
}
