package cmd

import (
	"crypto/rand"
	"fmt"

	"github.com/spf13/cobra"

	"wasmcrypto/app"
	"wasmcrypto/crypto/pqc/dilithium"
)

// NewKeygenCmd returns the `keygen` command.
func NewKeygenCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "keygen",
		Short: "Derive a Dilithium2 keypair from a 32-byte seed",
		Long: `Derive a Dilithium2 keypair from a 32-byte seed.

The keypair blob is the secret key (2528 bytes) followed by the public key
(1312 bytes). The same seed always produces the same keypair.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := appFromCmd(cmd)
			if err != nil {
				return err
			}

			random, err := cmd.Flags().GetBool("random")
			if err != nil {
				return err
			}
			var seed []byte
			if random {
				if cmd.Flags().Changed("seed") {
					return app.ErrInvalidInput.Wrap("--seed and --random are mutually exclusive")
				}
				seed = make([]byte, dilithium.SeedSize)
				if _, err := rand.Read(seed); err != nil {
					return fmt.Errorf("generate seed: %w", err)
				}
			} else {
				seed, err = decodeFlag(cmd, "seed")
				if err != nil {
					return err
				}
			}
			defer wipeBytes(seed)

			kp, err := a.Adapter.GenerateKeypair(seed)
			if err != nil {
				return err
			}
			defer wipeBytes(kp)

			enc := a.Config.Encoding
			if random {
				cmd.Printf("Seed:        %s\n", encode(enc, seed))
			}
			cmd.Printf("Fingerprint: %s\n", Fingerprint(kp.PublicKey()))
			cmd.Printf("PubKey:      %s\n", encode(enc, kp.PublicKey()))
			cmd.Printf("PrivKey:     %s\n", encode(enc, kp.PrivateKey()))
			cmd.Printf("Keypair:     %s\n", encode(enc, kp))
			return nil
		},
	}
	cmd.Flags().String("seed", "", "32-byte seed (hex or base64)")
	cmd.Flags().Bool("random", false, "Draw a fresh seed from the system CSPRNG and print it")
	return cmd
}

// NewPubkeyCmd returns the `pubkey` command.
func NewPubkeyCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pubkey",
		Short: "Print the Dilithium2 public key derived from a seed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			a, err := appFromCmd(cmd)
			if err != nil {
				return err
			}
			seed, err := decodeFlag(cmd, "seed")
			if err != nil {
				return err
			}
			defer wipeBytes(seed)

			pk, err := a.Adapter.PublicKeyFromSeed(seed)
			if err != nil {
				return err
			}
			cmd.Println(encode(a.Config.Encoding, pk))
			return nil
		},
	}
	cmd.Flags().String("seed", "", "32-byte seed (hex or base64)")
	return cmd
}
