package cmd

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/crypto/sha3"

	"wasmcrypto/app"
)

// DecodeKey parses a hex, standard base64, or raw base64 string into bytes.
func DecodeKey(input string) ([]byte, error) {
	s := strings.TrimSpace(input)
	if s == "" {
		return nil, fmt.Errorf("empty key")
	}

	if len(s)%2 == 0 {
		if bz, err := hex.DecodeString(strings.TrimPrefix(s, "0x")); err == nil {
			return bz, nil
		}
	}
	if bz, err := base64.StdEncoding.DecodeString(s); err == nil {
		return bz, nil
	}
	if bz, err := base64.RawStdEncoding.DecodeString(s); err == nil {
		return bz, nil
	}
	return nil, fmt.Errorf("failed to decode key: expected hex or base64 encoding")
}

// Fingerprint returns a short hex fingerprint of a public key.
//
// It hashes with SHA3-256 and truncates to 10 bytes (20 hex chars).
func Fingerprint(pub []byte) string {
	sum := sha3.Sum256(pub)
	return hex.EncodeToString(sum[:10])
}

func encode(encoding string, bz []byte) string {
	if encoding == app.EncodingBase64 {
		return base64.StdEncoding.EncodeToString(bz)
	}
	return hex.EncodeToString(bz)
}

func decodeFlag(cmd *cobra.Command, name string) ([]byte, error) {
	raw, err := cmd.Flags().GetString(name)
	if err != nil {
		return nil, err
	}
	if strings.TrimSpace(raw) == "" {
		return nil, app.ErrInvalidInput.Wrapf("--%s is required", name)
	}
	bz, err := DecodeKey(raw)
	if err != nil {
		return nil, app.ErrInvalidInput.Wrapf("--%s: %s", name, err)
	}
	return bz, nil
}

// readMessage returns the message given by --message, --message-hex or
// --message-file. An empty message is valid.
func readMessage(cmd *cobra.Command) ([]byte, error) {
	text, _ := cmd.Flags().GetString("message")
	hexMsg, _ := cmd.Flags().GetString("message-hex")
	file, _ := cmd.Flags().GetString("message-file")

	set := 0
	for _, name := range []string{"message", "message-hex", "message-file"} {
		if cmd.Flags().Changed(name) {
			set++
		}
	}
	if set > 1 {
		return nil, app.ErrInvalidInput.Wrap("use only one of --message, --message-hex, --message-file")
	}

	switch {
	case cmd.Flags().Changed("message-hex"):
		bz, err := hex.DecodeString(strings.TrimSpace(hexMsg))
		if err != nil {
			return nil, app.ErrInvalidInput.Wrapf("--message-hex: %s", err)
		}
		return bz, nil
	case cmd.Flags().Changed("message-file"):
		bz, err := os.ReadFile(file)
		if err != nil {
			return nil, fmt.Errorf("read message file: %w", err)
		}
		return bz, nil
	default:
		return []byte(text), nil
	}
}

func addMessageFlags(cmd *cobra.Command) {
	cmd.Flags().String("message", "", "Message as UTF-8 text")
	cmd.Flags().String("message-hex", "", "Message as hex")
	cmd.Flags().String("message-file", "", "Read the message from a file")
}

func wipeBytes(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
