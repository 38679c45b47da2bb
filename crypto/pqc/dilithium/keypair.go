package dilithium

// Keypair is the fixed-layout blob returned by keypair generation: the secret
// key bytes followed by the public key bytes. Callers split it at PrivateKeySize.
type Keypair []byte

// SplitKeypair validates the blob length and returns it as a Keypair.
func SplitKeypair(blob []byte) (Keypair, error) {
	if len(blob) != KeypairSize {
		return nil, ErrInvalidKeypair.Wrapf("got %d bytes, want %d", len(blob), KeypairSize)
	}
	return Keypair(blob), nil
}

// PrivateKey returns a copy of the secret key portion of the blob.
func (kp Keypair) PrivateKey() PrivateKey {
	return PrivateKey(cloneRange(kp, 0, PrivateKeySize))
}

// PublicKey returns a copy of the public key portion of the blob.
func (kp Keypair) PublicKey() PublicKey {
	return PublicKey(cloneRange(kp, PrivateKeySize, KeypairSize))
}

func cloneRange(b []byte, from, to int) []byte {
	if len(b) < to {
		return nil
	}
	out := make([]byte, to-from)
	copy(out, b[from:to])
	return out
}

func packKeypair(sk PrivateKey, pk PublicKey) (Keypair, error) {
	if len(sk) != PrivateKeySize {
		return nil, ErrPrimitive.Wrapf("secret key is %d bytes, want %d", len(sk), PrivateKeySize)
	}
	if len(pk) != PublicKeySize {
		return nil, ErrPrimitive.Wrapf("public key is %d bytes, want %d", len(pk), PublicKeySize)
	}
	out := make([]byte, 0, KeypairSize)
	out = append(out, sk...)
	out = append(out, pk...)
	return Keypair(out), nil
}
