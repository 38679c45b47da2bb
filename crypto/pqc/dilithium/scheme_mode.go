package dilithium

import (
	"fmt"

	"github.com/cloudflare/circl/sign"
)

// modeScheme adapts a circl sign.Scheme to the Primitive interface.
type modeScheme struct {
	scheme sign.Scheme
	algoID string
}

func newModeScheme(scheme sign.Scheme, algo string) (Primitive, error) {
	if scheme == nil {
		return nil, ErrPrimitiveUnavailable
	}
	if scheme.SeedSize() != SeedSize ||
		scheme.PublicKeySize() != PublicKeySize ||
		scheme.PrivateKeySize() != PrivateKeySize ||
		scheme.SignatureSize() != SignatureSize {
		return nil, ErrPrimitiveUnavailable.Wrapf("%s: unexpected parameter sizes", scheme.Name())
	}
	return &modeScheme{scheme: scheme, algoID: algo}, nil
}

func (s *modeScheme) Name() string {
	return s.algoID
}

func (s *modeScheme) Generate(seed []byte) (PrivateKey, PublicKey, error) {
	// DeriveKey panics on a short seed.
	if len(seed) != s.scheme.SeedSize() {
		return nil, nil, fmt.Errorf("dilithium: seed must be %d bytes", s.scheme.SeedSize())
	}

	seedCopy := make([]byte, len(seed))
	copy(seedCopy, seed)
	pk, sk := s.scheme.DeriveKey(seedCopy)
	wipe(seedCopy)

	pubBytes, err := pk.MarshalBinary()
	if err != nil {
		return nil, nil, fmt.Errorf("dilithium: marshal public key: %w", err)
	}
	privBytes, err := sk.MarshalBinary()
	if err != nil {
		return nil, nil, fmt.Errorf("dilithium: marshal private key: %w", err)
	}

	return PrivateKey(privBytes), PublicKey(pubBytes), nil
}

func (s *modeScheme) Sign(priv PrivateKey, msg []byte) (Signature, error) {
	if len(priv) != s.scheme.PrivateKeySize() {
		return nil, fmt.Errorf("dilithium: private key must be %d bytes", s.scheme.PrivateKeySize())
	}

	sk, err := s.scheme.UnmarshalBinaryPrivateKey(priv)
	if err != nil {
		return nil, fmt.Errorf("dilithium: invalid private key: %w", err)
	}

	sigBytes := s.scheme.Sign(sk, msg, nil)
	out := make([]byte, len(sigBytes))
	copy(out, sigBytes)
	return Signature(out), nil
}

func (s *modeScheme) Verify(pub PublicKey, msg []byte, sig Signature) bool {
	if len(pub) != s.scheme.PublicKeySize() {
		return false
	}
	if len(sig) != s.scheme.SignatureSize() {
		return false
	}

	pk, err := s.scheme.UnmarshalBinaryPublicKey(pub)
	if err != nil {
		return false
	}
	return s.scheme.Verify(pk, msg, sig, nil)
}

func wipe(b []byte) {
	for i := range b {
		b[i] = 0
	}
}
