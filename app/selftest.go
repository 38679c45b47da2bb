package app

import (
	"bytes"

	"wasmcrypto/crypto/pqc/dilithium"
	"wasmcrypto/crypto/pqc/dilithium/vectors"
)

// SelfTest checks the published keypair vector and a sign/verify round trip,
// including the rejection of a tampered message.
func (a *App) SelfTest() error {
	pk, err := a.Adapter.PublicKeyFromSeed(vectors.KnownSeed())
	if err != nil {
		return ErrSelfTestFailed.Wrap(err.Error())
	}
	if !bytes.Equal(pk, vectors.KnownPublicKey()) {
		return ErrSelfTestFailed.Wrap("known public key vector mismatch")
	}

	seed := vectors.KnownSeed()
	msg := []byte("wasmcrypto self test")
	sig, err := a.Adapter.Sign(seed, msg)
	if err != nil {
		return ErrSelfTestFailed.Wrap(err.Error())
	}
	if len(sig) != dilithium.SignatureSize {
		return ErrSelfTestFailed.Wrapf("signature is %d bytes", len(sig))
	}
	if !a.Adapter.Verify(sig, msg, pk) {
		return ErrSelfTestFailed.Wrap("round trip rejected")
	}
	if a.Adapter.Verify(sig, append(msg, '!'), pk) {
		return ErrSelfTestFailed.Wrap("tampered message accepted")
	}

	a.Logger.Info("self test passed", "backend", dilithium.ActiveBackend())
	return nil
}
