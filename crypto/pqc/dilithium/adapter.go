package dilithium

import (
	errorsmod "cosmossdk.io/errors"
)

// Adapter owns the fixed byte layout of keys and signatures and forwards every
// call to the injected Primitive. It carries no state besides the primitive,
// so a single Adapter may be shared freely between goroutines.
type Adapter struct {
	primitive Primitive
}

// NewAdapter returns an Adapter over p.
func NewAdapter(p Primitive) (*Adapter, error) {
	if p == nil {
		return nil, ErrPrimitiveUnavailable
	}
	return &Adapter{primitive: p}, nil
}

// Primitive returns the engine the adapter forwards to.
func (a *Adapter) Primitive() Primitive { return a.primitive }

// GenerateKeypair derives the keypair for seed and returns it as a single
// KeypairSize blob laid out as secret key followed by public key.
// The same seed always yields the same bytes.
func (a *Adapter) GenerateKeypair(seed []byte) (Keypair, error) {
	if err := checkSeed(seed); err != nil {
		return nil, err
	}
	sk, pk, err := a.primitive.Generate(seed)
	if err != nil {
		return nil, errorsmod.Wrap(ErrPrimitive, err.Error())
	}
	defer wipe(sk)
	return packKeypair(sk, pk)
}

// PublicKeyFromSeed derives only the public half of the keypair for seed.
func (a *Adapter) PublicKeyFromSeed(seed []byte) (PublicKey, error) {
	kp, err := a.GenerateKeypair(seed)
	if err != nil {
		return nil, err
	}
	return kp.PublicKey(), nil
}

// Sign re-derives the keypair from seed and signs msg with its secret key.
// Nothing derived here outlives the call.
func (a *Adapter) Sign(seed, msg []byte) (Signature, error) {
	if err := checkSeed(seed); err != nil {
		return nil, err
	}
	sk, _, err := a.primitive.Generate(seed)
	if err != nil {
		return nil, errorsmod.Wrap(ErrPrimitive, err.Error())
	}
	defer wipe(sk)
	return a.sign(sk, msg)
}

// SignWithKey signs msg with an already derived secret key, skipping the
// key derivation Sign performs on every call.
func (a *Adapter) SignWithKey(sk PrivateKey, msg []byte) (Signature, error) {
	if len(sk) != PrivateKeySize {
		return nil, ErrInvalidPrivateKey.Wrapf("got %d bytes, want %d", len(sk), PrivateKeySize)
	}
	return a.sign(sk, msg)
}

func (a *Adapter) sign(sk PrivateKey, msg []byte) (Signature, error) {
	sig, err := a.primitive.Sign(sk, msg)
	if err != nil {
		return nil, errorsmod.Wrap(ErrPrimitive, err.Error())
	}
	if len(sig) != SignatureSize {
		return nil, ErrPrimitive.Wrapf("signature is %d bytes, want %d", len(sig), SignatureSize)
	}
	return sig, nil
}

// Verify reports whether sig is a valid signature over msg under pk.
// Signatures and public keys of the wrong length are rejected without
// consulting the primitive. A public key the primitive cannot parse also
// yields false rather than an error.
func (a *Adapter) Verify(sig, msg, pk []byte) bool {
	if len(sig) != SignatureSize {
		return false
	}
	if len(pk) != PublicKeySize {
		return false
	}
	return a.primitive.Verify(PublicKey(pk), msg, Signature(sig))
}

func checkSeed(seed []byte) error {
	if len(seed) != SeedSize {
		return ErrInvalidSeedLength.Wrapf("got %d bytes, want %d", len(seed), SeedSize)
	}
	return nil
}
