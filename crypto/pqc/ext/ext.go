// Package ext is the host-facing boundary of the Dilithium2 adapter. Its three
// functions keep the historical calling convention: plain byte slices in,
// a byte slice or bool out, and a panic when the engine cannot complete a
// keypair or signature.
package ext

import (
	"wasmcrypto/crypto/pqc/dilithium"
)

const (
	KeypairLength   = dilithium.KeypairSize
	SecretKeyLength = dilithium.PrivateKeySize
	PublicKeyLength = dilithium.PublicKeySize
	SignatureLength = dilithium.SignatureSize
)

func adapter() *dilithium.Adapter {
	a, err := dilithium.NewAdapter(dilithium.Default())
	if err != nil {
		panic(err)
	}
	return a
}

// ExtDilithiumFromSeed returns the KeypairLength blob derived from a 32-byte
// seed: the secret key followed by the public key.
func ExtDilithiumFromSeed(seed []byte) []byte {
	kp, err := adapter().GenerateKeypair(seed)
	if err != nil {
		panic(err)
	}
	return kp
}

// ExtDilithiumSign signs message with the keypair derived from seed and
// returns a SignatureLength signature. The first argument used to carry the
// public key and is ignored.
func ExtDilithiumSign(_ []byte, seed []byte, message []byte) []byte {
	sig, err := adapter().Sign(seed, message)
	if err != nil {
		panic(err)
	}
	return sig
}

// ExtDilithiumVerify reports whether signature is valid for message under
// pubkey. A signature that is not SignatureLength bytes is rejected outright.
func ExtDilithiumVerify(signature []byte, message []byte, pubkey []byte) bool {
	return adapter().Verify(signature, message, pubkey)
}
