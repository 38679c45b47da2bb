package dilithium

import errorsmod "cosmossdk.io/errors"

// Codespace is the error codespace used by the adapter.
const Codespace = "dilithium"

var (
	ErrInvalidSeedLength    = errorsmod.Register(Codespace, 1, "invalid seed length")
	ErrInvalidPrivateKey    = errorsmod.Register(Codespace, 2, "invalid private key")
	ErrInvalidKeypair       = errorsmod.Register(Codespace, 3, "invalid keypair blob")
	ErrPrimitive            = errorsmod.Register(Codespace, 4, "signature primitive failure")
	ErrPrimitiveUnavailable = errorsmod.Register(Codespace, 5, "signature primitive unavailable")
)
