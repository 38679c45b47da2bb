package app

import (
	errorsmod "cosmossdk.io/errors"
)

const (
	errInvalidInput   uint32 = 1
	errSelfTestFailed uint32 = 2
	errInvalidSig     uint32 = 3
)

var (
	ErrInvalidInput     = errorsmod.Register(Name, errInvalidInput, "invalid input")
	ErrSelfTestFailed   = errorsmod.Register(Name, errSelfTestFailed, "self test failed")
	ErrSignatureInvalid = errorsmod.Register(Name, errInvalidSig, "signature verification failed")
)
