package app

import (
	"encoding/hex"
	"strings"

	"cosmossdk.io/log"

	"wasmcrypto/crypto/pqc/dilithium"
)

// loggedPrimitive traces engine calls at debug level. Key material and seeds
// are never logged; public keys and signatures are shortened.
type loggedPrimitive struct {
	next   dilithium.Primitive
	logger log.Logger
}

func withLogging(p dilithium.Primitive, logger log.Logger) dilithium.Primitive {
	if logger == nil {
		return p
	}
	return &loggedPrimitive{next: p, logger: logger.With("component", "primitive")}
}

func (l *loggedPrimitive) Name() string { return l.next.Name() }

func (l *loggedPrimitive) Generate(seed []byte) (dilithium.PrivateKey, dilithium.PublicKey, error) {
	sk, pk, err := l.next.Generate(seed)
	if err != nil {
		l.logger.Error("keypair derivation failed", "err", err)
		return sk, pk, err
	}
	l.logger.Debug("keypair derived", "pubkey", shortHex(pk))
	return sk, pk, nil
}

func (l *loggedPrimitive) Sign(sk dilithium.PrivateKey, msg []byte) (dilithium.Signature, error) {
	sig, err := l.next.Sign(sk, msg)
	if err != nil {
		l.logger.Error("signing failed", "msg_len", len(msg), "err", err)
		return sig, err
	}
	l.logger.Debug("message signed", "msg_len", len(msg), "sig", shortHex(sig))
	return sig, nil
}

func (l *loggedPrimitive) Verify(pk dilithium.PublicKey, msg []byte, sig dilithium.Signature) bool {
	ok := l.next.Verify(pk, msg, sig)
	l.logger.Debug("signature checked", "pubkey", shortHex(pk), "msg_len", len(msg), "valid", ok)
	return ok
}

func shortHex(bz []byte) string {
	if len(bz) == 0 {
		return "n/a"
	}
	hexStr := strings.ToUpper(hex.EncodeToString(bz))
	if len(hexStr) > 16 {
		return hexStr[:16]
	}
	return hexStr
}
