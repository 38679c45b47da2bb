package main

import (
	"os"

	"wasmcrypto/cmd/wasmcryptod/cmd"
	"wasmcrypto/crypto/pqc/dilithium"
)

func init() {
	_ = dilithium.Default()
	name := dilithium.ActiveBackend()
	if name != dilithium.BackendDilithium2Circl {
		panic("security: invalid PQC backend linked: " + name)
	}
}

func main() {
	if err := cmd.Execute(cmd.NewRootCmd()); err != nil {
		os.Exit(1)
	}
}
