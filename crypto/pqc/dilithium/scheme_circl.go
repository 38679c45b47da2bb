package dilithium

import (
	dilithium2 "github.com/cloudflare/circl/sign/dilithium/mode2"
)

func newCirclScheme() (Primitive, error) {
	return newModeScheme(dilithium2.Scheme(), algoDilithium2)
}

// ActiveBackend returns the name of the primitive backend linked into this build.
func ActiveBackend() string { return BackendDilithium2Circl }
