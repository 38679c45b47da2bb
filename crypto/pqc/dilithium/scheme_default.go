package dilithium

// Default returns the Dilithium2 primitive linked into this build.
// It panics if the backend does not match the fixed Dilithium2 layout.
func Default() Primitive {
	scheme, err := newCirclScheme()
	if err != nil {
		panic("pqc: dilithium2 backend unavailable: " + err.Error())
	}
	return scheme
}
