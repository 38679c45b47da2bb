package dilithium

const (
	// SeedSize is the length of the seed a keypair is derived from.
	SeedSize = 32
	// PrivateKeySize is the packed Dilithium2 secret key length.
	PrivateKeySize = 2528
	// PublicKeySize is the packed Dilithium2 public key length.
	PublicKeySize = 1312
	// KeypairSize is the length of the secret‖public keypair blob.
	KeypairSize = PrivateKeySize + PublicKeySize
	// SignatureSize is the Dilithium2 signature length, independent of the message.
	SignatureSize = 2420
)

// PublicKey represents a packed Dilithium2 public key.
type PublicKey []byte

// PrivateKey represents a packed Dilithium2 secret key.
type PrivateKey []byte

// Signature represents a Dilithium2 signature.
type Signature []byte

const (
	algoDilithium2         = "dilithium2"
	BackendDilithium2Circl = "dilithium2-circl"
)

// Primitive is the lattice signature engine the Adapter forwards to.
// Implementations must be safe for concurrent use and hold no per-call state.
type Primitive interface {
	// Name returns the scheme identifier (e.g. "dilithium2").
	Name() string

	// Generate deterministically derives a keypair from seed.
	Generate(seed []byte) (PrivateKey, PublicKey, error)
	// Sign produces a signature over msg with sk.
	Sign(sk PrivateKey, msg []byte) (Signature, error)
	// Verify reports whether sig is a valid signature over msg under pk.
	Verify(pk PublicKey, msg []byte, sig Signature) bool
}
