package textcrypto

// MACKeySize is the BLAKE3 keyed hash key size in bytes
const MACKeySize = 32

// MACSize is the BLAKE3 keyed hash output size in bytes
const MACSize = 32

// SigningKeySize is the Ed25519 seed size in bytes
const SigningKeySize = 32

// VerifyingKeySize is the Ed25519 public key size in bytes
const VerifyingKeySize = 32

// SignatureSize is the Ed25519 signature size in bytes
const SignatureSize = 64

// AEADKeySize is the ChaCha20-Poly1305 key size in bytes
const AEADKeySize = 32

// NonceSize is the ChaCha20-Poly1305 nonce size in bytes
const NonceSize = 12

// TagSize is the Poly1305 authentication tag size in bytes
const TagSize = 16

// MinRecordSize is the size of an encrypted record holding an empty plaintext
const MinRecordSize = NonceSize + TagSize

// KeyTypeSymmetric represents a symmetric key
const KeyTypeSymmetric = "symmetric"

// KeyTypePrivate represents a signing key
const KeyTypePrivate = "private"

// KeyTypePublic represents a verifying key
const KeyTypePublic = "public"

// Artifact names of generated keys. Key files carry no header, the name is the only hint
// of which algorithm and role a key file belongs to.
const (
	MACKeyArtifact       = "blake3.txt"
	SigningKeyArtifact   = "ed25519.sk"
	VerifyingKeyArtifact = "ed25519.pk"
)

// ArtifactKeyType returns the key type of a generated artifact, or "" for an unknown name.
func ArtifactKeyType(artifact string) string {
	switch artifact {
	case MACKeyArtifact:
		return KeyTypeSymmetric
	case SigningKeyArtifact:
		return KeyTypePrivate
	case VerifyingKeyArtifact:
		return KeyTypePublic
	default:
		return ""
	}
}
