// Package cryptography implements the textcrypto contracts: BLAKE3 keyed hashing and
// Ed25519 signatures for signing, ChaCha20-Poly1305 for authenticated encryption, and
// generation of the matching key material.
package cryptography
