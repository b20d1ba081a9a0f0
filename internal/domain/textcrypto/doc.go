// Package textcrypto defines the contracts, key sizes and error taxonomy for signing,
// verifying and authenticated encryption of byte streams.
//
// Providers are built per operation from caller-supplied key bytes and are immutable
// afterwards, so a single instance may be shared by concurrent callers.
package textcrypto
