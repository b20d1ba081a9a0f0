// Package app wires key generation and the key catalog together.
package app
