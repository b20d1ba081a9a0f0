// Package v1 exposes a directory and the key catalog over HTTP using gin.
package v1
