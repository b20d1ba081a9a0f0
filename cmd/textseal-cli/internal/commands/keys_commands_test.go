//go:build unit
// +build unit

package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestKeysCommands_RequireCatalog(t *testing.T) {
	_, err := execute(t, "", "keys", "list")
	assert.ErrorIs(t, err, errNoKeyCatalog)

	_, err = execute(t, "", "keys", "delete", "--id", "5b0c6a48-93f1-4c43-a3a5-5cf2c1f1e0a7")
	assert.ErrorIs(t, err, errNoKeyCatalog)
}
