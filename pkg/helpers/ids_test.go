package helpers

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewEntityIDShape(t *testing.T) {
	id := NewEntityID()
	assert.Len(t, id, 26)
	for _, r := range id {
		assert.True(t, strings.ContainsRune(idAlphabet, r), "unexpected rune %q", r)
	}
}

func TestNewEntityIDUniqueness(t *testing.T) {
	seen := make(map[string]bool, 1000)
	for i := 0; i < 1000; i++ {
		id := NewEntityID()
		assert.False(t, seen[id], "duplicate id %s", id)
		seen[id] = true
	}
}
