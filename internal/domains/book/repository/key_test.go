package repository

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"library-api/internal/domains/book/model"
)

func TestNewIDProducesValidStoreKeys(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := NewID()
		assert.Len(t, id, 24)
		assert.True(t, model.IsValidID(id), "generated key %q must be a valid store key", id)
	}
}

func TestNewIDDoesNotCollide(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 10000; i++ {
		id := NewID()
		_, dup := seen[id]
		assert.False(t, dup, "duplicate key %q", id)
		seen[id] = struct{}{}
	}
}
