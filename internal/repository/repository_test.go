package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayNameFallsBackToEmail(t *testing.T) {
	assert.Equal(t, "neo", User{Username: "neo", Email: "n@x.io"}.DisplayName())
	assert.Equal(t, "n@x.io", User{Email: "n@x.io"}.DisplayName())
}

func TestBlankIDsShortCircuit(t *testing.T) {
	// No DB is needed: blank ids are rejected before any query.
	_, err := NewUserRepo(nil).GetByExternalID(context.Background(), "  ")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = NewSaleRepo(nil).SoldIndices(context.Background(), "")
	assert.ErrorIs(t, err, ErrInvalidMatch)
}
