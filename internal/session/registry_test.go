package session

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpenSeedsFromSoldSource(t *testing.T) {
	src := &fakeSource{sold: map[string][]int{"m1": {1, 2, 2}}}
	r := NewRegistry(testLayout(t), src, nil)

	s := r.Open(context.Background(), "v1", "m1")
	assert.Equal(t, 2, s.Snapshot().SoldCount)

	got, err := r.Get("v1", "m1")
	require.NoError(t, err)
	assert.Same(t, s, got)
}

func TestOpenWithFailingSourceStillOpens(t *testing.T) {
	r := NewRegistry(testLayout(t), &fakeSource{err: errors.New("db down")}, nil)
	s := r.Open(context.Background(), "v1", "m1")
	assert.Zero(t, s.Snapshot().SoldCount)
	assert.Equal(t, 1, r.Len())
}

func TestReopenReplacesSession(t *testing.T) {
	r := NewRegistry(testLayout(t), nil, nil)
	first := r.Open(context.Background(), "v1", "m1")
	first.Toggle(5)

	second := r.Open(context.Background(), "v1", "m1")
	assert.NotEqual(t, first.ID, second.ID)
	assert.Empty(t, second.Selected())
	assert.Equal(t, 1, r.Len())
}

func TestGetAndCloseMissing(t *testing.T) {
	r := NewRegistry(testLayout(t), nil, nil)
	_, err := r.Get("nobody", "m1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, r.Close("nobody", "m1"), ErrSessionNotFound)
}

func TestClose(t *testing.T) {
	r := NewRegistry(testLayout(t), nil, nil)
	r.Open(context.Background(), "v1", "m1")
	require.NoError(t, r.Close("v1", "m1"))
	_, err := r.Get("v1", "m1")
	assert.ErrorIs(t, err, ErrSessionNotFound)
}

func TestMarkSoldFansOutPerMatch(t *testing.T) {
	r := NewRegistry(testLayout(t), nil, nil)
	a := r.Open(context.Background(), "v1", "m1")
	b := r.Open(context.Background(), "v2", "m1")
	c := r.Open(context.Background(), "v3", "m2")
	a.Toggle(10)

	assert.Equal(t, 2, r.MarkSold("m1", []int{10, 11}))
	assert.Empty(t, a.Selected(), "sold overrides selection")
	assert.Equal(t, 2, a.Snapshot().SoldCount)
	assert.Equal(t, 2, b.Snapshot().SoldCount)
	assert.Zero(t, c.Snapshot().SoldCount)
}

func TestRegistryRefresh(t *testing.T) {
	src := &fakeSource{sold: map[string][]int{}}
	r := NewRegistry(testLayout(t), src, nil)
	s := r.Open(context.Background(), "v1", "m1")

	src.sold["m1"] = []int{0, 1, 2}
	n, err := r.Refresh(context.Background(), s)
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	src.err = errors.New("timeout")
	_, err = r.Refresh(context.Background(), s)
	require.Error(t, err)
	assert.Equal(t, 3, s.Snapshot().SoldCount, "failed refresh leaves state unchanged")
}
