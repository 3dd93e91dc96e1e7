package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/viant/adatags/ada"
	"github.com/viant/adatags/cache"
)

func TestHashStable(t *testing.T) {
	h1, err := cache.Hash([]byte("package P is end P;"), "fp1")
	require.NoError(t, err)
	h2, err := cache.Hash([]byte("package P is end P;"), "fp1")
	require.NoError(t, err)
	assert.Equal(t, h1, h2)
}

func TestHashChangesWithFingerprint(t *testing.T) {
	h1, err := cache.Hash([]byte("package P is end P;"), "fp1")
	require.NoError(t, err)
	h2, err := cache.Hash([]byte("package P is end P;"), "fp2")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestHashChangesWithContent(t *testing.T) {
	h1, err := cache.Hash([]byte("package P is end P;"), "fp1")
	require.NoError(t, err)
	h2, err := cache.Hash([]byte("package Q is end Q;"), "fp1")
	require.NoError(t, err)
	assert.NotEqual(t, h1, h2)
}

func TestStoreLookupDelete(t *testing.T) {
	c := cache.New()
	assert.Equal(t, 0, c.Len())

	_, ok := c.Lookup("a.ads", 1)
	assert.False(t, ok)

	tags := []ada.Tag{{Name: "P", Kind: ada.Package, Line: 1}}
	c.Store("a.ads", 1, tags)
	assert.Equal(t, 1, c.Len())

	got, ok := c.Lookup("a.ads", 1)
	require.True(t, ok)
	assert.Equal(t, tags, got)

	_, ok = c.Lookup("a.ads", 2)
	assert.False(t, ok, "a changed hash must miss the cache")

	c.Delete("a.ads")
	assert.Equal(t, 0, c.Len())
	_, ok = c.Lookup("a.ads", 1)
	assert.False(t, ok)
}
