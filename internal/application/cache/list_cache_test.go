package cache

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/compdir/company-directory-api/internal/application/dto"
)

func TestListCache(t *testing.T) {
	c := NewListCache()
	key := Key{Search: "goo", Page: 1, Limit: 10}

	_, ok := c.Get(key)
	assert.False(t, ok)

	value := &dto.CompanyListResponse{
		Pagination: dto.Pagination{Page: 1, Limit: 10, Total: 1, Pages: 1},
	}
	c.Put(key, value)

	got, ok := c.Get(key)
	assert.True(t, ok)
	assert.Same(t, value, got)

	// A different tuple is a different entry.
	_, ok = c.Get(Key{Search: "goo", Page: 2, Limit: 10})
	assert.False(t, ok)

	c.Put(Key{Search: "", Page: 1, Limit: 10}, value)
	assert.Equal(t, 2, c.Len())

	c.Purge()
	assert.Equal(t, 0, c.Len())
	_, ok = c.Get(key)
	assert.False(t, ok)
}
