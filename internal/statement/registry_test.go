package statement

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistry_Get(t *testing.T) {
	r := NewRegistry()

	parser, ok := r.Get("bcp")
	require.True(t, ok)
	assert.Equal(t, "bcp", parser.Config().ID)

	_, ok = r.Get("unknown-bank")
	assert.False(t, ok)
}

func TestRegistry_ListInRegistrationOrder(t *testing.T) {
	infos := NewRegistry().List()
	require.Len(t, infos, 2)
	assert.Equal(t, "bcp", infos[0].ID)
	assert.Equal(t, "cgd", infos[1].ID)
	for _, info := range infos {
		assert.NotEmpty(t, info.Name)
		assert.Equal(t, "PT", info.Country)
		assert.Equal(t, "EUR", info.Currency)
	}
}

func TestRegistry_SupportedIDs(t *testing.T) {
	assert.Equal(t, []string{"bcp", "cgd"}, NewRegistry().SupportedIDs())
}

func TestRegistry_CategorySeedsPresent(t *testing.T) {
	r := NewRegistry()
	for _, id := range r.SupportedIDs() {
		parser, _ := r.Get(id)
		seeds := parser.CategoryPatterns()
		require.NotEmpty(t, seeds, "bank %s has no category seeds", id)
		for _, seed := range seeds {
			assert.NotEmpty(t, seed.Category)
			assert.NotEmpty(t, seed.Keywords)
		}
	}
}
