package cliquehash_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvclique/cliquehash"
)

func TestClique_Helpers(t *testing.T) {
	c := cliquehash.Clique{4, 1, 3}

	assert.True(t, c.Equal(cliquehash.Clique{4, 1, 3}))
	assert.False(t, c.Equal(cliquehash.Clique{1, 3, 4}), "order matters")
	assert.False(t, c.Equal(cliquehash.Clique{4, 1}))

	canon := c.Canonical()
	assert.Equal(t, cliquehash.Clique{1, 3, 4}, canon)
	assert.Equal(t, cliquehash.Clique{4, 1, 3}, c, "Canonical must not mutate the receiver")

	cp := c.Clone()
	cp[0] = 9
	assert.Equal(t, 4, c[0])

	assert.Equal(t, "[4 1 3]", c.String())

	assert.NoError(t, c.Validate(3))
	assert.ErrorIs(t, c.Validate(4), cliquehash.ErrKeySize)
	assert.ErrorIs(t, cliquehash.Clique{1, -1, 2}.Validate(3), cliquehash.ErrNegativeNode)
}
