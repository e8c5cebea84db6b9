package quote

import (
	"math/rand/v2"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuiltinList(t *testing.T) {
	r := NewRotator(nil, nil)
	assert.Equal(t, 7, r.Len())
	assert.Empty(t, r.Current())
}

func TestNextReachesEveryQuote(t *testing.T) {
	r := NewRotator(nil, rand.New(rand.NewPCG(1, 2)))
	seen := make(map[string]int)
	for i := 0; i < 2000; i++ {
		q := r.Next()
		require.Contains(t, Builtin, q)
		assert.Equal(t, q, r.Current())
		seen[q]++
	}
	assert.Len(t, seen, len(Builtin))
}

func TestCustomList(t *testing.T) {
	r := NewRotator([]string{"only one"}, nil)
	assert.Equal(t, "only one", r.Next())
	assert.Equal(t, "only one", r.Next())
}

func TestRotatorCopiesList(t *testing.T) {
	list := []string{"a", "b"}
	r := NewRotator(list, rand.New(rand.NewPCG(3, 4)))
	list[0], list[1] = "x", "x"
	for i := 0; i < 50; i++ {
		assert.NotEqual(t, "x", r.Next())
	}
}
