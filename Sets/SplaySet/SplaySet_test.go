package SplaySet

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSplaySet_All(t *testing.T) {
	S := New[int]()
	for i := 0; i < 10; i++ {
		assert.True(t, S.Put(i), "wrong put 1")
		assert.False(t, S.Put(i), "wrong put 2")
	}
	for i := 0; i < 10; i++ {
		assert.True(t, S.Has(i), "wrong has 1")
	}
	for i := 0; i < 5; i++ {
		assert.True(t, S.Remove(i), "wrong remove 1")
		assert.False(t, S.Remove(i), "wrong remove 2")
	}
	for i := 0; i < 5; i++ {
		assert.False(t, S.Has(i), "wrong has 2")
	}
	assert.EqualValues(t, 5, S.Size())
	assert.False(t, S.Tree().Corrupt())
}

func TestSplaySet_Take(t *testing.T) {
	S := New[int]()
	for _, v := range []int{4, 2, 9, 7} {
		S.Put(v)
	}
	var got []int
	for S.Size() > 0 {
		got = append(got, S.Take())
	}
	assert.Equal(t, []int{2, 4, 7, 9}, got)
	assert.Zero(t, S.Take())
}

func TestSplaySet_Range(t *testing.T) {
	S := NewFunc[string](strings.Compare)
	for _, v := range []string{"pear", "apple", "fig", "kiwi"} {
		S.Put(v)
	}
	var got []string
	S.Range(func(s string) bool {
		got = append(got, s)
		return len(got) < 3
	})
	assert.Equal(t, []string{"apple", "fig", "kiwi"}, got)
	next, has := S.Tree().Next("fig")
	assert.True(t, has)
	assert.Equal(t, "kiwi", next)
}
