package common

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestChunk(t *testing.T) {
	assert.Equal(t, [][]int{{1, 2}, {3, 4}, {5}}, Chunk([]int{1, 2, 3, 4, 5}, 2))
	assert.Equal(t, [][]int{{1, 2, 3}}, Chunk([]int{1, 2, 3}, 3))
	assert.Equal(t, [][]string{{"a"}}, Chunk([]string{"a"}, 4))
	assert.Nil(t, Chunk([]int{}, 3))
	assert.Nil(t, Chunk([]int{1}, 0))
}

func TestChunkDoesNotAliasFollowingRows(t *testing.T) {
	rows := Chunk([]int{1, 2, 3, 4}, 2)
	rows[0] = append(rows[0], 99)
	assert.Equal(t, []int{3, 4}, rows[1])
}
