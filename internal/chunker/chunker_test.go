package chunker

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mlevkov/contentproc/internal/entity"
)

func TestChunkShortTextSingleChunk(t *testing.T) {
	chunks, err := Chunk("hello world", 1000, 200)
	require.NoError(t, err)
	require.Equal(t, []string{"hello world"}, chunks)
}

func TestChunkCountMatchesWindowFormula(t *testing.T) {
	cases := []struct {
		n, size, overlap, want int
	}{
		{2000, 500, 100, 5},
		{900, 500, 100, 2},
		{1000, 1000, 200, 1},
		{1001, 1000, 200, 2},
		{3000, 1000, 0, 3},
	}

	for _, c := range cases {
		text := strings.Repeat("a", c.n)
		chunks, err := Chunk(text, c.size, c.overlap)
		require.NoError(t, err)
		require.Len(t, chunks, c.want, "n=%d size=%d overlap=%d", c.n, c.size, c.overlap)

		// Every chunk except possibly the last is exactly size runes.
		for i, chunk := range chunks[:len(chunks)-1] {
			require.Len(t, []rune(chunk), c.size, "chunk %d", i)
		}
	}
}

func TestChunkOverlapIsShared(t *testing.T) {
	text := "abcdefghij" // 10 runes
	chunks, err := Chunk(text, 4, 2)
	require.NoError(t, err)
	require.Equal(t, []string{"abcd", "cdef", "efgh", "ghij"}, chunks)
}

func TestChunkDeterministic(t *testing.T) {
	text := strings.Repeat("lorem ipsum dolor sit amet ", 100)
	first, err := Chunk(text, 120, 30)
	require.NoError(t, err)
	second, err := Chunk(text, 120, 30)
	require.NoError(t, err)
	require.Equal(t, first, second)
}

func TestChunkMultiByteRunesNotSplit(t *testing.T) {
	text := strings.Repeat("日本語テキスト", 50)
	chunks, err := Chunk(text, 25, 5)
	require.NoError(t, err)
	for _, chunk := range chunks {
		require.True(t, strings.ContainsAny(chunk, "日本語テキスト"))
		for _, r := range chunk {
			require.NotEqual(t, '�', r)
		}
	}
}

func TestChunkEmptyContent(t *testing.T) {
	_, err := Chunk("   \n\t ", 1000, 200)
	require.ErrorIs(t, err, entity.ErrEmptyContent)
}

func TestChunkInvalidParams(t *testing.T) {
	for _, c := range []struct{ size, overlap int }{
		{0, 0},
		{-1, 0},
		{100, -1},
		{100, 100},
		{100, 150},
	} {
		_, err := Chunk("some text", c.size, c.overlap)
		require.True(t, errors.Is(err, entity.ErrInvalidChunking), "size=%d overlap=%d", c.size, c.overlap)
	}
}
