package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChunkText_ShortTextSingleChunk(t *testing.T) {
	chunker := NewTextChunker()

	chunks := chunker.ChunkText("A short paragraph.", 1000, 200)

	require.Len(t, chunks, 1)
	assert.Equal(t, "A short paragraph.", chunks[0])
}

func TestChunkText_SplitsOnParagraphs(t *testing.T) {
	chunker := NewTextChunker()

	paraA := strings.Repeat("alpha ", 30)  // ~180 chars
	paraB := strings.Repeat("beta ", 30)   // ~150 chars
	text := strings.TrimSpace(paraA) + "\n\n" + strings.TrimSpace(paraB)

	chunks := chunker.ChunkText(text, 200, 0)

	require.Len(t, chunks, 2)
	assert.Contains(t, chunks[0], "alpha")
	assert.Contains(t, chunks[1], "beta")
}

func TestChunkText_LongParagraphFallsBackToSentences(t *testing.T) {
	chunker := NewTextChunker()

	var sb strings.Builder
	for i := 0; i < 40; i++ {
		sb.WriteString("This is a fairly long sentence that pads out the paragraph. ")
	}

	chunks := chunker.ChunkText(sb.String(), 300, 0)

	require.Greater(t, len(chunks), 1)
	for _, chunk := range chunks {
		assert.LessOrEqual(t, len(chunk), 300)
	}
}

func TestChunkText_OverlapCarriedBetweenChunks(t *testing.T) {
	chunker := NewTextChunker()

	paraA := strings.TrimSpace(strings.Repeat("alpha ", 30))
	paraB := strings.TrimSpace(strings.Repeat("beta ", 30))
	text := paraA + "\n\n" + paraB

	chunks := chunker.ChunkText(text, 200, 20)

	require.Len(t, chunks, 2)
	tail := lastNChars(chunks[0], 20)
	assert.True(t, strings.HasPrefix(chunks[1], tail))
}

func TestChunkText_DefaultsForBadArguments(t *testing.T) {
	chunker := NewTextChunker()

	chunks := chunker.ChunkText("some text", 0, -5)

	require.Len(t, chunks, 1)
	assert.Equal(t, "some text", chunks[0])
}
