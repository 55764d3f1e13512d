package gemini_test

import (
	"context"
	"strings"
	"testing"

	"github.com/gekberg/gptnotes"
	"github.com/gekberg/gptnotes/gemini"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenCounter_CountTokens(t *testing.T) {
	t.Parallel()

	tc, err := gemini.NewTokenCounter(gemini.TokenizerModel)
	if err != nil {
		t.Skipf("tokenizer unavailable: %v", err)
	}

	var _ gptnotes.TokenCounter = tc

	t.Run("empty string returns zero", func(t *testing.T) {
		t.Parallel()

		count, err := tc.CountTokens(context.Background(), "")

		require.NoError(t, err)
		assert.Equal(t, 0, count)
	})

	t.Run("longer prompt returns more tokens", func(t *testing.T) {
		t.Parallel()

		short := gptnotes.BuildPrompt("use channels", nil)
		long := gptnotes.BuildPrompt("use channels", []string{strings.Repeat("Channels are typed conduits. ", 50)})

		shortCount, err := tc.CountTokens(context.Background(), short)
		require.NoError(t, err)
		longCount, err := tc.CountTokens(context.Background(), long)
		require.NoError(t, err)

		assert.Positive(t, shortCount)
		assert.Greater(t, longCount, shortCount)
	})
}
