package ensnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize_ASCIIFastPath(t *testing.T) {
	tokens, err := Tokenize("HELLO")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, KindValid, tokens[0].Kind)
	assert.Equal(t, []rune("hello"), tokens[0].CPs)
}

func TestTokenize_StopSplitsIntoAtomicToken(t *testing.T) {
	tokens, err := Tokenize("a.b")
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, KindValid, tokens[0].Kind)
	assert.Equal(t, KindStop, tokens[1].Kind)
	assert.Equal(t, KindValid, tokens[2].Kind)
}

func TestTokenize_IgnoredDropsButDoesNotMerge(t *testing.T) {
	// ZWJ (U+200D) between two ASCII runs is its own Ignored token; the
	// surrounding valid runs do not coalesce across it.
	tokens, err := Tokenize("a‍b")
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, KindValid, tokens[0].Kind)
	assert.Equal(t, KindIgnored, tokens[1].Kind)
	assert.Equal(t, KindValid, tokens[2].Kind)
}

func TestTokenize_InvalidUTF8IsDisallowed(t *testing.T) {
	tokens, err := Tokenize("a\xffb")
	require.NoError(t, err)
	require.Len(t, tokens, 3)
	assert.Equal(t, KindDisallowed, tokens[1].Kind)
}

func TestTokenize_ValidUTF8ReplacementCharacterIsNotMisclassified(t *testing.T) {
	// A genuine, validly-encoded U+FFFD must not be flagged as invalid UTF-8
	// even though it shares a codepoint value with the decoder's error
	// sentinel.
	tokens, err := Tokenize("�")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, KindDisallowed, tokens[0].Kind, "U+FFFD itself is not table-admitted, but for being unrecognized, not for being invalid UTF-8")
}

func TestTokenize_MappedMultiCodepointPositions(t *testing.T) {
	// ½ maps to the three codepoints "1⁄2"; every position in the expanded
	// token must point back to the single source index (spec.md §7).
	tokens, err := Tokenize("½")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, []rune{'1', 0x2044, '2'}, tokens[0].CPs)
	assert.Equal(t, []int{0, 0, 0}, tokens[0].Positions)
}

func TestTokenize_EmojiLongestMatch(t *testing.T) {
	// The couple-with-heart ZWJ sequence must win over matching its
	// standalone man-emoji prefix.
	coupleRaw := string([]rune{0x1F468, 0x200D, 0x2764, 0xFE0F, 0x200D, 0x1F468})
	tokens, err := Tokenize(coupleRaw)
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, KindEmoji, tokens[0].Kind)
	assert.Equal(t, []rune{0x1F468, 0x200D, 0x2764, 0xFE0F, 0x200D, 0x1F468}, tokens[0].CPs)
}

func TestTokenize_EmojiWithoutFE0FMatchesCanonicalForm(t *testing.T) {
	tokens, err := Tokenize(string(rune(0x1F44D))) // thumbs up, no FE0F
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, KindEmoji, tokens[0].Kind)
	assert.Equal(t, []rune{0x1F44D}, tokens[0].EmojiKey)
	assert.Equal(t, []rune{0x1F44D, 0xFE0F}, tokens[0].CPs)
}

func TestTokenize_NFCTriggerRecomposesDecomposedRun(t *testing.T) {
	tokens, err := Tokenize("é") // e + combining acute
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, KindNFC, tokens[0].Kind)
	assert.Equal(t, []rune{0x00E9}, tokens[0].CPs)
}

func TestTokenize_UnchangedNFCRunStaysValid(t *testing.T) {
	tokens, err := Tokenize("hello")
	require.NoError(t, err)
	require.Len(t, tokens, 1)
	assert.Equal(t, KindValid, tokens[0].Kind)
}
