package ensnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// scenario mirrors spec.md §8's concrete-example table: one input and its
// expected normalized/beautified forms, or the error kind it must fail with.
type scenario struct {
	name       string
	input      string
	normalized string
	beautified string
	errKind    ErrorKind
}

var scenarios = []scenario{
	{
		name:       "uppercase ASCII folds to lowercase",
		input:      "HELLO.eth",
		normalized: "hello.eth",
		beautified: "hello.eth",
	},
	{
		name:       "mixed-case with uppercase TLD folds throughout",
		input:      "Nick.ETH",
		normalized: "nick.eth",
		beautified: "nick.eth",
	},
	{
		name:       "vulgar fraction maps to three codepoints before the dot",
		input:      "½.eth",
		normalized: "1⁄2.eth",
		beautified: "1⁄2.eth",
	},
	{
		name:       "standalone Greek xi keeps small-xi (no substitution in a Greek label)",
		input:      "ξ.eth",
		normalized: "ξ.eth",
		beautified: "ξ.eth",
	},
	{
		name:    "Greek xi followed by Latin letters is a script mixture",
		input:   "ξabc.eth",
		errKind: ErrKindIllegalMixture,
	},
	{
		name:    "underscore in the middle of a label is rejected",
		input:   "a_b.eth",
		errKind: ErrKindUnderscoreInMiddle,
	},
	{
		name:    "hyphens at positions 3-4 of a 4+ character label are rejected",
		input:   "ab--cd.eth",
		errKind: ErrKindInvalidLabelExtension,
	},
	{
		name:       "standalone emoji normalizes to its FE0F-stripped key and beautifies fully-qualified",
		input:      string(rune(0x1F44D)) + ".eth",
		normalized: string(rune(0x1F44D)) + ".eth",
		beautified: string([]rune{0x1F44D, 0xFE0F}) + ".eth",
	},
}

func TestProcess_ConcreteScenarios(t *testing.T) {
	for _, sc := range scenarios {
		t.Run(sc.name, func(t *testing.T) {
			result, err := Process(sc.input)
			if sc.errKind != "" {
				require.Error(t, err)
				var e *Error
				require.ErrorAs(t, err, &e)
				assert.Equal(t, sc.errKind, e.Kind())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, sc.normalized, result.Normalized)
			assert.Equal(t, sc.beautified, result.Beautified)
		})
	}
}

func TestNormalizeAndBeautify_AgreeWithProcess(t *testing.T) {
	for _, sc := range scenarios {
		if sc.errKind != "" {
			continue
		}
		t.Run(sc.name, func(t *testing.T) {
			norm, err := Normalize(sc.input)
			require.NoError(t, err)
			assert.Equal(t, sc.normalized, norm)

			beau, err := Beautify(sc.input)
			require.NoError(t, err)
			assert.Equal(t, sc.beautified, beau)
		})
	}
}

// Idempotence: normalizing an already-normalized name must return it
// unchanged.
func TestInvariant_Idempotence(t *testing.T) {
	for _, sc := range scenarios {
		if sc.errKind != "" {
			continue
		}
		t.Run(sc.name, func(t *testing.T) {
			twice, err := Normalize(sc.normalized)
			require.NoError(t, err)
			assert.Equal(t, sc.normalized, twice)
		})
	}
}

// Round-trip: normalizing a name's beautified form returns its normalized
// form.
func TestInvariant_RoundTrip(t *testing.T) {
	for _, sc := range scenarios {
		if sc.errKind != "" {
			continue
		}
		t.Run(sc.name, func(t *testing.T) {
			renormalized, err := Normalize(sc.beautified)
			require.NoError(t, err)
			assert.Equal(t, sc.normalized, renormalized)
		})
	}
}

// Agreement: Normalize and Beautify, called independently, must agree with
// the combined Process call on the same input.
func TestInvariant_Agreement(t *testing.T) {
	for _, sc := range scenarios {
		if sc.errKind != "" {
			continue
		}
		t.Run(sc.name, func(t *testing.T) {
			result, err := Process(sc.input)
			require.NoError(t, err)

			norm, err := Normalize(sc.input)
			require.NoError(t, err)
			assert.Equal(t, result.Normalized, norm)

			beau, err := Beautify(sc.input)
			require.NoError(t, err)
			assert.Equal(t, result.Beautified, beau)
		})
	}
}

// Deterministic labelling: every label of a multi-label name is validated
// and emitted on its own, and Process reports one LabelResult per label in
// input order.
func TestInvariant_DeterministicLabelling(t *testing.T) {
	result, err := Process("HELLO.Nick.eth")
	require.NoError(t, err)
	assert.Equal(t, "hello.nick.eth", result.Normalized)
	require.Len(t, result.Labels, 3)
	assert.Equal(t, "hello", result.Labels[0].Normalized)
	assert.Equal(t, "nick", result.Labels[1].Normalized)
	assert.Equal(t, "eth", result.Labels[2].Normalized)
}

// Failure stability: Normalize and Beautify must fail with exactly the same
// error kind on the same bad input.
func TestInvariant_FailureStability(t *testing.T) {
	for _, sc := range scenarios {
		if sc.errKind == "" {
			continue
		}
		t.Run(sc.name, func(t *testing.T) {
			_, normErr := Normalize(sc.input)
			_, beauErr := Beautify(sc.input)
			require.Error(t, normErr)
			require.Error(t, beauErr)

			var ne, be *Error
			require.ErrorAs(t, normErr, &ne)
			require.ErrorAs(t, beauErr, &be)
			assert.Equal(t, ne.Kind(), be.Kind())
			assert.Equal(t, sc.errKind, ne.Kind())
		})
	}
}

func TestProcess_EmptyInputIsEmptyLabel(t *testing.T) {
	_, err := Process("")
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, ErrKindEmptyLabel, e.Kind())
}

func TestProcess_LeadingStopIsEmptyLabel(t *testing.T) {
	_, err := Process(".eth")
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, ErrKindEmptyLabel, e.Kind())
}

func TestProcess_TrailingStopIsEmptyLabel(t *testing.T) {
	_, err := Process("eth.")
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, ErrKindEmptyLabel, e.Kind())
}

func TestProcess_AdjacentStopsIsEmptyLabel(t *testing.T) {
	_, err := Process("a..b")
	require.Error(t, err)
	var e *Error
	require.ErrorAs(t, err, &e)
	assert.Equal(t, ErrKindEmptyLabel, e.Kind())
}

func TestProcess_EmojiSequenceAtEndOfInput(t *testing.T) {
	// The longest registered emoji sequence (couple with heart, fully
	// qualified) sitting at the very end of input, with nothing after it
	// for the tokenizer's longest-match scan to overrun into.
	couple := string([]rune{0x1F468, 0x200D, 0x2764, 0xFE0F, 0x200D, 0x1F468})
	coupleKey := string([]rune{0x1F468, 0x200D, 0x2764, 0x200D, 0x1F468}) // FE0F-stripped lookup key
	result, err := Process("a." + couple)
	require.NoError(t, err)
	assert.Equal(t, "a."+coupleKey, result.Normalized)
}
