// Package ensnorm implements ENSIP-15 Ethereum Name Service name
// normalization: tokenization, NFC recomposition, label splitting, and
// per-label validation over a static spec/NFC table pair (see package
// tables). The pipeline is pure and single-threaded per call (spec.md §5);
// nothing here performs I/O or logging — the ambient logging facade lives
// in internal/obslog and is only ever touched by the CLI and the C ABI
// boundary, never by this package.
//
// ENSIP-15 equivalent: the normalization core of the reference
// implementations; modeled structurally on the teacher's ot package
// (hb-ot-shape-normalize.cc's decompose/reorder/recompose split, and
// hb-unicode.hh's per-codepoint classification), retargeted from glyph
// shaping to name normalization.
package ensnorm

// Kind tags the variant a Token carries.
type Kind uint8

const (
	// KindValid is a run of characters admissible verbatim (after any
	// ASCII-case or table mapping has already been applied and folded
	// into CPs).
	KindValid Kind = iota
	// KindIgnored is a single table-defined character dropped from
	// output (ZWJ/ZWNJ/soft-hyphen/BOM, etc).
	KindIgnored
	// KindDisallowed is a single codepoint admitted by no script group;
	// fatal once validation reaches it.
	KindDisallowed
	// KindStop is the U+002E label separator.
	KindStop
	// KindEmoji is a longest-match ENSIP-15 emoji sequence.
	KindEmoji
	// KindNFC marks a run the NFC pass rewrote; CPs holds the recomposed
	// form, Orig the pre-image.
	KindNFC
)

func (k Kind) String() string {
	switch k {
	case KindValid:
		return "valid"
	case KindIgnored:
		return "ignored"
	case KindDisallowed:
		return "disallowed"
	case KindStop:
		return "stop"
	case KindEmoji:
		return "emoji"
	case KindNFC:
		return "nfc"
	default:
		return "unknown"
	}
}

// Token is one unit of the tokenizer's output stream (spec.md §3).
type Token struct {
	Kind Kind
	// Index is the codepoint offset into the original input at which
	// this token begins, used for error reporting (spec.md §7: "the
	// position reported is the code-point index within the original
	// input").
	Index int
	// CPs is the effective codepoint sequence: for KindValid/KindNFC the
	// (possibly mapped, possibly recomposed) text; for KindEmoji the
	// canonical FE0F-bearing form; for KindStop, [ '.' ]. Unused for
	// KindIgnored/KindDisallowed.
	CPs []rune
	// Orig is the original input codepoint(s) this token was produced
	// from: a single rune for Ignored/Disallowed, the coalesced
	// pre-mapping text for Valid, the pre-image for NFC, the original
	// (possibly non-canonical) sequence for Emoji.
	Orig []rune
	// EmojiKey is the FE0F-stripped lookup key, set only for KindEmoji.
	EmojiKey []rune
	// Positions holds, for each entry of CPs, the codepoint offset in the
	// original input it traces back to. A table mapping that expands one
	// input codepoint into several (e.g. ½ → "1⁄2") repeats that one
	// index for every codepoint it produced, matching spec.md §7's rule
	// that positions are reported "before mapping/NFC".
	Positions []int
}

// NonEmpty reports whether this token contributes at least one codepoint to
// a label once ignored/disallowed elision has already been applied
// upstream (spec.md §4.4 rule 1).
func (t Token) NonEmpty() bool {
	switch t.Kind {
	case KindIgnored:
		return false
	default:
		return true
	}
}
