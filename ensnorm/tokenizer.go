package ensnorm

import (
	"unicode/utf8"

	"github.com/ensnorm/go-ensnorm/tables"
)

// emojiIndex is a lazily-built lookup from an emoji's FE0F-stripped key
// (encoded as a plain string of runes, which is a safe map key for any
// Unicode content) to its table entry, plus the longest raw (FE0F-bearing)
// sequence length any entry can match.
type emojiIndex struct {
	byKey  map[string]*tables.EmojiSeq
	maxRaw int
}

func buildEmojiIndex(spec *tables.Spec) *emojiIndex {
	idx := &emojiIndex{byKey: map[string]*tables.EmojiSeq{}}
	for _, e := range spec.Emoji {
		idx.byKey[string(e.NoFE0F)] = e
		if len(e.Canonical) > idx.maxRaw {
			idx.maxRaw = len(e.Canonical)
		}
	}
	return idx
}

// stripFE0F returns cps with every U+FE0F removed.
func stripFE0F(cps []rune) []rune {
	out := make([]rune, 0, len(cps))
	for _, c := range cps {
		if c != 0xFE0F {
			out = append(out, c)
		}
	}
	return out
}

// matchLongest attempts, at codepoint offset i into cps, the longest
// registered emoji sequence per spec.md §4.1 step 1: it tries successively
// shorter raw windows (bounded by the longest canonical entry) and accepts
// the first whose FE0F-stripped form is a registered key.
func (idx *emojiIndex) matchLongest(cps []rune, i int) (*tables.EmojiSeq, int) {
	remaining := len(cps) - i
	maxLen := idx.maxRaw
	if remaining < maxLen {
		maxLen = remaining
	}
	for rawLen := maxLen; rawLen >= 1; rawLen-- {
		window := cps[i : i+rawLen]
		key := stripFE0F(window)
		if e, ok := idx.byKey[string(key)]; ok {
			return e, rawLen
		}
	}
	return nil, 0
}

// Tokenize decodes a UTF-8 string into the ENSIP-15 token stream described
// in spec.md §3/§4.1: emoji longest-match, then per-codepoint
// classification, then adjacent valid/mapped coalescing, then the NFC
// trigger. Tokenization never fails on its own — invalid UTF-8 bytes
// become U+FFFD disallowed tokens (spec.md §4.1) — so the error return
// exists only for symmetry with the rest of the public API and is always
// nil in this implementation.
func Tokenize(input string) ([]Token, error) {
	spec, nfc := tables.Load()
	cps, invalid := decodeUTF8(input)
	idx := buildEmojiIndex(spec)

	raw := classify(spec, idx, cps, invalid)
	coalesced := coalesceRuns(raw)
	final := applyNFC(coalesced, spec, nfc)
	return final, nil
}

// decodeUTF8 decodes s into codepoints, substituting U+FFFD for any invalid
// byte sequence (spec.md §4.1) and flagging those positions as invalid so
// classify can mark them disallowed regardless of whether U+FFFD happens to
// be a table-admitted character.
func decodeUTF8(s string) (cps []rune, invalid []bool) {
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		cps = append(cps, r)
		invalid = append(invalid, size == 1 && r == utf8.RuneError)
		if size == 0 {
			size = 1
		}
		i += size
	}
	return cps, invalid
}

// classify runs spec.md §4.1's per-position decision in order: emoji
// longest-match first, then the single-codepoint cases.
func classify(spec *tables.Spec, idx *emojiIndex, cps []rune, invalid []bool) []Token {
	var out []Token
	for i := 0; i < len(cps); {
		if !invalid[i] {
			if e, n := idx.matchLongest(cps, i); e != nil {
				orig := append([]rune{}, cps[i:i+n]...)
				out = append(out, Token{
					Kind:     KindEmoji,
					Index:    i,
					CPs:      append([]rune{}, e.Canonical...),
					Orig:     orig,
					EmojiKey: append([]rune{}, e.NoFE0F...),
				})
				i += n
				continue
			}
		}
		out = append(out, classifyOne(spec, cps[i], i, invalid[i]))
		i++
	}
	return out
}

func classifyOne(spec *tables.Spec, cp rune, index int, invalid bool) Token {
	switch {
	case invalid:
		return Token{Kind: KindDisallowed, Index: index, Orig: []rune{cp}}
	case cp == '.':
		return Token{Kind: KindStop, Index: index, CPs: []rune{'.'}, Orig: []rune{cp}}
	case spec.Ignored[cp]:
		return Token{Kind: KindIgnored, Index: index, Orig: []rune{cp}}
	case cp >= 'A' && cp <= 'Z':
		// ASCII fast path (spec.md §4.1): no table access required.
		return Token{Kind: KindValid, Index: index, CPs: []rune{cp - 'A' + 'a'}, Orig: []rune{cp}, Positions: []int{index}}
	default:
		if target, ok := spec.Mapped[cp]; ok {
			return Token{Kind: KindValid, Index: index, CPs: append([]rune{}, target...), Orig: []rune{cp}, Positions: repeatIndex(index, len(target))}
		}
		if isValidCodepoint(spec, cp) {
			return Token{Kind: KindValid, Index: index, CPs: []rune{cp}, Orig: []rune{cp}, Positions: []int{index}}
		}
		return Token{Kind: KindDisallowed, Index: index, Orig: []rune{cp}}
	}
}

// isValidCodepoint reports whether cp belongs to some script group's
// primary/secondary set, is a registered combining mark/NSM, or is one of
// the Common codepoints every group admits without being a "script"
// character itself (digits, hyphen, underscore, the fraction slash, and
// every fenced punctuation character — see tables.Spec.Common).
func isValidCodepoint(spec *tables.Spec, cp rune) bool {
	if spec.Common[cp] {
		return true
	}
	if spec.CM[cp] || spec.NSM[cp] {
		return true
	}
	for _, g := range spec.Groups {
		if g.Contains(cp) {
			return true
		}
	}
	return false
}

// coalesceRuns merges consecutive KindValid tokens into a single token, per
// spec.md §3's invariant that adjacent valid/mapped tokens collapse into one
// valid-like run while emoji/ignored/disallowed/stop stay atomic.
func coalesceRuns(tokens []Token) []Token {
	var out []Token
	for _, t := range tokens {
		if t.Kind == KindValid && len(out) > 0 {
			last := &out[len(out)-1]
			if last.Kind == KindValid {
				last.CPs = append(last.CPs, t.CPs...)
				last.Orig = append(last.Orig, t.Orig...)
				last.Positions = append(last.Positions, t.Positions...)
				continue
			}
		}
		out = append(out, t)
	}
	return out
}

// applyNFC runs the NFC pass (package-level NFCNormalize) over every
// coalesced valid run that contains at least one codepoint in the table's
// nfc_check set, rewriting the token to KindNFC only when the result
// actually differs from the pre-image (spec.md §4.1 "NFC trigger", §4.2).
func applyNFC(tokens []Token, spec *tables.Spec, nfc *tables.NFC) []Token {
	out := make([]Token, len(tokens))
	copy(out, tokens)
	for i, t := range out {
		if t.Kind != KindValid {
			continue
		}
		needsCheck := false
		for _, cp := range t.CPs {
			if spec.NFCCheck[cp] {
				needsCheck = true
				break
			}
		}
		if !needsCheck {
			continue
		}
		recomposed := NFCNormalize(t.CPs, nfc)
		if runesEqual(recomposed, t.CPs) {
			continue
		}
		out[i] = Token{
			Kind:      KindNFC,
			Index:     t.Index,
			Orig:      t.CPs,
			CPs:       recomposed,
			Positions: repeatIndex(t.Index, len(recomposed)),
		}
	}
	return out
}

func repeatIndex(index, n int) []int {
	positions := make([]int, n)
	for i := range positions {
		positions[i] = index
	}
	return positions
}

func runesEqual(a, b []rune) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
