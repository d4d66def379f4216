package ensnorm

import "github.com/ensnorm/go-ensnorm/tables"

// Unicode Normalization Form C over a codepoint slice.
//
// ENSIP-15 equivalent: spec.md §4.2. Modeled structurally on the teacher's
// three-phase decompose/reorder/recompose pipeline in ot/normalize.go, with
// the algorithmic Hangul jamo arithmetic from ot/hangul.go standing in for
// the font-glyph composition HarfBuzz performs there.

// Hangul Jamo arithmetic constants (Unicode §3.12).
const (
	hangulLBase tables.Codepoint = 0x1100
	hangulVBase tables.Codepoint = 0x1161
	hangulTBase tables.Codepoint = 0x11A7
	hangulSBase tables.Codepoint = 0xAC00
	hangulLCnt                  = 19
	hangulVCnt                  = 21
	hangulTCnt                  = 28
	hangulNCnt                  = hangulVCnt * hangulTCnt
	hangulSCnt                  = hangulLCnt * hangulNCnt
)

func isHangulSyllable(cp rune) bool {
	return cp >= rune(hangulSBase) && cp < rune(hangulSBase)+hangulSCnt
}

func isHangulL(cp rune) bool { return cp >= rune(hangulLBase) && cp < rune(hangulLBase)+hangulLCnt }
func isHangulV(cp rune) bool { return cp >= rune(hangulVBase) && cp < rune(hangulVBase)+hangulVCnt }
func isHangulT(cp rune) bool {
	return cp > rune(hangulTBase) && cp < rune(hangulTBase)+hangulTCnt
}

// isHangulLV reports whether cp is a precomposed LV syllable carrying no
// trailing consonant (i.e. a valid recompose target for a following T).
func isHangulLV(cp rune) bool {
	if !isHangulSyllable(cp) {
		return false
	}
	sIndex := cp - rune(hangulSBase)
	return sIndex%hangulTCnt == 0
}

// decomposeHangul splits a precomposed syllable into its L/V/(T) jamo.
func decomposeHangul(cp rune) []rune {
	sIndex := int(cp - rune(hangulSBase))
	l := rune(hangulLBase) + rune(sIndex/hangulNCnt)
	v := rune(hangulVBase) + rune((sIndex%hangulNCnt)/hangulTCnt)
	tIndex := sIndex % hangulTCnt
	if tIndex == 0 {
		return []rune{l, v}
	}
	t := rune(hangulTBase) + rune(tIndex)
	return []rune{l, v, t}
}

// NFCNormalize returns the NFC form of cps: full canonical decomposition
// (including algorithmic Hangul expansion), canonical ordering of
// non-starter runs by combining class, then canonical composition
// (including algorithmic Hangul L+V/LV+T recomposition). Callers compare
// the result against the pre-image themselves (spec.md §4.2's "Result is
// compared with the pre-image"); this function always returns the
// normalized form regardless of whether it changed anything.
func NFCNormalize(cps []rune, nfc *tables.NFC) []rune {
	decomposed := decomposeAll(cps, nfc)
	reordered := canonicalOrder(decomposed, nfc)
	return compose(reordered, nfc)
}

func decomposeAll(cps []rune, nfc *tables.NFC) []rune {
	out := make([]rune, 0, len(cps))
	for _, cp := range cps {
		switch {
		case isHangulSyllable(cp):
			out = append(out, decomposeHangul(cp)...)
		default:
			if seq := nfc.Decompose(cp); seq != nil {
				out = append(out, seq...)
			} else {
				out = append(out, cp)
			}
		}
	}
	return out
}

// canonicalOrder stably sorts each maximal run of non-starters (CCC != 0)
// by ascending combining class (spec.md §4.2 "Canonical ordering").
func canonicalOrder(cps []rune, nfc *tables.NFC) []rune {
	out := make([]rune, len(cps))
	copy(out, cps)
	i := 0
	for i < len(out) {
		if nfc.CCCOf(out[i]) == 0 {
			i++
			continue
		}
		start := i
		for i < len(out) && nfc.CCCOf(out[i]) != 0 {
			i++
		}
		stableSortByCCC(out[start:i], nfc)
	}
	return out
}

// stableSortByCCC is a small stable insertion sort; non-starter runs are
// always short, so this avoids pulling in sort.Stable for a handful of
// marks per call.
func stableSortByCCC(run []rune, nfc *tables.NFC) {
	for i := 1; i < len(run); i++ {
		j := i
		for j > 0 && nfc.CCCOf(run[j-1]) > nfc.CCCOf(run[j]) {
			run[j-1], run[j] = run[j], run[j-1]
			j--
		}
	}
}

// compose performs left-to-right canonical composition, maintaining the
// last starter and the combining class of the most recently appended
// non-combined character (spec.md §4.2 "Compose").
func compose(cps []rune, nfc *tables.NFC) []rune {
	out := make([]rune, 0, len(cps))
	starterIdx := -1
	lastClass := -1

	for _, c := range cps {
		cc := int(nfc.CCCOf(c))

		if starterIdx >= 0 {
			base := out[starterIdx]
			switch {
			case lastClass == -1 && isHangulL(base) && isHangulV(c):
				out[starterIdx] = hangulComposeLV(base, c)
				continue
			case lastClass == -1 && isHangulLV(base) && isHangulT(c):
				out[starterIdx] = hangulComposeLVT(base, c)
				continue
			case lastClass < cc:
				if p, ok := nfc.Compose(base, c); ok {
					out[starterIdx] = p
					continue
				}
			}
		}

		out = append(out, c)
		if cc == 0 {
			starterIdx = len(out) - 1
			lastClass = -1
		} else {
			lastClass = cc
		}
	}
	return out
}

func hangulComposeLV(l, v rune) rune {
	lIndex := l - rune(hangulLBase)
	vIndex := v - rune(hangulVBase)
	return rune(hangulSBase) + (lIndex*hangulVCnt+vIndex)*hangulTCnt
}

func hangulComposeLVT(lv, t rune) rune {
	tIndex := t - rune(hangulTBase)
	return lv + tIndex
}
