// Package tables holds the two immutable static data bundles the
// normalization pipeline is driven by: the ENSIP-15 spec table and the NFC
// table.
//
// ENSIP-15 equivalent: the generated `spec.json`/nf.json tables shipped with
// the reference implementations (see spec.md §6 "Table layout (conceptual)").
// This package embeds a representative, internally-consistent subset of
// that data as Go literals (see the *_data.go files) rather than the full
// multi-megabyte generated table; the physical file that embeds the
// complete table is external infrastructure per spec.md §1 and is out of
// scope here. The loader and lookup surface below are table-size-agnostic.
package tables

import "sync"

// Codepoint is a 21-bit Unicode scalar value.
type Codepoint = rune

// Range is an inclusive codepoint range, used for the large scripts
// (Han, Hiragana, Katakana, Hangul syllables) where listing every member in
// a map is wasteful.
//
// Modeled on the range-table style of the retrieval pack's
// unilibs-uniwidth/tables.go.
type Range struct {
	Lo, Hi Codepoint
}

func (r Range) contains(cp Codepoint) bool { return cp >= r.Lo && cp <= r.Hi }

// Group describes one ENSIP-15 script group: a name, its primary and
// secondary codepoint sets, and the combining marks it allows. Scripts with
// an enumerable alphabet (Greek, Cyrillic, Hebrew, Arabic, Devanagari,
// Thai, Latin) use the explicit maps; scripts whose membership is better
// expressed as contiguous blocks (Han, Hiragana, Katakana, Hangul) add
// entries to PrimaryRanges/SecondaryRange instead of inflating the maps.
//
// ENSIP-15 equivalent: spec.json "groups" entries.
type Group struct {
	Name           string
	Primary        map[Codepoint]bool
	Secondary      map[Codepoint]bool
	PrimaryRanges  []Range
	SecondaryRange []Range
	CM             map[Codepoint]bool
}

// Contains reports whether cp is in this group's primary or secondary set.
func (g *Group) Contains(cp Codepoint) bool {
	if g.Primary[cp] || g.Secondary[cp] {
		return true
	}
	for _, r := range g.PrimaryRanges {
		if r.contains(cp) {
			return true
		}
	}
	for _, r := range g.SecondaryRange {
		if r.contains(cp) {
			return true
		}
	}
	return false
}

// WholeScriptSet is one whole-script-confusable entry: a target label plus
// its valid and confused codepoint halves.
//
// ENSIP-15 equivalent: spec.json "wholes" entries.
type WholeScriptSet struct {
	Target   string
	Valid    map[Codepoint]bool
	Confused map[Codepoint]bool
}

// EmojiSeq is one registered emoji sequence in canonical (FE0F-bearing)
// form, plus its FE0F-stripped lookup key.
//
// ENSIP-15 equivalent: spec.json "emoji" entries.
type EmojiSeq struct {
	// Canonical is the fully-qualified form, FE0F included where the
	// reference table records one.
	Canonical []Codepoint
	// NoFE0F is Canonical with every U+FE0F removed; tokenizer matching is
	// keyed on this form so both qualified and unqualified input match.
	NoFE0F []Codepoint
}

// Spec is the ENSIP-15 spec table.
type Spec struct {
	Mapped      map[Codepoint][]Codepoint
	Ignored     map[Codepoint]bool
	Fenced      map[Codepoint]string
	Groups      []*Group
	NSM         map[Codepoint]bool
	NSMMax      int
	CM          map[Codepoint]bool
	NFCCheck    map[Codepoint]bool
	Emoji       []*EmojiSeq
	Wholes      []*WholeScriptSet
	MaxEmojiLen int
	// Common holds codepoints shared across every script (ASCII digits,
	// hyphen, underscore, the fraction slash produced by mapping vulgar
	// fractions) that a label may mix freely with any single script
	// group without triggering script-group resolution's intersection
	// rule (spec.md §4.4 rule 8 implicitly assumes these never narrow
	// the candidate set, the same way a real ENSIP-15 group table lists
	// them in every group's primary/secondary set).
	Common map[Codepoint]bool
}

// NFC is the Unicode NFC table: composition exclusions, canonical
// decomposition, and canonical combining class, sufficient to implement
// Unicode Normalization Form C (spec.md §4.2).
type NFC struct {
	Exclusions map[Codepoint]bool
	Decomp     map[Codepoint][]Codepoint
	CCC        map[Codepoint]uint8
	// Composition is the inverse of every two-codepoint Decomp entry,
	// keyed by (starter, cp); Compose refuses any result in Exclusions.
	Composition map[[2]Codepoint]Codepoint
}

var (
	once     sync.Once
	spec     *Spec
	nfcTable *NFC
)

// Load returns the process-wide Spec and NFC bundles, building them on
// first use. Both are read-only from the caller's perspective: there is no
// mutation API, and attempting to mutate the returned maps is a programming
// error, not a supported usage (spec.md §3 "Ownership / lifetime").
func Load() (*Spec, *NFC) {
	once.Do(func() {
		nfcTable = buildNFC()
		spec = buildSpec(nfcTable)
	})
	return spec, nfcTable
}

// CCCOf returns the canonical combining class of cp, 0 for starters and for
// codepoints absent from the table (the correct default per Unicode §3.11).
func (n *NFC) CCCOf(cp Codepoint) uint8 {
	return n.CCC[cp]
}

// Decompose returns the full canonical decomposition of cp (recursively
// expanded), or nil if cp has none. Hangul syllables are handled separately
// by the algorithmic formula in package ensnorm, not through this map.
func (n *NFC) Decompose(cp Codepoint) []Codepoint {
	seq, ok := n.Decomp[cp]
	if !ok {
		return nil
	}
	var out []Codepoint
	for _, c := range seq {
		if sub := n.Decompose(c); sub != nil {
			out = append(out, sub...)
		} else {
			out = append(out, c)
		}
	}
	return out
}

// Compose returns the primary composite of starter+cp, and whether one
// exists and is not excluded from composition.
func (n *NFC) Compose(starter, cp Codepoint) (Codepoint, bool) {
	p, ok := n.Composition[[2]Codepoint{starter, cp}]
	if !ok || n.Exclusions[p] {
		return 0, false
	}
	return p, true
}
