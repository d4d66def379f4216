package ensnorm

import "github.com/ensnorm/go-ensnorm/tables"

// ValidatedLabel is a label that passed every rule in spec.md §4.4, along
// with the script group it was resolved into ("Emoji" and "ASCII" are used
// as pseudo-group names for the two shortcut paths).
type ValidatedLabel struct {
	Tokens []Token
	Group  string
}

// cpEntry is one codepoint of a label, in order, with its token kind (so
// the per-rule scans below can tell "this combining mark follows an
// emoji" or "this NSM follows a fenced character" without re-walking
// tokens) and its original-input position for error reporting.
type cpEntry struct {
	cp       rune
	kind     Kind
	position int
}

// flatten drops every KindIgnored token and returns the label's codepoints
// in order, each tagged with the token kind it came from.
func flatten(tokens []Token) []cpEntry {
	var out []cpEntry
	for _, t := range tokens {
		if t.Kind == KindIgnored {
			continue
		}
		switch t.Kind {
		case KindEmoji:
			for _, cp := range t.CPs {
				out = append(out, cpEntry{cp: cp, kind: KindEmoji, position: t.Index})
			}
		case KindDisallowed:
			out = append(out, cpEntry{cp: t.Orig[0], kind: KindDisallowed, position: t.Index})
		default: // KindValid, KindNFC, KindStop (never present inside a label)
			for i, cp := range t.CPs {
				pos := t.Index
				if i < len(t.Positions) {
					pos = t.Positions[i]
				}
				out = append(out, cpEntry{cp: cp, kind: t.Kind, position: pos})
			}
		}
	}
	return out
}

// ValidateLabel runs the full rule chain of spec.md §4.4 against one label
// (a token slice between two stops, never containing a stop token itself).
func ValidateLabel(tokens []Token, spec *tables.Spec, nfc *tables.NFC) (*ValidatedLabel, *Error) {
	entries := flatten(tokens)

	// Rule 1: non-empty.
	if len(entries) == 0 {
		return nil, &Error{Kind_: ErrKindEmptyLabel, Index: -1}
	}

	// Rule 2: disallowed characters.
	for _, e := range entries {
		if e.kind == KindDisallowed {
			return nil, errAt(ErrKindDisallowedCharacter, e.position, e.cp)
		}
	}

	// Rule 3: underscore only as a leading run.
	if err := checkUnderscore(entries); err != nil {
		return nil, err
	}

	// Rule 4: fully-emoji shortcut.
	if allEmoji(entries) {
		return &ValidatedLabel{Tokens: tokens, Group: "Emoji"}, nil
	}

	// Rule 5: fully-ASCII shortcut.
	if allASCII(entries) {
		if err := checkLabelExtension(entries); err != nil {
			return nil, err
		}
		return &ValidatedLabel{Tokens: tokens, Group: "ASCII"}, nil
	}

	// Rule 6: fenced positions.
	if err := checkFenced(entries, spec); err != nil {
		return nil, err
	}

	// Rule 8 (resolved before rule 7's script-specific caps, which need
	// the group): script-group resolution.
	group, err := resolveGroup(entries, spec)
	if err != nil {
		return nil, err
	}

	// Rule 7: combining-mark rule.
	if err := checkCombiningMarks(entries, group); err != nil {
		return nil, err
	}

	// Rule 9: NSM rule (re-decomposed to NFD).
	if err := checkNSM(entries, group, spec, nfc); err != nil {
		return nil, err
	}

	// Rule 10: whole-script confusables.
	if err := checkWholeScriptConfusables(entries, spec); err != nil {
		return nil, err
	}

	return &ValidatedLabel{Tokens: tokens, Group: group.Name}, nil
}

func checkUnderscore(entries []cpEntry) *Error {
	seenNonUnderscore := false
	for _, e := range entries {
		if e.cp == '_' {
			if seenNonUnderscore {
				return errAt(ErrKindUnderscoreInMiddle, e.position, e.cp)
			}
			continue
		}
		seenNonUnderscore = true
	}
	return nil
}

func allEmoji(entries []cpEntry) bool {
	for _, e := range entries {
		if e.kind != KindEmoji {
			return false
		}
	}
	return true
}

func allASCII(entries []cpEntry) bool {
	for _, e := range entries {
		if e.cp > 0x7F {
			return false
		}
	}
	return true
}

// checkLabelExtension rejects a hyphen at 1-based positions 3 and 4 of a
// pure-ASCII label (spec.md §4.4 rule 5).
func checkLabelExtension(entries []cpEntry) *Error {
	if len(entries) < 4 {
		return nil
	}
	if entries[2].cp == '-' && entries[3].cp == '-' {
		return &Error{Kind_: ErrKindInvalidLabelExtension, Index: entries[2].position}
	}
	return nil
}

// checkFenced enforces spec.md §4.4 rule 6: no fenced codepoint may lead,
// trail, or sit next to another fenced codepoint (a trailing fenced
// character always fires FencedTrailing regardless of what precedes it,
// per spec.md §9's resolution of the reference ambiguity).
func checkFenced(entries []cpEntry, spec *tables.Spec) *Error {
	first := entries[0]
	if label, ok := spec.Fenced[first.cp]; ok {
		return errFenced(ErrKindFencedLeading, first.position, first.cp, label)
	}
	last := entries[len(entries)-1]
	if label, ok := spec.Fenced[last.cp]; ok {
		return errFenced(ErrKindFencedTrailing, last.position, last.cp, label)
	}
	for i := 1; i < len(entries)-1; i++ {
		_, curFenced := spec.Fenced[entries[i].cp]
		if !curFenced {
			continue
		}
		_, prevFenced := spec.Fenced[entries[i-1].cp]
		if prevFenced {
			return errFenced(ErrKindFencedAdjacent, entries[i].position, entries[i].cp, spec.Fenced[entries[i].cp])
		}
	}
	return nil
}

// resolveGroup computes the label's unique codepoint set and iteratively
// intersects the script-group list, per spec.md §4.4 rule 8. Combining
// marks and NSMs are skipped here the same way Common codepoints are: rule
// 8 identifies the label's script from its base letters, and a mark's
// legality within that script is rule 7/9's job (checkCombiningMarks /
// checkNSM, against the resolved group's own CM set), not rule 8's.
func resolveGroup(entries []cpEntry, spec *tables.Spec) (*tables.Group, *Error) {
	seen := map[rune]bool{}
	var order []rune
	positionOf := map[rune]int{}
	for _, e := range entries {
		if e.kind == KindEmoji {
			// An emoji's own codepoints (including any ZWJ inside a
			// sequence) are not letters of any script and never
			// participate in script-group resolution.
			continue
		}
		if !seen[e.cp] {
			seen[e.cp] = true
			order = append(order, e.cp)
			positionOf[e.cp] = e.position
		}
	}

	candidates := append([]*tables.Group{}, spec.Groups...)

	first := true
	for _, cp := range order {
		if spec.Common[cp] || spec.CM[cp] || spec.NSM[cp] {
			// Digits, hyphen, underscore, fenced punctuation, and
			// combining marks/NSMs never narrow the candidate set
			// (spec.md §4.4 rule 8 only judges base, script-specific
			// codepoints against each other).
			continue
		}
		prev := candidates
		next := candidates[:0:0]
		for _, g := range candidates {
			if g.Contains(cp) {
				next = append(next, g)
			}
		}
		if len(next) == 0 {
			pos := positionOf[cp]
			if first {
				// The very first codepoint already belongs to no
				// script group at all: not a mixture, just unknown.
				return nil, errAt(ErrKindDisallowedCharacter, pos, cp)
			}
			// A later codepoint conflicts with the group(s) the label
			// already committed to: name the group it would have
			// resolved to, and the group cp actually belongs to, if any.
			cpGroup := ""
			for _, g := range spec.Groups {
				if g.Contains(cp) {
					cpGroup = g.Name
					break
				}
			}
			return nil, errMixture(pos, cp, prev[0].Name, cpGroup)
		}
		candidates = next
		first = false
	}
	return candidates[0], nil
}

// checkCombiningMarks enforces spec.md §4.4 rule 7: no leading combining
// mark, none immediately after an emoji, and every combining mark present
// must be in the resolved group's allowed set.
func checkCombiningMarks(entries []cpEntry, group *tables.Group) *Error {
	for i, e := range entries {
		if !isCombiningMark(e.cp, group) {
			continue
		}
		if i == 0 {
			return errAt(ErrKindLeadingCombiningMark, e.position, e.cp)
		}
		if entries[i-1].kind == KindEmoji {
			return errAt(ErrKindCombiningMarkAfterEmoji, e.position, e.cp)
		}
		if !group.CM[e.cp] {
			return errAt(ErrKindDisallowedCombiningMark, e.position, e.cp)
		}
	}
	return scriptSpecificCMCaps(entries, group)
}

func isCombiningMark(cp rune, group *tables.Group) bool {
	return group.CM[cp]
}

// scriptSpecificCMCaps hard-codes the per-script diacritic limits spec.md
// §4.4 rule 7 and §9 call for keeping out of the generic table: Arabic ≤3
// diacritics per base consonant with no duplicate vowel mark or shadda,
// Hebrew ≤2, Devanagari ≤2 with matras required to follow a consonant,
// Thai vowel signs required to follow a consonant.
func scriptSpecificCMCaps(entries []cpEntry, group *tables.Group) *Error {
	switch group.Name {
	case "Arabic":
		return checkRunCaps(entries, group, 3, true)
	case "Hebrew":
		return checkRunCaps(entries, group, 2, false)
	case "Devanagari":
		return checkDevanagariMatras(entries, group)
	case "Thai":
		return checkThaiVowels(entries, group)
	}
	return nil
}

// checkRunCaps enforces a per-base-consonant cap on the number of trailing
// combining marks, optionally rejecting a repeated mark within the run
// (used for Arabic's "no duplicate vowel mark or shadda" rule).
func checkRunCaps(entries []cpEntry, group *tables.Group, cap int, rejectDuplicates bool) *Error {
	i := 0
	for i < len(entries) {
		if !group.CM[entries[i].cp] {
			i++
			continue
		}
		start := i
		seen := map[rune]bool{}
		for i < len(entries) && group.CM[entries[i].cp] {
			if rejectDuplicates && seen[entries[i].cp] {
				return errAt(ErrKindDuplicateNSM, entries[i].position, entries[i].cp)
			}
			seen[entries[i].cp] = true
			i++
		}
		if i-start > cap {
			return errAt(ErrKindExcessiveNSM, entries[start].position, entries[start].cp)
		}
	}
	return nil
}

func checkDevanagariMatras(entries []cpEntry, group *tables.Group) *Error {
	if err := checkRunCaps(entries, group, 2, false); err != nil {
		return err
	}
	for i, e := range entries {
		if !group.CM[e.cp] {
			continue
		}
		// A matra must follow a consonant (U+0915..U+0939), not lead the
		// label or follow an independent vowel or another combining mark.
		if i == 0 || entries[i-1].cp < 0x0915 || entries[i-1].cp > 0x0939 {
			return errAt(ErrKindDisallowedCombiningMark, e.position, e.cp)
		}
	}
	return nil
}

func checkThaiVowels(entries []cpEntry, group *tables.Group) *Error {
	for i, e := range entries {
		if !group.CM[e.cp] {
			continue
		}
		// Vowel signs above/below (U+0E31, U+0E34..U+0E3A) must follow a
		// consonant (U+0E01..U+0E2E); tone and other marks are not checked.
		if e.cp != 0x0E31 && (e.cp < 0x0E34 || e.cp > 0x0E3A) {
			continue
		}
		if i == 0 || entries[i-1].cp < 0x0E01 || entries[i-1].cp > 0x0E2E {
			return errAt(ErrKindDisallowedCombiningMark, e.position, e.cp)
		}
	}
	return nil
}

// checkNSM enforces spec.md §4.4 rule 9 over the label re-decomposed to
// NFD: each maximal run of NSM following a base character must not exceed
// the applicable cap, contain a duplicate, lead the label, or follow an
// emoji/fenced character; and every NSM present must be in the resolved
// group's allowed set.
func checkNSM(entries []cpEntry, group *tables.Group, spec *tables.Spec, nfc *tables.NFC) *Error {
	nfd := decomposeEntries(entries, nfc)

	cap := spec.NSMMax
	switch group.Name {
	case "Arabic":
		cap = 3
	case "Hebrew":
		cap = 2
	case "Devanagari":
		cap = 2
	}

	i := 0
	for i < len(nfd) {
		if !spec.NSM[nfd[i].cp] {
			i++
			continue
		}
		if i == 0 {
			return errAt(ErrKindLeadingNSM, nfd[i].position, nfd[i].cp)
		}
		if nfd[i-1].kind == KindEmoji {
			return errAt(ErrKindNSMAfterEmoji, nfd[i].position, nfd[i].cp)
		}
		if _, fenced := spec.Fenced[nfd[i-1].cp]; fenced {
			return errAt(ErrKindNSMAfterFenced, nfd[i].position, nfd[i].cp)
		}
		start := i
		seen := map[rune]bool{}
		for i < len(nfd) && spec.NSM[nfd[i].cp] {
			if seen[nfd[i].cp] {
				return errAt(ErrKindDuplicateNSM, nfd[i].position, nfd[i].cp)
			}
			seen[nfd[i].cp] = true
			if !group.CM[nfd[i].cp] {
				return errAt(ErrKindDisallowedNSMScript, nfd[i].position, nfd[i].cp)
			}
			i++
		}
		if i-start > cap {
			return errAt(ErrKindExcessiveNSM, nfd[start].position, nfd[start].cp)
		}
	}
	return nil
}

// decomposeEntries re-expands every entry's codepoint to NFD (full
// canonical decomposition, no recomposition) for the NSM scan, carrying
// each decomposed codepoint's token kind and position forward from its
// source entry.
func decomposeEntries(entries []cpEntry, nfc *tables.NFC) []cpEntry {
	var out []cpEntry
	for _, e := range entries {
		var seq []rune
		if isHangulSyllable(e.cp) {
			seq = decomposeHangul(e.cp)
		} else if d := nfc.Decompose(e.cp); d != nil {
			seq = d
		} else {
			seq = []rune{e.cp}
		}
		for _, cp := range seq {
			out = append(out, cpEntry{cp: cp, kind: e.kind, position: e.position})
		}
	}
	return out
}

// checkWholeScriptConfusables enforces spec.md §4.4 rule 10 / §9's
// resolution: the label fails only when its codepoints intersect two
// distinct confusable sets and at least one intersecting codepoint lies in
// some set's confused half.
func checkWholeScriptConfusables(entries []cpEntry, spec *tables.Spec) *Error {
	type hit struct {
		set       *tables.WholeScriptSet
		confused  bool
	}
	var hits []hit
	seen := map[*tables.WholeScriptSet]bool{}
	anyConfused := false
	for _, e := range entries {
		for _, ws := range spec.Wholes {
			if ws.Valid[e.cp] || ws.Confused[e.cp] {
				if !seen[ws] {
					seen[ws] = true
					hits = append(hits, hit{set: ws})
				}
				if ws.Confused[e.cp] {
					anyConfused = true
				}
			}
		}
	}
	if len(hits) >= 2 && anyConfused {
		return errConfusable(hits[0].set.Target, hits[1].set.Target)
	}
	return nil
}
