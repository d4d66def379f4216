package ensnorm

import "fmt"

// ErrorKind enumerates the normalization error taxonomy of spec.md §7.
type ErrorKind string

const (
	ErrKindEmptyLabel              ErrorKind = "EmptyLabel"
	ErrKindDisallowedCharacter     ErrorKind = "DisallowedCharacter"
	ErrKindUnderscoreInMiddle      ErrorKind = "UnderscoreInMiddle"
	ErrKindInvalidLabelExtension   ErrorKind = "InvalidLabelExtension"
	ErrKindFencedLeading           ErrorKind = "FencedLeading"
	ErrKindFencedTrailing          ErrorKind = "FencedTrailing"
	ErrKindFencedAdjacent          ErrorKind = "FencedAdjacent"
	ErrKindLeadingCombiningMark    ErrorKind = "LeadingCombiningMark"
	ErrKindCombiningMarkAfterEmoji ErrorKind = "CombiningMarkAfterEmoji"
	ErrKindDisallowedCombiningMark ErrorKind = "DisallowedCombiningMark"
	ErrKindExcessiveNSM            ErrorKind = "ExcessiveNSM"
	ErrKindDuplicateNSM            ErrorKind = "DuplicateNSM"
	ErrKindLeadingNSM              ErrorKind = "LeadingNSM"
	ErrKindNSMAfterEmoji           ErrorKind = "NSMAfterEmoji"
	ErrKindNSMAfterFenced          ErrorKind = "NSMAfterFenced"
	ErrKindDisallowedNSMScript     ErrorKind = "DisallowedNSMScript"
	ErrKindIllegalMixture          ErrorKind = "IllegalMixture"
	ErrKindWholeScriptConfusable   ErrorKind = "WholeScriptConfusable"
	ErrKindInvalidUTF8             ErrorKind = "InvalidUtf8"
	ErrKindOutOfMemory             ErrorKind = "OutOfMemory"
)

// Error is the typed error every pipeline stage past the tokenizer returns.
// It is never wrapped in another error type; callers should use
// errors.As with a *ensnorm.Error target (var e *ensnorm.Error;
// errors.As(err, &e)) and then compare e.Kind().
type Error struct {
	Kind_ ErrorKind
	// Index is the codepoint offset in the original input of the
	// offending character, -1 when not applicable (e.g. EmptyLabel).
	Index int
	// CP is the offending codepoint, 0 when not applicable.
	CP rune
	// Fenced is the display label of the offending fenced character, set
	// only for the Fenced* kinds.
	Fenced string
	// Group1/Group2 name the two script groups that failed to intersect,
	// set only for IllegalMixture.
	Group1, Group2 string
	// Set1/Set2 name the two whole-script-confusable target labels
	// involved, set only for WholeScriptConfusable.
	Set1, Set2 string
}

// Kind returns the error's taxonomy entry.
func (e *Error) Kind() ErrorKind { return e.Kind_ }

func (e *Error) Error() string {
	switch e.Kind_ {
	case ErrKindEmptyLabel:
		return "ens normalize: empty label"
	case ErrKindDisallowedCharacter:
		return fmt.Sprintf("ens normalize: disallowed character %U at position %d", e.CP, e.Index)
	case ErrKindUnderscoreInMiddle:
		return fmt.Sprintf("ens normalize: underscore not a leading character at position %d", e.Index)
	case ErrKindInvalidLabelExtension:
		return "ens normalize: invalid label extension (hyphens at positions 3-4)"
	case ErrKindFencedLeading:
		return fmt.Sprintf("ens normalize: fenced character %q leads the label", e.Fenced)
	case ErrKindFencedTrailing:
		return fmt.Sprintf("ens normalize: fenced character %q trails the label", e.Fenced)
	case ErrKindFencedAdjacent:
		return fmt.Sprintf("ens normalize: adjacent fenced characters at position %d", e.Index)
	case ErrKindLeadingCombiningMark:
		return fmt.Sprintf("ens normalize: leading combining mark %U", e.CP)
	case ErrKindCombiningMarkAfterEmoji:
		return fmt.Sprintf("ens normalize: combining mark %U follows an emoji", e.CP)
	case ErrKindDisallowedCombiningMark:
		return fmt.Sprintf("ens normalize: combining mark %U not allowed in this script", e.CP)
	case ErrKindExcessiveNSM:
		return fmt.Sprintf("ens normalize: excessive non-spacing marks at position %d", e.Index)
	case ErrKindDuplicateNSM:
		return fmt.Sprintf("ens normalize: duplicate non-spacing mark %U at position %d", e.CP, e.Index)
	case ErrKindLeadingNSM:
		return fmt.Sprintf("ens normalize: leading non-spacing mark %U", e.CP)
	case ErrKindNSMAfterEmoji:
		return fmt.Sprintf("ens normalize: non-spacing mark %U follows an emoji", e.CP)
	case ErrKindNSMAfterFenced:
		return fmt.Sprintf("ens normalize: non-spacing mark %U follows a fenced character", e.CP)
	case ErrKindDisallowedNSMScript:
		return fmt.Sprintf("ens normalize: non-spacing mark %U not allowed in this script", e.CP)
	case ErrKindIllegalMixture:
		return fmt.Sprintf("ens normalize: illegal script mixture (%s/%s) at %U", e.Group1, e.Group2, e.CP)
	case ErrKindWholeScriptConfusable:
		return fmt.Sprintf("ens normalize: whole-script confusable between %q and %q", e.Set1, e.Set2)
	case ErrKindInvalidUTF8:
		return fmt.Sprintf("ens normalize: invalid UTF-8 at byte position %d", e.Index)
	case ErrKindOutOfMemory:
		return "ens normalize: out of memory"
	default:
		return fmt.Sprintf("ens normalize: error %s", e.Kind_)
	}
}

func errAt(kind ErrorKind, index int, cp rune) *Error {
	return &Error{Kind_: kind, Index: index, CP: cp}
}

func errFenced(kind ErrorKind, index int, cp rune, label string) *Error {
	return &Error{Kind_: kind, Index: index, CP: cp, Fenced: label}
}

func errMixture(index int, cp rune, g1, g2 string) *Error {
	return &Error{Kind_: ErrKindIllegalMixture, Index: index, CP: cp, Group1: g1, Group2: g2}
}

func errConfusable(set1, set2 string) *Error {
	return &Error{Kind_: ErrKindWholeScriptConfusable, Index: -1, Set1: set1, Set2: set2}
}
