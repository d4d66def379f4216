package ensnorm

import "strings"

// LabelResult is one validated label's contribution to the final output,
// including the supplemented diagnostics spec.md's SPEC_FULL expansion
// adds (script-group name and whether beautify substituted xi).
type LabelResult struct {
	Group         string
	Normalized    string
	Beautified    string
	XiSubstituted bool
}

// EmitLabel joins one validated label's tokens into its normalized and
// beautified text (spec.md §4.5): emoji tokens contribute their
// FE0F-stripped canonical key when normalizing and their fully-qualified
// canonical form when beautifying; text tokens contribute their final
// (post-mapping, post-NFC) codepoints; and beautify substitutes every
// small-xi with capital-Xi unless the label's script group is Greek.
func EmitLabel(label *ValidatedLabel) LabelResult {
	var norm, beau strings.Builder
	xiSubstituted := false
	substituteXi := label.Group != "Greek"

	for _, t := range label.Tokens {
		switch t.Kind {
		case KindIgnored:
			continue
		case KindEmoji:
			norm.WriteString(string(t.EmojiKey))
			beau.WriteString(string(t.CPs)) // canonical, FE0F included
		default: // KindValid, KindNFC
			norm.WriteString(string(t.CPs))
			if substituteXi {
				for _, cp := range t.CPs {
					if cp == 0x03BE {
						beau.WriteRune(0x039E)
						xiSubstituted = true
					} else {
						beau.WriteRune(cp)
					}
				}
			} else {
				beau.WriteString(string(t.CPs))
			}
		}
	}

	return LabelResult{
		Group:         label.Group,
		Normalized:    norm.String(),
		Beautified:    beau.String(),
		XiSubstituted: xiSubstituted,
	}
}
