package ensnorm

import (
	"strings"

	"github.com/ensnorm/go-ensnorm/tables"
)

// ProcessResult is the combined output of Process: both final strings plus,
// per spec.md's SPEC_FULL expansion, per-label diagnostics a caller can use
// to explain the result (which script each label resolved into, and
// whether beautify substituted xi in it) without re-running validation.
type ProcessResult struct {
	Normalized string
	Beautified string
	Labels     []LabelResult
}

// Normalize returns the canonical ENS form of input, or the first
// validation error encountered (spec.md §6).
func Normalize(input string) (string, error) {
	result, err := Process(input)
	if err != nil {
		return "", err
	}
	return result.Normalized, nil
}

// Beautify returns the display form of input, or the first validation
// error encountered. Per spec.md §8's failure-stability invariant, it
// fails with exactly the same error kind Normalize would.
func Beautify(input string) (string, error) {
	result, err := Process(input)
	if err != nil {
		return "", err
	}
	return result.Beautified, nil
}

// Process runs the full pipeline once and returns both outputs together,
// which is cheaper than calling Normalize and Beautify separately since
// tokenization, NFC, splitting, and validation only happen once (spec.md
// §6: "computes both from a single pipeline run").
func Process(input string) (*ProcessResult, error) {
	spec, nfc := tables.Load()

	tokens, err := Tokenize(input)
	if err != nil {
		return nil, err
	}

	labelTokenLists := SplitLabels(tokens)
	labels := make([]LabelResult, 0, len(labelTokenLists))
	normalizedLabels := make([]string, 0, len(labelTokenLists))
	beautifiedLabels := make([]string, 0, len(labelTokenLists))

	for _, labelTokens := range labelTokenLists {
		validated, verr := ValidateLabel(labelTokens, spec, nfc)
		if verr != nil {
			return nil, verr
		}
		lr := EmitLabel(validated)
		labels = append(labels, lr)
		normalizedLabels = append(normalizedLabels, lr.Normalized)
		beautifiedLabels = append(beautifiedLabels, lr.Beautified)
	}

	return &ProcessResult{
		Normalized: strings.Join(normalizedLabels, "."),
		Beautified: strings.Join(beautifiedLabels, "."),
		Labels:     labels,
	}, nil
}
