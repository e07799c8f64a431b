package oscalworkspace

import "github.com/upbound/oscal/internal/oscalmodel"

const allToken = "all"

// ExpandBlockSelection implements the §4.4.3 block selection state
// machine: it validates the model tag, validates each token against
// the model's declared blocks (or the "all" marker), rejects "all"
// combined with any other token, and otherwise deduplicates the
// provided list preserving first occurrence.
func ExpandBlockSelection(tag oscalmodel.ModelTag, tokens []string) ([]string, error) {
	if !oscalmodel.IsValidModel(tag) {
		return nil, errf(ErrBlockSelection, "unknown model tag %q", tag)
	}
	if len(tokens) == 0 {
		return nil, errf(ErrBlockSelection, "no blocks selected")
	}

	hasAll := false
	for _, t := range tokens {
		if t == allToken {
			hasAll = true
			continue
		}
		if !oscalmodel.IsValidBlock(tag, t) {
			return nil, errf(ErrBlockSelection, "unknown block %q for model %q", t, tag)
		}
	}
	if hasAll {
		if len(tokens) != 1 {
			return nil, errf(ErrBlockSelection, "\"all\" cannot be combined with other block tokens")
		}
		return oscalmodel.BlockNames(tag), nil
	}

	seen := make(map[string]bool, len(tokens))
	out := make([]string, 0, len(tokens))
	for _, t := range tokens {
		if seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	return out, nil
}
