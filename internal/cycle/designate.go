package cycle

import "github.com/qiwen/ganzhictl/internal/calendar"

// Designation is the full cycle position of one calendar day.
type Designation struct {
	Date        calendar.Date
	StemIndex   int
	BranchIndex int
	Stem        string
	Branch      string
	Combined    string
	StemLabel   Label
	BranchLabel Label
	// Approximate marks a date preceding every anchor, resolved through
	// the first-anchor fallback rather than a verified reference point.
	Approximate bool
}

// Designate computes the designation for target: resolve the nearest
// anchor, offset the indices, classify the symbols. Pure; identical
// inputs against the same tables always produce identical results.
func (t Tables) Designate(target calendar.Date) Designation {
	anchor, approximate := t.ResolveAnchor(target)
	stemIndex, branchIndex := OffsetIndices(anchor, target)
	stem, branch, stemLabel, branchLabel := t.Classify(stemIndex, branchIndex)
	return Designation{
		Date:        target,
		StemIndex:   stemIndex,
		BranchIndex: branchIndex,
		Stem:        stem,
		Branch:      branch,
		Combined:    stem + branch,
		StemLabel:   stemLabel,
		BranchLabel: branchLabel,
		Approximate: approximate,
	}
}
