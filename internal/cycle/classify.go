package cycle

// Classify resolves indices to their symbols and classification labels.
// Indices must be in range, which OffsetIndices guarantees. Symbols absent
// from the classification map yield an undefined Label, not an error; the
// map may intentionally cover only part of either sequence.
func (t Tables) Classify(stemIndex, branchIndex int) (stem, branch string, stemLabel, branchLabel Label) {
	stem = t.Stems[stemIndex]
	branch = t.Branches[branchIndex]
	return stem, branch, t.lookup(stem), t.lookup(branch)
}

func (t Tables) lookup(symbol string) Label {
	text, ok := t.Classification[symbol]
	return Label{Text: text, Defined: ok}
}
