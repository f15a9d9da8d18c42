package cycle

import "github.com/qiwen/ganzhictl/internal/calendar"

// ResolveAnchor selects the latest anchor whose date is not after target.
// Linear scan; the table is small and no sort order is assumed.
//
// When target precedes every anchor, the first anchor is returned with
// approximate=true. The value matches the historical fallback, but the
// result is outside the verified range and callers should treat it as
// degraded accuracy rather than a correctness guarantee.
//
// An empty anchor table (rejected by Validate, but reachable on a
// hand-built Tables) yields the zero Anchor, approximate.
func (t Tables) ResolveAnchor(target calendar.Date) (anchor Anchor, approximate bool) {
	var (
		selected Anchor
		found    bool
	)
	for _, a := range t.Anchors {
		if a.Date.After(target) {
			continue
		}
		if !found || a.Date.After(selected.Date) {
			selected = a
			found = true
		}
	}
	if !found {
		if len(t.Anchors) == 0 {
			return Anchor{}, true
		}
		return t.Anchors[0], true
	}
	return selected, false
}

// OffsetIndices advances the anchor's indices by the whole-day delta to
// target. The delta may be negative; mod always yields a non-negative
// index, so backward offsets wrap correctly. Stem and branch advance in
// lockstep, keeping the pair inside the 60 reachable combinations.
func OffsetIndices(a Anchor, target calendar.Date) (stemIndex, branchIndex int) {
	delta := a.Date.DaysUntil(target)
	return mod(a.StemIndex+delta, StemCount), mod(a.BranchIndex+delta, BranchCount)
}

// mod is the mathematical modulo: the result is always in [0, m).
func mod(v, m int) int {
	r := v % m
	if r < 0 {
		r += m
	}
	return r
}
