package cycle

import (
	"fmt"

	"github.com/qiwen/ganzhictl/internal/calendar"
)

const (
	StemCount   = 10
	BranchCount = 12
	// CycleLength is lcm(StemCount, BranchCount): the full sexagenary
	// period, after which stem/branch pairs repeat.
	CycleLength = 60
)

// Anchor pins one verified calendar day to its known stem/branch indices.
// Anchors are immutable once loaded.
type Anchor struct {
	Date        calendar.Date
	StemIndex   int
	BranchIndex int
}

// Label is a classification lookup result. Defined distinguishes a symbol
// with no classification from one classified as the empty string.
type Label struct {
	Text    string
	Defined bool
}

// Tables is the read-only state behind all designations: the two cyclic
// symbol sequences, the anchor table, and the sparse classification map.
// Built once at startup; any number of callers may share it without
// coordination since nothing mutates it afterwards. Validate must pass
// before Designate or Classify are used; the loaders enforce this.
type Tables struct {
	Stems          []string
	Branches       []string
	Anchors        []Anchor
	Classification map[string]string
}

// Validate checks the structural table invariants: sequence lengths,
// distinct symbols, in-range anchor indices, distinct anchor dates, and
// pairwise anchor agreement under the cyclic arithmetic.
func (t Tables) Validate() error {
	if len(t.Stems) != StemCount {
		return fmt.Errorf("%w: want %d stems, got %d", ErrBadTables, StemCount, len(t.Stems))
	}
	if len(t.Branches) != BranchCount {
		return fmt.Errorf("%w: want %d branches, got %d", ErrBadTables, BranchCount, len(t.Branches))
	}
	if err := distinct("stem", t.Stems); err != nil {
		return err
	}
	if err := distinct("branch", t.Branches); err != nil {
		return err
	}
	if len(t.Anchors) == 0 {
		return ErrNoAnchors
	}

	seen := make(map[string]struct{}, len(t.Anchors))
	for i, a := range t.Anchors {
		if a.StemIndex < 0 || a.StemIndex >= StemCount {
			return fmt.Errorf("%w: anchor[%d] stem index %d out of range", ErrBadTables, i, a.StemIndex)
		}
		if a.BranchIndex < 0 || a.BranchIndex >= BranchCount {
			return fmt.Errorf("%w: anchor[%d] branch index %d out of range", ErrBadTables, i, a.BranchIndex)
		}
		key := a.Date.String()
		if _, dup := seen[key]; dup {
			return fmt.Errorf("%w: duplicate anchor date %s", ErrBadTables, key)
		}
		seen[key] = struct{}{}
	}

	return t.checkConsistent()
}

// checkConsistent verifies every anchor agrees with the first one: the day
// delta between two anchors must advance both indices in lockstep, mod 10
// and mod 12. Agreement with a common base implies pairwise agreement.
func (t Tables) checkConsistent() error {
	base := t.Anchors[0]
	for _, a := range t.Anchors[1:] {
		delta := base.Date.DaysUntil(a.Date)
		if mod(base.StemIndex+delta, StemCount) != a.StemIndex ||
			mod(base.BranchIndex+delta, BranchCount) != a.BranchIndex {
			return fmt.Errorf("%w: %s vs %s", ErrInconsistent, base.Date, a.Date)
		}
	}
	return nil
}

func distinct(kind string, symbols []string) error {
	seen := make(map[string]struct{}, len(symbols))
	for _, s := range symbols {
		if _, dup := seen[s]; dup {
			return fmt.Errorf("%w: duplicate %s symbol %q", ErrBadTables, kind, s)
		}
		seen[s] = struct{}{}
	}
	return nil
}
