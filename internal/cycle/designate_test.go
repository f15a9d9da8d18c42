package cycle

import (
	"testing"
	"time"

	"github.com/qiwen/ganzhictl/internal/calendar"
	"github.com/qiwen/ganzhictl/internal/testutil/testlog"
)

func TestDesignateEndToEnd(t *testing.T) {
	testlog.Start(t)
	tables := testTables(t)

	// 2024-01-01 is a 甲子 anchor, so the next day is 乙丑.
	d := tables.Designate(calendar.New(2024, time.January, 2))
	if d.StemIndex != 1 || d.BranchIndex != 1 {
		t.Fatalf("expected indices (1, 1), got (%d, %d)", d.StemIndex, d.BranchIndex)
	}
	if d.Stem != "乙" || d.Branch != "丑" {
		t.Fatalf("expected 乙丑 symbols, got %s%s", d.Stem, d.Branch)
	}
	if d.Combined != "乙丑" {
		t.Fatalf("expected combined 乙丑, got %s", d.Combined)
	}
	if !d.StemLabel.Defined || d.StemLabel.Text != "劫财" {
		t.Fatalf("unexpected stem label: %+v", d.StemLabel)
	}
	if !d.BranchLabel.Defined || d.BranchLabel.Text != "正财" {
		t.Fatalf("unexpected branch label: %+v", d.BranchLabel)
	}
	if d.Approximate {
		t.Fatalf("expected in-range designation")
	}
}

func TestDesignatePeriodicity(t *testing.T) {
	tables := testTables(t)
	base := calendar.New(2024, time.April, 9)
	want := tables.Designate(base)

	for _, k := range []int{-3, -1, 1, 2, 10} {
		shifted := tables.Designate(base.AddDays(CycleLength * k))
		if shifted.Stem != want.Stem || shifted.Branch != want.Branch {
			t.Fatalf("k=%d: expected %s%s, got %s%s", k, want.Stem, want.Branch, shifted.Stem, shifted.Branch)
		}
	}
}

func TestDesignateDailyIncrement(t *testing.T) {
	tables := testTables(t)
	day := calendar.New(2023, time.December, 25)

	prev := tables.Designate(day)
	for i := 0; i < 2*CycleLength; i++ {
		day = day.AddDays(1)
		next := tables.Designate(day)
		if next.StemIndex != (prev.StemIndex+1)%StemCount {
			t.Fatalf("%s: stem index %d does not follow %d", day, next.StemIndex, prev.StemIndex)
		}
		if next.BranchIndex != (prev.BranchIndex+1)%BranchCount {
			t.Fatalf("%s: branch index %d does not follow %d", day, next.BranchIndex, prev.BranchIndex)
		}
		prev = next
	}
}

func TestDesignateReproducesAnchors(t *testing.T) {
	tables := testTables(t)
	for _, a := range tables.Anchors {
		d := tables.Designate(a.Date)
		if d.StemIndex != a.StemIndex || d.BranchIndex != a.BranchIndex {
			t.Fatalf("anchor %s: expected (%d, %d), got (%d, %d)",
				a.Date, a.StemIndex, a.BranchIndex, d.StemIndex, d.BranchIndex)
		}
		if d.Approximate {
			t.Fatalf("anchor %s: expected verified-range designation", a.Date)
		}
	}
}

func TestDesignateSparseClassification(t *testing.T) {
	tables := testTables(t)

	// 丙寅: neither symbol is in the fixture map.
	d := tables.Designate(calendar.New(2024, time.January, 3))
	if d.Stem != "丙" || d.Branch != "寅" {
		t.Fatalf("expected 丙寅, got %s%s", d.Stem, d.Branch)
	}
	if d.StemLabel.Defined || d.StemLabel.Text != "" {
		t.Fatalf("expected undefined stem label, got %+v", d.StemLabel)
	}
	if d.BranchLabel.Defined || d.BranchLabel.Text != "" {
		t.Fatalf("expected undefined branch label, got %+v", d.BranchLabel)
	}
}

func TestDesignateBeforeAllAnchors(t *testing.T) {
	tables := testTables(t)

	// One day before the earliest anchor: fallback to the first anchor
	// still yields the correct backward wraparound, flagged approximate.
	d := tables.Designate(calendar.New(1949, time.September, 30))
	if !d.Approximate {
		t.Fatalf("expected approximate designation before all anchors")
	}
	if d.StemIndex != 9 || d.BranchIndex != 11 {
		t.Fatalf("expected indices (9, 11), got (%d, %d)", d.StemIndex, d.BranchIndex)
	}
	if d.Combined != "癸亥" {
		t.Fatalf("expected 癸亥, got %s", d.Combined)
	}
}

func TestDesignateFarFromAnchors(t *testing.T) {
	tables := testTables(t)

	// Distances well past the ±292-year range a time.Duration can hold.
	// 1000-01-01 is 346888 days before the 1949-10-01 anchor: 丙申,
	// resolved through the approximate first-anchor fallback.
	past := tables.Designate(calendar.New(1000, time.January, 1))
	if !past.Approximate {
		t.Fatalf("expected approximate designation before all anchors")
	}
	if past.StemIndex != 2 || past.BranchIndex != 8 || past.Combined != "丙申" {
		t.Fatalf("expected 丙申 (2, 8), got %s (%d, %d)", past.Combined, past.StemIndex, past.BranchIndex)
	}

	// 2500-01-01 is 200976 days after 1949-10-01: 庚子, in range.
	future := tables.Designate(calendar.New(2500, time.January, 1))
	if future.Approximate {
		t.Fatalf("expected verified-range designation")
	}
	if future.StemIndex != 6 || future.BranchIndex != 0 || future.Combined != "庚子" {
		t.Fatalf("expected 庚子 (6, 0), got %s (%d, %d)", future.Combined, future.StemIndex, future.BranchIndex)
	}

	// Periodicity and daily increment still hold at that distance.
	for _, base := range []calendar.Date{past.Date, future.Date} {
		want := tables.Designate(base)
		for _, k := range []int{-2, -1, 1, 3} {
			shifted := tables.Designate(base.AddDays(CycleLength * k))
			if shifted.StemIndex != want.StemIndex || shifted.BranchIndex != want.BranchIndex {
				t.Fatalf("%s k=%d: expected (%d, %d), got (%d, %d)",
					base, k, want.StemIndex, want.BranchIndex, shifted.StemIndex, shifted.BranchIndex)
			}
		}
		next := tables.Designate(base.AddDays(1))
		if next.StemIndex != (want.StemIndex+1)%StemCount || next.BranchIndex != (want.BranchIndex+1)%BranchCount {
			t.Fatalf("%s: next day (%d, %d) does not follow (%d, %d)",
				base, next.StemIndex, next.BranchIndex, want.StemIndex, want.BranchIndex)
		}
	}
}

func TestDesignateIsPure(t *testing.T) {
	tables := testTables(t)
	target := calendar.New(2024, time.February, 10)
	first := tables.Designate(target)
	for i := 0; i < 5; i++ {
		if got := tables.Designate(target); got != first {
			t.Fatalf("expected identical designations, got %+v vs %+v", got, first)
		}
	}
}
