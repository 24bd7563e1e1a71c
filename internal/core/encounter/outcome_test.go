package encounter

import (
	"testing"

	apperrors "github.com/louisbranch/encounter-xp/internal/platform/errors"
)

func TestFormatOutcomeSelectedTier(t *testing.T) {
	got, err := FormatOutcome(testTable(), []Level{3, 5}, TierEasy, true)
	if err != nil {
		t.Fatalf("format outcome: %v", err)
	}
	if want := "Easy: 80 xp\n"; got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatOutcomeAllTiers(t *testing.T) {
	got, err := FormatOutcome(testTable(), []Level{1, 1, 1}, 0, false)
	if err != nil {
		t.Fatalf("format outcome: %v", err)
	}
	want := "Easy: 30 xp\n" +
		"Medium: 60 xp\n" +
		"Hard: 90 xp\n" +
		"Deadly: 120 xp\n"
	if got != want {
		t.Fatalf("expected %q, got %q", want, got)
	}
}

func TestFormatOutcomeIgnoresTierWhenUnselected(t *testing.T) {
	levels := []Level{2, 8}
	withDeadly, err := FormatOutcome(testTable(), levels, TierDeadly, false)
	if err != nil {
		t.Fatalf("format outcome: %v", err)
	}
	withEasy, err := FormatOutcome(testTable(), levels, TierEasy, false)
	if err != nil {
		t.Fatalf("format outcome: %v", err)
	}
	if withDeadly != withEasy {
		t.Fatalf("expected identical output, got %q and %q", withDeadly, withEasy)
	}
}

func TestFormatOutcomeNoPartialOutput(t *testing.T) {
	table := testTable()
	table[TierDeadly] = table[TierDeadly][:2]

	got, err := FormatOutcome(table, []Level{3}, 0, false)
	if apperrors.CodeOf(err) != apperrors.CodeLevelOutOfTable {
		t.Fatalf("expected out of table error, got %v", err)
	}
	if got != "" {
		t.Fatalf("expected no output on error, got %q", got)
	}
}
