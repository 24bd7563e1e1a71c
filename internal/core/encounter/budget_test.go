package encounter

import (
	"math"
	"testing"

	apperrors "github.com/louisbranch/encounter-xp/internal/platform/errors"
)

type fakeTable map[Tier][]uint32

func (f fakeTable) Thresholds(tier Tier) []uint32 {
	return f[tier]
}

func sequence(start, step uint32) []uint32 {
	out := make([]uint32, MaxLevel)
	for i := range out {
		out[i] = start + uint32(i)*step
	}
	return out
}

func testTable() fakeTable {
	return fakeTable{
		TierEasy:   sequence(10, 10),
		TierMedium: sequence(20, 20),
		TierHard:   sequence(30, 30),
		TierDeadly: sequence(40, 40),
	}
}

func TestComputeTotalSumsThresholds(t *testing.T) {
	table := testTable()
	levels := []Level{1, 5, 5, 20}

	for _, tier := range Tiers() {
		var want uint64
		for _, level := range levels {
			want += uint64(table[tier][level-1])
		}
		got, err := ComputeTotal(table, levels, tier)
		if err != nil {
			t.Fatalf("%s: compute total: %v", tier, err)
		}
		if got != want {
			t.Fatalf("%s: expected %d, got %d", tier, want, got)
		}
	}
}

func TestComputeTotalBoundaryLevels(t *testing.T) {
	table := testTable()

	first, err := ComputeTotal(table, []Level{MinLevel}, TierHard)
	if err != nil {
		t.Fatalf("compute level 1: %v", err)
	}
	if first != uint64(table[TierHard][0]) {
		t.Fatalf("expected level 1 to use the first entry, got %d", first)
	}

	last, err := ComputeTotal(table, []Level{MaxLevel}, TierHard)
	if err != nil {
		t.Fatalf("compute level 20: %v", err)
	}
	if last != uint64(table[TierHard][MaxLevel-1]) {
		t.Fatalf("expected level 20 to use the last entry, got %d", last)
	}
}

func TestComputeTotalOrderIndependent(t *testing.T) {
	table := testTable()
	permutations := [][]Level{
		{3, 9, 14, 14, 20},
		{20, 14, 9, 14, 3},
		{14, 3, 20, 9, 14},
	}

	want, err := ComputeTotal(table, permutations[0], TierDeadly)
	if err != nil {
		t.Fatalf("compute total: %v", err)
	}
	for _, levels := range permutations[1:] {
		got, err := ComputeTotal(table, levels, TierDeadly)
		if err != nil {
			t.Fatalf("compute total: %v", err)
		}
		if got != want {
			t.Fatalf("levels %v: expected %d, got %d", levels, want, got)
		}
	}
}

func TestComputeTotalEmptyLevels(t *testing.T) {
	got, err := ComputeTotal(testTable(), nil, TierEasy)
	if err != nil {
		t.Fatalf("compute total: %v", err)
	}
	if got != 0 {
		t.Fatalf("expected 0 for no levels, got %d", got)
	}
}

func TestComputeTotalShortSequence(t *testing.T) {
	table := testTable()
	table[TierMedium] = table[TierMedium][:4]

	if _, err := ComputeTotal(table, []Level{4}, TierMedium); err != nil {
		t.Fatalf("level within short sequence: %v", err)
	}
	_, err := ComputeTotal(table, []Level{2, 5}, TierMedium)
	if apperrors.CodeOf(err) != apperrors.CodeLevelOutOfTable {
		t.Fatalf("expected out of table error, got %v", err)
	}
}

func TestComputeTotalDoesNotOverflow(t *testing.T) {
	table := fakeTable{TierEasy: make([]uint32, MaxLevel)}
	for i := range table[TierEasy] {
		table[TierEasy][i] = math.MaxUint32
	}
	levels := make([]Level, 0, MaxLevel)
	for l := MinLevel; l <= MaxLevel; l++ {
		levels = append(levels, l)
	}

	got, err := ComputeTotal(table, levels, TierEasy)
	if err != nil {
		t.Fatalf("compute total: %v", err)
	}
	if want := uint64(math.MaxUint32) * uint64(MaxLevel); got != want {
		t.Fatalf("expected %d, got %d", want, got)
	}
}
