// Package table loads encounter XP threshold tables.
//
// A table is read from a JSON or YAML file, or taken from the Dungeon
// Master's Guide thresholds embedded in the binary. Loading checks that all
// four tiers are present with non-negative 32-bit values; it does not check
// sequence length, which encounter.ComputeTotal reports per level instead.
package table

import (
	"github.com/louisbranch/encounter-xp/internal/core/encounter"
)

// Table holds one threshold sequence per tier, indexed by level-1.
type Table struct {
	Easy   []uint32 `json:"easy"   yaml:"easy"`
	Medium []uint32 `json:"medium" yaml:"medium"`
	Hard   []uint32 `json:"hard"   yaml:"hard"`
	Deadly []uint32 `json:"deadly" yaml:"deadly"`
}

// Thresholds returns the sequence for tier.
func (t Table) Thresholds(tier encounter.Tier) []uint32 {
	switch tier {
	case encounter.TierEasy:
		return t.Easy
	case encounter.TierMedium:
		return t.Medium
	case encounter.TierHard:
		return t.Hard
	case encounter.TierDeadly:
		return t.Deadly
	default:
		return nil
	}
}

func (t Table) clone() Table {
	return Table{
		Easy:   append([]uint32(nil), t.Easy...),
		Medium: append([]uint32(nil), t.Medium...),
		Hard:   append([]uint32(nil), t.Hard...),
		Deadly: append([]uint32(nil), t.Deadly...),
	}
}
