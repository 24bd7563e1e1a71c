package encounter

import (
	"fmt"
	"strconv"

	apperrors "github.com/louisbranch/encounter-xp/internal/platform/errors"
)

// Table supplies per-level XP thresholds. Index 0 of a tier's sequence is
// the threshold for a level 1 adventurer.
type Table interface {
	Thresholds(tier Tier) []uint32
}

// ComputeTotal sums the tier threshold of every level.
//
// Each level contributes once per occurrence, so the result does not depend on
// level order. A level past the end of the tier's sequence can only come from
// a table with fewer than MaxLevel entries and is reported as
// CodeLevelOutOfTable.
func ComputeTotal(table Table, levels []Level, tier Tier) (uint64, error) {
	thresholds := table.Thresholds(tier)

	var total uint64
	for _, level := range levels {
		idx := int(level) - 1
		if idx < 0 || idx >= len(thresholds) {
			return 0, apperrors.WithMetadata(
				apperrors.CodeLevelOutOfTable,
				fmt.Sprintf("level %d has no %s threshold: table holds %d entries", level, tier, len(thresholds)),
				map[string]string{
					"level": strconv.Itoa(int(level)),
					"tier":  tier.String(),
				},
			)
		}
		total += uint64(thresholds[idx])
	}
	return total, nil
}
