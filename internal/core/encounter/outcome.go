package encounter

import (
	"fmt"
	"strings"
)

// FormatOutcome renders one "<Tier>: <total> xp" line for the selected tier,
// or one line per tier in Tiers order when selected is false.
//
// The outcome is returned only when every requested total was computed.
func FormatOutcome(table Table, levels []Level, tier Tier, selected bool) (string, error) {
	tiers := Tiers()
	if selected {
		tiers = []Tier{tier}
	}

	var b strings.Builder
	for _, t := range tiers {
		total, err := ComputeTotal(table, levels, t)
		if err != nil {
			return "", err
		}
		fmt.Fprintf(&b, "%s: %d xp\n", t, total)
	}
	return b.String(), nil
}
